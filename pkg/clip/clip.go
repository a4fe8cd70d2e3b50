// Package clip implements iterative sigma-clipping: robust center and
// spread estimation that repeatedly rejects samples falling outside a
// band around the current center, then recomputes the statistics over
// the survivors. Two variants are provided, one centered on the mean
// and one on the median.
package clip

import (
	"errors"
	"fmt"
	"math"

	"github.com/valcour/sigclip/pkg/aggregate"
)

// ErrEmptyInput is returned when clipping is asked for zero samples.
var ErrEmptyInput = errors.New("clip: empty index array")

// State describes how a clipping run terminated. Every terminal state is
// a success; the caller judges adequacy from the surviving count.
type State int

const (
	// Iterating means the loop has not reached a terminal state. It never
	// appears in a returned Result.
	Iterating State = iota
	// ConvergedNoRejection means an iteration rejected nothing, so the
	// subset is a fixed point of the clipping band.
	ConvergedNoRejection
	// ConvergedMinCount means the surviving count fell to or below the
	// configured minimum and clipping stopped early.
	ConvergedMinCount
	// ConvergedMaxIterations means the iteration budget ran out before a
	// fixed point was reached.
	ConvergedMaxIterations
)

// String returns a short human-readable name for the state.
func (s State) String() string {
	switch s {
	case Iterating:
		return "iterating"
	case ConvergedNoRejection:
		return "converged"
	case ConvergedMinCount:
		return "min-count"
	case ConvergedMaxIterations:
		return "max-iterations"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Params configures a clipping run. Samples survive an iteration when
// they lie within [center - LowSigma*std, center + HighSigma*std], bounds
// inclusive.
type Params struct {
	// MaxIter bounds the number of rejection iterations. Zero means the
	// statistics are computed once with no rejection at all.
	MaxIter int `json:"max_iter"`
	// LowSigma and HighSigma are the rejection thresholds, in multiples
	// of the current spread, below and above the center.
	LowSigma  float64 `json:"low_sigma"`
	HighSigma float64 `json:"high_sigma"`
	// MinCount stops clipping once the surviving count falls to or below
	// it. Must be at least 1.
	MinCount int `json:"min_count"`
}

// Validate rejects parameter sets that would produce silently wrong
// statistics.
func (p Params) Validate() error {
	if p.MaxIter < 0 {
		return fmt.Errorf("clip: max iterations must be >= 0, got %d", p.MaxIter)
	}
	if p.MinCount < 1 {
		return fmt.Errorf("clip: min count must be >= 1, got %d", p.MinCount)
	}
	if p.LowSigma < 0 || p.HighSigma < 0 {
		return fmt.Errorf("clip: sigma thresholds must be >= 0, got low %g high %g",
			p.LowSigma, p.HighSigma)
	}
	return nil
}

// Result holds the statistics over the surviving subset. Variance is the
// population variance of the survivors about Center; N is the surviving
// count.
type Result struct {
	Center     float64 `json:"center"`
	Variance   float64 `json:"variance"`
	N          int     `json:"n"`
	State      State   `json:"-"`
	Iterations int     `json:"iterations"`
}

// Std returns the spread as a standard deviation.
func (r Result) Std() float64 {
	return math.Sqrt(r.Variance)
}

// Mean runs mean-based sigma clipping over the indexed subset of data.
// The index array is rewritten in place to hold exactly the surviving
// positions, in their original relative order; the returned slice is the
// shrunken view over the same backing array. The caller must not alias
// data or indx from another goroutine during the call.
func Mean(data []float64, p Params, indx []int) (Result, []int, error) {
	return run(data, p, indx, meanCenter)
}

// Median runs median-based sigma clipping. The spread each iteration is
// the RMS residual about the median. Computing the median sorts the index
// array, so the surviving positions come back in sorted order.
func Median(data []float64, p Params, indx []int) (Result, []int, error) {
	return run(data, p, indx, medianCenter)
}

// centerFunc computes one iteration's center and population variance over
// the indexed subset.
type centerFunc func(data []float64, indx []int) (center, variance float64)

func meanCenter(data []float64, indx []int) (float64, float64) {
	m, _ := aggregate.Mean(data, indx)
	return m.Mean, m.Variance
}

func medianCenter(data []float64, indx []int) (float64, float64) {
	med, _ := aggregate.Median(data, indx)
	var sq float64
	for _, i := range indx {
		d := data[i] - med
		sq += d * d
	}
	return med, sq / float64(len(indx))
}

func run(data []float64, p Params, indx []int, center centerFunc) (Result, []int, error) {
	if err := p.Validate(); err != nil {
		return Result{}, indx, err
	}
	if len(indx) == 0 {
		return Result{Center: math.NaN(), Variance: math.NaN()}, indx, ErrEmptyInput
	}

	c, v := center(data, indx)
	res := Result{Center: c, Variance: v, N: len(indx)}

	for iter := 0; iter < p.MaxIter; iter++ {
		if res.N <= p.MinCount {
			res.State = ConvergedMinCount
			return res, indx, nil
		}

		std := math.Sqrt(res.Variance)
		lo := res.Center - p.LowSigma*std
		hi := res.Center + p.HighSigma*std

		// Zero spread: nothing can fall outside the band.
		if std == 0 {
			res.State = ConvergedNoRejection
			return res, indx, nil
		}

		kept := indx[:0]
		for _, i := range indx {
			if data[i] >= lo && data[i] <= hi {
				kept = append(kept, i)
			}
		}

		if len(kept) == len(indx) {
			res.State = ConvergedNoRejection
			return res, indx, nil
		}
		indx = kept
		res.Iterations = iter + 1

		// Thresholds under one sigma can reject every sample; there is
		// nothing left to estimate from.
		if len(indx) == 0 {
			res.Center, res.Variance, res.N = math.NaN(), math.NaN(), 0
			res.State = ConvergedMinCount
			return res, indx, nil
		}

		c, v = center(data, indx)
		res.Center, res.Variance, res.N = c, v, len(indx)
	}

	res.State = ConvergedMaxIterations
	return res, indx, nil
}
