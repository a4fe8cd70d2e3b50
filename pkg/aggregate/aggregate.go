// Package aggregate computes summary statistics over the subset of a
// sample buffer selected by an index array. Validity of samples is
// expressed through index-array membership, never through in-band
// sentinels, so callers drop invalid entries by dropping their indices.
package aggregate

import (
	"errors"
	"math"

	"github.com/valcour/sigclip/pkg/rank"
)

// ErrEmptyInput is returned when an aggregation is asked for zero samples.
// It is distinct from a legitimate zero-valued result.
var ErrEmptyInput = errors.New("aggregate: empty index array")

// Moments holds the first two moments of an indexed subset. Variance is
// the population variance (normalized by N); MeanVariance is the variance
// of the mean estimate, Variance/N.
type Moments struct {
	Mean         float64 `json:"mean"`
	Variance     float64 `json:"variance"`
	MeanVariance float64 `json:"mean_variance"`
	N            int     `json:"n"`
}

// Sum accumulates data over the index array in index-array order and
// returns the total. An empty index array sums to 0.
func Sum(data []float64, indx []int) float64 {
	var s float64
	for _, i := range indx {
		s += data[i]
	}
	return s
}

// Mean computes the mean and population variance of the indexed subset.
// Accumulation follows index-array order. Returns ErrEmptyInput and a
// NaN-filled Moments with N == 0 when the index array is empty.
func Mean(data []float64, indx []int) (Moments, error) {
	n := len(indx)
	if n == 0 {
		nan := math.NaN()
		return Moments{Mean: nan, Variance: nan, MeanVariance: nan}, ErrEmptyInput
	}

	mean := Sum(data, indx) / float64(n)

	var sq float64
	for _, i := range indx {
		d := data[i] - mean
		sq += d * d
	}
	variance := sq / float64(n)

	return Moments{
		Mean:         mean,
		Variance:     variance,
		MeanVariance: variance / float64(n),
		N:            n,
	}, nil
}

// Median returns the median of the indexed subset. The index array is
// sorted in place via rank.Argsort as an observable side effect; callers
// needing the original arrangement must copy it first. For an even count
// the result is the arithmetic mean of the two central elements.
func Median(data []float64, indx []int) (float64, error) {
	n := len(indx)
	if n == 0 {
		return math.NaN(), ErrEmptyInput
	}

	rank.Argsort(data, indx)

	if n%2 == 1 {
		return data[indx[n/2]], nil
	}
	lo, hi := data[indx[n/2-1]], data[indx[n/2]]
	return (lo + hi) / 2, nil
}
