// Package dataset loads numeric sample columns from text files for the
// CLI. The kernel packages never do I/O themselves; this is the caller
// side of that contract.
package dataset

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ErrNoSamples is returned when a file yields no parseable values.
var ErrNoSamples = errors.New("dataset: no samples found")

// Options controls parsing.
type Options struct {
	// Comment marks a line as a comment when the line starts with it
	// (after trimming). Empty disables comment handling.
	Comment string
	// Column selects the whitespace-separated column to read (0-based).
	Column int
	// OnLine, when set, is called once per consumed input line, e.g. to
	// drive progress reporting.
	OnLine func()
}

// Load reads one column of float64 samples from path.
func Load(path string, opts Options) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	samples, err := Read(f, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return samples, nil
}

// Read parses float64 samples from r, one value per line in the selected
// column. Blank lines and comments are skipped; a malformed value is an
// error, not a silent drop.
func Read(r io.Reader, opts Options) ([]float64, error) {
	var samples []float64

	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		if opts.OnLine != nil {
			opts.OnLine()
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if opts.Comment != "" && strings.HasPrefix(line, opts.Comment) {
			continue
		}

		fields := strings.Fields(line)
		if opts.Column >= len(fields) {
			return nil, fmt.Errorf("line %d: column %d missing (%d fields)",
				lineno, opts.Column, len(fields))
		}

		v, err := strconv.ParseFloat(fields[opts.Column], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineno, err)
		}
		samples = append(samples, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(samples) == 0 {
		return nil, ErrNoSamples
	}
	return samples, nil
}

// LoadTable reads a two-column (x, y) table from path, for interpolation.
// The abscissa column is opts.Column and the ordinate the one after it.
func LoadTable(path string, opts Options) (xs, ys []float64, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if opts.Comment != "" && strings.HasPrefix(line, opts.Comment) {
			continue
		}

		fields := strings.Fields(line)
		if opts.Column+1 >= len(fields) {
			return nil, nil, fmt.Errorf("%s: line %d: need columns %d and %d (%d fields)",
				path, lineno, opts.Column, opts.Column+1, len(fields))
		}

		x, err := strconv.ParseFloat(fields[opts.Column], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: line %d: %w", path, lineno, err)
		}
		y, err := strconv.ParseFloat(fields[opts.Column+1], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: line %d: %w", path, lineno, err)
		}
		xs = append(xs, x)
		ys = append(ys, y)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}
	if len(xs) == 0 {
		return nil, nil, fmt.Errorf("%s: %w", path, ErrNoSamples)
	}
	return xs, ys, nil
}

// Summary holds descriptive statistics the CLI prints next to the kernel
// results. Quartiles come from gonum's empirical quantile.
type Summary struct {
	N   int     `json:"n"`
	Min float64 `json:"min"`
	Max float64 `json:"max"`
	P25 float64 `json:"p25"`
	P75 float64 `json:"p75"`
}

// Summarize computes a Summary over samples. The input is not modified.
func Summarize(samples []float64) Summary {
	if len(samples) == 0 {
		return Summary{}
	}

	sorted := make([]float64, len(samples))
	copy(sorted, samples)
	sort.Float64s(sorted)

	return Summary{
		N:   len(samples),
		Min: floats.Min(sorted),
		Max: floats.Max(sorted),
		P25: stat.Quantile(0.25, stat.Empirical, sorted, nil),
		P75: stat.Quantile(0.75, stat.Empirical, sorted, nil),
	}
}
