// Package interp provides bracket location and linear interpolation over
// monotonic tables. Tables are caller-owned and read-only here; abscissas
// must be non-decreasing, which callers guarantee.
package interp

import (
	"errors"
	"fmt"
)

// ErrDegenerateTable is returned when a table has fewer than two points
// or mismatched column lengths.
var ErrDegenerateTable = errors.New("interp: degenerate table")

// Locate binary-searches a monotonically non-decreasing sequence for the
// bracket of x: the index i such that data[i] <= x < data[i+1]. Repeated
// abscissas collapse to the single bracket satisfying that invariant.
// Queries below the first element return -1 and queries at or above the
// last element return len(data)-1; both mark extrapolation territory
// rather than an error.
func Locate(data []float64, x float64) int {
	n := len(data)
	if n == 0 || x < data[0] {
		return -1
	}
	if x >= data[n-1] {
		return n - 1
	}

	lo, hi := 0, n-1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if data[mid] <= x {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo
}

// Linear evaluates the piecewise-linear function through (xx[i], yy[i])
// at x. Outside the table range the nearest edge segment is extended, so
// out-of-range queries extrapolate linearly rather than fail. Tables need
// at least two points.
func Linear(xx, yy []float64, x float64) (float64, error) {
	if len(xx) < 2 || len(xx) != len(yy) {
		return 0, fmt.Errorf("%w: %d abscissas, %d ordinates",
			ErrDegenerateTable, len(xx), len(yy))
	}

	i := Locate(xx, x)
	// Clamp the bracket so edge and out-of-range queries use the nearest
	// interior segment.
	if i < 0 {
		i = 0
	}
	if i > len(xx)-2 {
		i = len(xx) - 2
	}

	t := (x - xx[i]) / (xx[i+1] - xx[i])
	return yy[i] + (yy[i+1]-yy[i])*t, nil
}

// Table pairs abscissas with ordinates for repeated lookups, validating
// once up front.
type Table struct {
	X []float64
	Y []float64
}

// NewTable validates the column lengths and returns a lookup table. The
// slices are retained, not copied; callers must not mutate them while the
// table is in use.
func NewTable(x, y []float64) (Table, error) {
	if len(x) < 2 || len(x) != len(y) {
		return Table{}, fmt.Errorf("%w: %d abscissas, %d ordinates",
			ErrDegenerateTable, len(x), len(y))
	}
	return Table{X: x, Y: y}, nil
}

// Eval interpolates the table at x. The table was validated at
// construction, so no error path remains.
func (t Table) Eval(x float64) float64 {
	v, _ := Linear(t.X, t.Y, x)
	return v
}
