// Package rank maintains index arrays: permutations of positions into a
// sample buffer that let callers address elements by rank without moving
// the underlying data.
package rank

import "sort"

// Argsort sorts indx in place so that data[indx[0]] <= data[indx[1]] <= ...
// Only the index array moves; the sample buffer is never touched. Equal
// values are ordered by ascending index, so the result is deterministic
// and stable with respect to original buffer position. Sorting an
// already-sorted index array leaves it unchanged.
//
// Returns the number of entries sorted. An empty index array is a no-op.
func Argsort(data []float64, indx []int) int {
	if len(indx) == 0 {
		return 0
	}
	sort.Slice(indx, func(a, b int) bool {
		va, vb := data[indx[a]], data[indx[b]]
		if va != vb {
			return va < vb
		}
		return indx[a] < indx[b]
	})
	return len(indx)
}

// IsSorted reports whether the index array already references data in
// non-decreasing order, with ties ordered by ascending index.
func IsSorted(data []float64, indx []int) bool {
	for i := 1; i < len(indx); i++ {
		va, vb := data[indx[i-1]], data[indx[i]]
		if va > vb || (va == vb && indx[i-1] > indx[i]) {
			return false
		}
	}
	return true
}

// Identity returns the index array [0, 1, ..., n-1], the usual starting
// point when every sample is considered valid.
func Identity(n int) []int {
	indx := make([]int, n)
	for i := range indx {
		indx[i] = i
	}
	return indx
}
