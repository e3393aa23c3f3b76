package dtw

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// MaxDistance is the sentinel returned when no alignment is possible,
// i.e. when either sequence is empty.
const MaxDistance = math.MaxFloat64

// Distance returns the DTW alignment cost between two feature sequences.
//
// Each sequence is a slice of equal-length coefficient vectors. The result
// is the cost of the cheapest monotonic path through the pairwise Euclidean
// distance matrix: non-negative, and approximately zero for identical
// sequences. Rows of a and b must share the same width.
func Distance(a, b [][]float64) float64 {
	n := len(a)
	m := len(b)
	if n == 0 || m == 0 {
		return MaxDistance
	}

	// Rolling two-row table: only the previous table row is needed to
	// evaluate the recurrence, and only the final cost is ever read.
	prev := make([]float64, m+1)
	curr := make([]float64, m+1)
	for j := 1; j <= m; j++ {
		prev[j] = math.Inf(1)
	}

	for i := 1; i <= n; i++ {
		curr[0] = math.Inf(1)
		for j := 1; j <= m; j++ {
			cost := floats.Distance(a[i-1], b[j-1], 2)
			best := math.Min(prev[j-1], math.Min(prev[j], curr[j-1]))
			curr[j] = cost + best
		}
		prev, curr = curr, prev
	}

	return prev[m]
}
