package edges

import (
	"cmp"
	"math"

	"github.com/katalvlaran/circuits/point"
)

// Edge is an unordered pair of points with its precomputed squared length.
//
// From and To index the point slice the edge was generated from (From < To);
// A and B are copies of those points so consumers need not keep the slice.
type Edge struct {
	// From is the index of the first endpoint.
	From int

	// To is the index of the second endpoint.
	To int

	// A is the point at index From.
	A point.Point

	// B is the point at index To.
	B point.Point

	// Squared is the exact squared Euclidean length, the sort key.
	Squared uint64
}

// NewEdge builds the edge between pts[i] and pts[j], computing its length once.
func NewEdge(pts []point.Point, i, j int) Edge {
	return Edge{
		From:    i,
		To:      j,
		A:       pts[i],
		B:       pts[j],
		Squared: point.SquaredDistance(pts[i], pts[j]),
	}
}

// Distance returns the true Euclidean length of e.
func (e Edge) Distance() float64 {
	return math.Sqrt(float64(e.Squared))
}

// Compare orders edges by length only; it returns 0 for equal lengths so
// stable sorts keep their input order.
func Compare(a, b Edge) int {
	return cmp.Compare(a.Squared, b.Squared)
}

// Count returns the number of unordered pairs over n points.
func Count(n int) int {
	if n < 2 {
		return 0
	}

	return n * (n - 1) / 2
}

// Offset returns the position of edge (i, i+1) in row-major generation order.
func Offset(n, i int) int {
	return i*n - i*(i+1)/2
}
