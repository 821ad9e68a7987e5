package spanning

import (
	"math"

	"github.com/katalvlaran/circuits/edges"
	"github.com/katalvlaran/circuits/point"
)

// Tree computes a minimum spanning tree of the complete graph over pts with
// Prim's algorithm, growing from point 0 without materialising or sorting the
// edge set.
//
// Returns:
//
//	[]edges.Edge: n−1 tree edges in the order they were attached (empty for one point).
//	float64     : total Euclidean length of the tree.
//	error       : ErrEmptyInput for zero points.
//
// Ties between equally close candidates go to the lower point index.
//
// Complexity: O(n²) time, O(n) memory.
func Tree(pts []point.Point) ([]edges.Edge, float64, error) {
	n := len(pts)
	if n == 0 {
		return nil, 0, ErrEmptyInput
	}

	// 1. Track tree membership, best squared distance to the tree, and the
	//    tree point that achieves it.
	inTree := make([]bool, n)
	best := make([]uint64, n)
	parent := make([]int, n)
	for v := range best {
		best[v] = math.MaxUint64
		parent[v] = -1
	}
	best[0] = 0

	tree := make([]edges.Edge, 0, n-1)
	var total float64

	// 2. Attach one point per iteration.
	for it := 0; it < n; it++ {
		// (a) Closest point outside the tree.
		u := -1
		for v := 0; v < n; v++ {
			if !inTree[v] && (u < 0 || best[v] < best[u]) {
				u = v
			}
		}

		// (b) Add it, recording the edge to its parent.
		inTree[u] = true
		if p := parent[u]; p >= 0 {
			e := edges.NewEdge(pts, min(p, u), max(p, u))
			tree = append(tree, e)
			total += e.Distance()
		}

		// (c) Relax the remaining points against u.
		for v := 0; v < n; v++ {
			if inTree[v] {
				continue
			}
			if d := point.SquaredDistance(pts[u], pts[v]); d < best[v] {
				best[v] = d
				parent[v] = u
			}
		}
	}

	return tree, total, nil
}

// LongestEdge returns the longest edge of tree, the first one on ties, and
// false when tree is empty.
func LongestEdge(tree []edges.Edge) (edges.Edge, bool) {
	if len(tree) == 0 {
		return edges.Edge{}, false
	}
	longest := tree[0]
	for _, e := range tree[1:] {
		if e.Squared > longest.Squared {
			longest = e
		}
	}

	return longest, true
}
