// Package spanning connects a 3D point cloud edge by edge, shortest first, and
// answers two questions about the clusters that form along the way.
//
// What & Why
//
//   - Kruskal's strategy over the implicit complete graph: sort all n·(n−1)/2
//     edges by length, walk them in order, and merge the clusters of the two
//     endpoints whenever they differ. An edge whose endpoints already share a
//     cluster is a skip.
//
//   - Bounded mode (Controller.Bounded): walk only the first k edges, skips
//     included, then report the product of the three largest cluster sizes.
//
//   - Span mode (Controller.Span): walk until one cluster remains and report the
//     edge whose merge completed it, along with the product of its endpoints'
//     X coordinates.
//
//   - Tree: Prim's algorithm on the same complete graph in O(n²) without any
//     sort. Its longest edge always has the length of the edge that completes
//     Span, which makes it a useful independent check.
//
// Determinism
//
//	Edges are generated in row-major index order and sorted stably by exact
//	squared length, so ties resolve by input order and every run over the same
//	input yields the same merges.
//
// Policies
//
//   - Fewer than three clusters in Bounded: missing ranks count as 1.
//   - k larger than the edge count: all edges are walked.
//   - Empty input: New returns ErrEmptyInput.
//   - A single point: Bounded reports product 1; Span returns ErrSinglePoint
//     because the set is spanned before any edge exists.
//
// Error Conditions
//
//	ErrEmptyInput         - New was given no points.
//	ErrNegativeBudget     - Bounded was given k < 0.
//	ErrSinglePoint        - Span on a one-point set.
//	ErrIncompleteSpanning - the edge stream ran out with more than one cluster left.
//	ErrInvariant          - the cluster store rejected a lookup or merge; wraps the store error.
//
// Complexity: New is O(n² log n) time and O(n²) memory; each mode walk is
// O(E·α(n)); Tree is O(n²) time and O(n) memory.
package spanning
