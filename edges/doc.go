// Package edges generates the complete pairwise edge set of a point cloud and
// orders it by length.
//
// Generation
//
//   - Generate(pts) returns every unordered pair (i, j), i < j, exactly once:
//     n·(n−1)/2 edges, no self pairs, in row-major order (i ascending, then j).
//   - GenerateParallel(ctx, pts, workers) produces the identical slice using an
//     errgroup of workers. Each row i owns the contiguous output range starting
//     at Offset(n, i), so no two workers ever touch the same element and the
//     result does not depend on scheduling.
//
// Ordering
//
//	Edges are keyed by their exact squared length (uint64). Squaring is
//	monotonic on non-negative values, so the order equals ordering by true
//	Euclidean length, while the key is a total order with no NaN to guard
//	against. Sort is stable: equal lengths keep generation order, which makes
//	every downstream result reproducible for a given input order.
//
// Complexity: generation is O(n²) time and memory; Sort is O(E log E), E = n·(n−1)/2.
package edges
