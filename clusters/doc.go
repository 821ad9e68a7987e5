// Package clusters maintains a partition of point indices into disjoint,
// growable clusters.
//
// What & Why
//
//	Every point starts in its own singleton cluster. Clusters are merged, never
//	split; at all times they are pairwise disjoint, cover every point, and their
//	sizes sum to the number of points.
//
// Representation
//
//	Store is an index-based disjoint-set forest (union-find):
//
//	  - parent[i] links point i towards its cluster root; a root is its own parent.
//	  - size[r] is the member count of the cluster rooted at r (valid for roots only).
//	  - Find applies path halving, so repeated lookups flatten the forest.
//	  - Merge attaches the smaller cluster under the larger one (union by size),
//	    keeping trees O(log n) deep even without compression.
//
//	A cluster's ID is the index of its current root. IDs are only stable until the
//	next Merge that involves that cluster.
//
// Error Conditions
//
//   - ErrPointNotFound: index outside 0..Len()-1, or an unknown point value.
//   - ErrUnknownCluster: an ID that is not a current cluster root.
//   - ErrSameCluster: Merge called with the same ID twice.
//
// These signal caller bugs rather than bad input; the spanning controller
// aborts on them.
//
// Complexity: Find and Merge run in amortized O(α(n)); Sizes and Members in O(n).
package clusters
