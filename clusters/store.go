package clusters

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/circuits/point"
)

// Sentinel errors for cluster store operations.
var (
	// ErrPointNotFound indicates a point index or value that no cluster contains.
	ErrPointNotFound = errors.New("clusters: point not found")

	// ErrUnknownCluster indicates an ID that is not a live cluster.
	ErrUnknownCluster = errors.New("clusters: unknown cluster")

	// ErrSameCluster indicates an attempt to merge a cluster with itself.
	ErrSameCluster = errors.New("clusters: cannot merge a cluster with itself")
)

// ID identifies a live cluster: the index of its root point.
type ID int

// Store is a disjoint-set forest over point indices 0..n-1.
// It is not safe for concurrent use.
type Store struct {
	parent []int
	size   []int
	count  int

	// index maps a point value to its first index; nil unless built from points.
	index map[point.Point]int
}

// New returns a store of n singleton clusters.
// Complexity: O(n).
func New(n int) *Store {
	if n < 0 {
		n = 0
	}
	s := &Store{
		parent: make([]int, n),
		size:   make([]int, n),
		count:  n,
	}
	for i := range s.parent {
		s.parent[i] = i
		s.size[i] = 1
	}

	return s
}

// NewFromPoints returns New(len(pts)) that can also be queried by point value.
// When a value occurs more than once, lookups resolve to its first index; the
// duplicates are still separate members.
func NewFromPoints(pts []point.Point) *Store {
	s := New(len(pts))
	s.index = make(map[point.Point]int, len(pts))
	for i, p := range pts {
		if _, ok := s.index[p]; !ok {
			s.index[p] = i
		}
	}

	return s
}

// Len returns the number of points in the store.
func (s *Store) Len() int { return len(s.parent) }

// Count returns the number of live clusters.
func (s *Store) Count() int { return s.count }

// Find returns the cluster containing point p.
func (s *Store) Find(p int) (ID, error) {
	if p < 0 || p >= len(s.parent) {
		return 0, fmt.Errorf("%w: index %d of %d", ErrPointNotFound, p, len(s.parent))
	}

	return ID(s.root(p)), nil
}

// FindPoint returns the cluster containing the point with value pt.
func (s *Store) FindPoint(pt point.Point) (ID, error) {
	i, ok := s.index[pt]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrPointNotFound, pt)
	}

	return s.Find(i)
}

// root walks to the root of p, halving the path on the way.
func (s *Store) root(p int) int {
	for s.parent[p] != p {
		// Path halving: point p at its grandparent, then continue from there.
		s.parent[p] = s.parent[s.parent[p]]
		p = s.parent[p]
	}

	return p
}

// Merge joins clusters a and b and returns the surviving ID. Afterwards the
// other ID no longer names a cluster.
//
// Steps:
//  1. Validate that a and b are distinct live roots.
//  2. Attach the smaller cluster under the larger; on equal size keep a.
//  3. Accumulate the size on the survivor and drop the cluster count by one.
func (s *Store) Merge(a, b ID) (ID, error) {
	if !s.live(a) {
		return 0, fmt.Errorf("%w: %d", ErrUnknownCluster, a)
	}
	if !s.live(b) {
		return 0, fmt.Errorf("%w: %d", ErrUnknownCluster, b)
	}
	if a == b {
		return 0, fmt.Errorf("%w: %d", ErrSameCluster, a)
	}

	keep, drop := int(a), int(b)
	if s.size[keep] < s.size[drop] {
		keep, drop = drop, keep
	}
	s.parent[drop] = keep
	s.size[keep] += s.size[drop]
	s.size[drop] = 0
	s.count--

	return ID(keep), nil
}

// Union merges the clusters of points p and q. It reports false, and changes
// nothing, when they already share a cluster.
func (s *Store) Union(p, q int) (bool, error) {
	cp, err := s.Find(p)
	if err != nil {
		return false, err
	}
	cq, err := s.Find(q)
	if err != nil {
		return false, err
	}
	if cp == cq {
		return false, nil
	}
	if _, err = s.Merge(cp, cq); err != nil {
		return false, err
	}

	return true, nil
}

// Size returns the member count of cluster id.
func (s *Store) Size(id ID) (int, error) {
	if !s.live(id) {
		return 0, fmt.Errorf("%w: %d", ErrUnknownCluster, id)
	}

	return s.size[id], nil
}

// Sizes returns the member count of every live cluster, in ascending root order.
func (s *Store) Sizes() []int {
	out := make([]int, 0, s.count)
	for i, p := range s.parent {
		if p == i {
			out = append(out, s.size[i])
		}
	}

	return out
}

// Members returns the point indices of every live cluster. Clusters appear in
// ascending root order and members in ascending index order.
func (s *Store) Members() [][]int {
	slot := make(map[int]int, s.count)
	out := make([][]int, 0, s.count)
	for i, p := range s.parent {
		if p == i {
			slot[i] = len(out)
			out = append(out, make([]int, 0, s.size[i]))
		}
	}
	for i := range s.parent {
		k := slot[s.root(i)]
		out[k] = append(out[k], i)
	}

	return out
}

func (s *Store) live(id ID) bool {
	i := int(id)
	return i >= 0 && i < len(s.parent) && s.parent[i] == i
}
