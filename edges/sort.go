package edges

import "slices"

// Sort orders es ascending by length in place. Equal lengths keep their
// relative input order.
func Sort(es []Edge) {
	slices.SortStableFunc(es, Compare)
}

// Sorted reports whether es is in ascending length order.
func Sorted(es []Edge) bool {
	return slices.IsSortedFunc(es, Compare)
}
