package nelson

import "slices"

// ViolationSet is an immutable set of sample indices flagged by a rule.
type ViolationSet struct {
	// indices is kept sorted ascending without duplicates.
	indices []int
}

func newViolationSet(indices []int) ViolationSet {
	return ViolationSet{indices: indices}
}

// Contains reports whether index i was flagged.
func (v ViolationSet) Contains(i int) bool {
	_, found := slices.BinarySearch(v.indices, i)
	return found
}

// Len returns the number of flagged indices.
func (v ViolationSet) Len() int {
	return len(v.indices)
}

// Indices returns the flagged indices in ascending order.
func (v ViolationSet) Indices() []int {
	return slices.Clone(v.indices)
}

// Union returns the indices flagged by either set.
func (v ViolationSet) Union(other ViolationSet) ViolationSet {
	merged := make([]int, 0, len(v.indices)+len(other.indices))
	merged = append(merged, v.indices...)
	merged = append(merged, other.indices...)
	slices.Sort(merged)

	return newViolationSet(slices.Compact(merged))
}
