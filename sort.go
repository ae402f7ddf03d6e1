package btypes

import "sort"

// SortByName re-derives the iteration order of All and Range to
// ascending name order. Bit positions are untouched: every name keeps
// its value and its bit.
func (b *Named[R]) SortByName() {
	sort.SliceStable(b.order, func(i, j int) bool {
		return b.order[i] < b.order[j]
	})
}

// SortByValue re-derives the iteration order to ascending value order,
// false before true. The sort is stable: ties keep their previous
// relative order. Bit positions are untouched.
func (b *Named[R]) SortByValue() {
	vals := make(map[string]bool, len(b.order))
	for _, name := range b.order {
		v, _ := b.bools.Get(b.names[name])
		vals[name] = v
	}
	sort.SliceStable(b.order, func(i, j int) bool {
		return !vals[b.order[i]] && vals[b.order[j]]
	})
}
