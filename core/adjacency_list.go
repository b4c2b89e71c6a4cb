// File: adjacency_list.go
// Role: Ordered slot lists shared by Graph and View.
// Determinism:
//   - Lists are kept ascending by NodeID, so every neighbour query is reproducible.
// Concurrency:
//   - Helpers never write into their input slice; callers swap in the returned copy.

package core

import "sort"

// withSlot returns a copy of list with slot s inserted in id order.
// If s is already present the original list is returned unchanged.
func withSlot(list []int, s int, ids []NodeID) []int {
	id := ids[s]
	i := sort.Search(len(list), func(k int) bool { return ids[list[k]] >= id })
	if i < len(list) && list[i] == s {
		return list
	}
	out := make([]int, 0, len(list)+1)
	out = append(out, list[:i]...)
	out = append(out, s)
	out = append(out, list[i:]...)

	return out
}

// withoutSlot returns a copy of list with slot s removed.
func withoutSlot(list []int, s int) []int {
	out := make([]int, 0, len(list))
	for _, x := range list {
		if x != s {
			out = append(out, x)
		}
	}

	return out
}

// containsSlot reports whether s is in the id-ordered list.
func containsSlot(list []int, s int, ids []NodeID) bool {
	id := ids[s]
	i := sort.Search(len(list), func(k int) bool { return ids[list[k]] >= id })

	return i < len(list) && list[i] == s
}

// mergeSlots merges two id-ordered lists, dropping duplicates and every slot
// for which skip returns true.
func mergeSlots(a, b []int, ids []NodeID, skip func(int) bool) []int {
	out := make([]int, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) || j < len(b) {
		var s int
		switch {
		case j >= len(b) || (i < len(a) && ids[a[i]] < ids[b[j]]):
			s = a[i]
			i++
		case i >= len(a) || ids[b[j]] < ids[a[i]]:
			s = b[j]
			j++
		default: // same slot on both sides
			s = a[i]
			i++
			j++
		}
		if !skip(s) {
			out = append(out, s)
		}
	}

	return out
}
