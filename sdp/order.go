package sdp

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/lvrbd/core"
	"github.com/katalvlaran/lvrbd/pathset"
)

// Sort returns the paths in Singh order.
//
// Implementation:
//   - Sort every path's nodes ascending; order paths by (size, lex).
//   - The smallest-size group stays as is.
//   - Every later group is stably reordered by ascending maximum number of
//     nodes shared with any path placed before the group.
//
// ps is not modified.
func Sort(ps pathset.PathSet) [][]core.NodeID {
	sets := make([][]core.NodeID, len(ps))
	for i, p := range ps {
		sets[i] = slices.Clone(p)
		slices.Sort(sets[i])
	}
	slices.SortStableFunc(sets, func(a, b []core.NodeID) int {
		if c := cmp.Compare(len(a), len(b)); c != 0 {
			return c
		}

		return slices.Compare(a, b)
	})

	out := make([][]core.NodeID, 0, len(sets))
	for start := 0; start < len(sets); {
		end := start
		for end < len(sets) && len(sets[end]) == len(sets[start]) {
			end++
		}
		group := sets[start:end]
		if start > 0 {
			shared := make(map[int]int, len(group))
			for i, s := range group {
				for _, prev := range out {
					shared[i] = max(shared[i], len(intersect(s, prev)))
				}
			}
			idx := make([]int, len(group))
			for i := range idx {
				idx[i] = i
			}
			slices.SortStableFunc(idx, func(a, b int) int { return cmp.Compare(shared[a], shared[b]) })
			reordered := make([][]core.NodeID, len(group))
			for i, k := range idx {
				reordered[i] = group[k]
			}
			group = reordered
		}
		out = append(out, group...)
		start = end
	}

	return out
}
