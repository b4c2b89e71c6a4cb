package cutset

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/lvrbd/bfs"
	"github.com/katalvlaran/lvrbd/core"
	"github.com/katalvlaran/lvrbd/pathset"
)

// MinimalCuts enumerates minimal node cuts of size ≤ order separating src
// from dst, by coverage over every simple path. It is the straightforward
// oracle MinimalCutsOptimized is checked against.
//
// Implementation:
//   - Stage 1: Adjacent or disconnected endpoints → {src}, {dst} only.
//   - Stage 2: Rows = all simple src→dst paths; columns = every other node.
//   - Stage 3: k = 1: a node on every path is a cut; the rest are the
//     first pairs.
//   - Stage 4: k = 2..order: every k-combination of first pairs that is not
//     a superset of a recorded cut is tested by rescanning each path row;
//     full coverage records a new cut. Stops when no candidate remains.
//   - Stage 5: Sort by (size, lex) and prepend {src}, {dst}.
//
// Complexity:
//   - Exponential in the worst case: all simple paths times C(first pairs, k).
//     order is the only bound on the combination growth.
func MinimalCuts(g core.Reader, src, dst core.NodeID, order int) (CutSet, error) {
	if err := validate(g, src, dst, order); err != nil {
		return nil, err
	}
	if g.HasEdge(src, dst) || !bfs.HasPath(g, src, dst) {
		return degenerate(src, dst), nil
	}
	paths, err := pathset.SimplePaths(g, src, dst)
	if err != nil {
		return nil, fmt.Errorf("cutset: %w", err)
	}
	inc := newIncidence(g, src, dst, paths)

	// rowCols[r] = columns lying on path r; rescanned for every candidate.
	rowCols := make([]*bitset.BitSet, len(paths))
	for r := range paths {
		rowCols[r] = bitset.New(uint(len(inc.nodes)))
	}
	for c, col := range inc.cols {
		for r, ok := col.NextSet(0); ok; r, ok = col.NextSet(r + 1) {
			rowCols[r].Set(uint(c))
		}
	}
	hitsEveryPath := func(cand *bitset.BitSet) bool {
		for _, row := range rowCols {
			if row.IntersectionCardinality(cand) == 0 {
				return false
			}
		}

		return true
	}

	var (
		found      []Cut
		recorded   []*bitset.BitSet // cuts of size ≥ 2, as column sets
		firstPairs []int
	)
	for c := range inc.nodes {
		cand := bitset.New(uint(len(inc.nodes))).Set(uint(c))
		if hitsEveryPath(cand) {
			found = append(found, inc.cut([]int{c}))
		} else {
			firstPairs = append(firstPairs, c)
		}
	}

	for size := 2; size <= order && size <= len(firstPairs); size++ {
		var round []*bitset.BitSet
		candidates := 0
		members := make([]int, size)
		combinations(len(firstPairs), size, func(idx []int) {
			cand := bitset.New(uint(len(inc.nodes)))
			for i, x := range idx {
				members[i] = firstPairs[x]
				cand.Set(uint(members[i]))
			}
			for _, r := range recorded {
				if cand.IsSuperSet(r) {
					return
				}
			}
			candidates++
			if hitsEveryPath(cand) {
				found = append(found, inc.cut(members))
				round = append(round, cand)
			}
		})
		if candidates == 0 {
			break
		}
		recorded = append(recorded, round...)
	}

	return canonical(src, dst, found), nil
}
