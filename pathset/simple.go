package pathset

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/katalvlaran/lvrbd/core"
)

// weigher is implemented by readers that carry edge weights (core.Graph).
type weigher interface {
	Weight(u, v core.NodeID) (float64, error)
}

// SimplePaths enumerates every simple path from src to dst, without the
// chord pruning of MinimalPaths.
//
// Paths are ordered the way a shortest-simple-paths generator yields them:
// by total edge weight, then length, then lexicographically. Readers without
// weights (View) count one per edge.
//
// Complexity:
//   - Exponential in the worst case; callers bound usage by graph size.
func SimplePaths(g core.Reader, src, dst core.NodeID) (PathSet, error) {
	if err := validate(g, src, dst); err != nil {
		return nil, err
	}

	var (
		out    PathSet
		prefix = Path{src}
		onPath = map[core.NodeID]bool{src: true}
		walk   func(id core.NodeID) error
	)
	walk = func(id core.NodeID) error {
		nbrs, err := g.Neighbors(id)
		if err != nil {
			return fmt.Errorf("pathset: Neighbors(%d): %w", id, err)
		}
		for _, nbr := range nbrs {
			if onPath[nbr] {
				continue
			}
			if nbr == dst {
				p := make(Path, len(prefix), len(prefix)+1)
				copy(p, prefix)
				out = append(out, append(p, dst))
				continue
			}
			onPath[nbr] = true
			prefix = append(prefix, nbr)
			if err = walk(nbr); err != nil {
				return err
			}
			prefix = prefix[:len(prefix)-1]
			onPath[nbr] = false
		}

		return nil
	}
	if err := walk(src); err != nil {
		return nil, err
	}

	costs := make(map[int]float64, len(out))
	for i, p := range out {
		costs[i] = cost(g, p)
	}
	idx := make([]int, len(out))
	for i := range idx {
		idx[i] = i
	}
	slices.SortStableFunc(idx, func(a, b int) int {
		if c := cmp.Compare(costs[a], costs[b]); c != 0 {
			return c
		}
		return Compare(out[a], out[b])
	})
	sorted := make(PathSet, len(out))
	for i, k := range idx {
		sorted[i] = out[k]
	}

	return sorted, nil
}

// cost sums edge weights along p, or counts hops when g has no weights.
func cost(g core.Reader, p Path) float64 {
	w, ok := g.(weigher)
	if !ok {
		return float64(len(p) - 1)
	}
	var total float64
	for i := 1; i < len(p); i++ {
		x, err := w.Weight(p[i-1], p[i])
		if err != nil {
			x = core.DefaultWeight
		}
		total += x
	}

	return total
}
