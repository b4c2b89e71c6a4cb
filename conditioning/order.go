package conditioning

import (
	"github.com/katalvlaran/lvrbd/core"
	"github.com/katalvlaran/lvrbd/cutset"
)

// seedNode returns the node appearing most often among the smallest cuts
// of interior, ties broken by first appearance.
func seedNode(interior cutset.CutSet) (core.NodeID, bool) {
	if len(interior) == 0 {
		return 0, false
	}
	smallest := len(interior[0])
	for _, c := range interior {
		smallest = min(smallest, len(c))
	}

	counts := make(map[core.NodeID]int)
	var seen []core.NodeID
	for _, c := range interior {
		if len(c) != smallest {
			continue
		}
		for _, id := range c {
			if counts[id] == 0 {
				seen = append(seen, id)
			}
			counts[id]++
		}
	}
	best := seen[0]
	for _, id := range seen[1:] {
		if counts[id] > counts[best] {
			best = id
		}
	}

	return best, true
}

// branchOrder lists branching nodes: the seed, then every other cut node in
// first-seen order, then the remaining nodes of g other than src and dst.
func branchOrder(g *core.Graph, src, dst core.NodeID, interior cutset.CutSet) []core.NodeID {
	used := map[core.NodeID]bool{src: true, dst: true}
	var out []core.NodeID
	add := func(id core.NodeID) {
		if !used[id] {
			used[id] = true
			out = append(out, id)
		}
	}
	if seed, ok := seedNode(interior); ok {
		add(seed)
	}
	for _, id := range interior.Nodes() {
		add(id)
	}
	for _, id := range g.Nodes() {
		add(id)
	}

	return out
}
