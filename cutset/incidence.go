package cutset

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/lvrbd/core"
	"github.com/katalvlaran/lvrbd/pathset"
)

// incidence is the path-coverage matrix stored column-wise: one bit vector
// per interior node, bit r set iff the node lies on path r.
type incidence struct {
	nodes []core.NodeID    // column → node
	cols  []*bitset.BitSet // column → rows covered
	rows  uint
}

// newIncidence builds one column for every node of g except src and dst,
// in g's node order.
func newIncidence(g core.Reader, src, dst core.NodeID, paths pathset.PathSet) *incidence {
	inc := &incidence{rows: uint(len(paths))}
	index := make(map[core.NodeID]int)
	for _, id := range g.Nodes() {
		if id == src || id == dst {
			continue
		}
		index[id] = len(inc.nodes)
		inc.nodes = append(inc.nodes, id)
		inc.cols = append(inc.cols, bitset.New(inc.rows))
	}
	for r, p := range paths {
		for _, id := range p.Interior() {
			if c, ok := index[id]; ok {
				inc.cols[c].Set(uint(r))
			}
		}
	}

	return inc
}

// covers reports whether b has every row bit set.
func (inc *incidence) covers(b *bitset.BitSet) bool {
	return b.Count() == inc.rows
}

// union ORs the columns of the given column indices.
func (inc *incidence) union(cols []int) *bitset.BitSet {
	acc := bitset.New(inc.rows)
	for _, c := range cols {
		acc.InPlaceUnion(inc.cols[c])
	}

	return acc
}

// cut converts column indices to a Cut of node ids.
func (inc *incidence) cut(cols []int) Cut {
	out := make(Cut, len(cols))
	for i, c := range cols {
		out[i] = inc.nodes[c]
	}

	return out
}

// degenerate is the result for adjacent or disconnected endpoints.
func degenerate(src, dst core.NodeID) CutSet {
	return CutSet{{src}, {dst}}
}
