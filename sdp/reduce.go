package sdp

import (
	"slices"

	"github.com/katalvlaran/lvrbd/core"
)

// absorb drops duplicate products and complemented products that contain
// another complemented product. Normal products pass through untouched.
func absorb(g Group) Group {
	dropped := make([]bool, len(g))
	for i := range g {
		if dropped[i] || !g[i].Complement {
			continue
		}
		for j := i + 1; j < len(g); j++ {
			if dropped[j] || !sameKind(g[i], g[j]) {
				continue
			}
			switch {
			case within(g[i].Nodes, g[j].Nodes):
				dropped[j] = true
			case within(g[j].Nodes, g[i].Nodes):
				dropped[i] = true
			}
			if dropped[i] {
				break
			}
		}
	}

	out := make(Group, 0, len(g))
	for i, p := range g {
		if !dropped[i] {
			out = append(out, p)
		}
	}

	return out
}

// eliminate removes nodes known to be up from every complemented product
// and moves normal products first. It reports false when a complemented
// product becomes empty: "not all of nothing is up" is impossible, so the
// whole group has probability zero.
func eliminate(g Group) (Group, bool) {
	var up []core.NodeID
	out := make(Group, 0, len(g))
	for _, p := range g {
		if !p.Complement {
			up = append(up, p.Nodes...)
			out = append(out, p)
		}
	}
	slices.Sort(up)
	for _, p := range g {
		if !p.Complement {
			continue
		}
		rest := difference(p.Nodes, up)
		if len(rest) == 0 {
			return nil, false
		}
		out = append(out, Product{Nodes: rest, Complement: true})
	}

	return out, true
}

// overlap returns the first pair of complemented products sharing a node,
// scanning (i, j) with i < j in group order, and their shared nodes.
func overlap(g Group) (int, int, []core.NodeID, bool) {
	for i := range g {
		if !g[i].Complement {
			continue
		}
		for j := i + 1; j < len(g); j++ {
			if !g[j].Complement {
				continue
			}
			if common := intersect(g[i].Nodes, g[j].Nodes); len(common) > 0 {
				return i, j, common, true
			}
		}
	}

	return 0, 0, nil, false
}

// decompose splits g until no two complemented products overlap.
//
// For overlapping ¬B and ¬C with common part X:
//
//	rest ∧ ¬B ∧ ¬C = rest ∧ ¬X  +  rest ∧ X ∧ ¬(B−X) ∧ ¬(C−X)
//
// Each half is eliminated and absorbed before being split again. Results
// come out in breadth-first order.
func decompose(g Group) []Group {
	var out []Group
	queue := []Group{g}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		i, j, common, ok := overlap(cur)
		if !ok {
			out = append(out, cur)
			continue
		}

		rest := make(Group, 0, len(cur))
		for k, p := range cur {
			if k != i && k != j {
				rest = append(rest, p)
			}
		}

		first := append(slices.Clone(rest), Product{Nodes: common, Complement: true})
		second := append(slices.Clone(rest),
			Product{Nodes: common},
			Product{Nodes: difference(cur[i].Nodes, common), Complement: true},
			Product{Nodes: difference(cur[j].Nodes, common), Complement: true},
		)
		for _, half := range []Group{first, second} {
			if reduced, live := eliminate(half); live {
				queue = append(queue, absorb(reduced))
			}
		}
	}

	return out
}
