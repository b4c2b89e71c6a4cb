// File: view.go
// Role: Copy-on-write working copies for node deletion and absorption.
// Determinism:
//   - Neighbors() ascending by id, Nodes() in arena (insertion) order.
// Concurrency:
//   - A View is owned by one goroutine. Distinct views over the same Graph
//     may be used concurrently; none of them ever writes to the Graph.

package core

import "fmt"

// View is a private, disposable working copy of a Graph.
//
// It overlays two things on a shared immutable arena: a removed mask and a
// set of extra edges introduced by Absorb. Creating a View is O(1) once the
// Graph is frozen; Clone costs O(V + added edges).
type View struct {
	a       *arena
	removed []bool        // slot → removed
	extra   map[int][]int // slot → added neighbour slots, ascending by id; inner slices copy-on-write
	live    int
}

// View returns a fresh working copy of g. Mutating the view never affects g.
func (g *Graph) View() *View {
	a := g.freeze()

	return &View{
		a:       a,
		removed: make([]bool, len(a.ids)),
		extra:   make(map[int][]int),
		live:    len(a.ids),
	}
}

// Clone returns an independent child view.
func (v *View) Clone() *View {
	c := &View{
		a:       v.a,
		removed: make([]bool, len(v.removed)),
		extra:   make(map[int][]int, len(v.extra)),
		live:    v.live,
	}
	copy(c.removed, v.removed)
	for s, list := range v.extra {
		c.extra[s] = list
	}

	return c
}

// slot resolves a live node.
func (v *View) slot(id NodeID) (int, bool) {
	s, ok := v.a.slots[id]
	if !ok || v.removed[s] {
		return 0, false
	}

	return s, true
}

// HasNode reports whether id is present and not removed.
func (v *View) HasNode(id NodeID) bool {
	_, ok := v.slot(id)

	return ok
}

// NodeCount returns the number of live nodes.
func (v *View) NodeCount() int { return v.live }

// Nodes returns live node ids in insertion order.
func (v *View) Nodes() []NodeID {
	out := make([]NodeID, 0, v.live)
	for s, id := range v.a.ids {
		if !v.removed[s] {
			out = append(out, id)
		}
	}

	return out
}

// adjacent reports whether live slots a and b are connected by an original
// or an absorbed edge.
func (v *View) adjacent(a, b int) bool {
	return containsSlot(v.a.adj[a], b, v.a.ids) || containsSlot(v.extra[a], b, v.a.ids)
}

// HasEdge reports whether u and v are adjacent in the view.
func (v *View) HasEdge(u, w NodeID) bool {
	su, okU := v.slot(u)
	sw, okW := v.slot(w)
	if !okU || !okW || su == sw {
		return false
	}

	return v.adjacent(su, sw)
}

// liveNeighbors returns the live neighbour slots of s, ascending by id.
func (v *View) liveNeighbors(s int) []int {
	return mergeSlots(v.a.adj[s], v.extra[s], v.a.ids, func(t int) bool { return v.removed[t] })
}

// Neighbors returns live neighbours of id in ascending id order.
func (v *View) Neighbors(id NodeID) ([]NodeID, error) {
	s, ok := v.slot(id)
	if !ok {
		return nil, fmt.Errorf("core: View.Neighbors(%d): %w", id, ErrNodeNotFound)
	}
	slots := v.liveNeighbors(s)
	out := make([]NodeID, len(slots))
	for i, t := range slots {
		out[i] = v.a.ids[t]
	}

	return out, nil
}

// Delete removes id without compensating edges (the node has failed).
func (v *View) Delete(id NodeID) error {
	s, ok := v.slot(id)
	if !ok {
		return fmt.Errorf("core: View.Delete(%d): %w", id, ErrNodeNotFound)
	}
	v.removed[s] = true
	v.live--

	return nil
}

// Absorb removes id and pairwise-connects its former neighbours, so every
// route that went through id survives as a direct edge.
//
// Complexity: O(d² log d) for d = live degree of id.
func (v *View) Absorb(id NodeID) error {
	s, ok := v.slot(id)
	if !ok {
		return fmt.Errorf("core: View.Absorb(%d): %w", id, ErrNodeNotFound)
	}
	nbrs := v.liveNeighbors(s)
	v.removed[s] = true
	v.live--

	for i := 0; i < len(nbrs); i++ {
		for j := i + 1; j < len(nbrs); j++ {
			a, b := nbrs[i], nbrs[j]
			if v.adjacent(a, b) {
				continue
			}
			v.extra[a] = withSlot(v.extra[a], b, v.a.ids)
			v.extra[b] = withSlot(v.extra[b], a, v.a.ids)
		}
	}

	return nil
}

var (
	_ Reader = (*Graph)(nil)
	_ Reader = (*View)(nil)
)
