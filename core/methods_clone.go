// File: methods_clone.go
// Role: Cloning graphs and freezing them into immutable arenas for views.
// Determinism:
//   - Clone preserves insertion order and slot assignment.
// Concurrency:
//   - Read lock on the source; the clone is a fresh instance.

package core

// arena is an immutable snapshot of a Graph's slot storage.
// Views share one arena; nothing writes to it after freeze returns.
type arena struct {
	ids   []NodeID
	slots map[NodeID]int
	adj   [][]int
}

// freeze returns the cached arena, building it on first use after a mutation.
//
// Inner adjacency slices are shared with the Graph: AddEdge and RemoveEdge
// swap in fresh slices instead of writing into existing ones.
//
// Complexity: O(V) when rebuilt, O(1) when cached.
func (g *Graph) freeze() *arena {
	g.mu.RLock()
	a := g.frozen
	g.mu.RUnlock()
	if a != nil {
		return a
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if g.frozen != nil {
		return g.frozen
	}
	a = &arena{
		ids:   make([]NodeID, len(g.ids)),
		slots: make(map[NodeID]int, len(g.slots)),
		adj:   make([][]int, len(g.adj)),
	}
	copy(a.ids, g.ids)
	copy(a.adj, g.adj)
	for id, s := range g.slots {
		a.slots[id] = s
	}
	g.frozen = a

	return a
}

// Clone returns a deep copy of the Graph: nodes, edges and weights.
//
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()
	clone := NewGraph(WithCapacity(len(g.ids)))
	clone.ids = append(clone.ids, g.ids...)
	for id, s := range g.slots {
		clone.slots[id] = s
	}
	for _, list := range g.adj {
		clone.adj = append(clone.adj, append([]int(nil), list...))
	}
	for k, w := range g.weights {
		clone.weights[k] = w
	}
	clone.edges = g.edges

	return clone
}
