// File: methods_nodes.go
// Role: Node lifecycle & queries.
//
// Determinism:
//   - Nodes() returns ids in insertion order; Neighbors() ascending by id.
//
// Concurrency:
//   - Writers take mu; readers take mu.RLock.
package core

import "fmt"

// AddNode inserts id if missing (idempotent).
//
// Implementation:
//   - Stage 1: Under the write lock, return early if the node exists.
//   - Stage 2: Allocate the next slot and an empty adjacency list.
//   - Stage 3: Drop the frozen arena so future views see the new node.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddNode(id NodeID) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addNodeLocked(id)
}

// addNodeLocked returns the slot of id, creating it when absent. Caller holds mu.
func (g *Graph) addNodeLocked(id NodeID) int {
	if s, ok := g.slots[id]; ok {
		return s
	}
	s := len(g.ids)
	g.ids = append(g.ids, id)
	g.slots[id] = s
	g.adj = append(g.adj, nil)
	g.frozen = nil

	return s
}

// HasNode reports whether id exists.
func (g *Graph) HasNode(id NodeID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.slots[id]

	return ok
}

// Nodes returns every node id in insertion order.
//
// Insertion order is the enumeration surface relabel uses to assign dense
// ids, so it is stable across calls for an unchanged graph.
//
// Complexity:
//   - Time O(V), Space O(V).
func (g *Graph) Nodes() []NodeID {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]NodeID, len(g.ids))
	copy(out, g.ids)

	return out
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.ids)
}

// Neighbors returns the neighbours of id in ascending id order.
//
// Errors:
//   - ErrNodeNotFound if id is absent.
//
// Complexity:
//   - Time O(deg(id)), Space O(deg(id)).
func (g *Graph) Neighbors(id NodeID) ([]NodeID, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	s, ok := g.slots[id]
	if !ok {
		return nil, fmt.Errorf("core: Neighbors(%d): %w", id, ErrNodeNotFound)
	}
	out := make([]NodeID, len(g.adj[s]))
	for i, t := range g.adj[s] {
		out[i] = g.ids[t]
	}

	return out, nil
}

// Degree returns the number of neighbours of id.
func (g *Graph) Degree(id NodeID) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	s, ok := g.slots[id]
	if !ok {
		return 0, fmt.Errorf("core: Degree(%d): %w", id, ErrNodeNotFound)
	}

	return len(g.adj[s]), nil
}

// RemoveNode deletes id and every incident edge.
//
// Implementation:
//   - Stage 1: Resolve the slot; ErrNodeNotFound when missing.
//   - Stage 2: Rebuild ids, slots, adjacency and weights without that slot,
//     shifting later slots down by one.
//
// Views created before the call keep observing the old arena.
//
// Complexity:
//   - Time O(V + E), Space O(V + E).
func (g *Graph) RemoveNode(id NodeID) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	gone, ok := g.slots[id]
	if !ok {
		return fmt.Errorf("core: RemoveNode(%d): %w", id, ErrNodeNotFound)
	}
	shift := func(s int) int {
		if s > gone {
			return s - 1
		}

		return s
	}

	ids := make([]NodeID, 0, len(g.ids)-1)
	slots := make(map[NodeID]int, len(g.ids)-1)
	adj := make([][]int, 0, len(g.ids)-1)
	for s, nid := range g.ids {
		if s == gone {
			continue
		}
		slots[nid] = len(ids)
		ids = append(ids, nid)
		list := make([]int, 0, len(g.adj[s]))
		for _, t := range g.adj[s] {
			if t != gone {
				list = append(list, shift(t))
			}
		}
		adj = append(adj, list)
	}
	weights := make(map[edgeKey]float64, len(g.weights))
	for k, w := range g.weights {
		if k.lo == gone || k.hi == gone {
			continue
		}
		weights[edgeKey{lo: shift(k.lo), hi: shift(k.hi)}] = w
	}

	g.edges -= len(g.adj[gone])
	g.ids, g.slots, g.adj, g.weights = ids, slots, adj, weights
	g.frozen = nil

	return nil
}
