// File: methods_edges.go
// Role: Edge lifecycle & queries.
//
// Determinism:
//   - Edges() is ordered by (From, To) with From < To.
//
// Concurrency:
//   - Writers take mu; readers take mu.RLock.
package core

import (
	"fmt"
	"math"
	"sort"
)

// AddEdge connects u and v with the given weight, creating missing nodes.
//
// Implementation:
//   - Stage 1: Reject self-loops and negative or NaN weights.
//   - Stage 2: Under the write lock, bootstrap both endpoints.
//   - Stage 3: Reject a parallel edge; otherwise insert each slot into the
//     other's adjacency list (copy-on-write) and record the weight.
//
// Errors:
//   - ErrLoopNotAllowed if u == v.
//   - ErrBadWeight if weight < 0 or NaN.
//   - ErrMultiEdgeNotAllowed if u and v are already adjacent.
//
// Complexity:
//   - Time O(deg(u) + deg(v)), Space O(deg(u) + deg(v)).
func (g *Graph) AddEdge(u, v NodeID, weight float64) error {
	if u == v {
		return fmt.Errorf("core: AddEdge(%d, %d): %w", u, v, ErrLoopNotAllowed)
	}
	if weight < 0 || math.IsNaN(weight) {
		return fmt.Errorf("core: AddEdge(%d, %d, %v): %w", u, v, weight, ErrBadWeight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	su := g.addNodeLocked(u)
	sv := g.addNodeLocked(v)
	k := keyOf(su, sv)
	if _, dup := g.weights[k]; dup {
		return fmt.Errorf("core: AddEdge(%d, %d): %w", u, v, ErrMultiEdgeNotAllowed)
	}
	g.adj[su] = withSlot(g.adj[su], sv, g.ids)
	g.adj[sv] = withSlot(g.adj[sv], su, g.ids)
	g.weights[k] = weight
	g.edges++
	g.frozen = nil

	return nil
}

// RemoveEdge disconnects u and v.
func (g *Graph) RemoveEdge(u, v NodeID) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	su, okU := g.slots[u]
	sv, okV := g.slots[v]
	if !okU || !okV {
		return fmt.Errorf("core: RemoveEdge(%d, %d): %w", u, v, ErrNodeNotFound)
	}
	k := keyOf(su, sv)
	if _, ok := g.weights[k]; !ok {
		return fmt.Errorf("core: RemoveEdge(%d, %d): %w", u, v, ErrEdgeNotFound)
	}
	g.adj[su] = withoutSlot(g.adj[su], sv)
	g.adj[sv] = withoutSlot(g.adj[sv], su)
	delete(g.weights, k)
	g.edges--
	g.frozen = nil

	return nil
}

// HasEdge reports whether u and v are adjacent. Missing nodes yield false.
func (g *Graph) HasEdge(u, v NodeID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	su, okU := g.slots[u]
	sv, okV := g.slots[v]
	if !okU || !okV {
		return false
	}
	_, ok := g.weights[keyOf(su, sv)]

	return ok
}

// Weight returns the weight of edge {u, v}.
func (g *Graph) Weight(u, v NodeID) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	su, okU := g.slots[u]
	sv, okV := g.slots[v]
	if !okU || !okV {
		return 0, fmt.Errorf("core: Weight(%d, %d): %w", u, v, ErrNodeNotFound)
	}
	w, ok := g.weights[keyOf(su, sv)]
	if !ok {
		return 0, fmt.Errorf("core: Weight(%d, %d): %w", u, v, ErrEdgeNotFound)
	}

	return w, nil
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges
}

// Edges returns every edge with From < To, ordered by (From, To).
//
// Complexity:
//   - Time O(E log E), Space O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	out := make([]Edge, 0, g.edges)
	for k, w := range g.weights {
		a, b := g.ids[k.lo], g.ids[k.hi]
		if a > b {
			a, b = b, a
		}
		out = append(out, Edge{From: a, To: b, Weight: w})
	}
	g.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}

		return out[i].To < out[j].To
	})

	return out
}
