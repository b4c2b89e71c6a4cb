// Package core provides the in-memory topology every lvrbd algorithm reads.
//
// The Graph G = (V, E) is deliberately narrow:
//
//   - undirected, simple (no self-loops, no parallel edges);
//   - integer node ids (NodeID), created implicitly by AddEdge;
//   - optional non-negative edge weights, used only to order unrestricted
//     simple paths;
//   - an arena layout: each node owns a stable slot, adjacency lists hold
//     slots ordered by id, so Neighbors() is deterministic;
//   - a single sync.RWMutex, so a Graph can be shared by many concurrent
//     evaluations as long as nobody mutates it meanwhile.
//
// Working copies:
//
// Evaluators never mutate the caller's Graph. They call Graph.View(), which
// overlays a removed mask and absorbed edges on a frozen arena:
//
//	v := g.View()
//	_ = v.Absorb(3) // node 3 operational: its neighbours become adjacent
//	_ = v.Delete(5) // node 5 failed: gone, no compensation
//	w := v.Clone()  // branch without disturbing v
//
// Both Graph and View satisfy Reader, the interface traversals accept.
//
// Core Methods:
//
//	AddNode(id)                    // O(1)
//	AddEdge(u, v, weight) error    // O(deg)
//	RemoveEdge(u, v) error         // O(deg)
//	RemoveNode(id) error           // O(V+E)
//	HasNode, HasEdge, Weight, Neighbors, Degree, Nodes, Edges
//	Clone() *Graph                 // O(V+E)
//	View() *View                   // O(1) amortized
package core
