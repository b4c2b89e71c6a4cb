// Package bfs provides breadth-first search over any core.Reader (a Graph or
// a View), returning unweighted shortest-path distances, parent links, and
// visit order.
//
// What
//
//   - Explore nodes in non-decreasing distance (edge count) from a start node.
//   - Returns a BFSResult containing Order, Depth and Parent.
//   - OnVisit hook (may abort with an error), neighbour filtering,
//     MaxDepth limit and StopAt early exit.
//   - Helpers ShortestPathLength, ShortestPath and HasPath, used by the
//     cut enumerators and the conditioning evaluator to classify
//     src/dst relationships.
//
// Determinism
//
//	core.Reader returns neighbours ascending by id and BFS enqueues them in
//	that order, so the visit sequence is fully reproducible.
//
// Complexity (V = |Nodes|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Errors
//
//   - ErrGraphNil           if the graph is nil.
//   - ErrStartNodeNotFound  if the start node does not exist.
//   - ErrOptionViolation    if invalid Option (e.g. negative MaxDepth).
//   - ErrNeighbors          if Neighbors fails for any node.
//   - ErrNoPath             from the path helpers when dst is unreachable.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
