package pathset

import (
	"fmt"

	"github.com/katalvlaran/lvrbd/core"
)

// frame is one level of the explicit DFS stack: a node and a cursor into
// its neighbour list.
type frame struct {
	id   core.NodeID
	nbrs []core.NodeID
	next int
}

// minimalWalker holds the mutable state of one MinimalPaths call.
type minimalWalker struct {
	graph core.Reader
	dst   core.NodeID
	stack []frame
	// onPath marks nodes of the current prefix.
	onPath map[core.NodeID]bool
	// forbidden counts, per node, how many prefix nodes other than the last
	// one it neighbours. A positive count means stepping there would create
	// a chord.
	forbidden map[core.NodeID]int
	out       PathSet
}

// MinimalPaths enumerates every chordless simple path from src to dst.
// A path with a chord to dst (dst neighbours an earlier prefix node) is
// omitted; the shorter path through that chord is emitted instead.
//
// Implementation:
//   - Stage 1: Validate the graph and both endpoints.
//   - Stage 2: Iterative DFS over (node, neighbour cursor) frames.
//   - Stage 3: A child adjacent to any prefix node except the last is
//     skipped, dst included; otherwise dst closes a path and any other
//     unvisited child is pushed.
//   - Stage 4: Backtracking pops the frame and releases its neighbours.
//
// The result is in canonical order (length, then lexicographic). A
// disconnected pair yields an empty set and no error.
//
// Errors:
//   - ErrGraphNil, ErrSameEndpoints, core.ErrNodeNotFound.
//
// Complexity:
//   - Time O(P·V·Δ) for P emitted paths and maximum degree Δ; memory O(V·Δ).
func MinimalPaths(g core.Reader, src, dst core.NodeID) (PathSet, error) {
	if err := validate(g, src, dst); err != nil {
		return nil, err
	}
	w := &minimalWalker{
		graph:     g,
		dst:       dst,
		onPath:    make(map[core.NodeID]bool),
		forbidden: make(map[core.NodeID]int),
	}
	if err := w.push(src); err != nil {
		return nil, err
	}

	for len(w.stack) > 0 {
		top := &w.stack[len(w.stack)-1]
		if top.next == len(top.nbrs) {
			w.pop()
			continue
		}
		child := top.nbrs[top.next]
		top.next++

		switch {
		case w.forbidden[child] > 0:
			// chord to an earlier prefix node
		case child == w.dst:
			w.emit()
		case !w.onPath[child]:
			if err := w.push(child); err != nil {
				return nil, err
			}
		}
	}
	w.out.Sort()

	return w.out, nil
}

// push extends the prefix with id. The previous last node stops being last,
// so its neighbours become forbidden.
func (w *minimalWalker) push(id core.NodeID) error {
	nbrs, err := w.graph.Neighbors(id)
	if err != nil {
		return fmt.Errorf("pathset: Neighbors(%d): %w", id, err)
	}
	if n := len(w.stack); n > 0 {
		for _, x := range w.stack[n-1].nbrs {
			w.forbidden[x]++
		}
	}
	w.onPath[id] = true
	w.stack = append(w.stack, frame{id: id, nbrs: nbrs})

	return nil
}

// pop removes the last prefix node; the new last node's neighbours are
// released.
func (w *minimalWalker) pop() {
	n := len(w.stack)
	w.onPath[w.stack[n-1].id] = false
	w.stack = w.stack[:n-1]
	if n > 1 {
		for _, x := range w.stack[n-2].nbrs {
			w.forbidden[x]--
		}
	}
}

// emit records the current prefix followed by dst.
func (w *minimalWalker) emit() {
	p := make(Path, 0, len(w.stack)+1)
	for _, f := range w.stack {
		p = append(p, f.id)
	}
	w.out = append(w.out, append(p, w.dst))
}
