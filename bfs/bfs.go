// Package bfs provides breadth-first search over a core.Reader,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// BFS explores nodes in increasing distance from a start node,
// with an optional visit hook, depth limiting, neighbor filtering and early stop.
package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvrbd/core"
)

// ErrNeighbors is returned when fetching neighbors from the graph fails.
var ErrNeighbors = errors.New("bfs: neighbor iteration error")

// errStop ends the main loop once StopAt has been discovered.
var errStop = errors.New("bfs: stop")

// queueItem pairs a node id with its BFS depth.
type queueItem struct {
	id    core.NodeID
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph core.Reader
	opts  BFSOptions
	queue []queueItem
	res   *BFSResult
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartNodeNotFound for invalid input,
// ErrOptionViolation for bad options, ErrNeighbors for graph failures,
// or any user-supplied hook error.
func BFS(g core.Reader, start core.NodeID, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasNode(start) {
		return nil, ErrStartNodeNotFound
	}

	w := &walker{
		graph: g,
		opts:  o,
		res: &BFSResult{
			Depth:  make(map[core.NodeID]int),
			Parent: make(map[core.NodeID]core.NodeID),
			start:  start,
		},
	}

	// Seed queue with start node (no parent)
	w.enqueue(start, 0)
	if err := w.loop(); err != nil && !errors.Is(err, errStop) {
		return w.res, err
	}

	return w.res, nil
}

// enqueue records depth d for id and adds it to the queue.
func (w *walker) enqueue(id core.NodeID, d int) {
	w.res.Depth[id] = d
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or early stop.
func (w *walker) loop() error {
	if w.opts.hasStopAt && w.queue[0].id == w.opts.StopAt {
		w.res.Order = append(w.res.Order, w.opts.StopAt)
		return errStop
	}
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// enqueueNeighbors retrieves neighbors, applies filtering and MaxDepth,
// and enqueues each unseen neighbor. Returns ErrNeighbors on lookup failure.
func (w *walker) enqueueNeighbors(item queueItem) error {
	neighbors, err := w.graph.Neighbors(item.id)
	if err != nil {
		return fmt.Errorf("%w: failed to get neighbors of %d: %v", ErrNeighbors, item.id, err)
	}
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	for _, nbr := range neighbors {
		if !w.opts.FilterNeighbor(item.id, nbr) {
			continue
		}
		// first time seen?
		if _, seen := w.res.Depth[nbr]; seen {
			continue
		}
		w.res.Parent[nbr] = item.id
		w.enqueue(nbr, nextDepth)
		if w.opts.hasStopAt && nbr == w.opts.StopAt {
			return errStop
		}
	}

	return nil
}
