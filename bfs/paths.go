package bfs

import (
	"fmt"

	"github.com/katalvlaran/lvrbd/core"
)

// ShortestPathLength returns the number of edges on a shortest src→dst path.
//
// Errors:
//   - ErrStartNodeNotFound if src is absent.
//   - ErrNoPath if dst is absent or unreachable.
func ShortestPathLength(g core.Reader, src, dst core.NodeID) (int, error) {
	res, err := BFS(g, src, WithStopAt(dst))
	if err != nil {
		return 0, err
	}
	d, ok := res.Depth[dst]
	if !ok {
		return 0, fmt.Errorf("bfs: %d→%d: %w", src, dst, ErrNoPath)
	}

	return d, nil
}

// ShortestPath returns one fewest-hop src→dst path. Among equal-length
// paths the one reached through smaller neighbour ids wins.
func ShortestPath(g core.Reader, src, dst core.NodeID) ([]core.NodeID, error) {
	res, err := BFS(g, src, WithStopAt(dst))
	if err != nil {
		return nil, err
	}

	return res.PathTo(dst)
}

// HasPath reports whether src and dst are connected. Missing nodes yield false.
func HasPath(g core.Reader, src, dst core.NodeID) bool {
	if g == nil || !g.HasNode(src) || !g.HasNode(dst) {
		return false
	}
	_, err := ShortestPathLength(g, src, dst)

	return err == nil
}
