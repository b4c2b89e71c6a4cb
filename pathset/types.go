// Package pathset defines Path, PathSet and the sentinel errors of the path
// enumerators.
package pathset

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/lvrbd/core"
)

var (
	// ErrGraphNil is returned when a nil graph is passed to an enumerator.
	ErrGraphNil = errors.New("pathset: graph is nil")

	// ErrSameEndpoints is returned when src == dst.
	ErrSameEndpoints = errors.New("pathset: src and dst are the same node")
)

// Path is a simple path: src first, dst last, no repeated node.
type Path []core.NodeID

// Interior returns the nodes strictly between the endpoints.
func (p Path) Interior() []core.NodeID {
	if len(p) < 3 {
		return nil
	}

	return p[1 : len(p)-1]
}

// Contains reports whether id lies on the path.
func (p Path) Contains(id core.NodeID) bool {
	return slices.Contains(p, id)
}

// PathSet is an ordered collection of paths between one src and one dst.
type PathSet []Path

// Compare orders paths by length, then lexicographically by node id.
func Compare(a, b Path) int {
	if c := cmp.Compare(len(a), len(b)); c != 0 {
		return c
	}

	return slices.Compare(a, b)
}

// Sort puts ps into canonical order: ascending by (length, lexicographic nodes).
func (ps PathSet) Sort() {
	slices.SortStableFunc(ps, Compare)
}

// Nodes returns every distinct node of ps in first-seen order.
func (ps PathSet) Nodes() []core.NodeID {
	seen := make(map[core.NodeID]struct{})
	var out []core.NodeID
	for _, p := range ps {
		for _, id := range p {
			if _, ok := seen[id]; !ok {
				seen[id] = struct{}{}
				out = append(out, id)
			}
		}
	}

	return out
}

// validate checks the common enumerator preconditions.
func validate(g core.Reader, src, dst core.NodeID) error {
	if g == nil {
		return ErrGraphNil
	}
	if src == dst {
		return ErrSameEndpoints
	}
	for _, id := range []core.NodeID{src, dst} {
		if !g.HasNode(id) {
			return fmt.Errorf("pathset: endpoint %d: %w", id, core.ErrNodeNotFound)
		}
	}

	return nil
}
