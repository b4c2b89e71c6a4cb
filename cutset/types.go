// Package cutset defines Cut, CutSet and the sentinel errors of the minimal
// cut enumerators.
package cutset

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/lvrbd/core"
)

var (
	// ErrGraphNil is returned when a nil graph is passed to an enumerator.
	ErrGraphNil = errors.New("cutset: graph is nil")

	// ErrSameEndpoints is returned when src == dst.
	ErrSameEndpoints = errors.New("cutset: src and dst are the same node")

	// ErrInvalidOrder is returned when the cut-size ceiling is below 1.
	ErrInvalidOrder = errors.New("cutset: order must be at least 1")
)

// Cut is a set of nodes whose joint removal disconnects src from dst.
// Enumerators return its members in ascending id order.
type Cut []core.NodeID

// CutSet is an antichain of minimal cuts. Enumerators place the degenerate
// singletons {src} and {dst} first, then every other cut by (size, lex).
type CutSet []Cut

// Enumerator is the shared signature of MinimalCuts and MinimalCutsOptimized.
type Enumerator func(g core.Reader, src, dst core.NodeID, order int) (CutSet, error)

// DefaultOrder returns ⌈n/2⌉ (at least 1), the customary cut-size ceiling
// for a graph of n nodes.
func DefaultOrder(n int) int {
	if n < 2 {
		return 1
	}

	return (n + 1) / 2
}

// ExhaustiveOrder returns n-2 (at least 1): every interior node may join a
// cut, so no minimal cut of a graph of n nodes is left out.
func ExhaustiveOrder(n int) int {
	if n < 3 {
		return 1
	}

	return n - 2
}

// Compare orders cuts by size, then lexicographically.
func Compare(a, b Cut) int {
	if c := cmp.Compare(len(a), len(b)); c != 0 {
		return c
	}

	return slices.Compare(a, b)
}

// canonical sorts interior cuts and prepends the degenerate singletons.
func canonical(src, dst core.NodeID, interior []Cut) CutSet {
	for _, c := range interior {
		slices.Sort(c)
	}
	slices.SortFunc(interior, Compare)
	out := make(CutSet, 0, len(interior)+2)
	out = append(out, Cut{src}, Cut{dst})

	return append(out, interior...)
}

// Interior returns every cut except the degenerate {src} and {dst}.
func (cs CutSet) Interior(src, dst core.NodeID) CutSet {
	out := make(CutSet, 0, len(cs))
	for _, c := range cs {
		if len(c) == 1 && (c[0] == src || c[0] == dst) {
			continue
		}
		out = append(out, c)
	}

	return out
}

// Nodes returns every distinct node of cs in first-seen order.
func (cs CutSet) Nodes() []core.NodeID {
	seen := make(map[core.NodeID]struct{})
	var out []core.NodeID
	for _, c := range cs {
		for _, id := range c {
			if _, ok := seen[id]; !ok {
				seen[id] = struct{}{}
				out = append(out, id)
			}
		}
	}

	return out
}

// IsAntichain reports whether no member of cs is a subset of another.
func (cs CutSet) IsAntichain() bool {
	for i := range cs {
		for j := range cs {
			if i != j && subset(cs[i], cs[j]) {
				return false
			}
		}
	}

	return true
}

// subset reports whether every node of a is in b.
func subset(a, b Cut) bool {
	for _, id := range a {
		if !slices.Contains(b, id) {
			return false
		}
	}

	return true
}

// validate checks the common enumerator preconditions.
func validate(g core.Reader, src, dst core.NodeID, order int) error {
	if g == nil {
		return ErrGraphNil
	}
	if src == dst {
		return ErrSameEndpoints
	}
	if order < 1 {
		return fmt.Errorf("cutset: order=%d: %w", order, ErrInvalidOrder)
	}
	for _, id := range []core.NodeID{src, dst} {
		if !g.HasNode(id) {
			return fmt.Errorf("cutset: endpoint %d: %w", id, core.ErrNodeNotFound)
		}
	}

	return nil
}
