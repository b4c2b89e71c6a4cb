// SPDX-License-Identifier: MIT
// Package: lvrbd/builder
//
// helpers.go - shared steps of the topology constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvrbd/core"
)

// addNodes inserts idFn(0..n-1) in ascending index order.
func addNodes(g *core.Graph, cfg builderConfig, n int) {
	for i := 0; i < n; i++ {
		g.AddNode(cfg.idFn(i))
	}
}

// link connects index i to index j with a weight drawn from cfg.weightFn.
func link(g *core.Graph, cfg builderConfig, method string, i, j int) error {
	u, v := cfg.idFn(i), cfg.idFn(j)
	w := cfg.weightFn(cfg.rng)
	if err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%d-%d, w=%g): %w", method, u, v, w, err)
	}

	return nil
}

// atLeast validates a size parameter.
func atLeast(method, name string, got, minimum int) error {
	if got < minimum {
		return fmt.Errorf("%s: %s=%d < min=%d: %w", method, name, got, minimum, ErrTooFewVertices)
	}

	return nil
}
