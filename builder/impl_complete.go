// SPDX-License-Identifier: MIT
// Package: lvrbd/builder
//
// impl_complete.go - Complete(n) and CompleteBipartite(n1, n2).
//
// Contract:
//   - Complete: n ≥ 1, every unordered pair i<j.
//   - CompleteBipartite: n1, n2 ≥ 1; left side indices 0..n1-1, right side
//     n1..n1+n2-1, every left-right pair.
//
// Complexity:
//   - Time: O(n²) / O(n1·n2).

package builder

import "github.com/katalvlaran/lvrbd/core"

const (
	methodComplete  = "Complete"
	methodBipartite = "CompleteBipartite"
)

// Complete returns a Constructor that builds K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := atLeast(methodComplete, "n", n, 1); err != nil {
			return err
		}
		addNodes(g, cfg, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := link(g, cfg, methodComplete, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// CompleteBipartite returns a Constructor that builds K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := atLeast(methodBipartite, "n1", n1, 1); err != nil {
			return err
		}
		if err := atLeast(methodBipartite, "n2", n2, 1); err != nil {
			return err
		}
		addNodes(g, cfg, n1+n2)
		for i := 0; i < n1; i++ {
			for j := n1; j < n1+n2; j++ {
				if err := link(g, cfg, methodBipartite, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
