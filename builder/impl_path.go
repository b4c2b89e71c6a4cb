// SPDX-License-Identifier: MIT
// Package: lvrbd/builder
//
// impl_path.go - Path(n) and Cycle(n).
//
// Contract:
//   - Path: n ≥ 2, edges i-(i+1) for i = 0..n-2.
//   - Cycle: n ≥ 3, path edges plus (n-1)-0.
//
// Complexity:
//   - Time: O(n). Space: O(1) extra.

package builder

import "github.com/katalvlaran/lvrbd/core"

const (
	methodPath    = "Path"
	methodCycle   = "Cycle"
	minPathNodes  = 2
	minCycleNodes = 3
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := atLeast(methodPath, "n", n, minPathNodes); err != nil {
			return err
		}
		addNodes(g, cfg, n)
		for i := 1; i < n; i++ {
			if err := link(g, cfg, methodPath, i-1, i); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle returns a Constructor that builds a simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := atLeast(methodCycle, "n", n, minCycleNodes); err != nil {
			return err
		}
		addNodes(g, cfg, n)
		for i := 1; i < n; i++ {
			if err := link(g, cfg, methodCycle, i-1, i); err != nil {
				return err
			}
		}

		return link(g, cfg, methodCycle, n-1, 0)
	}
}
