// SPDX-License-Identifier: MIT
// Package: lvrbd/builder
//
// impl_star.go - Star(n) and Wheel(n).
//
// Contract:
//   - Star: n ≥ 2, hub is index 0, leaves 1..n-1.
//   - Wheel: n ≥ 4, hub index 0 plus a rim cycle over 1..n-1.

package builder

import "github.com/katalvlaran/lvrbd/core"

const (
	methodStar    = "Star"
	methodWheel   = "Wheel"
	minStarNodes  = 2
	minWheelNodes = 4
)

// Star returns a Constructor that builds a star with hub idFn(0).
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := atLeast(methodStar, "n", n, minStarNodes); err != nil {
			return err
		}
		addNodes(g, cfg, n)
		for i := 1; i < n; i++ {
			if err := link(g, cfg, methodStar, 0, i); err != nil {
				return err
			}
		}

		return nil
	}
}

// Wheel returns a Constructor that builds W_n: hub idFn(0) joined to every
// node of the rim cycle idFn(1..n-1).
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := atLeast(methodWheel, "n", n, minWheelNodes); err != nil {
			return err
		}
		addNodes(g, cfg, n)
		for i := 1; i < n; i++ {
			if err := link(g, cfg, methodWheel, 0, i); err != nil {
				return err
			}
		}
		for i := 2; i < n; i++ {
			if err := link(g, cfg, methodWheel, i-1, i); err != nil {
				return err
			}
		}

		return link(g, cfg, methodWheel, n-1, 1)
	}
}
