// SPDX-License-Identifier: MIT
// Package: lvrbd/builder
//
// impl_grid.go - Grid(rows, cols) and Ladder(n).
//
// Contract:
//   - rows, cols ≥ 1 and rows·cols ≥ 2; index r*cols+c (row-major).
//   - 4-neighbourhood: right edge then down edge per cell, row-major.
//   - Ladder(n) = Grid(2, n).

package builder

import "github.com/katalvlaran/lvrbd/core"

const methodGrid = "Grid"

// Grid returns a Constructor that builds an R×C 4-neighbourhood grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := atLeast(methodGrid, "rows", rows, 1); err != nil {
			return err
		}
		if err := atLeast(methodGrid, "cols", cols, 1); err != nil {
			return err
		}
		if err := atLeast(methodGrid, "rows*cols", rows*cols, 2); err != nil {
			return err
		}
		addNodes(g, cfg, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				i := r*cols + c
				if c+1 < cols {
					if err := link(g, cfg, methodGrid, i, i+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := link(g, cfg, methodGrid, i, i+cols); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// Ladder returns a Constructor that builds the 2×n ladder graph.
func Ladder(n int) Constructor { return Grid(2, n) }
