// SPDX-License-Identifier: MIT
// Package: domset/builder
//
// impl_grid.go - implementation of the Grid(rows, cols) constructor.
//
// Contract:
//   - rows >= 1 and cols >= 1 (else ErrTooFewVertices).
//   - Fixed ID scheme "r,c" in row-major order; cfg.idFn is not used so
//     that coordinates stay readable in solver output and tests.
//   - Edges per cell, row-major: right neighbor first, then down
//     neighbor.
//   - Weight per edge: cfg.weightFn(cfg.rng).
//
// Grids are the standard hard-ish small fixtures: domination needs
// roughly a fifth of the cells and defeats pure greedy early.

package builder

import (
	"fmt"

	"github.com/katalvlaran/domset/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// gridID renders the fixed "r,c" vertex label.
func gridID(r, c int) string {
	return fmt.Sprintf("%d,%d", r, c)
}

// Grid returns a Constructor that builds a rows×cols grid with
// 4-neighborhood adjacency.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: %dx%d below min=%d: %w", methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := gridID(r, c)
				if err := g.AddVertex(id); err != nil {
					return fmt.Errorf("%s: AddVertex(%s): %w", methodGrid, id, err)
				}
			}
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := gridID(r, c)
				if c+1 < cols {
					v := gridID(r, c+1)
					w := cfg.weightFn(cfg.rng)
					if err := g.AddEdge(u, v, w); err != nil {
						return fmt.Errorf("%s: AddEdge(%s-%s, w=%g): %w", methodGrid, u, v, w, err)
					}
				}
				if r+1 < rows {
					v := gridID(r+1, c)
					w := cfg.weightFn(cfg.rng)
					if err := g.AddEdge(u, v, w); err != nil {
						return fmt.Errorf("%s: AddEdge(%s-%s, w=%g): %w", methodGrid, u, v, w, err)
					}
				}
			}
		}

		return nil
	}
}
