// SPDX-License-Identifier: MIT
// Package: domset/builder
//
// impl_path.go - implementation of the Path(n) constructor.
//
// Contract:
//   - n >= 2 (else ErrTooFewVertices).
//   - Vertices cfg.idFn(0..n-1) in ascending index order.
//   - Edges (i-1)-(i) for i=1..n-1 in ascending order.
//   - Weight per edge: cfg.weightFn(cfg.rng).
//
// A path on n vertices has domination number ceil(n/3), which makes it
// the canonical known-answer fixture for the solver tests.

package builder

import (
	"fmt"

	"github.com/katalvlaran/domset/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		for i := 0; i < n; i++ {
			id := cfg.idFn(i)
			if err := g.AddVertex(id); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodPath, id, err)
			}
		}

		for i := 1; i < n; i++ {
			u, v := cfg.idFn(i-1), cfg.idFn(i)
			w := cfg.weightFn(cfg.rng)
			if err := g.AddEdge(u, v, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%s-%s, w=%g): %w", methodPath, u, v, w, err)
			}
		}

		return nil
	}
}
