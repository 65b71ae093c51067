// SPDX-License-Identifier: MIT
// Package: domset/builder
//
// impl_cycle.go - implementation of the Cycle(n) constructor.
//
// Contract:
//   - n >= 3 (else ErrTooFewVertices); smaller rings would need loops or
//     parallel edges, which core rejects.
//   - Vertices cfg.idFn(0..n-1) in ascending index order.
//   - Edges i-(i+1 mod n) for i=0..n-1, ascending, closing edge last.
//   - Weight per edge: cfg.weightFn(cfg.rng).
//
// A cycle on n vertices has domination number ceil(n/3), same as the
// path, which makes the pair a useful cross-check.

package builder

import (
	"fmt"

	"github.com/katalvlaran/domset/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds a simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		for i := 0; i < n; i++ {
			id := cfg.idFn(i)
			if err := g.AddVertex(id); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodCycle, id, err)
			}
		}

		for i := 0; i < n; i++ {
			u, v := cfg.idFn(i), cfg.idFn((i+1)%n)
			w := cfg.weightFn(cfg.rng)
			if err := g.AddEdge(u, v, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%s-%s, w=%g): %w", methodCycle, u, v, w, err)
			}
		}

		return nil
	}
}
