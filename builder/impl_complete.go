// SPDX-License-Identifier: MIT
// Package: domset/builder
//
// impl_complete.go - implementation of the Complete(n) constructor.
//
// Contract:
//   - n >= 1 (else ErrTooFewVertices); K_1 is a single vertex.
//   - Vertices cfg.idFn(0..n-1) in ascending index order.
//   - Edges over all pairs i<j, outer i ascending, inner j ascending.
//   - Weight per edge: cfg.weightFn(cfg.rng).
//
// Any single vertex dominates K_n, so the solver must return size 1.

package builder

import (
	"fmt"

	"github.com/katalvlaran/domset/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}

		for i := 0; i < n; i++ {
			id := cfg.idFn(i)
			if err := g.AddVertex(id); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodComplete, id, err)
			}
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				u, v := cfg.idFn(i), cfg.idFn(j)
				w := cfg.weightFn(cfg.rng)
				if err := g.AddEdge(u, v, w); err != nil {
					return fmt.Errorf("%s: AddEdge(%s-%s, w=%g): %w", methodComplete, u, v, w, err)
				}
			}
		}

		return nil
	}
}
