// SPDX-License-Identifier: MIT
// Package: domset/builder
//
// impl_star.go - implementation of the Star(n) constructor.
//
// Contract:
//   - n >= 2 total vertices (else ErrTooFewVertices).
//   - The hub carries the fixed ID "Center"; the n-1 leaves are
//     cfg.idFn(1..n-1). Index 0 is skipped so that Star and Wheel label
//     their spokes consistently.
//   - Edges Center-leaf in ascending leaf order.
//   - Weight per edge: cfg.weightFn(cfg.rng).
//
// {"Center"} is the unique minimum dominating set for n >= 3, which
// tests rely on verbatim.

package builder

import (
	"fmt"

	"github.com/katalvlaran/domset/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2

	// centerID is the fixed hub label shared by Star and Wheel.
	centerID = "Center"
)

// Star returns a Constructor that builds a star on n vertices.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}

		if err := g.AddVertex(centerID); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", methodStar, centerID, err)
		}

		for i := 1; i < n; i++ {
			leaf := cfg.idFn(i)
			if err := g.AddVertex(leaf); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodStar, leaf, err)
			}
			w := cfg.weightFn(cfg.rng)
			if err := g.AddEdge(centerID, leaf, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%s-%s, w=%g): %w", methodStar, centerID, leaf, w, err)
			}
		}

		return nil
	}
}
