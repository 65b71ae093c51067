// SPDX-License-Identifier: MIT
// Package: domset/builder
//
// impl_wheel.go - implementation of the Wheel(n) constructor.
//
// Contract:
//   - n >= 3 ring vertices (else ErrTooFewVertices); the total vertex
//     count is n+1 including the hub.
//   - Ring vertices cfg.idFn(0..n-1); the hub carries the fixed ID
//     "Center" (shared with Star).
//   - Edges: ring i-(i+1 mod n) ascending first, then spokes
//     Center-i ascending.
//   - Weight per edge: cfg.weightFn(cfg.rng).
//
// The hub neighbors everything, so {"Center"} dominates any wheel.

package builder

import (
	"fmt"

	"github.com/katalvlaran/domset/core"
)

const (
	methodWheel  = "Wheel"
	minWheelRing = 3
)

// Wheel returns a Constructor that builds an n-ring wheel with a hub.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelRing {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelRing, ErrTooFewVertices)
		}

		for i := 0; i < n; i++ {
			id := cfg.idFn(i)
			if err := g.AddVertex(id); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodWheel, id, err)
			}
		}
		if err := g.AddVertex(centerID); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", methodWheel, centerID, err)
		}

		for i := 0; i < n; i++ {
			u, v := cfg.idFn(i), cfg.idFn((i+1)%n)
			w := cfg.weightFn(cfg.rng)
			if err := g.AddEdge(u, v, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%s-%s, w=%g): %w", methodWheel, u, v, w, err)
			}
		}
		for i := 0; i < n; i++ {
			v := cfg.idFn(i)
			w := cfg.weightFn(cfg.rng)
			if err := g.AddEdge(centerID, v, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%s-%s, w=%g): %w", methodWheel, centerID, v, w, err)
			}
		}

		return nil
	}
}
