// SPDX-License-Identifier: MIT
// Package: domset/builder
//
// impl_petersen.go - implementation of the Petersen() constructor.
//
// Contract:
//   - Fixed topology, no parameters: vertices cfg.idFn(0..9).
//   - Indices 0..4 form the outer 5-cycle, 5..9 the inner pentagram
//     (i joined to i+2 mod 5), and spoke i-(i+5) ties the rings.
//   - Emission order: outer ring, then spokes, then pentagram.
//   - Weight per edge: cfg.weightFn(cfg.rng).
//
// The Petersen graph is 3-regular with domination number 3, a classic
// solver fixture because the greedy heuristic also lands on 3 here.

package builder

import (
	"fmt"

	"github.com/katalvlaran/domset/core"
)

const (
	methodPetersen = "Petersen"

	petersenRing  = 5
	petersenOrder = 10
)

// Petersen returns a Constructor that builds the Petersen graph.
func Petersen() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		for i := 0; i < petersenOrder; i++ {
			id := cfg.idFn(i)
			if err := g.AddVertex(id); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodPetersen, id, err)
			}
		}

		addEdge := func(a, b int) error {
			u, v := cfg.idFn(a), cfg.idFn(b)
			w := cfg.weightFn(cfg.rng)
			if err := g.AddEdge(u, v, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%s-%s, w=%g): %w", methodPetersen, u, v, w, err)
			}

			return nil
		}

		for i := 0; i < petersenRing; i++ {
			if err := addEdge(i, (i+1)%petersenRing); err != nil {
				return err
			}
		}
		for i := 0; i < petersenRing; i++ {
			if err := addEdge(i, i+petersenRing); err != nil {
				return err
			}
		}
		for i := 0; i < petersenRing; i++ {
			if err := addEdge(petersenRing+i, petersenRing+(i+2)%petersenRing); err != nil {
				return err
			}
		}

		return nil
	}
}
