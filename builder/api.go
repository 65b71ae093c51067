// SPDX-License-Identifier: MIT
// Package: domset/builder
//
// api.go - thin public entry point for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g,
//     resolves cfg, runs cons in order.
//   - All public factories are declared here and implemented in
//     impl_*.go, one file per topology.
//   - Functional options resolve into an immutable builderConfig.
//   - Determinism: same inputs, options, seed, and constructor order
//     produce identical graphs.
//   - Safety: constructors return sentinel errors and never panic.

package builder

import (
	"fmt"

	"github.com/katalvlaran/domset/core"
)

// Constructor applies one deterministic graph mutation using the
// resolved builderConfig. Implementations validate their parameters
// before touching g and return sentinel errors, never panic.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with the graph options gopts,
// resolves the builder configuration from bopts, and applies all
// constructors in order. The first constructor error aborts the build
// and is wrapped with "BuildGraph:"; no partial cleanup is attempted.
//
// Errors: ErrConstructFailed for a nil constructor, otherwise whatever
// the failing constructor returned (branch with errors.Is).
// Complexity: O(len(bopts)) resolution plus the constructors' own cost.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// =============================================================================
// Topology factories (declarations) - implemented in impl_*.go
// =============================================================================
//
// Each factory returns a Constructor closure. The closure adds vertices
// via cfg.idFn (except documented fixed IDs like "Center" and the grid's
// "r,c" scheme), emits edges in a stable documented order, and weights
// every edge with cfg.weightFn.

// Path builds a simple path P_n (n >= 2).
// Complexity: O(n) vertices + O(n-1) edges.
//func Path(n int) Constructor

// Cycle builds an n-vertex simple cycle C_n (n >= 3).
// Complexity: O(n) vertices + O(n) edges.
//func Cycle(n int) Constructor

// Complete builds the complete simple graph K_n (n >= 1).
// Complexity: O(n) vertices + O(n²) edges.
//func Complete(n int) Constructor

// Star builds a star with center "Center" and n-1 leaves (n >= 2).
// Complexity: O(n) vertices + O(n-1) edges.
//func Star(n int) Constructor

// Wheel builds an n-vertex ring plus a hub "Center" joined to every ring
// vertex (n >= 3).
// Complexity: O(n) vertices + O(2n) edges.
//func Wheel(n int) Constructor

// Grid builds an R×C 4-neighborhood grid with fixed IDs "r,c", row-major.
// Complexity: O(R·C) vertices + O(R·C) edges.
//func Grid(rows, cols int) Constructor

// Petersen builds the Petersen graph: outer 5-cycle, inner pentagram,
// five spokes. Ten vertices via cfg.idFn(0..9).
// Complexity: O(1), fixed topology.
//func Petersen() Constructor

// RandomSparse builds an Erdős–Rényi style graph over n vertices with
// independent edge probability p. Requires an RNG (WithSeed/WithRand)
// unless p is exactly 0 or 1.
// Complexity: O(n²) Bernoulli trials; deterministic for a fixed seed.
//func RandomSparse(n int, p float64) Constructor
