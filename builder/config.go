// SPDX-License-Identifier: MIT
// Package: domset/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   - builderConfig is the single source of truth for all builder knobs.
//   - Defaults are deterministic and documented; no globals.
//   - newBuilderConfig applies options in order (later overrides earlier).
//
// Deterministic defaults:
//   - idFn     = decimalID ("0","1","2",...)
//   - rng      = nil (no randomness unless seeded)
//   - weightFn = constant defaultEdgeWeight

package builder

import (
	"math/rand"
	"strconv"
)

// defaultEdgeWeight is assigned to every edge unless WithWeightFn
// overrides the policy. Weights are inert for domination, so a constant
// is the right default.
const defaultEdgeWeight = 1.0

// builderConfig aggregates all knobs used by constructors.
// It is passed by value, so constructors cannot leak changes to each
// other.
type builderConfig struct {
	// Vertex ID strategy: index -> ID, deterministic.
	idFn func(int) string
	// RNG for stochastic choices; nil means no randomness available.
	rng *rand.Rand
	// Per-edge weight generator. Must tolerate a nil RNG unless the
	// caller guarantees WithSeed or WithRand.
	weightFn func(*rand.Rand) float64
}

// newBuilderConfig starts from the deterministic defaults and applies
// all options in order, last wins.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     decimalID,
		rng:      nil,
		weightFn: func(*rand.Rand) float64 { return defaultEdgeWeight },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// decimalID renders an index as a base-10 string ("0","1","2",...).
func decimalID(i int) string {
	return strconv.Itoa(i)
}
