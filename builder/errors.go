// SPDX-License-Identifier: MIT
// Package: domset/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy (strict):
//   - Only package-level sentinels are exposed; callers branch with
//     errors.Is, never by matching strings.
//   - Implementations attach context by wrapping with %w, keeping the
//     sentinel reachable for errors.Is.
//   - Constructors never panic at runtime; panics are confined to the
//     WithX option constructors.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter (n, rows, cols) below the
// minimum the requested constructor supports.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0, 1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor resolved without
// an RNG. Supply WithSeed or WithRand; only the degenerate probabilities
// 0 and 1 work without one.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates the orchestrator could not run a
// constructor at all, such as a nil Constructor in the BuildGraph list.
var ErrConstructFailed = errors.New("builder: construction failed")
