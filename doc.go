// Package domset is your in-memory toolkit for computing exact minimum
// dominating sets: from core graph primitives to a budgeted, parallel
// branch-and-bound solver with certified bounds.
//
// 🚀 What is domset?
//
//	A modern, deterministic library that brings together:
//		• Core primitives: build undirected graphs safely under locks
//		• Greedy cover: fast feasible dominating sets for seeding
//		• Exact search: branch-and-bound with admissible lower bounds
//		• Budgets: node caps, wall-clock deadlines, context cancellation
//		• Certified results: optimality flag, lower bound, gap reporting
//		• Builders: deterministic topologies (paths, wheels, grids, Petersen…)
//
// ✨ Why choose domset?
//
//   - Exact by default: heuristics only seed the search, never replace it
//   - Deterministic: same graph and options ⇒ same set, same statistics
//   - Observable: plug a zap.Logger to follow incumbents and components
//   - Extensible: pluggable bound policies, optional parallel workers
//
// Everything is organized under three subpackages:
//
//	core/    — fundamental Graph and edge-list types with cached closed neighborhoods
//	mds/     — greedy cover, admissible bounds, exact branch-and-bound, verification
//	builder/ — deterministic topology constructors for tests, examples and benchmarks
//
// Quick ASCII example:
//
//	    A───B───C───D───E
//
//	a five-vertex path is dominated by {B, D}: every vertex either belongs
//	to the set or neighbors a member, and no single vertex can do the job.
//
//	go get github.com/katalvlaran/domset
package domset
