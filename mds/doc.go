// Package mds computes exact minimum dominating sets on undirected graphs.
//
// A dominating set S covers every vertex: each v either belongs to S or
// has a neighbor in S. Solve finds a smallest such S via depth-first
// branch-and-bound:
//
//   - A greedy cover seeds the incumbent, so a feasible answer exists
//     from the first moment and pruning bites immediately.
//   - Admissible lower bounds (CoverageBound, ResidualBound) cut
//     subtrees that cannot improve the incumbent.
//   - Branching targets the most constrained undominated vertex; after a
//     dominator has been explored it is excluded for the remaining
//     siblings, so the children partition the solution space.
//
// Connected components are solved independently and merged. Budgets
// (node cap, wall-clock deadline, context cancellation) degrade the
// result from "optimal" to "best found with a certified lower bound"
// instead of failing. Optional workers parallelize the root subtrees of
// each component; size, optimality, and bounds are unaffected.
//
// Use this package when exactness matters on small-to-medium instances;
// Greedy alone serves as a fast baseline when it does not.
package mds
