// Package builder provides deterministic constructors for the graph
// families used throughout domset: benchmark fixtures, test instances,
// and the classic shapes whose dominating sets are known in closed form.
//
// The package offers the following components:
//
//   - One orchestrator: BuildGraph(gopts, bopts, cons...) creates a
//     core.Graph, resolves the builder configuration, and applies the
//     given constructors in order.
//   - Topology factories, each returning a Constructor closure:
//     Path, Cycle, Complete, Star, Wheel, Grid, Petersen, RandomSparse.
//   - Functional options: WithIDScheme, WithSeed, WithRand, WithWeightFn.
//     Option constructors validate their inputs and panic on programmer
//     error; constructors themselves never panic and return sentinel
//     errors instead.
//
// Guarantees:
//
//   - Determinism: the same constructors, options, and seed always
//     produce the identical graph, including vertex insertion order and
//     edge emission order. RandomSparse draws its Bernoulli trials in a
//     fixed pair order, so a fixed seed freezes the topology.
//   - Validation first: every constructor checks its parameters before
//     touching the graph, so a failed build leaves no partial topology
//     behind it.
//   - Sentinel errors only: branch with errors.Is against
//     ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource, and
//     ErrConstructFailed.
//
// Weights exist so that fixtures resemble graphs from the wild; the
// solver ignores them. The default policy assigns every edge weight 1.
//
// See the individual factory docs for per-topology contracts, minima,
// and complexity notes.
package builder
