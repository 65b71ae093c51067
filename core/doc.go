// Package core defines the undirected graph model underlying the domset
// solvers: vertices addressed by string IDs, simple weighted edges, and
// cached closed neighborhoods.
//
// The model is write-once-read-many. Callers assemble a graph with
// AddVertex and AddEdge (or FromEdgeList in one shot), then hand it to
// the solvers, which only read. All methods are safe for concurrent use;
// a single sync.RWMutex guards adjacency and the neighborhood cache.
//
// Conventions:
//
//   - Vertex IDs are non-empty strings ordered lexicographically.
//     Vertices and every neighborhood accessor return sorted slices.
//   - Edges are undirected and simple: no self-loops, no parallel edges.
//     Re-adding an existing edge updates its weight in place.
//   - Weights are finite float64 values ≥ 0, stored for round-tripping;
//     they do not influence domination.
//   - The closed neighborhood N[v] (v plus its neighbors) is cached per
//     vertex; any mutation drops the cache.
//
// Errors are strict sentinels (ErrInvalidEdge, ErrEmptyVertexID,
// ErrVertexNotFound, ErrEdgeNotFound) wrapped with context via %w;
// callers branch with errors.Is.
package core
