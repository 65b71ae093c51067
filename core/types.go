// types.go declares the Graph type and its options, the Edge and
// EdgeListEntry value types, and the package sentinel errors.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that an operation received an empty vertex ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrInvalidEdge indicates an edge that violates the simple-graph
	// contract: an empty endpoint, a self-loop, or a negative/NaN weight.
	// Mutators wrap it with context via fmt.Errorf("%w: ...").
	ErrInvalidEdge = errors.New("core: invalid edge")
)

// Edge is one undirected edge as reported by Edges.
// Endpoints are stored in canonical order: From < To lexicographically.
type Edge struct {
	// From is the smaller endpoint ID.
	From string

	// To is the larger endpoint ID.
	To string

	// Weight is the stored edge weight. Weights are inert for domination;
	// they are validated and kept so loaders can round-trip their input.
	Weight float64
}

// EdgeListEntry is one row of an external edge list: an undirected edge
// between U and V with an optional weight. Loaders produce these rows and
// FromEdgeList folds them into a Graph.
type EdgeListEntry struct {
	U      string
	V      string
	Weight float64
}

// GraphOption configures a Graph at construction time.
type GraphOption func(g *Graph)

// WithExpectedVertices pre-sizes internal storage for n vertices.
// A hint only; the graph grows beyond it transparently.
func WithExpectedVertices(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.sizeHint = n
		}
	}
}

// Graph is an undirected simple graph with float64 edge weights.
//
// A single RWMutex guards both adjacency and the neighborhood cache: the
// intended lifecycle is build-then-solve, so contention is negligible and
// one lock keeps the invariants easy to reason about.
type Graph struct {
	mu sync.RWMutex

	// adj[u][v] = weight, mirrored for both endpoints.
	adj map[string]map[string]float64

	// edgeCount tracks distinct undirected edges.
	edgeCount int

	// closed caches sorted closed neighborhoods; mutations reset it.
	closed map[string][]string

	sizeHint int
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	g.adj = make(map[string]map[string]float64, g.sizeHint)

	return g
}
