// graph.go implements mutation and query methods on Graph.
//
// Mutators take the write lock and drop the closed-neighborhood cache.
// Queries take the read lock and return copies, never views into internal
// storage.

package core

import (
	"fmt"
	"math"
	"sort"
)

// AddVertex inserts an isolated vertex. Adding an existing vertex is a
// no-op, so loaders may call it freely.
// Complexity: O(1).
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.adj[id]; !ok {
		g.adj[id] = make(map[string]float64)
		g.closed = nil
	}

	return nil
}

// AddEdge inserts the undirected edge u-v, creating missing endpoints on
// the fly. Re-adding an existing edge updates its weight in place and
// leaves EdgeCount unchanged.
//
// Rejected with a wrapped ErrInvalidEdge: empty endpoints, self-loops,
// NaN or negative weights.
// Complexity: O(1).
func (g *Graph) AddEdge(u, v string, weight float64) error {
	if u == "" || v == "" {
		return fmt.Errorf("%w: empty endpoint (%q, %q)", ErrInvalidEdge, u, v)
	}
	if u == v {
		return fmt.Errorf("%w: self-loop on %q", ErrInvalidEdge, u)
	}
	if math.IsNaN(weight) {
		return fmt.Errorf("%w: NaN weight on %s-%s", ErrInvalidEdge, u, v)
	}
	if weight < 0 {
		return fmt.Errorf("%w: negative weight %g on %s-%s", ErrInvalidEdge, weight, u, v)
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.adj[u]; !ok {
		g.adj[u] = make(map[string]float64)
	}
	if _, ok := g.adj[v]; !ok {
		g.adj[v] = make(map[string]float64)
	}
	if _, ok := g.adj[u][v]; !ok {
		g.edgeCount++
	}
	g.adj[u][v] = weight
	g.adj[v][u] = weight
	g.closed = nil

	return nil
}

// HasVertex reports whether id is present.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adj[id]

	return ok
}

// HasEdge reports whether the undirected edge u-v is present.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adj[u][v]

	return ok
}

// EdgeWeight returns the stored weight of the edge u-v.
// Errors: ErrVertexNotFound if an endpoint is missing, ErrEdgeNotFound if
// both endpoints exist but the edge does not.
func (g *Graph) EdgeWeight(u, v string) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	nu, ok := g.adj[u]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrVertexNotFound, u)
	}
	if _, ok = g.adj[v]; !ok {
		return 0, fmt.Errorf("%w: %q", ErrVertexNotFound, v)
	}
	w, ok := nu[v]
	if !ok {
		return 0, fmt.Errorf("%w: %s-%s", ErrEdgeNotFound, u, v)
	}

	return w, nil
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adj)
}

// EdgeCount returns the number of distinct undirected edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Vertices returns all vertex IDs in lexicographic order.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	ids := make([]string, 0, len(g.adj))
	for id := range g.adj {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// NeighborIDs returns the sorted open neighborhood of id.
// Complexity: O(deg log deg).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	nb, ok := g.adj[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	out := make([]string, 0, len(nb))
	for v := range nb {
		out = append(out, v)
	}
	sort.Strings(out)

	return out, nil
}

// Degree returns the number of neighbors of id.
func (g *Graph) Degree(id string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	nb, ok := g.adj[id]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	return len(nb), nil
}

// ClosedNeighborhood returns the sorted closed neighborhood N[id]: the
// vertex itself plus all of its neighbors. Results are cached until the
// next mutation; the caller receives a private copy either way.
// Complexity: O(deg log deg) on a cache miss, O(deg) afterwards.
func (g *Graph) ClosedNeighborhood(id string) ([]string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	nb, ok := g.adj[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	cached, hit := g.closed[id]
	if !hit {
		cached = make([]string, 0, len(nb)+1)
		cached = append(cached, id)
		for v := range nb {
			cached = append(cached, v)
		}
		sort.Strings(cached)
		if g.closed == nil {
			g.closed = make(map[string][]string)
		}
		g.closed[id] = cached
	}

	return append([]string(nil), cached...), nil
}

// Edges returns every undirected edge once, endpoints in canonical order
// (From < To), sorted by (From, To).
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Edge, 0, g.edgeCount)
	for u, nb := range g.adj {
		for v, w := range nb {
			if u < v {
				out = append(out, Edge{From: u, To: v, Weight: w})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From == out[j].From {
			return out[i].To < out[j].To
		}

		return out[i].From < out[j].From
	})

	return out
}
