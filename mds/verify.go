// verify.go checks candidate dominating sets against a graph.

package mds

import (
	"fmt"

	"github.com/katalvlaran/domset/core"
)

// Verify reports whether set dominates g: every vertex is a member or
// adjacent to one. Duplicates in set are harmless; an empty set is
// valid exactly for an empty graph.
//
// Solve runs this on its own output before returning, and external
// callers can use it to audit sets from any source.
//
// Errors: ErrNilGraph, ErrUnknownVertex (wrapped with the offending ID),
// ErrNotDominating (wrapped with an uncovered vertex).
// Complexity: O(V + Σ deg(set)).
func Verify(g *core.Graph, set []string) error {
	if g == nil {
		return ErrNilGraph
	}

	dominated := make(map[string]bool, g.VertexCount())
	for _, id := range set {
		cl, err := g.ClosedNeighborhood(id)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrUnknownVertex, id)
		}
		for _, u := range cl {
			dominated[u] = true
		}
	}

	for _, id := range g.Vertices() {
		if !dominated[id] {
			return fmt.Errorf("%w: %q has no dominator", ErrNotDominating, id)
		}
	}

	return nil
}
