// edgelist.go implements one-shot construction from external edge lists.

package core

import "fmt"

// FromEdgeList builds a Graph from rows produced by an external loader
// (CSV columns, database rows, generators). Endpoints are added
// implicitly. Construction is all-or-nothing: the first invalid row
// aborts and no partial graph escapes.
//
// The returned error carries the offending row index around the
// underlying sentinel, so callers can locate the row and still branch
// with errors.Is on ErrInvalidEdge.
// Complexity: O(R) for R rows.
func FromEdgeList(entries []EdgeListEntry, opts ...GraphOption) (*Graph, error) {
	g := NewGraph(opts...)
	for i, e := range entries {
		if err := g.AddEdge(e.U, e.V, e.Weight); err != nil {
			return nil, fmt.Errorf("core: edge list row %d: %w", i, err)
		}
	}

	return g, nil
}
