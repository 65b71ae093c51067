// model.go snapshots a core.Graph into index-dense form for the search.

package mds

import (
	"sort"

	"github.com/katalvlaran/domset/core"
)

// denseModel is an immutable, index-dense snapshot of the input graph.
// Vertex i is ids[i]; ids are sorted, so neighbor lists built from them
// come out ascending without extra sorting. All search phases share one
// model and never touch the originating graph again.
type denseModel struct {
	ids    []string // position -> vertex ID, lexicographic
	index  map[string]int
	adj    [][]int // open neighborhoods, ascending
	closed [][]int // closed neighborhoods N[v], ascending
	n      int
}

// newDenseModel captures g. The snapshot is taken through the public
// read API only, so later mutations of g cannot corrupt a running solve.
func newDenseModel(g *core.Graph) *denseModel {
	ids := g.Vertices()
	n := len(ids)

	m := &denseModel{
		ids:    ids,
		index:  make(map[string]int, n),
		adj:    make([][]int, n),
		closed: make([][]int, n),
		n:      n,
	}
	for i, id := range ids {
		m.index[id] = i
	}

	for i, id := range ids {
		// ids came out of Vertices and vertices are never removed, so
		// the lookup cannot fail.
		nbrs, _ := g.NeighborIDs(id)
		row := make([]int, 0, len(nbrs))
		for _, nb := range nbrs {
			row = append(row, m.index[nb])
		}
		// NeighborIDs is sorted by ID and ids is sorted the same way,
		// so row is already ascending.
		m.adj[i] = row

		cl := make([]int, len(row), len(row)+1)
		copy(cl, row)
		at := sort.SearchInts(cl, i)
		cl = append(cl, 0)
		copy(cl[at+1:], cl[at:])
		cl[at] = i
		m.closed[i] = cl
	}

	return m
}

// components partitions vertex indices into connected components by BFS.
// Component order follows the smallest contained index; members come out
// ascending. Isolated vertices form singleton components.
func (m *denseModel) components() [][]int {
	seen := make([]bool, m.n)
	queue := make([]int, 0, m.n)

	var comps [][]int
	for start := 0; start < m.n; start++ {
		if seen[start] {
			continue
		}
		seen[start] = true
		queue = append(queue[:0], start)

		comp := []int{start}
		for head := 0; head < len(queue); head++ {
			v := queue[head]
			for _, nb := range m.adj[v] {
				if seen[nb] {
					continue
				}
				seen[nb] = true
				queue = append(queue, nb)
				comp = append(comp, nb)
			}
		}

		sort.Ints(comp)
		comps = append(comps, comp)
	}

	return comps
}
