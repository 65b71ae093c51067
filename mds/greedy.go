// greedy.go implements the classic greedy dominating-set heuristic.

package mds

import (
	"sort"

	"github.com/katalvlaran/domset/core"
)

// Greedy returns a dominating set built by repeatedly taking the vertex
// whose closed neighborhood covers the most still-undominated vertices,
// smallest ID on ties. The result is valid but not necessarily minimum;
// Solve uses the same procedure to seed its exact search.
//
// Returns the IDs in lexicographic order. An empty graph yields an
// empty set.
//
// Errors: ErrNilGraph if g is nil.
// Complexity: O(V·(V+E)) worst case, far less on sparse graphs.
func Greedy(g *core.Graph) ([]string, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	m := newDenseModel(g)
	picked := make([]int, 0, m.n/3+1)
	for _, comp := range m.components() {
		picked = append(picked, greedyCover(m, comp)...)
	}
	sort.Ints(picked)

	out := make([]string, len(picked))
	for i, v := range picked {
		out[i] = m.ids[v]
	}

	return out, nil
}

// greedyCover runs the heuristic over one component and returns its
// cover, indices ascending. Closed neighborhoods never cross a
// component boundary, so the union of per-component covers equals the
// whole-graph greedy result.
func greedyCover(m *denseModel, comp []int) []int {
	dominated := make([]bool, m.n)
	left := len(comp)

	var cover []int
	for left > 0 {
		best, bestGain := -1, 0
		for _, v := range comp {
			gain := 0
			for _, u := range m.closed[v] {
				if !dominated[u] {
					gain++
				}
			}
			// Strict > over an ascending scan settles ties on the
			// smallest index.
			if gain > bestGain {
				best, bestGain = v, gain
			}
		}
		// left > 0 implies some vertex still covers itself, so best is set.
		for _, u := range m.closed[best] {
			if !dominated[u] {
				dominated[u] = true
				left--
			}
		}
		cover = append(cover, best)
	}

	sort.Ints(cover)

	return cover
}
