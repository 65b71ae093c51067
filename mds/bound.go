// bound.go implements the admissible lower bounds used for pruning.
//
// Both nontrivial policies are fractional covering bounds: so long as
// every addable vertex dominates at most k undominated vertices, any
// completion needs at least ceil(undominated/k) more picks. Neither
// bound ever exceeds the true requirement, so pruning on them cannot
// cut the optimum.

package mds

// infeasibleExtra is the bound reported for a dead node, one whose
// remaining free vertices cannot dominate the component. Large enough
// to defeat any incumbent while keeping len(chosen)+infeasibleExtra
// within int range.
const infeasibleExtra = 1 << 30

// lowerExtra returns an admissible lower bound on how many more picks
// the current partial set needs. Free means neither chosen nor
// branch-excluded at this node.
func (e *searchEngine) lowerExtra() int {
	if e.undom == 0 {
		return 0
	}

	switch e.bnd {
	case NoBound:
		// Plain feasibility: anything undominated needs one more pick.
		return 1

	case ResidualBound:
		// Widest residual coverage among free vertices.
		top := 0
		for _, v := range e.comp {
			if e.inSet[v] || e.excluded[v] {
				continue
			}
			gain := 0
			for _, u := range e.m.closed[v] {
				if e.coverCnt[u] == 0 {
					gain++
				}
			}
			if gain > top {
				top = gain
			}
		}
		if top == 0 {
			return infeasibleExtra
		}

		return (e.undom + top - 1) / top

	default:
		// CoverageBound: widest closed neighborhood among free vertices.
		top := 0
		for _, v := range e.comp {
			if e.inSet[v] || e.excluded[v] {
				continue
			}
			if l := len(e.m.closed[v]); l > top {
				top = l
			}
		}
		if top == 0 {
			return infeasibleExtra
		}

		return (e.undom + top - 1) / top
	}
}

// rootLower bounds the domination number of a whole component before
// any choice is made. With nothing dominated yet the coverage and
// residual policies coincide, so one formula serves both; NoBound
// degrades to plain feasibility. Solve reports this for components the
// budget cut short.
func rootLower(m *denseModel, comp []int, algo BoundAlgo) int {
	if len(comp) == 0 {
		return 0
	}
	if algo == NoBound {
		return 1
	}

	top := 0
	for _, v := range comp {
		if l := len(m.closed[v]); l > top {
			top = l
		}
	}

	return (len(comp) + top - 1) / top
}
