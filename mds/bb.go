// bb.go implements the exact search: depth-first branch and bound over
// partial dominating sets.
//
// Shape of the search:
//  1. Every node picks the undominated vertex with the fewest free
//     dominators (smallest index on ties) and branches on which member
//     of its closed neighborhood joins the set. Candidates are tried in
//     descending residual coverage, strongest completions first.
//  2. Once a child returns, its candidate is excluded for the younger
//     siblings. The children then partition the solution space, so no
//     set is ever visited twice.
//  3. Pruning: a node dies when len(chosen)+lowerExtra() reaches the
//     incumbent size. The bounds are admissible (bound.go), so the
//     optimum is never cut.
//  4. Budgets: the node cap is enforced exactly on every expansion; the
//     deadline and the context are probed once every 4096 nodes to keep
//     the hot path branch-free. A budget stop abandons the proof, never
//     the incumbent.
//
// Complexity: exponential worst case (the problem is NP-hard). Per node:
// O(|component|·deg) bound work and O(deg²) candidate scoring. Memory is
// O(V) per engine plus per-depth candidate buffers reused across visits.

package mds

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// budgetProbeMask spaces out the deadline and context probes: they fire
// when nodes&budgetProbeMask == 0, once every 4096 expansions.
const budgetProbeMask = 4095

// budgetState is the shared stop machinery. Every engine and worker of
// one Solve call holds the same instance, so any budget hit stops them
// all at once.
type budgetState struct {
	maxNodes    int64 // NoNodeLimit means uncapped
	deadline    time.Time
	useDeadline bool
	ctx         context.Context

	nodes   atomic.Int64
	pruned  atomic.Int64
	stopped atomic.Bool
}

func newBudgetState(o Options) *budgetState {
	b := &budgetState{maxNodes: o.MaxNodes, ctx: o.Ctx}
	if o.TimeLimit > 0 {
		b.useDeadline = true
		b.deadline = time.Now().Add(o.TimeLimit)
	}

	return b
}

// nodeCheck accounts one expanded node and reports whether the search
// may continue. The node cap is exact: an increment that lands past the
// cap is rolled back before the stop flag is raised, so Stats.Nodes
// never exceeds MaxNodes. Deadline and context are only probed on every
// 4096th node; instances too small to reach a probe finish instead.
func (b *budgetState) nodeCheck() bool {
	if b.stopped.Load() {
		return false
	}
	n := b.nodes.Add(1)
	if b.maxNodes != NoNodeLimit && n > b.maxNodes {
		b.nodes.Add(-1)
		b.stopped.Store(true)

		return false
	}
	if n&budgetProbeMask == 0 {
		if b.useDeadline && time.Now().After(b.deadline) {
			b.stopped.Store(true)

			return false
		}
		select {
		case <-b.ctx.Done():
			b.stopped.Store(true)

			return false
		default:
		}
	}

	return true
}

// recorder accumulates the incumbent trace across all components.
// total tracks the global best size: the sum of the greedy seeds at
// first, shrinking as components improve on theirs.
type recorder struct {
	mu    sync.Mutex
	start time.Time
	bud   *budgetState
	log   *zap.Logger
	total int
	trace []Improvement
}

// improved applies a component improvement of the given positive delta.
// Callers hold their incumbent's lock, so entries land in strictly
// decreasing total order even with concurrent workers.
func (r *recorder) improved(delta int) {
	r.mu.Lock()
	r.total -= delta
	imp := Improvement{
		Size:    r.total,
		Nodes:   r.bud.nodes.Load(),
		Elapsed: time.Since(r.start),
	}
	r.trace = append(r.trace, imp)
	r.mu.Unlock()

	r.log.Debug("incumbent improved",
		zap.Int("size", imp.Size),
		zap.Int64("nodes", imp.Nodes),
		zap.Duration("elapsed", imp.Elapsed),
	)
}

// incumbent is the best known set for the component under search.
// The hot path reads the size through an atomic; the set itself is
// guarded by the mutex and only touched on improvements.
type incumbent struct {
	mu   sync.Mutex
	set  []int
	size atomic.Int64
	rec  *recorder
}

// newIncumbent seeds the incumbent, normally with the greedy cover.
func newIncumbent(seed []int, rec *recorder) *incumbent {
	ic := &incumbent{rec: rec}
	ic.set = append([]int(nil), seed...)
	ic.size.Store(int64(len(seed)))

	return ic
}

// best returns the current incumbent size.
func (ic *incumbent) best() int { return int(ic.size.Load()) }

// offer installs set as the new incumbent if it is strictly smaller,
// copying the slice. The trace update runs under the same lock, so
// concurrent improvements are recorded in the order they applied.
func (ic *incumbent) offer(set []int) {
	n := int64(len(set))
	if n >= ic.size.Load() {
		return
	}

	ic.mu.Lock()
	defer ic.mu.Unlock()
	old := ic.size.Load()
	if n >= old {
		return // lost the race to a better concurrent offer
	}
	ic.set = append(ic.set[:0], set...)
	ic.size.Store(n)
	ic.rec.improved(int(old - n))
}

// snapshot returns a copy of the incumbent set.
func (ic *incumbent) snapshot() []int {
	ic.mu.Lock()
	defer ic.mu.Unlock()

	return append([]int(nil), ic.set...)
}

// searchEngine holds all per-subtree search state. A dedicated struct
// (instead of closures) keeps dependencies explicit and the hot-path
// state predictable; parallel workers clone one engine per root child.
type searchEngine struct {
	// Shared, read-only or internally synchronized
	m    *denseModel
	comp []int
	bnd  BoundAlgo
	bud  *budgetState
	inc  *incumbent

	// Current search state
	inSet    []bool
	excluded []bool
	coverCnt []int // dominators per vertex; 0 means undominated
	undom    int   // comp members with coverCnt == 0
	chosen   []int

	// Per-depth candidate buffers, reused across visits
	cands  [][]int
	scores [][]int
}

func newSearchEngine(m *denseModel, comp []int, bnd BoundAlgo, bud *budgetState, inc *incumbent) *searchEngine {
	return &searchEngine{
		m:        m,
		comp:     comp,
		bnd:      bnd,
		bud:      bud,
		inc:      inc,
		inSet:    make([]bool, m.n),
		excluded: make([]bool, m.n),
		coverCnt: make([]int, m.n),
		undom:    len(comp),
		chosen:   make([]int, 0, len(comp)),
		cands:    make([][]int, len(comp)+1),
		scores:   make([][]int, len(comp)+1),
	}
}

// include adds v to the partial set and updates domination counts.
func (e *searchEngine) include(v int) {
	e.inSet[v] = true
	e.chosen = append(e.chosen, v)
	for _, u := range e.m.closed[v] {
		if e.coverCnt[u] == 0 {
			e.undom--
		}
		e.coverCnt[u]++
	}
}

// retract undoes the matching include.
func (e *searchEngine) retract(v int) {
	e.inSet[v] = false
	e.chosen = e.chosen[:len(e.chosen)-1]
	for _, u := range e.m.closed[v] {
		e.coverCnt[u]--
		if e.coverCnt[u] == 0 {
			e.undom++
		}
	}
}

// selectBranch picks the undominated vertex with the fewest free
// dominators, smallest index on ties. nCand == 0 flags a dead node.
// ok is false only when nothing is undominated.
func (e *searchEngine) selectBranch() (branch, nCand int, ok bool) {
	branch = -1
	for _, u := range e.comp {
		if e.coverCnt[u] > 0 {
			continue
		}
		c := 0
		// Chosen vertices never appear here: every dominator of an
		// undominated vertex is outside the set, so the excluded flag
		// alone filters.
		for _, w := range e.m.closed[u] {
			if !e.excluded[w] {
				c++
			}
		}
		if branch == -1 || c < nCand {
			branch, nCand = u, c
		}
	}

	return branch, nCand, branch != -1
}

// candidateOrder sorts candidates by descending score, ascending index
// on equal scores. The (score, index) keys are unique, so the order is
// total and sort.Sort is deterministic here despite being unstable.
type candidateOrder struct {
	cands  []int
	scores []int
}

func (o *candidateOrder) Len() int { return len(o.cands) }
func (o *candidateOrder) Less(i, j int) bool {
	if o.scores[i] != o.scores[j] {
		return o.scores[i] > o.scores[j]
	}

	return o.cands[i] < o.cands[j]
}
func (o *candidateOrder) Swap(i, j int) {
	o.cands[i], o.cands[j] = o.cands[j], o.cands[i]
	o.scores[i], o.scores[j] = o.scores[j], o.scores[i]
}

// orderCandidates lists the free dominators of u, most residual
// coverage first. Depth-indexed buffers make the search allocation-free
// after the first visit at each depth.
func (e *searchEngine) orderCandidates(depth, u int) []int {
	cs := e.cands[depth][:0]
	ss := e.scores[depth][:0]
	for _, w := range e.m.closed[u] {
		if e.excluded[w] {
			continue
		}
		gain := 0
		for _, x := range e.m.closed[w] {
			if e.coverCnt[x] == 0 {
				gain++
			}
		}
		cs = append(cs, w)
		ss = append(ss, gain)
	}

	ord := candidateOrder{cands: cs, scores: ss}
	sort.Sort(&ord)
	e.cands[depth], e.scores[depth] = cs, ss

	return cs
}

// dfs expands one node. Reports false as soon as the budget stops the
// search; the incumbent found so far stays valid either way.
func (e *searchEngine) dfs(depth int) bool {
	if !e.bud.nodeCheck() {
		return false
	}

	// Prune against the incumbent.
	if len(e.chosen)+e.lowerExtra() >= e.inc.best() {
		e.bud.pruned.Add(1)

		return true
	}

	// Everything dominated: a strict improvement, by the prune above.
	if e.undom == 0 {
		e.inc.offer(e.chosen)

		return true
	}

	u, nCand, _ := e.selectBranch()
	if nCand == 0 {
		// Some vertex lost all dominators to exclusions: dead branch.
		e.bud.pruned.Add(1)

		return true
	}

	cands := e.orderCandidates(depth, u)

	done := 0
	ok := true
	for _, v := range cands {
		e.include(v)
		ok = e.dfs(depth + 1)
		e.retract(v)
		if !ok {
			break
		}
		// Sibling exclusion: later children must not reuse v, which
		// partitions the subtree.
		e.excluded[v] = true
		done++
	}
	for i := 0; i < done; i++ {
		e.excluded[cands[i]] = false
	}

	return ok
}

// runSequential explores one component with a single engine. Reports
// whether the subtree was fully explored; false means a budget stop.
func runSequential(m *denseModel, comp []int, bnd BoundAlgo, bud *budgetState, inc *incumbent) bool {
	return newSearchEngine(m, comp, bnd, bud, inc).dfs(0)
}
