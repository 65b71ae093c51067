// parallel.go fans the root of one component out to worker goroutines.
//
// The split happens at the root only: the root's candidate list is
// computed once, then child i (exclude candidates 0..i-1, include
// candidate i) becomes an independent job explored by its own engine.
// Jobs share the incumbent and the budget, so a good set found in one
// subtree prunes the others and any budget hit stops them all. With the
// root children partitioning the space, exploring every job to the end
// proves optimality exactly as the sequential search does.

package mds

import (
	"sync"
	"sync/atomic"
)

// runParallel explores one component with up to workers goroutines.
// Reports whether the whole space was explored; false means a budget
// stop. workers is at least 2 here, Solve routes 1 to runSequential.
func runParallel(m *denseModel, comp []int, bnd BoundAlgo, bud *budgetState, inc *incumbent, workers int) bool {
	// The root node itself is expanded once, on the caller.
	root := newSearchEngine(m, comp, bnd, bud, inc)
	if !bud.nodeCheck() {
		return false
	}
	if root.lowerExtra() >= inc.best() {
		bud.pruned.Add(1)

		return true
	}

	// A nonempty component starts fully undominated, so there is always
	// a branch vertex at the root.
	u, nCand, _ := root.selectBranch()
	if nCand == 0 {
		bud.pruned.Add(1)

		return true
	}
	cands := append([]int(nil), root.orderCandidates(0, u)...)

	jobs := make(chan int, len(cands))
	for i := range cands {
		jobs <- i
	}
	close(jobs)

	var complete atomic.Bool
	complete.Store(true)

	var wg sync.WaitGroup
	for w := 0; w < workers && w < len(cands); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				e := newSearchEngine(m, comp, bnd, bud, inc)
				for _, x := range cands[:i] {
					e.excluded[x] = true
				}
				e.include(cands[i])
				if !e.dfs(1) {
					complete.Store(false)

					return
				}
			}
		}()
	}
	wg.Wait()

	return complete.Load()
}
