// Package mds_test provides lightweight helpers shared across the
// *_test.go files in this package: deterministic fixtures and a
// brute-force oracle for small instances.
package mds_test

import (
	"math/bits"
	"testing"
	"time"

	"github.com/katalvlaran/domset/builder"
	"github.com/katalvlaran/domset/core"
)

// -----------------------------------------------------------------------------
// Constants - single source of truth for test knobs
// -----------------------------------------------------------------------------

const (
	// seedDet is the deterministic seed for every stochastic fixture.
	seedDet = int64(42)

	// timeTiny is a tiny wall-clock budget used to exercise deadline
	// behavior. Budget probes fire once every 4096 nodes, so the
	// instance must be large enough to reach a probe; see bigSparse.
	timeTiny = 1 * time.Millisecond

	// nBig and pBig shape the instance used for budget-stop tests: big
	// enough that an unbounded search cannot finish, small enough that
	// seeding stays instant.
	nBig = 64
	pBig = 0.18

	// bruteMax caps the oracle's instance size (2^n subsets).
	bruteMax = 16
)

// -----------------------------------------------------------------------------
// Fixtures
// -----------------------------------------------------------------------------

// mkGraph builds a graph from unweighted edge pairs.
func mkGraph(t *testing.T, pairs [][2]string) *core.Graph {
	t.Helper()
	entries := make([]core.EdgeListEntry, len(pairs))
	for i, p := range pairs {
		entries[i] = core.EdgeListEntry{U: p[0], V: p[1], Weight: 1}
	}
	g, err := core.FromEdgeList(entries)
	if err != nil {
		t.Fatalf("FromEdgeList: %v", err)
	}

	return g
}

// spiderGraph returns the hub-and-legs fixture where greedy overshoots:
// hub H joined to X1..X4, each Xi carrying one leaf Li. Greedy takes
// {H, L1..L4} (size 5) while {X1..X4} (size 4) is optimal, so the exact
// search must improve on its seed here.
func spiderGraph(t *testing.T) *core.Graph {
	t.Helper()

	return mkGraph(t, [][2]string{
		{"H", "X1"}, {"H", "X2"}, {"H", "X3"}, {"H", "X4"},
		{"X1", "L1"}, {"X2", "L2"}, {"X3", "L3"}, {"X4", "L4"},
	})
}

// bigSparse returns the seeded random instance for budget tests.
func bigSparse(t *testing.T) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(seedDet)},
		builder.RandomSparse(nBig, pBig))
	if err != nil {
		t.Fatalf("BuildGraph: %v", err)
	}

	return g
}

// seededSparse returns a small random instance for oracle comparisons.
func seededSparse(t *testing.T, n int, p float64, seed int64) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(seed)},
		builder.RandomSparse(n, p))
	if err != nil {
		t.Fatalf("BuildGraph: %v", err)
	}

	return g
}

// -----------------------------------------------------------------------------
// Brute-force oracle
// -----------------------------------------------------------------------------

// bruteForceMinimum returns the exact domination number by enumerating
// all vertex subsets. Only for n <= bruteMax.
func bruteForceMinimum(t *testing.T, g *core.Graph) int {
	t.Helper()
	ids := g.Vertices()
	n := len(ids)
	if n > bruteMax {
		t.Fatalf("bruteForceMinimum: n=%d exceeds cap %d", n, bruteMax)
	}
	if n == 0 {
		return 0
	}

	index := make(map[string]int, n)
	for i, id := range ids {
		index[id] = i
	}
	closedMask := make([]uint32, n)
	for i, id := range ids {
		cl, err := g.ClosedNeighborhood(id)
		if err != nil {
			t.Fatalf("ClosedNeighborhood(%s): %v", id, err)
		}
		var m uint32
		for _, u := range cl {
			m |= 1 << uint(index[u])
		}
		closedMask[i] = m
	}

	all := uint32(1)<<uint(n) - 1
	best := n
	for mask := uint32(1); mask <= all; mask++ {
		if bits.OnesCount32(mask) >= best {
			continue
		}
		var cover uint32
		for i := 0; i < n; i++ {
			if mask&(1<<uint(i)) != 0 {
				cover |= closedMask[i]
			}
		}
		if cover == all {
			best = bits.OnesCount32(mask)
		}
	}

	return best
}

// -----------------------------------------------------------------------------
// Generic helpers
// -----------------------------------------------------------------------------

// Repeat runs fn n times. Useful for determinism and stability checks.
func Repeat(t *testing.T, n int, fn func(t *testing.T)) {
	t.Helper()
	for i := 0; i < n; i++ {
		fn(t)
	}
}
