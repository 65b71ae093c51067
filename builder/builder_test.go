// Package builder_test contains functional tests for the topology
// constructors: counts, concrete adjacency, validation sentinels,
// determinism under seeding, and option behavior.
package builder_test

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/domset/builder"
	"github.com/katalvlaran/domset/core"
)

// edgeKey identifies an undirected edge by its canonical endpoints.
type edgeKey struct{ U, V string }

// edgeSet maps every canonical edge of g to its weight.
func edgeSet(g *core.Graph) map[edgeKey]float64 {
	m := make(map[edgeKey]float64)
	for _, e := range g.Edges() {
		m[edgeKey{U: e.From, V: e.To}] = e.Weight
	}

	return m
}

// letterID is an alternative ID scheme used by option tests.
func letterID(i int) string { return string(rune('A' + i)) }

// TestBuilders_Functional checks every topology's counts and a sample
// of its concrete adjacency.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		ctor        builder.Constructor
		wantV       int
		wantE       int
		sampleCheck func(t *testing.T, g *core.Graph)
	}{
		{
			name:  "Path(5)",
			ctor:  builder.Path(5),
			wantV: 5, wantE: 4,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				edges := edgeSet(g)
				for i := 0; i < 4; i++ {
					u, v := fmt.Sprint(i), fmt.Sprint(i+1)
					if _, ok := edges[edgeKey{u, v}]; !ok {
						t.Errorf("Path: missing edge %s-%s", u, v)
					}
				}
			},
		},
		{
			name:  "Cycle(5)",
			ctor:  builder.Cycle(5),
			wantV: 5, wantE: 5,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				if !g.HasEdge("4", "0") {
					t.Error("Cycle: missing closing edge 4-0")
				}
			},
		},
		{
			name:  "Complete(4)",
			ctor:  builder.Complete(4),
			wantV: 4, wantE: 6,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				for i := 0; i < 4; i++ {
					d, err := g.Degree(fmt.Sprint(i))
					if err != nil || d != 3 {
						t.Errorf("Complete: degree(%d)=%d err=%v, want 3", i, d, err)
					}
				}
			},
		},
		{
			name:  "Star(4)",
			ctor:  builder.Star(4),
			wantV: 4, wantE: 3,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				edges := edgeSet(g)
				for i := 1; i < 4; i++ {
					leaf := fmt.Sprint(i)
					if _, ok := edges[edgeKey{"Center", leaf}]; !ok {
						t.Errorf("Star: missing spoke Center-%s", leaf)
					}
				}
			},
		},
		{
			name:  "Wheel(4)",
			ctor:  builder.Wheel(4),
			wantV: 5, wantE: 8, // 4 ring edges + 4 spokes
			sampleCheck: func(t *testing.T, g *core.Graph) {
				if !g.HasEdge("0", "1") {
					t.Error("Wheel: missing ring edge 0-1")
				}
				if !g.HasEdge("Center", "2") {
					t.Error("Wheel: missing spoke Center-2")
				}
			},
		},
		{
			name:  "Grid(2x3)",
			ctor:  builder.Grid(2, 3),
			wantV: 6, wantE: 7, // 2*(3-1) horizontal + (2-1)*3 vertical
			sampleCheck: func(t *testing.T, g *core.Graph) {
				if !g.HasEdge("0,0", "0,1") {
					t.Error("Grid: missing horizontal edge 0,0-0,1")
				}
				if !g.HasEdge("0,0", "1,0") {
					t.Error("Grid: missing vertical edge 0,0-1,0")
				}
				if g.HasEdge("0,0", "1,1") {
					t.Error("Grid: unexpected diagonal edge 0,0-1,1")
				}
			},
		},
		{
			name:  "Petersen",
			ctor:  builder.Petersen(),
			wantV: 10, wantE: 15,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				// 3-regular by construction.
				for _, id := range g.Vertices() {
					if d, _ := g.Degree(id); d != 3 {
						t.Errorf("Petersen: degree(%s)=%d, want 3", id, d)
					}
				}
				if !g.HasEdge("5", "7") {
					t.Error("Petersen: missing pentagram edge 5-7")
				}
			},
		},
		{
			name:  "RandomSparse(5,p=0)",
			ctor:  builder.RandomSparse(5, 0),
			wantV: 5, wantE: 0,
			sampleCheck: func(t *testing.T, g *core.Graph) {},
		},
		{
			name:  "RandomSparse(5,p=1)",
			ctor:  builder.RandomSparse(5, 1),
			wantV: 5, wantE: 10, // degenerate p=1 is K_5
			sampleCheck: func(t *testing.T, g *core.Graph) {},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(nil, nil, tc.ctor)
			if err != nil {
				t.Fatalf("BuildGraph(%s): %v", tc.name, err)
			}

			if got := g.VertexCount(); got != tc.wantV {
				t.Errorf("vertices: got %d, want %d", got, tc.wantV)
			}
			if got := g.EdgeCount(); got != tc.wantE {
				t.Errorf("edges: got %d, want %d", got, tc.wantE)
			}
			tc.sampleCheck(t, g)

			// Idempotence: a rebuild produces the same counts.
			g2, err2 := builder.BuildGraph(nil, nil, tc.ctor)
			if err2 != nil {
				t.Fatalf("second BuildGraph(%s): %v", tc.name, err2)
			}
			if g2.VertexCount() != tc.wantV || g2.EdgeCount() != tc.wantE {
				t.Errorf("idempotence: counts changed after re-run of %s", tc.name)
			}
		})
	}
}

// TestBuilders_Validation checks that out-of-domain parameters surface
// the documented sentinels and leave nothing half-built.
func TestBuilders_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ctor builder.Constructor
		want error
	}{
		{"Path(1)", builder.Path(1), builder.ErrTooFewVertices},
		{"Cycle(2)", builder.Cycle(2), builder.ErrTooFewVertices},
		{"Complete(0)", builder.Complete(0), builder.ErrTooFewVertices},
		{"Star(1)", builder.Star(1), builder.ErrTooFewVertices},
		{"Wheel(2)", builder.Wheel(2), builder.ErrTooFewVertices},
		{"Grid(0x3)", builder.Grid(0, 3), builder.ErrTooFewVertices},
		{"RandomSparse(0)", builder.RandomSparse(0, 0.5), builder.ErrTooFewVertices},
		{"RandomSparse(p<0)", builder.RandomSparse(5, -0.1), builder.ErrInvalidProbability},
		{"RandomSparse(p>1)", builder.RandomSparse(5, 1.1), builder.ErrInvalidProbability},
		{"RandomSparse(no rng)", builder.RandomSparse(5, 0.5), builder.ErrNeedRandSource},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := builder.BuildGraph(nil, nil, tc.ctor)
			if !errors.Is(err, tc.want) {
				t.Fatalf("got error %v, want errors.Is(%v)", err, tc.want)
			}
		})
	}
}

// TestBuildGraph_NilConstructor rejects a nil entry up front.
func TestBuildGraph_NilConstructor(t *testing.T) {
	t.Parallel()

	_, err := builder.BuildGraph(nil, nil, builder.Path(3), nil)
	if !errors.Is(err, builder.ErrConstructFailed) {
		t.Fatalf("got error %v, want errors.Is(ErrConstructFailed)", err)
	}
}

// TestRandomSparse_Deterministic freezes the topology per seed.
func TestRandomSparse_Deterministic(t *testing.T) {
	t.Parallel()

	const (
		n    = 24
		p    = 0.2
		seed = 42
	)

	build := func(seed int64) map[edgeKey]float64 {
		g, err := builder.BuildGraph(nil,
			[]builder.BuilderOption{builder.WithSeed(seed)},
			builder.RandomSparse(n, p))
		if err != nil {
			t.Fatalf("BuildGraph: %v", err)
		}

		return edgeSet(g)
	}

	a, b := build(seed), build(seed)
	if len(a) != len(b) {
		t.Fatalf("same seed, different edge counts: %d vs %d", len(a), len(b))
	}
	for k := range a {
		if _, ok := b[k]; !ok {
			t.Fatalf("same seed, edge %v missing from rebuild", k)
		}
	}

	// A different seed should move at least one edge on a graph this size.
	c := build(seed + 1)
	same := len(a) == len(c)
	if same {
		for k := range a {
			if _, ok := c[k]; !ok {
				same = false
				break
			}
		}
	}
	if same {
		t.Error("different seeds produced identical topologies")
	}
}

// TestWithIDScheme relabels vertices through the configured scheme.
func TestWithIDScheme(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithIDScheme(letterID)},
		builder.Path(3))
	if err != nil {
		t.Fatalf("BuildGraph: %v", err)
	}

	want := []string{"A", "B", "C"}
	got := g.Vertices()
	if len(got) != len(want) {
		t.Fatalf("vertices: got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("vertices: got %v, want %v", got, want)
		}
	}
}

// TestWithWeightFn applies the custom weight policy to every edge.
func TestWithWeightFn(t *testing.T) {
	t.Parallel()

	const w = 2.5
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithWeightFn(func(*rand.Rand) float64 { return w })},
		builder.Cycle(4))
	if err != nil {
		t.Fatalf("BuildGraph: %v", err)
	}

	for _, e := range g.Edges() {
		if e.Weight != w {
			t.Fatalf("edge %s-%s weight %g, want %g", e.From, e.To, e.Weight, w)
		}
	}
}

// TestOptionPanics: option constructors reject nil inputs loudly.
func TestOptionPanics(t *testing.T) {
	t.Parallel()

	mustPanic := func(name string, fn func()) {
		defer func() {
			if recover() == nil {
				t.Errorf("%s: expected panic", name)
			}
		}()
		fn()
	}

	mustPanic("WithIDScheme(nil)", func() { builder.WithIDScheme(nil) })
	mustPanic("WithRand(nil)", func() { builder.WithRand(nil) })
	mustPanic("WithWeightFn(nil)", func() { builder.WithWeightFn(nil) })
}
