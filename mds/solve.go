// solve.go wires the pipeline: option resolution, greedy seeding,
// per-component search, certification, and result assembly.

package mds

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/domset/core"
)

// resolveOptions folds the functional options into DefaultOptions and
// validates the outcome.
func resolveOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	if o.MaxNodes < NoNodeLimit {
		return o, fmt.Errorf("%w: MaxNodes %d", ErrBadOptions, o.MaxNodes)
	}
	if o.Workers < 1 {
		return o, fmt.Errorf("%w: Workers %d", ErrBadOptions, o.Workers)
	}
	switch o.Bound {
	case NoBound, CoverageBound, ResidualBound:
	default:
		return o, fmt.Errorf("%w: Bound %d", ErrBadOptions, int(o.Bound))
	}
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}

	return o, nil
}

// Solve computes a minimum dominating set of g.
//
// Pipeline:
//  1. Snapshot the graph and split it into connected components.
//  2. Seed every component with its greedy cover.
//  3. Per component: certify the seed against the root lower bound, or
//     run the exact search within the shared budgets.
//  4. Merge, verify, and report with a certified global lower bound.
//
// An exhausted budget (nodes, time, or context) is not an error: the
// result carries the best set found so far, Optimal=false, and
// Stats.LowerBound still brackets the optimum. MaxNodes == 0 skips all
// proof work and returns the greedy cover unproven.
//
// The returned set is deterministic for fixed input and options when
// Workers is 1; with more workers the set may vary between runs, its
// size and optimality do not, except that budget stops land at
// different points.
//
// Errors: ErrNilGraph, ErrBadOptions, ErrVerifyFailed.
func Solve(g *core.Graph, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}
	o, err := resolveOptions(opts)
	if err != nil {
		return Result{}, err
	}

	start := time.Now()
	m := newDenseModel(g)
	if m.n == 0 {
		// Vacuously dominated.
		return Result{
			Set:     []string{},
			Optimal: true,
			Stats:   Stats{Elapsed: time.Since(start), Workers: o.Workers},
		}, nil
	}

	comps := m.components()
	bud := newBudgetState(o)
	rec := &recorder{start: start, bud: bud, log: o.Logger}

	// Pass 1: greedy seeds for every component.
	seeds := make([][]int, len(comps))
	greedyTotal := 0
	for i, comp := range comps {
		seeds[i] = greedyCover(m, comp)
		greedyTotal += len(seeds[i])
	}
	rec.total = greedyTotal

	o.Logger.Info("search seeded",
		zap.Int("vertices", m.n),
		zap.Int("components", len(comps)),
		zap.Int("greedy_size", greedyTotal),
	)

	// Pass 2: resolve each component. Certificates cost no nodes, so
	// they stay available even after a budget stop; searches started
	// after a stop return immediately and leave the seed standing.
	searchAllowed := o.MaxNodes != 0
	chosen := make([]int, 0, greedyTotal)
	lbSum := 0
	solvedAll := true
	for i, comp := range comps {
		rl := rootLower(m, comp, o.Bound)
		ic := newIncumbent(seeds[i], rec)

		solved := false
		switch {
		case !searchAllowed:
			// Greedy only, no proof attempted.
		case o.Bound != NoBound && len(seeds[i]) == rl:
			// Root certificate: the seed already meets the bound.
			solved = true
		case o.Workers > 1:
			solved = runParallel(m, comp, o.Bound, bud, ic, o.Workers)
		default:
			solved = runSequential(m, comp, o.Bound, bud, ic)
		}

		set := ic.snapshot()
		chosen = append(chosen, set...)
		if solved {
			lbSum += len(set)
		} else {
			lbSum += rl
			solvedAll = false
		}

		o.Logger.Debug("component finished",
			zap.Int("component", i),
			zap.Int("vertices", len(comp)),
			zap.Int("size", len(set)),
			zap.Bool("solved", solved),
		)
	}

	sort.Ints(chosen)
	ids := make([]string, len(chosen))
	for i, v := range chosen {
		ids[i] = m.ids[v]
	}

	// Mandatory self-check. A failure here is a solver bug surfacing,
	// never bad input.
	if verr := Verify(g, ids); verr != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrVerifyFailed, verr)
	}

	res := Result{
		Set:     ids,
		Size:    len(ids),
		Optimal: solvedAll,
		Stats: Stats{
			Nodes:      bud.nodes.Load(),
			Pruned:     bud.pruned.Load(),
			Elapsed:    time.Since(start),
			LowerBound: lbSum,
			Gap:        len(ids) - lbSum,
			GreedySize: greedyTotal,
			Components: len(comps),
			Workers:    o.Workers,
			Trace:      rec.trace,
		},
	}

	o.Logger.Info("search finished",
		zap.Int("size", res.Size),
		zap.Bool("optimal", res.Optimal),
		zap.Int("lower_bound", res.Stats.LowerBound),
		zap.Int64("nodes", res.Stats.Nodes),
		zap.Int64("pruned", res.Stats.Pruned),
		zap.Duration("elapsed", res.Stats.Elapsed),
	)

	return res, nil
}
