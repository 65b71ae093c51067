// types.go declares options, results, statistics, and sentinel errors.

package mds

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
)

// Sentinel errors returned by the solvers.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed in.
	ErrNilGraph = errors.New("mds: graph is nil")

	// ErrBadOptions indicates an invalid resolved configuration: a node
	// cap below NoNodeLimit, a worker count below one, or an unknown
	// bound policy.
	ErrBadOptions = errors.New("mds: invalid options")

	// ErrUnknownVertex indicates a candidate set member that is not a
	// vertex of the graph under verification.
	ErrUnknownVertex = errors.New("mds: vertex not in graph")

	// ErrNotDominating indicates a candidate set that leaves at least one
	// vertex without a dominator.
	ErrNotDominating = errors.New("mds: set is not dominating")

	// ErrVerifyFailed indicates that the mandatory post-search check
	// rejected a solver result. It signals a bug in the search itself,
	// never bad user input.
	ErrVerifyFailed = errors.New("mds: internal verification failed")
)

// BoundAlgo selects the admissible lower-bound policy used for pruning.
type BoundAlgo int

const (
	// NoBound disables pruning below plain feasibility.
	// Testing and baselines only.
	NoBound BoundAlgo = iota

	// CoverageBound divides the undominated count by the largest closed
	// neighborhood among free vertices. Cheap, admissible, the default.
	CoverageBound

	// ResidualBound divides by the largest number of still-undominated
	// vertices a single free vertex can cover. At least as tight as
	// CoverageBound and still admissible, at a higher per-node cost.
	ResidualBound
)

// NoNodeLimit disables the expanded-node cap.
const NoNodeLimit int64 = -1

// Options configures Solve. Construct it through DefaultOptions and the
// With* functional options.
type Options struct {
	// MaxNodes caps expanded search nodes. NoNodeLimit means unlimited;
	// 0 skips the search entirely and returns the greedy cover with
	// Optimal=false.
	MaxNodes int64

	// TimeLimit is a soft wall-clock budget; non-positive means none.
	// Exhaustion stops the search with Optimal=false, never an error.
	TimeLimit time.Duration

	// Ctx cancels the search cooperatively; nil means context.Background().
	Ctx context.Context

	// Workers is the number of parallel root-subtree workers per
	// component. 1 keeps the search fully sequential and deterministic.
	Workers int

	// Bound selects the admissible lower-bound policy.
	Bound BoundAlgo

	// Logger receives solve-level events: seeding, incumbent
	// improvements, per-component completion, the final summary.
	// nil disables logging. The per-node hot path never logs.
	Logger *zap.Logger
}

// Option is a functional option for Solve.
type Option func(*Options)

// WithMaxNodes caps the number of expanded search nodes. Pass NoNodeLimit
// for no cap; 0 skips the search and returns the greedy cover. Values
// below NoNodeLimit fail with ErrBadOptions.
func WithMaxNodes(n int64) Option {
	return func(o *Options) { o.MaxNodes = n }
}

// WithTimeLimit sets a soft wall-clock budget for the search.
// Non-positive values mean "no deadline".
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) { o.TimeLimit = d }
}

// WithContext attaches a context for cooperative cancellation.
// Panics on nil to surface programmer error early.
func WithContext(ctx context.Context) Option {
	if ctx == nil {
		panic("mds: WithContext(nil)")
	}

	return func(o *Options) { o.Ctx = ctx }
}

// WithWorkers sets the number of parallel subtree workers.
// Values below one fail with ErrBadOptions during Solve.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithBound selects the lower-bound policy.
func WithBound(b BoundAlgo) Option {
	return func(o *Options) { o.Bound = b }
}

// WithLogger attaches a logger for solve-level events.
// Panics on nil; omit the option entirely for silence.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("mds: WithLogger(nil)")
	}

	return func(o *Options) { o.Logger = l }
}

// DefaultOptions returns the configuration Solve starts from before
// applying functional options.
//
// Defaults:
//   - MaxNodes:  NoNodeLimit (unlimited).
//   - TimeLimit: 0 (no deadline).
//   - Ctx:       context.Background().
//   - Workers:   1 (sequential, deterministic).
//   - Bound:     CoverageBound.
//   - Logger:    nil (silent).
func DefaultOptions() Options {
	return Options{
		MaxNodes: NoNodeLimit,
		Workers:  1,
		Bound:    CoverageBound,
	}
}

// Improvement is one incumbent update: the moment the best known total
// size dropped to Size.
type Improvement struct {
	// Size is the global incumbent size right after the update.
	Size int

	// Nodes is the number of nodes expanded when the update happened.
	Nodes int64

	// Elapsed is the wall-clock offset from the start of Solve.
	Elapsed time.Duration
}

// Stats describes the search behind a Result.
type Stats struct {
	// Nodes counts expanded search nodes across all components and workers.
	Nodes int64

	// Pruned counts subtrees cut by the lower bound or by dead branches.
	Pruned int64

	// Elapsed is the total wall-clock time spent in Solve.
	Elapsed time.Duration

	// LowerBound is the certified global lower bound: solved components
	// contribute their exact optimum, truncated ones their root bound.
	LowerBound int

	// Gap is Size-LowerBound; zero whenever the result is optimal.
	Gap int

	// GreedySize is the size of the greedy cover that seeded the search.
	GreedySize int

	// Components is the number of connected components.
	Components int

	// Workers echoes the configured worker count.
	Workers int

	// Trace lists incumbent improvements in chronological order; the
	// sizes are strictly decreasing.
	Trace []Improvement
}

// Result is the outcome of Solve.
type Result struct {
	// Set is the dominating set, vertex IDs in lexicographic order.
	Set []string

	// Size is len(Set).
	Size int

	// Optimal reports whether Set is proven minimum. False after any
	// budget stop; the set is still valid and Stats.LowerBound certifies
	// how far it can be from the optimum.
	Optimal bool

	// Stats describes the search that produced the set.
	Stats Stats
}
