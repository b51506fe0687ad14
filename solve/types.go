// Package solve defines types, options, and sentinel errors for the solve
// subpackage of github.com/katalvlaran/snakecube.
package solve

import (
	"context"
	"errors"

	"github.com/katalvlaran/snakecube/vec"
)

// Sentinel errors for solver input validation. Search-branch failures
// (collision, out of bounds, chain exhausted early) are never errors: they
// are the expected outcome of almost every branch and surface only as
// backtracking.
var (
	// ErrChainNil indicates a nil *chain.Chain was passed to Solve.
	ErrChainNil = errors.New("solve: chain is nil")
	// ErrBadCubeSize indicates a non-positive cube edge length.
	ErrBadCubeSize = errors.New("solve: cube size must be at least 1")
	// ErrAnchorOutOfBounds indicates a caller-supplied start configuration
	// whose anchor lies outside the cube.
	ErrAnchorOutOfBounds = errors.New("solve: start anchor out of bounds")
	// ErrBadDirection indicates a caller-supplied start direction that is
	// not one of the six axis unit vectors.
	ErrBadDirection = errors.New("solve: start direction must be an axis unit vector")
	// ErrBadTrace indicates a point sequence that is not a valid chain
	// trace: a non-unit step, a doubling-back step, or too few points.
	ErrBadTrace = errors.New("solve: invalid trace")
)

// Head is the transient tip of the partially folded chain: the current
// position and the direction of the most recently placed unit step. It is a
// value type — every recursive branch carries its own copy, so backtracking
// never needs to undo head mutations.
type Head struct {
	Pos vec.Vec3
	Dir vec.Vec3
}

// StartConfig pairs an anchor cell with the set of initial directions the
// first slice may take from it. The symmetry-reduced table returned by
// StartConfigs covers every solution up to cube rotation exactly once.
type StartConfig struct {
	Anchor vec.Vec3
	Dirs   []vec.Vec3
}

// Option configures optional behavior of Solve.
type Option func(*Options)

// Options holds configurable parameters for a solver run.
type Options struct {
	// Ctx allows an external deadline or cancellation; defaults to
	// context.Background(). The engine itself runs each starting
	// configuration to exhaustion.
	Ctx context.Context

	// Starts overrides the symmetry-reduced starting-configuration table.
	// Leave nil to use StartConfigs(size). Supplying the full unreduced set
	// finds every solution up to 24 times; supplying a single anchor
	// restricts the search to it.
	Starts []StartConfig

	// OnSolution, if non-nil, is invoked for each recorded solution.
	// Returning an error aborts the search with that error.
	OnSolution func(Solution) error
}

// DefaultOptions returns an Options struct with a background context, the
// symmetry-reduced starting table, and no solution hook.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		Starts:     nil,
		OnSolution: nil,
	}
}

// WithContext returns an Option that sets the context for the search.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithStartConfigs returns an Option that replaces the symmetry-reduced
// starting-configuration table with cfgs.
func WithStartConfigs(cfgs []StartConfig) Option {
	return func(o *Options) {
		o.Starts = cfgs
	}
}

// WithOnSolution returns an Option that installs fn as a per-solution hook.
func WithOnSolution(fn func(Solution) error) Option {
	return func(o *Options) {
		o.OnSolution = fn
	}
}

// Result captures the outcome of a solver run.
type Result struct {
	// Solutions collects every recorded solution, append-only, in the
	// deterministic order the search discovers them.
	Solutions []Solution

	// PerStart counts recorded solutions per starting configuration, in
	// table order. "No solutions from this anchor" is a normal terminal
	// outcome, not an error.
	PerStart []int

	// Attempts is the number of starting configurations searched.
	Attempts int

	// Pruned counts candidate directions discarded because the slice would
	// leave the cube or collide with placed cells. Diagnostic only.
	Pruned int
}
