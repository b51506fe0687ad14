// Package solve implements the recursive backtracking search that folds a
// chain into the cube, one slice per recursion level.
package solve

import (
	"fmt"

	"github.com/katalvlaran/snakecube/chain"
	"github.com/katalvlaran/snakecube/cube"
	"github.com/katalvlaran/snakecube/vec"
)

// turnDirs is the lookup table of directions a 90° turn joint may bend to:
// for each of the six unit directions (indexed as in vec.Units), the four
// perpendicular unit directions in canonical order. Same direction would
// merge two slices, opposite would fold the chain back into itself.
var turnDirs = makeTurnDirs()

func makeTurnDirs() [6][4]vec.Vec3 {
	var table [6][4]vec.Vec3
	for i, d := range vec.Units {
		k := 0
		for _, nd := range vec.Units {
			if vec.IsPerpendicular(d, nd) {
				table[i][k] = nd
				k++
			}
		}
	}

	return table
}

// Solve searches every starting configuration for foldings of c that fill a
// size×size×size cube, collecting all solutions in deterministic order.
// Each configuration gets an independent pass over a fresh grid; within a
// pass the grid is mutated and restored in strict LIFO order, so it is
// bit-for-bit identical before and after every failed branch.
//
// Returns the aggregate Result, or an error for invalid input
// (ErrChainNil, ErrBadCubeSize, ErrAnchorOutOfBounds, ErrBadDirection),
// a cancelled context, or a failing OnSolution hook. A chain that admits no
// folding yields an empty Result, not an error.
//
// Complexity: exponential in the number of slices in the worst case; the
// bounds/collision prune discards almost every branch at its first
// geometric violation.
func Solve(c *chain.Chain, size int, opts ...Option) (*Result, error) {
	// 1. Validate structural input.
	if c == nil {
		return nil, ErrChainNil
	}
	if size < 1 {
		return nil, ErrBadCubeSize
	}

	// 2. Apply options.
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	starts := o.Starts
	if starts == nil {
		starts = StartConfigs(size)
	}

	// 3. One independent pass per starting configuration.
	res := &Result{PerStart: make([]int, 0, len(starts))}
	slices := c.Slices()
	for _, cfg := range starts {
		grid, err := cube.NewGrid(size)
		if err != nil {
			return nil, ErrBadCubeSize
		}
		if !grid.InBounds(cfg.Anchor) {
			return nil, ErrAnchorOutOfBounds
		}
		for _, d := range cfg.Dirs {
			if !d.IsUnit() {
				return nil, ErrBadDirection
			}
		}

		w := &walker{
			grid:      grid,
			slices:    slices,
			firstDirs: cfg.Dirs,
			opts:      o,
			res:       res,
			start:     cfg.Anchor,
			trace:     make([]vec.Vec3, 0, len(slices)),
		}

		// The anchor element occupies its cell before the first slice.
		before := len(res.Solutions)
		if err = grid.Place(cfg.Anchor); err != nil {
			return nil, fmt.Errorf("solve: place anchor %v: %w", cfg.Anchor, err)
		}
		if err = w.search(Head{Pos: cfg.Anchor}, 0); err != nil {
			return res, err
		}
		res.Attempts++
		res.PerStart = append(res.PerStart, len(res.Solutions)-before)
	}

	return res, nil
}

// walker encapsulates the mutable state of one starting-configuration pass.
type walker struct {
	grid      *cube.Grid
	slices    []int
	firstDirs []vec.Vec3
	opts      Options
	res       *Result
	start     vec.Vec3
	trace     []vec.Vec3 // direction of each placed slice
}

// search attempts to extend the folding by slice idx from head h. A failed
// placement is not an error — the only error returns are context
// cancellation and a failing OnSolution hook.
func (w *walker) search(h Head, idx int) error {
	// 1. External deadline, checked once per recursive step.
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Chain fully placed: a solution requires full occupancy, not merely
	// a collision-free trace — the chain may terminate before filling the
	// cube. Record and keep searching for further solutions.
	if idx == len(w.slices) {
		if w.grid.Full() {
			return w.record()
		}

		return nil
	}

	// 3. Try every direction the joint geometry allows.
	length := w.slices[idx]
	for _, d := range w.candidates(h, idx) {
		// 3a. Prune at the first geometric violation, before any mutation.
		ok := true
		for k := 1; k <= length; k++ {
			p := h.Pos.Add(d.Scale(k))
			if !w.grid.InBounds(p) || w.grid.Occupied(p) {
				ok = false
				break
			}
		}
		if !ok {
			w.res.Pruned++
			continue
		}

		// 3b. Place the whole slice and recurse with the new head.
		for k := 1; k <= length; k++ {
			_ = w.grid.Place(h.Pos.Add(d.Scale(k)))
		}
		w.trace = append(w.trace, d)
		err := w.search(Head{Pos: h.Pos.Add(d.Scale(length)), Dir: d}, idx+1)

		// 3c. Strict rollback before the next sibling branch, regardless of
		// the recursive outcome.
		w.trace = w.trace[:len(w.trace)-1]
		for k := length; k >= 1; k-- {
			_ = w.grid.Remove(h.Pos.Add(d.Scale(k)))
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// candidates returns the directions slice idx may take: the caller-supplied
// initial set for the first slice, otherwise the four directions
// perpendicular to the head's current direction.
func (w *walker) candidates(h Head, idx int) []vec.Vec3 {
	if idx == 0 {
		return w.firstDirs
	}

	return turnDirs[unitIndex(h.Dir)][:]
}

// record appends the current trace as a Solution and fires the hook.
func (w *walker) record() error {
	sol := Solution{
		Start:   w.start,
		Dirs:    append([]vec.Vec3(nil), w.trace...),
		Lengths: append([]int(nil), w.slices...),
	}
	w.res.Solutions = append(w.res.Solutions, sol)
	if w.opts.OnSolution != nil {
		if err := w.opts.OnSolution(sol); err != nil {
			return fmt.Errorf("solve: OnSolution hook: %w", err)
		}
	}

	return nil
}
