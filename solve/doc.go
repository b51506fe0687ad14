// Package solve implements the snake-cube search engine: exhaustive
// recursive backtracking that folds a chain.Chain into an N×N×N cube.Grid,
// with starting-configuration symmetry reduction and lossless solution
// representations.
//
// What:
//
//   - Solve(c, size, opts...): runs one independent backtracking pass per
//     starting configuration over a fresh grid, placing one slice per
//     recursion level and collecting every full-cube folding.
//   - StartConfigs(size): the symmetry-reduced (anchor, initial directions)
//     table — one anchor per cell orbit of the cube's 24-element rotation
//     group, one direction per orbit under the anchor's stabilizer.
//   - Solution: compact (start + per-slice direction/length) trace with
//     Points, TurnPoints, Reversed, and Transform views; FromPoints and
//     FromTurnPoints invert the derived forms.
//
// Why:
//
//   - Placing maximal straight runs ("slices") keeps recursion depth equal
//     to the number of turn joints, and pruning a branch at its first
//     out-of-bounds or collision violation keeps the exponential search
//     tractable — the classic 3×3×3 puzzle solves in well under a second.
//   - Anchoring one corner of the rotation group avoids discovering each
//     folding up to 24 times.
//
// Determinism:
//
//   - Direction iteration follows the fixed canonical order of vec.Units and
//     the grid is restored bit-for-bit after every branch, so exploration
//     order — and therefore output order — is fully reproducible.
//
// Concurrency:
//
//   - A solver pass is purely synchronous; the grid is the sole mutable
//     state and is touched in strict LIFO call-stack order. Distinct
//     starting configurations share nothing and could run in parallel, but
//     the engine does not do so itself.
//
// Options:
//
//   - WithContext(ctx)        external deadline/cancellation.
//   - WithStartConfigs(cfgs)  override the symmetry-reduced table.
//   - WithOnSolution(fn)      per-solution hook; error aborts the search.
//
// Errors:
//
//   - ErrChainNil, ErrBadCubeSize            invalid Solve input.
//   - ErrAnchorOutOfBounds, ErrBadDirection  invalid override configuration.
//   - ErrBadTrace                            invalid FromPoints/FromTurnPoints input.
//   - context errors and hook errors are propagated as-is or wrapped.
//
// Search-branch failures — collision, out of bounds, chain exhausted before
// the cube is full — are expected control flow, never errors.
package solve
