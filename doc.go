// Package snakecube is an in-memory toolkit for solving snake-cube
// puzzles — folding a hinged chain of unit cubes into a solid N×N×N cube —
// by exhaustive backtracking with rotational-symmetry pruning.
//
// 🚀 What is snakecube?
//
//	A small, focused library that brings together:
//		• vec:   integer 3-vectors, the six axis directions, rotation & mirror matrices
//		• cube:  an N×N×N occupancy grid with O(1) place/remove and rollback
//		• chain: the puzzle chain (end/straight/turn joints) and its slice sequence
//		• solve: the recursive backtracking engine, symmetry-reduced starting
//		         configurations, and lossless solution representations
//
// ✨ Why choose snakecube?
//
//   - Exhaustive & deterministic – every folding is found, in a reproducible order
//   - Symmetry-aware – one starting configuration per orbit of the cube's
//     24-element rotation group, so no solution is discovered 24 times
//   - Rock-solid guarantees – sentinel errors, strict grid restoration on backtrack
//   - Pure Go – no cgo, no hidden deps
//
// Quick ASCII example (one slice of a folded 3×3×3 solution, layer z=0):
//
//	1──2──3
//	      │
//	8──5──4
//	│
//	9 ...
//
// Dive into examples/ for a complete walk-through with the classic
// 27-element chain, and each package's doc.go for contracts and complexity.
//
//	go get github.com/katalvlaran/snakecube
package snakecube
