// Package cube provides the N×N×N occupancy grid the backtracking search
// folds the chain into.
//
// What:
//
//   - Grid wraps a dense boolean store over the lattice [0,N)³ with an
//     occupied-cell counter.
//   - Index/Coordinate form the bijection index(x,y,z) = x + N·y + N²·z
//     between lattice points and the dense backing array.
//   - Place and Remove mutate occupancy in O(1), rejecting before mutation:
//     a cell is never silently overwritten and never freed twice.
//
// Why:
//
//   - The search engine places and rolls back whole slices of the chain on
//     every branch; both operations must be O(1) per cell and side-effect
//     free on failure so backtracking restores the grid bit-for-bit.
//
// Complexity:
//
//   - NewGrid: O(N³) time and memory.
//   - InBounds, Index, Coordinate, Occupied, Place, Remove, Count, Full: O(1).
//   - Clone: O(N³).
//
// Errors:
//
//   - ErrBadSize: requested edge length is not positive.
//   - ErrOutOfBounds: point lies outside [0,N)³.
//   - ErrCollision: Place on an already occupied cell.
//   - ErrNotOccupied: Remove on a free cell.
package cube
