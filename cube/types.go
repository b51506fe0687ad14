// Package cube defines the Grid type and sentinel errors for the cube
// subpackage of github.com/katalvlaran/snakecube.
package cube

import "errors"

// Sentinel errors for grid operations.
var (
	// ErrBadSize indicates a non-positive cube edge length.
	ErrBadSize = errors.New("cube: edge length must be at least 1")
	// ErrOutOfBounds indicates a point outside the lattice [0,N)³.
	ErrOutOfBounds = errors.New("cube: point out of bounds")
	// ErrCollision indicates a Place on an already occupied cell.
	ErrCollision = errors.New("cube: cell already occupied")
	// ErrNotOccupied indicates a Remove on a free cell.
	ErrNotOccupied = errors.New("cube: cell not occupied")
)

// Grid is a mutable N×N×N occupancy store. The zero value is not usable;
// construct with NewGrid. Invariant: every occupied cell lies in [0,N)³ and
// is occupied at most once — rejection happens before mutation, so a failed
// Place or Remove leaves the grid untouched.
type Grid struct {
	size  int
	cells []bool
	count int
}
