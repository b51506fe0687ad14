package cube

import "github.com/katalvlaran/snakecube/vec"

// NewGrid constructs an empty size×size×size grid.
// Returns ErrBadSize if size < 1.
// Complexity: O(size³) time and memory.
func NewGrid(size int) (*Grid, error) {
	if size < 1 {
		return nil, ErrBadSize
	}

	return &Grid{
		size:  size,
		cells: make([]bool, size*size*size),
	}, nil
}

// Size returns the grid's edge length N.
func (g *Grid) Size() int {
	return g.size
}

// InBounds reports whether p lies within [0,N)³.
// Complexity: O(1).
func (g *Grid) InBounds(p vec.Vec3) bool {
	return p.X >= 0 && p.X < g.size &&
		p.Y >= 0 && p.Y < g.size &&
		p.Z >= 0 && p.Z < g.size
}

// Index maps an in-bounds point to its dense row-major index:
// x + N·y + N²·z. The mapping is a bijection on [0,N)³ by construction.
// Complexity: O(1).
func (g *Grid) Index(p vec.Vec3) int {
	return p.X + g.size*p.Y + g.size*g.size*p.Z
}

// Coordinate converts a dense index back to its lattice point, inverting
// Index. Complexity: O(1).
func (g *Grid) Coordinate(idx int) vec.Vec3 {
	return vec.Vec3{
		X: idx % g.size,
		Y: idx / g.size % g.size,
		Z: idx / (g.size * g.size),
	}
}

// Occupied reports whether p is in bounds and currently occupied.
// Complexity: O(1).
func (g *Grid) Occupied(p vec.Vec3) bool {
	return g.InBounds(p) && g.cells[g.Index(p)]
}

// Place marks p as occupied.
// Returns ErrOutOfBounds if p lies outside the grid, ErrCollision if the
// cell is already occupied; on error the grid is unchanged.
// Complexity: O(1).
func (g *Grid) Place(p vec.Vec3) error {
	if !g.InBounds(p) {
		return ErrOutOfBounds
	}
	idx := g.Index(p)
	if g.cells[idx] {
		return ErrCollision
	}
	g.cells[idx] = true
	g.count++

	return nil
}

// Remove frees a previously placed cell. It exists for backtracking
// rollback; with correct search logic it never fails.
// Returns ErrOutOfBounds if p lies outside the grid, ErrNotOccupied if the
// cell is free; on error the grid is unchanged.
// Complexity: O(1).
func (g *Grid) Remove(p vec.Vec3) error {
	if !g.InBounds(p) {
		return ErrOutOfBounds
	}
	idx := g.Index(p)
	if !g.cells[idx] {
		return ErrNotOccupied
	}
	g.cells[idx] = false
	g.count--

	return nil
}

// Count returns the number of occupied cells.
func (g *Grid) Count() int {
	return g.count
}

// Full reports whether every one of the N³ cells is occupied.
func (g *Grid) Full() bool {
	return g.count == len(g.cells)
}

// Clone returns an independent deep copy of the grid.
// Complexity: O(N³).
func (g *Grid) Clone() *Grid {
	cells := make([]bool, len(g.cells))
	copy(cells, g.cells)

	return &Grid{size: g.size, cells: cells, count: g.count}
}
