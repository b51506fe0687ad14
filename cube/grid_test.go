package cube_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/snakecube/cube"
	"github.com/katalvlaran/snakecube/vec"
)

//----------------------------------------------------------------------------//
// NewGrid and bijection tests
//----------------------------------------------------------------------------//

// TestNewGrid_Errors verifies that NewGrid rejects non-positive sizes.
func TestNewGrid_Errors(t *testing.T) {
	for _, size := range []int{0, -1, -27} {
		if _, err := cube.NewGrid(size); !errors.Is(err, cube.ErrBadSize) {
			t.Errorf("NewGrid(%d) error = %v; want ErrBadSize", size, err)
		}
	}
}

// TestIndexCoordinate_Bijection walks every cell of a 4³ grid and checks
// that Index and Coordinate invert each other with no collisions.
func TestIndexCoordinate_Bijection(t *testing.T) {
	const n = 4
	g, err := cube.NewGrid(n)
	if err != nil {
		t.Fatalf("NewGrid error: %v", err)
	}

	seen := make(map[int]bool, n*n*n)
	for z := 0; z < n; z++ {
		for y := 0; y < n; y++ {
			for x := 0; x < n; x++ {
				p := vec.Vec3{X: x, Y: y, Z: z}
				idx := g.Index(p)
				if idx < 0 || idx >= n*n*n {
					t.Fatalf("Index(%v) = %d out of range", p, idx)
				}
				if seen[idx] {
					t.Fatalf("Index collision at %v (idx %d)", p, idx)
				}
				seen[idx] = true
				if got := g.Coordinate(idx); got != p {
					t.Errorf("Coordinate(Index(%v)) = %v; want %v", p, got, p)
				}
			}
		}
	}
}

// TestInBounds checks boundary points of a 3³ grid.
func TestInBounds(t *testing.T) {
	g, err := cube.NewGrid(3)
	if err != nil {
		t.Fatalf("NewGrid error: %v", err)
	}

	valid := []vec.Vec3{{}, {X: 2, Y: 2, Z: 2}, {X: 1, Y: 0, Z: 2}}
	for _, p := range valid {
		if !g.InBounds(p) {
			t.Errorf("InBounds(%v) = false; want true", p)
		}
	}
	invalid := []vec.Vec3{{X: -1}, {Y: 3}, {Z: -1}, {X: 3, Y: 3, Z: 3}}
	for _, p := range invalid {
		if g.InBounds(p) {
			t.Errorf("InBounds(%v) = true; want false", p)
		}
	}
}

//----------------------------------------------------------------------------//
// Place / Remove tests
//----------------------------------------------------------------------------//

// TestPlaceRemove exercises the mutation lifecycle and its sentinel errors.
func TestPlaceRemove(t *testing.T) {
	g, err := cube.NewGrid(2)
	if err != nil {
		t.Fatalf("NewGrid error: %v", err)
	}
	p := vec.Vec3{X: 1, Y: 0, Z: 1}

	if g.Occupied(p) {
		t.Fatalf("fresh grid: Occupied(%v) = true", p)
	}
	if err = g.Place(p); err != nil {
		t.Fatalf("Place(%v) error: %v", p, err)
	}
	if !g.Occupied(p) || g.Count() != 1 {
		t.Fatalf("after Place: Occupied=%v Count=%d; want true, 1", g.Occupied(p), g.Count())
	}

	// Double placement is rejected before mutation.
	if err = g.Place(p); !errors.Is(err, cube.ErrCollision) {
		t.Errorf("second Place error = %v; want ErrCollision", err)
	}
	if g.Count() != 1 {
		t.Errorf("Count after failed Place = %d; want 1", g.Count())
	}

	if err = g.Remove(p); err != nil {
		t.Fatalf("Remove(%v) error: %v", p, err)
	}
	if g.Occupied(p) || g.Count() != 0 {
		t.Errorf("after Remove: Occupied=%v Count=%d; want false, 0", g.Occupied(p), g.Count())
	}
	if err = g.Remove(p); !errors.Is(err, cube.ErrNotOccupied) {
		t.Errorf("second Remove error = %v; want ErrNotOccupied", err)
	}

	out := vec.Vec3{X: 2}
	if err = g.Place(out); !errors.Is(err, cube.ErrOutOfBounds) {
		t.Errorf("Place out of bounds error = %v; want ErrOutOfBounds", err)
	}
	if err = g.Remove(out); !errors.Is(err, cube.ErrOutOfBounds) {
		t.Errorf("Remove out of bounds error = %v; want ErrOutOfBounds", err)
	}
}

// TestFull fills a 2³ grid cell by cell and checks Full flips only at the end.
func TestFull(t *testing.T) {
	g, err := cube.NewGrid(2)
	if err != nil {
		t.Fatalf("NewGrid error: %v", err)
	}
	for idx := 0; idx < 8; idx++ {
		if g.Full() {
			t.Fatalf("Full() = true with %d/8 cells", g.Count())
		}
		if err = g.Place(g.Coordinate(idx)); err != nil {
			t.Fatalf("Place(%v) error: %v", g.Coordinate(idx), err)
		}
	}
	if !g.Full() {
		t.Error("Full() = false after filling all cells")
	}
}

// TestRollbackRestoration mimics one failed search branch: placing a run of
// cells and removing it in reverse must restore the grid bit-for-bit.
func TestRollbackRestoration(t *testing.T) {
	g, err := cube.NewGrid(3)
	if err != nil {
		t.Fatalf("NewGrid error: %v", err)
	}
	for _, p := range []vec.Vec3{{}, {X: 1}, {X: 2}} {
		if err = g.Place(p); err != nil {
			t.Fatalf("Place(%v) error: %v", p, err)
		}
	}
	before := g.Clone()

	run := []vec.Vec3{{X: 2, Y: 1}, {X: 2, Y: 2}}
	for _, p := range run {
		if err = g.Place(p); err != nil {
			t.Fatalf("Place(%v) error: %v", p, err)
		}
	}
	for i := len(run) - 1; i >= 0; i-- {
		if err = g.Remove(run[i]); err != nil {
			t.Fatalf("Remove(%v) error: %v", run[i], err)
		}
	}

	if !reflect.DeepEqual(before, g) {
		t.Error("grid not restored exactly after rollback")
	}
}

// TestClone verifies clones are deep and mutation-independent.
func TestClone(t *testing.T) {
	g, err := cube.NewGrid(3)
	if err != nil {
		t.Fatalf("NewGrid error: %v", err)
	}
	p := vec.Vec3{X: 1, Y: 1, Z: 1}
	if err = g.Place(p); err != nil {
		t.Fatalf("Place error: %v", err)
	}

	c := g.Clone()
	if !c.Occupied(p) || c.Count() != 1 {
		t.Fatalf("clone missing occupied cell")
	}
	if err = c.Remove(p); err != nil {
		t.Fatalf("clone Remove error: %v", err)
	}
	if !g.Occupied(p) {
		t.Error("mutating clone affected original grid")
	}
}
