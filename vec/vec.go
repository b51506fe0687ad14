package vec

import "fmt"

// Vec3 is an integer vector in 3D lattice space. It is a comparable value
// type: use == for equality and map keys.
type Vec3 struct {
	X, Y, Z int
}

// Zero is the origin / null vector.
var Zero = Vec3{}

// Axes holds the three positive base vectors +x, +y, +z.
var Axes = [3]Vec3{
	{X: 1}, {Y: 1}, {Z: 1},
}

// Units holds the six axis-aligned unit directions in canonical order:
// +x, +y, +z, -x, -y, -z. All direction iteration in the solver follows this
// order, which makes search exploration fully deterministic.
var Units = [6]Vec3{
	{X: 1}, {Y: 1}, {Z: 1},
	{X: -1}, {Y: -1}, {Z: -1},
}

// Add returns the component-wise sum v + w.
func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z}
}

// Sub returns the component-wise difference v - w.
func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{X: v.X - w.X, Y: v.Y - w.Y, Z: v.Z - w.Z}
}

// Scale returns v multiplied by the scalar k.
func (v Vec3) Scale(k int) Vec3 {
	return Vec3{X: v.X * k, Y: v.Y * k, Z: v.Z * k}
}

// Neg returns -v.
func (v Vec3) Neg() Vec3 {
	return Vec3{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Dot returns the scalar product v · w.
func (v Vec3) Dot(w Vec3) int {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// String renders v as "(x,y,z)".
func (v Vec3) String() string {
	return fmt.Sprintf("(%d,%d,%d)", v.X, v.Y, v.Z)
}

// IsUnit reports whether v is one of the six axis-aligned unit directions.
func (v Vec3) IsUnit() bool {
	return abs(v.X)+abs(v.Y)+abs(v.Z) == 1
}

// IsOpposite reports whether directions a and b point in exactly opposite
// ways, i.e. their vector sum is zero. Chain joints bend 90° or 180°, never
// 0°, so a direction is never followed immediately by its opposite.
func IsOpposite(a, b Vec3) bool {
	return a.Add(b) == Zero
}

// IsPerpendicular reports whether a and b are orthogonal (zero dot product).
// For two unit directions this is equivalent to "on different axes": the
// relation a 90° turn joint must satisfy between consecutive slices.
func IsPerpendicular(a, b Vec3) bool {
	return a.Dot(b) == 0
}

func abs(n int) int {
	if n < 0 {
		return -n
	}

	return n
}
