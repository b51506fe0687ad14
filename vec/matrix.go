package vec

// Mat3 is an integer 3×3 matrix in row-major order. Like Vec3 it is a
// comparable value type, which lets the rotation-group generator deduplicate
// matrices with a plain map.
type Mat3 [3][3]int

// Identity is the identity matrix.
var Identity = Mat3{
	{1, 0, 0},
	{0, 1, 0},
	{0, 0, 1},
}

// RotX, RotY and RotZ rotate a vector by 90° about the respective axis
// (right-handed). They generate the full rotation group of the cube.
var (
	RotX = Mat3{
		{1, 0, 0},
		{0, 0, -1},
		{0, 1, 0},
	}
	RotY = Mat3{
		{0, 0, 1},
		{0, 1, 0},
		{-1, 0, 0},
	}
	RotZ = Mat3{
		{0, -1, 0},
		{1, 0, 0},
		{0, 0, 1},
	}
)

// MirrorYZ, MirrorZX and MirrorXY reflect a vector at the yz-, zx- and
// xy-plane respectively. Composed with rotations they express the mirror
// relation between a solution and its reverse-traversal twin.
var (
	MirrorYZ = Mat3{
		{-1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
	MirrorZX = Mat3{
		{1, 0, 0},
		{0, -1, 0},
		{0, 0, 1},
	}
	MirrorXY = Mat3{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, -1},
	}
)

// Apply returns the matrix-vector product m·v.
func (m Mat3) Apply(v Vec3) Vec3 {
	return Vec3{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

// Mul returns the matrix product m·n, so that m.Mul(n).Apply(v) equals
// m.Apply(n.Apply(v)).
func (m Mat3) Mul(n Mat3) Mat3 {
	var out Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			s := 0
			for k := 0; k < 3; k++ {
				s += m[i][k] * n[k][j]
			}
			out[i][j] = s
		}
	}

	return out
}

// rotations holds the rotation group, generated once at package init.
var rotations = genRotations()

// Rotations returns the 24 rotation matrices of the cube, generated by
// breadth-first closure over RotX, RotY and RotZ starting from Identity.
// The returned slice is in deterministic order and must not be mutated.
// Complexity: O(1).
func Rotations() []Mat3 {
	return rotations
}

func genRotations() []Mat3 {
	gens := [3]Mat3{RotX, RotY, RotZ}
	out := []Mat3{Identity}
	seen := map[Mat3]bool{Identity: true}
	// Each new element is multiplied by every generator until closure.
	for i := 0; i < len(out); i++ {
		for _, g := range gens {
			m := g.Mul(out[i])
			if !seen[m] {
				seen[m] = true
				out = append(out, m)
			}
		}
	}

	return out
}
