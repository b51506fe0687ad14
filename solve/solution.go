package solve

import "github.com/katalvlaran/snakecube/vec"

// Solution is a fully placed chain occupying every cell of the cube exactly
// once, recorded in compact trace form: the anchor point plus one direction
// and one length per slice. The per-element and turn-point representations
// are derived on demand; all three are lossless views of the same trace.
// Solutions are immutable once recorded.
type Solution struct {
	// Start is the anchor cell of the first chain element.
	Start vec.Vec3
	// Dirs holds the step direction of each slice, consecutive entries
	// always mutually perpendicular (90° turn joints).
	Dirs []vec.Vec3
	// Lengths holds the unit-step count of each slice.
	Lengths []int
}

// Len returns the number of chain elements m covered by the solution:
// the anchor plus one element per unit step.
func (s Solution) Len() int {
	m := 1
	for _, l := range s.Lengths {
		m += l
	}

	return m
}

// Points expands the trace to the per-element representation: one lattice
// point per chain element, in chain order.
// Complexity: O(m).
func (s Solution) Points() []vec.Vec3 {
	pts := make([]vec.Vec3, 0, s.Len())
	pts = append(pts, s.Start)
	cur := s.Start
	for i, d := range s.Dirs {
		for k := 0; k < s.Lengths[i]; k++ {
			cur = cur.Add(d)
			pts = append(pts, cur)
		}
	}

	return pts
}

// TurnPoints returns the turn-point representation: the first element of
// each slice followed by the final chain element — n+1 points for n slices.
// Unlike the bare slice starts, keeping the final point makes the form
// invertible (FromTurnPoints).
// Complexity: O(n).
func (s Solution) TurnPoints() []vec.Vec3 {
	pts := make([]vec.Vec3, 0, len(s.Dirs)+1)
	cur := s.Start
	pts = append(pts, cur)
	for i, d := range s.Dirs {
		cur = cur.Add(d.Scale(s.Lengths[i]))
		pts = append(pts, cur)
	}

	return pts
}

// Reversed returns the solution traversing the same folding from the other
// chain end. Reversing every recorded solution yields exactly the set a
// search over the opposite traversal direction would find.
func (s Solution) Reversed() Solution {
	n := len(s.Dirs)
	dirs := make([]vec.Vec3, n)
	lengths := make([]int, n)
	end := s.Start
	for i, d := range s.Dirs {
		end = end.Add(d.Scale(s.Lengths[i]))
		dirs[n-1-i] = d.Neg()
		lengths[n-1-i] = s.Lengths[i]
	}

	return Solution{Start: end, Dirs: dirs, Lengths: lengths}
}

// Transform re-expresses the solution under the linear map m applied about
// the center of a size×size×size cube, e.g. a vec.Rotations() element or a
// mirror composition. The anchor is mapped exactly in integer arithmetic by
// working on doubled, center-shifted coordinates.
func (s Solution) Transform(m vec.Mat3, size int) Solution {
	c := size - 1 // doubled center offset: center is (c/2, c/2, c/2)
	shift := vec.Vec3{X: c, Y: c, Z: c}
	doubled := m.Apply(s.Start.Scale(2).Sub(shift)).Add(shift)
	start := vec.Vec3{X: doubled.X / 2, Y: doubled.Y / 2, Z: doubled.Z / 2}

	dirs := make([]vec.Vec3, len(s.Dirs))
	for i, d := range s.Dirs {
		dirs[i] = m.Apply(d)
	}

	return Solution{
		Start:   start,
		Dirs:    dirs,
		Lengths: append([]int(nil), s.Lengths...),
	}
}

// Equal reports whether two solutions record the identical trace.
func (s Solution) Equal(o Solution) bool {
	if s.Start != o.Start || len(s.Dirs) != len(o.Dirs) {
		return false
	}
	for i := range s.Dirs {
		if s.Dirs[i] != o.Dirs[i] || s.Lengths[i] != o.Lengths[i] {
			return false
		}
	}

	return true
}

// FromPoints rebuilds the compact trace from a per-element point sequence,
// inverting Points. Consecutive points must differ by a unit step and the
// walk may never double back (180° folds are geometrically impossible).
// Returns ErrBadTrace on any violation.
// Complexity: O(m).
func FromPoints(pts []vec.Vec3) (Solution, error) {
	if len(pts) < 2 {
		return Solution{}, ErrBadTrace
	}

	s := Solution{Start: pts[0]}
	for i := 1; i < len(pts); i++ {
		step := pts[i].Sub(pts[i-1])
		if !step.IsUnit() {
			return Solution{}, ErrBadTrace
		}
		last := len(s.Dirs) - 1
		switch {
		case last >= 0 && step == s.Dirs[last]:
			// Same direction: extends the current slice.
			s.Lengths[last]++
		case last >= 0 && vec.IsOpposite(step, s.Dirs[last]):
			return Solution{}, ErrBadTrace
		default:
			s.Dirs = append(s.Dirs, step)
			s.Lengths = append(s.Lengths, 1)
		}
	}

	return s, nil
}

// FromTurnPoints rebuilds the compact trace from a turn-point sequence,
// inverting TurnPoints. Consecutive points must differ along exactly one
// axis, and consecutive segments must be mutually perpendicular — equal
// directions would not be separated by a turn, opposite directions would
// double back. Returns ErrBadTrace on any violation.
// Complexity: O(n).
func FromTurnPoints(pts []vec.Vec3) (Solution, error) {
	if len(pts) < 2 {
		return Solution{}, ErrBadTrace
	}

	s := Solution{Start: pts[0]}
	for i := 1; i < len(pts); i++ {
		delta := pts[i].Sub(pts[i-1])
		d, l, ok := axisRun(delta)
		if !ok {
			return Solution{}, ErrBadTrace
		}
		if len(s.Dirs) > 0 && !vec.IsPerpendicular(d, s.Dirs[len(s.Dirs)-1]) {
			return Solution{}, ErrBadTrace
		}
		s.Dirs = append(s.Dirs, d)
		s.Lengths = append(s.Lengths, l)
	}

	return s, nil
}

// axisRun decomposes a nonzero axis-aligned vector into a unit direction
// and a positive length.
func axisRun(delta vec.Vec3) (vec.Vec3, int, bool) {
	switch {
	case delta.Y == 0 && delta.Z == 0 && delta.X != 0:
		return unitSign(delta.X, vec.Vec3{X: 1}), iabs(delta.X), true
	case delta.X == 0 && delta.Z == 0 && delta.Y != 0:
		return unitSign(delta.Y, vec.Vec3{Y: 1}), iabs(delta.Y), true
	case delta.X == 0 && delta.Y == 0 && delta.Z != 0:
		return unitSign(delta.Z, vec.Vec3{Z: 1}), iabs(delta.Z), true
	default:
		return vec.Vec3{}, 0, false
	}
}

func unitSign(n int, axis vec.Vec3) vec.Vec3 {
	if n < 0 {
		return axis.Neg()
	}

	return axis
}

func iabs(n int) int {
	if n < 0 {
		return -n
	}

	return n
}
