package solve_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/snakecube/solve"
	"github.com/katalvlaran/snakecube/vec"
)

// sample is a hand-folded 4-slice trace used across representation tests:
// (0,0,0) →x→ (2,0,0) →y→ (2,1,0) →z→ (2,1,2) →-x→ (1,1,2).
func sample() solve.Solution {
	return solve.Solution{
		Start:   vec.Vec3{},
		Dirs:    []vec.Vec3{{X: 1}, {Y: 1}, {Z: 1}, {X: -1}},
		Lengths: []int{2, 1, 2, 1},
	}
}

// TestSolution_Points expands the sample trace to per-element points.
func TestSolution_Points(t *testing.T) {
	want := []vec.Vec3{
		{}, {X: 1}, {X: 2},
		{X: 2, Y: 1},
		{X: 2, Y: 1, Z: 1}, {X: 2, Y: 1, Z: 2},
		{X: 1, Y: 1, Z: 2},
	}
	s := sample()
	assert.Equal(t, want, s.Points())
	assert.Equal(t, 7, s.Len())
}

// TestSolution_TurnPoints keeps the first point of each slice plus the
// final point, so the form stays invertible.
func TestSolution_TurnPoints(t *testing.T) {
	want := []vec.Vec3{
		{}, {X: 2}, {X: 2, Y: 1}, {X: 2, Y: 1, Z: 2}, {X: 1, Y: 1, Z: 2},
	}
	assert.Equal(t, want, sample().TurnPoints())
}

// TestRoundTrip_AllForms checks the three representations convert back to
// the identical original trace.
func TestRoundTrip_AllForms(t *testing.T) {
	s := sample()

	fromPts, err := solve.FromPoints(s.Points())
	require.NoError(t, err)
	assert.True(t, s.Equal(fromPts), "points round-trip mismatch")

	fromTurns, err := solve.FromTurnPoints(s.TurnPoints())
	require.NoError(t, err)
	assert.True(t, s.Equal(fromTurns), "turn-points round-trip mismatch")
}

// TestReversed traverses the folding from the other chain end and back.
func TestReversed(t *testing.T) {
	s := sample()
	r := s.Reversed()

	assert.Equal(t, vec.Vec3{X: 1, Y: 1, Z: 2}, r.Start)
	assert.True(t, s.Equal(r.Reversed()), "double reversal must be the identity")

	// Reversed per-element points are exactly the original points backwards.
	pts, rpts := s.Points(), r.Points()
	require.Len(t, rpts, len(pts))
	for i := range pts {
		assert.Equal(t, pts[len(pts)-1-i], rpts[i])
	}
}

// TestTransform applies rotations about the cube center.
func TestTransform(t *testing.T) {
	s := sample()

	// The identity leaves the trace untouched.
	assert.True(t, s.Equal(s.Transform(vec.Identity, 3)))

	// Four quarter-turns compose to the identity.
	q := s.Transform(vec.RotZ, 3).
		Transform(vec.RotZ, 3).
		Transform(vec.RotZ, 3).
		Transform(vec.RotZ, 3)
	assert.True(t, s.Equal(q))

	// A single quarter-turn about z maps the start (0,0,0) to (2,0,0) in a
	// 3³ cube and rotates every direction.
	r := s.Transform(vec.RotZ, 3)
	assert.Equal(t, vec.Vec3{X: 2}, r.Start)
	assert.Equal(t, vec.Vec3{Y: 1}, r.Dirs[0])
	assert.Equal(t, s.Lengths, r.Lengths)
}

// TestFromPoints_Errors rejects traces that no chain can produce.
func TestFromPoints_Errors(t *testing.T) {
	cases := []struct {
		name string
		pts  []vec.Vec3
	}{
		{"TooShort", []vec.Vec3{{}}},
		{"NonUnitStep", []vec.Vec3{{}, {X: 2}}},
		{"DiagonalStep", []vec.Vec3{{}, {X: 1, Y: 1}}},
		{"DoublingBack", []vec.Vec3{{}, {X: 1}, {}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := solve.FromPoints(tc.pts)
			assert.ErrorIs(t, err, solve.ErrBadTrace)
		})
	}
}

// TestFromTurnPoints_Errors rejects segment sequences that are not
// separated by 90° turns.
func TestFromTurnPoints_Errors(t *testing.T) {
	cases := []struct {
		name string
		pts  []vec.Vec3
	}{
		{"TooShort", []vec.Vec3{{X: 1}}},
		{"ZeroSegment", []vec.Vec3{{}, {}}},
		{"DiagonalSegment", []vec.Vec3{{}, {X: 1, Y: 2}}},
		{"CollinearSegments", []vec.Vec3{{}, {X: 1}, {X: 2}}},
		{"DoublingBack", []vec.Vec3{{}, {X: 2}, {X: 1}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := solve.FromTurnPoints(tc.pts)
			assert.ErrorIs(t, err, solve.ErrBadTrace)
		})
	}
}

// TestEqual distinguishes traces on every field.
func TestEqual(t *testing.T) {
	s := sample()
	assert.True(t, s.Equal(sample()))

	shifted := sample()
	shifted.Start = vec.Vec3{X: 1}
	assert.False(t, s.Equal(shifted))

	bent := sample()
	bent.Dirs[1] = vec.Vec3{Z: 1}
	assert.False(t, s.Equal(bent))

	stretched := sample()
	stretched.Lengths[0] = 1
	assert.False(t, s.Equal(stretched))
}
