package solve

import (
	"github.com/katalvlaran/snakecube/cube"
	"github.com/katalvlaran/snakecube/vec"
)

// StartConfigs returns the minimal set of starting configurations needed to
// find every folding of a size-edged cube exactly once up to its 24-element
// rotation group. Because every interior joint of the physical puzzle can
// rotate freely before folding, it suffices to try:
//
//   - one anchor per orbit of the cube's cells under the rotation group,
//     taking the first cell in dense-index order as representative, and
//   - per anchor, one in-bounds initial direction per orbit of the six unit
//     directions under the stabilizer of that anchor, taking the first in
//     canonical direction order.
//
// For size 3 this yields the classic table:
//
//	(0,0,0) {+x}     — corner orbit
//	(1,0,0) {+x,+y}  — edge-center orbit
//	(1,1,0) {+x,+z}  — face-center orbit
//	(1,1,1) {+x}     — cube center
//
// The reduction is an optimization, not a correctness requirement: searching
// every (cell, direction) pair instead finds the same solutions with up to
// 24-fold duplicated work.
//
// Complexity: O(size³ · 24) time, O(size³) memory.
func StartConfigs(size int) []StartConfig {
	grid, err := cube.NewGrid(size)
	if err != nil {
		return nil
	}
	rots := vec.Rotations()

	seen := make([]bool, size*size*size)
	var cfgs []StartConfig
	for idx := 0; idx < len(seen); idx++ {
		if seen[idx] {
			continue
		}
		anchor := grid.Coordinate(idx)

		// Sweep the anchor's orbit and collect its stabilizer.
		var stab []vec.Mat3
		for _, m := range rots {
			q := rotateCell(m, anchor, size)
			seen[grid.Index(q)] = true
			if q == anchor {
				stab = append(stab, m)
			}
		}

		// One representative per direction orbit under the stabilizer.
		// The stabilizer maps the cube onto itself and fixes the anchor,
		// so a whole orbit is either in-bounds or out-of-bounds.
		var dirs []vec.Vec3
		var usedDir [6]bool
		for di, d := range vec.Units {
			if usedDir[di] {
				continue
			}
			for _, m := range stab {
				usedDir[unitIndex(m.Apply(d))] = true
			}
			if grid.InBounds(anchor.Add(d)) {
				dirs = append(dirs, d)
			}
		}

		cfgs = append(cfgs, StartConfig{Anchor: anchor, Dirs: dirs})
	}

	return cfgs
}

// rotateCell applies rotation m to cell p about the cube center, staying in
// integer arithmetic by working on doubled, center-shifted coordinates.
func rotateCell(m vec.Mat3, p vec.Vec3, size int) vec.Vec3 {
	c := size - 1
	shift := vec.Vec3{X: c, Y: c, Z: c}
	q := m.Apply(p.Scale(2).Sub(shift)).Add(shift)

	return vec.Vec3{X: q.X / 2, Y: q.Y / 2, Z: q.Z / 2}
}

// unitIndex returns the position of unit direction d within vec.Units.
func unitIndex(d vec.Vec3) int {
	for i, u := range vec.Units {
		if u == d {
			return i
		}
	}

	// Unreachable for rotation images of unit directions.
	return -1
}
