// Package vec provides the integer 3-vector and matrix primitives used by the
// snakecube solver: lattice points, the six axis-aligned unit directions, and
// the rotation/mirror matrices of the cube.
//
// What:
//
//   - Vec3: a comparable integer 3-vector with Add/Sub/Scale/Neg arithmetic.
//   - Units: the six unit directions {±x, ±y, ±z} in fixed canonical order;
//     Axes: the three positive base vectors.
//   - Predicates: IsUnit, IsOpposite (vector sum is zero), IsPerpendicular.
//   - Mat3: integer 3×3 matrices with Apply and Mul; constants Identity,
//     RotX/RotY/RotZ (90° rotations) and MirrorYZ/MirrorZX/MirrorXY.
//   - Rotations: the full 24-element rotation group of the cube, generated
//     once by closure over the three base rotations, in deterministic order.
//
// Why:
//
//   - Positions and step directions of the folding chain are lattice vectors.
//   - The starting-configuration reduction (solve.StartConfigs) needs the
//     rotation group and per-point stabilizers.
//   - Mirror matrices express the similarity between a solution and its
//     reverse-traversal twin.
//
// Complexity:
//
//   - All Vec3/Mat3 operations: O(1).
//   - Rotations: O(1) amortized (24 elements, generated once, then cached).
//
// Errors: none — all operations are total on their value types.
package vec
