// Package chain models the snake-cube chain — the ordered sequence of hinged
// unit-cube elements — and its normalization into slices, the unit of
// placement during search.
//
// What:
//
//   - Joint: three-variant element kind — End (single joint, chain boundary),
//     Straight (180° interior joint), Turn (90° interior joint).
//   - Chain: an immutable, validated joint sequence built by New, or by
//     FromSlices from the dual run-length representation.
//   - Slices: the derived sequence of maximal straight run lengths. A Turn or
//     a chain End marks a slice boundary, so the number of slices equals the
//     number of turn joints plus one, and the run lengths sum to one less
//     than the element count (edges between elements).
//
// Why:
//
//   - Placing whole slices instead of single cubes keeps the search
//     recursion depth equal to the number of turns, not the number of
//     elements — the key reduction of the solver.
//   - The chain is structural input: it is validated once at construction
//     and never fails later, so the search engine needs no runtime checks.
//
// Complexity:
//
//   - New, FromSlices: O(m) in the number of elements.
//   - Len, NumSlices: O(1); Joints, Slices: O(m) (defensive copies).
//
// Errors:
//
//   - ErrChainTooShort: fewer than two elements.
//   - ErrMissingEndJoint: first or last element is not an End joint.
//   - ErrEndJointInterior: an End joint at an interior position.
//   - ErrBadJoint: a joint value outside the three known kinds.
//   - ErrBadSliceLength: FromSlices given no runs or a non-positive length.
package chain
