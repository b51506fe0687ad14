// Package chain defines the Joint and Chain types and sentinel errors for
// the chain subpackage of github.com/katalvlaran/snakecube.
package chain

import "errors"

// Sentinel errors for chain construction. All of them are startup
// validation failures: a Chain that constructs successfully never fails
// during search.
var (
	// ErrChainTooShort indicates fewer than two elements.
	ErrChainTooShort = errors.New("chain: need at least two elements")
	// ErrMissingEndJoint indicates the first or last element is not End.
	ErrMissingEndJoint = errors.New("chain: first and last element must be End joints")
	// ErrEndJointInterior indicates an End joint at an interior position.
	ErrEndJointInterior = errors.New("chain: End joint not allowed in chain interior")
	// ErrBadJoint indicates a joint value outside the three known kinds.
	ErrBadJoint = errors.New("chain: unknown joint kind")
	// ErrBadSliceLength indicates FromSlices was given no runs or a
	// non-positive run length.
	ErrBadSliceLength = errors.New("chain: slice lengths must be positive and non-empty")
)

// Joint is the kind of a single chain element, determined by the number and
// arrangement of its hinges.
type Joint uint8

const (
	// End is an element with a single joint; only valid at the chain's two
	// endpoints.
	End Joint = iota
	// Straight is an interior element whose two joints sit on opposite
	// faces (180°); the chain passes through without changing direction.
	Straight
	// Turn is an interior element whose two joints sit on adjacent faces
	// (90°); the chain must change to a perpendicular direction.
	Turn
)

// String returns the joint kind name.
func (j Joint) String() string {
	switch j {
	case End:
		return "End"
	case Straight:
		return "Straight"
	case Turn:
		return "Turn"
	default:
		return "Joint(?)"
	}
}

// Chain is an immutable, validated sequence of chain elements together with
// its derived slice sequence. Construct with New or FromSlices.
type Chain struct {
	joints []Joint
	slices []int
}
