package chain

// New validates the given joint sequence and builds the Chain with its
// derived slice sequence. It is called once at startup; the returned Chain
// never fails afterwards.
//
// Validation:
//   - at least two elements (ErrChainTooShort),
//   - first and last element are End joints (ErrMissingEndJoint),
//   - interior elements are Straight or Turn (ErrEndJointInterior),
//   - no unknown joint values (ErrBadJoint).
//
// Complexity: O(m) time, O(m) memory.
func New(joints []Joint) (*Chain, error) {
	if len(joints) < 2 {
		return nil, ErrChainTooShort
	}
	last := len(joints) - 1
	for i, j := range joints {
		switch j {
		case End:
			if i != 0 && i != last {
				return nil, ErrEndJointInterior
			}
		case Straight, Turn:
			if i == 0 || i == last {
				return nil, ErrMissingEndJoint
			}
		default:
			return nil, ErrBadJoint
		}
	}

	c := &Chain{
		joints: append([]Joint(nil), joints...),
		slices: buildSlices(joints),
	}

	return c, nil
}

// buildSlices normalizes a validated joint sequence into the lengths of its
// maximal straight runs. Each run counts unit steps (edges); a Turn joint or
// the final End closes the current run.
func buildSlices(joints []Joint) []int {
	slices := make([]int, 0, len(joints))
	run := 0
	for i := 1; i < len(joints); i++ {
		run++
		if joints[i] == Turn || i == len(joints)-1 {
			slices = append(slices, run)
			run = 0
		}
	}

	return slices
}

// FromSlices builds the Chain whose maximal straight runs have the given
// lengths — the inverse of Slices. Every boundary between two runs becomes a
// Turn joint; runs contribute their interior elements as Straight joints.
// Returns ErrBadSliceLength if lengths is empty or contains a non-positive
// value.
// Complexity: O(m) time, O(m) memory.
func FromSlices(lengths []int) (*Chain, error) {
	if len(lengths) == 0 {
		return nil, ErrBadSliceLength
	}
	m := 1
	for _, l := range lengths {
		if l < 1 {
			return nil, ErrBadSliceLength
		}
		m += l
	}

	joints := make([]Joint, 0, m)
	joints = append(joints, End)
	for i, l := range lengths {
		for k := 1; k < l; k++ {
			joints = append(joints, Straight)
		}
		if i == len(lengths)-1 {
			joints = append(joints, End)
		} else {
			joints = append(joints, Turn)
		}
	}

	return &Chain{
		joints: joints,
		slices: append([]int(nil), lengths...),
	}, nil
}

// Len returns the number of elements m in the chain.
func (c *Chain) Len() int {
	return len(c.joints)
}

// NumSlices returns the number of maximal straight runs, which equals the
// number of Turn joints plus one.
func (c *Chain) NumSlices() int {
	return len(c.slices)
}

// Joints returns a copy of the element sequence.
func (c *Chain) Joints() []Joint {
	return append([]Joint(nil), c.joints...)
}

// Slices returns a copy of the slice-length sequence. The lengths sum to
// Len()-1: one unit step per edge between adjacent elements.
func (c *Chain) Slices() []int {
	return append([]int(nil), c.slices...)
}
