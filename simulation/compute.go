package simulation

import (
	"github.com/matalib/mata/matrix"
	"github.com/matalib/mata/mataerr"
)

// Compute runs the partition-refinement engine on lts, starting from the
// initial partition p0 and the block-level relation r0 (which must be at
// least reflexive and sized to p0). It returns the coarsest simulation
// relation on states contained in r0's expansion: for every returned pair
// (p, q) and label a, each a-successor of p is matched by an a-successor
// of q related to it.
//
// Inputs are validated up front: a p0 that is not a
// partition of [0, NumStates), or an r0 whose size disagrees with p0 or
// that is missing a diagonal entry, yields mataerr.ErrBadInput.
func Compute(l LTS, p0 Partition, r0 Relation) (Relation, error) {
	n := l.NumStates()
	if n == 0 {
		return matrix.New(matrix.Cascade, 0), nil
	}
	if err := validateInputs(p0, r0, n); err != nil {
		return nil, err
	}

	e := newEngine(newDenseLTS(l))
	e.init(p0, r0)
	e.run()

	return e.buildResult(n), nil
}

func validateInputs(p0 Partition, r0 Relation, n int) error {
	seen := make([]bool, n)
	for _, states := range p0 {
		if len(states) == 0 {
			return mataerr.Wrap(mataerr.ErrBadInput, "simulation: empty block in initial partition")
		}
		for _, q := range states {
			if q < 0 || q >= n {
				return mataerr.Wrapf(mataerr.ErrBadInput, "simulation: state %d outside [0, %d)", q, n)
			}
			if seen[q] {
				return mataerr.Wrapf(mataerr.ErrBadInput, "simulation: state %d appears in more than one block", q)
			}
			seen[q] = true
		}
	}
	for q, ok := range seen {
		if !ok {
			return mataerr.Wrapf(mataerr.ErrBadInput, "simulation: state %d does not appear in any block", q)
		}
	}

	if r0.Size() != len(p0) {
		return mataerr.Wrapf(mataerr.ErrBadInput,
			"simulation: initial relation is %d×%d for %d blocks", r0.Size(), r0.Size(), len(p0))
	}
	for i := 0; i < len(p0); i++ {
		if !r0.Get(i, i) {
			return mataerr.Wrapf(mataerr.ErrBadInput, "simulation: initial relation is not reflexive at block %d", i)
		}
	}

	return nil
}
