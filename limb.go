package apint

import (
	"math/bits"
)

// Limb is a single machine word of a multi-word magnitude. Limb sequences are
// stored least-significant limb first.
type Limb = uint64

const (
	LimbBits  = 64
	LimbBytes = LimbBits / 8

	maxLimb Limb = 1<<LimbBits - 1
)

func mulWW(x, y Limb) (hi, lo Limb) {
	return bits.Mul64(x, y)
}

// divWW divides the two-limb value u1:u0 by v, returning the quotient and
// remainder. u1 must be less than v or the quotient will not fit in a limb.
func divWW(u1, u0, v Limb) (q, r Limb) {
	return bits.Div64(u1, u0, v)
}

// greaterThan reports whether the two-limb value x1:x2 > y1:y2.
func greaterThan(x1, x2, y1, y2 Limb) bool {
	return x1 > y1 || (x1 == y1 && x2 > y2)
}
