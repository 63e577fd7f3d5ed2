package apint

import (
	"math/bits"
)

// divW sets z = x / y and returns x % y. len(z) must equal len(x).
func divW(z, x []Limb, y Limb) (r Limb) {
	for i := len(x) - 1; i >= 0; i-- {
		z[i], r = divWW(r, x[i], y)
	}
	return r
}

// divLarge is Knuth's algorithm D (TAOCP vol. 2, 4.3.1) for canonical u and v
// with len(v) >= 2 and len(u) >= len(v). All other arguments are zeroed
// workspaces owned by the caller:
//
//	q:     len(u)-len(v)+1 limbs, receives the quotient
//	r:     len(v) limbs, receives the remainder
//	un:    len(u)+1 limbs, u normalised
//	vn:    len(v) limbs, v normalised
//	qhatv: len(v)+1 limbs
func divLarge(q, r, u, v, un, vn, qhatv []Limb) {
	n := len(v)
	m := len(u) - n

	// D1: normalise so the top bit of the divisor is set.
	s := uint(bits.LeadingZeros64(v[n-1]))
	shlVU(vn, v, s)
	un[len(u)] = shlVU(un[:len(u)], u, s)

	vn1, vn2 := vn[n-1], vn[n-2]

	for j := m; j >= 0; j-- {
		// D3: estimate qhat. When the top limbs match the true digit is
		// b-1 or b-2, and D6 corrects the single possible overshoot.
		qhat := maxLimb
		if ujn := un[j+n]; ujn != vn1 {
			var rhat Limb
			qhat, rhat = divWW(ujn, un[j+n-1], vn1)

			x1, x2 := mulWW(qhat, vn2)
			ujn2 := un[j+n-2]
			for greaterThan(x1, x2, rhat, ujn2) {
				qhat--
				prev := rhat
				rhat += vn1
				if rhat < prev { // rhat overflowed a limb, the test can no longer pass
					break
				}
				x1, x2 = mulWW(qhat, vn2)
			}
		}

		// D4: multiply and subtract.
		qhatv[n] = mulAddVWW(qhatv[:n], vn, qhat, 0)
		if c := subVV(un[j:j+n+1], un[j:], qhatv); c != 0 {
			// D6: add back.
			c := addVV(un[j:j+n], un[j:], vn)
			un[j+n] += c
			qhat--
		}
		q[j] = qhat
	}

	// D8: unnormalise the remainder.
	shrVU(r, un[:n], s)
}
