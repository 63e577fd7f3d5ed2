package apint

import (
	"math/bits"
)

// The kernels in this file operate on caller-provided limb slices and never
// allocate. Unless stated otherwise, z, x and y must have the same length.

// normLen returns the length of x with its most-significant zero limbs
// removed. Trimming an already canonical sequence returns len(x).
func normLen(x []Limb) int {
	i := len(x)
	for i > 0 && x[i-1] == 0 {
		i--
	}
	return i
}

// cmpVV compares two canonical limb sequences.
func cmpVV(x, y []Limb) int {
	m, n := len(x), len(y)
	if m != n {
		if m < n {
			return -1
		}
		return 1
	}
	for i := m - 1; i >= 0; i-- {
		if x[i] != y[i] {
			if x[i] < y[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// z = x + y, returns the carry.
func addVV(z, x, y []Limb) (c Limb) {
	for i := range z {
		z[i], c = bits.Add64(x[i], y[i], c)
	}
	return c
}

// z = x - y, returns the borrow.
func subVV(z, x, y []Limb) (c Limb) {
	for i := range z {
		z[i], c = bits.Sub64(x[i], y[i], c)
	}
	return c
}

// z = x + y for a single limb y, returns the carry.
func addVW(z, x []Limb, y Limb) (c Limb) {
	c = y
	for i := range z {
		z[i], c = bits.Add64(x[i], c, 0)
	}
	return c
}

// z = x - y for a single limb y, returns the borrow.
func subVW(z, x []Limb, y Limb) (c Limb) {
	c = y
	for i := range z {
		z[i], c = bits.Sub64(x[i], c, 0)
	}
	return c
}

// z = x << s for s < LimbBits, returns the bits shifted out of the top limb.
func shlVU(z, x []Limb, s uint) (c Limb) {
	if len(z) == 0 {
		return 0
	}
	if s == 0 {
		copy(z, x)
		return 0
	}
	ŝ := LimbBits - s
	w1 := x[len(z)-1]
	c = w1 >> ŝ
	for i := len(z) - 1; i > 0; i-- {
		w := w1
		w1 = x[i-1]
		z[i] = w<<s | w1>>ŝ
	}
	z[0] = w1 << s
	return c
}

// z = x >> s for s < LimbBits, returns the bits shifted out of the bottom
// limb, left-aligned.
func shrVU(z, x []Limb, s uint) (c Limb) {
	if len(z) == 0 {
		return 0
	}
	if s == 0 {
		copy(z, x)
		return 0
	}
	ŝ := LimbBits - s
	w1 := x[0]
	c = w1 << ŝ
	for i := 0; i < len(z)-1; i++ {
		w := w1
		w1 = x[i+1]
		z[i] = w>>s | w1<<ŝ
	}
	z[len(z)-1] = w1 >> s
	return c
}

// z = x*y + r, returns the high limb.
func mulAddVWW(z, x []Limb, y, r Limb) (c Limb) {
	c = r
	for i := range z {
		hi, lo := mulWW(x[i], y)
		var cc Limb
		z[i], cc = bits.Add64(lo, c, 0)
		c = hi + cc
	}
	return c
}

// z += x*y, returns the high limb.
func addMulVVW(z, x []Limb, y Limb) (c Limb) {
	for i := range z {
		hi, lo := mulWW(x[i], y)
		var cc Limb
		lo, cc = bits.Add64(lo, z[i], 0)
		hi += cc
		z[i], cc = bits.Add64(lo, c, 0)
		c = hi + cc
	}
	return c
}

// addAt adds x into z starting at limb i. The caller guarantees the sum
// fits in z.
func addAt(z, x []Limb, i int) {
	if n := len(x); n > 0 {
		if c := addVV(z[i:i+n], z[i:], x); c != 0 {
			if j := i + n; j < len(z) {
				addVW(z[j:], z[j:], c)
			}
		}
	}
}

// subFrom subtracts x from z in place. The caller guarantees z >= x.
func subFrom(z, x []Limb) {
	if n := len(x); n > 0 {
		if c := subVV(z[:n], z, x); c != 0 {
			subVW(z[n:], z[n:], c)
		}
	}
}
