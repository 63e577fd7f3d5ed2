package apint

import (
	"math/bits"
)

// Nat is a non-negative integer of unbounded magnitude.
//
// Nat is a value type; all operations return new values and never modify
// their operands. The zero value is 0. Values of up to InlineLimbs limbs are
// stored inline, larger values on the heap; which one backs a given Nat has
// no effect on any result.
type Nat struct {
	d digits
}

func NatFrom64(v uint64) Nat { return Nat{d: fromLimb(v)} }
func NatFrom32(v uint32) Nat { return Nat{d: fromLimb(Limb(v))} }
func NatFrom16(v uint16) Nat { return Nat{d: fromLimb(Limb(v))} }
func NatFrom8(v uint8) Nat   { return Nat{d: fromLimb(Limb(v))} }
func NatFromUint(v uint) Nat { return Nat{d: fromLimb(Limb(v))} }

// NatFromLimbs creates a Nat from a little-endian limb sequence. limbs is
// copied; leading zero limbs are permitted and discarded.
func NatFromLimbs(limbs []Limb) Nat {
	return Nat{d: fromLimbs(limbs)}
}

func (x Nat) IsZero() bool { return x.d.n == 0 }

// LimbLen returns the number of limbs in x. Zero has no limbs.
func (x Nat) LimbLen() int { return x.d.len() }

// LimbAt returns limb i of x, least significant first. Limbs past LimbLen
// are zero.
func (x Nat) LimbAt(i int) Limb {
	if i >= x.d.n {
		return 0
	}
	return x.d.at(i)
}

// Limbs returns a copy of the limbs of x, least significant first. See
// NatFromLimbs for the counterpart.
func (x Nat) Limbs() []Limb {
	return append([]Limb(nil), x.d.view()...)
}

func (x Nat) Cmp(y Nat) int {
	return cmpVV(x.d.view(), y.d.view())
}

func (x Nat) Equal(y Nat) bool            { return x.Cmp(y) == 0 }
func (x Nat) GreaterThan(y Nat) bool      { return x.Cmp(y) > 0 }
func (x Nat) GreaterOrEqualTo(y Nat) bool { return x.Cmp(y) >= 0 }
func (x Nat) LessThan(y Nat) bool         { return x.Cmp(y) < 0 }
func (x Nat) LessOrEqualTo(y Nat) bool    { return x.Cmp(y) <= 0 }

func (x Nat) Add(y Nat) Nat {
	xs, ys := x.d.view(), y.d.view()
	if len(xs) < len(ys) {
		xs, ys = ys, xs
	}
	m, n := len(xs), len(ys)

	var buf scratch
	z := buf.take(m + 1)
	c := addVV(z[:n], xs, ys)
	if m > n {
		c = addVW(z[n:m], xs[n:], c)
	}
	z[m] = c
	return Nat{d: settle(z)}
}

// Sub returns x - y. y must not be greater than x: a Nat cannot represent the
// result, so Sub panics. Use Int, or compare first, when the order of the
// operands is not known.
func (x Nat) Sub(y Nat) Nat {
	xs, ys := x.d.view(), y.d.view()
	m, n := len(xs), len(ys)
	if m < n {
		panic(natUnderflow)
	}

	var buf scratch
	z := buf.take(m)
	c := subVV(z[:n], xs, ys)
	if m > n {
		c = subVW(z[n:], xs[n:], c)
	}
	if c != 0 {
		panic(natUnderflow)
	}
	return Nat{d: settle(z)}
}

func (x Nat) Inc() Nat { return x.Add(OneNat) }

// Dec returns x - 1. Dec panics if x is zero.
func (x Nat) Dec() Nat { return x.Sub(OneNat) }

func (x Nat) Mul(y Nat) Nat {
	xs, ys := x.d.view(), y.d.view()
	if len(xs) == 0 || len(ys) == 0 {
		return Nat{}
	}

	var buf scratch
	z := buf.take(len(xs) + len(ys))
	mulInto(z, xs, ys)
	return Nat{d: settle(z)}
}

// QuoRem returns the quotient and remainder of x / y, satisfying
// x == q*y + r with r < y. If y is zero, ErrDivisionByZero is returned.
func (x Nat) QuoRem(y Nat) (q, r Nat, err error) {
	u, v := x.d.view(), y.d.view()
	if len(v) == 0 {
		return q, r, ErrDivisionByZero
	}

	if cmpVV(u, v) < 0 {
		return q, x, nil // it's 100% remainder
	}

	if len(v) == 1 {
		var qbuf scratch
		qz := qbuf.take(len(u))
		rem := divW(qz, u, v[0])
		return Nat{d: settle(qz)}, Nat{d: fromLimb(rem)}, nil
	}

	var qbuf, rbuf, ubuf, vbuf, tbuf scratch
	qz := qbuf.take(len(u) - len(v) + 1)
	rz := rbuf.take(len(v))
	divLarge(qz, rz, u, v, ubuf.take(len(u)+1), vbuf.take(len(v)), tbuf.take(len(v)+1))
	return Nat{d: settle(qz)}, Nat{d: settle(rz)}, nil
}

// Quo returns x / y, truncated. If y is zero, ErrDivisionByZero is returned.
func (x Nat) Quo(y Nat) (Nat, error) {
	q, _, err := x.QuoRem(y)
	return q, err
}

// Rem returns x % y. If y is zero, ErrDivisionByZero is returned.
func (x Nat) Rem(y Nat) (Nat, error) {
	_, r, err := x.QuoRem(y)
	return r, err
}

func (x Nat) Lsh(n uint) Nat {
	xs := x.d.view()
	m := len(xs)
	if m == 0 || n == 0 {
		return x
	}

	w := int(n / LimbBits)
	zn := m + w + 1

	var buf scratch
	z := buf.take(zn)
	z[zn-1] = shlVU(z[w:w+m], xs, n%LimbBits)
	return Nat{d: settle(z)}
}

// Rsh returns x >> n. Bits shifted below the lowest limb are discarded.
func (x Nat) Rsh(n uint) Nat {
	xs := x.d.view()
	m := len(xs)
	if n == 0 {
		return x
	}
	w := n / LimbBits
	if uint(m) <= w {
		return Nat{}
	}

	var buf scratch
	z := buf.take(m - int(w))
	shrVU(z, xs[w:], n%LimbBits)
	return Nat{d: settle(z)}
}

// BitLen returns the number of bits required to represent x. BitLen of zero
// is zero.
func (x Nat) BitLen() int {
	n := x.d.n
	if n == 0 {
		return 0
	}
	return (n-1)*LimbBits + bits.Len64(x.d.at(n-1))
}

// TrailingZeros returns the number of consecutive least significant zero
// bits of x. TrailingZeros of zero is zero.
func (x Nat) TrailingZeros() uint {
	xs := x.d.view()
	for i, l := range xs {
		if l != 0 {
			return uint(i)*LimbBits + uint(bits.TrailingZeros64(l))
		}
	}
	return 0
}

// Bit returns the value of the i'th bit of x.
func (x Nat) Bit(i uint) uint {
	j := i / LimbBits
	if j >= uint(x.d.n) {
		return 0
	}
	return uint(x.d.at(int(j))>>(i%LimbBits)) & 1
}

// SetBit returns x with the i'th bit set to b, which must be 0 or 1.
func (x Nat) SetBit(i uint, b uint) Nat {
	if b > 1 {
		panic("apint: set bit is not 0 or 1")
	}

	xs := x.d.view()
	j := int(i / LimbBits)
	if b == 0 && j >= len(xs) {
		return x
	}

	var buf scratch
	z := buf.take(max(len(xs), j+1))
	copy(z, xs)
	mask := Limb(1) << (i % LimbBits)
	if b == 0 {
		z[j] &^= mask
	} else {
		z[j] |= mask
	}
	return Nat{d: settle(z)}
}

func (x Nat) And(y Nat) Nat {
	xs, ys := x.d.view(), y.d.view()
	n := min(len(xs), len(ys))

	var buf scratch
	z := buf.take(n)
	for i := range z {
		z[i] = xs[i] & ys[i]
	}
	return Nat{d: settle(z)}
}

func (x Nat) AndNot(y Nat) Nat {
	xs, ys := x.d.view(), y.d.view()

	var buf scratch
	z := buf.take(len(xs))
	copy(z, xs)
	for i := 0; i < len(z) && i < len(ys); i++ {
		z[i] &^= ys[i]
	}
	return Nat{d: settle(z)}
}

func (x Nat) Or(y Nat) Nat {
	xs, ys := x.d.view(), y.d.view()
	if len(xs) < len(ys) {
		xs, ys = ys, xs
	}

	var buf scratch
	z := buf.take(len(xs))
	copy(z, xs)
	for i, l := range ys {
		z[i] |= l
	}
	return Nat{d: settle(z)}
}

func (x Nat) Xor(y Nat) Nat {
	xs, ys := x.d.view(), y.d.view()
	if len(xs) < len(ys) {
		xs, ys = ys, xs
	}

	var buf scratch
	z := buf.take(len(xs))
	copy(z, xs)
	for i, l := range ys {
		z[i] ^= l
	}
	return Nat{d: settle(z)}
}
