package apint

// Int is a signed integer of unbounded magnitude, stored as a Nat magnitude
// and a sign. Zero is never negative.
//
// Int is a value type; all operations return new values. The zero value is 0.
type Int struct {
	mag Nat
	neg bool
}

// mkInt is the only place an Int's sign is decided, so that a zero magnitude
// never carries a negative sign.
func mkInt(mag Nat, neg bool) Int {
	return Int{mag: mag, neg: neg && !mag.IsZero()}
}

func IntFrom64(v int64) Int {
	if v < 0 {
		// -MinInt64 wraps to itself, which is still the right magnitude as a uint64:
		return Int{mag: NatFrom64(uint64(-v)), neg: true}
	}
	return Int{mag: NatFrom64(uint64(v))}
}

func IntFrom32(v int32) Int   { return IntFrom64(int64(v)) }
func IntFrom16(v int16) Int   { return IntFrom64(int64(v)) }
func IntFrom8(v int8) Int     { return IntFrom64(int64(v)) }
func IntFromInt(v int) Int    { return IntFrom64(int64(v)) }
func IntFromU64(v uint64) Int { return Int{mag: NatFrom64(v)} }
func IntFromU32(v uint32) Int { return Int{mag: NatFrom32(v)} }
func IntFromU16(v uint16) Int { return Int{mag: NatFrom16(v)} }
func IntFromU8(v uint8) Int   { return Int{mag: NatFrom8(v)} }
func IntFromUint(v uint) Int  { return Int{mag: NatFromUint(v)} }

// IntFromNat creates an Int with magnitude mag. A negative sign on a zero
// magnitude is discarded.
func IntFromNat(neg bool, mag Nat) Int {
	return mkInt(mag, neg)
}

// IntFromLimbs creates an Int from a sign and a little-endian magnitude. limbs
// is copied. A negative sign on a zero magnitude is discarded.
func IntFromLimbs(neg bool, limbs []Limb) Int {
	return mkInt(NatFromLimbs(limbs), neg)
}

func (x Int) IsZero() bool { return x.mag.IsZero() }

// Sign returns -1 if x < 0, 0 if x == 0 and 1 if x > 0.
func (x Int) Sign() int {
	if x.mag.IsZero() {
		return 0
	} else if x.neg {
		return -1
	}
	return 1
}

// Signum returns the sign of x as an Int: -1, 0 or 1.
func (x Int) Signum() Int {
	switch x.Sign() {
	case -1:
		return NegOneInt
	case 1:
		return OneInt
	}
	return ZeroInt
}

// Magnitude returns |x| as a Nat.
func (x Int) Magnitude() Nat { return x.mag }

// LimbLen returns the number of limbs in the magnitude of x.
func (x Int) LimbLen() int { return x.mag.LimbLen() }

// LimbAt returns limb i of the magnitude of x, least significant first.
func (x Int) LimbAt(i int) Limb { return x.mag.LimbAt(i) }

// Limbs returns a copy of the magnitude limbs of x. Together with Sign it
// is the counterpart to IntFromLimbs.
func (x Int) Limbs() []Limb { return x.mag.Limbs() }

func (x Int) Neg() Int { return mkInt(x.mag, !x.neg) }
func (x Int) Abs() Int { return Int{mag: x.mag} }

// Not returns the bitwise complement of x in two's complement, which is
// -x-1. This matches big.Int's Not.
func (x Int) Not() Int { return x.Neg().Dec() }

func (x Int) Cmp(y Int) int {
	if x.neg != y.neg {
		if x.neg {
			return -1
		}
		return 1
	}
	c := x.mag.Cmp(y.mag)
	if x.neg {
		return -c
	}
	return c
}

// CmpAbs compares |x| and |y|.
func (x Int) CmpAbs(y Int) int { return x.mag.Cmp(y.mag) }

func (x Int) Equal(y Int) bool            { return x.neg == y.neg && x.mag.Equal(y.mag) }
func (x Int) GreaterThan(y Int) bool      { return x.Cmp(y) > 0 }
func (x Int) GreaterOrEqualTo(y Int) bool { return x.Cmp(y) >= 0 }
func (x Int) LessThan(y Int) bool         { return x.Cmp(y) < 0 }
func (x Int) LessOrEqualTo(y Int) bool    { return x.Cmp(y) <= 0 }

func (x Int) Add(y Int) Int {
	if x.neg == y.neg {
		return mkInt(x.mag.Add(y.mag), x.neg)
	}

	// Opposite signs: the larger magnitude wins and decides the sign.
	switch x.mag.Cmp(y.mag) {
	case 1:
		return mkInt(x.mag.Sub(y.mag), x.neg)
	case -1:
		return mkInt(y.mag.Sub(x.mag), y.neg)
	}
	return Int{}
}

func (x Int) Sub(y Int) Int {
	return x.Add(y.Neg())
}

func (x Int) Inc() Int { return x.Add(OneInt) }
func (x Int) Dec() Int { return x.Sub(OneInt) }

func (x Int) Mul(y Int) Int {
	return mkInt(x.mag.Mul(y.mag), x.neg != y.neg)
}

// QuoRem returns the quotient q and remainder r of x / y. If y is zero,
// ErrDivisionByZero is returned.
//
// QuoRem implements T-division and modulus (like Go):
//
//	q = x/y      with the result truncated to zero
//	r = x - y*q
//
// so r takes the sign of x. Int does not implement Euclidean or floored
// division.
func (x Int) QuoRem(y Int) (q, r Int, err error) {
	mq, mr, err := x.mag.QuoRem(y.mag)
	if err != nil {
		return q, r, err
	}
	return mkInt(mq, x.neg != y.neg), mkInt(mr, x.neg), nil
}

// Quo returns x / y truncated toward zero. See QuoRem.
func (x Int) Quo(y Int) (Int, error) {
	q, _, err := x.QuoRem(y)
	return q, err
}

// Rem returns the remainder of x / y, which has the sign of x. See QuoRem.
func (x Int) Rem(y Int) (Int, error) {
	_, r, err := x.QuoRem(y)
	return r, err
}

// Lsh returns x << n, shifting the magnitude and keeping the sign.
func (x Int) Lsh(n uint) Int { return mkInt(x.mag.Lsh(n), x.neg) }

// Rsh returns x >> n, shifting the magnitude and keeping the sign, so the
// result is truncated toward zero: IntFrom64(-5).Rsh(1) is -2. This differs
// from big.Int.Rsh, which rounds toward negative infinity.
func (x Int) Rsh(n uint) Int { return mkInt(x.mag.Rsh(n), x.neg) }

// BitLen returns the bit length of the magnitude of x.
func (x Int) BitLen() int { return x.mag.BitLen() }
