package apint

import (
	"math/bits"
)

// 128-bit values cross this boundary as their raw 64-bit halves, the same
// form as num.U128FromRaw/num.I128FromRaw and their Raw methods in
// github.com/shabbyrobe/go-num. Signed halves are two's complement.

// NatFromU128 creates a Nat from the halves of an unsigned 128-bit value.
func NatFromU128(hi, lo uint64) Nat {
	z := [2]Limb{lo, hi}
	return Nat{d: settle(z[:])}
}

// IntFromU128 creates a non-negative Int from the halves of an unsigned
// 128-bit value.
func IntFromU128(hi, lo uint64) Int {
	return Int{mag: NatFromU128(hi, lo)}
}

// IntFromI128 creates an Int from the two's complement halves of a signed
// 128-bit value.
func IntFromI128(hi, lo uint64) Int {
	neg := int64(hi) < 0
	if neg {
		hi, lo = neg128(hi, lo)
	}
	return mkInt(NatFromU128(hi, lo), neg)
}

// U128 returns the halves of x as an unsigned 128-bit value, or an error
// wrapping ErrRange if x needs more than 128 bits.
func (x Nat) U128() (hi, lo uint64, err error) {
	if x.d.n > 2 {
		return 0, 0, rangeError(x, "u128")
	}
	return x.LimbAt(1), x.LimbAt(0), nil
}

// U128 returns the halves of x as an unsigned 128-bit value, or an error
// wrapping ErrRange if x is negative or needs more than 128 bits.
func (x Int) U128() (hi, lo uint64, err error) {
	if x.neg {
		return 0, 0, rangeError(x, "u128")
	}
	return x.mag.U128()
}

// I128 returns the two's complement halves of x as a signed 128-bit value,
// or an error wrapping ErrRange if x is outside [-2^127, 2^127-1].
func (x Int) I128() (hi, lo uint64, err error) {
	if x.mag.d.n > 2 {
		return 0, 0, rangeError(x, "i128")
	}
	hi, lo = x.mag.LimbAt(1), x.mag.LimbAt(0)

	const signBit = 1 << 63
	if !x.neg {
		if hi&signBit != 0 {
			return 0, 0, rangeError(x, "i128")
		}
		return hi, lo, nil
	}

	// -2^127 is the only negative value whose magnitude sets the sign bit.
	if hi > signBit || (hi == signBit && lo != 0) {
		return 0, 0, rangeError(x, "i128")
	}
	hi, lo = neg128(hi, lo)
	return hi, lo, nil
}

func neg128(hi, lo uint64) (uint64, uint64) {
	lo, borrow := bits.Sub64(0, lo, 0)
	hi, _ = bits.Sub64(0, hi, borrow)
	return hi, lo
}
