package apint

import (
	"github.com/holiman/uint256"
)

// NatFromUint256 creates a Nat from a uint256.Int. Every uint256.Int is
// representable.
func NatFromUint256(u *uint256.Int) Nat {
	return NatFromLimbs(u[:])
}

// IntFromUint256 creates a non-negative Int from a uint256.Int.
func IntFromUint256(u *uint256.Int) Int {
	return Int{mag: NatFromUint256(u)}
}

// Uint256 returns x as a uint256.Int, or an error wrapping ErrRange if x needs
// more than 256 bits.
func (x Nat) Uint256() (*uint256.Int, error) {
	xs := x.d.view()
	if len(xs) > len(uint256.Int{}) {
		return nil, rangeError(x, "uint256")
	}
	var u uint256.Int
	copy(u[:], xs)
	return &u, nil
}

// Uint256 returns x as a uint256.Int, or an error wrapping ErrRange if x is
// negative or needs more than 256 bits.
func (x Int) Uint256() (*uint256.Int, error) {
	if x.neg {
		return nil, rangeError(x, "uint256")
	}
	return x.mag.Uint256()
}
