/*
Package apint provides arbitrary-precision integers: Nat for non-negative
values and Int for signed values, implementing most of the big.Int API.

Nat and Int are value types; all operations return new values and never
modify their operands. Values of up to InlineLimbs 64-bit limbs are stored
inline and do not allocate; larger values are promoted to the heap
automatically and demoted again when a result shrinks.

Simple example:

	n1 := NatFrom64(math.MaxUint64)
	n2 := NatFrom64(math.MaxUint64)
	fmt.Println(n1.Mul(n2))
	// Output: 340282366920938463426481119284349108225

Division truncates toward zero, like Go's built-in integer division, and
reports a zero divisor with ErrDivisionByZero:

	q, r, err := IntFrom64(-7).QuoRem(IntFrom64(2))
	// q == -3, r == -1, err == nil

Nat and Int can be created from a variety of sources:

	NatFrom64(v uint64) Nat
	NatFromLimbs(limbs []Limb) Nat
	NatFromBytes(b []byte) Nat
	NatFromString(s string) (out Nat, err error)
	NatFromBigInt(v *big.Int) (out Nat, accurate bool)
	NatFromFloat64(f float64) (out Nat, inRange bool)
	NatFromUint256(u *uint256.Int) Nat
	NatFromU128(hi, lo uint64) Nat
	IntFrom64(v int64) Int
	IntFromNat(neg bool, mag Nat) Int
	IntFromLimbs(neg bool, limbs []Limb) Int
	IntFromString(s string) (out Int, err error)
	IntFromBigInt(v *big.Int) Int
	IntFromFloat64(f float64) (out Int, inRange bool)
	IntFromI128(hi, lo uint64) Int

Nat and Int support the following formatting and marshalling interfaces:

  - fmt.Formatter
  - fmt.Stringer
  - json.Marshaler
  - json.Unmarshaler
  - encoding.TextMarshaler
  - encoding.TextUnmarshaler
  - encoding.BinaryMarshaler
  - encoding.BinaryUnmarshaler

Building with the apint_noheap tag removes the heap variant entirely and
raises InlineLimbs. Any result that would need more limbs than that panics
with a capacity overflow instead of allocating.
*/
package apint
