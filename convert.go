package apint

import (
	"encoding/binary"
	"math"
	"math/big"
	"math/bits"
)

// NatFromBigInt creates a Nat from a big.Int. Negative values can not be
// represented; they return zero and set accurate to 'false'.
func NatFromBigInt(v *big.Int) (out Nat, accurate bool) {
	if v.Sign() < 0 {
		return out, false
	}
	return Nat{d: digitsFromWords(v.Bits())}, true
}

// IntFromBigInt creates an Int from a big.Int. Every big.Int is representable.
func IntFromBigInt(v *big.Int) Int {
	return mkInt(Nat{d: digitsFromWords(v.Bits())}, v.Sign() < 0)
}

func digitsFromWords(words []big.Word) digits {
	var buf scratch

	switch intSize {
	case 64:
		z := buf.take(len(words))
		for i, w := range words {
			z[i] = Limb(w)
		}
		return settle(z)

	case 32:
		z := buf.take((len(words) + 1) / 2)
		for i, w := range words {
			z[i/2] |= Limb(w) << (32 * uint(i%2))
		}
		return settle(z)

	default:
		panic("apint: unsupported bit size")
	}
}

// IntoBigInt copies x into a big.Int, allowing you to retain and recycle
// memory.
func (x Nat) IntoBigInt(b *big.Int) {
	words := b.Bits()[:0]
	switch intSize {
	case 64:
		for _, l := range x.d.view() {
			words = append(words, big.Word(l))
		}
	case 32:
		for _, l := range x.d.view() {
			words = append(words, big.Word(l&0xFFFFFFFF), big.Word(l>>32))
		}
	default:
		panic("apint: unsupported bit size")
	}
	b.SetBits(words)
}

// AsBigInt allocates a new big.Int and copies x into it.
func (x Nat) AsBigInt() *big.Int {
	var b big.Int
	x.IntoBigInt(&b)
	return &b
}

func (x Int) IntoBigInt(b *big.Int) {
	x.mag.IntoBigInt(b)
	if x.neg {
		b.Neg(b)
	}
}

func (x Int) AsBigInt() *big.Int {
	var b big.Int
	x.IntoBigInt(&b)
	return &b
}

func (x Nat) AsBigFloat() *big.Float {
	return new(big.Float).SetInt(x.AsBigInt())
}

func (x Int) AsBigFloat() *big.Float {
	return new(big.Float).SetInt(x.AsBigInt())
}

// NatFromFloat64 creates a Nat from a float64. Any fractional portion is
// truncated towards zero. NaN, infinities and negative numbers return zero
// and set inRange to 'false'.
func NatFromFloat64(f float64) (out Nat, inRange bool) {
	if f != f || math.IsInf(f, 0) { // (f != f) == NaN
		return out, false
	} else if f <= -1 {
		return out, false
	}

	f = math.Trunc(f)
	if f <= 0 {
		return out, true
	} else if f < wrapUint64Float {
		return NatFrom64(uint64(f)), true
	}

	// f is an integer >= 1<<64, so all 53 bits of the mantissa are above the
	// binary point and the shift below is exact.
	frac, exp := math.Frexp(f)
	mant := uint64(frac * (1 << 53))
	return NatFrom64(mant).Lsh(uint(exp - 53)), true
}

func IntFromFloat32(f float32) (out Int, inRange bool) {
	return IntFromFloat64(float64(f))
}

// IntFromFloat64 creates an Int from a float64. Any fractional portion is
// truncated towards zero. NaN and infinities return zero and set inRange to
// 'false'.
func IntFromFloat64(f float64) (out Int, inRange bool) {
	neg := f < 0
	if neg {
		f = -f
	}
	mag, inRange := NatFromFloat64(f)
	return mkInt(mag, neg), inRange
}

// AsFloat64 returns the float64 nearest to x, rounding ties to even. Values
// too large for a float64 return +Inf.
func (x Nat) AsFloat64() float64 {
	bl := x.BitLen()
	if bl <= 64 {
		return float64(x.AsUint64())
	}
	shift := uint(bl - 64)
	top := x.Rsh(shift).AsUint64()
	if x.TrailingZeros() < shift {
		top |= 1 // sticky bit, so the conversion below rounds to nearest
	}
	return math.Ldexp(float64(top), int(shift))
}

func (x Int) AsFloat64() float64 {
	f := x.mag.AsFloat64()
	if x.neg {
		return -f
	}
	return f
}

// AsUint64 truncates x to its lowest 64 bits. Values outside the range will
// over/underflow. See IsUint64() if you want to check before you convert.
func (x Nat) AsUint64() uint64 {
	if x.d.n == 0 {
		return 0
	}
	return x.d.at(0)
}

// IsUint64 reports whether x can be represented as a uint64.
func (x Nat) IsUint64() bool {
	return x.d.n <= 1
}

// AsUint64 truncates the magnitude of x to its lowest 64 bits. The sign is
// discarded.
func (x Int) AsUint64() uint64 { return x.mag.AsUint64() }

// IsUint64 reports whether x can be represented as a uint64.
func (x Int) IsUint64() bool { return !x.neg && x.mag.IsUint64() }

// AsInt64 truncates x to an int64. Values outside the range will
// over/underflow. See IsInt64() if you want to check before you convert.
func (x Int) AsInt64() int64 {
	v := int64(x.mag.AsUint64())
	if x.neg {
		return -v
	}
	return v
}

// IsInt64 reports whether x can be represented as an int64.
func (x Int) IsInt64() bool {
	if !x.mag.IsUint64() {
		return false
	}
	m := x.mag.AsUint64()
	if x.neg {
		return m <= maxInt64+1
	}
	return m <= maxInt64
}

func (x Nat) toUnsigned(bitSize uint, typ string) (uint64, error) {
	if x.BitLen() > int(bitSize) {
		return 0, rangeError(x, typ)
	}
	return x.AsUint64(), nil
}

func (x Int) toUnsigned(bitSize uint, typ string) (uint64, error) {
	if x.neg {
		return 0, rangeError(x, typ)
	}
	if x.mag.BitLen() > int(bitSize) {
		return 0, rangeError(x, typ)
	}
	return x.mag.AsUint64(), nil
}

func (x Int) toSigned(bitSize uint, typ string) (int64, error) {
	if !x.mag.IsUint64() {
		return 0, rangeError(x, typ)
	}

	limit := uint64(1) << (bitSize - 1)
	m := x.mag.AsUint64()
	if x.neg {
		if m > limit {
			return 0, rangeError(x, typ)
		}
		return -int64(m), nil
	}
	if m >= limit {
		return 0, rangeError(x, typ)
	}
	return int64(m), nil
}

// Uint64 returns x as a uint64, or an error wrapping ErrRange if it does not
// fit.
func (x Nat) Uint64() (uint64, error) { return x.toUnsigned(64, "uint64") }

func (x Nat) Uint32() (uint32, error) {
	v, err := x.toUnsigned(32, "uint32")
	return uint32(v), err
}

func (x Nat) Uint16() (uint16, error) {
	v, err := x.toUnsigned(16, "uint16")
	return uint16(v), err
}

func (x Nat) Uint8() (uint8, error) {
	v, err := x.toUnsigned(8, "uint8")
	return uint8(v), err
}

func (x Nat) Uint() (uint, error) {
	v, err := x.toUnsigned(bits.UintSize, "uint")
	return uint(v), err
}

// Int64 returns x as an int64, or an error wrapping ErrRange if it does not
// fit. The other fixed-width conversions behave the same way.
func (x Int) Int64() (int64, error) { return x.toSigned(64, "int64") }

func (x Int) Int32() (int32, error) {
	v, err := x.toSigned(32, "int32")
	return int32(v), err
}

func (x Int) Int16() (int16, error) {
	v, err := x.toSigned(16, "int16")
	return int16(v), err
}

func (x Int) Int8() (int8, error) {
	v, err := x.toSigned(8, "int8")
	return int8(v), err
}

func (x Int) Int() (int, error) {
	v, err := x.toSigned(bits.UintSize, "int")
	return int(v), err
}

func (x Int) Uint64() (uint64, error) { return x.toUnsigned(64, "uint64") }

func (x Int) Uint32() (uint32, error) {
	v, err := x.toUnsigned(32, "uint32")
	return uint32(v), err
}

func (x Int) Uint16() (uint16, error) {
	v, err := x.toUnsigned(16, "uint16")
	return uint16(v), err
}

func (x Int) Uint8() (uint8, error) {
	v, err := x.toUnsigned(8, "uint8")
	return uint8(v), err
}

func (x Int) Uint() (uint, error) {
	v, err := x.toUnsigned(bits.UintSize, "uint")
	return uint(v), err
}

// Bytes returns the magnitude of x as a big-endian byte slice with no
// leading zeros. Zero returns an empty slice.
func (x Nat) Bytes() []byte {
	xs := x.d.view()
	buf := make([]byte, len(xs)*LimbBytes)
	for i, l := range xs {
		binary.BigEndian.PutUint64(buf[len(buf)-(i+1)*LimbBytes:], l)
	}
	i := 0
	for i < len(buf) && buf[i] == 0 {
		i++
	}
	return buf[i:]
}

// NatFromBytes interprets b as a big-endian unsigned integer. See Bytes for
// the counterpart.
func NatFromBytes(b []byte) Nat {
	var buf scratch
	z := buf.take((len(b) + LimbBytes - 1) / LimbBytes)
	for i := 0; i < len(b); i++ {
		z[i/LimbBytes] |= Limb(b[len(b)-1-i]) << (8 * uint(i%LimbBytes))
	}
	return Nat{d: settle(z)}
}
