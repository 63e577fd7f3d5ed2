package apint

import (
	"fmt"
	"math/big"
	"strconv"
)

// NatFromString parses a decimal string into a Nat. A leading '-' is an
// error unless the value is zero.
func NatFromString(s string) (out Nat, err error) {
	// This deliberately limits the scope of what we accept as input just in case
	// we decide to hand-roll our own fast decimal-only parser:
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return out, fmt.Errorf("apint: nat string %q invalid", s)
	}
	out, ok = NatFromBigInt(b)
	if !ok {
		return out, fmt.Errorf("apint: nat string %q is negative: %w", s, ErrRange)
	}
	return out, nil
}

// IntFromString parses a decimal string, with an optional sign, into an Int.
func IntFromString(s string) (out Int, err error) {
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return out, fmt.Errorf("apint: int string %q invalid", s)
	}
	return IntFromBigInt(b), nil
}

// MustNatFromString is NatFromString for values known at compile time. It
// panics if s is not valid.
func MustNatFromString(s string) Nat {
	out, err := NatFromString(s)
	if err != nil {
		panic(err)
	}
	return out
}

// MustIntFromString is IntFromString for values known at compile time. It
// panics if s is not valid.
func MustIntFromString(s string) Int {
	out, err := IntFromString(s)
	if err != nil {
		panic(err)
	}
	return out
}

func (x Nat) String() string {
	if x.d.n == 0 {
		return "0"
	}
	if x.d.n == 1 {
		return strconv.FormatUint(x.d.at(0), 10)
	}
	return x.AsBigInt().String()
}

// Text returns the string representation of x in the given base, which must
// be between 2 and 62 inclusive.
func (x Nat) Text(base int) string {
	if x.d.n <= 1 && base <= 36 {
		return strconv.FormatUint(x.AsUint64(), base)
	}
	return x.AsBigInt().Text(base)
}

func (x Nat) Format(s fmt.State, c rune) {
	x.AsBigInt().Format(s, c)
}

func (x Int) String() string {
	if x.mag.d.n <= 1 {
		if x.neg {
			return "-" + strconv.FormatUint(x.mag.AsUint64(), 10)
		}
		return strconv.FormatUint(x.mag.AsUint64(), 10)
	}
	return x.AsBigInt().String()
}

// Text returns the string representation of x in the given base, which must
// be between 2 and 62 inclusive. Negative values are prefixed with '-'.
func (x Int) Text(base int) string {
	return x.AsBigInt().Text(base)
}

func (x Int) Format(s fmt.State, c rune) {
	x.AsBigInt().Format(s, c)
}

func (x Nat) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

func (x *Nat) UnmarshalText(bts []byte) (err error) {
	v, err := NatFromString(string(bts))
	if err != nil {
		return err
	}
	*x = v
	return nil
}

func (x Int) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

func (x *Int) UnmarshalText(bts []byte) (err error) {
	v, err := IntFromString(string(bts))
	if err != nil {
		return err
	}
	*x = v
	return nil
}

// MarshalJSON encodes x as a quoted decimal string; JSON numbers can not hold
// values of arbitrary size without loss in most decoders.
func (x Nat) MarshalJSON() ([]byte, error) {
	return []byte(`"` + x.String() + `"`), nil
}

// UnmarshalJSON accepts either a quoted or a bare decimal.
func (x *Nat) UnmarshalJSON(bts []byte) (err error) {
	bts, err = unquoteJSON(bts, "nat")
	if err != nil {
		return err
	}
	return x.UnmarshalText(bts)
}

func (x Int) MarshalJSON() ([]byte, error) {
	return []byte(`"` + x.String() + `"`), nil
}

func (x *Int) UnmarshalJSON(bts []byte) (err error) {
	bts, err = unquoteJSON(bts, "int")
	if err != nil {
		return err
	}
	return x.UnmarshalText(bts)
}

func unquoteJSON(bts []byte, typ string) ([]byte, error) {
	ln := len(bts)
	if ln == 0 {
		return nil, fmt.Errorf("apint: %s invalid JSON %q", typ, string(bts))
	}
	if bts[0] == '"' {
		if ln < 2 || bts[ln-1] != '"' {
			return nil, fmt.Errorf("apint: %s invalid JSON %q", typ, string(bts))
		}
		bts = bts[1 : ln-1]
	}
	return bts, nil
}

// MarshalBinary encodes x as big-endian bytes with no leading zeros. Zero
// encodes as an empty slice.
func (x Nat) MarshalBinary() ([]byte, error) {
	return x.Bytes(), nil
}

func (x *Nat) UnmarshalBinary(bts []byte) error {
	*x = NatFromBytes(bts)
	return nil
}

const (
	binaryPositive byte = 0
	binaryNegative byte = 1
)

// MarshalBinary encodes x as one sign byte (0 for non-negative, 1 for
// negative) followed by the big-endian magnitude.
func (x Int) MarshalBinary() ([]byte, error) {
	mag := x.mag.Bytes()
	out := make([]byte, 1+len(mag))
	if x.neg {
		out[0] = binaryNegative
	}
	copy(out[1:], mag)
	return out, nil
}

func (x *Int) UnmarshalBinary(bts []byte) error {
	if len(bts) == 0 {
		return fmt.Errorf("apint: int binary encoding is empty")
	}
	switch bts[0] {
	case binaryPositive:
		*x = Int{mag: NatFromBytes(bts[1:])}
	case binaryNegative:
		*x = mkInt(NatFromBytes(bts[1:]), true)
	default:
		return fmt.Errorf("apint: int binary encoding has invalid sign byte %#02x", bts[0])
	}
	return nil
}
