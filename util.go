package apint

type RandSource interface {
	Uint64() uint64
}

// RandNat generates a random Nat of at most limbs limbs from an external
// source. The result may be shorter if the top limbs come out as zero.
func RandNat(source RandSource, limbs int) Nat {
	var buf scratch
	z := buf.take(limbs)
	for i := range z {
		z[i] = source.Uint64()
	}
	return Nat{d: settle(z)}
}

// RandInt generates a random Int with a magnitude of at most limbs limbs and
// a random sign.
func RandInt(source RandSource, limbs int) Int {
	neg := source.Uint64()&1 == 1
	return mkInt(RandNat(source, limbs), neg)
}

// DifferenceNat subtracts the smaller of a and b from the larger.
func DifferenceNat(a, b Nat) Nat {
	switch a.Cmp(b) {
	case 1:
		return a.Sub(b)
	case -1:
		return b.Sub(a)
	}
	return Nat{}
}

func LargerNat(a, b Nat) Nat {
	if a.Cmp(b) < 0 {
		return b
	}
	return a
}

func SmallerNat(a, b Nat) Nat {
	if a.Cmp(b) > 0 {
		return b
	}
	return a
}

// DifferenceInt subtracts the smaller of a and b from the larger. The result
// is never negative.
func DifferenceInt(a, b Int) Int {
	if a.Cmp(b) < 0 {
		return b.Sub(a)
	}
	return a.Sub(b)
}

func LargerInt(a, b Int) Int {
	if a.Cmp(b) < 0 {
		return b
	}
	return a
}

func SmallerInt(a, b Int) Int {
	if a.Cmp(b) > 0 {
		return b
	}
	return a
}
