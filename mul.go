package apint

// karatsubaThreshold is the operand length, in limbs, at which multiplication
// switches from the schoolbook method to Karatsuba. Both paths produce
// identical results; see BenchmarkNatMulThreshold for tuning. Karatsuba needs
// temporaries, so allocator-free builds always use the schoolbook method.
var karatsubaThreshold = 40

// mulInto sets z = x*y. z must be zeroed and exactly len(x)+len(y) limbs.
// x and y need not be canonical.
func mulInto(z, x, y []Limb) {
	if len(x) < len(y) {
		x, y = y, x
	}
	if !heapAvailable || len(y) < karatsubaThreshold {
		mulBasic(z, x, y)
		return
	}
	karatsuba(z, x, y)
}

// mulBasic is schoolbook multiplication: one row of x*y[i] per limb of y.
func mulBasic(z, x, y []Limb) {
	for i, d := range y {
		if d != 0 {
			z[len(x)+i] = addMulVVW(z[i:i+len(x)], x, d)
		}
	}
}

// karatsuba splits each operand into a low half of h limbs and a high half,
// and computes x*y from three half-size products:
//
//	x*y = p2<<(2h) + (p1 - p2 - p0)<<h + p0
//	p0 = x0*y0, p2 = x1*y1, p1 = (x0+x1)*(y0+y1)
//
// Operands of different lengths are multiplied one len(y)-sized chunk of x at
// a time. z must be zeroed and exactly len(x)+len(y) limbs.
func karatsuba(z, x, y []Limb) {
	if len(x) < len(y) {
		x, y = y, x
	}

	// Below 4 limbs the middle product is no smaller than its inputs, so
	// splitting would never terminate.
	n := len(y)
	if n < 4 {
		mulBasic(z, x, y)
		return
	}

	if len(x) > n {
		t := make([]Limb, 2*n)
		for i := 0; i < len(x); i += n {
			xi := x[i:min(i+n, len(x))]
			ti := t[:len(xi)+n]
			clear(ti)
			mulInto(ti, xi, y)
			addAt(z, ti[:normLen(ti)], i)
		}
		return
	}

	h := n / 2
	hh := n - h // hh >= h
	x0, x1 := x[:h], x[h:]
	y0, y1 := y[:h], y[h:]

	// p0 and p2 land in disjoint halves of z.
	mulInto(z[:2*h], x0, y0)
	mulInto(z[2*h:], x1, y1)

	sx := make([]Limb, hh+1)
	sy := make([]Limb, hh+1)
	halfSum(sx, x0, x1)
	halfSum(sy, y0, y1)

	p1 := make([]Limb, 2*(hh+1))
	mulInto(p1, sx, sy)
	subFrom(p1, z[:2*h])
	subFrom(p1, z[2*h:])

	addAt(z, p1[:normLen(p1)], h)
}

// halfSum sets s = lo + hi, where len(hi) >= len(lo) and len(s) == len(hi)+1.
func halfSum(s, lo, hi []Limb) {
	h, hh := len(lo), len(hi)
	c := addVV(s[:h], hi[:h], lo)
	if hh > h {
		c = addVW(s[h:hh], hi[h:], c)
	}
	s[hh] = c
}
