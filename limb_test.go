package apint

import (
	"fmt"
	"math/big"
	"math/rand"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func checkDivWW(u1, u0, v Limb) error {
	q, r := divWW(u1, u0, v)
	u := new(big.Int).Lsh(bigU64(u1), 64)
	u.Or(u, bigU64(u0))
	eq, er := new(big.Int).QuoRem(u, bigU64(v), new(big.Int))
	if eq.Cmp(bigU64(q)) != 0 || er.Cmp(bigU64(r)) != 0 {
		return fmt.Errorf("%x:%x / %x: found %x r %x, expected %x r %x", u1, u0, v, q, r, eq, er)
	}
	return nil
}

func TestDivWW(t *testing.T) {
	tt := assert.WrapTB(t)
	rng := rand.New(rand.NewSource(globalRNG.Int63()))

	for i := 0; i < 50000; i++ {
		v := rng.Uint64() | 1
		if i%3 == 0 {
			v >>= uint(rng.Intn(63))
			v |= 1
		}
		u1 := rng.Uint64() % v // quotient must fit in a limb
		u0 := rng.Uint64()
		tt.MustOK(checkDivWW(u1, u0, v))
	}
}

func TestDivWWEdges(t *testing.T) {
	for _, tc := range []struct {
		u1, u0, v Limb
	}{
		{0, 0, 1},
		{0, maxLimb, 1},
		{0, maxLimb, maxLimb},
		{maxLimb - 1, maxLimb, maxLimb},
		{1, 0, 2},
		{1 << 62, 0, 1 << 63},
		{0x7FFFFFFFFFFFFFFF, maxLimb, 0x8000000000000000},
	} {
		tt := assert.WrapTB(t)
		tt.MustOK(checkDivWW(tc.u1, tc.u0, tc.v))
	}
}

func TestMulWW(t *testing.T) {
	tt := assert.WrapTB(t)
	rng := rand.New(rand.NewSource(globalRNG.Int63()))

	for i := 0; i < 10000; i++ {
		x, y := rng.Uint64(), rng.Uint64()
		hi, lo := mulWW(x, y)

		rb := new(big.Int).Mul(bigU64(x), bigU64(y))
		rc := new(big.Int).Lsh(bigU64(hi), 64)
		rc.Or(rc, bigU64(lo))
		tt.MustEqual(rb.String(), rc.String(), "failed at index %d", i)
	}
}

func TestGreaterThan(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustAssert(greaterThan(1, 0, 0, maxLimb))
	tt.MustAssert(greaterThan(1, 2, 1, 1))
	tt.MustAssert(!greaterThan(1, 1, 1, 1))
	tt.MustAssert(!greaterThan(0, maxLimb, 1, 0))
}

func TestNormLen(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual(0, normLen(nil))
	tt.MustEqual(0, normLen([]Limb{0, 0}))
	tt.MustEqual(1, normLen([]Limb{1, 0, 0}))
	tt.MustEqual(3, normLen([]Limb{0, 0, 1}))

	// Trimming is idempotent:
	x := []Limb{5, 7, 0, 0}
	n := normLen(x)
	tt.MustEqual(n, normLen(x[:n]))
}

func TestAddSubVV(t *testing.T) {
	tt := assert.WrapTB(t)

	x := []Limb{maxLimb, maxLimb, maxLimb}
	y := []Limb{1, 0, 0}
	z := make([]Limb, 3)
	tt.MustEqual(Limb(1), addVV(z, x, y))
	tt.MustEqual([]Limb{0, 0, 0}, z)

	tt.MustEqual(Limb(1), subVV(z, y, x))
	tt.MustEqual([]Limb{2, 0, 0}, z)

	tt.MustEqual(Limb(0), subVW(z, x, 1))
	tt.MustEqual([]Limb{maxLimb - 1, maxLimb, maxLimb}, z)

	tt.MustEqual(Limb(1), addVW(z, x, 1))
	tt.MustEqual([]Limb{0, 0, 0}, z)
}

func TestShiftVU(t *testing.T) {
	tt := assert.WrapTB(t)

	x := []Limb{0x8000000000000001, 0x8000000000000000}
	z := make([]Limb, 2)
	tt.MustEqual(Limb(1), shlVU(z, x, 1))
	tt.MustEqual([]Limb{2, 1}, z)

	tt.MustEqual(Limb(1)<<63, shrVU(z, x, 1))
	tt.MustEqual([]Limb{0x4000000000000000, 0x4000000000000000}, z)

	tt.MustEqual(Limb(0), shlVU(z, x, 0))
	tt.MustEqual(x, z)
}
