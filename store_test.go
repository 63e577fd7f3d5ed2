package apint

import (
	"fmt"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func TestSettleTrims(t *testing.T) {
	for idx, tc := range []struct {
		in  []Limb
		out []Limb
	}{
		{nil, []Limb{}},
		{[]Limb{0}, []Limb{}},
		{[]Limb{0, 0, 0}, []Limb{}},
		{[]Limb{1}, []Limb{1}},
		{[]Limb{1, 0, 0}, []Limb{1}},
		{[]Limb{0, 1, 0}, []Limb{0, 1}},
	} {
		t.Run(fmt.Sprintf("%d/%v", idx, tc.in), func(t *testing.T) {
			tt := assert.WrapTB(t)
			d := settle(tc.in)
			tt.MustEqual(tc.out, append([]Limb{}, d.view()...))
			tt.MustAssert(d.heap == nil)

			// Settling a settled sequence changes nothing:
			again := settle(d.view())
			tt.MustEqual(d.n, again.n)
		})
	}
}

func TestSettleDoesNotRetain(t *testing.T) {
	tt := assert.WrapTB(t)

	z := []Limb{1, 2, 3}
	n := NatFromLimbs(z)
	z[0] = 99
	tt.MustEqual(Limb(1), n.LimbAt(0))
}

func TestFitsInline(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustAssert(fitsInline(0))
	tt.MustAssert(fitsInline(InlineLimbs))
	tt.MustAssert(!fitsInline(InlineLimbs + 1))
}

func TestInlineCapacityBoundary(t *testing.T) {
	tt := assert.WrapTB(t)

	// The largest inline value is all ones in every inline limb:
	limbs := make([]Limb, InlineLimbs)
	for i := range limbs {
		limbs[i] = maxLimb
	}
	x := NatFromLimbs(limbs)
	tt.MustEqual(InlineLimbs, x.LimbLen())
	tt.MustAssert(x.d.heap == nil)

	if !heapAvailable {
		tt.MustAssert(checkPanics(func() { x.Inc() }) == nil)
		return
	}

	// One more needs a limb past the inline capacity:
	y := x.Inc()
	tt.MustEqual(InlineLimbs+1, y.LimbLen())
	tt.MustAssert(y.d.heap != nil)
	tt.MustEqual(Limb(1), y.LimbAt(InlineLimbs))
	for i := 0; i < InlineLimbs; i++ {
		tt.MustEqual(Limb(0), y.LimbAt(i))
	}

	// And coming back down demotes it again:
	z := y.Dec()
	tt.MustAssert(z.Equal(x))
	tt.MustAssert(z.d.heap == nil)
}

func TestDemoteOnShrink(t *testing.T) {
	requireHeap(t)
	tt := assert.WrapTB(t)

	large := OneNat.Lsh(uint(InlineLimbs * LimbBits * 2))
	tt.MustAssert(large.d.heap != nil)

	for _, small := range []Nat{
		large.Rsh(uint(InlineLimbs * LimbBits * 2)),
		large.Sub(large.Dec()),
		large.And(NatFrom64(7)),
		large.Xor(large),
	} {
		tt.MustAssert(small.d.heap == nil, "%s held on the heap", small)
		tt.MustAssert(checkCanonical(small) == nil)
	}

	q, r, err := large.QuoRem(large.Rsh(1))
	tt.MustOK(err)
	tt.MustAssert(q.d.heap == nil)
	tt.MustAssert(q.Equal(NatFrom64(2)))
	tt.MustAssert(r.IsZero())
}

func TestStorageDoesNotAffectResults(t *testing.T) {
	requireHeap(t)
	tt := assert.WrapTB(t)

	x := nats("0x 1234 5678 9abc def0 0fed cba9 8765 4321")
	y := NatFrom64(0xFFFF)
	hx, hy := forceHeap(x), forceHeap(y)

	tt.MustAssert(hx.Equal(x))
	tt.MustEqual(0, hx.Cmp(x))
	tt.MustAssert(hx.Add(hy).Equal(x.Add(y)))
	tt.MustAssert(hx.Mul(hy).Equal(x.Mul(y)))
	tt.MustEqual(x.String(), hx.String())

	q1, r1, err := hx.QuoRem(hy)
	tt.MustOK(err)
	q2, r2, err := x.QuoRem(y)
	tt.MustOK(err)
	tt.MustAssert(q1.Equal(q2) && r1.Equal(r2))

	// Results from heap operands still land inline when they fit:
	tt.MustAssert(hx.Add(hy).d.heap == nil)
}

func TestNoHeapCapacityOverflow(t *testing.T) {
	if heapAvailable {
		t.Skip("requires an allocator-free build")
	}
	tt := assert.WrapTB(t)

	x := OneNat.Lsh(uint(InlineLimbs*LimbBits - 1))
	tt.MustEqual(InlineLimbs, x.LimbLen())
	tt.MustAssert(checkPanics(func() { x.Add(x) }) == nil)
	tt.MustAssert(checkPanics(func() { x.Mul(x) }) == nil)
	tt.MustAssert(checkPanics(func() { NatFromLimbs(make([]Limb, InlineLimbs+1)) }) != nil, "zero limbs trim away and must not overflow")
}
