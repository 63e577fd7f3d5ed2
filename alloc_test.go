package apint

import (
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

var (
	allocNatResult Nat
	allocIntResult Int
	allocErrResult error
)

func TestInlineOpsDoNotAllocate(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}

	// Two limbs each, so every product still fits inline:
	x := NatFromLimbs([]Limb{0x0123456789abcdef, 0xfedcba98})
	y := NatFromLimbs([]Limb{0xffffffffffffffff, 0x1})
	xi, yi := IntFromNat(true, x), IntFromNat(false, y)

	for _, tc := range []struct {
		name string
		fn   func()
	}{
		{"nat/add", func() { allocNatResult = x.Add(y) }},
		{"nat/sub", func() { allocNatResult = x.Sub(y) }},
		{"nat/mul", func() { allocNatResult = x.Mul(y) }},
		{"nat/quorem", func() { allocNatResult, _, allocErrResult = x.QuoRem(y) }},
		{"nat/quorem-single", func() { allocNatResult, _, allocErrResult = x.QuoRem(n64(7)) }},
		{"nat/lsh", func() { allocNatResult = x.Lsh(70) }},
		{"nat/rsh", func() { allocNatResult = x.Rsh(3) }},
		{"nat/xor", func() { allocNatResult = x.Xor(y) }},
		{"int/add", func() { allocIntResult = xi.Add(yi) }},
		{"int/sub", func() { allocIntResult = xi.Sub(yi) }},
		{"int/mul", func() { allocIntResult = xi.Mul(yi) }},
		{"int/quorem", func() { allocIntResult, _, allocErrResult = xi.QuoRem(yi) }},
		{"int/cmp", func() { _ = xi.Cmp(yi) }},
	} {
		t.Run(tc.name, func(t *testing.T) {
			tt := assert.WrapTB(t)
			allocs := testing.AllocsPerRun(100, tc.fn)
			tt.MustEqual(0.0, allocs, "%s allocated", tc.name)
		})
	}
}

func TestHeapResultsAllocate(t *testing.T) {
	requireHeap(t)
	tt := assert.WrapTB(t)

	x := OneNat.Lsh(uint(InlineLimbs * LimbBits))
	allocs := testing.AllocsPerRun(100, func() { allocNatResult = x.Add(x) })
	tt.MustAssert(allocs > 0)
}
