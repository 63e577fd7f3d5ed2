package apint

import (
	"fmt"
)

// scratchLimbs is the size of the stack buffers kernels write into. It holds
// the widest intermediate an inline-only computation can produce: the
// product of two inline values plus the extra limbs long division needs.
const scratchLimbs = 2*InlineLimbs + 2

// digits is the limb store behind every Nat. It is either inline (heap is nil,
// limbs live in inl[:n]) or growable (limbs live in heap[:n]).
//
// A digits is never written to once it has been handed to a Nat; operations
// build their results in a workspace and settle them into a new digits.
// Zero is the empty sequence.
type digits struct {
	inl  [InlineLimbs]Limb
	n    int
	heap []Limb
}

func (d *digits) view() []Limb {
	if d.heap != nil {
		return d.heap[:d.n]
	}
	return d.inl[:d.n]
}

func (d *digits) len() int { return d.n }

func (d *digits) at(i int) Limb {
	if d.heap != nil {
		return d.heap[i]
	}
	return d.inl[i]
}

// fitsInline reports whether n limbs can be stored without promoting to the
// growable variant.
func fitsInline(n int) bool {
	return n <= InlineLimbs
}

// scratch is a fixed-size workspace that lives on the caller's stack.
type scratch [scratchLimbs]Limb

// take returns a zeroed workspace of n limbs, backed by s when it is large
// enough and by the heap otherwise.
func (s *scratch) take(n int) []Limb {
	if n <= len(s) {
		z := s[:n]
		clear(z)
		return z
	}
	if !heapAvailable {
		capacityOverflow(n)
	}
	return make([]Limb, n)
}

// settle trims z and copies it into a new digits, inline if it fits and
// promoted to the growable variant if it does not. z is never retained, so
// it may point into a scratch buffer.
func settle(z []Limb) (d digits) {
	n := normLen(z)
	if fitsInline(n) {
		copy(d.inl[:], z[:n])
		d.n = n
		return d
	}
	if !heapAvailable {
		capacityOverflow(n)
	}
	d.heap = make([]Limb, n)
	copy(d.heap, z[:n])
	d.n = n
	return d
}

// fromLimbs copies an externally owned limb sequence into canonical form.
func fromLimbs(x []Limb) digits {
	return settle(x)
}

func fromLimb(x Limb) (d digits) {
	if x != 0 {
		d.inl[0] = x
		d.n = 1
	}
	return d
}

// capacityOverflow reports an attempt to hold more limbs than an
// allocator-free build can store. There is no way to recover from it: the
// alternative is silently truncating the value.
func capacityOverflow(n int) {
	panic(fmt.Sprintf("apint: capacity overflow: %d limbs exceeds inline capacity %d", n, InlineLimbs))
}
