//go:build apint_noheap

package apint

// InlineLimbs is the number of limbs a value can hold. In this build there is
// no growable storage; exceeding it panics.
const InlineLimbs = 16

const heapAvailable = false
