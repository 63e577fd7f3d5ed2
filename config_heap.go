//go:build !apint_noheap

package apint

// InlineLimbs is the number of limbs a value can hold without a heap
// allocation. Build with '-tags apint_noheap' for an allocator-free build.
const InlineLimbs = 4

const heapAvailable = true
