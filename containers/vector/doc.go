// Package vector implements Vector, a growable contiguous container
// parameterized over an element type and an api.Allocator capability.
//
// Storage is a single owned block; slots [0, Len()) hold live elements,
// slots [Len(), Cap()) are uninitialized. When an append would exceed the
// allocated capacity the block is reallocated, scaled by GrowthFactor, which
// keeps appends O(1) amortized. Every operation that may allocate returns an
// error; a failed allocation leaves the vector exactly as it was.
//
// Structural mutations (growth, insertion, assignment, clear, swap)
// invalidate previously obtained iterators.
package vector
