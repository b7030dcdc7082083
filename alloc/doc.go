// Package alloc provides implementations of the api.Allocator capability.
//
// Heap is the general-purpose default. Pooled recycles blocks through
// per-size-class free lists. Counting and Limited are wrappers: Counting
// keeps api.AllocStats accounting, Limited enforces a slot budget and turns
// exhaustion into api.ErrAllocationFailure. Mmap allocates byte blocks
// off-heap on platforms that support it.
//
// Allocators compose: Limited(Counting(Heap)) is a typical test stack.
package alloc
