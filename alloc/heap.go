// File: alloc/heap.go
//
// General-purpose allocator backed by the Go heap.

package alloc

import "github.com/szimmy/NonSTL/api"

// Ensure compile-time interface compliance.
var _ api.Allocator[int] = Heap[int]{}

// Heap is the default allocator. It is stateless; the zero value is ready
// to use and safe to copy.
type Heap[T any] struct{}

// NewHeap returns a Heap allocator for element type T.
func NewHeap[T any]() Heap[T] { return Heap[T]{} }

// Allocate returns n uninitialized slots.
func (Heap[T]) Allocate(n int) ([]T, error) {
	if n <= 0 {
		return nil, nil
	}
	return make([]T, n), nil
}

// Deallocate releases a block. The GC reclaims the memory once nothing
// references it.
func (Heap[T]) Deallocate(_ []T) {}

// Construct places val into slot i.
func (Heap[T]) Construct(block []T, i int, val T) { block[i] = val }

// Destroy zeroes slot i so the block no longer pins the dead value.
func (Heap[T]) Destroy(block []T, i int) {
	var zero T
	block[i] = zero
}
