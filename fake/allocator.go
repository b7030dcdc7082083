// File: fake/allocator.go
//
// Allocator test doubles for exercising failure paths and lifecycle
// accounting without touching real allocation strategies.

package fake

import (
	"github.com/szimmy/NonSTL/alloc"
	"github.com/szimmy/NonSTL/api"
)

// Ensure compile-time interface compliance.
var (
	_ api.Allocator[int] = (*FailAfter[int])(nil)
	_ api.Allocator[int] = (*Recording[int])(nil)
)

// FailAfter succeeds for a fixed number of Allocate calls, then fails
// every subsequent one with api.ErrAllocationFailure.
type FailAfter[T any] struct {
	inner     api.Allocator[T]
	remaining int
}

// NewFailAfter allows n successful allocations before failing.
func NewFailAfter[T any](n int) *FailAfter[T] {
	return &FailAfter[T]{inner: alloc.NewHeap[T](), remaining: n}
}

func (f *FailAfter[T]) Allocate(n int) ([]T, error) {
	if n <= 0 {
		return nil, nil
	}
	if f.remaining <= 0 {
		return nil, api.ErrAllocationFailure
	}
	f.remaining--
	return f.inner.Allocate(n)
}

func (f *FailAfter[T]) Deallocate(block []T) { f.inner.Deallocate(block) }

func (f *FailAfter[T]) Construct(block []T, i int, val T) { f.inner.Construct(block, i, val) }

func (f *FailAfter[T]) Destroy(block []T, i int) { f.inner.Destroy(block, i) }

// Recording counts every capability call so tests can assert that element
// lifetimes balance.
type Recording[T any] struct {
	inner api.Allocator[T]

	Allocates   int
	Deallocates int
	Constructs  int
	Destroys    int
}

// NewRecording returns a heap-backed recording allocator.
func NewRecording[T any]() *Recording[T] {
	return &Recording[T]{inner: alloc.NewHeap[T]()}
}

func (r *Recording[T]) Allocate(n int) ([]T, error) {
	if n > 0 {
		r.Allocates++
	}
	return r.inner.Allocate(n)
}

func (r *Recording[T]) Deallocate(block []T) {
	if block != nil {
		r.Deallocates++
	}
	r.inner.Deallocate(block)
}

func (r *Recording[T]) Construct(block []T, i int, val T) {
	r.Constructs++
	r.inner.Construct(block, i, val)
}

func (r *Recording[T]) Destroy(block []T, i int) {
	r.Destroys++
	r.inner.Destroy(block, i)
}
