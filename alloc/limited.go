// File: alloc/limited.go
//
// Budget-enforcing wrapper. Gives allocation failure a deterministic,
// testable path: once outstanding slots would exceed the budget, Allocate
// returns api.ErrAllocationFailure and the inner allocator is not called.

package alloc

import (
	"fmt"

	"github.com/szimmy/NonSTL/api"
)

// Ensure compile-time interface compliance.
var _ api.Allocator[int] = (*Limited[int])(nil)

// Limited wraps an allocator with a maximum number of outstanding slots.
type Limited[T any] struct {
	inner       api.Allocator[T]
	maxSlots    int
	outstanding int
}

// NewLimited wraps inner with a budget of maxSlots outstanding element
// slots. A nil inner defaults to Heap.
func NewLimited[T any](inner api.Allocator[T], maxSlots int) *Limited[T] {
	if inner == nil {
		inner = Heap[T]{}
	}
	return &Limited[T]{inner: inner, maxSlots: maxSlots}
}

func (l *Limited[T]) Allocate(n int) ([]T, error) {
	if n <= 0 {
		return nil, nil
	}
	if l.outstanding+n > l.maxSlots {
		return nil, fmt.Errorf("%w: %d slots requested, %d of %d in use",
			api.ErrAllocationFailure, n, l.outstanding, l.maxSlots)
	}
	block, err := l.inner.Allocate(n)
	if err != nil {
		return nil, err
	}
	l.outstanding += len(block)
	return block, nil
}

func (l *Limited[T]) Deallocate(block []T) {
	if block == nil {
		return
	}
	l.outstanding -= len(block)
	l.inner.Deallocate(block)
}

func (l *Limited[T]) Construct(block []T, i int, val T) { l.inner.Construct(block, i, val) }

func (l *Limited[T]) Destroy(block []T, i int) { l.inner.Destroy(block, i) }

// Outstanding returns the number of slots currently held by callers.
func (l *Limited[T]) Outstanding() int { return l.outstanding }
