// File: containers/ringbuf/ring.go
//
// Fixed-capacity overwrite-on-full ring. All index movement funnels
// through advanceHead and advanceTail; no operation ever reallocates.

package ringbuf

import (
	"github.com/szimmy/NonSTL/alloc"
	"github.com/szimmy/NonSTL/api"
)

// Ensure compile-time interface compliance.
var _ api.Container = (*Ring[int])(nil)

// Ring is a fixed-capacity circular container of T.
type Ring[T any] struct {
	alloc api.Allocator[T]
	data  []T // fixed block, len(data) == capacity
	head  int // physical index of the oldest element
	tail  int // physical index of the newest element
	size  int // live element count, 0 <= size <= len(data)
}

// Option configures ring construction.
type Option[T any] func(*Ring[T])

// WithAllocator selects the allocation capability backing the ring.
func WithAllocator[T any](a api.Allocator[T]) Option[T] {
	return func(r *Ring[T]) {
		if a != nil {
			r.alloc = a
		}
	}
}

// New constructs an empty ring of the given fixed capacity. The block is
// allocated once here and never resized. Panics if capacity is not
// positive.
func New[T any](capacity int, opts ...Option[T]) (*Ring[T], error) {
	if capacity <= 0 {
		panic("ringbuf: capacity must be positive")
	}
	r := &Ring[T]{alloc: alloc.Default[T]()}
	for _, opt := range opts {
		opt(r)
	}
	block, err := r.alloc.Allocate(capacity)
	if err != nil {
		return nil, err
	}
	r.data = block
	// tail sits one slot before head so the first push lands on slot 0.
	r.tail = capacity - 1
	return r, nil
}

// ---------------
// ELEMENT ACCESS
// ---------------

// Get returns the element at logical position n without a range check.
// Caller guarantees n < Len().
func (r *Ring[T]) Get(n int) T { return r.data[r.physical(n)] }

// Set assigns the element at logical position n without a range check.
func (r *Ring[T]) Set(n int, val T) { r.data[r.physical(n)] = val }

// At returns the element at logical position n, or a BoundsError when n
// is outside [0, Len()).
func (r *Ring[T]) At(n int) (T, error) {
	if n < 0 || n >= r.size {
		var zero T
		return zero, api.NewBoundsError(n, r.size)
	}
	return r.data[r.physical(n)], nil
}

// Front returns the oldest element. Requires a non-empty ring.
func (r *Ring[T]) Front() T { return r.data[r.head] }

// Back returns the newest element. Requires a non-empty ring.
func (r *Ring[T]) Back() T { return r.data[r.tail] }

// ---------------
// CAPACITY
// ---------------

// Len returns the number of live elements.
func (r *Ring[T]) Len() int { return r.size }

// Cap returns the fixed capacity.
func (r *Ring[T]) Cap() int { return len(r.data) }

// Empty reports whether the ring holds no elements.
func (r *Ring[T]) Empty() bool { return r.size == 0 }

// Full reports whether the next push will evict the oldest element.
func (r *Ring[T]) Full() bool { return r.size == len(r.data) }

// Allocator returns the allocation capability backing this ring.
func (r *Ring[T]) Allocator() api.Allocator[T] { return r.alloc }

// ---------------
// MODIFIERS
// ---------------

// PushBack writes val after the current tail. On a full ring the oldest
// element is evicted: its slot is overwritten and head advances, leaving
// the size at capacity.
func (r *Ring[T]) PushBack(val T) {
	r.advanceTail()
	if r.size > len(r.data) {
		r.advanceHead()
	}
	// Overwrite by construction; the outgoing value is released by the
	// assignment itself on eviction.
	r.alloc.Construct(r.data, r.tail, val)
}

// PopFront removes the oldest element. Popping an empty ring is a no-op.
func (r *Ring[T]) PopFront() {
	if r.size == 0 {
		return
	}
	r.alloc.Destroy(r.data, r.head)
	r.advanceHead()
}

// Clear destroys every live element and resets the ring to empty.
func (r *Ring[T]) Clear() {
	for n := 0; n < r.size; n++ {
		r.alloc.Destroy(r.data, r.physical(n))
	}
	r.head = 0
	r.tail = len(r.data) - 1
	r.size = 0
}

// Clone returns a deep copy sharing no storage with r. The copy holds the
// same logical sequence, renormalized so its head is at slot 0.
func (r *Ring[T]) Clone() (*Ring[T], error) {
	block, err := r.alloc.Allocate(len(r.data))
	if err != nil {
		return nil, err
	}
	out := &Ring[T]{alloc: r.alloc, data: block, size: r.size}
	for n := 0; n < r.size; n++ {
		out.alloc.Construct(out.data, n, r.data[r.physical(n)])
	}
	out.tail = r.size - 1
	if r.size == 0 {
		out.tail = len(out.data) - 1
	}
	return out, nil
}

// Release destroys all elements and returns the block to the allocator.
// The ring must not be used afterwards.
func (r *Ring[T]) Release() {
	r.Clear()
	r.alloc.Deallocate(r.data)
	r.data = nil
}

// ---------------
// PRIVATE
// ---------------

// physical maps a logical position to its slot.
func (r *Ring[T]) physical(n int) int {
	return (r.head + n) % len(r.data)
}

// advanceHead drops the oldest element on non-empty rings.
func (r *Ring[T]) advanceHead() {
	if r.size == 0 {
		return
	}
	r.head++
	r.size--
	if r.head == len(r.data) {
		r.head = 0
	}
}

// advanceTail claims the next write slot.
func (r *Ring[T]) advanceTail() {
	r.tail++
	r.size++
	if r.tail == len(r.data) {
		r.tail = 0
	}
}
