// File: containers/vector/vector.go
//
// Growable contiguous container over an injectable allocation capability.
// reallocate is the only place capacity changes; the freshly allocated
// block is fully populated before it replaces the old one, so a failed
// allocation never disturbs existing state.

package vector

import (
	"math"

	"github.com/szimmy/NonSTL/alloc"
	"github.com/szimmy/NonSTL/api"
)

// Ensure compile-time interface compliance.
var _ api.Container = (*Vector[int])(nil)

const (
	// GrowthFactor scales capacity on reallocation. Appends stay O(1)
	// amortized for any factor > 1.
	GrowthFactor = 2.0

	// DefaultCapacity is the slot count allocated by New.
	DefaultCapacity = 10
)

// Vector is a growable contiguous container of T.
type Vector[T any] struct {
	alloc api.Allocator[T]
	data  []T // len(data) is the allocated capacity
	size  int // live elements occupy data[0:size]
}

// New constructs an empty vector with DefaultCapacity slots.
func New[T any](opts ...Option[T]) (*Vector[T], error) {
	cfg := applyOptions(opts)
	capacity := cfg.capacity
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	block, err := cfg.alloc.Allocate(capacity)
	if err != nil {
		return nil, err
	}
	return &Vector[T]{alloc: cfg.alloc, data: block}, nil
}

// NewWithSize constructs a vector of n default-constructed elements.
func NewWithSize[T any](n int, opts ...Option[T]) (*Vector[T], error) {
	var zero T
	return NewFill(n, zero, opts...)
}

// NewFill constructs a vector of n copies of val.
func NewFill[T any](n int, val T, opts ...Option[T]) (*Vector[T], error) {
	cfg := applyOptions(opts)
	capacity := scaledCapacity(n)
	if cfg.capacity > capacity {
		capacity = cfg.capacity
	}
	block, err := cfg.alloc.Allocate(capacity)
	if err != nil {
		return nil, err
	}
	v := &Vector[T]{alloc: cfg.alloc, data: block, size: n}
	for i := 0; i < n; i++ {
		v.alloc.Construct(v.data, i, val)
	}
	return v, nil
}

// NewFromSlice constructs a vector holding copies of vs, in order.
func NewFromSlice[T any](vs []T, opts ...Option[T]) (*Vector[T], error) {
	cfg := applyOptions(opts)
	capacity := scaledCapacity(len(vs))
	if cfg.capacity > capacity {
		capacity = cfg.capacity
	}
	block, err := cfg.alloc.Allocate(capacity)
	if err != nil {
		return nil, err
	}
	v := &Vector[T]{alloc: cfg.alloc, data: block, size: len(vs)}
	for i, val := range vs {
		v.alloc.Construct(v.data, i, val)
	}
	return v, nil
}

func applyOptions[T any](opts []Option[T]) config[T] {
	cfg := config[T]{alloc: alloc.Default[T]()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// ---------------
// ELEMENT ACCESS
// ---------------

// Get returns the element at position n without a range check.
// Caller guarantees n < Len(); anything else is a contract violation.
func (v *Vector[T]) Get(n int) T { return v.data[n] }

// Set assigns the element at position n without a range check.
func (v *Vector[T]) Set(n int, val T) { v.data[n] = val }

// At returns the element at position n, or a BoundsError when n is
// outside [0, Len()).
func (v *Vector[T]) At(n int) (T, error) {
	if n < 0 || n >= v.size {
		var zero T
		return zero, api.NewBoundsError(n, v.size)
	}
	return v.data[n], nil
}

// Front returns the first element. Requires a non-empty vector.
func (v *Vector[T]) Front() T { return v.data[0] }

// Back returns the last element. Requires a non-empty vector.
func (v *Vector[T]) Back() T { return v.data[v.size-1] }

// Data returns the live region of the backing block. The slice aliases
// container storage and is invalidated by any structural mutation.
func (v *Vector[T]) Data() []T { return v.data[:v.size] }

// ---------------
// CAPACITY
// ---------------

// Len returns the number of live elements.
func (v *Vector[T]) Len() int { return v.size }

// Cap returns the number of allocated slots.
func (v *Vector[T]) Cap() int { return len(v.data) }

// Empty reports whether the vector holds no elements.
func (v *Vector[T]) Empty() bool { return v.size == 0 }

// MaxSize returns the largest representable element count.
func (v *Vector[T]) MaxSize() int { return math.MaxInt }

// Allocator returns the allocation capability backing this vector.
func (v *Vector[T]) Allocator() api.Allocator[T] { return v.alloc }

// Reserve grows capacity to at least n slots in one exact-fit step.
// It never shrinks.
func (v *Vector[T]) Reserve(n int) error {
	if n <= len(v.data) {
		return nil
	}
	return v.reallocate(n)
}

// ShrinkToFit reallocates so that Cap() == Len().
func (v *Vector[T]) ShrinkToFit() error {
	if len(v.data) > v.size {
		return v.reallocate(v.size)
	}
	return nil
}

// Resize sets the element count to n. Shrinking pops from the back;
// growing default-constructs the newly exposed slots, reallocating first
// when n exceeds capacity.
func (v *Vector[T]) Resize(n int) error {
	var zero T
	return v.ResizeWith(n, zero)
}

// ResizeWith is Resize with val constructed into any newly exposed slots.
func (v *Vector[T]) ResizeWith(n int, val T) error {
	switch {
	case n < v.size:
		v.popBackN(v.size - n)
	case n <= len(v.data):
		for i := v.size; i < n; i++ {
			v.alloc.Construct(v.data, i, val)
		}
		v.size = n
	default:
		if err := v.reallocate(n); err != nil {
			return err
		}
		for i := v.size; i < n; i++ {
			v.alloc.Construct(v.data, i, val)
		}
		v.size = n
	}
	return nil
}

// ---------------
// MODIFIERS
// ---------------

// PushBack appends val, growing the backing block when at capacity.
func (v *Vector[T]) PushBack(val T) error {
	if v.size == len(v.data) {
		if err := v.reallocate(nextCapacity(len(v.data))); err != nil {
			return err
		}
	}
	v.alloc.Construct(v.data, v.size, val)
	v.size++
	return nil
}

// PopBack removes the last element. Requires a non-empty vector; calling
// it on an empty vector is a contract violation.
func (v *Vector[T]) PopBack() {
	v.alloc.Destroy(v.data, v.size-1)
	v.size--
}

// Insert places val before logical position idx and returns an iterator
// to it. Elements from idx through the old end shift forward one slot.
// All previously obtained iterators are invalidated.
// Requires 0 <= idx <= Len().
func (v *Vector[T]) Insert(idx int, val T) (Iterator[T], error) {
	if v.size == len(v.data) {
		if err := v.reallocate(nextCapacity(len(v.data))); err != nil {
			return Iterator[T]{}, err
		}
	}
	v.shift(1, idx)
	v.alloc.Construct(v.data, idx, val)
	return v.at(idx), nil
}

// InsertSlice places copies of vs before logical position idx and returns
// an iterator to the first inserted element.
func (v *Vector[T]) InsertSlice(idx int, vs []T) (Iterator[T], error) {
	n := len(vs)
	if n == 0 {
		return v.at(idx), nil
	}
	if v.size+n > len(v.data) {
		if err := v.reallocate(scaledCapacity(v.size + n)); err != nil {
			return Iterator[T]{}, err
		}
	}
	v.shift(n, idx)
	for k, val := range vs {
		v.alloc.Construct(v.data, idx+k, val)
	}
	return v.at(idx), nil
}

// Assign replaces the contents with copies of vs.
func (v *Vector[T]) Assign(vs []T) error {
	v.Clear()
	if len(vs) > len(v.data) {
		if err := v.reallocate(scaledCapacity(len(vs))); err != nil {
			return err
		}
	}
	for i, val := range vs {
		v.alloc.Construct(v.data, i, val)
	}
	v.size = len(vs)
	return nil
}

// AssignFill replaces the contents with n copies of val.
func (v *Vector[T]) AssignFill(n int, val T) error {
	v.Clear()
	if n > len(v.data) {
		if err := v.reallocate(scaledCapacity(n)); err != nil {
			return err
		}
	}
	for i := 0; i < n; i++ {
		v.alloc.Construct(v.data, i, val)
	}
	v.size = n
	return nil
}

// Clear destroys every live element. Capacity is unchanged.
func (v *Vector[T]) Clear() {
	for i := 0; i < v.size; i++ {
		v.alloc.Destroy(v.data, i)
	}
	v.size = 0
}

// Swap exchanges contents with other in O(1). Element values move with
// their storage; iterator bindings across the two vectors do not.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.alloc, other.alloc = other.alloc, v.alloc
	v.data, other.data = other.data, v.data
	v.size, other.size = other.size, v.size
}

// Clone returns a deep copy sharing no storage with v. The copy keeps
// v's capacity.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	out := &Vector[T]{alloc: v.alloc}
	if len(v.data) > 0 {
		block, err := v.alloc.Allocate(len(v.data))
		if err != nil {
			return nil, err
		}
		for i := 0; i < v.size; i++ {
			v.alloc.Construct(block, i, v.data[i])
		}
		out.data = block
	}
	out.size = v.size
	return out, nil
}

// Move transfers storage ownership to a new vector and leaves v empty
// (zero length, zero capacity, no storage).
func (v *Vector[T]) Move() *Vector[T] {
	out := &Vector[T]{alloc: v.alloc, data: v.data, size: v.size}
	v.data = nil
	v.size = 0
	return out
}

// Release destroys all elements and returns the backing block to the
// allocator. The vector is left empty with zero capacity and stays usable.
func (v *Vector[T]) Release() {
	v.Clear()
	v.alloc.Deallocate(v.data)
	v.data = nil
}

// ---------------
// PRIVATE
// ---------------

// reallocate moves the live elements into a fresh block of the given
// capacity. The sole place the backing block is replaced.
func (v *Vector[T]) reallocate(capacity int) error {
	block, err := v.alloc.Allocate(capacity)
	if err != nil {
		return err
	}
	for i := 0; i < v.size; i++ {
		v.alloc.Construct(block, i, v.data[i])
	}
	for i := 0; i < v.size; i++ {
		v.alloc.Destroy(v.data, i)
	}
	v.alloc.Deallocate(v.data)
	v.data = block
	return nil
}

// shift moves data[idx:size] forward by n slots, walking from the tail so
// unshifted elements are never overwritten. Indices are signed; idx == 0
// terminates cleanly.
func (v *Vector[T]) shift(n, idx int) {
	for from := v.size - 1; from >= idx; from-- {
		v.data[from+n] = v.data[from]
	}
	v.size += n
}

func (v *Vector[T]) popBackN(n int) {
	for i := 0; i < n; i++ {
		v.PopBack()
	}
}

// nextCapacity computes the post-growth capacity for a full block.
func nextCapacity(capacity int) int {
	if capacity < 1 {
		capacity = 1
	}
	return int(math.Ceil(GrowthFactor * float64(capacity)))
}

// scaledCapacity sizes a block for n elements with growth headroom.
func scaledCapacity(n int) int {
	if n <= 0 {
		return 0
	}
	return int(math.Ceil(GrowthFactor * float64(n)))
}
