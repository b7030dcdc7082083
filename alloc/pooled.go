// File: alloc/pooled.go
//
// Block-recycling allocator. Freed blocks are parked on per-size-class
// free lists and handed back on the next allocation of a matching class,
// so containers that repeatedly grow and shrink stop churning the heap.

package alloc

import (
	"sync"

	"github.com/eapache/queue"

	"github.com/szimmy/NonSTL/api"
)

// Ensure compile-time interface compliance.
var _ api.Allocator[int] = (*Pooled[int])(nil)

// DefaultFreeListDepth bounds how many blocks each size class retains.
const DefaultFreeListDepth = 64

// Pooled recycles blocks through power-of-two size classes.
type Pooled[T any] struct {
	mu      sync.Mutex
	classes map[int]*queue.Queue
	depth   int
}

// NewPooled creates a pooled allocator keeping at most depth blocks per
// size class. depth <= 0 selects DefaultFreeListDepth.
func NewPooled[T any](depth int) *Pooled[T] {
	if depth <= 0 {
		depth = DefaultFreeListDepth
	}
	return &Pooled[T]{
		classes: make(map[int]*queue.Queue),
		depth:   depth,
	}
}

// Allocate returns a block of n slots, reusing a parked block when the
// size class has one. Reused blocks are zeroed before they are handed out.
func (p *Pooled[T]) Allocate(n int) ([]T, error) {
	if n <= 0 {
		return nil, nil
	}
	class := ceilPow2(n)

	p.mu.Lock()
	q := p.classes[class]
	if q != nil && q.Length() > 0 {
		block := q.Remove().([]T)
		p.mu.Unlock()
		clear(block)
		return block[:n], nil
	}
	p.mu.Unlock()

	return make([]T, class)[:n], nil
}

// Deallocate parks the block on its size class's free list, dropping it
// when the class is already at depth or the block did not come from a
// power-of-two class.
func (p *Pooled[T]) Deallocate(block []T) {
	if block == nil {
		return
	}
	full := block[:cap(block)]
	class := cap(block)
	if class != ceilPow2(class) {
		return
	}
	clear(full)

	p.mu.Lock()
	q := p.classes[class]
	if q == nil {
		q = queue.New()
		p.classes[class] = q
	}
	if q.Length() < p.depth {
		q.Add(full)
	}
	p.mu.Unlock()
}

func (p *Pooled[T]) Construct(block []T, i int, val T) { block[i] = val }

func (p *Pooled[T]) Destroy(block []T, i int) {
	var zero T
	block[i] = zero
}

// ceilPow2 rounds n up to the next power of two.
func ceilPow2(n int) int {
	size := 1
	for size < n {
		size <<= 1
	}
	return size
}
