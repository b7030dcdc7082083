// File: alloc/counting.go
//
// Accounting wrapper: forwards to an inner allocator and keeps
// api.AllocStats counters. All counters use atomics so stats can be
// scraped while a single-threaded caller mutates its containers.

package alloc

import (
	"sync/atomic"

	"github.com/szimmy/NonSTL/api"
)

// Ensure compile-time interface compliance.
var (
	_ api.Allocator[int] = (*Counting[int])(nil)
	_ api.StatsSource    = (*Counting[int])(nil)
)

// Counting wraps an allocator with usage accounting.
type Counting[T any] struct {
	inner api.Allocator[T]

	totalAllocs atomic.Int64
	totalFrees  atomic.Int64
	liveSlots   atomic.Int64
	constructs  atomic.Int64
	destroys    atomic.Int64
}

// NewCounting wraps inner with accounting. A nil inner defaults to Heap.
func NewCounting[T any](inner api.Allocator[T]) *Counting[T] {
	if inner == nil {
		inner = Heap[T]{}
	}
	return &Counting[T]{inner: inner}
}

func (c *Counting[T]) Allocate(n int) ([]T, error) {
	block, err := c.inner.Allocate(n)
	if err != nil {
		return nil, err
	}
	if block != nil {
		c.totalAllocs.Add(1)
		c.liveSlots.Add(int64(len(block)))
	}
	return block, nil
}

func (c *Counting[T]) Deallocate(block []T) {
	if block == nil {
		return
	}
	c.totalFrees.Add(1)
	c.liveSlots.Add(-int64(len(block)))
	c.inner.Deallocate(block)
}

func (c *Counting[T]) Construct(block []T, i int, val T) {
	c.constructs.Add(1)
	c.inner.Construct(block, i, val)
}

func (c *Counting[T]) Destroy(block []T, i int) {
	c.destroys.Add(1)
	c.inner.Destroy(block, i)
}

// AllocStats returns a snapshot of the counters.
func (c *Counting[T]) AllocStats() api.AllocStats {
	allocs := c.totalAllocs.Load()
	frees := c.totalFrees.Load()
	return api.AllocStats{
		TotalAllocs: allocs,
		TotalFrees:  frees,
		LiveBlocks:  allocs - frees,
		LiveSlots:   c.liveSlots.Load(),
		Constructs:  c.constructs.Load(),
		Destroys:    c.destroys.Load(),
	}
}
