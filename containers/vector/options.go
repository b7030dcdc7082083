// File: containers/vector/options.go
//
// Functional construction options.

package vector

import "github.com/szimmy/NonSTL/api"

// Option configures vector construction.
type Option[T any] func(*config[T])

type config[T any] struct {
	capacity int
	alloc    api.Allocator[T]
}

// WithCapacity requests an initial capacity of at least n slots.
func WithCapacity[T any](n int) Option[T] {
	return func(c *config[T]) {
		if n > c.capacity {
			c.capacity = n
		}
	}
}

// WithAllocator selects the allocation capability backing the vector.
func WithAllocator[T any](a api.Allocator[T]) Option[T] {
	return func(c *config[T]) {
		if a != nil {
			c.alloc = a
		}
	}
}
