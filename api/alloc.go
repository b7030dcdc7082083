// File: api/alloc.go
//
// Allocation capability consumed by the containers. Containers never call
// make or touch the heap directly; every block and every element lifecycle
// event goes through an Allocator.

package api

// Allocator is the capability a container uses to manage its backing block.
//
// Allocate returns a block of n uninitialized element slots. Deallocate
// returns a block previously obtained from Allocate; the block must hold no
// live elements. Construct places val into slot i of block; Destroy ends the
// lifetime of the element in slot i and must leave the slot reusable (for Go
// that means zeroing it, so the slot does not pin dead values for the GC).
//
// Allocate reports failure via error, typically ErrAllocationFailure;
// Construct and Destroy cannot fail.
type Allocator[T any] interface {
	// Allocate returns n uninitialized slots. n == 0 yields a nil block.
	Allocate(n int) ([]T, error)

	// Deallocate releases a block obtained from Allocate. Nil is a no-op.
	Deallocate(block []T)

	// Construct begins the lifetime of an element at block[i].
	Construct(block []T, i int, val T)

	// Destroy ends the lifetime of the element at block[i].
	Destroy(block []T, i int)
}

// StatsSource is implemented by allocators that keep usage accounting.
type StatsSource interface {
	AllocStats() AllocStats
}
