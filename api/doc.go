// Package api defines the public contracts of the NonSTL container library:
// the allocation capability consumed by every container, the common capacity
// interface, allocator statistics, and the error types surfaced to callers.
//
// Implementations live in alloc/ (allocators) and containers/ (vector,
// ringbuf). Nothing in this package allocates; it is interfaces and plain
// data only.
package api
