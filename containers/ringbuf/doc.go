// Package ringbuf implements Ring, a fixed-capacity overwrite-on-full
// circular container parameterized over an element type and an
// api.Allocator capability.
//
// The block is allocated once at construction and never resized. Pushing
// into a full ring evicts the oldest element: the physical slot at the old
// head is overwritten and head advances. Logical position n maps to
// physical slot (head + n) mod Cap(). PopFront on an empty ring is a
// defined no-op.
package ringbuf
