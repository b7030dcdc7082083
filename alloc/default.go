// File: alloc/default.go
//
// Process-wide default allocator accessor so containers constructed without
// options all share one allocation strategy.

package alloc

import "github.com/szimmy/NonSTL/api"

// Default returns the default allocator for element type T.
func Default[T any]() api.Allocator[T] {
	return Heap[T]{}
}
