//go:build !linux

// File: alloc/mmap_stub.go
//
// Fallback for platforms without the mmap path: byte blocks come from the
// Go heap with the same capability surface.

package alloc

import "github.com/szimmy/NonSTL/api"

// Ensure compile-time interface compliance.
var _ api.Allocator[byte] = Mmap{}

// Mmap falls back to heap-backed byte blocks on this platform.
type Mmap struct{}

// NewMmap returns an Mmap allocator.
func NewMmap() Mmap { return Mmap{} }

func (Mmap) Allocate(n int) ([]byte, error) {
	if n <= 0 {
		return nil, nil
	}
	return make([]byte, n), nil
}

func (Mmap) Deallocate(_ []byte) {}

func (Mmap) Construct(block []byte, i int, val byte) { block[i] = val }

func (Mmap) Destroy(block []byte, i int) { block[i] = 0 }
