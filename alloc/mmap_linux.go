//go:build linux

// File: alloc/mmap_linux.go
//
// Off-heap byte-block allocator over anonymous mmap. Blocks live outside
// the Go heap, so large container storage puts no pressure on the GC.
// Deallocate unmaps immediately; a use-after-free faults instead of
// silently aliasing reused memory.

package alloc

import (
	"fmt"

	"golang.org/x/sys/unix"

	"github.com/szimmy/NonSTL/api"
)

// Ensure compile-time interface compliance.
var _ api.Allocator[byte] = Mmap{}

// Mmap allocates byte blocks via anonymous private mappings.
type Mmap struct{}

// NewMmap returns an Mmap allocator.
func NewMmap() Mmap { return Mmap{} }

// Allocate maps n bytes of anonymous memory.
func (Mmap) Allocate(n int) ([]byte, error) {
	if n <= 0 {
		return nil, nil
	}
	block, err := unix.Mmap(-1, 0, n,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("%w: mmap %d bytes: %v", api.ErrAllocationFailure, n, err)
	}
	return block, nil
}

// Deallocate unmaps the block.
func (Mmap) Deallocate(block []byte) {
	if block == nil {
		return
	}
	_ = unix.Munmap(block[:cap(block)])
}

func (Mmap) Construct(block []byte, i int, val byte) { block[i] = val }

func (Mmap) Destroy(block []byte, i int) { block[i] = 0 }
