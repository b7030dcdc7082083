// File: api/container.go
//
// Capacity contract shared by every container in the library.

package api

// Container is the read-only capacity surface common to all containers.
type Container interface {
	// Len returns the number of live elements.
	Len() int
	// Cap returns the number of allocated element slots.
	Cap() int
	// Empty reports whether Len() == 0.
	Empty() bool
}

// Direction is the traversal direction of an iterator. Iterators of
// different directions never compare equal, end sentinels included.
type Direction int8

const (
	// Forward walks logical positions 0 .. Len()-1.
	Forward Direction = iota
	// Reverse walks logical positions Len()-1 .. 0.
	Reverse
)

// String returns the direction name.
func (d Direction) String() string {
	if d == Reverse {
		return "reverse"
	}
	return "forward"
}
