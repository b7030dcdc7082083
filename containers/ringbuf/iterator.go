// File: containers/ringbuf/iterator.go
//
// Position-addressed cursor over ring storage. Logical index plus the
// modular head mapping; same equality contract as the vector iterator:
// direction first, then end state, then index.

package ringbuf

import "github.com/szimmy/NonSTL/api"

// Iterator is a cursor over a ring's live elements. It captures head and
// size at creation; push and pop re-map logical positions, so a cursor is
// positionally valid only against the state it was taken from.
type Iterator[T any] struct {
	data []T
	head int
	size int
	idx  int
	dir  api.Direction
}

// Begin returns a forward iterator at the oldest element. On an empty
// ring it equals End.
func (r *Ring[T]) Begin() Iterator[T] {
	return Iterator[T]{data: r.data, head: r.head, size: r.size, idx: 0, dir: api.Forward}
}

// End returns the one-past-the-newest forward sentinel.
func (r *Ring[T]) End() Iterator[T] {
	return Iterator[T]{data: r.data, head: r.head, size: r.size, idx: r.size, dir: api.Forward}
}

// RBegin returns a reverse iterator at the newest element. On an empty
// ring it equals REnd.
func (r *Ring[T]) RBegin() Iterator[T] {
	return Iterator[T]{data: r.data, head: r.head, size: r.size, idx: r.size - 1, dir: api.Reverse}
}

// REnd returns the one-before-the-oldest reverse sentinel.
func (r *Ring[T]) REnd() Iterator[T] {
	return Iterator[T]{data: r.data, head: r.head, size: r.size, idx: -1, dir: api.Reverse}
}

// Next advances the cursor one logical position in its direction.
func (it *Iterator[T]) Next() {
	if it.dir == api.Forward {
		it.idx++
	} else {
		it.idx--
	}
}

// Prev retreats the cursor one logical position against its direction.
func (it *Iterator[T]) Prev() {
	if it.dir == api.Forward {
		it.idx--
	} else {
		it.idx++
	}
}

// Done reports whether the cursor has reached its end sentinel.
func (it Iterator[T]) Done() bool {
	if it.dir == api.Forward {
		return it.idx >= it.size
	}
	return it.idx < 0
}

// Value returns the element under the cursor. Requires !Done().
func (it Iterator[T]) Value() T {
	return it.data[(it.head+it.idx)%len(it.data)]
}

// Set assigns the element under the cursor. Requires !Done().
func (it Iterator[T]) Set(val T) {
	it.data[(it.head+it.idx)%len(it.data)] = val
}

// Index returns the logical position of the cursor.
func (it Iterator[T]) Index() int { return it.idx }

// Dir returns the traversal direction.
func (it Iterator[T]) Dir() api.Direction { return it.dir }

// Equal reports whether two cursors denote the same logical position.
// Iterators of different directions are never equal, even when both are
// done.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	if it.dir != other.dir {
		return false
	}
	if it.Done() && other.Done() {
		return true
	}
	return it.idx == other.idx
}
