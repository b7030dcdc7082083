// File: containers/vector/iterator.go
//
// Position-addressed cursor over vector storage. One value type covers the
// forward and reverse families; direction is data, not a type hierarchy.
// Equality is positional: direction first (cross-direction iterators are
// never equal, end sentinels included), then end state, then index.

package vector

import "github.com/szimmy/NonSTL/api"

// Iterator is a cursor over a vector's live elements. It captures the
// backing block and length at creation; structural mutations of the vector
// invalidate it.
type Iterator[T any] struct {
	data   []T
	length int
	idx    int
	dir    api.Direction
}

// Begin returns a forward iterator at logical position 0. On an empty
// vector it equals End.
func (v *Vector[T]) Begin() Iterator[T] {
	return Iterator[T]{data: v.data, length: v.size, idx: 0, dir: api.Forward}
}

// End returns the one-past-the-last forward sentinel.
func (v *Vector[T]) End() Iterator[T] {
	return Iterator[T]{data: v.data, length: v.size, idx: v.size, dir: api.Forward}
}

// RBegin returns a reverse iterator at the last element. On an empty
// vector it equals REnd.
func (v *Vector[T]) RBegin() Iterator[T] {
	return Iterator[T]{data: v.data, length: v.size, idx: v.size - 1, dir: api.Reverse}
}

// REnd returns the one-before-the-first reverse sentinel.
func (v *Vector[T]) REnd() Iterator[T] {
	return Iterator[T]{data: v.data, length: v.size, idx: -1, dir: api.Reverse}
}

// at builds a forward iterator at logical position idx.
func (v *Vector[T]) at(idx int) Iterator[T] {
	return Iterator[T]{data: v.data, length: v.size, idx: idx, dir: api.Forward}
}

// Next advances the cursor one position in its direction.
func (it *Iterator[T]) Next() {
	if it.dir == api.Forward {
		it.idx++
	} else {
		it.idx--
	}
}

// Prev retreats the cursor one position against its direction.
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
		return it.idx >= it.length
	}
	return it.idx < 0
}

// Value returns the element under the cursor. Requires !Done().
func (it Iterator[T]) Value() T { return it.data[it.idx] }

// Set assigns the element under the cursor. Requires !Done().
func (it Iterator[T]) Set(val T) { it.data[it.idx] = val }

// Index returns the logical position of the cursor.
func (it Iterator[T]) Index() int { return it.idx }

// Dir returns the traversal direction.
func (it Iterator[T]) Dir() api.Direction { return it.dir }

// Equal reports whether two cursors denote the same position. Iterators
// of different directions are never equal, even when both are done.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	if it.dir != other.dir {
		return false
	}
	if it.Done() && other.Done() {
		return true
	}
	return it.idx == other.idx
}
