package vector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/szimmy/NonSTL/api"
	"github.com/szimmy/NonSTL/containers/vector"
)

func collectForward[T any](v *vector.Vector[T]) []T {
	var out []T
	for it := v.Begin(); !it.Equal(v.End()); it.Next() {
		out = append(out, it.Value())
	}
	return out
}

func collectReverse[T any](v *vector.Vector[T]) []T {
	var out []T
	for it := v.RBegin(); !it.Equal(v.REnd()); it.Next() {
		out = append(out, it.Value())
	}
	return out
}

func TestForwardIteration(t *testing.T) {
	v, err := vector.NewFromSlice([]int{1, 2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, collectForward(v))
}

func TestReverseIteration(t *testing.T) {
	v, err := vector.NewFromSlice([]int{1, 2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, []int{4, 3, 2, 1}, collectReverse(v))
}

func TestEmptyVectorIterators(t *testing.T) {
	v, err := vector.New[int]()
	require.NoError(t, err)
	assert.True(t, v.Begin().Equal(v.End()))
	assert.True(t, v.RBegin().Equal(v.REnd()))
}

func TestEqualityIsPositional(t *testing.T) {
	// Duplicate values at distinct positions must not compare equal.
	v, err := vector.NewFromSlice([]int{7, 7, 7})
	require.NoError(t, err)

	a := v.Begin()
	b := v.Begin()
	b.Next()
	assert.False(t, a.Equal(b), "distinct positions with equal values are not equal")
	a.Next()
	assert.True(t, a.Equal(b))
}

func TestCrossDirectionNeverEqual(t *testing.T) {
	v, err := vector.NewFromSlice([]int{1, 2, 3})
	require.NoError(t, err)

	assert.False(t, v.End().Equal(v.REnd()), "end sentinels of opposite directions differ")
	assert.False(t, v.Begin().Equal(v.RBegin()))

	fwd := v.Begin()
	rev := v.RBegin()
	rev.Next()
	rev.Next() // both now at logical index 0
	require.Equal(t, fwd.Index(), rev.Index())
	assert.False(t, fwd.Equal(rev))
}

func TestIteratorPrev(t *testing.T) {
	v, err := vector.NewFromSlice([]int{1, 2, 3})
	require.NoError(t, err)

	it := v.End()
	it.Prev()
	assert.Equal(t, 3, it.Value())

	rit := v.REnd()
	rit.Prev()
	assert.Equal(t, 1, rit.Value())
}

func TestIteratorSet(t *testing.T) {
	v, err := vector.NewFromSlice([]int{1, 2, 3})
	require.NoError(t, err)

	it := v.Begin()
	it.Next()
	it.Set(20)
	assert.Equal(t, []int{1, 20, 3}, v.Data())
}

func TestIteratorDirection(t *testing.T) {
	v, err := vector.New[int]()
	require.NoError(t, err)
	assert.Equal(t, api.Forward, v.Begin().Dir())
	assert.Equal(t, api.Reverse, v.RBegin().Dir())
}
