package ringbuf_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/szimmy/NonSTL/api"
	"github.com/szimmy/NonSTL/containers/ringbuf"
	"github.com/szimmy/NonSTL/fake"
)

func TestNew(t *testing.T) {
	r, err := ringbuf.New[int](5)
	require.NoError(t, err)
	assert.Equal(t, 0, r.Len())
	assert.Equal(t, 5, r.Cap())
	assert.True(t, r.Empty())
	assert.False(t, r.Full())
}

func TestNewPanicsOnBadCapacity(t *testing.T) {
	assert.Panics(t, func() { _, _ = ringbuf.New[int](0) })
	assert.Panics(t, func() { _, _ = ringbuf.New[int](-1) })
}

func TestEvictionSequence(t *testing.T) {
	r, err := ringbuf.New[int](5)
	require.NoError(t, err)

	for i := 1; i <= 5; i++ {
		r.PushBack(i)
	}
	assert.Equal(t, 1, r.Front())
	assert.Equal(t, 5, r.Back())
	assert.True(t, r.Full())

	// Every push past capacity evicts exactly the oldest element.
	for i := 6; i <= 11; i++ {
		r.PushBack(i)
		assert.Equal(t, i-4, r.Front())
		assert.Equal(t, i, r.Back())
		assert.Equal(t, 5, r.Len())
	}
}

func TestPopFrontAfterWraparound(t *testing.T) {
	r, err := ringbuf.New[int](3)
	require.NoError(t, err)

	for _, val := range []int{1, 2, 3, 6} {
		r.PushBack(val)
	}
	// 1 was evicted by the push of 6.
	assert.Equal(t, 2, r.Front())
	assert.Equal(t, 6, r.Back())

	r.PopFront()
	assert.Equal(t, 3, r.Front())
	assert.Equal(t, 6, r.Back())

	r.PopFront()
	assert.Equal(t, 6, r.Front())
	assert.Equal(t, 6, r.Back())
	assert.Equal(t, 1, r.Len())
}

func TestPopFrontOnEmptyIsNoOp(t *testing.T) {
	r, err := ringbuf.New[int](3)
	require.NoError(t, err)

	r.PopFront()
	assert.Equal(t, 0, r.Len())

	r.PushBack(1)
	r.PopFront()
	r.PopFront() // second pop hits the empty self-loop
	assert.Equal(t, 0, r.Len())

	r.PushBack(2)
	assert.Equal(t, 2, r.Front())
	assert.Equal(t, 1, r.Len())
}

func TestStateTransitions(t *testing.T) {
	r, err := ringbuf.New[int](2)
	require.NoError(t, err)

	// Empty -> Partial -> Full -> Full -> Partial -> Empty
	assert.True(t, r.Empty())
	r.PushBack(1)
	assert.False(t, r.Empty())
	assert.False(t, r.Full())
	r.PushBack(2)
	assert.True(t, r.Full())
	r.PushBack(3)
	assert.True(t, r.Full())
	r.PopFront()
	assert.False(t, r.Full())
	assert.False(t, r.Empty())
	r.PopFront()
	assert.True(t, r.Empty())
}

func TestIndexedAccess(t *testing.T) {
	r, err := ringbuf.New[int](3)
	require.NoError(t, err)
	for _, val := range []int{1, 2, 3, 4, 5} {
		r.PushBack(val)
	}
	// Live contents: 3, 4, 5 with head mid-block.
	assert.Equal(t, 3, r.Get(0))
	assert.Equal(t, 4, r.Get(1))
	assert.Equal(t, 5, r.Get(2))

	got, err := r.At(1)
	require.NoError(t, err)
	assert.Equal(t, 4, got)

	_, err = r.At(3)
	var be *api.BoundsError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, 3, be.Index)

	r.Set(0, 30)
	assert.Equal(t, 30, r.Front())
}

func TestClear(t *testing.T) {
	r, err := ringbuf.New[int](3)
	require.NoError(t, err)
	for _, val := range []int{1, 2, 3, 4} {
		r.PushBack(val)
	}
	r.Clear()
	assert.True(t, r.Empty())

	r.PushBack(9)
	assert.Equal(t, 9, r.Front())
	assert.Equal(t, 9, r.Back())
}

func TestCloneIndependence(t *testing.T) {
	a, err := ringbuf.New[int](3)
	require.NoError(t, err)
	for _, val := range []int{1, 2, 3, 4} {
		a.PushBack(val)
	}

	b, err := a.Clone()
	require.NoError(t, err)
	assert.Equal(t, a.Len(), b.Len())
	for n := 0; n < a.Len(); n++ {
		assert.Equal(t, a.Get(n), b.Get(n))
	}

	b.PushBack(99)
	assert.Equal(t, 4, a.Back(), "mutating the copy must not change the source")
	assert.Equal(t, 99, b.Back())
}

type owned struct {
	payload []byte
}

func TestEvictReleasesOwnedValue(t *testing.T) {
	// Overwrite-on-eviction replaces the slot by assignment; the outgoing
	// element must be fully replaced, not partially aliased.
	r, err := ringbuf.New[owned](2)
	require.NoError(t, err)

	first := owned{payload: []byte{1}}
	r.PushBack(first)
	r.PushBack(owned{payload: []byte{2}})
	r.PushBack(owned{payload: []byte{3}}) // evicts first

	assert.Equal(t, []byte{2}, r.Front().payload)
	assert.Equal(t, []byte{3}, r.Back().payload)

	// Popping destroys the slot; the remaining element is untouched.
	r.PopFront()
	assert.Equal(t, []byte{3}, r.Front().payload)
}

func TestDestroyBalanceOnPopAndClear(t *testing.T) {
	rec := fake.NewRecording[int]()
	r, err := ringbuf.New[int](4, ringbuf.WithAllocator[int](rec))
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		r.PushBack(i)
	}
	for !r.Empty() {
		r.PopFront()
	}
	r.Release()

	assert.Equal(t, rec.Allocates, rec.Deallocates)
	// Evicted slots are overwritten, not destroyed, so destroys only
	// cover the elements alive when pops began.
	assert.Equal(t, 4, rec.Destroys)
}

func TestPropertyAgainstReferenceQueue(t *testing.T) {
	const capacity = 8
	rng := rand.New(rand.NewSource(7))
	r, err := ringbuf.New[int](capacity)
	require.NoError(t, err)
	var ref []int

	for i := 0; i < 5000; i++ {
		if rng.Intn(2) == 0 {
			val := rng.Intn(100000)
			r.PushBack(val)
			ref = append(ref, val)
			if len(ref) > capacity {
				ref = ref[1:]
			}
		} else {
			r.PopFront()
			if len(ref) > 0 {
				ref = ref[1:]
			}
		}

		require.Equal(t, len(ref), r.Len())
		for n := 0; n < len(ref); n++ {
			require.Equal(t, ref[n], r.Get(n))
		}
	}
}
