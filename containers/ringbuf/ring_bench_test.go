package ringbuf_test

import (
	"testing"

	"github.com/szimmy/NonSTL/containers/ringbuf"
)

func BenchmarkPushBack(b *testing.B) {
	r, err := ringbuf.New[int](1024)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.PushBack(i)
	}
}

func BenchmarkPushPopCycle(b *testing.B) {
	r, err := ringbuf.New[int](64)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.PushBack(i)
		if i%2 == 0 {
			r.PopFront()
		}
	}
}

func BenchmarkIterate(b *testing.B) {
	r, err := ringbuf.New[int](1024)
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < 2048; i++ {
		r.PushBack(i)
	}
	b.ResetTimer()
	var sum int
	for i := 0; i < b.N; i++ {
		for it := r.Begin(); !it.Equal(r.End()); it.Next() {
			sum += it.Value()
		}
	}
	_ = sum
}
