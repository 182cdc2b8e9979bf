package pool

import (
	"sync"
	"testing"
)

func TestPool_Get(t *testing.T) {
	pool := NewPool(func() *int {
		x := 42
		return &x
	})

	obj := pool.Get()
	if obj == nil {
		t.Fatal("Expected an object, got nil")
	}
	if *obj != 42 {
		t.Errorf("Expected 42, got %d", *obj)
	}
	if pool.Created() != 1 {
		t.Errorf("Expected 1 created object, got %d", pool.Created())
	}
}

func TestPool_ResetOnPut(t *testing.T) {
	var resets int
	pool := NewPoolWithReset(
		func() *[]string {
			slice := make([]string, 0, 4)
			return &slice
		},
		func(slice *[]string) {
			clear(*slice)
			*slice = (*slice)[:0]
			resets++
		},
	)

	slice := pool.Get()
	*slice = append(*slice, "a", "b")
	pool.Put(slice)

	if resets != 1 {
		t.Fatalf("Expected reset to run once, ran %d times", resets)
	}
	if len(*slice) != 0 {
		t.Errorf("Expected empty slice after reset, got length %d", len(*slice))
	}
}

func TestPool_PutNil(t *testing.T) {
	called := false
	pool := NewPoolWithReset(func() *int { return new(int) }, func(*int) { called = true })
	pool.Put(nil)
	if called {
		t.Error("Reset must not run for nil objects")
	}
}

func TestPool_Concurrent(t *testing.T) {
	pool := NewPoolWithReset(
		func() *[]int {
			s := make([]int, 0, 8)
			return &s
		},
		func(s *[]int) { *s = (*s)[:0] },
	)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				s := pool.Get()
				if len(*s) != 0 {
					t.Errorf("goroutine %d: got dirty slice of length %d", g, len(*s))
					return
				}
				*s = append(*s, g, i)
				pool.Put(s)
			}
		}(g)
	}
	wg.Wait()

	if pool.Created() < 1 {
		t.Errorf("Expected at least one created object, got %d", pool.Created())
	}
}

func BenchmarkPool_GetPut(b *testing.B) {
	pool := NewPoolWithReset(
		func() *[]byte {
			buf := make([]byte, 0, 256)
			return &buf
		},
		func(buf *[]byte) { *buf = (*buf)[:0] },
	)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf := pool.Get()
		*buf = append(*buf, "--verbose"...)
		pool.Put(buf)
	}
}
