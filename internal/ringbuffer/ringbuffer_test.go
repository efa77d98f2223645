package ringbuffer

import (
	"sync"
	"testing"
)

func TestTryPushFullReturnsFalse(t *testing.T) {
	rb := New[int](3)

	for i := 0; i < 3; i++ {
		if !rb.TryPush(i) {
			t.Fatalf("push %d should have succeeded", i)
		}
	}

	if rb.TryPush(99) {
		t.Fatal("push into a full buffer should return false")
	}
	if rb.Size() != 3 {
		t.Fatalf("size after rejected push = %d, want 3", rb.Size())
	}
}

func TestOverflowThenPopFreesASlot(t *testing.T) {
	rb := New[int](3)
	rb.TryPush(1)
	rb.TryPush(2)
	rb.TryPush(3)

	if rb.TryPush(4) {
		t.Fatal("4th push should fail at capacity 3")
	}

	v, ok := rb.TryPop()
	if !ok || v != 1 {
		t.Fatalf("first pop = (%d, %v), want (1, true)", v, ok)
	}

	if !rb.TryPush(4) {
		t.Fatal("push after a pop should succeed")
	}

	want := []int{2, 3, 4}
	for _, w := range want {
		got, ok := rb.TryPop()
		if !ok || got != w {
			t.Fatalf("pop = (%d, %v), want (%d, true)", got, ok, w)
		}
	}
}

func TestTryPopEmptyReturnsFalse(t *testing.T) {
	rb := New[int](2)
	if _, ok := rb.TryPop(); ok {
		t.Fatal("pop on an empty buffer should report ok=false")
	}
}

func TestFIFOOrderingPerProducer(t *testing.T) {
	rb := New[int](16)
	for i := 0; i < 10; i++ {
		if !rb.TryPush(i) {
			t.Fatalf("push %d failed", i)
		}
	}
	for i := 0; i < 10; i++ {
		got, ok := rb.TryPop()
		if !ok || got != i {
			t.Fatalf("pop %d = (%d, %v), want (%d, true)", i, got, ok, i)
		}
	}
}

func TestSizeNeverExceedsCapacityUnderConcurrency(t *testing.T) {
	rb := New[int](8)
	var wg sync.WaitGroup

	for p := 0; p < 4; p++ {
		wg.Add(1)
		go func(base int) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				rb.TryPush(base + i)
			}
		}(p * 1000)
	}

	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-done:
				return
			default:
				rb.TryPop()
			}
		}
	}()

	wg.Wait()
	close(done)

	if rb.Size() > rb.MaxSize() {
		t.Fatalf("size %d exceeds capacity %d", rb.Size(), rb.MaxSize())
	}
}

func TestEmptyAndFull(t *testing.T) {
	rb := New[int](1)
	if !rb.Empty() {
		t.Fatal("new buffer should be empty")
	}
	rb.TryPush(1)
	if !rb.Full() {
		t.Fatal("buffer at capacity should report full")
	}
	if rb.Empty() {
		t.Fatal("non-empty buffer reported empty")
	}
}
