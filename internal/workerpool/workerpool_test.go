package workerpool

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestSubmitRunsAllTasks(t *testing.T) {
	p := New(3)
	var count int64
	var wg sync.WaitGroup

	const n = 100
	wg.Add(n)
	for i := 0; i < n; i++ {
		p.Submit(func() {
			atomic.AddInt64(&count, 1)
			wg.Done()
		})
	}
	wg.Wait()
	p.Stop()

	if got := atomic.LoadInt64(&count); got != n {
		t.Fatalf("count = %d, want %d", got, n)
	}
}

func TestStopFinishesQueuedTasks(t *testing.T) {
	p := New(1)
	var ran int32

	block := make(chan struct{})
	p.Submit(func() {
		<-block
	})
	for i := 0; i < 5; i++ {
		p.Submit(func() {
			atomic.AddInt32(&ran, 1)
		})
	}

	close(block)
	p.Stop()

	if got := atomic.LoadInt32(&ran); got != 5 {
		t.Fatalf("ran = %d, want 5 (no queued task should be dropped on shutdown)", got)
	}
}

func TestStopJoinsEveryWorkerExactlyOnce(t *testing.T) {
	const n = 4
	var active int32
	var maxActive int32

	p := New(n)
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		p.Submit(func() {
			cur := atomic.AddInt32(&active, 1)
			for {
				old := atomic.LoadInt32(&maxActive)
				if cur <= old || atomic.CompareAndSwapInt32(&maxActive, old, cur) {
					break
				}
			}
			time.Sleep(10 * time.Millisecond)
			atomic.AddInt32(&active, -1)
			wg.Done()
		})
	}
	wg.Wait()
	p.Stop()

	// Stop must be safe to call once and return only after every worker
	// has exited; a worker that never exited would make Stop hang, and one
	// that called Done twice would panic on a negative WaitGroup counter, so
	// reaching here is the assertion.
}

func TestEmptyPoolStopIsANoOp(t *testing.T) {
	p := New(2)
	p.Stop()
}
