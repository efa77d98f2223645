// Package ringbuffer implements the bounded MPMC queue connecting source
// producers to writer workers. A single mutex guards all state; at the
// sample rates this pipeline targets (at most hundreds per second) a
// lock-free variant buys nothing and a single critical section is both
// correct and easy to reason about.
package ringbuffer

import "sync"

// RingBuffer is a fixed-capacity circular queue of T. The zero value is not
// usable; construct with New.
type RingBuffer[T any] struct {
	mu         sync.Mutex
	slots      []T
	capacity   int
	readIndex  int
	writeIndex int
	count      int
}

// New constructs a RingBuffer with the given capacity. capacity must be > 0.
func New[T any](capacity int) *RingBuffer[T] {
	if capacity <= 0 {
		panic("ringbuffer: capacity must be > 0")
	}
	return &RingBuffer[T]{
		slots:    make([]T, capacity),
		capacity: capacity,
	}
}

// TryPush stores item at the write cursor and advances it. It reports false
// without mutating state if the buffer is full — overflow is the caller's
// policy decision (drop with notice), not this type's.
func (r *RingBuffer[T]) TryPush(item T) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.count == r.capacity {
		return false
	}

	r.slots[r.writeIndex] = item
	r.writeIndex = (r.writeIndex + 1) % r.capacity
	r.count++
	return true
}

// TryPop removes and returns the item at the read cursor. It reports
// ok=false if the buffer is empty.
func (r *RingBuffer[T]) TryPop() (item T, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.count == 0 {
		return item, false
	}

	item = r.slots[r.readIndex]
	var zero T
	r.slots[r.readIndex] = zero
	r.readIndex = (r.readIndex + 1) % r.capacity
	r.count--
	return item, true
}

// Empty reports whether the buffer currently holds no items.
func (r *RingBuffer[T]) Empty() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count == 0
}

// Full reports whether the buffer is at capacity.
func (r *RingBuffer[T]) Full() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count == r.capacity
}

// Size returns the current number of buffered items.
func (r *RingBuffer[T]) Size() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// MaxSize returns the fixed capacity. It never changes after New, so no
// lock is needed.
func (r *RingBuffer[T]) MaxSize() int {
	return r.capacity
}
