package queues

import (
	"iter"
	"math/bits"
)

// RingQueue is a FIFO ring buffer that never holds more than limit elements.
// Pushing onto a full queue evicts the oldest element and hands it back to the caller.
// The backing array grows in powers of two on demand, so a large limit costs nothing until it is used.
type RingQueue[T any] struct {
	buf   []T // backing array, length is zero or a power of two
	head  int // index of the oldest element
	size  int // number of elements in the queue
	mask  int // len(buf) - 1
	limit int // maximum number of elements held
}

// NewRingQueue creates an empty RingQueue holding at most limit elements.
// A negative limit is treated as zero.
func NewRingQueue[T any](limit int) *RingQueue[T] {
	if limit < 0 {
		limit = 0
	}
	return &RingQueue[T]{limit: limit}
}

// grow doubles the backing array, unwrapping the elements to the front.
func (rq *RingQueue[T]) grow() {
	newCapacity := 1
	if len(rq.buf) > 0 {
		newCapacity = 1 << uint(bits.Len(uint(len(rq.buf))))
	}

	newBuf := make([]T, newCapacity)
	if rq.head+rq.size <= len(rq.buf) {
		copy(newBuf, rq.buf[rq.head:rq.head+rq.size])
	} else {
		// wrapped around: head to end, then start to tail
		n := copy(newBuf, rq.buf[rq.head:])
		copy(newBuf[n:], rq.buf[:(rq.head+rq.size)&rq.mask])
	}

	clear(rq.buf)
	rq.buf = newBuf
	rq.head = 0
	rq.mask = newCapacity - 1
}

// Push appends value at the back of the queue.
// If the queue is already at its limit the oldest element is removed and returned with ok == true.
// With a zero limit the pushed value itself is returned.
func (rq *RingQueue[T]) Push(value T) (evicted T, ok bool) {
	if rq.limit == 0 {
		return value, true
	}
	if rq.size == rq.limit {
		evicted, ok = rq.Dequeue()
	}
	if rq.size == len(rq.buf) {
		rq.grow()
	}
	rq.buf[(rq.head+rq.size)&rq.mask] = value
	rq.size++
	return evicted, ok
}

// Dequeue removes and returns the oldest element.
func (rq *RingQueue[T]) Dequeue() (value T, ok bool) {
	if rq.size == 0 {
		return value, false
	}
	value = rq.buf[rq.head]
	var zero T
	rq.buf[rq.head] = zero // clear reference
	rq.head = (rq.head + 1) & rq.mask
	rq.size--
	return value, true
}

func (rq *RingQueue[T]) Peek() (value T, ok bool) {
	if rq.size == 0 {
		return value, false
	}
	return rq.buf[rq.head], true
}

// Drain returns a sequence that dequeues elements oldest first until the queue is empty
// or the consumer stops. Elements not consumed stay in the queue.
func (rq *RingQueue[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		for rq.size > 0 {
			v, _ := rq.Dequeue()
			if !yield(v) {
				return
			}
		}
	}
}

func (rq *RingQueue[T]) Size() int {
	return rq.size
}

func (rq *RingQueue[T]) Limit() int {
	return rq.limit
}

func (rq *RingQueue[T]) IsEmpty() bool {
	return rq.size == 0
}

func (rq *RingQueue[T]) IsFull() bool {
	return rq.size == rq.limit
}

// Clear removes all elements and releases the backing array.
func (rq *RingQueue[T]) Clear() {
	clear(rq.buf)
	rq.buf = nil
	rq.head = 0
	rq.size = 0
	rq.mask = 0
}
