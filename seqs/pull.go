package seqs

import "iter"

// Iterator is a pull-style view of an iter.Seq with one element of lookahead.
//
// It is not safe for concurrent use. Stop must be called once the iterator is
// no longer needed unless All has been ranged over to completion or broken out of.
type Iterator[T any] struct {
	next func() (T, bool)
	stop func()

	head   T
	peeked bool
	done   bool
}

// Pull starts pulling from seq. Nothing is read until Next, Peek or All is called.
func Pull[T any](seq iter.Seq[T]) *Iterator[T] {
	next, stop := iter.Pull(seq)
	return &Iterator[T]{next: next, stop: stop}
}

// Next returns the next element, or false once the source is exhausted.
func (it *Iterator[T]) Next() (T, bool) {
	if it.peeked {
		v := it.head
		var zero T
		it.head = zero
		it.peeked = false
		return v, true
	}
	if it.done {
		var zero T
		return zero, false
	}
	v, ok := it.next()
	if !ok {
		it.done = true
	}
	return v, ok
}

// Peek returns the next element without consuming it.
// Repeated calls read from the source at most once.
func (it *Iterator[T]) Peek() (T, bool) {
	if !it.peeked {
		v, ok := it.Next()
		if !ok {
			return v, false
		}
		it.head = v
		it.peeked = true
	}
	return it.head, true
}

// Stop releases the source. It is idempotent; a peeked element stays readable.
func (it *Iterator[T]) Stop() {
	it.done = true
	it.stop()
}

// All yields the remaining elements, starting with a peeked one.
// The source is stopped when it is exhausted or when the consumer breaks out.
func (it *Iterator[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		defer it.Stop()
		for {
			v, ok := it.Next()
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Generates reports whether source yields anything by reading exactly one element ahead.
//
// If source is empty it is released and def is returned (def may be nil).
// Otherwise the returned sequence yields the same elements as source, the peeked
// one first, and the rest read from the same underlying producer. The returned stop
// function releases the producer; it is only needed when the sequence is
// abandoned without being ranged over, and calling it more than once is harmless.
func Generates[T any](source iter.Seq[T], def iter.Seq[T]) (iter.Seq[T], func()) {
	it := Pull(source)
	if _, ok := it.Peek(); !ok {
		it.Stop()
		return def, func() {}
	}
	return it.All(), it.Stop
}
