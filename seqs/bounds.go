package seqs

import (
	"fmt"
	"iter"

	"iterlib/queues"
)

// Head yields at most the first amount elements of source.
// Unbounded yields all of source.
func Head[T any](source iter.Seq[T], amount Amount) (iter.Seq[T], error) {
	if err := amount.Validate(); err != nil {
		return nil, fmt.Errorf("head: %w", err)
	}
	n, bounded := amount.N()
	if !bounded {
		return source, nil
	}

	return func(yield func(T) bool) {
		if n == 0 {
			return
		}
		count := 0
		for v := range source {
			if !yield(v) {
				return
			}
			count++
			if count >= n {
				return
			}
		}
	}, nil
}

// Skipped discards the first amount elements of source and yields the rest.
// Unbounded discards nothing, like a slice expression with the low bound left out.
func Skipped[T any](source iter.Seq[T], amount Amount) (iter.Seq[T], error) {
	if err := amount.Validate(); err != nil {
		return nil, fmt.Errorf("skipped: %w", err)
	}
	n, bounded := amount.N()
	if !bounded {
		return source, nil
	}

	return func(yield func(T) bool) {
		skipped := 0
		for v := range source {
			if skipped < n {
				skipped++
				continue
			}
			if !yield(v) {
				return
			}
		}
	}, nil
}

// Tail yields the last amount elements of source in their original order.
// Nothing is yielded until source is exhausted, so source must be finite.
// Unbounded yields all of source as it arrives.
func Tail[T any](source iter.Seq[T], amount Amount) (iter.Seq[T], error) {
	if err := amount.Validate(); err != nil {
		return nil, fmt.Errorf("tail: %w", err)
	}
	n, bounded := amount.N()
	if !bounded {
		return source, nil
	}

	return func(yield func(T) bool) {
		queue := queues.NewRingQueue[T](n)
		for v := range source {
			queue.Push(v)
		}
		for v := range queue.Drain() {
			if !yield(v) {
				return
			}
		}
	}, nil
}

// Truncated yields every element of source except the last amount.
// It streams: an element is yielded as soon as amount newer elements have arrived behind it.
// Unbounded yields all of source.
func Truncated[T any](source iter.Seq[T], amount Amount) (iter.Seq[T], error) {
	if err := amount.Validate(); err != nil {
		return nil, fmt.Errorf("truncated: %w", err)
	}
	n, bounded := amount.N()
	if !bounded {
		return source, nil
	}

	return func(yield func(T) bool) {
		queue := queues.NewRingQueue[T](n)
		for v := range source {
			if evicted, ok := queue.Push(v); ok {
				if !yield(evicted) {
					return
				}
			}
		}
	}, nil
}
