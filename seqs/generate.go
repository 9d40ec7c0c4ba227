package seqs

import "iter"

// Range yields start, start+step, ... up to but not including end.
// A zero step yields nothing; a negative step counts down.
func Range(start, end, step int) iter.Seq[int] {
	return func(yield func(int) bool) {
		if step == 0 {
			return
		}
		for i := start; step > 0 && i < end || step < 0 && i > end; i += step {
			if !yield(i) {
				return
			}
		}
	}
}

// Naturals yields 0, 1, 2, ... without end.
func Naturals() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; ; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

// Empty yields nothing.
func Empty[T any]() iter.Seq[T] {
	return func(func(T) bool) {}
}
