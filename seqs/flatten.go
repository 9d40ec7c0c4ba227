package seqs

import (
	"iter"
	"slices"
)

// Sequence is implemented by container types that can be flattened.
type Sequence[T any] interface {
	All() iter.Seq[T]
}

// Basecase reports whether v is a leaf that Flattened yields as is instead of descending into it.
type Basecase[T any] func(v T) bool

// Children returns the elements nested inside v if v is a []T, an iter.Seq[T],
// a func(func(T) bool) or a Sequence[T].
func Children[T any](v T) (iter.Seq[T], bool) {
	switch x := any(v).(type) {
	case []T:
		return slices.Values(x), true
	case iter.Seq[T]:
		return x, true
	case func(func(T) bool):
		return x, true
	case Sequence[T]:
		return x.All(), true
	}
	return nil, false
}

// IsLeaf is the default Basecase: v is a leaf unless it has Children.
func IsLeaf[T any](v T) bool {
	_, ok := Children(v)
	return !ok
}

// Flattened yields the leaves of an arbitrarily nested source, depth first and left to right.
//
// basecase decides which values are leaves; nil means IsLeaf. A value that
// basecase does not accept as a leaf but that has no Children is yielded anyway.
// Cycles are not detected: a structure that contains itself never terminates.
func Flattened[T any](source iter.Seq[T], basecase Basecase[T]) iter.Seq[T] {
	if basecase == nil {
		basecase = IsLeaf[T]
	}
	return func(yield func(T) bool) {
		flatten(source, basecase, yield)
	}
}

// flatten returns false once the consumer has stopped.
func flatten[T any](seq iter.Seq[T], basecase Basecase[T], yield func(T) bool) bool {
	for v := range seq {
		if !basecase(v) {
			if children, ok := Children(v); ok {
				if !flatten(children, basecase, yield) {
					return false
				}
				continue
			}
		}
		if !yield(v) {
			return false
		}
	}
	return true
}
