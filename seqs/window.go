package seqs

import (
	"iter"
	"slices"

	"iterlib/logging"
)

// DefaultStep is the distance between window starts when WithStep is not given.
const DefaultStep = 1

type windowConfig struct {
	step    int
	partial bool
}

// WindowOption configures Windowed and Chunked.
type WindowOption func(*windowConfig)

// WithStep sets how many elements the window start advances between windows.
// A step below 1 makes the sequence empty.
func WithStep(step int) WindowOption {
	return func(cfg *windowConfig) {
		cfg.step = step
	}
}

// WithPartial makes the sequence also yield the undersized windows left over
// once the source is exhausted, each one step shorter than the one before.
func WithPartial() WindowOption {
	return func(cfg *windowConfig) {
		cfg.partial = true
	}
}

// Windowed yields windows of size consecutive elements from source.
//
// Scenario 1 (step < size): overlapping windows, e.g. [0 1 2], [1 2 3] (size=3, step=1).
// Scenario 2 (step == size): non-overlapping chunks, see Chunked.
// Scenario 3 (step > size): gapped windows, the elements in between never appear.
//
// Every window is a fresh slice the caller may keep or modify.
// If size or step is below 1 the sequence is empty.
func Windowed[T any](source iter.Seq[T], size int, opts ...WindowOption) iter.Seq[[]T] {
	cfg := windowConfig{step: DefaultStep}
	for _, opt := range opts {
		opt(&cfg)
	}
	step := cfg.step

	if size < 1 || step < 1 {
		logging.Debug().Int("size", size).Int("step", step).Msg("windowed: degenerate window, yielding nothing")
		return func(func([]T) bool) {}
	}

	if size == 1 && step == 1 {
		return func(yield func([]T) bool) {
			for v := range source {
				if !yield([]T{v}) {
					return
				}
			}
		}
	}

	return func(yield func([]T) bool) {
		window := make([]T, 0, size)

		// elements still to discard before the next window starts (step > size)
		skipCount := 0

		for v := range source {
			if skipCount > 0 {
				skipCount--
				continue
			}

			window = append(window, v)
			if len(window) < size {
				continue
			}

			if !yield(slices.Clone(window)) {
				return
			}

			if step < size {
				// keep the overlap at the front; copy handles the overlapping ranges
				n := copy(window, window[step:])
				window = window[:n]
			} else {
				window = window[:0]
				skipCount = step - size
			}
		}

		if !cfg.partial {
			return
		}
		for len(window) > 0 {
			if !yield(slices.Clone(window)) {
				return
			}
			if step >= len(window) {
				return
			}
			window = window[step:]
		}
	}
}

// Chunked splits source into non-overlapping chunks of size elements.
// It is Windowed with the step pinned to size; a WithStep option has no effect.
// The trailing short chunk is only yielded with WithPartial.
func Chunked[T any](source iter.Seq[T], size int, opts ...WindowOption) iter.Seq[[]T] {
	return Windowed(source, size, append(slices.Clip(opts), WithStep(size))...)
}

// Chopped yields the windows of source that hold at least size elements and
// stops at the first one that is shorter.
//
// It is meant to drop the trailing short windows produced by WithPartial, whose
// lengths never increase, so everything after the first short window is short too.
// If size is below 1 the sequence is empty.
func Chopped[S ~[]T, T any](source iter.Seq[S], size int) iter.Seq[S] {
	if size < 1 {
		logging.Debug().Int("size", size).Msg("chopped: degenerate size, yielding nothing")
		return func(func(S) bool) {}
	}

	return func(yield func(S) bool) {
		for window := range source {
			if len(window) < size {
				return
			}
			if !yield(window) {
				return
			}
		}
	}
}

// Paired yields every adjacent overlapping pair of source as a two-element window.
func Paired[T any](source iter.Seq[T]) iter.Seq[[]T] {
	return Windowed(source, 2, WithStep(1))
}

// United reverses Paired: it yields both elements of the first pair and then
// the second element of every following pair.
//
// Pairs are not checked for overlap. If the first window does not hold exactly
// two elements nothing is yielded; later windows contribute their last element.
func United[S ~[]T, T any](pairs iter.Seq[S]) iter.Seq[T] {
	return func(yield func(T) bool) {
		first := true
		for pair := range pairs {
			if first {
				if len(pair) != 2 {
					return
				}
				if !yield(pair[0]) || !yield(pair[1]) {
					return
				}
				first = false
				continue
			}
			if len(pair) == 0 {
				continue
			}
			if !yield(pair[len(pair)-1]) {
				return
			}
		}
	}
}
