/*
Package seqs provides small, composable transformers for Go 1.23+ iterators (iter.Seq).

Every transformer is lazy and forward-only: it pulls from its source only when
its own consumer asks for the next element, keeps no state outside a single
traversal, and releases its buffers when the consumer stops early.

  - **Windowing**: [Windowed], [Chunked], [Chopped] for sliding, gapped and
    non-overlapping windows, with optional trailing partial windows.
  - **Pairing**: [Paired] and its inverse [United].
  - **Bounded selection**: [Head], [Skipped], [Tail], [Truncated], driven by an [Amount].
  - **Nesting**: [Flattened] with a caller supplied [Basecase].
  - **Lookahead**: [Pull] and [Generates] for peeking without losing elements.

# Windows

	// overlapping triples, dropping the short ones at the end
	triples := seqs.Chopped(seqs.Windowed(input, 3, seqs.WithPartial()), 3)

Windows are fresh slices; the caller may keep or modify them. Degenerate sizes
and steps (below 1) produce an empty sequence rather than an error.

# Error Handling

The only validated argument is the [Amount] given to [Head], [Skipped], [Tail]
and [Truncated]. A negative count is reported eagerly, when the sequence is
built, with an error matching [ErrInvalidAmount]. Panics raised by a source
propagate unchanged.

# Logging

Degenerate window arguments are reported as debug events on the logger in
package iterlib/logging, which is silent until a logger is installed.
*/
package seqs
