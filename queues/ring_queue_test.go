package queues_test

import (
	"iterlib/queues"
	"slices"
	"testing"
)

func TestNewRingQueue(t *testing.T) {
	tests := []struct {
		name      string
		limit     int
		wantLimit int
	}{
		{"Negative limit", -1, 0},
		{"Zero limit", 0, 0},
		{"Limit 1", 1, 1},
		{"Limit 5 (not a power of two)", 5, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := queues.NewRingQueue[int](tt.limit)
			if q.Size() != 0 {
				t.Errorf("expected size 0, got %d", q.Size())
			}
			if !q.IsEmpty() {
				t.Error("expected queue to be empty")
			}
			if q.Limit() != tt.wantLimit {
				t.Errorf("expected limit %d, got %d", tt.wantLimit, q.Limit())
			}
		})
	}
}

func TestRingQueue_ZeroLimitReturnsPushed(t *testing.T) {
	q := queues.NewRingQueue[string](0)
	v, ok := q.Push("a")
	if !ok || v != "a" {
		t.Errorf("expected (a, true), got (%v, %v)", v, ok)
	}
	if q.Size() != 0 {
		t.Errorf("expected size 0, got %d", q.Size())
	}
}

func TestRingQueue_EvictsOldest(t *testing.T) {
	q := queues.NewRingQueue[int](3)

	for i := 1; i <= 3; i++ {
		if _, ok := q.Push(i); ok {
			t.Fatalf("unexpected eviction while pushing %d", i)
		}
	}
	if !q.IsFull() {
		t.Error("expected queue to be full")
	}

	// Full: [1, 2, 3], pushing 4 evicts 1, pushing 5 evicts 2
	if v, ok := q.Push(4); !ok || v != 1 {
		t.Errorf("expected eviction of 1, got (%v, %v)", v, ok)
	}
	if v, ok := q.Push(5); !ok || v != 2 {
		t.Errorf("expected eviction of 2, got (%v, %v)", v, ok)
	}

	if v, ok := q.Peek(); !ok || v != 3 {
		t.Errorf("Peek expected 3, got %v", v)
	}

	got := slices.Collect(q.Drain())
	if want := []int{3, 4, 5}; !slices.Equal(got, want) {
		t.Errorf("Drain: got %v, want %v", got, want)
	}
	if !q.IsEmpty() {
		t.Error("expected queue to be empty after Drain")
	}
}

func TestRingQueue_GrowFromWrappedState(t *testing.T) {
	q := queues.NewRingQueue[int](16)

	// fill to a backing array of 4 and wrap the head around
	for i := 1; i <= 4; i++ {
		q.Push(i)
	}
	q.Dequeue()
	q.Dequeue()
	q.Push(5)
	q.Push(6)

	// [5, 6, 3, 4] with head at 2; the next push forces a grow that must unwrap
	q.Push(7)

	if q.Size() != 5 {
		t.Errorf("expected size 5, got %d", q.Size())
	}

	expected := []int{3, 4, 5, 6, 7}
	for _, exp := range expected {
		v, ok := q.Dequeue()
		if !ok || v != exp {
			t.Errorf("expected %d, got %v (ok=%v)", exp, v, ok)
		}
	}
	if _, ok := q.Dequeue(); ok {
		t.Error("expected Dequeue on empty queue to fail")
	}
}

func TestRingQueue_DrainEarlyStop(t *testing.T) {
	q := queues.NewRingQueue[int](4)
	for i := range 4 {
		q.Push(i)
	}

	for v := range q.Drain() {
		if v == 1 {
			break
		}
	}

	if q.Size() != 2 {
		t.Errorf("expected 2 elements left, got %d", q.Size())
	}
	if v, _ := q.Peek(); v != 2 {
		t.Errorf("expected head 2, got %d", v)
	}
}

func TestRingQueue_Clear(t *testing.T) {
	q := queues.NewRingQueue[int](8)
	for i := range 6 {
		q.Push(i)
	}
	q.Clear()

	if !q.IsEmpty() {
		t.Error("expected queue to be empty after Clear")
	}
	if _, ok := q.Peek(); ok {
		t.Error("expected Peek on cleared queue to fail")
	}

	q.Push(42)
	if v, ok := q.Dequeue(); !ok || v != 42 {
		t.Errorf("expected 42 after reuse, got %v", v)
	}
}
