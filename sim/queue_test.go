package sim

import (
	"testing"
)

func TestCustomerQueue_Peek_NonEmpty_ReturnsFront(t *testing.T) {
	// GIVEN a queue with customers [A, B]
	cq := &CustomerQueue{}
	a := NewCustomer("A", nil)
	b := NewCustomer("B", nil)
	cq.Enqueue(a)
	cq.Enqueue(b)

	// WHEN Peek() is called
	got := cq.Peek()

	// THEN it returns the front element without removing it
	if got != a {
		t.Errorf("Peek: got customer %v, want %v", got.Name, a.Name)
	}
	if cq.Len() != 2 {
		t.Errorf("Peek modified queue length: got %d, want 2", cq.Len())
	}
}

func TestCustomerQueue_Peek_Empty_ReturnsNil(t *testing.T) {
	// GIVEN an empty queue
	cq := &CustomerQueue{}

	// WHEN Peek() is called
	got := cq.Peek()

	// THEN it returns nil
	if got != nil {
		t.Errorf("Peek on empty queue: got %v, want nil", got)
	}
}

func TestCustomerQueue_Dequeue_FIFOOrder(t *testing.T) {
	// GIVEN a queue with customers [A, B, C]
	cq := &CustomerQueue{}
	for _, name := range []string{"A", "B", "C"} {
		cq.Enqueue(NewCustomer(name, nil))
	}

	// WHEN every customer is dequeued
	names := make([]string, 0, 3)
	for cq.Len() > 0 {
		names = append(names, cq.Dequeue().Name)
	}

	// THEN they come out in arrival order and a further Dequeue returns nil
	want := []string{"A", "B", "C"}
	for i, name := range names {
		if name != want[i] {
			t.Errorf("Dequeue order[%d]: got %s, want %s", i, name, want[i])
		}
	}
	if cq.Dequeue() != nil {
		t.Error("Dequeue on empty queue: want nil")
	}
}

func TestCustomerQueue_TruncateAfterHead(t *testing.T) {
	tests := []struct {
		name     string
		queued   []string
		wantKept []string
		wantRest []string
	}{
		{"empty", nil, nil, []string{}},
		{"single", []string{"A"}, []string{"A"}, []string{}},
		{"three", []string{"A", "B", "C"}, []string{"A"}, []string{"B", "C"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cq := &CustomerQueue{}
			for _, n := range tt.queued {
				cq.Enqueue(NewCustomer(n, nil))
			}

			rest := cq.TruncateAfterHead()

			if rest == nil {
				t.Fatal("TruncateAfterHead returned nil, want non-nil slice")
			}
			if got := names(rest); !equalNames(got, tt.wantRest) {
				t.Errorf("evicted: got %v, want %v", got, tt.wantRest)
			}
			if got := names(cq.Items()); !equalNames(got, tt.wantKept) {
				t.Errorf("kept: got %v, want %v", got, tt.wantKept)
			}
		})
	}
}

func TestCustomerQueue_String(t *testing.T) {
	cq := &CustomerQueue{}
	cq.Enqueue(NewCustomer("A", nil))
	cq.Enqueue(NewCustomer("B", nil))
	if got := cq.String(); got != "[A B]" {
		t.Errorf("String: got %q, want %q", got, "[A B]")
	}
}

func TestCustomerQueue_Enqueue_NilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic enqueueing nil customer")
		}
	}()
	(&CustomerQueue{}).Enqueue(nil)
}
