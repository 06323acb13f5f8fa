package watch

import "testing"

func TestHub_NotifyCallsAllSubscribers(t *testing.T) {
	h := NewHub()
	var calls []int
	h.Subscribe(func() { calls = append(calls, 1) })
	h.Subscribe(func() { calls = append(calls, 2) })

	h.Notify()

	if len(calls) != 2 || calls[0] != 1 || calls[1] != 2 {
		t.Fatalf("expected calls in subscription order [1 2], got %v", calls)
	}
}

func TestHub_Unsubscribe(t *testing.T) {
	h := NewHub()
	called := false
	unsub := h.Subscribe(func() { called = true })
	unsub()
	unsub() // idempotent

	h.Notify()

	if called {
		t.Fatal("unsubscribed listener should not be called")
	}
	if h.Len() != 0 {
		t.Fatalf("expected 0 subscribers, got %d", h.Len())
	}
}

func TestHub_NotifyWithNoSubscribers(t *testing.T) {
	h := NewHub()
	h.Notify() // must not panic
}
