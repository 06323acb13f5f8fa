// Package watch provides the subscription hub external collaborators
// (renderer, sidebar, CLI) use to learn about simulation state changes.
//
// The simulation model calls Notify synchronously at the end of every tick
// and after every mutation; a tick never suspends partway through, so
// there is nothing to buffer and nothing to replay on reattachment. The
// subscriber bookkeeping (mutex-guarded id->listener map, monotonic ids,
// closing over unsubscribe) is the only machinery this needs.
package watch

import "sync"

// Listener is called after a tick or mutation completes. It takes no
// payload: listeners pull fresh state through the observation API
// (GetNodes/GetMessages/GetStats) rather than trusting an event body.
type Listener func()

// Hub fans a single Notify() out to every subscribed Listener.
type Hub struct {
	mu     sync.Mutex
	subs   map[uint64]Listener
	nextID uint64
}

// NewHub creates an empty subscription hub.
func NewHub() *Hub {
	return &Hub{subs: make(map[uint64]Listener)}
}

// Subscribe registers l and returns an unsubscribe handle. Calling the
// handle more than once is a no-op.
func (h *Hub) Subscribe(l Listener) (unsubscribe func()) {
	h.mu.Lock()
	id := h.nextID
	h.nextID++
	h.subs[id] = l
	h.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, id)
			h.mu.Unlock()
		})
	}
}

// Notify calls every currently-subscribed listener, in subscription order.
func (h *Hub) Notify() {
	h.mu.Lock()
	ids := make([]uint64, 0, len(h.subs))
	for id := range h.subs {
		ids = append(ids, id)
	}
	for i := 1; i < len(ids); i++ {
		for j := i; j > 0 && ids[j-1] > ids[j]; j-- {
			ids[j-1], ids[j] = ids[j], ids[j-1]
		}
	}
	listeners := make([]Listener, 0, len(ids))
	for _, id := range ids {
		listeners = append(listeners, h.subs[id])
	}
	h.mu.Unlock()

	for _, l := range listeners {
		l()
	}
}

// Len reports the current subscriber count, for tests.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}
