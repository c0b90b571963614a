// Package notifier fans out change signals to connected browser
// tabs. Listeners get a ping when a session's dataset changes and
// re-fetch the page.
package notifier

import "sync"

// Notifier broadcasts pings to subscribed listeners.
type Notifier struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]chan struct{}
}

// New creates a Notifier with no subscribers.
func New() *Notifier {
	return &Notifier{subs: make(map[int]chan struct{})}
}

// Subscribe registers a listener. The returned cancel func must be
// called when the listener goes away.
func (n *Notifier) Subscribe() (<-chan struct{}, func()) {
	n.mu.Lock()
	id := n.nextID
	n.nextID++
	ch := make(chan struct{}, 1)
	n.subs[id] = ch
	n.mu.Unlock()

	cancel := func() {
		n.mu.Lock()
		if _, ok := n.subs[id]; ok {
			delete(n.subs, id)
			close(ch)
		}
		n.mu.Unlock()
	}
	return ch, cancel
}

// Broadcast pings every listener without blocking; a listener whose
// buffer is full catches up on its pending ping.
func (n *Notifier) Broadcast() {
	n.mu.Lock()
	defer n.mu.Unlock()
	for _, ch := range n.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// Len returns the number of live subscribers.
func (n *Notifier) Len() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.subs)
}
