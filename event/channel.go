// Package event provides ordered, multi-subscriber callback channels for
// window lifecycle notifications. A channel holds the subscribers for a
// single event kind; dispatch is synchronous and happens in insertion
// order on the calling goroutine.
package event

import "sync"

type subscriber[T any] struct {
	id   uint64
	fn   func(T)
	once bool
}

// Channel is the subscriber collection for one event kind.
//
// Registration and removal are safe from any goroutine. Emit snapshots the
// subscriber list before invoking callbacks, so handlers may register or
// remove subscriptions (including their own) while a dispatch is in flight.
//
// The zero value is ready to use.
type Channel[T any] struct {
	mu     sync.Mutex
	subs   []subscriber[T]
	nextID uint64
}

// Add registers a persistent subscriber and returns its id. Ids are unique
// within the channel and increase monotonically.
func (c *Channel[T]) Add(fn func(T)) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.nextID++
	c.subs = append(c.subs, subscriber[T]{id: c.nextID, fn: fn})
	return c.nextID
}

// Once registers a subscriber that is removed after its first invocation.
// One-shot subscriptions have no id and cannot be removed before firing.
func (c *Channel[T]) Once(fn func(T)) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.nextID++
	c.subs = append(c.subs, subscriber[T]{id: c.nextID, fn: fn, once: true})
}

// Remove drops the subscription with the given id. Removing an unknown or
// already-fired id is a no-op.
func (c *Channel[T]) Remove(id uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, s := range c.subs {
		if s.id == id {
			c.subs = append(c.subs[:i], c.subs[i+1:]...)
			return
		}
	}
}

// Clear drops every current subscription.
func (c *Channel[T]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subs = nil
}

// Len reports the number of registered subscribers.
func (c *Channel[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.subs)
}

// Emit invokes every registered subscriber with v, in insertion order.
// One-shot subscribers are unregistered before their callback runs, so a
// re-entrant Emit cannot fire them twice.
func (c *Channel[T]) Emit(v T) {
	c.mu.Lock()
	snapshot := make([]subscriber[T], len(c.subs))
	copy(snapshot, c.subs)

	kept := c.subs[:0]
	for _, s := range c.subs {
		if !s.once {
			kept = append(kept, s)
		}
	}
	c.subs = kept
	c.mu.Unlock()

	for _, s := range snapshot {
		s.fn(v)
	}
}
