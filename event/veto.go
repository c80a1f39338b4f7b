package event

import "sync"

type vetoSubscriber struct {
	id   uint64
	fn   func() bool
	once bool
}

// VetoChannel is a Channel variant whose subscribers can cancel the action
// that triggered the event. It backs close requests: any subscriber
// returning true keeps the window alive.
type VetoChannel struct {
	mu     sync.Mutex
	subs   []vetoSubscriber
	nextID uint64
}

// Add registers a persistent subscriber and returns its id.
func (c *VetoChannel) Add(fn func() bool) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.nextID++
	c.subs = append(c.subs, vetoSubscriber{id: c.nextID, fn: fn})
	return c.nextID
}

// Once registers a subscriber that is removed after its first invocation.
func (c *VetoChannel) Once(fn func() bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.nextID++
	c.subs = append(c.subs, vetoSubscriber{id: c.nextID, fn: fn, once: true})
}

// Remove drops the subscription with the given id if present.
func (c *VetoChannel) Remove(id uint64) {
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
func (c *VetoChannel) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subs = nil
}

// Len reports the number of registered subscribers.
func (c *VetoChannel) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.subs)
}

// Emit invokes every subscriber in insertion order and reports whether any
// of them vetoed. All subscribers run even after the first veto.
func (c *VetoChannel) Emit() bool {
	c.mu.Lock()
	snapshot := make([]vetoSubscriber, len(c.subs))
	copy(snapshot, c.subs)

	kept := c.subs[:0]
	for _, s := range c.subs {
		if !s.once {
			kept = append(kept, s)
		}
	}
	c.subs = kept
	c.mu.Unlock()

	vetoed := false
	for _, s := range snapshot {
		if s.fn() {
			vetoed = true
		}
	}
	return vetoed
}
