// Package statecache provides a concurrent in-memory cache of named
// resource properties with asynchronous change notification.
//
// The cache stores (resource, property) to value entries and notifies
// subscribed listeners whenever a resource's state changes. Each
// notification carries an immutable Snapshot of the full cache taken at
// the moment of the triggering operation, so listeners never observe a
// half-written update and never need to poll.
package statecache

import (
	"context"
	"sync"

	"github.com/samber/lo"

	"github.com/arcivanov/statecache/internal/log"
	"github.com/arcivanov/statecache/internal/pkg/namedlock"
)

// Options defines the configuration for StateCache.
type Options struct {
	// Name is used for logging purposes.
	Name string
}

// StateCache tracks named properties of independently addressed
// resources. Writes to a resource are serialized by a lock dedicated to
// that resource, so unrelated resources never contend.
//
// The cache owns a single background dispatcher goroutine; callers must
// Close the cache when done with it or the goroutine leaks.
type StateCache struct {
	name string

	// data is treated as immutable; Put replaces it wholesale with a
	// cloned generation, and snapshots reference the generation that
	// was current when they were taken.
	mu   sync.RWMutex
	data map[PropertyKey]string

	locks      *namedlock.Registry
	listeners  *listenerRegistry
	dispatcher *dispatcher

	closeOnce sync.Once
}

// New creates a new StateCache with the given options.
func New(opts Options) *StateCache {
	registry := newListenerRegistry()

	c := &StateCache{
		name:       opts.Name,
		data:       make(map[PropertyKey]string),
		locks:      namedlock.NewRegistry(),
		listeners:  registry,
		dispatcher: newDispatcher(opts.Name, registry),
	}

	log.Debug(context.Background(), "state cache started", log.String("name", c.name))

	return c
}

// Put stores value as the named property of the resource and enqueues
// one notification per currently subscribed listener of that resource,
// each carrying the same post-write snapshot. Put never blocks on
// listener execution.
func (c *StateCache) Put(resourceID, property, value string) {
	lock := c.locks.ForName(resourceID)
	lock.Lock()
	defer lock.Unlock()

	c.mu.Lock()
	next := lo.Assign(c.data)
	next[PropertyKey{ResourceID: resourceID, Name: property}] = value
	c.data = next
	c.mu.Unlock()

	snapshot := Snapshot{data: next}
	for _, l := range c.listeners.get(resourceID) {
		c.dispatcher.enqueue(notification{resourceID: resourceID, listener: l, snapshot: snapshot})
	}
}

// Subscribe registers the listener for state changes of the resource.
// If the resource already has at least one stored property, exactly one
// notification with the current state is enqueued immediately, so the
// listener learns the current state without waiting for the next Put.
//
// Subscribing the same Listener identity twice for one resource is a
// no-op. Panics if l is nil.
func (c *StateCache) Subscribe(resourceID string, l Listener) {
	if l == nil {
		panic("statecache: nil Listener")
	}

	lock := c.locks.ForName(resourceID)
	lock.RLock()
	defer lock.RUnlock()

	c.listeners.put(resourceID, l)

	snapshot := c.Snapshot()
	if snapshot.hasResource(resourceID) {
		c.dispatcher.enqueue(notification{resourceID: resourceID, listener: l, snapshot: snapshot})
	}
}

// Unsubscribe removes the listener's subscription to the resource. It
// is a no-op if the listener is not registered and triggers no
// notification.
func (c *StateCache) Unsubscribe(resourceID string, l Listener) {
	c.listeners.remove(resourceID, l)
}

// Snapshot returns an immutable view of the current cache contents.
func (c *StateCache) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return Snapshot{data: c.data}
}

// Close stops the dispatcher, discarding undelivered notifications. An
// in-flight listener invocation may complete; Close waits for the
// dispatcher goroutine to exit. The cache must not be used afterwards.
func (c *StateCache) Close() {
	c.closeOnce.Do(func() {
		log.Debug(context.Background(), "state cache stopping", log.String("name", c.name))
		c.dispatcher.stop()
	})
}
