package statecache

import (
	"sync"

	"github.com/samber/lo"
)

// Listener receives asynchronous state change notifications for a
// resource it subscribed to.
//
// Listeners are invoked by a single dispatcher goroutine, one at a
// time, never concurrently with other listeners of the same cache. A
// listener must not assume it runs on any particular caller goroutine.
type Listener interface {
	// OnResourceStateChange is called with an immutable snapshot taken
	// at the moment of the triggering Put or Subscribe. Returning
	// done == true removes the subscription after this delivery; a
	// non-nil error is logged and also removes the subscription.
	OnResourceStateChange(snapshot Snapshot) (done bool, err error)
}

// FuncListener adapts a plain function to the Listener interface.
// Registration identity is the FuncListener pointer, so the same value
// can later be passed to Unsubscribe even though funcs themselves are
// not comparable.
type FuncListener struct {
	fn func(snapshot Snapshot) (bool, error)
}

func NewFuncListener(fn func(snapshot Snapshot) (bool, error)) *FuncListener {
	return &FuncListener{fn: fn}
}

func (l *FuncListener) OnResourceStateChange(snapshot Snapshot) (bool, error) {
	return l.fn(snapshot)
}

// listenerRegistry is the resource id to listener set multimap. It is
// internally synchronized, independent of the per-resource state locks.
//
// Membership is set-semantic: registering the same Listener identity
// twice for one resource is a no-op.
type listenerRegistry struct {
	mu   sync.Mutex
	subs map[string]map[Listener]struct{}
}

func newListenerRegistry() *listenerRegistry {
	return &listenerRegistry{
		subs: make(map[string]map[Listener]struct{}),
	}
}

func (r *listenerRegistry) put(resourceID string, l Listener) {
	r.mu.Lock()
	defer r.mu.Unlock()

	set, ok := r.subs[resourceID]
	if !ok {
		set = make(map[Listener]struct{})
		r.subs[resourceID] = set
	}

	set[l] = struct{}{}
}

func (r *listenerRegistry) remove(resourceID string, l Listener) {
	r.mu.Lock()
	defer r.mu.Unlock()

	set, ok := r.subs[resourceID]
	if !ok {
		return
	}

	delete(set, l)

	if len(set) == 0 {
		delete(r.subs, resourceID)
	}
}

// get returns a point-in-time copy of the listeners subscribed to the
// resource. The copy may go stale relative to concurrent put/remove
// calls; a notification task holding a stale entry simply attempts the
// now-removed listener once more, and removal is idempotent.
func (r *listenerRegistry) get(resourceID string) []Listener {
	r.mu.Lock()
	defer r.mu.Unlock()

	return lo.Keys(r.subs[resourceID])
}
