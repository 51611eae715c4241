package statecache

import "sync"

// Watch subscribes to state changes of the resource and returns:
//   - a channel that emits a Snapshot on every change
//   - a stop function to unsubscribe (must be called once)
//
// Delivery is best-effort: when the channel buffer is full the snapshot
// is dropped rather than blocking the dispatcher. A consumer that reads
// slower than the resource changes observes the latest buffered state,
// not every intermediate one.
func (c *StateCache) Watch(resourceID string) (<-chan Snapshot, func()) {
	w := &watchListener{ch: make(chan Snapshot, 1)}
	c.Subscribe(resourceID, w)

	var once sync.Once

	return w.ch, func() {
		once.Do(func() {
			c.Unsubscribe(resourceID, w)
			w.close()
		})
	}
}

type watchListener struct {
	mu     sync.Mutex
	ch     chan Snapshot
	closed bool
}

func (w *watchListener) OnResourceStateChange(snapshot Snapshot) (bool, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	// An already-queued notification may arrive after stop; ask the
	// dispatcher to drop the subscription instead of sending on the
	// closed channel.
	if w.closed {
		return true, nil
	}

	select {
	case w.ch <- snapshot:
	default:
	}

	return false, nil
}

func (w *watchListener) close() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.closed {
		w.closed = true
		close(w.ch)
	}
}
