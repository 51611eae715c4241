package statecache

import (
	"context"
	"fmt"
	"sync"

	"github.com/arcivanov/statecache/internal/log"
)

type notification struct {
	resourceID string
	listener   Listener
	snapshot   Snapshot
}

// dispatcher owns the single worker goroutine that delivers
// notifications to listeners, strictly in enqueue order. The queue is
// unbounded so enqueue never blocks a caller holding a resource lock.
type dispatcher struct {
	name     string
	registry *listenerRegistry

	mu    sync.Mutex
	queue []notification

	wake     chan struct{}
	stopCh   chan struct{}
	stopOnce sync.Once
	done     chan struct{}
}

func newDispatcher(name string, registry *listenerRegistry) *dispatcher {
	d := &dispatcher{
		name:     name,
		registry: registry,
		wake:     make(chan struct{}, 1),
		stopCh:   make(chan struct{}),
		done:     make(chan struct{}),
	}

	go d.worker()

	return d
}

func (d *dispatcher) enqueue(n notification) {
	d.mu.Lock()
	d.queue = append(d.queue, n)
	d.mu.Unlock()

	select {
	case d.wake <- struct{}{}:
	default:
	}
}

// stop signals the worker and waits for it to exit. Queued
// notifications are discarded; an in-flight delivery may complete.
func (d *dispatcher) stop() {
	d.stopOnce.Do(func() {
		close(d.stopCh)
	})

	<-d.done
}

func (d *dispatcher) worker() {
	defer close(d.done)

	for {
		select {
		case <-d.stopCh:
			d.discard()
			return
		case <-d.wake:
			if !d.drain() {
				d.discard()
				return
			}
		}
	}
}

// drain delivers queued notifications one at a time until the queue is
// empty. It returns false when the dispatcher was stopped mid-drain.
func (d *dispatcher) drain() bool {
	for {
		select {
		case <-d.stopCh:
			return false
		default:
		}

		d.mu.Lock()
		if len(d.queue) == 0 {
			d.mu.Unlock()
			return true
		}

		n := d.queue[0]
		d.queue = d.queue[1:]
		d.mu.Unlock()

		d.deliver(n)
	}
}

func (d *dispatcher) discard() {
	d.mu.Lock()
	dropped := len(d.queue)
	d.queue = nil
	d.mu.Unlock()

	if dropped > 0 {
		log.Debug(context.Background(), "state cache dispatcher stopped with undelivered notifications",
			log.String("name", d.name),
			log.Int("dropped", dropped))
	}
}

func (d *dispatcher) deliver(n notification) {
	done, err := d.invoke(n)
	if err != nil {
		log.Warn(context.Background(), "state change listener failed, removing subscription",
			log.String("name", d.name),
			log.String("resource_id", n.resourceID),
			log.Cause(err))

		done = true
	}

	if done {
		d.registry.remove(n.resourceID, n.listener)
	}
}

func (d *dispatcher) invoke(n notification) (done bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("listener panicked: %v", r)
		}
	}()

	return n.listener.OnResourceStateChange(n.snapshot)
}
