// Package namedlock hands out one reader/writer lock per name, creating
// locks lazily on first use.
package namedlock

import "sync"

// Registry maps arbitrary names to dedicated RWMutex instances. Every
// call with the same name returns the same lock, even under concurrent
// first access. Locks are never evicted, so memory grows with the
// number of distinct names ever seen; callers are expected to use a
// bounded name space.
//
// The zero value is ready to use.
type Registry struct {
	locks sync.Map
}

func NewRegistry() *Registry {
	return &Registry{}
}

// ForName returns the lock dedicated to name, creating it on first use.
func (r *Registry) ForName(name string) *sync.RWMutex {
	if l, ok := r.locks.Load(name); ok {
		//nolint:forcetypeassert // Safe to assert since we control the map.
		return l.(*sync.RWMutex)
	}

	l, _ := r.locks.LoadOrStore(name, &sync.RWMutex{})

	//nolint:forcetypeassert // Safe to assert since we control the map.
	return l.(*sync.RWMutex)
}
