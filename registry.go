package geonym

import (
	"fmt"
	"sync"
)

// Registry holds the spaces known to a playground and tracks which one is
// active. The zero value is not usable; construct one with NewRegistry.
//
// A Registry is safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	order  []Space
	byID   map[string]Space
	active Space
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byID: make(map[string]Space)}
}

// Register adds sp to the registry. Spaces are listed in registration order.
func (r *Registry) Register(sp Space) error {
	id := sp.Descriptor().ID
	if id == "" {
		return ErrEmptyIdentifier
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; ok {
		return fmt.Errorf("register %q: %w", id, ErrDuplicateSpace)
	}
	r.byID[id] = sp
	r.order = append(r.order, sp)
	Logger().Info("space registered", "id", id)
	return nil
}

// Lookup returns the space registered under id.
func (r *Registry) Lookup(id string) (Space, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sp, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("lookup %q: %w", id, ErrUnknownSpace)
	}
	return sp, nil
}

// Spaces returns the registered spaces in registration order.
// The returned slice is a copy.
func (r *Registry) Spaces() []Space {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Space, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of registered spaces.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// Activate makes the space registered under id the active one.
func (r *Registry) Activate(id string) (Space, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	sp, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("activate %q: %w", id, ErrUnknownSpace)
	}
	if r.active != sp {
		Logger().Info("space activated", "id", id)
	}
	r.active = sp
	return sp, nil
}

// Active returns the active space, or nil if none has been activated.
func (r *Registry) Active() Space {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.active
}

// IsActive reports whether id names the active space.
func (r *Registry) IsActive(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.active != nil && r.active.Descriptor().ID == id
}

// Neighbor returns the space offset positions away from the active one in
// registration order, wrapping around at either end. With no active space the
// first registered space is treated as active.
func (r *Registry) Neighbor(offset int) (Space, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := len(r.order)
	if n == 0 {
		return nil, fmt.Errorf("neighbor of empty registry: %w", ErrUnknownSpace)
	}
	at := 0
	for i, sp := range r.order {
		if sp == r.active {
			at = i
			break
		}
	}
	return r.order[((at+offset)%n+n)%n], nil
}
