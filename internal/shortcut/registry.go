package shortcut

import (
	"errors"
	"sync"

	"github.com/rs/zerolog"
)

// ErrDestroyed is returned by operations on a destroyed registry.
var ErrDestroyed = errors.New("registry destroyed")

// Registry owns the shortcut table. It is the sole writer of that table;
// UI components hold only the ids they registered and release them on
// teardown. All operations are safe for concurrent use, though a host
// typically drives the registry from a single event loop.
type Registry struct {
	mu sync.RWMutex

	// order preserves registration order for dispatch and snapshots.
	order []string

	// shortcuts maps id to the registered shortcut.
	shortcuts map[string]*Shortcut

	// groups maps group id to the member ids captured at group
	// registration time.
	groups map[string][]string

	// globalEnabled gates all dispatch.
	globalEnabled bool

	destroyed bool

	hooks []Hook

	observers    map[uint64]Observer
	nextObserver uint64

	log zerolog.Logger
}

// Option configures a registry.
type Option func(*Registry)

// WithLogger sets the registry logger. Default is a no-op logger.
func WithLogger(log zerolog.Logger) Option {
	return func(r *Registry) {
		r.log = log
	}
}

// NewRegistry creates an empty registry with dispatch enabled.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		shortcuts:     make(map[string]*Shortcut),
		groups:        make(map[string][]string),
		globalEnabled: true,
		observers:     make(map[uint64]Observer),
		log:           zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds a shortcut and returns a function that unregisters it.
// Re-registering an existing id silently overwrites it, keeping the
// original insertion-order slot.
func (r *Registry) Register(s Shortcut) (func(), error) {
	if err := s.validate(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	if r.destroyed {
		r.mu.Unlock()
		return nil, ErrDestroyed
	}
	r.registerLocked(s)
	r.mu.Unlock()

	r.log.Debug().Str("id", s.ID).Str("keys", s.String()).Msg("shortcut registered")
	r.notify()

	id := s.ID
	return func() { r.Unregister(id) }, nil
}

// registerLocked upserts a shortcut. Caller must hold the write lock.
func (r *Registry) registerLocked(s Shortcut) {
	stored := s.clone()
	if _, exists := r.shortcuts[s.ID]; !exists {
		r.order = append(r.order, s.ID)
	}
	r.shortcuts[s.ID] = &stored
}

// Unregister removes a shortcut. Unregistering an absent id is a no-op.
func (r *Registry) Unregister(id string) {
	r.mu.Lock()
	if r.destroyed {
		r.mu.Unlock()
		return
	}
	removed := r.unregisterLocked(id)
	r.mu.Unlock()

	if removed {
		r.log.Debug().Str("id", id).Msg("shortcut unregistered")
		r.notify()
	}
}

// unregisterLocked removes a shortcut. Caller must hold the write lock.
func (r *Registry) unregisterLocked(id string) bool {
	if _, ok := r.shortcuts[id]; !ok {
		return false
	}
	delete(r.shortcuts, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

// SetEnabled toggles a shortcut without removing it. Returns false if
// the id is not registered.
func (r *Registry) SetEnabled(id string, enabled bool) bool {
	r.mu.Lock()
	s, ok := r.shortcuts[id]
	if ok {
		s.Enabled = enabled
	}
	r.mu.Unlock()

	if ok {
		r.notify()
	}
	return ok
}

// SetGlobalEnabled toggles all dispatch without touching entries.
func (r *Registry) SetGlobalEnabled(enabled bool) {
	r.mu.Lock()
	r.globalEnabled = enabled
	r.mu.Unlock()
}

// GlobalEnabled reports whether dispatch is enabled.
func (r *Registry) GlobalEnabled() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.globalEnabled
}

// Get returns a copy of the shortcut registered under id.
func (r *Registry) Get(id string) (Shortcut, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.shortcuts[id]
	if !ok {
		return Shortcut{}, false
	}
	return s.clone(), true
}

// Len returns the number of registered shortcuts.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// Shortcuts returns copies of all registered shortcuts in insertion
// order.
func (r *Registry) Shortcuts() Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshotLocked()
}

// snapshotLocked builds an insertion-order snapshot. Caller must hold
// at least the read lock.
func (r *Registry) snapshotLocked() Snapshot {
	snap := make(Snapshot, 0, len(r.order))
	for _, id := range r.order {
		snap = append(snap, r.shortcuts[id].clone())
	}
	return snap
}

// Reset clears all shortcuts and groups. Observers and hooks survive.
func (r *Registry) Reset() {
	r.mu.Lock()
	if r.destroyed {
		r.mu.Unlock()
		return
	}
	r.order = nil
	r.shortcuts = make(map[string]*Shortcut)
	r.groups = make(map[string][]string)
	r.mu.Unlock()

	r.log.Debug().Msg("registry reset")
	r.notify()
}

// Destroy clears the registry and makes it inert. Further operations
// are no-ops or return ErrDestroyed. The host must stop feeding events
// after destroying the registry it dispatches to.
func (r *Registry) Destroy() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.destroyed = true
	r.order = nil
	r.shortcuts = nil
	r.groups = nil
	r.observers = nil
	r.hooks = nil
}
