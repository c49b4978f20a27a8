package shortcut

// Snapshot is an insertion-ordered copy of the shortcut table.
type Snapshot []Shortcut

// Observer receives the live shortcut table after every mutation.
type Observer func(Snapshot)

// Subscribe registers an observer and returns a cancel function.
// The observer is invoked immediately with the current snapshot, then
// synchronously after each registration, unregistration, group change,
// enable toggle, or reset.
func (r *Registry) Subscribe(fn Observer) func() {
	r.mu.Lock()
	if r.destroyed {
		r.mu.Unlock()
		return func() {}
	}
	id := r.nextObserver
	r.nextObserver++
	r.observers[id] = fn
	snap := r.snapshotLocked()
	r.mu.Unlock()

	fn(snap)

	return func() {
		r.mu.Lock()
		if !r.destroyed {
			delete(r.observers, id)
		}
		r.mu.Unlock()
	}
}

// notify delivers the current snapshot to all observers. Called after
// the mutating operation released the write lock, so observers may call
// back into the registry.
func (r *Registry) notify() {
	r.mu.RLock()
	if r.destroyed || len(r.observers) == 0 {
		r.mu.RUnlock()
		return
	}
	snap := r.snapshotLocked()
	observers := make([]Observer, 0, len(r.observers))
	for _, fn := range r.observers {
		observers = append(observers, fn)
	}
	r.mu.RUnlock()

	for _, fn := range observers {
		fn(snap)
	}
}
