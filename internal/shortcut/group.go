package shortcut

import "fmt"

// Group is a named collection of shortcuts sharing a lifecycle: its
// members are registered and unregistered together. A group owns no
// state beyond the member ids captured at registration time.
type Group struct {
	// ID identifies the group.
	ID string

	// Shortcuts are the members.
	Shortcuts []Shortcut
}

// NewGroup creates a group with the given members.
func NewGroup(id string, shortcuts ...Shortcut) Group {
	return Group{ID: id, Shortcuts: shortcuts}
}

// Add appends a member and returns the group for chaining.
func (g Group) Add(s Shortcut) Group {
	g.Shortcuts = append(g.Shortcuts, s)
	return g
}

// RegisterGroup upserts all members of the group and records the
// membership snapshot. Re-registering a group id first removes the
// previous membership.
func (r *Registry) RegisterGroup(g Group) error {
	if g.ID == "" {
		return fmt.Errorf("group: %w", ErrEmptyID)
	}
	for _, s := range g.Shortcuts {
		if err := s.validate(); err != nil {
			return fmt.Errorf("group %q: %w", g.ID, err)
		}
	}

	r.mu.Lock()
	if r.destroyed {
		r.mu.Unlock()
		return ErrDestroyed
	}

	if previous, ok := r.groups[g.ID]; ok {
		for _, id := range previous {
			r.unregisterLocked(id)
		}
	}

	members := make([]string, 0, len(g.Shortcuts))
	for _, s := range g.Shortcuts {
		r.registerLocked(s)
		members = append(members, s.ID)
	}
	r.groups[g.ID] = members
	r.mu.Unlock()

	r.log.Debug().Str("group", g.ID).Int("members", len(members)).Msg("group registered")
	r.notify()
	return nil
}

// UnregisterGroup removes exactly the shortcut ids that were members at
// registration time. Shortcuts registered independently afterward are
// unaffected. Unregistering an absent group is a no-op.
func (r *Registry) UnregisterGroup(id string) {
	r.mu.Lock()
	if r.destroyed {
		r.mu.Unlock()
		return
	}
	members, ok := r.groups[id]
	if ok {
		for _, member := range members {
			r.unregisterLocked(member)
		}
		delete(r.groups, id)
	}
	r.mu.Unlock()

	if ok {
		r.log.Debug().Str("group", id).Msg("group unregistered")
		r.notify()
	}
}

// GroupMembers returns the member ids recorded for a group.
func (r *Registry) GroupMembers(id string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	members, ok := r.groups[id]
	if !ok {
		return nil
	}
	return append([]string(nil), members...)
}
