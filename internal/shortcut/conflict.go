package shortcut

import "github.com/hotbind/hotbind/internal/key"

// Conflict is a combo claimed by two or more registered shortcuts.
// At dispatch time the first-registered one wins.
type Conflict struct {
	Combo     key.Combo
	Shortcuts []Shortcut
}

// FindConflicts returns every registered shortcut whose combo set
// includes an entry equal to the query: identical key and identical
// modifier set. Supersets and subsets of the modifier set do not count.
// The result is advisory; registration is never blocked.
func (r *Registry) FindConflicts(c key.Combo) []Shortcut {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matches []Shortcut
	for _, id := range r.order {
		s := r.shortcuts[id]
		if s.HasCombo(c) {
			matches = append(matches, s.clone())
		}
	}
	return matches
}

// FindConflictsSpec parses a combo specification (possibly a
// comma-separated list) and returns the union of conflicts for each
// combo, deduplicated by id in insertion order.
func (r *Registry) FindConflictsSpec(spec string) ([]Shortcut, error) {
	combos, err := key.ParseList(spec)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var matches []Shortcut
	for _, c := range combos {
		for _, s := range r.FindConflicts(c) {
			if seen[s.ID] {
				continue
			}
			seen[s.ID] = true
			matches = append(matches, s)
		}
	}
	return matches, nil
}

// Conflicts reports every combo currently claimed by more than one
// registered shortcut, in first-appearance order.
func (r *Registry) Conflicts() []Conflict {
	r.mu.RLock()
	snap := r.snapshotLocked()
	r.mu.RUnlock()

	claims := make(map[key.Combo][]Shortcut)
	var order []key.Combo

	for _, s := range snap {
		for _, c := range s.Combos {
			if _, ok := claims[c]; !ok {
				order = append(order, c)
			}
			claims[c] = append(claims[c], s)
		}
	}

	var conflicts []Conflict
	for _, c := range order {
		if len(claims[c]) > 1 {
			conflicts = append(conflicts, Conflict{Combo: c, Shortcuts: claims[c]})
		}
	}
	return conflicts
}
