package shortcut

import "github.com/hotbind/hotbind/internal/key"

// Outcome tells the embedding event loop what to do with a dispatched
// event. SuppressDefault and StopPropagation are the statically-typed
// rendering of preventDefault/stopPropagation in the source convention.
type Outcome struct {
	// Handled reports whether a shortcut fired.
	Handled bool

	// ShortcutID identifies the shortcut that fired.
	ShortcutID string

	// SuppressDefault asks the host to suppress the event's default
	// behavior.
	SuppressDefault bool

	// StopPropagation asks the host to stop delivering the event to
	// further listeners.
	StopPropagation bool
}

// Hook observes and may intercept dispatch.
type Hook interface {
	// PreDispatch runs before matching. Returning true consumes the
	// event; no shortcut fires. The hook may rewrite the event in
	// place.
	PreDispatch(ev *key.Event) bool

	// PostDispatch runs after the outcome is known.
	PostDispatch(ev key.Event, out Outcome)
}

// AddHook appends a dispatch hook.
func (r *Registry) AddHook(h Hook) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.destroyed {
		r.hooks = append(r.hooks, h)
	}
}

// Dispatch matches the event against registered shortcuts and fires the
// first enabled match in insertion order. Shortcuts with AllowInInput
// unset are skipped while the event targets a text-entry context.
//
// Dispatch iterates a snapshot taken at event start: handlers may
// mutate the registry, and mid-dispatch unregistration takes effect for
// the next event only.
func (r *Registry) Dispatch(ev key.Event) Outcome {
	r.mu.RLock()
	if r.destroyed || !r.globalEnabled {
		r.mu.RUnlock()
		return Outcome{}
	}
	hooks := append([]Hook(nil), r.hooks...)
	snap := r.snapshotLocked()
	r.mu.RUnlock()

	for _, h := range hooks {
		if h.PreDispatch(&ev) {
			r.log.Debug().Str("event", ev.String()).Msg("event consumed by hook")
			return Outcome{}
		}
	}

	var out Outcome
	inInput := ev.Target.IsTextEntry()

	for i := range snap {
		s := &snap[i]
		if !s.Enabled {
			continue
		}
		if inInput && !s.AllowInInput {
			continue
		}
		if !ev.MatchesAny(s.Combos) {
			continue
		}

		result := s.Handler(ev)
		out = Outcome{
			Handled:         true,
			ShortcutID:      s.ID,
			SuppressDefault: s.PreventDefault,
			StopPropagation: result == HandledStop,
		}
		r.log.Debug().
			Str("event", ev.String()).
			Str("id", s.ID).
			Bool("stop", out.StopPropagation).
			Msg("shortcut fired")
		break
	}

	for _, h := range hooks {
		h.PostDispatch(ev, out)
	}
	return out
}
