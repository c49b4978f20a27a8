package shortcut

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/hotbind/hotbind/internal/key"
)

// ErrHandleClosed is returned by Update on a closed handle.
var ErrHandleClosed = errors.New("binding handle closed")

// Options configures a scoped binding handle. Construct with
// DefaultOptions to get the standard defaults, then override.
type Options struct {
	// Keys is a combo specification, parsed with key.ParseList.
	// Ignored when Combos is set.
	Keys string

	// Combos are pre-parsed key combinations.
	Combos []key.Combo

	// Handler is invoked on match.
	Handler Handler

	// Enabled gates dispatch.
	Enabled bool

	// PreventDefault asks the host to suppress default behavior.
	PreventDefault bool

	// StopPropagation forces propagation to stop whenever the binding
	// fires, regardless of the handler's result.
	StopPropagation bool

	// AllowInInput lets the binding fire inside text-entry contexts.
	AllowInInput bool

	// Description documents the binding for display.
	Description string

	// Category groups the binding for display.
	Category string
}

// DefaultOptions returns options with the standard defaults:
// enabled, preventDefault on, suppressed in inputs.
func DefaultOptions() Options {
	return Options{
		Enabled:        true,
		PreventDefault: true,
	}
}

// Handle is a scoped binding with an explicit acquire/update/release
// lifecycle. It mirrors an element-attached shortcut: the owner binds on
// mount, may update options in place, and closes on teardown. Closing
// twice is safe.
type Handle struct {
	mu       sync.Mutex
	registry *Registry
	id       string
	closed   bool
}

var handleSeq atomic.Uint64

// Bind registers a scoped binding and returns its handle.
func (r *Registry) Bind(opts Options) (*Handle, error) {
	h := &Handle{
		registry: r,
		id:       fmt.Sprintf("bind-%d", handleSeq.Add(1)),
	}
	if err := h.apply(opts); err != nil {
		return nil, err
	}
	return h, nil
}

// ID returns the registry id backing this handle.
func (h *Handle) ID() string {
	return h.id
}

// Update replaces the binding's options in place. The registry slot is
// reused, so the binding keeps its dispatch position.
func (h *Handle) Update(opts Options) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return ErrHandleClosed
	}
	return h.apply(opts)
}

// Close releases the binding.
func (h *Handle) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true
	h.registry.Unregister(h.id)
}

// apply upserts the backing shortcut from the options.
func (h *Handle) apply(opts Options) error {
	if opts.Handler == nil {
		return fmt.Errorf("binding %q: %w", h.id, ErrNilHandler)
	}

	combos := opts.Combos
	if len(combos) == 0 {
		parsed, err := key.ParseList(opts.Keys)
		if err != nil {
			return fmt.Errorf("binding %q: %w", h.id, err)
		}
		combos = parsed
	}

	handler := opts.Handler
	if opts.StopPropagation {
		inner := handler
		handler = func(ev key.Event) Result {
			inner(ev)
			return HandledStop
		}
	}

	_, err := h.registry.Register(Shortcut{
		ID:             h.id,
		Combos:         combos,
		Handler:        handler,
		Enabled:        opts.Enabled,
		PreventDefault: opts.PreventDefault,
		AllowInInput:   opts.AllowInInput,
		Description:    opts.Description,
		Category:       opts.Category,
	})
	return err
}
