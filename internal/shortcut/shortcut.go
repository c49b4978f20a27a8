package shortcut

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hotbind/hotbind/internal/key"
)

// Validation errors
var (
	ErrEmptyID    = errors.New("empty shortcut id")
	ErrNilHandler = errors.New("nil shortcut handler")
	ErrNoCombos   = errors.New("shortcut has no key combos")
)

// Result is returned by a handler to tell the host what to do with the
// event after the shortcut fired.
type Result int

const (
	// Handled indicates the handler consumed the shortcut.
	Handled Result = iota

	// HandledStop indicates the handler consumed the shortcut and the
	// host should also stop event propagation.
	HandledStop
)

// Handler is invoked when a registered shortcut matches an event.
type Handler func(ev key.Event) Result

// Shortcut is a registered id/handler pair triggered by one or more
// key combos. Any combo matching triggers the handler.
type Shortcut struct {
	// ID uniquely identifies the shortcut within a registry.
	ID string

	// Combos are the key combinations that trigger the handler.
	Combos []key.Combo

	// Handler is invoked on match.
	Handler Handler

	// Enabled gates dispatch without unregistering.
	Enabled bool

	// Global marks registry-level shortcuts, as opposed to shortcuts
	// bound to an element lifecycle through a Handle.
	Global bool

	// PreventDefault asks the host to suppress the event's default
	// behavior after the handler fires.
	PreventDefault bool

	// AllowInInput lets the shortcut fire while focus is in a
	// text-entry context.
	AllowInInput bool

	// Description documents the shortcut for display.
	Description string

	// Category groups shortcuts for display purposes.
	Category string
}

// New creates an enabled shortcut from a combo specification string.
// Defaults: enabled, not global, preventDefault on, suppressed in inputs.
func New(id, keys string, handler Handler) (Shortcut, error) {
	combos, err := key.ParseList(keys)
	if err != nil {
		return Shortcut{}, fmt.Errorf("shortcut %q: %w", id, err)
	}
	return FromCombos(id, combos, handler), nil
}

// MustNew creates a shortcut and panics on a bad combo specification.
// Use only for known-valid specs in initialization code.
func MustNew(id, keys string, handler Handler) Shortcut {
	s, err := New(id, keys, handler)
	if err != nil {
		panic(err.Error())
	}
	return s
}

// FromCombos creates an enabled shortcut from pre-parsed combos.
func FromCombos(id string, combos []key.Combo, handler Handler) Shortcut {
	return Shortcut{
		ID:             id,
		Combos:         combos,
		Handler:        handler,
		Enabled:        true,
		PreventDefault: true,
	}
}

// WithDescription sets the description.
func (s Shortcut) WithDescription(desc string) Shortcut {
	s.Description = desc
	return s
}

// WithCategory sets the display category.
func (s Shortcut) WithCategory(category string) Shortcut {
	s.Category = category
	return s
}

// WithGlobal marks the shortcut as registry-level.
func (s Shortcut) WithGlobal() Shortcut {
	s.Global = true
	return s
}

// WithAllowInInput lets the shortcut fire inside text-entry contexts.
func (s Shortcut) WithAllowInInput() Shortcut {
	s.AllowInInput = true
	return s
}

// WithoutPreventDefault leaves the event's default behavior intact.
func (s Shortcut) WithoutPreventDefault() Shortcut {
	s.PreventDefault = false
	return s
}

// WithEnabled sets the enabled flag.
func (s Shortcut) WithEnabled(enabled bool) Shortcut {
	s.Enabled = enabled
	return s
}

// String returns the shortcut's combos in canonical display form.
func (s Shortcut) String() string {
	parts := make([]string, 0, len(s.Combos))
	for _, c := range s.Combos {
		parts = append(parts, c.String())
	}
	return strings.Join(parts, ", ")
}

// HasCombo reports whether the shortcut's combo set includes an entry
// with identical key and identical modifier set.
func (s Shortcut) HasCombo(c key.Combo) bool {
	for _, combo := range s.Combos {
		if combo.Equal(c) {
			return true
		}
	}
	return false
}

// validate checks the shortcut is registrable.
func (s Shortcut) validate() error {
	if s.ID == "" {
		return ErrEmptyID
	}
	if s.Handler == nil {
		return fmt.Errorf("shortcut %q: %w", s.ID, ErrNilHandler)
	}
	if len(s.Combos) == 0 {
		return fmt.Errorf("shortcut %q: %w", s.ID, ErrNoCombos)
	}
	return nil
}

// clone returns a copy with an independent combo slice.
func (s Shortcut) clone() Shortcut {
	s.Combos = append([]key.Combo(nil), s.Combos...)
	return s
}
