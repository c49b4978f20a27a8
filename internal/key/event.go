package key

import "time"

// Target classifies the focus context a key event was delivered to.
// Shortcuts with AllowInInput unset are suppressed while focus is in a
// text-entry context.
type Target int

const (
	// TargetNone means focus is not in a text-entry element.
	TargetNone Target = iota

	// TargetInput means focus is in a single-line text input.
	TargetInput

	// TargetTextArea means focus is in a multi-line text area.
	TargetTextArea

	// TargetSelect means focus is in a select/dropdown element.
	TargetSelect

	// TargetEditable means focus is in a contenteditable region.
	TargetEditable
)

// IsTextEntry returns true if the target accepts typed text.
func (t Target) IsTextEntry() bool {
	return t != TargetNone
}

// Event represents a single key press as observed by the host.
//
// Key is the layout-resolved key value; Code, when available, is the
// physical key identifier (e.g. "KeyK"). Terminal hosts leave Code empty.
type Event struct {
	// Key is the layout-resolved key value, not yet normalized.
	Key string

	// Code is the physical key code, supporting layout-independent
	// bindings. May be empty.
	Code string

	// Mods contains the active modifier keys.
	Mods Modifier

	// Target classifies the focused element.
	Target Target

	// Timestamp is when the event occurred.
	Timestamp time.Time
}

// NewEvent creates a key event with the current timestamp.
func NewEvent(keyName string, mods Modifier) Event {
	return Event{
		Key:       keyName,
		Mods:      mods,
		Timestamp: time.Now(),
	}
}

// NormalizedKey returns the event's key in canonical form.
func (e Event) NormalizedKey() string {
	return NormalizeKey(e.Key)
}

// Matches reports whether the event satisfies the combo.
//
// The key matches when the normalized event key equals the combo key, or
// when the event's physical code equals the combo key. The modifier sets
// must be exactly equal: an unlisted held modifier fails the match, so a
// "Ctrl+K" combo does not fire on Ctrl+Shift+K.
func (e Event) Matches(c Combo) bool {
	if e.Mods != c.Mods {
		return false
	}
	if e.NormalizedKey() == c.Key {
		return true
	}
	return e.Code != "" && e.Code == c.Key
}

// MatchesAny reports whether the event satisfies any of the combos.
func (e Event) MatchesAny(combos []Combo) bool {
	for _, c := range combos {
		if e.Matches(c) {
			return true
		}
	}
	return false
}

// String returns a canonical display form of the event.
func (e Event) String() string {
	c := Combo{Key: e.NormalizedKey(), Mods: e.Mods}
	return c.String()
}
