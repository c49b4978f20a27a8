package key

import (
	"strings"
	"unicode"
)

// Combo is a normalized key plus a modifier set.
//
// Key holds the canonical key name: single printable characters are
// uppercased ("k" -> "K"), named keys use their canonical spelling
// ("esc" -> "Escape"). A Combo whose Key came from an unrecognized token
// keeps that token verbatim and will never match a real key.
type Combo struct {
	Key  string
	Mods Modifier
}

// Equal reports whether two combos have the same key and the same
// modifier set. Modifier order is irrelevant by construction (bit set).
func (c Combo) Equal(other Combo) bool {
	return c.Key == other.Key && c.Mods == other.Mods
}

// String returns a canonical display form like "Ctrl+Shift+K".
func (c Combo) String() string {
	if c.Mods == ModNone {
		return c.Key
	}
	return c.Mods.String() + "+" + c.Key
}

// canonicalKeys maps key token spellings (lowercase) to canonical names.
// Canonical names follow the KeyboardEvent.key convention where one exists.
var canonicalKeys = map[string]string{
	"esc":        "Escape",
	"escape":     "Escape",
	"enter":      "Enter",
	"return":     "Enter",
	"space":      "Space",
	" ":          "Space",
	"tab":        "Tab",
	"backspace":  "Backspace",
	"delete":     "Delete",
	"del":        "Delete",
	"insert":     "Insert",
	"ins":        "Insert",
	"home":       "Home",
	"end":        "End",
	"pageup":     "PageUp",
	"pgup":       "PageUp",
	"pagedown":   "PageDown",
	"pgdn":       "PageDown",
	"up":         "ArrowUp",
	"arrowup":    "ArrowUp",
	"down":       "ArrowDown",
	"arrowdown":  "ArrowDown",
	"left":       "ArrowLeft",
	"arrowleft":  "ArrowLeft",
	"right":      "ArrowRight",
	"arrowright": "ArrowRight",
	"plus":       "+",
	"minus":      "-",
	"equals":     "=",
	"equal":      "=",
	"f1":         "F1",
	"f2":         "F2",
	"f3":         "F3",
	"f4":         "F4",
	"f5":         "F5",
	"f6":         "F6",
	"f7":         "F7",
	"f8":         "F8",
	"f9":         "F9",
	"f10":        "F10",
	"f11":        "F11",
	"f12":        "F12",
}

// NormalizeKey maps a key token to its canonical name.
// Single printable characters are uppercased; known aliases map to their
// canonical spelling; anything else passes through verbatim.
func NormalizeKey(token string) string {
	// A literal space (KeyboardEvent.key for the space bar) must be looked
	// up before trimming.
	if name, ok := canonicalKeys[strings.ToLower(token)]; ok {
		return name
	}

	token = strings.TrimSpace(token)
	if name, ok := canonicalKeys[strings.ToLower(token)]; ok {
		return name
	}

	runes := []rune(token)
	if len(runes) == 1 && unicode.IsPrint(runes[0]) {
		return string(unicode.ToUpper(runes[0]))
	}

	return token
}
