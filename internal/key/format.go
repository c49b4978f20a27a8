package key

import (
	"fmt"
	"runtime"
	"strings"
)

// Platform selects display conventions for formatting combos.
type Platform int

const (
	// PlatformLinux formats modifiers as words joined with "+",
	// with Super for the meta key.
	PlatformLinux Platform = iota

	// PlatformMac formats modifiers as glyphs concatenated without
	// separators.
	PlatformMac

	// PlatformWindows formats modifiers as words joined with "+",
	// with Win for the meta key.
	PlatformWindows
)

// String returns the platform name.
func (p Platform) String() string {
	switch p {
	case PlatformMac:
		return "mac"
	case PlatformWindows:
		return "windows"
	default:
		return "linux"
	}
}

// DetectPlatform returns the display platform for the running OS.
func DetectPlatform() Platform {
	switch runtime.GOOS {
	case "darwin":
		return PlatformMac
	case "windows":
		return PlatformWindows
	default:
		return PlatformLinux
	}
}

// ParsePlatform parses a platform name ("mac", "windows", "linux").
// OS identifiers ("darwin", "win32") are accepted as synonyms.
func ParsePlatform(name string) (Platform, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "mac", "macos", "darwin":
		return PlatformMac, nil
	case "windows", "win", "win32":
		return PlatformWindows, nil
	case "linux":
		return PlatformLinux, nil
	default:
		return PlatformLinux, fmt.Errorf("unknown platform %q", name)
	}
}

// macModifierGlyphs maps modifiers to their macOS symbols.
var macModifierGlyphs = map[Modifier]string{
	ModCtrl:  "⌃", // control
	ModAlt:   "⌥", // option
	ModShift: "⇧", // shift
	ModMeta:  "⌘", // command
}

// wordModifiers maps modifiers to their word spellings on non-Mac
// platforms. Meta is platform-dependent and handled separately.
var wordModifiers = map[Modifier]string{
	ModCtrl:  "Ctrl",
	ModAlt:   "Alt",
	ModShift: "Shift",
}

// macKeyGlyphs substitutes symbols for special key names in Mac output.
var macKeyGlyphs = map[string]string{
	"Enter":      "↵",
	"Backspace":  "⌫",
	"Delete":     "⌦",
	"Escape":     "⎋",
	"Tab":        "⇥",
	"Space":      "␣",
	"ArrowUp":    "↑",
	"ArrowDown":  "↓",
	"ArrowLeft":  "←",
	"ArrowRight": "→",
	"PageUp":     "⇞",
	"PageDown":   "⇟",
	"Home":       "↖",
	"End":        "↘",
}

// Format renders a combo for display on the given platform.
// Modifier order is fixed: ctrl, alt, shift, meta.
func Format(c Combo, p Platform) string {
	if p == PlatformMac {
		var b strings.Builder
		for _, mod := range modifierOrder {
			if c.Mods.Has(mod) {
				b.WriteString(macModifierGlyphs[mod])
			}
		}
		if glyph, ok := macKeyGlyphs[c.Key]; ok {
			b.WriteString(glyph)
		} else {
			b.WriteString(c.Key)
		}
		return b.String()
	}

	var parts []string
	for _, mod := range modifierOrder {
		if !c.Mods.Has(mod) {
			continue
		}
		if mod == ModMeta {
			if p == PlatformWindows {
				parts = append(parts, "Win")
			} else {
				parts = append(parts, "Super")
			}
			continue
		}
		parts = append(parts, wordModifiers[mod])
	}
	parts = append(parts, c.Key)
	return strings.Join(parts, "+")
}

// FormatList renders platform-alternative combos joined with ", ".
func FormatList(combos []Combo, p Platform) string {
	parts := make([]string, 0, len(combos))
	for _, c := range combos {
		parts = append(parts, Format(c, p))
	}
	return strings.Join(parts, ", ")
}
