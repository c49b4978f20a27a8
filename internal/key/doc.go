// Package key provides the key-combo model for the shortcut engine.
//
// This package defines the fundamental types for describing keyboard input:
//
//   - Modifier: the Ctrl/Alt/Shift/Meta modifier set
//   - Combo: a normalized key plus a modifier set
//   - Event: a live key press with modifiers and focus target
//   - Platform: display conventions for formatting combos
//
// # Combo Specifications
//
// Combo specifications are written as "+"-joined tokens, case-insensitive,
// with whitespace trimmed per token:
//
//   - Simple keys: "a", "K", "Enter", "Escape"
//   - With modifiers: "Ctrl+S", "Alt+F4", "Ctrl+Shift+K"
//   - Platform alternatives: "Ctrl+K, Cmd+K" (comma-separated, see ParseList)
//
// Modifier synonyms (ctrl/control, alt/option, meta/cmd/command/win/super)
// and key aliases (esc, return, del, pgup, ...) are accepted and mapped to
// canonical spellings. Unrecognized key tokens pass through verbatim; they
// parse into combos that simply never match a real key.
package key
