// Package tcellkey translates tcell key events into the engine's event
// type, so a terminal host can feed a shortcut registry directly.
//
// Terminals cannot report everything a desktop keyboard API can: there
// are no physical key codes, and Shift is only recoverable for letters
// (an uppercase rune implies Shift). Combos relying on shifted
// punctuation or on physical codes will not match from a tcell host.
package tcellkey

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/hotbind/hotbind/internal/key"
)

// FromEventKey converts a tcell key event.
func FromEventKey(ev *tcell.EventKey) key.Event {
	out := key.Event{
		Mods:      convertMods(ev.Modifiers()),
		Timestamp: ev.When(),
	}

	switch k := ev.Key(); k {
	case tcell.KeyRune:
		r := ev.Rune()
		if unicode.IsUpper(r) {
			out.Mods = out.Mods.With(key.ModShift)
		}
		out.Key = string(r)
	case tcell.KeyEnter:
		out.Key = "Enter"
	case tcell.KeyEscape:
		out.Key = "Escape"
	case tcell.KeyTab:
		out.Key = "Tab"
	case tcell.KeyBacktab:
		out.Key = "Tab"
		out.Mods = out.Mods.With(key.ModShift)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		out.Key = "Backspace"
	case tcell.KeyDelete:
		out.Key = "Delete"
	case tcell.KeyInsert:
		out.Key = "Insert"
	case tcell.KeyHome:
		out.Key = "Home"
	case tcell.KeyEnd:
		out.Key = "End"
	case tcell.KeyPgUp:
		out.Key = "PageUp"
	case tcell.KeyPgDn:
		out.Key = "PageDown"
	case tcell.KeyUp:
		out.Key = "ArrowUp"
	case tcell.KeyDown:
		out.Key = "ArrowDown"
	case tcell.KeyLeft:
		out.Key = "ArrowLeft"
	case tcell.KeyRight:
		out.Key = "ArrowRight"
	case tcell.KeyF1:
		out.Key = "F1"
	case tcell.KeyF2:
		out.Key = "F2"
	case tcell.KeyF3:
		out.Key = "F3"
	case tcell.KeyF4:
		out.Key = "F4"
	case tcell.KeyF5:
		out.Key = "F5"
	case tcell.KeyF6:
		out.Key = "F6"
	case tcell.KeyF7:
		out.Key = "F7"
	case tcell.KeyF8:
		out.Key = "F8"
	case tcell.KeyF9:
		out.Key = "F9"
	case tcell.KeyF10:
		out.Key = "F10"
	case tcell.KeyF11:
		out.Key = "F11"
	case tcell.KeyF12:
		out.Key = "F12"
	default:
		// Control characters arrive as dedicated key codes with the
		// letter folded in.
		if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
			out.Key = string(rune('A' + k - tcell.KeyCtrlA))
			out.Mods = out.Mods.With(key.ModCtrl)
		}
	}

	return out
}

func convertMods(m tcell.ModMask) key.Modifier {
	var mods key.Modifier
	if m&tcell.ModCtrl != 0 {
		mods = mods.With(key.ModCtrl)
	}
	if m&tcell.ModAlt != 0 {
		mods = mods.With(key.ModAlt)
	}
	if m&tcell.ModShift != 0 {
		mods = mods.With(key.ModShift)
	}
	if m&tcell.ModMeta != 0 {
		mods = mods.With(key.ModMeta)
	}
	return mods
}
