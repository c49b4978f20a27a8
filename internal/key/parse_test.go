package key

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		spec string
		want Combo
	}{
		{"single char uppercases", "k", Combo{Key: "K"}},
		{"single char already upper", "K", Combo{Key: "K"}},
		{"ctrl combo", "Ctrl+K", Combo{Key: "K", Mods: ModCtrl}},
		{"ctrl shift combo", "Ctrl+Shift+K", Combo{Key: "K", Mods: ModCtrl | ModShift}},
		{"token order irrelevant", "Shift+Ctrl+K", Combo{Key: "K", Mods: ModCtrl | ModShift}},
		{"case insensitive", "cTRL+sHIFT+k", Combo{Key: "K", Mods: ModCtrl | ModShift}},
		{"whitespace trimmed", " Ctrl + Shift + K ", Combo{Key: "K", Mods: ModCtrl | ModShift}},
		{"control synonym", "Control+C", Combo{Key: "C", Mods: ModCtrl}},
		{"option synonym", "Option+A", Combo{Key: "A", Mods: ModAlt}},
		{"cmd synonym", "Cmd+Enter", Combo{Key: "Enter", Mods: ModMeta}},
		{"command synonym", "Command+Q", Combo{Key: "Q", Mods: ModMeta}},
		{"win synonym", "Win+L", Combo{Key: "L", Mods: ModMeta}},
		{"super synonym", "Super+L", Combo{Key: "L", Mods: ModMeta}},
		{"esc alias", "esc", Combo{Key: "Escape"}},
		{"return alias", "Ctrl+Return", Combo{Key: "Enter", Mods: ModCtrl}},
		{"space alias", "space", Combo{Key: "Space"}},
		{"arrow alias", "Alt+Up", Combo{Key: "ArrowUp", Mods: ModAlt}},
		{"arrow full name", "alt+arrowdown", Combo{Key: "ArrowDown", Mods: ModAlt}},
		{"del alias", "del", Combo{Key: "Delete"}},
		{"pgup alias", "pgup", Combo{Key: "PageUp"}},
		{"pagedown alias", "pagedown", Combo{Key: "PageDown"}},
		{"plus alias", "Ctrl+Plus", Combo{Key: "+", Mods: ModCtrl}},
		{"minus alias", "Ctrl+Minus", Combo{Key: "-", Mods: ModCtrl}},
		{"equals alias", "Ctrl+Equals", Combo{Key: "=", Mods: ModCtrl}},
		{"function key", "alt+f4", Combo{Key: "F4", Mods: ModAlt}},
		{"shift question mark", "Shift+?", Combo{Key: "?", Mods: ModShift}},
		{"unknown token passes verbatim", "Ctrl+Hyper", Combo{Key: "Hyper", Mods: ModCtrl}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.spec)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.spec, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Parse(%q) = %v, want %v", tt.spec, got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		spec    string
		wantErr error
	}{
		{"empty", "", ErrEmptySpec},
		{"whitespace only", "   ", ErrEmptySpec},
		{"modifiers only", "Ctrl+Shift", ErrMissingKey},
		{"trailing separator", "Ctrl+", ErrMissingKey},
		{"two key tokens", "Ctrl+K+J", ErrAmbiguousSpec},
		{"two named keys", "Enter+Escape", ErrAmbiguousSpec},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.spec)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Parse(%q) error = %v, want %v", tt.spec, err, tt.wantErr)
			}
		})
	}
}

func TestParseOrderIndependentEquality(t *testing.T) {
	a, err := Parse("Ctrl+Shift+K")
	if err != nil {
		t.Fatal(err)
	}
	b, err := Parse("Shift+Ctrl+K")
	if err != nil {
		t.Fatal(err)
	}
	if !a.Equal(b) {
		t.Errorf("%v and %v should be equal under set semantics", a, b)
	}
}

func TestParseList(t *testing.T) {
	combos, err := ParseList("Ctrl+K, Cmd+K")
	if err != nil {
		t.Fatalf("ParseList error: %v", err)
	}
	if len(combos) != 2 {
		t.Fatalf("len(combos) = %d, want 2", len(combos))
	}
	if !combos[0].Equal(Combo{Key: "K", Mods: ModCtrl}) {
		t.Errorf("combos[0] = %v, want Ctrl+K", combos[0])
	}
	if !combos[1].Equal(Combo{Key: "K", Mods: ModMeta}) {
		t.Errorf("combos[1] = %v, want Meta+K", combos[1])
	}
}

func TestParseListSingle(t *testing.T) {
	combos, err := ParseList("Ctrl+S")
	if err != nil {
		t.Fatalf("ParseList error: %v", err)
	}
	if len(combos) != 1 {
		t.Fatalf("len(combos) = %d, want 1", len(combos))
	}
}

func TestParseListErrors(t *testing.T) {
	if _, err := ParseList(""); !errors.Is(err, ErrEmptySpec) {
		t.Errorf("ParseList(\"\") error = %v, want ErrEmptySpec", err)
	}
	if _, err := ParseList("Ctrl+K, Ctrl+K+J"); !errors.Is(err, ErrAmbiguousSpec) {
		t.Errorf("ParseList with ambiguous segment error = %v, want ErrAmbiguousSpec", err)
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParse should panic on invalid spec")
		}
	}()
	MustParse("")
}

func TestRoundTrip(t *testing.T) {
	// format(parse(s)) round-trips to a canonical display that parses
	// back to the same combo.
	specs := []string{"Ctrl+K", "Ctrl+Shift+K", "Alt+F4", "Cmd+Enter", "Shift+Tab"}

	for _, spec := range specs {
		combo, err := Parse(spec)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", spec, err)
		}
		display := Format(combo, PlatformLinux)
		again, err := Parse(display)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", display, err)
		}
		if !combo.Equal(again) {
			t.Errorf("round trip %q -> %q -> %v, want %v", spec, display, again, combo)
		}
	}
}
