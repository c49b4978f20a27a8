package key

import (
	"errors"
	"fmt"
	"strings"
)

// Parse errors
var (
	ErrEmptySpec     = errors.New("empty key specification")
	ErrMissingKey    = errors.New("no key in specification")
	ErrAmbiguousSpec = errors.New("ambiguous key specification")
)

// Parse parses a combo specification string into a Combo.
//
// The spec is a "+"-joined list of tokens, case-insensitive, with
// whitespace trimmed per token. Every token but one must be a modifier;
// the remaining token is the key. A spec carrying more than one
// non-modifier token is rejected with ErrAmbiguousSpec rather than
// silently keeping the last one.
func Parse(spec string) (Combo, error) {
	if strings.TrimSpace(spec) == "" {
		return Combo{}, ErrEmptySpec
	}

	var combo Combo
	var keys []string

	for _, token := range strings.Split(spec, "+") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		if mod := ModifierFromName(token); mod != ModNone {
			combo.Mods = combo.Mods.With(mod)
			continue
		}
		keys = append(keys, token)
	}

	switch len(keys) {
	case 0:
		return Combo{}, fmt.Errorf("%w: %q", ErrMissingKey, spec)
	case 1:
		combo.Key = NormalizeKey(keys[0])
		return combo, nil
	default:
		return Combo{}, fmt.Errorf("%w: %q has %d key tokens", ErrAmbiguousSpec, spec, len(keys))
	}
}

// ParseList parses a comma-separated list of combo specifications.
// A list expresses platform-alternative bindings for one logical
// shortcut, e.g. "Ctrl+K, Cmd+K".
func ParseList(spec string) ([]Combo, error) {
	segments := strings.Split(spec, ",")
	combos := make([]Combo, 0, len(segments))

	for _, segment := range segments {
		if strings.TrimSpace(segment) == "" {
			continue
		}
		combo, err := Parse(segment)
		if err != nil {
			return nil, err
		}
		combos = append(combos, combo)
	}

	if len(combos) == 0 {
		return nil, ErrEmptySpec
	}
	return combos, nil
}

// MustParse parses a combo specification and panics on error.
// Use only for known-valid specs in initialization code.
func MustParse(spec string) Combo {
	combo, err := Parse(spec)
	if err != nil {
		panic("invalid key specification: " + spec + ": " + err.Error())
	}
	return combo
}

// MustParseList parses a combo list and panics on error.
func MustParseList(spec string) []Combo {
	combos, err := ParseList(spec)
	if err != nil {
		panic("invalid key specification: " + spec + ": " + err.Error())
	}
	return combos
}
