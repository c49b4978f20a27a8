package bindfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hotbind/hotbind/internal/key"
	"github.com/hotbind/hotbind/internal/shortcut"
)

// Load errors
var (
	ErrNoEntries      = errors.New("binds file has no shortcuts")
	ErrDuplicateID    = errors.New("duplicate shortcut id")
	ErrMissingHandler = errors.New("no handler for shortcut id")
)

// File is a parsed binds file.
type File struct {
	// Name identifies the file for group registration; defaults to the
	// file path when loaded from disk.
	Name string `json:"name"`

	// Shortcuts are the entries in file order.
	Shortcuts []Entry `json:"shortcuts"`
}

// Entry is a single binding definition. Handlers are joined by id at
// Apply time.
type Entry struct {
	ID           string `json:"id"`
	Keys         string `json:"keys"`
	Description  string `json:"description,omitempty"`
	Category     string `json:"category,omitempty"`
	Global       bool   `json:"global,omitempty"`
	AllowInInput bool   `json:"allowInInput,omitempty"`

	// PreventDefault defaults to true when omitted.
	PreventDefault *bool `json:"preventDefault,omitempty"`
}

// preventDefault resolves the tri-state field.
func (e Entry) preventDefault() bool {
	return e.PreventDefault == nil || *e.PreventDefault
}

// Load reads a JSON binds file from disk.
func Load(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening binds file: %w", err)
	}
	defer f.Close()

	file, err := LoadReader(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if file.Name == "" {
		file.Name = path
	}
	return file, nil
}

// LoadReader reads a JSON binds file.
func LoadReader(r io.Reader) (*File, error) {
	var file File
	if err := json.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("decoding binds file: %w", err)
	}
	return &file, nil
}

// Save writes the file as indented JSON.
func (f *File) Save(path string) error {
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling binds file: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing binds file: %w", err)
	}
	return nil
}

// Problem is a non-fatal finding from Validate.
type Problem struct {
	ID      string
	Message string
}

func (p Problem) String() string {
	return p.ID + ": " + p.Message
}

// Validate checks every entry parses and reports findings. Parse
// failures are returned as problems rather than an error: a binds file
// with a bad entry still loads, the bad entry just never fires
// (matching the silent-degrade policy of dispatch), but tooling should
// surface it.
func (f *File) Validate() []Problem {
	var problems []Problem
	seen := make(map[string]bool)
	claimed := make(map[key.Combo][]string)
	var claimOrder []key.Combo

	for _, e := range f.Shortcuts {
		if e.ID == "" {
			problems = append(problems, Problem{Message: "entry without id"})
			continue
		}
		if seen[e.ID] {
			problems = append(problems, Problem{ID: e.ID, Message: "duplicate id"})
			continue
		}
		seen[e.ID] = true

		combos, err := key.ParseList(e.Keys)
		if err != nil {
			problems = append(problems, Problem{ID: e.ID, Message: err.Error()})
			continue
		}
		for _, c := range combos {
			if _, ok := claimed[c]; !ok {
				claimOrder = append(claimOrder, c)
			}
			claimed[c] = append(claimed[c], e.ID)
		}
	}

	for _, c := range claimOrder {
		ids := claimed[c]
		if len(ids) > 1 {
			problems = append(problems, Problem{
				ID:      ids[1],
				Message: fmt.Sprintf("%s conflicts with %q (first registered wins)", c, ids[0]),
			})
		}
	}
	return problems
}

// Group builds a shortcut group from the file, joining entries to
// handlers by id. Every entry must have a handler.
func (f *File) Group(handlers map[string]shortcut.Handler) (shortcut.Group, error) {
	if len(f.Shortcuts) == 0 {
		return shortcut.Group{}, fmt.Errorf("%s: %w", f.Name, ErrNoEntries)
	}

	group := shortcut.NewGroup(f.Name)
	seen := make(map[string]bool)

	for _, e := range f.Shortcuts {
		if seen[e.ID] {
			return shortcut.Group{}, fmt.Errorf("%s: %w: %q", f.Name, ErrDuplicateID, e.ID)
		}
		seen[e.ID] = true

		handler, ok := handlers[e.ID]
		if !ok {
			return shortcut.Group{}, fmt.Errorf("%s: %w: %q", f.Name, ErrMissingHandler, e.ID)
		}

		s, err := shortcut.New(e.ID, e.Keys, handler)
		if err != nil {
			return shortcut.Group{}, fmt.Errorf("%s: %w", f.Name, err)
		}
		s.Description = e.Description
		s.Category = e.Category
		s.Global = e.Global
		s.AllowInInput = e.AllowInInput
		s.PreventDefault = e.preventDefault()
		group = group.Add(s)
	}
	return group, nil
}

// Apply registers the file's shortcuts as one group, replacing any
// previous registration under the same file name.
func (f *File) Apply(reg *shortcut.Registry, handlers map[string]shortcut.Handler) error {
	group, err := f.Group(handlers)
	if err != nil {
		return err
	}
	return reg.RegisterGroup(group)
}
