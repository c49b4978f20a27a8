package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/hotbind/hotbind/internal/key"
	"github.com/hotbind/hotbind/internal/shortcut"
)

// CheatsheetLines renders a snapshot as aligned text lines, grouped by
// category. Combos are formatted for the given platform; the key
// column is padded by display width so Mac glyphs line up too.
func CheatsheetLines(snap shortcut.Snapshot, p key.Platform) []string {
	categories := shortcut.GroupByCategory(snap)
	if len(categories) == 0 {
		return nil
	}

	keyWidth := 0
	for _, s := range snap {
		if w := runewidth.StringWidth(key.FormatList(s.Combos, p)); w > keyWidth {
			keyWidth = w
		}
	}

	var lines []string
	for i, cat := range categories {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, cat.Name)
		for _, s := range cat.Shortcuts {
			keys := runewidth.FillRight(key.FormatList(s.Combos, p), keyWidth)
			desc := s.Description
			if desc == "" {
				desc = s.ID
			}
			line := fmt.Sprintf("  %s  %s", keys, desc)
			if !s.Enabled {
				line += " (disabled)"
			}
			lines = append(lines, line)
		}
	}
	return lines
}

// WriteCheatsheet writes the rendered cheatsheet to w.
func WriteCheatsheet(w io.Writer, snap shortcut.Snapshot, p key.Platform) error {
	lines := CheatsheetLines(snap, p)
	if len(lines) == 0 {
		_, err := io.WriteString(w, "no shortcuts registered\n")
		return err
	}
	_, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")
	return err
}
