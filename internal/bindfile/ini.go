package bindfile

import (
	"fmt"

	"github.com/go-ini/ini"
)

// LoadINI reads an INI binds file. Section names become categories and
// each "id = keys" entry becomes one binding; keys in the unnamed
// default section are uncategorized. Comments on a key become the
// binding's description.
func LoadINI(path string) (*File, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading binds file: %w", err)
	}

	file := &File{Name: path}
	for _, section := range cfg.Sections() {
		category := section.Name()
		if category == ini.DefaultSection {
			category = ""
		}
		for _, k := range section.Keys() {
			file.Shortcuts = append(file.Shortcuts, Entry{
				ID:          k.Name(),
				Keys:        k.Value(),
				Category:    category,
				Description: k.Comment,
			})
		}
	}

	if len(file.Shortcuts) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrNoEntries)
	}
	return file, nil
}
