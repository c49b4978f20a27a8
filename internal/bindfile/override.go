package bindfile

import (
	"errors"
	"fmt"
	"os"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// ErrEntryNotFound is returned when an override targets an unknown id.
var ErrEntryNotFound = errors.New("no binds entry with id")

// LookupKeys reads the keys of one entry out of raw JSON binds data
// without decoding the whole document.
func LookupKeys(data []byte, id string) (string, bool) {
	result := gjson.GetBytes(data, fmt.Sprintf("shortcuts.#(id==%q).keys", id))
	if !result.Exists() {
		return "", false
	}
	return result.String(), true
}

// SetKeys rewrites exactly one entry's keys inside raw JSON binds data,
// leaving the rest of the document untouched.
func SetKeys(data []byte, id, keys string) ([]byte, error) {
	index := -1
	gjson.GetBytes(data, "shortcuts").ForEach(func(i, entry gjson.Result) bool {
		if entry.Get("id").String() == id {
			index = int(i.Int())
			return false
		}
		return true
	})
	if index < 0 {
		return nil, fmt.Errorf("%w: %q", ErrEntryNotFound, id)
	}

	updated, err := sjson.SetBytes(data, fmt.Sprintf("shortcuts.%d.keys", index), keys)
	if err != nil {
		return nil, fmt.Errorf("rebinding %q: %w", id, err)
	}
	return updated, nil
}

// SetKeysFile applies SetKeys to a binds file on disk.
func SetKeysFile(path, id, keys string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading binds file: %w", err)
	}
	updated, err := SetKeys(data, id, keys)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := os.WriteFile(path, updated, 0o644); err != nil {
		return fmt.Errorf("writing binds file: %w", err)
	}
	return nil
}
