// Package bindfile loads shortcut definitions from configuration files.
//
// Two formats are supported:
//
//   - JSON binds files, the primary format (see File for the schema)
//   - INI binds files, sections as categories, "id = keys" entries
//
// Binds files carry no handlers; Apply joins entries to handlers by id
// and registers the result as one group, so a reload replaces the whole
// file's shortcuts atomically. Watch re-applies a file when it changes
// on disk.
package bindfile
