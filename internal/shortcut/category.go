package shortcut

// Category is a named bucket of shortcuts for display.
type Category struct {
	Name      string
	Shortcuts []Shortcut
}

// GroupByCategory groups shortcuts by their category field, preserving
// first-appearance order. Shortcuts without a category land in "Other".
func GroupByCategory(shortcuts []Shortcut) []Category {
	buckets := make(map[string][]Shortcut)
	order := make([]string, 0)

	for _, s := range shortcuts {
		name := s.Category
		if name == "" {
			name = "Other"
		}
		if _, exists := buckets[name]; !exists {
			order = append(order, name)
		}
		buckets[name] = append(buckets[name], s)
	}

	result := make([]Category, 0, len(order))
	for _, name := range order {
		result = append(result, Category{Name: name, Shortcuts: buckets[name]})
	}
	return result
}
