package session

import "strings"

// defaultCategories seeds every new session. The set deliberately resets to
// these on each login; runtime additions live only as long as the session.
var defaultCategories = []string{
	"Grocery",
	"Utilities",
	"Transportation",
	"Dining & Food",
	"Shopping",
	"Others",
}

// CategorySet is an ordered, duplicate-free set of expense category names.
type CategorySet struct {
	names []string
}

// DefaultCategories returns a fresh set seeded with the default list.
func DefaultCategories() *CategorySet {
	c := &CategorySet{names: make([]string, len(defaultCategories))}
	copy(c.names, defaultCategories)
	return c
}

// Names returns the categories in order. The slice is a copy.
func (c *CategorySet) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Len returns the number of categories.
func (c *CategorySet) Len() int {
	return len(c.names)
}

// At returns the 1-based category for menu selection, and whether the index
// was in range.
func (c *CategorySet) At(i int) (string, bool) {
	if i < 1 || i > len(c.names) {
		return "", false
	}
	return c.names[i-1], true
}

// Add appends a category unless an equivalent one (ignoring case) already
// exists. It reports whether the set changed.
func (c *CategorySet) Add(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	for _, existing := range c.names {
		if strings.EqualFold(existing, name) {
			return false
		}
	}
	c.names = append(c.names, name)
	return true
}
