// Package tokens holds the spacing token table consumed by the style resolver.
//
// A Table maps design token names ("sm", "lg", ...) to concrete CSS lengths.
// Tables are built once, usually at startup, and are read-only afterwards so
// they can be shared freely between goroutines.
package tokens

import (
	"fmt"
	"strings"

	mieverrors "github.com/alexisbeaulieu97/miever/pkg/errors"
)

// Names of the built-in spacing tokens.
const (
	ExtraSmall = "xs"
	Small      = "sm"
	Medium     = "md"
	Large      = "lg"
	ExtraLarge = "xl"
)

// Entry is a single token declaration.
type Entry struct {
	Name  string `yaml:"name" json:"name" validate:"required,token_name"`
	Value string `yaml:"value" json:"value" validate:"required"`
}

// Table is an ordered, immutable spacing token table.
type Table struct {
	entries []Entry
	index   map[string]int
}

// NewTable builds a table from the given entries, preserving their order.
// Every name must be unique and non-empty and every value non-empty.
func NewTable(entries ...Entry) (Table, error) {
	t := Table{
		entries: make([]Entry, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}

	for i, entry := range entries {
		field := fmt.Sprintf("spacing[%d]", i)
		name := strings.TrimSpace(entry.Name)
		if name == "" {
			return Table{}, mieverrors.NewValidationError(field+".name", "token name is required", nil)
		}
		if strings.TrimSpace(entry.Value) == "" {
			return Table{}, mieverrors.NewValidationError(field+".value", fmt.Sprintf("token %q has no value", name), nil)
		}
		if _, exists := t.index[name]; exists {
			return Table{}, mieverrors.NewValidationError(field+".name", fmt.Sprintf("duplicate token name %q", name), nil)
		}

		t.index[name] = len(t.entries)
		t.entries = append(t.entries, Entry{Name: name, Value: strings.TrimSpace(entry.Value)})
	}

	return t, nil
}

// MustTable is like NewTable but panics on invalid input. Intended for package-level tables.
func MustTable(entries ...Entry) Table {
	t, err := NewTable(entries...)
	if err != nil {
		panic(err)
	}
	return t
}

var defaultTable = MustTable(
	Entry{Name: ExtraSmall, Value: "4px"},
	Entry{Name: Small, Value: "8px"},
	Entry{Name: Medium, Value: "16px"},
	Entry{Name: Large, Value: "24px"},
	Entry{Name: ExtraLarge, Value: "32px"},
)

// Default returns the built-in spacing scale.
func Default() Table {
	return defaultTable
}

// Lookup returns the length registered for name.
func (t Table) Lookup(name string) (string, bool) {
	i, ok := t.index[name]
	if !ok {
		return "", false
	}
	return t.entries[i].Value, true
}

// Has reports whether name is a declared token.
func (t Table) Has(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Len returns the number of tokens.
func (t Table) Len() int {
	return len(t.entries)
}

// Names returns the token names in declaration order.
func (t Table) Names() []string {
	names := make([]string, len(t.entries))
	for i, entry := range t.entries {
		names[i] = entry.Name
	}
	return names
}

// Entries returns a copy of the token entries in declaration order.
func (t Table) Entries() []Entry {
	return append([]Entry(nil), t.entries...)
}
