package style

import (
	"strings"
)

// Declaration is a single CSS property/value pair.
type Declaration struct {
	Property string `json:"property" yaml:"property"`
	Value    string `json:"value" yaml:"value"`
}

func (d Declaration) String() string {
	return d.Property + ": " + d.Value + ";"
}

// Declarations is an ordered declaration list. The same property may appear
// more than once; the later declaration wins, as in a CSS rule block.
type Declarations []Declaration

// Add appends a declaration and returns the extended list.
func (d Declarations) Add(property, value string) Declarations {
	return append(d, Declaration{Property: property, Value: value})
}

// Get returns the winning value for property without expanding shorthands.
func (d Declarations) Get(property string) (string, bool) {
	for i := len(d) - 1; i >= 0; i-- {
		if d[i].Property == property {
			return d[i].Value, true
		}
	}
	return "", false
}

// String renders the list as a style attribute body.
func (d Declarations) String() string {
	parts := make([]string, len(d))
	for i, decl := range d {
		parts[i] = decl.String()
	}
	return strings.Join(parts, " ")
}

// Properties returns each distinct property in first-appearance order.
func (d Declarations) Properties() []string {
	seen := make(map[string]struct{}, len(d))
	props := make([]string, 0, len(d))
	for _, decl := range d {
		if _, ok := seen[decl.Property]; ok {
			continue
		}
		seen[decl.Property] = struct{}{}
		props = append(props, decl.Property)
	}
	return props
}

// Computed evaluates the list the way a style engine would: the padding
// shorthand is expanded into its longhands, declarations with an empty value
// or a malformed shorthand are dropped, and each property keeps its last
// value. Properties are ordered by first appearance.
func (d Declarations) Computed() Declarations {
	order := make([]string, 0, len(d))
	values := make(map[string]string, len(d))

	set := func(property, value string) {
		if _, ok := values[property]; !ok {
			order = append(order, property)
		}
		values[property] = value
	}

	for _, decl := range d {
		value := strings.TrimSpace(decl.Value)
		if value == "" {
			continue
		}
		if decl.Property == "padding" {
			sides, ok := expandBox(value)
			if !ok {
				continue
			}
			set("padding-top", sides[0])
			set("padding-right", sides[1])
			set("padding-bottom", sides[2])
			set("padding-left", sides[3])
			continue
		}
		set(decl.Property, value)
	}

	out := make(Declarations, 0, len(order))
	for _, property := range order {
		out = append(out, Declaration{Property: property, Value: values[property]})
	}
	return out
}

// Map returns the computed values keyed by property.
func (d Declarations) Map() map[string]string {
	computed := d.Computed()
	m := make(map[string]string, len(computed))
	for _, decl := range computed {
		m[decl.Property] = decl.Value
	}
	return m
}

// expandBox applies the 1-4 value box shorthand rule: top, right, bottom, left.
func expandBox(value string) ([4]string, bool) {
	parts := strings.Fields(value)
	switch len(parts) {
	case 1:
		return [4]string{parts[0], parts[0], parts[0], parts[0]}, true
	case 2:
		return [4]string{parts[0], parts[1], parts[0], parts[1]}, true
	case 3:
		return [4]string{parts[0], parts[1], parts[2], parts[1]}, true
	case 4:
		return [4]string{parts[0], parts[1], parts[2], parts[3]}, true
	default:
		return [4]string{}, false
	}
}
