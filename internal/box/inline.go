package box

import (
	"fmt"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/miever/pkg/style"
)

// Inline holds inline style overrides in declaration order.
type Inline struct {
	decls style.Declarations
}

// NewInline builds overrides from alternating property/value pairs.
// Property names may be camelCase; they are converted to CSS names.
func NewInline(pairs ...string) Inline {
	var in Inline
	for i := 0; i+1 < len(pairs); i += 2 {
		in.decls = in.decls.Add(cssProperty(pairs[i]), pairs[i+1])
	}
	return in
}

// Declarations returns a copy of the overrides.
func (in Inline) Declarations() style.Declarations {
	return append(style.Declarations(nil), in.decls...)
}

// IsZero reports whether there are no overrides.
func (in Inline) IsZero() bool {
	return len(in.decls) == 0
}

// UnmarshalYAML reads a mapping, keeping key order.
func (in *Inline) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: style must be a mapping of property to value", value.Line)
	}

	decls := make(style.Declarations, 0, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		key, val := value.Content[i], value.Content[i+1]
		if val.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: style value for %q must be a scalar", val.Line, key.Value)
		}
		decls = decls.Add(cssProperty(key.Value), val.Value)
	}
	in.decls = decls
	return nil
}

// MarshalYAML writes the overrides back as an ordered mapping.
func (in Inline) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, decl := range in.decls {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: decl.Property},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: decl.Value},
		)
	}
	return node, nil
}

// cssProperty converts borderRadius to border-radius and WebkitTransition to
// -webkit-transition. Names already in CSS form are unchanged.
func cssProperty(name string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(name) {
		if unicode.IsUpper(r) {
			b.WriteByte('-')
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}

	property := b.String()
	if strings.HasPrefix(property, "ms-") {
		property = "-" + property
	}
	return property
}
