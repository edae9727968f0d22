package render

import (
	"fmt"
	"strings"

	"github.com/aymerick/douceur/parser"

	"github.com/alexisbeaulieu97/miever/pkg/style"
)

// ParseStyle parses the body of a style attribute, keeping declaration order.
func ParseStyle(text string) (style.Declarations, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}
	// douceur drops the value of an unterminated last declaration.
	if !strings.HasSuffix(text, ";") {
		text += ";"
	}

	parsed, err := parser.ParseDeclarations(text)
	if err != nil {
		return nil, fmt.Errorf("parse style %q: %w", text, err)
	}

	decls := make(style.Declarations, 0, len(parsed))
	for _, d := range parsed {
		value := d.Value
		if d.Important {
			value += " !important"
		}
		decls = decls.Add(d.Property, value)
	}
	return decls, nil
}

// FormatStyle renders declarations as a style attribute value. Declarations
// with an empty value are left out; duplicates are kept in order.
func FormatStyle(decls style.Declarations) string {
	parts := make([]string, 0, len(decls))
	for _, d := range decls {
		if strings.TrimSpace(d.Value) == "" {
			continue
		}
		parts = append(parts, d.Property+": "+d.Value)
	}
	return strings.Join(parts, "; ")
}
