// Package box models a tree of styled boxes: layout props resolved by the
// style resolver plus an optional class name, inline style overrides and text.
package box

import (
	"github.com/alexisbeaulieu97/miever/pkg/style"
)

// Box is one element of a box tree.
type Box struct {
	Name     string        `yaml:"name,omitempty" validate:"omitempty,box_name"`
	Class    string        `yaml:"class,omitempty" validate:"omitempty,css_class"`
	Request  style.Request `yaml:",inline" validate:"-"`
	Style    Inline        `yaml:"style,omitempty" validate:"-"`
	Text     string        `yaml:"text,omitempty"`
	Children []Box         `yaml:"children,omitempty" validate:"omitempty,dive"`
}

// Declarations resolves the layout props and appends the inline overrides,
// which therefore win over anything the resolver emitted.
func (b Box) Declarations(r *style.Resolver) style.Declarations {
	decls := r.Resolve(b.Request)
	return append(decls, b.Style.Declarations()...)
}

// Find returns the first box named name in depth-first order.
func (b *Box) Find(name string) (*Box, bool) {
	if b.Name == name {
		return b, true
	}
	for i := range b.Children {
		if found, ok := b.Children[i].Find(name); ok {
			return found, true
		}
	}
	return nil, false
}

// Walk visits b and its descendants depth-first. depth is 0 for b.
func (b *Box) Walk(fn func(node *Box, depth int)) {
	b.walk(fn, 0)
}

func (b *Box) walk(fn func(node *Box, depth int), depth int) {
	fn(b, depth)
	for i := range b.Children {
		b.Children[i].walk(fn, depth+1)
	}
}
