package config

import (
	"path/filepath"

	"github.com/alexisbeaulieu97/miever/internal/box"
	"github.com/alexisbeaulieu97/miever/pkg/style"
	"github.com/alexisbeaulieu97/miever/pkg/tokens"
)

// Document is a YAML file describing one or more box trees.
//
//	tokens: ./tokens.yaml
//	scale: 4
//	boxes:
//	  - name: header
//	    flexBox: true
//	    direction: row
//	    padding: sm
type Document struct {
	Tokens string    `yaml:"tokens,omitempty"`
	Scale  float64   `yaml:"scale,omitempty" validate:"omitempty,gt=0"`
	Boxes  []box.Box `yaml:"boxes" validate:"required,min=1,dive"`

	dir string
}

// Dir is the directory the document was loaded from.
func (d *Document) Dir() string {
	return d.dir
}

// TokenTable loads the document's token file, or returns the default table
// when none is referenced. Relative paths resolve against the document directory.
func (d *Document) TokenTable() (tokens.Table, error) {
	if d.Tokens == "" {
		return tokens.Default(), nil
	}

	path := d.Tokens
	if !filepath.IsAbs(path) {
		path = filepath.Join(d.dir, path)
	}
	return tokens.Load(path)
}

// Resolver builds a resolver from the document's token table and scale.
// Extra options are applied after the document settings.
func (d *Document) Resolver(opts ...style.Option) (*style.Resolver, error) {
	table, err := d.TokenTable()
	if err != nil {
		return nil, err
	}

	all := make([]style.Option, 0, len(opts)+1)
	if d.Scale > 0 {
		all = append(all, style.WithScale(d.Scale))
	}
	all = append(all, opts...)
	return style.NewResolver(table, all...), nil
}

// Box finds a box anywhere in the document by name.
func (d *Document) Box(name string) (*box.Box, bool) {
	for i := range d.Boxes {
		if found, ok := d.Boxes[i].Find(name); ok {
			return found, true
		}
	}
	return nil, false
}

// Names returns every named box in document order.
func (d *Document) Names() []string {
	var names []string
	for i := range d.Boxes {
		d.Boxes[i].Walk(func(node *box.Box, _ int) {
			if node.Name != "" {
				names = append(names, node.Name)
			}
		})
	}
	return names
}
