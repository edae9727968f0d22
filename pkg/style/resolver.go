// Package style turns box layout props into CSS declarations.
//
// The resolver is a pure function of a Request and a spacing token table:
//
//	r := style.NewResolver(tokens.Default())
//	decls := r.Resolve(style.Request{FlexBox: true, Direction: "row", Padding: style.Raw("sm")})
//	// display: flex; flex-direction: row; justify-content: ; align-items: ; padding: sm; padding: 8px;
//
// The output is an ordered list in which later declarations for the same
// property win. Token matches are emitted after the provisional value rather
// than replacing it, so the list reads exactly like the rule block a style
// engine would receive. Use Declarations.Computed to evaluate the cascade.
//
// Nothing is validated. Unknown keywords and tokens pass through untouched;
// Check reports them for callers that want stricter behaviour.
package style

import (
	"github.com/alexisbeaulieu97/miever/pkg/tokens"
)

// DefaultScale is the pixel multiplier applied to numeric spacing values.
const DefaultScale = 4

// Option configures a Resolver.
type Option func(*Resolver)

// WithScale overrides the numeric spacing multiplier. Non-positive values are ignored.
func WithScale(scale float64) Option {
	return func(r *Resolver) {
		if scale > 0 {
			r.scale = scale
		}
	}
}

// WithUnknownToken registers a callback for Token values missing from the table.
// The callback observes; it cannot change the output.
func WithUnknownToken(fn func(field, name string)) Option {
	return func(r *Resolver) {
		r.onUnknownToken = fn
	}
}

// Resolver maps Requests to Declarations using a fixed token table.
// A Resolver is immutable and safe for concurrent use.
type Resolver struct {
	table          tokens.Table
	scale          float64
	onUnknownToken func(field, name string)
}

// NewResolver creates a resolver bound to table.
func NewResolver(table tokens.Table, opts ...Option) *Resolver {
	r := &Resolver{
		table: table,
		scale: DefaultScale,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// Resolve is a convenience wrapper for NewResolver(table).Resolve(req).
func Resolve(req Request, table tokens.Table) Declarations {
	return NewResolver(table).Resolve(req)
}

// Tokens returns the table the resolver was built with.
func (r *Resolver) Tokens() tokens.Table {
	return r.table
}

// Scale returns the numeric spacing multiplier.
func (r *Resolver) Scale() float64 {
	return r.scale
}

// Resolve computes the declarations for req.
func (r *Resolver) Resolve(req Request) Declarations {
	display := "block"
	if req.FlexBox {
		display = "flex"
	}

	out := make(Declarations, 0, 16)
	out = out.Add("display", display)
	out = out.Add("flex-direction", req.Direction)
	out = out.Add("justify-content", req.JustifyContent)
	out = out.Add("align-items", req.AlignItems)

	if req.Width.emitted() {
		out = out.Add("width", req.Width.size())
	}
	if req.Height.emitted() {
		out = out.Add("height", req.Height.size())
	}

	out = r.spacing(out, "paddingX", req.PaddingX, "padding-left", "padding-right")
	out = r.spacing(out, "paddingY", req.PaddingY, "padding-top", "padding-bottom")
	out = r.spacing(out, "padding", req.Padding, "padding")

	return out
}

func (r *Resolver) spacing(out Declarations, field string, value Length, properties ...string) Declarations {
	if !value.emitted() {
		return out
	}

	provisional := value.scaled(r.scale)
	for _, property := range properties {
		out = out.Add(property, provisional)
	}

	resolved, ok := r.table.Lookup(value.String())
	if !ok {
		if value.Kind() == LengthToken && r.onUnknownToken != nil {
			r.onUnknownToken(field, value.String())
		}
		return out
	}
	for _, property := range properties {
		out = out.Add(property, resolved)
	}
	return out
}
