package render

import (
	"html"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/alexisbeaulieu97/miever/internal/box"
	"github.com/alexisbeaulieu97/miever/pkg/style"
)

// AllowedProperties lists the style properties that survive HTML sanitisation.
var AllowedProperties = []string{
	"display", "flex-direction", "justify-content", "align-items", "gap",
	"width", "height",
	"padding", "padding-top", "padding-right", "padding-bottom", "padding-left",
	"margin", "border", "border-radius", "border-bottom",
	"background", "background-color", "color",
	"box-shadow", "transition",
}

var (
	classPattern = regexp.MustCompile(`^[-_a-zA-Z0-9 ]+$`)
	idPattern    = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)
	unsafeValue  = regexp.MustCompile(`(?i)(url\s*\(|expression\s*\(|javascript:|@import)`)
)

// HTMLRenderer renders box trees as sanitised HTML.
type HTMLRenderer struct {
	resolver *style.Resolver
	policy   *bluemonday.Policy
}

// NewHTMLRenderer creates a renderer that resolves boxes with r.
func NewHTMLRenderer(r *style.Resolver) *HTMLRenderer {
	return &HTMLRenderer{resolver: r, policy: newPolicy()}
}

func newPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("div")
	p.AllowAttrs("class").Matching(classPattern).OnElements("div")
	p.AllowAttrs("id").Matching(idPattern).OnElements("div")
	p.AllowStyles(AllowedProperties...).MatchingHandler(func(value string) bool {
		return !unsafeValue.MatchString(value)
	}).OnElements("div")
	return p
}

// Render returns the sanitised markup for b and its children.
func (h *HTMLRenderer) Render(b box.Box) string {
	var sb strings.Builder
	h.write(&sb, b)
	return h.policy.Sanitize(sb.String())
}

// RenderAll renders several trees, one per line.
func (h *HTMLRenderer) RenderAll(boxes []box.Box) string {
	parts := make([]string, len(boxes))
	for i, b := range boxes {
		parts[i] = h.Render(b)
	}
	return strings.Join(parts, "\n")
}

func (h *HTMLRenderer) write(sb *strings.Builder, b box.Box) {
	sb.WriteString("<div")
	if b.Name != "" {
		writeAttr(sb, "id", b.Name)
	}
	if b.Class != "" {
		writeAttr(sb, "class", b.Class)
	}
	if css := FormatStyle(b.Declarations(h.resolver)); css != "" {
		writeAttr(sb, "style", css)
	}
	sb.WriteString(">")
	sb.WriteString(html.EscapeString(b.Text))
	for _, child := range b.Children {
		h.write(sb, child)
	}
	sb.WriteString("</div>")
}

func writeAttr(sb *strings.Builder, name, value string) {
	sb.WriteString(" ")
	sb.WriteString(name)
	sb.WriteString(`="`)
	sb.WriteString(html.EscapeString(value))
	sb.WriteString(`"`)
}
