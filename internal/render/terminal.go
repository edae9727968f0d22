package render

import (
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/miever/internal/box"
	"github.com/alexisbeaulieu97/miever/pkg/style"
)

// TerminalOptions controls how CSS pixels map onto terminal cells.
type TerminalOptions struct {
	PixelsPerColumn float64
	PixelsPerRow    float64
}

// DefaultTerminalOptions assumes an 8x16 pixel cell.
func DefaultTerminalOptions() TerminalOptions {
	return TerminalOptions{PixelsPerColumn: 8, PixelsPerRow: 16}
}

// TerminalRenderer draws box trees with lipgloss.
type TerminalRenderer struct {
	resolver *style.Resolver
	opts     TerminalOptions
}

// NewTerminalRenderer creates a terminal renderer. Zero option fields fall back to the defaults.
func NewTerminalRenderer(r *style.Resolver, opts TerminalOptions) *TerminalRenderer {
	defaults := DefaultTerminalOptions()
	if opts.PixelsPerColumn <= 0 {
		opts.PixelsPerColumn = defaults.PixelsPerColumn
	}
	if opts.PixelsPerRow <= 0 {
		opts.PixelsPerRow = defaults.PixelsPerRow
	}
	return &TerminalRenderer{resolver: r, opts: opts}
}

// Render draws b and its children.
func (t *TerminalRenderer) Render(b box.Box) string {
	computed := b.Declarations(t.resolver).Map()
	row := computed["display"] == "flex" && strings.HasPrefix(computed["flex-direction"], "row")

	views := make([]string, 0, len(b.Children))
	for _, child := range b.Children {
		if view := t.Render(child); view != "" {
			views = append(views, view)
		}
	}
	if strings.HasSuffix(computed["flex-direction"], "-reverse") {
		for i, j := 0, len(views)-1; i < j; i, j = i+1, j-1 {
			views[i], views[j] = views[j], views[i]
		}
	}

	var content string
	if row {
		gap, _ := t.columns(computed["gap"])
		content = joinWithGap(views, gap, true, crossPosition(computed["align-items"]))
	} else {
		gap, _ := t.rows(computed["gap"])
		content = joinWithGap(views, gap, false, crossPosition(computed["align-items"]))
	}
	if b.Text != "" {
		if content == "" {
			content = b.Text
		} else {
			content = lipgloss.JoinVertical(lipgloss.Left, b.Text, content)
		}
	}

	return t.style(computed, row).Render(content)
}

// RenderAll renders several trees separated by a blank line.
func (t *TerminalRenderer) RenderAll(boxes []box.Box) string {
	parts := make([]string, len(boxes))
	for i, b := range boxes {
		parts[i] = t.Render(b)
	}
	return strings.Join(parts, "\n\n")
}

func (t *TerminalRenderer) style(computed map[string]string, row bool) lipgloss.Style {
	s := lipgloss.NewStyle()

	top, _ := t.rows(computed["padding-top"])
	bottom, _ := t.rows(computed["padding-bottom"])
	left, _ := t.columns(computed["padding-left"])
	right, _ := t.columns(computed["padding-right"])
	s = s.Padding(top, right, bottom, left)

	if width, ok := t.columns(computed["width"]); ok {
		s = s.Width(width)
	}
	if height, ok := t.rows(computed["height"]); ok {
		s = s.Height(height)
	}

	main := mainPosition(computed["justify-content"])
	if row {
		s = s.Align(main)
	} else {
		s = s.AlignVertical(main)
	}

	if border, ok := borderFor(computed); ok {
		s = s.Border(border)
	}
	if c, ok := colour(computed["background"], computed["background-color"]); ok {
		s = s.Background(c)
	}
	if c, ok := colour(computed["color"]); ok {
		s = s.Foreground(c)
	}
	return s
}

func (t *TerminalRenderer) columns(value string) (int, bool) {
	return cells(value, t.opts.PixelsPerColumn)
}

func (t *TerminalRenderer) rows(value string) (int, bool) {
	return cells(value, t.opts.PixelsPerRow)
}

// maxCells bounds any converted length.
const maxCells = 1000

// cells converts a pixel length to cells. Anything that is not a plain
// pixel or unitless number (percentages, auto, unresolved tokens) is ignored.
func cells(value string, perCell float64) (int, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(strings.TrimSuffix(value, "px"), 64)
	if err != nil || n < 0 || math.IsInf(n, 0) || math.IsNaN(n) {
		return 0, false
	}
	return int(math.Min(math.Round(n/perCell), maxCells)), true
}

func joinWithGap(views []string, gap int, horizontal bool, pos lipgloss.Position) string {
	if len(views) == 0 {
		return ""
	}

	spaced := views
	if gap > 0 && len(views) > 1 {
		spacer := strings.Repeat(" ", gap)
		if !horizontal {
			spacer = strings.Repeat("\n", gap-1)
		}
		spaced = make([]string, 0, len(views)*2-1)
		for i, view := range views {
			if i > 0 {
				spaced = append(spaced, spacer)
			}
			spaced = append(spaced, view)
		}
	}

	if horizontal {
		return lipgloss.JoinHorizontal(pos, spaced...)
	}
	return lipgloss.JoinVertical(pos, spaced...)
}

func crossPosition(alignItems string) lipgloss.Position {
	switch alignItems {
	case "center":
		return lipgloss.Center
	case "flex-end", "end":
		return lipgloss.Bottom
	default:
		return lipgloss.Top
	}
}

func mainPosition(justify string) lipgloss.Position {
	switch justify {
	case "center", "space-around":
		return lipgloss.Center
	case "flex-end", "end":
		return lipgloss.Right
	default:
		return lipgloss.Left
	}
}

func borderFor(computed map[string]string) (lipgloss.Border, bool) {
	value := computed["border"]
	if value == "" {
		value = computed["border-bottom"]
	}
	if value == "" || value == "none" || value == "0" {
		return lipgloss.Border{}, false
	}

	switch {
	case strings.Contains(value, "double"):
		return lipgloss.DoubleBorder(), true
	case computed["border-radius"] != "":
		return lipgloss.RoundedBorder(), true
	default:
		return lipgloss.NormalBorder(), true
	}
}

// colour picks the first hex colour among values.
func colour(values ...string) (lipgloss.Color, bool) {
	for _, v := range values {
		for _, field := range strings.Fields(v) {
			if strings.HasPrefix(field, "#") && (len(field) == 4 || len(field) == 7) {
				return lipgloss.Color(field), true
			}
		}
	}
	return "", false
}
