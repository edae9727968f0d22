// Package preview is an interactive terminal preview of a box: the layout
// props can be cycled with single keys while the resolved declarations and a
// lipgloss rendering update side by side.
package preview

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/miever/internal/box"
	"github.com/alexisbeaulieu97/miever/internal/render"
	"github.com/alexisbeaulieu97/miever/pkg/style"
)

var (
	directions = []string{"", "row", "column", "row-reverse", "column-reverse"}
	justifies  = []string{"", "flex-start", "flex-end", "center", "space-between", "space-around"}
	aligns     = []string{"", "stretch", "flex-start", "flex-end", "center", "baseline"}
)

// Model is the bubbletea model for the preview.
type Model struct {
	resolver *style.Resolver
	terminal *render.TerminalRenderer
	initial  box.Box
	box      box.Box
	spacing  []style.Length

	keys   keyMap
	help   help.Model
	width  int
	height int
}

// New creates a preview of root. Children of root are rendered as-is; only
// the root's layout props are edited.
func New(r *style.Resolver, root box.Box) Model {
	spacing := []style.Length{{}}
	for _, name := range r.Tokens().Names() {
		spacing = append(spacing, style.Token(name))
	}
	spacing = append(spacing, style.Px(1), style.Px(2), style.Px(4))

	return Model{
		resolver: r,
		terminal: render.NewTerminalRenderer(r, render.DefaultTerminalOptions()),
		initial:  root,
		box:      root,
		spacing:  spacing,
		keys:     defaultKeyMap(),
		help:     help.New(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Request returns the props currently being previewed.
func (m Model) Request() style.Request {
	return m.box.Request
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	req := &m.box.Request

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Reset):
		m.box = m.initial
	case key.Matches(msg, m.keys.Flex):
		req.FlexBox = !req.FlexBox
	case key.Matches(msg, m.keys.Direction):
		req.Direction = nextString(directions, req.Direction)
	case key.Matches(msg, m.keys.Justify):
		req.JustifyContent = nextString(justifies, req.JustifyContent)
	case key.Matches(msg, m.keys.Align):
		req.AlignItems = nextString(aligns, req.AlignItems)
	case key.Matches(msg, m.keys.Padding):
		req.Padding = nextLength(m.spacing, req.Padding)
	case key.Matches(msg, m.keys.PaddingX):
		req.PaddingX = nextLength(m.spacing, req.PaddingX)
	case key.Matches(msg, m.keys.PaddingY):
		req.PaddingY = nextLength(m.spacing, req.PaddingY)
	}
	return m, nil
}

func nextString(values []string, current string) string {
	for i, v := range values {
		if v == current {
			return values[(i+1)%len(values)]
		}
	}
	return values[0]
}

func nextLength(values []style.Length, current style.Length) style.Length {
	for i, v := range values {
		if v == current {
			return values[(i+1)%len(values)]
		}
	}
	return values[0]
}
