package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/miever/pkg/style"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#1d4ed8", Dark: "#93c5fd"}).
			MarginBottom(1)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.AdaptiveColor{Light: "#cbd5e1", Dark: "#475569"}).
			Padding(0, 1)

	propertyStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#0f766e", Dark: "#5eead4"})
	supersededStyle = lipgloss.NewStyle().Faint(true).Strikethrough(true)
)

// View implements tea.Model.
func (m Model) View() string {
	decls := m.resolver.Resolve(m.box.Request)

	var lines []string
	for i, d := range decls {
		line := fmt.Sprintf("%s %s", propertyStyle.Render(d.Property+":"), d.Value)
		if superseded(decls[i+1:], d.Property) {
			line = supersededStyle.Render(d.Property + ": " + d.Value)
		}
		lines = append(lines, line)
	}

	left := panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Declarations"),
		strings.Join(lines, "\n"),
	))
	right := panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Preview"),
		m.terminal.Render(m.box),
	))

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
	return lipgloss.JoinVertical(lipgloss.Left, body, m.help.View(m.keys))
}

func superseded(rest style.Declarations, property string) bool {
	for _, d := range rest {
		if d.Property == property {
			return true
		}
	}
	return false
}
