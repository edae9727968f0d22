package main

import (
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/miever/internal/tui/preview"
)

func stubPreview(t *testing.T) *tea.Model {
	t.Helper()

	originalTerminal := isTerminal
	originalRun := runProgram
	t.Cleanup(func() {
		isTerminal = originalTerminal
		runProgram = originalRun
	})

	var started tea.Model
	isTerminal = func(io.Writer) bool { return true }
	runProgram = func(m tea.Model) error {
		started = m
		return nil
	}
	return &started
}

func TestPreviewRequiresTerminal(t *testing.T) {
	_, _, err := execute(t, "preview")
	require.Error(t, err)
	require.Contains(t, err.Error(), "not a terminal")
}

func TestPreviewStartsProgramForStory(t *testing.T) {
	started := stubPreview(t)

	_, _, err := execute(t, "preview", "--story", "flexbox")
	require.NoError(t, err)

	m, ok := (*started).(preview.Model)
	require.True(t, ok)
	require.True(t, m.Request().FlexBox)
}

func TestPreviewStartsProgramForDocumentBox(t *testing.T) {
	started := stubPreview(t)
	path := writeFile(t, t.TempDir(), "page.yaml", pageDocument)

	_, _, err := execute(t, "preview", "--document", path, "--box", "header")
	require.NoError(t, err)

	m, ok := (*started).(preview.Model)
	require.True(t, ok)
	require.False(t, m.Request().FlexBox)
	require.Contains(t, m.View(), "Title")
}

func TestPreviewUnknownStory(t *testing.T) {
	stubPreview(t)

	_, _, err := execute(t, "preview", "--story", "carousel")
	require.Error(t, err)
	require.Contains(t, err.Error(), "no such story")
}
