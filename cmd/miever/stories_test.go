package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStoriesCommandList(t *testing.T) {
	out, _, err := execute(t, "stories", "--list")
	require.NoError(t, err)
	for _, name := range []string{"default", "flexbox", "padding", "dynamic"} {
		require.Contains(t, out, name)
	}
}

func TestStoriesCommandHTML(t *testing.T) {
	out, _, err := execute(t, "stories", "--name", "flexbox", "--format", "html")
	require.NoError(t, err)
	require.Contains(t, out, `id="child-1"`)
	require.Contains(t, out, "display: flex")
}

func TestStoriesCommandTerminal(t *testing.T) {
	out, _, err := execute(t, "stories")
	require.NoError(t, err)
	require.Contains(t, out, "This is a Box")
}

func TestStoriesCommandUnknown(t *testing.T) {
	_, _, err := execute(t, "stories", "--name", "carousel")
	require.Error(t, err)
	require.Contains(t, err.Error(), "no such story")
}
