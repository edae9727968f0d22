package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mieverrors "github.com/alexisbeaulieu97/miever/pkg/errors"
	"github.com/alexisbeaulieu97/miever/pkg/style"
)

func TestDocumentResolverUsesRelativeTokenFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "spacing.yaml"), []byte("spacing:\n  - name: gutter\n    value: 20px\n"), 0o600))
	docPath := filepath.Join(dir, "boxes.yaml")
	require.NoError(t, os.WriteFile(docPath, []byte("tokens: spacing.yaml\nscale: 2\nboxes:\n  - name: page\n    padding: gutter\n    paddingX: 3\n"), 0o600))

	doc, err := ParseConfig(docPath)
	require.NoError(t, err)

	r, err := doc.Resolver()
	require.NoError(t, err)
	assert.Equal(t, float64(2), r.Scale())
	assert.Equal(t, []string{"gutter"}, r.Tokens().Names())

	page, ok := doc.Box("page")
	require.True(t, ok)
	decls := r.Resolve(page.Request)

	padding, _ := decls.Get("padding")
	assert.Equal(t, "20px", padding)
	left, _ := decls.Get("padding-left")
	assert.Equal(t, "6px", left)
}

func TestDocumentResolverDefaultsAndOverrides(t *testing.T) {
	t.Parallel()

	doc, err := Parse([]byte("boxes:\n  - name: page\n"), "inline.yaml")
	require.NoError(t, err)

	r, err := doc.Resolver(style.WithScale(10))
	require.NoError(t, err)
	assert.Equal(t, float64(10), r.Scale())
	assert.Equal(t, []string{"xs", "sm", "md", "lg", "xl"}, r.Tokens().Names())
}

func TestDocumentResolverMissingTokenFile(t *testing.T) {
	t.Parallel()

	doc, err := Parse([]byte("tokens: /nonexistent/tokens.yaml\nboxes:\n  - name: page\n"), "inline.yaml")
	require.NoError(t, err)

	_, err = doc.Resolver()
	var parseErr *mieverrors.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestDocumentBoxNotFound(t *testing.T) {
	t.Parallel()

	doc, err := Parse([]byte("boxes:\n  - name: page\n  - text: anonymous\n"), "inline.yaml")
	require.NoError(t, err)

	_, ok := doc.Box("missing")
	assert.False(t, ok)
	assert.Equal(t, []string{"page"}, doc.Names())
}

func TestExampleLayoutDocument(t *testing.T) {
	t.Parallel()

	doc, err := ParseConfig(filepath.Join("..", "..", "examples", "layout", "page.yaml"))
	require.NoError(t, err)
	require.Equal(t, []string{"page", "header", "logo", "nav", "content", "callout"}, doc.Names())

	r, err := doc.Resolver()
	require.NoError(t, err)

	page, _ := doc.Box("page")
	computed := page.Declarations(r).Computed().Map()
	assert.Equal(t, "20px", computed["padding-left"])
	assert.Equal(t, "16px", computed["gap"])

	content, _ := doc.Box("content")
	computed = content.Declarations(r).Computed().Map()
	assert.Equal(t, "480px", computed["width"])
	assert.Equal(t, "16px", computed["padding-top"])

	callout, _ := doc.Box("callout")
	padding, _ := callout.Declarations(r).Get("padding")
	assert.Equal(t, "24px", padding)
}
