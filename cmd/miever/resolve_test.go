package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/miever/pkg/style"
)

func TestResolveCommandCSS(t *testing.T) {
	out, _, err := execute(t, "resolve", "--flex", "--direction", "row", "--padding", "sm")
	require.NoError(t, err)

	require.Equal(t, `display: flex;
flex-direction: row;
justify-content: ;
align-items: ;
padding: sm;
padding: 8px;
`, out)
}

func TestResolveCommandComputed(t *testing.T) {
	out, _, err := execute(t, "resolve", "--width", "200", "--padding-x", "2", "--format", "computed")
	require.NoError(t, err)

	require.Equal(t, `display: block;
width: 200px;
padding-left: 8px;
padding-right: 8px;
`, out)
}

func TestResolveCommandScale(t *testing.T) {
	out, _, err := execute(t, "--scale", "8", "resolve", "--padding-y", "2", "--format", "computed")
	require.NoError(t, err)
	require.Contains(t, out, "padding-top: 16px;")
}

func TestResolveCommandJSON(t *testing.T) {
	out, _, err := execute(t, "resolve", "--height", "50%", "--format", "json")
	require.NoError(t, err)

	var decls style.Declarations
	require.NoError(t, json.Unmarshal([]byte(out), &decls))
	require.Equal(t, style.Declaration{Property: "display", Value: "block"}, decls[0])

	height, ok := decls.Get("height")
	require.True(t, ok)
	require.Equal(t, "50%", height)
}

func TestResolveCommandHTML(t *testing.T) {
	out, _, err := execute(t, "resolve", "--flex", "--padding", "md", "--format", "html")
	require.NoError(t, err)
	require.Contains(t, out, "<div")
	require.Contains(t, out, "display: flex")
	require.Contains(t, out, "16px")
}

func TestResolveCommandUnknownFormat(t *testing.T) {
	_, _, err := execute(t, "resolve", "--format", "xml")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unsupported format")
}

func TestResolveCommandStrict(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{name: "unknown keyword", args: []string{"--direction", "sideways"}, want: "direction"},
		{name: "unknown token", args: []string{"--padding", "token:huge"}, want: "unknown spacing token"},
		{name: "negative length", args: []string{"--width=-4"}, want: "negative length"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			args := append([]string{"resolve", "--strict"}, tc.args...)
			_, _, err := execute(t, args...)
			require.Error(t, err)
			require.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestResolveCommandPermissiveByDefault(t *testing.T) {
	out, stderr, err := execute(t, "resolve", "--padding", "token:huge")
	require.NoError(t, err)
	require.Contains(t, out, "padding: huge;")
	require.Contains(t, stderr, "unknown spacing token")
}

func TestParseFlagLength(t *testing.T) {
	require.Equal(t, style.Length{}, parseFlagLength(""))
	require.Equal(t, style.Px(12), parseFlagLength("12"))
	require.Equal(t, style.Raw("1rem"), parseFlagLength("1rem"))
	require.Equal(t, style.Token("lg"), parseFlagLength("token:lg"))
}
