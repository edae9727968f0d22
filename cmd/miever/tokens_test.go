package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/miever/pkg/tokens"
)

func TestTokensCommandTable(t *testing.T) {
	out, _, err := execute(t, "tokens")
	require.NoError(t, err)
	require.Contains(t, out, "NAME")
	require.Contains(t, out, "xs")
	require.Contains(t, out, "32px")
}

func TestTokensCommandJSON(t *testing.T) {
	out, _, err := execute(t, "tokens", "--json")
	require.NoError(t, err)

	var entries []tokens.Entry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Equal(t, tokens.Default().Entries(), entries)
}
