package main

import (
	"encoding/json"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCommand executes the root command with the given args and returns
// everything written to stdout.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() { flags = globalFlags{} })

	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	root := newRootCmd()
	root.SetArgs(args)
	runErr := root.Execute()

	w.Close()
	os.Stdout = old
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out), runErr
}

func TestRootCmd_Subcommands(t *testing.T) {
	root := newRootCmd()

	want := []string{"estimate", "count", "words", "validate", "schema", "version"}
	have := make(map[string]bool)
	for _, sub := range root.Commands() {
		have[sub.Name()] = true
	}
	for _, name := range want {
		assert.True(t, have[name], "missing subcommand %s", name)
	}
}

func TestCountCmd_TotalsAreTokenTotals(t *testing.T) {
	// For N=21 every number up to 20 is a single token and 21 is
	// "vinte e um": 23 tokens total, one connective.
	out, err := runCommand(t, "count", "-n", "21", "--json")
	require.NoError(t, err)

	var got struct {
		TotalTokens int64            `json:"total_tokens"`
		Connectives int64            `json:"connectives"`
		Frequencies map[string]int64 `json:"frequencies"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))

	assert.Equal(t, int64(23), got.TotalTokens)
	assert.Equal(t, int64(1), got.Connectives)
	assert.Equal(t, int64(1), got.Frequencies["e"])
}

func TestValidateCmd_TotalsMatchDirectCount(t *testing.T) {
	out, err := runCommand(t, "validate", "-n", "21", "--json")
	require.NoError(t, err)

	var got struct {
		Passed      bool  `json:"validation_passed"`
		TotalDirect int64 `json:"total_tokens_direct"`
		TotalFast   int64 `json:"total_tokens_fast"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))

	assert.True(t, got.Passed)
	assert.Equal(t, int64(23), got.TotalDirect)
	assert.Equal(t, got.TotalDirect, got.TotalFast)
}

func TestWordsCmd(t *testing.T) {
	out, err := runCommand(t, "words", "21", "--json")
	require.NoError(t, err)

	var got []struct {
		N    int64  `json:"n"`
		Text string `json:"text"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))

	require.Len(t, got, 1)
	assert.Equal(t, "vinte e um", got[0].Text)
}
