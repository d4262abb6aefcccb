package commands

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) error {
	t.Helper()
	cmd := New()
	cmd.SetArgs(args)
	return cmd.Execute()
}

func TestCommandTree(t *testing.T) {
	cmd := New()
	for _, path := range [][]string{
		{"entry", "add"}, {"entry", "list"}, {"entry", "show"}, {"entry", "edit"}, {"entry", "delete"},
		{"session", "add"}, {"session", "list"},
		{"question", "list"}, {"question", "add"}, {"question", "edit"},
		{"question", "delete"}, {"question", "move"}, {"question", "reset"},
		{"stats"}, {"report"}, {"settings", "get"}, {"settings", "set"},
		{"export"}, {"reset"}, {"key"}, {"info"}, {"version"},
	} {
		found, _, err := cmd.Find(path)
		require.NoError(t, err, path)
		assert.Equal(t, path[len(path)-1], found.Name())
	}
}

func TestEntryRoundTripThroughExport(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("MEDITARY_PATH", filepath.Join(dir, "db"))
	t.Setenv("MEDITARY_CONFIG_PATH", dir)

	require.NoError(t, run(t, "entry", "add", "-a", "concentration=4", "-a", "sleepy=no", "--duration", "20m", "--on", "2025-12-19"))
	require.NoError(t, run(t, "session", "add", "15m", "--on", "2025-12-19"))
	require.NoError(t, run(t, "settings", "set", "--language", "pt"))

	out := filepath.Join(dir, "export.json")
	require.NoError(t, run(t, "export", "--file", out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	var snap struct {
		DeviceID string `json:"deviceId"`
		Settings struct {
			Language string `json:"language"`
		} `json:"settings"`
		Entries []struct {
			Date            string `json:"date"`
			DurationMinutes int    `json:"durationMinutes"`
		} `json:"entries"`
		Sessions []struct {
			DurationMinutes int `json:"durationMinutes"`
		} `json:"sessions"`
	}
	require.NoError(t, json.Unmarshal(data, &snap))
	assert.NotEmpty(t, snap.DeviceID)
	assert.Equal(t, "pt", snap.Settings.Language)
	require.Len(t, snap.Entries, 1)
	assert.Equal(t, "2025-12-19", snap.Entries[0].Date)
	assert.Equal(t, 20, snap.Entries[0].DurationMinutes)
	require.Len(t, snap.Sessions, 1)
	assert.Equal(t, 15, snap.Sessions[0].DurationMinutes)
}

func TestInvalidInputIsReported(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("MEDITARY_PATH", filepath.Join(dir, "db"))
	t.Setenv("MEDITARY_CONFIG_PATH", dir)

	assert.Error(t, run(t, "entry", "add", "-a", "concentration=9"))
	assert.Error(t, run(t, "session", "add", "0m"))
	assert.Error(t, run(t, "reset"))
	assert.NoError(t, run(t, "--json", "entry", "add", "-a", "concentration=9"), "--json reports errors on stdout")
}

// shellFields splits a command line on spaces, honoring double quotes.
func shellFields(line string) []string {
	var out []string
	var cur strings.Builder
	quoted, started := false, false
	for _, r := range line {
		switch {
		case r == '"':
			quoted = !quoted
			started = true
		case r == ' ' && !quoted:
			if started {
				out = append(out, cur.String())
				cur.Reset()
				started = false
			}
		default:
			cur.WriteRune(r)
			started = true
		}
	}
	if started {
		out = append(out, cur.String())
	}
	return out
}

func TestEntryAddExamplesRun(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("MEDITARY_PATH", filepath.Join(dir, "db"))
	t.Setenv("MEDITARY_CONFIG_PATH", dir)

	add, _, err := New().Find([]string{"entry", "add"})
	require.NoError(t, err)
	require.NotEmpty(t, strings.TrimSpace(add.Example))

	for _, line := range strings.Split(strings.TrimSpace(add.Example), "\n") {
		args := shellFields(line)
		require.Equal(t, "meditary", args[0])
		assert.NoError(t, run(t, args[1:]...), line)
	}
}
