package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/panemux/internal/domain/entity"
)

// execute runs the root command against an isolated config directory.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() {
		runWidth, runHeight, runTrace, runParallel = 0, 0, false, 0
		configInitForce, configSchemaOut, configKeysJSON = false, false, false
		configKeysSection = ""
		appOpts.ConfigDir = ""
		app = nil
	})

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--config", t.TempDir()}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRunCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.pmx")
	require.NoError(t, os.WriteFile(path, []byte("split horizontal\nfocus left\n"), 0o600))

	out, err := execute(t, "run", "-W", "80", "-H", "24", path)
	require.NoError(t, err)
	assert.Equal(t, "view v0 focus p0\np0 0 0 40 24\np1 40 0 40 24\n", out)
}

func TestRunCommand_ReportsScriptError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.pmx")
	require.NoError(t, os.WriteFile(path, []byte("focus-pane ghost\n"), 0o600))

	_, err := execute(t, "run", "-W", "80", "-H", "24", path)
	require.ErrorIs(t, err, entity.ErrInvalidTarget)
}

func TestConfigKeysCommand(t *testing.T) {
	out, err := execute(t, "config", "keys", "--section", "layout", "--json")
	require.NoError(t, err)

	var keys []entity.ConfigKeyInfo
	require.NoError(t, json.Unmarshal([]byte(out), &keys))
	require.NotEmpty(t, keys)
	for _, k := range keys {
		assert.Equal(t, "Layout", k.Section)
	}
}

func TestConfigInitCommand(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, "--config", dir, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, ansi.Strip(out), "Wrote default config")
	assert.FileExists(t, filepath.Join(dir, "config.toml"))

	out, err = execute(t, "--config", dir, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, ansi.Strip(out), "already exists")
}
