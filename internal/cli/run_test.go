package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/panemux/internal/domain/entity"
	"github.com/bnema/panemux/internal/infrastructure/config"
)

func writeScript(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func runOpts(paths ...string) RunOptions {
	return RunOptions{Paths: paths, Width: 80, Height: 24}
}

func TestRunScripts_LineScript(t *testing.T) {
	path := writeScript(t, "layout.pmx", `# editor and shell
split vertical
focus up
`)
	var out bytes.Buffer
	require.NoError(t, RunScripts(context.Background(), config.DefaultConfig(), runOpts(path), &out))
	assert.Equal(t, "view v0 focus p0\np0 0 0 80 12\np1 0 12 80 12\n", out.String())
}

func TestRunScripts_Trace(t *testing.T) {
	path := writeScript(t, "trace.pmx", "split h\nfocus-pane ghost\n")
	opts := runOpts(path)
	opts.Trace = true

	var out bytes.Buffer
	err := RunScripts(context.Background(), config.DefaultConfig(), opts, &out)
	require.ErrorIs(t, err, entity.ErrInvalidTarget)
	assert.Contains(t, out.String(), "> split horizontal\nview v0 focus p1\np0 0 0 40 24\np1 40 0 40 24\n")
	assert.Contains(t, out.String(), "> focus-pane ghost\n# ")
	assert.Contains(t, err.Error(), "trace.pmx:2:")
}

func TestRunScripts_PartialResizeContinues(t *testing.T) {
	path := writeScript(t, "clamp.pmx", "split v\nresize p0 down 30\nfocus up\n")

	var out bytes.Buffer
	require.NoError(t, RunScripts(context.Background(), config.DefaultConfig(), runOpts(path), &out))
	assert.Contains(t, out.String(), "clamp.pmx:2:")
	assert.Contains(t, out.String(), "view v0 focus p0\np0 0 0 80 23\np1 0 23 80 1\n")
}

func TestRunScripts_Many(t *testing.T) {
	good := writeScript(t, "good.pmx", "split h\nsplit h\n")
	js := writeScript(t, "layout.js", `mux.split("v"); mux.newView("logs");`)
	bad := writeScript(t, "bad.pmx", "split sideways\n")

	var out bytes.Buffer
	err := RunScripts(context.Background(), config.DefaultConfig(), runOpts(good, bad, js), &out)
	require.Error(t, err)

	s := out.String()
	goodAt := bytes.Index(out.Bytes(), []byte("== "+good))
	badAt := bytes.Index(out.Bytes(), []byte("== "+bad))
	jsAt := bytes.Index(out.Bytes(), []byte("== "+js))
	require.True(t, goodAt >= 0 && badAt > goodAt && jsAt > badAt, "reports keep argument order:\n%s", s)

	assert.Contains(t, s, "p2 54 0 26 24")
	assert.Contains(t, s, "error: "+bad+":1:")
	assert.Contains(t, s, "view v1 focus p2\np2 0 0 80 24\n")
}

func TestRunScripts_UsesConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Layout.MinPaneHeight = 5
	path := writeScript(t, "min.pmx", "split v\nresize p0 down 30\n")

	var out bytes.Buffer
	require.NoError(t, RunScripts(context.Background(), cfg, runOpts(path), &out))
	assert.Contains(t, out.String(), "p0 0 0 80 19\np1 0 19 80 5\n")
}

func TestRunScripts_MissingFile(t *testing.T) {
	var out bytes.Buffer
	err := RunScripts(context.Background(), config.DefaultConfig(), runOpts(filepath.Join(t.TempDir(), "nope.pmx")), &out)
	require.Error(t, err)
}

func TestPaneOptions(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Layout.MinPaneWidth = 4
	cfg.Focus.PreferRecent = false
	cfg.Debug.ValidateTree = true

	opts := EngineOptions(cfg, 100, 40)
	assert.Equal(t, entity.Size{W: 4, H: 1}, opts.Panes.MinSize)
	assert.False(t, opts.Panes.PreferRecent)
	assert.True(t, opts.Validate)
	assert.Equal(t, 100, opts.Width)
}

func TestTerminalSizeFallsBackToConfig(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "notatty")
	require.NoError(t, err)
	defer f.Close()

	w, h := TerminalSize(config.DefaultConfig(), int(f.Fd()))
	assert.Equal(t, 80, w)
	assert.Equal(t, 24, h)
}
