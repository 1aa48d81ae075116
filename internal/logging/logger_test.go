package logging

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel(" Debug ")
	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, lvl)

	_, err = ParseLevel("loud")
	require.Error(t, err)
	_, err = ParseLevel("")
	require.Error(t, err)
}

func TestConfigFrom(t *testing.T) {
	cfg := ConfigFrom("error", "json")
	assert.Equal(t, zerolog.ErrorLevel, cfg.Level)
	assert.Equal(t, "json", cfg.Format)

	cfg = ConfigFrom("nope", "xml")
	assert.Equal(t, DefaultConfig().Level, cfg.Level)
	assert.Equal(t, "console", cfg.Format)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("PANEMUX_LOG_LEVEL", "trace")
	t.Setenv("PANEMUX_LOG_FORMAT", "json")

	cfg := ApplyEnv(ConfigFrom("info", "console"))
	assert.Equal(t, zerolog.TraceLevel, cfg.Level)
	assert.Equal(t, "json", cfg.Format)
}

func TestContextFields(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: zerolog.DebugLevel, Format: "json", Output: &buf})

	ctx := WithContext(context.Background(), logger)
	ctx = WithComponent(ctx, "engine")
	ctx = WithViewID(ctx, "v0")
	ctx = WithPaneID(ctx, "p1")
	ctx = WithScript(ctx, "demo.pmx")
	FromContext(ctx).Debug().Msg("hello")

	out := buf.String()
	for _, want := range []string{`"component":"engine"`, `"view_id":"v0"`, `"pane_id":"p1"`, `"script":"demo.pmx"`, `"message":"hello"`} {
		assert.Contains(t, out, want)
	}
}

func TestFromContextWithoutLoggerIsDisabled(t *testing.T) {
	assert.Equal(t, zerolog.Disabled, FromContext(context.Background()).GetLevel())
}

func TestLogRotator_Rotates(t *testing.T) {
	dir := t.TempDir()
	r, err := NewLogRotator(RotatorOptions{Dir: dir, MaxSizeMB: 1, MaxBackups: 1})
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })

	line := strings.Repeat("x", 600*1024)
	for range 3 {
		_, err := r.Write([]byte(line))
		require.NoError(t, err)
	}

	backups, err := r.Backups()
	require.NoError(t, err)
	assert.Len(t, backups, 1, "older backups beyond MaxBackups are removed")

	info, err := os.Stat(filepath.Join(dir, "panemux.log"))
	require.NoError(t, err)
	assert.Equal(t, int64(len(line)), info.Size())
}

func TestLogRotator_Compress(t *testing.T) {
	dir := t.TempDir()
	r, err := NewLogRotator(RotatorOptions{Dir: dir, BaseName: "play.log", MaxSizeMB: 1, Compress: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })

	line := strings.Repeat("y", 700*1024)
	for range 2 {
		_, err := r.Write([]byte(line))
		require.NoError(t, err)
	}

	backups, err := r.Backups()
	require.NoError(t, err)
	require.Len(t, backups, 1)
	assert.True(t, strings.HasSuffix(backups[0], ".gz"))
}

func TestNewFileLogger(t *testing.T) {
	dir := t.TempDir()
	logger, r, err := NewFileLogger(Config{Level: zerolog.InfoLevel}, RotatorOptions{Dir: filepath.Join(dir, "logs")})
	require.NoError(t, err)

	logger.Info().Str("view_id", "v0").Msg("started")
	require.NoError(t, r.Close())

	data, err := os.ReadFile(r.Path())
	require.NoError(t, err)
	assert.Contains(t, string(data), `"view_id":"v0"`)
}
