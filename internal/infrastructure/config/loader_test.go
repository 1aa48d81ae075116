package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileName), []byte(content), filePerm))
}

func loadFrom(t *testing.T, dir string) (*Manager, error) {
	t.Helper()
	mgr, err := NewManagerAt(dir)
	require.NoError(t, err)
	return mgr, mgr.Load()
}

func TestSetDefaults(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	mgr.setDefaults()

	assert.Equal(t, 1, mgr.viper.GetInt("layout.min_pane_width"))
	assert.True(t, mgr.viper.GetBool("focus.prefer_recent"))
	assert.Equal(t, 80, mgr.viper.GetInt("terminal.width"))
	assert.Equal(t, "warn", mgr.viper.GetString("logging.level"))
}

func TestManager_LoadWithoutFileUsesDefaults(t *testing.T) {
	dir := t.TempDir()
	mgr, err := loadFrom(t, dir)
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig(), mgr.Get())
	assert.False(t, mgr.Exists())
	assert.Equal(t, filepath.Join(dir, configFileName), mgr.ConfigFile())
	_, statErr := os.Stat(mgr.ConfigFile())
	assert.True(t, os.IsNotExist(statErr), "loading must not create a config file")
}

func TestManager_LoadFromFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
[layout]
min_pane_width = 10
min_pane_height = 3

[focus]
prefer_recent = false

[resize]
step = 4

[logging]
level = "DEBUG"
format = "JSON"
`)

	mgr, err := loadFrom(t, dir)
	require.NoError(t, err)
	cfg := mgr.Get()

	assert.Equal(t, 10, cfg.Layout.MinPaneWidth)
	assert.Equal(t, 3, cfg.Layout.MinPaneHeight)
	assert.False(t, cfg.Focus.PreferRecent)
	assert.Equal(t, 4, cfg.Resize.Step)
	assert.Equal(t, 24, cfg.Terminal.Height, "unset keys keep their defaults")
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.True(t, mgr.Exists())
}

func TestManager_EnvironmentOverrides(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "[resize]\nstep = 4\n")
	t.Setenv("PANEMUX_RESIZE_STEP", "7")
	t.Setenv("PANEMUX_LOG_LEVEL", "trace")
	t.Setenv("PANEMUX_DEBUG_VALIDATE_TREE", "true")

	mgr, err := loadFrom(t, dir)
	require.NoError(t, err)
	cfg := mgr.Get()

	assert.Equal(t, 7, cfg.Resize.Step)
	assert.Equal(t, "trace", cfg.Logging.Level)
	assert.True(t, cfg.Debug.ValidateTree)
}

func TestManager_LoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "invalid toml", content: "[layout\nmin_pane_width = 1"},
		{name: "type mismatch", content: "[resize]\nstep = \"large\""},
		{name: "invalid minimum", content: "[layout]\nmin_pane_width = 0"},
		{name: "invalid level", content: "[logging]\nlevel = \"loud\""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeConfig(t, dir, tt.content)
			_, err := loadFrom(t, dir)
			require.Error(t, err)
		})
	}
}

func TestNormalizeConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = "  Info "
	cfg.Logging.Format = "xml"
	cfg.Logging.File = " /tmp/p.log "

	normalizeConfig(cfg)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, "/tmp/p.log", cfg.Logging.File)

	cfg.Logging.Level = ""
	normalizeConfig(cfg)
	assert.Equal(t, defaultLogLevel, cfg.Logging.Level)
}

func TestManager_GetReturnsCopy(t *testing.T) {
	mgr, err := loadFrom(t, t.TempDir())
	require.NoError(t, err)

	cfg := mgr.Get()
	cfg.Resize.Step = 99
	assert.Equal(t, defaultResizeStep, mgr.Get().Resize.Step)
}

func TestGetConfigDir_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg/config")
	t.Setenv("XDG_STATE_HOME", "/xdg/state")

	dir, err := GetConfigDir()
	require.NoError(t, err)
	assert.Equal(t, "/xdg/config/panemux", dir)

	file, err := GetConfigFile()
	require.NoError(t, err)
	assert.Equal(t, "/xdg/config/panemux/config.toml", file)

	logDir, err := GetLogDir()
	require.NoError(t, err)
	assert.Equal(t, "/xdg/state/panemux", logDir)
}
