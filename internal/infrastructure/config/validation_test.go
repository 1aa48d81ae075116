package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults are valid", mutate: func(*Config) {}},
		{name: "zero width", mutate: func(c *Config) { c.Layout.MinPaneWidth = 0 }, wantErr: "layout.min_pane_width"},
		{name: "zero height", mutate: func(c *Config) { c.Layout.MinPaneHeight = 0 }, wantErr: "layout.min_pane_height"},
		{name: "zero step", mutate: func(c *Config) { c.Resize.Step = 0 }, wantErr: "resize.step"},
		{name: "negative terminal", mutate: func(c *Config) { c.Terminal.Width = -1 }, wantErr: "terminal.width"},
		{name: "zero terminal is allowed", mutate: func(c *Config) { c.Terminal.Height = 0 }},
		{name: "unknown level", mutate: func(c *Config) { c.Logging.Level = "chatty" }, wantErr: "logging.level"},
		{name: "unknown format", mutate: func(c *Config) { c.Logging.Format = "xml" }, wantErr: "logging.format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := validateConfig(cfg)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateConfig_CollectsAllErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Layout.MinPaneWidth = 0
	cfg.Resize.Step = 0

	err := Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "layout.min_pane_width")
	assert.Contains(t, err.Error(), "resize.step")

	require.Error(t, Validate(nil))
}
