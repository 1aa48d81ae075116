package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSchemaProvider_GetSchema(t *testing.T) {
	keys := NewSchemaProvider().GetSchema()

	seen := make(map[string]bool, len(keys))
	for _, k := range keys {
		assert.False(t, seen[k.Key], "duplicate key %s", k.Key)
		seen[k.Key] = true
		assert.NotEmpty(t, k.Type, k.Key)
		assert.NotEmpty(t, k.Description, k.Key)
		assert.NotEmpty(t, k.Section, k.Key)
		assert.True(t, strings.Contains(k.Key, "."), "key %s must be dotted", k.Key)
	}

	for _, key := range []string{
		"layout.min_pane_width", "layout.min_pane_height", "focus.prefer_recent", "resize.step",
		"terminal.width", "terminal.height", "logging.level", "logging.format", "logging.file",
		"debug.validate_tree",
	} {
		assert.True(t, seen[key], "missing key %s", key)
	}
}

func TestSchemaProvider_DefaultsMatchConfig(t *testing.T) {
	for _, k := range NewSchemaProvider().GetSchema() {
		switch k.Key {
		case "resize.step":
			assert.Equal(t, "2", k.Default)
		case "focus.prefer_recent":
			assert.Equal(t, "true", k.Default)
		case "logging.level":
			assert.Equal(t, defaultLogLevel, k.Default)
			assert.Contains(t, k.Values, k.Default)
		}
	}
}
