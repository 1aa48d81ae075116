package styles_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/panemux/internal/cli/styles"
	"github.com/bnema/panemux/internal/domain/entity"
)

func TestConfigRenderer(t *testing.T) {
	r := styles.NewConfigRenderer(styles.NewTheme())

	out := ansi.Strip(r.RenderPath("/tmp/panemux/config.toml", false))
	assert.Contains(t, out, "/tmp/panemux/config.toml")
	assert.Contains(t, out, "defaults in use")

	out = ansi.Strip(r.RenderWritten("defaults", "/tmp/panemux/config.toml"))
	assert.Contains(t, out, "Wrote defaults to config.toml")

	assert.Contains(t, ansi.Strip(r.RenderExists("/x/config.toml")), "--force")
	assert.Contains(t, ansi.Strip(r.RenderError(errors.New("boom"))), "Config error: boom")
}

func TestConfigSchemaRenderer(t *testing.T) {
	r := styles.NewConfigSchemaRenderer(styles.NewTheme())
	keys := []entity.ConfigKeyInfo{
		{Key: "resize.step", Type: "int", Default: "2", Range: ">=1", Section: "Resize"},
		{Key: "logging.level", Type: "string", Default: "warn", Values: []string{"debug", "warn"}, Section: "Logging"},
		{Key: "logging.file", Type: "string", Section: "Logging"},
	}

	out := ansi.Strip(r.Render(keys))
	require.Less(t, strings.Index(out, "Resize"), strings.Index(out, "Logging"), "sections keep first-seen order")
	assert.Contains(t, out, "Range: >=1")
	assert.Contains(t, out, "Values: debug, warn")
	assert.Contains(t, out, `logging.file  string  ""`)

	js, err := r.RenderJSON(keys)
	require.NoError(t, err)
	assert.Contains(t, js, `"key": "resize.step"`)

	assert.Contains(t, r.Render(nil), "No configuration keys")
}
