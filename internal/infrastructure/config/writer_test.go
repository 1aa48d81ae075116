package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteConfigOrdered(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	require.NoError(t, WriteConfigOrdered(DefaultConfig(), path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	var sections []string
	for _, line := range strings.Split(string(content), "\n") {
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			sections = append(sections, line)
		}
	}
	assert.Equal(t, []string{"[debug]", "[focus]", "[layout]", "[logging]", "[resize]", "[terminal]"}, sections)

	var decoded Config
	require.NoError(t, toml.Unmarshal(content, &decoded))
	assert.Equal(t, *DefaultConfig(), decoded)
}

func TestSortTOMLSections(t *testing.T) {
	input := `title = 'x'

[zeta]
a = 1

[alpha]
b = 2
`
	want := `title = 'x'

[alpha]
b = 2

[zeta]
a = 1
`
	assert.Equal(t, want, sortTOMLSections(input))
}

func TestManager_WriteDefault(t *testing.T) {
	dir := t.TempDir()
	mgr, err := NewManagerAt(dir)
	require.NoError(t, err)

	path, err := mgr.WriteDefault(false)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, configFileName), path)

	_, err = mgr.WriteDefault(false)
	require.ErrorIs(t, err, ErrConfigExists, "existing file must not be overwritten")

	require.NoError(t, os.WriteFile(path, []byte("[resize]\nstep = 9\n"), filePerm))
	_, err = mgr.WriteDefault(true)
	require.NoError(t, err)

	require.NoError(t, mgr.Load())
	assert.Equal(t, defaultResizeStep, mgr.Get().Resize.Step)
}

func TestGenerateSchema(t *testing.T) {
	data, err := GenerateSchema()
	require.NoError(t, err)

	var schema map[string]any
	require.NoError(t, json.Unmarshal(data, &schema))
	assert.Equal(t, "panemux configuration", schema["title"])

	props, ok := schema["properties"].(map[string]any)
	require.True(t, ok, "schema must expand the root struct")
	for _, key := range []string{"layout", "focus", "resize", "terminal", "logging", "debug"} {
		assert.Contains(t, props, key)
	}
}

func TestManager_WriteSchemaFile(t *testing.T) {
	dir := t.TempDir()
	mgr, err := NewManagerAt(dir)
	require.NoError(t, err)

	path, err := mgr.WriteSchemaFile()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, schemaFileName), path)
	assert.FileExists(t, path)
}
