package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"
)

// GenerateSchema returns the JSON schema of the configuration file.
func GenerateSchema() ([]byte, error) {
	r := &jsonschema.Reflector{
		FieldNameTag:   "toml",
		ExpandedStruct: true,
	}
	schema := r.Reflect(&Config{})

	schema.ID = "https://github.com/bnema/panemux/config.schema.json"
	schema.Title = "panemux configuration"
	schema.Description = "Configuration schema for panemux, a terminal pane layout engine"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}

// WriteSchemaFile writes config.schema.json next to the config file and
// returns its path.
func (m *Manager) WriteSchemaFile() (string, error) {
	data, err := GenerateSchema()
	if err != nil {
		return "", err
	}
	path := filepath.Join(m.dir, schemaFileName)
	if err := os.MkdirAll(m.dir, dirPerm); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, filePerm); err != nil {
		return "", fmt.Errorf("failed to write schema file: %w", err)
	}
	return path, nil
}
