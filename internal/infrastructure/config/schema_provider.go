package config

import (
	"strconv"

	"github.com/bnema/panemux/internal/domain/entity"
)

// Section names for grouping config keys.
const (
	SectionLayout   = "Layout"
	SectionFocus    = "Focus"
	SectionResize   = "Resize"
	SectionTerminal = "Terminal"
	SectionLogging  = "Logging"
	SectionDebug    = "Debug"
)

// SchemaProvider implements port.ConfigSchemaProvider.
type SchemaProvider struct{}

// NewSchemaProvider creates a new SchemaProvider.
func NewSchemaProvider() *SchemaProvider {
	return &SchemaProvider{}
}

// GetSchema returns all configuration keys with their metadata.
func (p *SchemaProvider) GetSchema() []entity.ConfigKeyInfo {
	defaults := DefaultConfig()

	keys := make([]entity.ConfigKeyInfo, 0, 10)
	keys = append(keys, p.getLayoutKeys(defaults)...)
	keys = append(keys, p.getFocusKeys(defaults)...)
	keys = append(keys, p.getResizeKeys(defaults)...)
	keys = append(keys, p.getTerminalKeys(defaults)...)
	keys = append(keys, p.getLoggingKeys(defaults)...)
	keys = append(keys, p.getDebugKeys(defaults)...)
	return keys
}

func (*SchemaProvider) getLayoutKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "layout.min_pane_width",
			Type:        "int",
			Default:     strconv.Itoa(defaults.Layout.MinPaneWidth),
			Description: "Smallest width in cells a resize may leave a pane",
			Range:       ">=1",
			Section:     SectionLayout,
		},
		{
			Key:         "layout.min_pane_height",
			Type:        "int",
			Default:     strconv.Itoa(defaults.Layout.MinPaneHeight),
			Description: "Smallest height in cells a resize may leave a pane",
			Range:       ">=1",
			Section:     SectionLayout,
		},
	}
}

func (*SchemaProvider) getFocusKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "focus.prefer_recent",
			Type:        "bool",
			Default:     strconv.FormatBool(defaults.Focus.PreferRecent),
			Description: "Break directional focus ties in favour of the most recently focused pane",
			Section:     SectionFocus,
		},
	}
}

func (*SchemaProvider) getResizeKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "resize.step",
			Type:        "int",
			Default:     strconv.Itoa(defaults.Resize.Step),
			Description: "Cells moved by one resize key press in the preview",
			Range:       ">=1",
			Section:     SectionResize,
		},
	}
}

func (*SchemaProvider) getTerminalKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "terminal.width",
			Type:        "int",
			Default:     strconv.Itoa(defaults.Terminal.Width),
			Description: "Columns used when no terminal is attached",
			Range:       ">=0",
			Section:     SectionTerminal,
		},
		{
			Key:         "terminal.height",
			Type:        "int",
			Default:     strconv.Itoa(defaults.Terminal.Height),
			Description: "Rows used when no terminal is attached",
			Range:       ">=0",
			Section:     SectionTerminal,
		},
	}
}

func (*SchemaProvider) getLoggingKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "logging.level",
			Type:        "string",
			Default:     defaults.Logging.Level,
			Description: "Log verbosity level",
			Values:      []string{"trace", "debug", "info", "warn", "error", "disabled"},
			Section:     SectionLogging,
		},
		{
			Key:         "logging.format",
			Type:        "string",
			Default:     defaults.Logging.Format,
			Description: "Log output format",
			Values:      []string{"console", "json"},
			Section:     SectionLogging,
		},
		{
			Key:         "logging.file",
			Type:        "string",
			Default:     defaults.Logging.File,
			Description: "Log file for the interactive preview (empty: state directory)",
			Section:     SectionLogging,
		},
	}
}

func (*SchemaProvider) getDebugKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "debug.validate_tree",
			Type:        "bool",
			Default:     strconv.FormatBool(defaults.Debug.ValidateTree),
			Description: "Check tree and layout invariants after every command",
			Section:     SectionDebug,
		},
	}
}
