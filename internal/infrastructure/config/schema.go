package config

// Config represents the complete configuration for panemux.
type Config struct {
	// Layout controls pane minimum sizes.
	Layout LayoutConfig `mapstructure:"layout" yaml:"layout" toml:"layout" json:"layout"`
	// Focus controls directional focus navigation.
	Focus FocusConfig `mapstructure:"focus" yaml:"focus" toml:"focus" json:"focus"`
	// Resize controls interactive resizing in the preview.
	Resize   ResizeConfig   `mapstructure:"resize" yaml:"resize" toml:"resize" json:"resize"`
	Terminal TerminalConfig `mapstructure:"terminal" yaml:"terminal" toml:"terminal" json:"terminal"`
	Logging  LoggingConfig  `mapstructure:"logging" yaml:"logging" toml:"logging" json:"logging"`
	Debug    DebugConfig    `mapstructure:"debug" yaml:"debug" toml:"debug" json:"debug"`
}

// LayoutConfig holds the smallest size any pane may be given.
type LayoutConfig struct {
	MinPaneWidth  int `mapstructure:"min_pane_width" yaml:"min_pane_width" toml:"min_pane_width" json:"min_pane_width" jsonschema:"minimum=1,default=1"`
	MinPaneHeight int `mapstructure:"min_pane_height" yaml:"min_pane_height" toml:"min_pane_height" json:"min_pane_height" jsonschema:"minimum=1,default=1"`
}

// FocusConfig holds focus navigation preferences.
type FocusConfig struct {
	// PreferRecent breaks directional ties in favour of the most recently
	// focused pane.
	PreferRecent bool `mapstructure:"prefer_recent" yaml:"prefer_recent" toml:"prefer_recent" json:"prefer_recent" jsonschema:"default=true"`
}

// ResizeConfig holds interactive resize settings.
type ResizeConfig struct {
	// Step is the number of cells one resize key press moves a boundary.
	Step int `mapstructure:"step" yaml:"step" toml:"step" json:"step" jsonschema:"minimum=1,default=2"`
}

// TerminalConfig sets the bounds used when no terminal is attached.
type TerminalConfig struct {
	Width  int `mapstructure:"width" yaml:"width" toml:"width" json:"width" jsonschema:"minimum=0,default=80"`
	Height int `mapstructure:"height" yaml:"height" toml:"height" json:"height" jsonschema:"minimum=0,default=24"`
}

// LoggingConfig controls log verbosity and destination.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,enum=disabled"`
	Format string `mapstructure:"format" yaml:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
	// File is the log file used by the interactive preview. Empty means
	// panemux.log in the state directory.
	File string `mapstructure:"file" yaml:"file" toml:"file" json:"file"`
}

// DebugConfig holds developer options.
type DebugConfig struct {
	// ValidateTree checks tree and layout invariants after every command.
	ValidateTree bool `mapstructure:"validate_tree" yaml:"validate_tree" toml:"validate_tree" json:"validate_tree"`
}
