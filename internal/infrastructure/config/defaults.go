package config

// Default configuration constants
const (
	defaultMinPaneWidth  = 1 // cells
	defaultMinPaneHeight = 1 // cells

	defaultResizeStep = 2 // cells per key press

	defaultTerminalWidth  = 80
	defaultTerminalHeight = 24

	defaultLogLevel  = "warn"
	defaultLogFormat = "console"
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Layout: LayoutConfig{
			MinPaneWidth:  defaultMinPaneWidth,
			MinPaneHeight: defaultMinPaneHeight,
		},
		Focus: FocusConfig{
			PreferRecent: true,
		},
		Resize: ResizeConfig{
			Step: defaultResizeStep,
		},
		Terminal: TerminalConfig{
			Width:  defaultTerminalWidth,
			Height: defaultTerminalHeight,
		},
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		Debug: DebugConfig{
			ValidateTree: false,
		},
	}
}
