package config

import (
	"fmt"
	"strings"

	"github.com/bnema/panemux/internal/logging"
)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLayout(config)...)
	validationErrors = append(validationErrors, validateResize(config)...)
	validationErrors = append(validationErrors, validateTerminal(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

// Validate checks a configuration without loading it.
func Validate(config *Config) error {
	if config == nil {
		return fmt.Errorf("config is nil")
	}
	return validateConfig(config)
}

func validateLayout(config *Config) []string {
	var validationErrors []string
	if config.Layout.MinPaneWidth < 1 {
		validationErrors = append(validationErrors, "layout.min_pane_width must be at least 1")
	}
	if config.Layout.MinPaneHeight < 1 {
		validationErrors = append(validationErrors, "layout.min_pane_height must be at least 1")
	}
	return validationErrors
}

func validateResize(config *Config) []string {
	if config.Resize.Step < 1 {
		return []string{"resize.step must be at least 1"}
	}
	return nil
}

func validateTerminal(config *Config) []string {
	var validationErrors []string
	if config.Terminal.Width < 0 {
		validationErrors = append(validationErrors, "terminal.width must be non-negative")
	}
	if config.Terminal.Height < 0 {
		validationErrors = append(validationErrors, "terminal.height must be non-negative")
	}
	return validationErrors
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	if _, err := logging.ParseLevel(config.Logging.Level); err != nil {
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.level must be one of trace, debug, info, warn, error, disabled (got %q)", config.Logging.Level))
	}
	switch config.Logging.Format {
	case "console", "json":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.format must be console or json (got %q)", config.Logging.Format))
	}
	return validationErrors
}
