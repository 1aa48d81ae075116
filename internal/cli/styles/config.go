package styles

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
)

// ConfigRenderer renders config status messages with styled output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderPath renders the config file location and whether it exists.
func (r *ConfigRenderer) RenderPath(path string, exists bool) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	status := r.theme.SuccessStyle.Render("present")
	if !exists {
		status = r.theme.WarningStyle.Render("not created, defaults in use")
	}
	return fmt.Sprintf("\n  %s Config %s\n  %s %s\n",
		iconStyle.Render(IconConfig),
		r.theme.Subtle.Render(path),
		iconStyle.Render(IconInfo),
		status,
	)
}

// RenderWritten renders the message shown after writing a file.
func (r *ConfigRenderer) RenderWritten(what, path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)
	return fmt.Sprintf("\n  %s Wrote %s to %s\n",
		iconStyle.Render(IconCheck),
		r.theme.Highlight.Render(what),
		r.theme.Subtle.Render(filepath.Base(path)),
	)
}

// RenderExists renders the refusal to overwrite an existing file.
func (r *ConfigRenderer) RenderExists(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Warning)
	return fmt.Sprintf("\n  %s %s already exists\n  %s\n",
		iconStyle.Render(IconWarning),
		r.theme.Subtle.Render(path),
		r.theme.Subtle.Render("Run 'panemux config init --force' to overwrite it."),
	)
}

// RenderError renders an error message.
func (r *ConfigRenderer) RenderError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)
	return fmt.Sprintf("\n  %s %s\n", iconStyle.Render(IconX), r.theme.ErrorStyle.Render(fmt.Sprintf("Config error: %v", err)))
}
