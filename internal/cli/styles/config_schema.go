package styles

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/panemux/internal/domain/entity"
)

// ConfigSchemaRenderer renders the configuration key reference.
type ConfigSchemaRenderer struct {
	theme *Theme
}

// NewConfigSchemaRenderer creates a new ConfigSchemaRenderer.
func NewConfigSchemaRenderer(theme *Theme) *ConfigSchemaRenderer {
	return &ConfigSchemaRenderer{theme: theme}
}

// Render renders keys grouped by section, sections in the order they first
// appear.
func (r *ConfigSchemaRenderer) Render(keys []entity.ConfigKeyInfo) string {
	if len(keys) == 0 {
		return r.theme.Subtle.Render("No configuration keys found")
	}

	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	parts := []string{
		fmt.Sprintf("%s %s", iconStyle.Render(IconConfig), r.theme.Title.Render("Config Reference")),
		"",
	}

	var order []string
	sections := make(map[string][]entity.ConfigKeyInfo)
	for _, key := range keys {
		if _, seen := sections[key.Section]; !seen {
			order = append(order, key.Section)
		}
		sections[key.Section] = append(sections[key.Section], key)
	}
	for _, name := range order {
		parts = append(parts, r.renderSection(name, sections[name]), "")
	}
	return strings.Join(parts, "\n")
}

// RenderJSON renders keys as indented JSON.
func (*ConfigSchemaRenderer) RenderJSON(keys []entity.ConfigKeyInfo) (string, error) {
	data, err := json.MarshalIndent(keys, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal schema: %w", err)
	}
	return string(data), nil
}

func (r *ConfigSchemaRenderer) renderSection(name string, keys []entity.ConfigKeyInfo) string {
	lines := []string{r.theme.Subtitle.Render(name)}
	for _, key := range keys {
		lines = append(lines, r.renderKey(key))
	}
	return r.theme.Box.PaddingTop(0).Render(strings.Join(lines, "\n"))
}

func (r *ConfigSchemaRenderer) renderKey(key entity.ConfigKeyInfo) string {
	defaultValue := key.Default
	if defaultValue == "" {
		defaultValue = `""`
	}
	lines := []string{
		fmt.Sprintf("%s  %s  %s",
			r.theme.Normal.Bold(true).Render(key.Key),
			r.theme.Subtle.Render(key.Type),
			lipgloss.NewStyle().Foreground(r.theme.Accent).Render(defaultValue),
		),
		"  " + r.theme.Subtle.Render(key.Description),
	}
	switch {
	case len(key.Values) > 0:
		lines = append(lines, "  "+r.theme.Normal.Render("Values: "+strings.Join(key.Values, ", ")))
	case key.Range != "":
		lines = append(lines, "  "+r.theme.Normal.Render("Range: "+key.Range))
	}
	return strings.Join(lines, "\n")
}
