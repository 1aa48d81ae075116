package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Tab is one entry of the view tab bar.
type Tab struct {
	Label string
	Panes int
}

// TabsModel represents the horizontal view tab bar.
type TabsModel struct {
	Tabs   []Tab
	Active int
	Width  int
	theme  *Theme
}

// NewTabs creates a tab bar.
func NewTabs(theme *Theme, tabs ...Tab) TabsModel {
	return TabsModel{
		Tabs:  tabs,
		theme: theme,
	}
}

// SetActive sets the active tab index.
func (m *TabsModel) SetActive(index int) {
	if index >= 0 && index < len(m.Tabs) {
		m.Active = index
	}
}

// View renders the tab bar, each tab labelled with its pane count.
func (m TabsModel) View() string {
	tabs := make([]string, 0, len(m.Tabs))
	for i, tab := range m.Tabs {
		label := fmt.Sprintf("%d:%s", i+1, tab.Label)
		if tab.Panes > 1 {
			label += " " + formatCount(tab.Panes)
		}

		style := m.theme.InactiveTab
		if i == m.Active {
			style = m.theme.ActiveTab
		}
		tabs = append(tabs, style.Render(label))
	}

	gap := lipgloss.NewStyle().
		Foreground(m.theme.Border).
		Render(" ")

	row := lipgloss.JoinHorizontal(lipgloss.Top, join(tabs, gap)...)
	if m.Width > 0 {
		return m.theme.TabBar.Width(m.Width).Render(ansi.Truncate(row, m.Width, ""))
	}
	return m.theme.TabBar.Render(row)
}

// join inserts a separator between items.
func join(items []string, sep string) []string {
	if len(items) == 0 {
		return items
	}
	result := make([]string, 0, len(items)*2-1)
	for i, item := range items {
		if i > 0 {
			result = append(result, sep)
		}
		result = append(result, item)
	}
	return result
}

// formatCount formats a pane count for display.
func formatCount(n int) string {
	if n >= 100 {
		return "[99+]"
	}
	return fmt.Sprintf("[%d]", n)
}
