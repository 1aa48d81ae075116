package parser

import (
	"fmt"
	"strings"

	"github.com/bnema/panemux/internal/application/engine"
	"github.com/bnema/panemux/internal/domain/entity"
)

// Format renders a command as a script line that parses back to the same
// command.
func Format(cmd engine.Command) string {
	switch c := cmd.(type) {
	case engine.TerminalResize:
		return fmt.Sprintf("terminal %d %d", c.Width, c.Height)
	case engine.Split:
		parts := []string{"split"}
		if c.Pane != "" {
			parts = append(parts, string(c.Pane))
		}
		parts = append(parts, c.Direction.String())
		if c.Placement == entity.PlaceBefore {
			parts = append(parts, "before")
		}
		if c.Fixed > 0 {
			parts = append(parts, fmt.Sprintf("fixed=%d", c.Fixed))
		}
		if c.NewPane != "" {
			parts = append(parts, "as="+string(c.NewPane))
		}
		return strings.Join(parts, " ")
	case engine.Remove:
		return joinNonEmpty("remove", string(c.Pane))
	case engine.Resize:
		s := joinNonEmpty("resize", string(c.Pane)) + fmt.Sprintf(" %s %d", c.Direction, c.Delta)
		if c.Count > 1 {
			s += fmt.Sprintf(" %d", c.Count)
		}
		return s
	case engine.FocusDirection:
		if c.Count > 1 {
			return fmt.Sprintf("focus %s %d", c.Direction, c.Count)
		}
		return fmt.Sprintf("focus %s", c.Direction)
	case engine.FocusNext:
		return fmt.Sprintf("focus-next %d", c.Step)
	case engine.FocusPane:
		return "focus-pane " + string(c.Pane)
	case engine.FocusAt:
		return fmt.Sprintf("click %d %d", c.X, c.Y)
	case engine.Swap:
		return joinNonEmpty("swap", string(c.A), string(c.B))
	case engine.ToggleZoom:
		return "zoom"
	case engine.NewView:
		return joinNonEmpty("view-new", c.Title)
	case engine.CloseView:
		return joinNonEmpty("view-close", string(c.View))
	case engine.SwitchView:
		return fmt.Sprintf("view-switch %d", c.Step)
	}
	return cmd.Name()
}

func joinNonEmpty(parts ...string) string {
	out := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " ")
}
