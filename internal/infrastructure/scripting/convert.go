package scripting

import (
	"github.com/bnema/panemux/internal/application/engine"
	"github.com/bnema/panemux/internal/domain/entity"
)

// Values handed to scripts are plain maps so property names stay
// lower-case and scripts can JSON.stringify them.

func rectObject(r entity.Rect) map[string]any {
	return map[string]any{"x": r.X, "y": r.Y, "w": r.W, "h": r.H}
}

func paneObjects(l *entity.Layout) []any {
	if l == nil {
		return []any{}
	}
	panes := make([]any, 0, len(l.Panes))
	for _, pr := range l.Panes {
		obj := rectObject(pr.Rect)
		obj["id"] = string(pr.PaneID)
		panes = append(panes, obj)
	}
	return panes
}

func resultObject(res *engine.Result) map[string]any {
	return map[string]any{
		"command": res.Command,
		"view":    string(res.ViewID),
		"focus":   string(res.Focus),
		"newPane": string(res.NewPaneID),
		"applied": res.Applied,
		"moved":   res.Moved,
		"zoomed":  res.Zoomed,
		"panes":   paneObjects(res.Layout),
	}
}
