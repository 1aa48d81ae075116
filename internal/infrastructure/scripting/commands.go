package scripting

import (
	"strings"

	"github.com/grafana/sobek"

	"github.com/bnema/panemux/internal/application/engine"
	"github.com/bnema/panemux/internal/domain/entity"
)

// split(direction, {pane, before, fixed, id})
func (b *binding) split(call sobek.FunctionCall) sobek.Value {
	dir, err := entity.ParseSplitDirection(strings.ToLower(call.Argument(0).String()))
	if err != nil {
		b.throwf("split: %v", err)
	}
	cmd := engine.Split{Direction: dir}
	if opts := b.options(call.Argument(1)); opts != nil {
		cmd.Pane = entity.PaneID(b.stringOpt(opts, "pane"))
		cmd.NewPane = entity.PaneID(b.stringOpt(opts, "id"))
		cmd.Fixed = b.intOpt(opts, "fixed", 0)
		if v := opts.Get("before"); v != nil && v.ToBoolean() {
			cmd.Placement = entity.PlaceBefore
		}
		if cmd.Fixed < 0 {
			b.throwf("split: fixed size %d is negative", cmd.Fixed)
		}
	}
	return b.apply(cmd)
}

// remove(pane?)
func (b *binding) remove(call sobek.FunctionCall) sobek.Value {
	return b.apply(engine.Remove{Pane: entity.PaneID(b.optString(call.Argument(0)))})
}

// resize(direction, delta, {pane, count})
func (b *binding) resize(call sobek.FunctionCall) sobek.Value {
	dir := b.direction("resize", call.Argument(0))
	if !present(call.Argument(1)) {
		b.throwf("resize: missing delta")
	}
	cmd := engine.Resize{Direction: dir, Delta: int(call.Argument(1).ToInteger()), Count: 1}
	if opts := b.options(call.Argument(2)); opts != nil {
		cmd.Pane = entity.PaneID(b.stringOpt(opts, "pane"))
		cmd.Count = b.intOpt(opts, "count", 1)
	}
	if cmd.Count < 1 {
		b.throwf("resize: count must be at least 1")
	}
	return b.apply(cmd)
}

// focus(direction, count?)
func (b *binding) focus(call sobek.FunctionCall) sobek.Value {
	dir := b.direction("focus", call.Argument(0))
	count := b.optInt(call.Argument(1), 1)
	if count < 1 {
		b.throwf("focus: count must be at least 1")
	}
	return b.apply(engine.FocusDirection{Direction: dir, Count: count})
}

// focusNext(step?)
func (b *binding) focusNext(call sobek.FunctionCall) sobek.Value {
	return b.apply(engine.FocusNext{Step: b.optInt(call.Argument(0), 1)})
}

// focusPane(id)
func (b *binding) focusPane(call sobek.FunctionCall) sobek.Value {
	if !present(call.Argument(0)) {
		b.throwf("focusPane: missing pane id")
	}
	return b.apply(engine.FocusPane{Pane: entity.PaneID(call.Argument(0).String())})
}

// click(x, y)
func (b *binding) click(call sobek.FunctionCall) sobek.Value {
	if !present(call.Argument(0)) || !present(call.Argument(1)) {
		b.throwf("click: expected x and y")
	}
	return b.apply(engine.FocusAt{X: int(call.Argument(0).ToInteger()), Y: int(call.Argument(1).ToInteger())})
}

// swap(a, b) or swap(b) to swap with the focused pane.
func (b *binding) swap(call sobek.FunctionCall) sobek.Value {
	first, second := call.Argument(0), call.Argument(1)
	switch {
	case !present(first):
		b.throwf("swap: missing pane id")
	case !present(second):
		return b.apply(engine.Swap{B: entity.PaneID(first.String())})
	}
	return b.apply(engine.Swap{A: entity.PaneID(first.String()), B: entity.PaneID(second.String())})
}

func (b *binding) zoom(sobek.FunctionCall) sobek.Value {
	return b.apply(engine.ToggleZoom{})
}

// newView(title?)
func (b *binding) newView(call sobek.FunctionCall) sobek.Value {
	return b.apply(engine.NewView{Title: b.optString(call.Argument(0))})
}

// closeView(id?)
func (b *binding) closeView(call sobek.FunctionCall) sobek.Value {
	return b.apply(engine.CloseView{View: entity.ViewID(b.optString(call.Argument(0)))})
}

// switchView(step?)
func (b *binding) switchView(call sobek.FunctionCall) sobek.Value {
	return b.apply(engine.SwitchView{Step: b.optInt(call.Argument(0), 1)})
}

// terminal(width, height)
func (b *binding) terminal(call sobek.FunctionCall) sobek.Value {
	if !present(call.Argument(0)) || !present(call.Argument(1)) {
		b.throwf("terminal: expected width and height")
	}
	return b.apply(engine.TerminalResize{
		Width:  int(call.Argument(0).ToInteger()),
		Height: int(call.Argument(1).ToInteger()),
	})
}

func present(v sobek.Value) bool {
	return v != nil && !sobek.IsUndefined(v) && !sobek.IsNull(v)
}

func (b *binding) direction(op string, v sobek.Value) entity.Direction {
	dir, err := entity.ParseDirection(strings.ToLower(v.String()))
	if err != nil {
		b.throwf("%s: %v", op, err)
	}
	return dir
}

func (b *binding) options(v sobek.Value) *sobek.Object {
	if !present(v) {
		return nil
	}
	return v.ToObject(b.rt)
}

func (b *binding) optString(v sobek.Value) string {
	if !present(v) {
		return ""
	}
	return v.String()
}

func (b *binding) optInt(v sobek.Value, def int) int {
	if !present(v) {
		return def
	}
	return int(v.ToInteger())
}

func (b *binding) stringOpt(o *sobek.Object, key string) string {
	return b.optString(o.Get(key))
}

func (b *binding) intOpt(o *sobek.Object, key string, def int) int {
	return b.optInt(o.Get(key), def)
}
