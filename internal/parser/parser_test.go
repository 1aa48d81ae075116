package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/panemux/internal/application/engine"
	"github.com/bnema/panemux/internal/domain/entity"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		line string
		want engine.Command
	}{
		{"terminal 80 24", engine.TerminalResize{Width: 80, Height: 24}},
		{"split vertical", engine.Split{Direction: entity.SplitVertical}},
		{"split p0 h", engine.Split{Pane: "p0", Direction: entity.SplitHorizontal}},
		{"split h v", engine.Split{Pane: "h", Direction: entity.SplitVertical}},
		{"split p0 vertical before fixed=3 as=status", engine.Split{
			Pane: "p0", Direction: entity.SplitVertical, Placement: entity.PlaceBefore, Fixed: 3, NewPane: "status",
		}},
		{"SPLIT v after", engine.Split{Direction: entity.SplitVertical, Placement: entity.PlaceAfter}},
		{"remove", engine.Remove{}},
		{"remove p1", engine.Remove{Pane: "p1"}},
		{"close p1", engine.Remove{Pane: "p1"}},
		{"resize down 3", engine.Resize{Direction: entity.DirDown, Delta: 3, Count: 1}},
		{"resize p0 down 3", engine.Resize{Pane: "p0", Direction: entity.DirDown, Delta: 3, Count: 1}},
		{"resize p0 left -2 4", engine.Resize{Pane: "p0", Direction: entity.DirLeft, Delta: -2, Count: 4}},
		{"resize j 1 2", engine.Resize{Direction: entity.DirDown, Delta: 1, Count: 2}},
		{"resize k l 5", engine.Resize{Pane: "k", Direction: entity.DirRight, Delta: 5, Count: 1}},
		{"focus right", engine.FocusDirection{Direction: entity.DirRight, Count: 1}},
		{"focus h 3", engine.FocusDirection{Direction: entity.DirLeft, Count: 3}},
		{"focus-next", engine.FocusNext{Step: 1}},
		{"focus-next -2", engine.FocusNext{Step: -2}},
		{"focus-prev", engine.FocusNext{Step: -1}},
		{"focus-pane p2", engine.FocusPane{Pane: "p2"}},
		{"click 10 4", engine.FocusAt{X: 10, Y: 4}},
		{"swap p0 p2", engine.Swap{A: "p0", B: "p2"}},
		{"swap p2", engine.Swap{B: "p2"}},
		{"zoom", engine.ToggleZoom{}},
		{"view-new", engine.NewView{}},
		{"view-new build logs", engine.NewView{Title: "build logs"}},
		{"view-close", engine.CloseView{}},
		{"view-close v1", engine.CloseView{View: "v1"}},
		{"view-switch", engine.SwitchView{Step: 1}},
		{"view-switch -1", engine.SwitchView{Step: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := ParseLine(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseLine_Errors(t *testing.T) {
	tests := []struct {
		line string
		want error
	}{
		{"explode", ErrUnknownCommand},
		{"terminal 80", ErrArguments},
		{"terminal 80 -1", ErrArguments},
		{"terminal wide 24", ErrArguments},
		{"split", ErrArguments},
		{"split p0", ErrArguments},
		{"split p0 diagonal", ErrArguments},
		{"split v fixed=-1", ErrArguments},
		{"split v width=3", ErrArguments},
		{"split v sideways", ErrArguments},
		{"split v as=", ErrArguments},
		{"remove p0 p1", ErrArguments},
		{"resize down", ErrArguments},
		{"resize p0 down", ErrArguments},
		{"resize p0 down x", ErrArguments},
		{"resize p0 down 1 0", ErrArguments},
		{"focus", ErrArguments},
		{"focus forward", ErrArguments},
		{"focus left 0", ErrArguments},
		{"focus-next one", ErrArguments},
		{"focus-pane", ErrArguments},
		{"click 1", ErrArguments},
		{"swap", ErrArguments},
		{"zoom now", ErrArguments},
		{"view-switch 1 2", ErrArguments},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			_, err := ParseLine(tt.line)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParse_SkipsCommentsAndBlankLines(t *testing.T) {
	script := `# demo layout
terminal 80 24

split vertical   # bottom pane
  focus up
`
	stmts, err := ParseString("demo.pmx", script)
	require.NoError(t, err)
	require.Len(t, stmts, 3)

	assert.Equal(t, 2, stmts[0].Line)
	assert.Equal(t, 4, stmts[1].Line)
	assert.Equal(t, "split vertical", stmts[1].Text)
	assert.Equal(t, engine.FocusDirection{Direction: entity.DirUp, Count: 1}, stmts[2].Command)
}

func TestParse_ReportsLine(t *testing.T) {
	stmts, err := ParseString("bad.pmx", "split v\n\nresize p0 sideways 2\nzoom\n")
	require.Error(t, err)
	assert.Len(t, stmts, 1, "statements before the error are returned")

	var perr *Error
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 3, perr.Line)
	assert.Equal(t, "bad.pmx", perr.Source)
	assert.ErrorIs(t, err, ErrArguments)
	assert.True(t, strings.HasPrefix(err.Error(), "bad.pmx:3:"))
}

func TestFormat_RoundTrips(t *testing.T) {
	lines := []string{
		"terminal 120 40",
		"split vertical",
		"split p0 horizontal before fixed=3 as=bar",
		"remove",
		"remove p1",
		"resize p0 down 3",
		"resize left -2 4",
		"focus right",
		"focus up 2",
		"focus-next -1",
		"focus-pane p2",
		"click 3 4",
		"swap p0 p1",
		"swap p1",
		"zoom",
		"view-new build logs",
		"view-close v1",
		"view-switch 2",
	}
	for _, line := range lines {
		t.Run(line, func(t *testing.T) {
			cmd, err := ParseLine(line)
			require.NoError(t, err)
			assert.Equal(t, line, Format(cmd))

			again, err := ParseLine(Format(cmd))
			require.NoError(t, err)
			assert.Equal(t, cmd, again)
		})
	}
}
