package styles

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderPanes(t *testing.T) {
	theme := NewTheme()
	out := theme.RenderPanes(20, 5, []PaneBox{
		{Label: "p0", Detail: "10x5", X: 0, Y: 0, W: 10, H: 5, Focused: true},
		{Label: "p1", X: 10, Y: 0, W: 10, H: 5},
	})

	lines := strings.Split(ansi.Strip(out), "\n")
	require.Len(t, lines, 5)
	for _, line := range lines {
		assert.Equal(t, 20, ansi.StringWidth(line))
	}
	assert.Equal(t, "╭────────╮╭────────╮", lines[0])
	assert.Equal(t, "│p0      ││p1      │", lines[1])
	assert.Equal(t, "│10x5    ││        │", lines[2])
	assert.Equal(t, "╰────────╯╰────────╯", lines[4])
}

func TestRenderPanes_SmallAndZoomed(t *testing.T) {
	theme := NewTheme()

	out := ansi.Strip(theme.RenderPanes(6, 3, []PaneBox{
		{Label: "long-name", X: 0, Y: 0, W: 6, H: 3, Zoomed: true},
	}))
	lines := strings.Split(out, "\n")
	assert.Equal(t, "╔════╗", lines[0])
	assert.Equal(t, "║lon…║", lines[1])

	out = ansi.Strip(theme.RenderPanes(3, 2, []PaneBox{
		{Label: "a", X: 0, Y: 0, W: 1, H: 2},
		{Label: "b", X: 1, Y: 0, W: 2, H: 2},
		{Label: "gone", X: 5, Y: 5, W: 0, H: 0},
	}))
	assert.Equal(t, "░╭╮\n░╰╯", out)

	assert.Empty(t, theme.RenderPanes(0, 10, nil))
}
