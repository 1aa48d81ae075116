package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// PaneBox is one pane to draw, in canvas cells.
type PaneBox struct {
	Label      string
	Detail     string
	X, Y, W, H int
	Focused    bool
	Zoomed     bool
}

type cellKind uint8

const (
	cellBlank cellKind = iota
	cellBorder
	cellBorderFocused
	cellLabel
	cellDetail
)

type cell struct {
	r    rune
	kind cellKind
}

// canvas is a fixed grid of styled cells. Lipgloss has no absolute
// positioning, so pane boxes are drawn cell by cell and styled per run.
type canvas struct {
	w, h  int
	cells [][]cell
}

func newCanvas(w, h int) *canvas {
	c := &canvas{w: w, h: h, cells: make([][]cell, h)}
	for y := range c.cells {
		row := make([]cell, w)
		for x := range row {
			row[x] = cell{r: ' '}
		}
		c.cells[y] = row
	}
	return c
}

func (c *canvas) set(x, y int, r rune, kind cellKind) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.cells[y][x] = cell{r: r, kind: kind}
}

func (c *canvas) text(x, y, maxW int, s string, kind cellKind) {
	if maxW <= 0 {
		return
	}
	if ansi.StringWidth(s) > maxW {
		s = ansi.Truncate(s, maxW, "…")
	}
	for _, r := range s {
		c.set(x, y, r, kind)
		x++
	}
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return ' '
}

func (c *canvas) box(b PaneBox) {
	kind := cellBorder
	if b.Focused {
		kind = cellBorderFocused
	}
	if b.W <= 0 || b.H <= 0 {
		return
	}
	if b.W < 2 || b.H < 2 {
		for y := b.Y; y < b.Y+b.H; y++ {
			for x := b.X; x < b.X+b.W; x++ {
				c.set(x, y, '░', kind)
			}
		}
		return
	}

	border := lipgloss.RoundedBorder()
	if b.Zoomed {
		border = lipgloss.DoubleBorder()
	}
	right, bottom := b.X+b.W-1, b.Y+b.H-1
	for x := b.X + 1; x < right; x++ {
		c.set(x, b.Y, firstRune(border.Top), kind)
		c.set(x, bottom, firstRune(border.Bottom), kind)
	}
	for y := b.Y + 1; y < bottom; y++ {
		c.set(b.X, y, firstRune(border.Left), kind)
		c.set(right, y, firstRune(border.Right), kind)
	}
	c.set(b.X, b.Y, firstRune(border.TopLeft), kind)
	c.set(right, b.Y, firstRune(border.TopRight), kind)
	c.set(b.X, bottom, firstRune(border.BottomLeft), kind)
	c.set(right, bottom, firstRune(border.BottomRight), kind)

	inner := b.W - 2
	if b.H > 2 {
		c.text(b.X+1, b.Y+1, inner, b.Label, cellLabel)
	} else {
		c.text(b.X+1, b.Y, inner, b.Label, cellLabel)
	}
	if b.H > 3 {
		c.text(b.X+1, b.Y+2, inner, b.Detail, cellDetail)
	}
}

func (t *Theme) styleFor(kind cellKind) lipgloss.Style {
	switch kind {
	case cellBorder:
		return t.Pane.UnsetBorderStyle().Foreground(t.Border)
	case cellBorderFocused:
		return t.Pane.UnsetBorderStyle().Foreground(t.Accent)
	case cellLabel:
		return t.PaneLabel
	case cellDetail:
		return t.PaneDetail
	default:
		return lipgloss.NewStyle()
	}
}

func (t *Theme) render(c *canvas) string {
	lines := make([]string, c.h)
	var run strings.Builder
	for y, row := range c.cells {
		var line strings.Builder
		start := 0
		for x := 1; x <= len(row); x++ {
			if x < len(row) && row[x].kind == row[start].kind {
				continue
			}
			run.Reset()
			for _, cl := range row[start:x] {
				run.WriteRune(cl.r)
			}
			line.WriteString(t.styleFor(row[start].kind).Render(run.String()))
			start = x
		}
		lines[y] = line.String()
	}
	return strings.Join(lines, "\n")
}

// RenderPanes draws boxes onto a width x height area. Later boxes overwrite
// earlier ones; the focused box is drawn last so its border wins.
func (t *Theme) RenderPanes(width, height int, boxes []PaneBox) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	c := newCanvas(width, height)
	focused := -1
	for i, b := range boxes {
		if b.Focused {
			focused = i
			continue
		}
		c.box(b)
	}
	if focused >= 0 {
		c.box(boxes[focused])
	}
	return t.render(c)
}
