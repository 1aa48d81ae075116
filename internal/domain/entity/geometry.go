// Package entity defines the domain entities of the pane layout engine.
package entity

import "fmt"

// Axis identifies one of the two screen axes.
type Axis int

const (
	AxisX Axis = iota // Columns, width
	AxisY             // Rows, height
)

// Cross returns the perpendicular axis.
func (a Axis) Cross() Axis {
	if a == AxisX {
		return AxisY
	}
	return AxisX
}

func (a Axis) String() string {
	if a == AxisX {
		return "x"
	}
	return "y"
}

// Direction is a screen direction used by focus navigation and resizing.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

// Axis returns the axis a movement in this direction travels along.
func (d Direction) Axis() Axis {
	if d == DirLeft || d == DirRight {
		return AxisX
	}
	return AxisY
}

// Forward reports whether the direction points toward increasing coordinates.
func (d Direction) Forward() bool {
	return d == DirRight || d == DirDown
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	case DirUp:
		return DirDown
	default:
		return DirUp
	}
}

func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// ParseDirection converts a name such as "left" or "down" to a Direction.
// Single-letter vi aliases (h, j, k, l) are accepted.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "left", "h":
		return DirLeft, nil
	case "right", "l":
		return DirRight, nil
	case "up", "k":
		return DirUp, nil
	case "down", "j":
		return DirDown, nil
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}

// Rect is an axis-aligned rectangle in terminal cells.
// X/Y is the top-left corner; Right and Bottom are exclusive.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect builds a rectangle anchored at the origin.
func NewRect(w, h int) Rect {
	return Rect{W: max(w, 0), H: max(h, 0)}
}

func (r Rect) Right() int  { return r.X + r.W }
func (r Rect) Bottom() int { return r.Y + r.H }

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Area returns the number of cells covered.
func (r Rect) Area() int {
	if r.Empty() {
		return 0
	}
	return r.W * r.H
}

// Contains reports whether cell (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Start returns the lowest coordinate along axis.
func (r Rect) Start(a Axis) int {
	if a == AxisX {
		return r.X
	}
	return r.Y
}

// End returns the exclusive upper coordinate along axis.
func (r Rect) End(a Axis) int {
	if a == AxisX {
		return r.Right()
	}
	return r.Bottom()
}

// Length returns the extent along axis.
func (r Rect) Length(a Axis) int {
	if a == AxisX {
		return r.W
	}
	return r.H
}

// DoubleCenter returns twice the center coordinate along axis.
// Doubling keeps center comparisons in integer arithmetic.
func (r Rect) DoubleCenter(a Axis) int {
	return 2*r.Start(a) + r.Length(a)
}

// Overlap returns how many coordinates r and o share along axis.
func (r Rect) Overlap(o Rect, a Axis) int {
	lo := max(r.Start(a), o.Start(a))
	hi := min(r.End(a), o.End(a))
	if hi <= lo {
		return 0
	}
	return hi - lo
}

// Intersects reports whether r and o share at least one cell.
func (r Rect) Intersects(o Rect) bool {
	return r.Overlap(o, AxisX) > 0 && r.Overlap(o, AxisY) > 0
}

// Slice returns the sub-rectangle starting at offset with the given length
// along axis, sharing r's full extent on the cross axis.
func (r Rect) Slice(a Axis, offset, length int) Rect {
	if a == AxisX {
		return Rect{X: r.X + offset, Y: r.Y, W: length, H: r.H}
	}
	return Rect{X: r.X, Y: r.Y + offset, W: r.W, H: length}
}

func (r Rect) String() string {
	return fmt.Sprintf("%dx%d+%d+%d", r.W, r.H, r.X, r.Y)
}

// PaneRect represents a pane's screen position and size.
// Used for geometric navigation to find adjacent panes by position.
type PaneRect struct {
	PaneID PaneID
	Rect
}

// Size is a minimum pane size in cells.
type Size struct {
	W, H int
}

// DefaultMinSize is the smallest pane the engine allows.
var DefaultMinSize = Size{W: 1, H: 1}

// Along returns the size component along axis.
func (s Size) Along(a Axis) int {
	if a == AxisX {
		return s.W
	}
	return s.H
}
