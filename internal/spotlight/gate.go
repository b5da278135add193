// Package spotlight models the one-shot intro overlay.
package spotlight

// Point is a cell position.
type Point struct {
	X int
	Y int
}

// Gate is visible until the first click or tap, then dismissed for good.
type Gate struct {
	visible bool
	pos     Point
	hasPos  bool
	radius  int
	moves   int
}

// DefaultRadius is the spotlight radius in cells.
const DefaultRadius = 8

// New returns a visible gate. radius <= 0 uses DefaultRadius.
func New(radius int) *Gate {
	if radius <= 0 {
		radius = DefaultRadius
	}
	return &Gate{visible: true, radius: radius}
}

// Visible reports whether the overlay is shown.
func (g *Gate) Visible() bool {
	return g.visible
}

// ScrollLocked reports whether page scrolling is suspended.
func (g *Gate) ScrollLocked() bool {
	return g.visible
}

// Tracking reports whether pointer updates are consumed.
func (g *Gate) Tracking() bool {
	return g.visible
}

// Move records a pointer position. Ignored once dismissed.
func (g *Gate) Move(x, y int) bool {
	if !g.visible {
		return false
	}
	g.pos = Point{X: x, Y: y}
	g.hasPos = true
	g.moves++
	return true
}

// Touch records a single-touch position. Multi-touch is ignored.
func (g *Gate) Touch(points []Point) bool {
	if len(points) != 1 {
		return false
	}
	return g.Move(points[0].X, points[0].Y)
}

// Position returns the last tracked position.
func (g *Gate) Position() (Point, bool) {
	return g.pos, g.hasPos
}

// Moves returns how many pointer updates were consumed.
func (g *Gate) Moves() int {
	return g.moves
}

// Dismiss hides the overlay. It returns true only on the first call.
func (g *Gate) Dismiss() bool {
	if !g.visible {
		return false
	}
	g.visible = false
	return true
}

// Lit reports whether cell (x, y) is inside the spotlight. Terminal cells are
// about twice as tall as wide, so rows count double.
func (g *Gate) Lit(x, y int) bool {
	if !g.hasPos {
		return false
	}
	dx := x - g.pos.X
	dy := (y - g.pos.Y) * 2
	return dx*dx+dy*dy <= g.radius*g.radius
}
