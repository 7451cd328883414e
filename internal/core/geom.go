// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect is an integer rectangle in screen cells, used for terminal drawing.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Vec2 is a position in world units (pixels of the original window).
type Vec2 struct {
	X, Y float64
}

// Box is an axis-aligned bounding box in world units.
// X/Y is the top-left corner; edges are derived on demand.
type Box struct {
	X, Y float64
	W, H float64
}

// BoxAt creates a box from its top-left corner and size.
func BoxAt(x, y, w, h float64) Box {
	return Box{X: x, Y: y, W: w, H: h}
}

// BoxAround creates a box from a centre point and half extents.
func BoxAround(cx, cy, halfW, halfH float64) Box {
	return Box{X: cx - halfW, Y: cy - halfH, W: 2 * halfW, H: 2 * halfH}
}

// Left returns the x-coordinate of the left edge.
func (b Box) Left() float64 { return b.X }

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 { return b.X + b.W }

// Top returns the y-coordinate of the top edge.
func (b Box) Top() float64 { return b.Y }

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 { return b.Y + b.H }

// Collides reports whether two boxes overlap on both axes.
// Boxes that only touch along an edge or corner count as colliding.
func (b Box) Collides(other Box) bool {
	return b.Bottom() >= other.Top() &&
		b.Top() <= other.Bottom() &&
		b.Left() <= other.Right() &&
		b.Right() >= other.Left()
}

// Collides is the free-function form of Box.Collides.
func Collides(a, b Box) bool {
	return a.Collides(b)
}

// Inset shrinks the box by padding on all four sides.
// A padding larger than half the size collapses that axis to its centre line.
func (b Box) Inset(padding float64) Box {
	out := Box{
		X: b.X + padding,
		Y: b.Y + padding,
		W: b.W - 2*padding,
		H: b.H - 2*padding,
	}
	if out.W < 0 {
		out.X = b.X + b.W/2
		out.W = 0
	}
	if out.H < 0 {
		out.Y = b.Y + b.H/2
		out.H = 0
	}
	return out
}
