// Package core provides fundamental types and utilities for the brick breaker.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Box is an axis-aligned bounding box in playfield units.
// Edges are inclusive: two boxes that share an edge overlap.
type Box struct {
	Left, Top     float64
	Right, Bottom float64
}

// NewBox creates a box from its edges.
func NewBox(left, top, right, bottom float64) Box {
	return Box{Left: left, Top: top, Right: right, Bottom: bottom}
}

// BoxAround creates a box of the given size centered on (cx, cy).
func BoxAround(cx, cy, w, h float64) Box {
	return Box{
		Left:   cx - w/2,
		Top:    cy - h/2,
		Right:  cx + w/2,
		Bottom: cy + h/2,
	}
}

// Width returns the horizontal extent.
func (b Box) Width() float64 {
	return b.Right - b.Left
}

// Height returns the vertical extent.
func (b Box) Height() float64 {
	return b.Bottom - b.Top
}

// CenterX returns the horizontal center.
func (b Box) CenterX() float64 {
	return (b.Left + b.Right) * 0.5
}

// CenterY returns the vertical center.
func (b Box) CenterY() float64 {
	return (b.Top + b.Bottom) * 0.5
}

// Translate returns the box shifted by (dx, dy).
func (b Box) Translate(dx, dy float64) Box {
	return Box{
		Left:   b.Left + dx,
		Top:    b.Top + dy,
		Right:  b.Right + dx,
		Bottom: b.Bottom + dy,
	}
}

// Overlaps reports whether the two boxes intersect or touch.
func (b Box) Overlaps(other Box) bool {
	if b.Right < other.Left || other.Right < b.Left {
		return false
	}
	if b.Bottom < other.Top || other.Bottom < b.Top {
		return false
	}
	return true
}

// Rect represents an axis-aligned rectangle in screen cells.
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

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
