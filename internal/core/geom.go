// Package core provides fundamental types and utilities for the arcade.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Point is an absolute position on the board.
type Point struct {
	X, Y float64
}

// Add returns the point offset by another point (used for center + vertex).
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Move returns the point displaced by velocity v over elapsed seconds.
func (p Point) Move(v Vector, elapsed float64) Point {
	return Point{X: p.X + v.X*elapsed, Y: p.Y + v.Y*elapsed}
}

// Vector is a velocity in board units per second.
type Vector struct {
	X, Y float64
}

// FRect is an axis-aligned rectangle in board coordinates.
// It serves both as board bounds and as entity bounding boxes.
// Callers must keep TopLeft <= BottomRight componentwise; it is not enforced.
type FRect struct {
	TopLeft     Point
	BottomRight Point
}

// NewFRect creates a rectangle from its corner coordinates.
func NewFRect(x1, y1, x2, y2 float64) FRect {
	return FRect{
		TopLeft:     Point{X: x1, Y: y1},
		BottomRight: Point{X: x2, Y: y2},
	}
}

// Width returns BottomRight.X - TopLeft.X.
func (r FRect) Width() float64 {
	return r.BottomRight.X - r.TopLeft.X
}

// Height returns BottomRight.Y - TopLeft.Y.
func (r FRect) Height() float64 {
	return r.BottomRight.Y - r.TopLeft.Y
}

// Overlaps reports whether two rectangles share any area or edge.
// Touching edges count as overlap; only strict separation on an axis fails.
func (r FRect) Overlaps(other FRect) bool {
	return !(other.TopLeft.X > r.BottomRight.X ||
		other.BottomRight.X < r.TopLeft.X ||
		other.TopLeft.Y > r.BottomRight.Y ||
		other.BottomRight.Y < r.TopLeft.Y)
}

// ContainsPoint reports whether p lies inside r, edges included.
func (r FRect) ContainsPoint(p Point) bool {
	return p.X >= r.TopLeft.X && p.X <= r.BottomRight.X &&
		p.Y >= r.TopLeft.Y && p.Y <= r.BottomRight.Y
}

// Rect represents an integer cell rectangle on a screen.
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
