// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

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

// Intersects returns true if this rectangle overlaps with another.
// Uses standard AABB collision detection.
func (r Rect) Intersects(other Rect) bool {
	// No overlap if one rect is completely to the left, right, above, or below
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Box is an axis-aligned bounding box in world coordinates (logical pixels).
type Box struct {
	X, Y float64 // Top-left corner
	W, H float64 // Width and height
}

// NewBox creates a box with the given position and dimensions.
func NewBox(x, y, w, h float64) Box {
	return Box{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// Center returns the center point of the box.
func (b Box) Center() (float64, float64) {
	return b.X + b.W/2, b.Y + b.H/2
}

// Intersects reports strict overlap; touching edges do not count.
func (b Box) Intersects(other Box) bool {
	return b.X < other.Right() &&
		b.Right() > other.X &&
		b.Y < other.Bottom() &&
		b.Bottom() > other.Y
}

// Distance returns the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// CirclesOverlap reports whether the distance between two centers is
// strictly less than the given threshold.
func CirclesOverlap(x1, y1, x2, y2, threshold float64) bool {
	return Distance(x1, y1, x2, y2) < threshold
}

// Viewport converts world coordinates into screen cells.
type Viewport struct {
	CellW float64 // World units per column
	CellH float64 // World units per row
}

// NewViewport creates a viewport, falling back to 1x1 cells for invalid sizes.
func NewViewport(cellW, cellH float64) Viewport {
	if cellW <= 0 {
		cellW = 1
	}
	if cellH <= 0 {
		cellH = 1
	}
	return Viewport{CellW: cellW, CellH: cellH}
}

// WorldSize returns the world dimensions covered by a screen of cols x rows.
func (v Viewport) WorldSize(cols, rows int) (float64, float64) {
	return float64(cols) * v.CellW, float64(rows) * v.CellH
}

// Cell converts a world point to the cell containing it.
func (v Viewport) Cell(x, y float64) (int, int) {
	return int(math.Floor(x / v.CellW)), int(math.Floor(y / v.CellH))
}

// Rect converts a world box into the covering cell rectangle.
// Non-empty boxes always cover at least one cell.
func (v Viewport) Rect(b Box) Rect {
	x0, y0 := v.Cell(b.X, b.Y)
	x1 := int(math.Ceil(b.Right() / v.CellW))
	y1 := int(math.Ceil(b.Bottom() / v.CellH))
	w := Max(x1-x0, 1)
	h := Max(y1-y0, 1)
	return NewRect(x0, y0, w, h)
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

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
