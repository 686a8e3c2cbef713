// Package core provides fundamental types and utilities for the runner platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect represents an axis-aligned bounding box in screen cells.
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
func (r Rect) Intersects(other Rect) bool {
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

// Vec is a point or displacement in simulation (pixel) space.
type Vec struct {
	X, Y float64
}

// RectF is an axis-aligned box in simulation space. Y grows downward.
type RectF struct {
	X, Y float64
	W, H float64
}

// Right returns the x-coordinate of the right edge.
func (r RectF) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r RectF) Bottom() float64 {
	return r.Y + r.H
}

// Center returns the center point of the box.
func (r RectF) Center() Vec {
	return Vec{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Intersects reports whether the boxes overlap. Touching edges do not count.
func (r RectF) Intersects(other RectF) bool {
	return IntervalsOverlap(r.X, r.Right(), other.X, other.Right()) &&
		IntervalsOverlap(r.Y, r.Bottom(), other.Y, other.Bottom())
}

// IntervalsOverlap reports whether [a0, a1) and [b0, b1) share any length.
func IntervalsOverlap(a0, a1, b0, b1 float64) bool {
	return a0 < b1 && b0 < a1
}

// Triangle is a closed triangle given by its three vertices.
type Triangle struct {
	A, B, C Vec
}

// cross returns the z component of (b-a) x (p-a).
func cross(a, b, p Vec) float64 {
	return (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
}

// Contains reports whether p lies inside the triangle or on its boundary.
// Works for either vertex winding.
func (t Triangle) Contains(p Vec) bool {
	d1 := cross(t.A, t.B, p)
	d2 := cross(t.B, t.C, p)
	d3 := cross(t.C, t.A, p)

	allNonNeg := d1 >= 0 && d2 >= 0 && d3 >= 0
	allNonPos := d1 <= 0 && d2 <= 0 && d3 <= 0
	return allNonNeg || allNonPos
}

// Bounds returns the triangle's axis-aligned bounding box.
func (t Triangle) Bounds() RectF {
	minX := MinF(t.A.X, MinF(t.B.X, t.C.X))
	maxX := MaxF(t.A.X, MaxF(t.B.X, t.C.X))
	minY := MinF(t.A.Y, MinF(t.B.Y, t.C.Y))
	maxY := MaxF(t.A.Y, MaxF(t.B.Y, t.C.Y))
	return RectF{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
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

// MinF returns the smaller of two floats.
func MinF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// MaxF returns the larger of two floats.
func MaxF(a, b float64) float64 {
	if a > b {
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

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
