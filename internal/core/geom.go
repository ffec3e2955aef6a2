// Package core provides fundamental types and utilities for the game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned box in screen cells.
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

// Vec2 is a 2D vector in world units.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale multiplies both components by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Mul multiplies component-wise.
func (v Vec2) Mul(o Vec2) Vec2 {
	return Vec2{X: v.X * o.X, Y: v.Y * o.Y}
}

// Len returns the Euclidean length.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// WithLength returns v rescaled to the given length.
// ok is false for the zero vector, which has no direction.
func (v Vec2) WithLength(length float64) (Vec2, bool) {
	l := v.Len()
	if l == 0 {
		return v, false
	}
	return v.Scale(length / l), true
}

// Segment is a line segment between two points.
type Segment struct {
	A, B Vec2
}

// ClosestPoint returns the point on the segment nearest to p.
func (s Segment) ClosestPoint(p Vec2) Vec2 {
	d := s.B.Sub(s.A)
	lenSq := d.X*d.X + d.Y*d.Y
	if lenSq == 0 {
		return s.A
	}
	t := ((p.X-s.A.X)*d.X + (p.Y-s.A.Y)*d.Y) / lenSq
	t = ClampF(t, 0, 1)
	return s.A.Add(d.Scale(t))
}

// RectF is an axis-aligned rectangle in world units.
type RectF struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// RectFromCenter builds a rectangle centered on (cx, cy).
func RectFromCenter(cx, cy, w, h float64) RectF {
	return RectF{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r RectF) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r RectF) Bottom() float64 {
	return r.Y + r.H
}

// Center returns the center point of the rectangle.
func (r RectF) Center() Vec2 {
	return Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// TopEdge returns the top edge as a segment.
func (r RectF) TopEdge() Segment {
	return Segment{A: Vec2{X: r.X, Y: r.Y}, B: Vec2{X: r.Right(), Y: r.Y}}
}

// BottomEdge returns the bottom edge as a segment.
func (r RectF) BottomEdge() Segment {
	return Segment{A: Vec2{X: r.X, Y: r.Bottom()}, B: Vec2{X: r.Right(), Y: r.Bottom()}}
}

// Contains returns true if p lies inside the rectangle (right/bottom exclusive).
func (r RectF) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Stretched grows the rectangle by d on every side (shrinks when negative).
func (r RectF) Stretched(d float64) RectF {
	return RectF{X: r.X - d, Y: r.Y - d, W: r.W + 2*d, H: r.H + 2*d}
}

// Circle is a circle in world units.
type Circle struct {
	X, Y float64 // Center
	R    float64
}

// Center returns the center point.
func (c Circle) Center() Vec2 {
	return Vec2{X: c.X, Y: c.Y}
}

// IntersectsRect reports whether the circle touches or overlaps r.
func (c Circle) IntersectsRect(r RectF) bool {
	nx := ClampF(c.X, r.X, r.Right())
	ny := ClampF(c.Y, r.Y, r.Bottom())
	dx, dy := c.X-nx, c.Y-ny
	return dx*dx+dy*dy <= c.R*c.R
}

// IntersectsSegment reports whether the circle touches or crosses s.
func (c Circle) IntersectsSegment(s Segment) bool {
	p := s.ClosestPoint(c.Center())
	dx, dy := c.X-p.X, c.Y-p.Y
	return dx*dx+dy*dy <= c.R*c.R
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
