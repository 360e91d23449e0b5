// Package geom provides the 2D vector and box math shared by every entity.
package geom

import "math"

// Vec2 is a world-space vector in floating point units.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{X: x, Y: y}.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v * s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Length returns the Euclidean length of v.
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// IsZero reports whether both components are exactly zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Vec2) float64 {
	return b.Sub(a).Length()
}

// Direction returns the unit vector from -> to scaled by speed.
// Identical points yield the zero vector instead of NaN.
func Direction(from, to Vec2, speed float64) Vec2 {
	d := to.Sub(from)
	dist := d.Length()
	if dist == 0 {
		return Vec2{}
	}
	return Vec2{X: d.X / dist * speed, Y: d.Y / dist * speed}
}
