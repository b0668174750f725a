// Package sim implements the arena simulation step: movement, edge reflection,
// boundary confinement and collision over an explicit entity store.
//
// Every system is a plain function taking the *Store. The frame driver owns the
// store and calls the systems in a fixed order once per tick (see Session.Tick).
// Nothing in this package logs, sleeps, or touches the terminal.
package sim

import "math"

// Vec2 is a 2D vector in world units. +X points right, +Y points up.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{X: x, Y: y}.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale returns v * k.
func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{v.X * k, v.Y * k}
}

// LenSq returns the squared length of v.
func (v Vec2) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Len returns the length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// DistSq returns the squared Euclidean distance between v and o.
func (v Vec2) DistSq(o Vec2) float64 {
	return v.Sub(o).LenSq()
}

// IsZero reports whether both components are exactly zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Normalize returns v scaled to unit length.
// Returns false for the zero vector and for non-finite vectors. Any other
// length, however small, keeps its direction.
func (v Vec2) Normalize() (Vec2, bool) {
	if v.IsZero() {
		return Vec2{}, false
	}
	l := v.Len()
	if l == 0 || math.IsInf(l, 0) || math.IsNaN(l) {
		return Vec2{}, false
	}
	return Vec2{v.X / l, v.Y / l}, true
}
