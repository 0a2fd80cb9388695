// Package gamemath provides pure geometry and speed helpers shared between
// the collision and physics packages. It has no dependencies beyond the
// standard library — pure data only.
package gamemath

import "math"

// Vec is a 2D vector used for positions, velocities and shape parameters.
// It is a value type with no identity.
type Vec struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{v.X - o.X, v.Y - o.Y}
}

// Scale returns v scaled by s.
func (v Vec) Scale(s float64) Vec {
	return Vec{v.X * s, v.Y * s}
}

// Dot returns the dot product of v and o.
func (v Vec) Dot(o Vec) float64 {
	return v.X*o.X + v.Y*o.Y
}

// LenSq returns the squared length of v.
func (v Vec) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Len returns the length of v.
func (v Vec) Len() float64 {
	return math.Sqrt(v.LenSq())
}

// Perp returns v rotated 90 degrees counter-clockwise. Used to derive SAT
// axes from polygon edges.
func (v Vec) Perp() Vec {
	return Vec{-v.Y, v.X}
}

// Cross returns the 2D cross product (z component) of v and o.
func (v Vec) Cross(o Vec) float64 {
	return v.X*o.Y - v.Y*o.X
}

// Normalized returns v scaled to unit length. The second return value is
// false when v is too short to normalize safely; callers must skip whatever
// push or projection they were about to do instead of dividing by zero.
func (v Vec) Normalized() (Vec, bool) {
	l := v.Len()
	if l < 1e-9 {
		return Vec{}, false
	}
	return Vec{v.X / l, v.Y / l}, true
}
