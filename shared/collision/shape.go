// Package collision implements the narrow-phase tests and penetration
// resolution for a dynamic axis-aligned box against static tile collider
// shapes. Shapes are authored in tile-local coordinates; Placed pairs a shape
// with its tile's world offset so tests run in world space.
package collision

import "github.com/fenwick/tilecollider/shared/gamemath"

// Epsilon is the tolerance used by interval overlap tests. A gap of at most
// Epsilon between projections still counts as contact; anything wider does
// not. Gameplay tuning relies on this value, treat it as a contract.
const Epsilon = 0.001

// AABB is a dynamic body's axis-aligned box: center position plus half
// extents, in world space.
type AABB struct {
	Pos  gamemath.Vec
	Half gamemath.Vec
}

// Min returns the top-left corner of the box.
func (b AABB) Min() gamemath.Vec {
	return b.Pos.Sub(b.Half)
}

// Max returns the bottom-right corner of the box.
func (b AABB) Max() gamemath.Vec {
	return b.Pos.Add(b.Half)
}

// Corners returns the four corners of the box.
func (b AABB) Corners() [4]gamemath.Vec {
	min := b.Min()
	max := b.Max()
	return [4]gamemath.Vec{
		{X: min.X, Y: min.Y},
		{X: max.X, Y: min.Y},
		{X: max.X, Y: max.Y},
		{X: min.X, Y: max.Y},
	}
}

// ContainsPoint reports whether p lies inside the box, padded by Epsilon.
func (b AABB) ContainsPoint(p gamemath.Vec) bool {
	return p.X >= b.Pos.X-b.Half.X-Epsilon && p.X <= b.Pos.X+b.Half.X+Epsilon &&
		p.Y >= b.Pos.Y-b.Half.Y-Epsilon && p.Y <= b.Pos.Y+b.Half.Y+Epsilon
}

// Shape is a static collider shape in tile-local coordinates. Each variant
// implements its own box overlap test and resolution, so dispatch stays
// exhaustive without a central type switch.
type Shape interface {
	// TestBox reports whether the box overlaps the shape. The box must
	// already be in the shape's local coordinate space.
	TestBox(box AABB) bool

	// Resolve returns a displacement that separates an overlapping box from
	// the shape. It returns false when no correction should be applied this
	// tick (degenerate geometry, body exactly at the shape center).
	Resolve(box AABB) (gamemath.Vec, bool)

	// Bounds returns the shape-local bounding box as (min, max).
	Bounds() (gamemath.Vec, gamemath.Vec)
}

// Placed is a collider shape placed in the world: the tile-local shape plus
// the owning tile's world offset. Placed values are ephemeral, computed from
// level data and never persisted.
type Placed struct {
	Shape  Shape
	Offset gamemath.Vec
}

// TestBox tests the world-space box against the placed shape by translating
// the box into the shape's local space. Forgetting this translation is the
// classic tile collider bug, so it lives in exactly one place.
func (p Placed) TestBox(box AABB) bool {
	box.Pos = box.Pos.Sub(p.Offset)
	return p.Shape.TestBox(box)
}

// Resolve computes the separating displacement for the world-space box. The
// displacement itself is translation invariant, so no back-translation is
// needed.
func (p Placed) Resolve(box AABB) (gamemath.Vec, bool) {
	box.Pos = box.Pos.Sub(p.Offset)
	return p.Shape.Resolve(box)
}

// Bounds returns the world-space bounding box of the placed shape.
func (p Placed) Bounds() (gamemath.Vec, gamemath.Vec) {
	min, max := p.Shape.Bounds()
	return min.Add(p.Offset), max.Add(p.Offset)
}
