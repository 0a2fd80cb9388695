// Package physics advances dynamic bodies against static tile colliders in
// fixed ticks. A World holds the tuning constants and is read-only during a
// tick; bodies are independent records mutated exactly once per tick.
package physics

import (
	"github.com/fenwick/tilecollider/shared/collision"
	"github.com/fenwick/tilecollider/shared/gamemath"
)

// BodyID identifies a dynamic body within a tick. The server maps these to
// entities; the engine only uses them to report anomalies.
type BodyID uint64

// Body is the full physics state of one dynamic actor. Bodies never interact
// with each other; each one only reads static colliders and writes its own
// record.
type Body struct {
	Pos      gamemath.Vec
	Vel      gamemath.Vec
	Half     gamemath.Vec
	Grounded bool
}

// NewBody creates a body at rest at the given position with the given half
// extents.
func NewBody(pos, half gamemath.Vec) *Body {
	return &Body{Pos: pos, Half: half}
}

// Box returns the body's world-space bounding box.
func (b *Body) Box() collision.AABB {
	return collision.AABB{Pos: b.Pos, Half: b.Half}
}

// Input is one tick's worth of control state for a body, supplied by the
// caller before integration. Axis is clamped to [-1, 1] during the step.
type Input struct {
	Axis float64
	Jump bool
}
