package physics

import "github.com/fenwick/tilecollider/shared/collision"

// restThreshold is the horizontal speed below which a damped body snaps to a
// full stop.
const restThreshold = 0.5

// Source yields the static colliders that might overlap a queried box. The
// returned set must be a superset of the true overlaps; false positives are
// filtered by the narrow-phase. Implementations must be read-only for the
// duration of a tick.
type Source interface {
	Near(box collision.AABB) []collision.Placed
}

// World holds the simulation constants for one physics world. It is
// read-only during a tick and not re-entrant: callers must not start a
// second tick while one is in progress.
type World struct {
	// Dt is the fixed tick duration in seconds.
	Dt float64

	// Gravity is the downward acceleration in units/s².
	Gravity float64

	// MaxFallSpeed caps vertical speed, in units/s.
	MaxFallSpeed float64

	// MoveAccel is the horizontal acceleration applied at full input axis,
	// in units/s².
	MoveAccel float64

	// MaxMoveSpeed caps horizontal speed, in units/s.
	MaxMoveSpeed float64

	// JumpSpeed is the upward launch speed of a grounded jump, in units/s.
	JumpSpeed float64

	// Damping is the per-tick multiplicative decay applied to horizontal
	// speed when no input is given.
	Damping float64
}
