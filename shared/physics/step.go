package physics

import (
	"sort"

	"github.com/fenwick/tilecollider/mathutil"
	"github.com/fenwick/tilecollider/shared/collision"
	"github.com/fenwick/tilecollider/shared/gamemath"
)

// Step advances one body by one fixed tick: accumulate gravity, apply input
// or damping, clamp, predict, then test and resolve against every nearby
// static collider. The body is committed in place.
func (w *World) Step(b *Body, in Input, src Source) {
	// --- Gravity ---
	b.Vel.Y += w.Gravity * w.Dt
	b.Vel.Y = gamemath.ClampSpeed(b.Vel.Y, w.MaxFallSpeed)

	// --- Horizontal input or damping ---
	axis := mathutil.ClampFloat(in.Axis, -1, 1)
	if axis != 0 {
		b.Vel.X += axis * w.MoveAccel * w.Dt
	} else {
		b.Vel.X = gamemath.ApplyDamping(b.Vel.X, w.Damping, restThreshold)
	}
	b.Vel.X = gamemath.ClampSpeed(b.Vel.X, w.MaxMoveSpeed)

	// --- Jump (grounded only) ---
	if in.Jump && b.Grounded {
		b.Vel.Y = -w.JumpSpeed
		b.Grounded = false
	}

	// --- Predict and resolve ---
	falling := b.Vel.Y > 0
	box := collision.AABB{
		Pos:  b.Pos.Add(b.Vel.Scale(w.Dt)),
		Half: b.Half,
	}

	grounded := false
	for _, placed := range src.Near(box) {
		if !placed.TestBox(box) {
			continue
		}
		push, ok := placed.Resolve(box)
		if !ok {
			// Degenerate geometry; skip the correction for this tick.
			continue
		}
		box.Pos = box.Pos.Add(push)
		if falling && push.Y < 0 {
			// Landed: an upward correction while moving downward.
			b.Vel.Y = 0
			grounded = true
		}
	}

	b.Pos = box.Pos
	b.Grounded = grounded
}

// Report aggregates the anomalies of one tick. Nothing in a tick is fatal;
// the caller may log the report or surface it to operators, gameplay
// continues either way.
type Report struct {
	// Stepped is the number of bodies advanced this tick.
	Stepped int

	// MissingBodies lists ids that were referenced by an input but had no
	// body record, e.g. an actor despawned mid-tick. Sorted ascending.
	MissingBodies []BodyID
}

// Ok reports whether the tick completed without anomalies.
func (r Report) Ok() bool {
	return len(r.MissingBodies) == 0
}

// Tick advances every body by one fixed tick. Bodies are independent and
// processed in any order; an input whose body no longer exists is skipped
// and reported, never fatal. The source must stay read-only until Tick
// returns.
func (w *World) Tick(bodies map[BodyID]*Body, inputs map[BodyID]Input, src Source) Report {
	var report Report

	for id := range inputs {
		if b, ok := bodies[id]; !ok || b == nil {
			report.MissingBodies = append(report.MissingBodies, id)
		}
	}
	sort.Slice(report.MissingBodies, func(i, j int) bool {
		return report.MissingBodies[i] < report.MissingBodies[j]
	})

	for id, b := range bodies {
		if b == nil {
			continue
		}
		w.Step(b, inputs[id], src)
		report.Stepped++
	}
	return report
}
