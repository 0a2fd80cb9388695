package core

import (
	"log"

	"github.com/fenwick/tilecollider/mathutil"
	"github.com/fenwick/tilecollider/shared/netcomponents"
	"github.com/fenwick/tilecollider/shared/netconfig"
	"github.com/fenwick/tilecollider/shared/physics"
)

// runningSpeedCutoff is the horizontal speed above which a grounded body is
// considered running for animation purposes.
const runningSpeedCutoff = 1.0

// updatePhysics advances every player body by one fixed tick and writes the
// results back to the synced components. Called once per server tick from
// the game loop goroutine.
func (s *Server) updatePhysics() {
	s.mu.Lock()

	bodies := make(map[physics.BodyID]*physics.Body, len(s.players))
	inputs := make(map[physics.BodyID]physics.Input, len(s.players))
	states := make(map[physics.BodyID]*playerState, len(s.players))

	for _, player := range s.players {
		if !player.joined {
			continue
		}
		if !s.world.Valid(player.entity) {
			// Entity despawned since the input arrived; the engine reports
			// it, the tick continues for everyone else.
			inputs[player.id] = physics.Input{}
			continue
		}

		bodies[player.id] = player.body
		inputs[player.id] = physics.Input{
			Axis: player.input.Axis,
			// Edge-triggered: held jump does not bounce.
			Jump: player.input.Jump && !player.jumpWasPressed,
		}
		player.jumpWasPressed = player.input.Jump
		states[player.id] = player
	}
	colliders := s.level.Colliders
	s.mu.Unlock()

	report := s.phys.Tick(bodies, inputs, colliders)
	if !report.Ok() {
		log.Printf("[physics] tick skipped %d missing bodies: %v", len(report.MissingBodies), report.MissingBodies)
	}

	// Commit results to the synced components.
	s.mu.RLock()
	defer s.mu.RUnlock()
	for id, player := range states {
		if !s.world.Valid(player.entity) {
			continue
		}
		body := bodies[id]
		entry := s.world.Entry(player.entity)

		pos := netcomponents.NetPosition.Get(entry)
		pos.X = body.Pos.X
		pos.Y = body.Pos.Y

		vel := netcomponents.NetVelocity.Get(entry)
		vel.VelX = body.Vel.X
		vel.VelY = body.Vel.Y

		state := netcomponents.NetBodyState.Get(entry)
		state.Grounded = body.Grounded
		state.StateID = deriveState(body)
		state.LastSequence = player.input.Sequence
		if player.input.Axis != 0 {
			if player.input.Axis > 0 {
				state.Facing = 1
			} else {
				state.Facing = -1
			}
		}
	}
}

// deriveState maps physics state to an animation state.
func deriveState(body *physics.Body) netconfig.StateID {
	if !body.Grounded {
		if body.Vel.Y < 0 {
			return netconfig.Jumping
		}
		return netconfig.Falling
	}
	if mathutil.AbsFloat(body.Vel.X) >= runningSpeedCutoff {
		return netconfig.Running
	}
	return netconfig.Idle
}
