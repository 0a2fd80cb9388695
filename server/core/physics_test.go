package core

import (
	"testing"

	"github.com/fenwick/tilecollider/shared/gamemath"
	"github.com/fenwick/tilecollider/shared/netconfig"
	"github.com/fenwick/tilecollider/shared/physics"
)

func TestDeriveState(t *testing.T) {
	tests := []struct {
		name     string
		grounded bool
		vel      gamemath.Vec
		want     netconfig.StateID
	}{
		{"standing still", true, gamemath.Vec{}, netconfig.Idle},
		{"running right", true, gamemath.Vec{X: 120}, netconfig.Running},
		{"running left", true, gamemath.Vec{X: -120}, netconfig.Running},
		{"creeping below cutoff", true, gamemath.Vec{X: 0.5}, netconfig.Idle},
		{"rising", false, gamemath.Vec{Y: -100}, netconfig.Jumping},
		{"falling", false, gamemath.Vec{Y: 100}, netconfig.Falling},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			body := &physics.Body{Vel: tc.vel, Grounded: tc.grounded}
			if got := deriveState(body); got != tc.want {
				t.Fatalf("deriveState = %v, want %v", got, tc.want)
			}
		})
	}
}
