package leveldata

import (
	"math/rand"
	"testing"

	"github.com/fenwick/tilecollider/shared/collision"
	"github.com/fenwick/tilecollider/shared/gamemath"
)

func TestColliderSetNear(t *testing.T) {
	set := NewColliderSet(16)
	set.Add(collision.Placed{
		Shape:  collision.Rectangle{W: 16, H: 16},
		Offset: gamemath.Vec{X: 0, Y: 32},
	})
	set.Add(collision.Placed{
		Shape:  collision.Rectangle{W: 16, H: 16},
		Offset: gamemath.Vec{X: 320, Y: 32},
	})

	near := set.Near(collision.AABB{
		Pos:  gamemath.Vec{X: 8, Y: 30},
		Half: gamemath.Vec{X: 4, Y: 4},
	})
	if len(near) != 1 {
		t.Fatalf("Near returned %d colliders, want 1 (distant tile culled)", len(near))
	}
	if near[0].Offset.X != 0 {
		t.Fatalf("Near returned the wrong collider: %+v", near[0])
	}
}

// A shape spanning several buckets must be returned exactly once.
func TestColliderSetNearDeduplicates(t *testing.T) {
	set := NewColliderSet(16)
	set.Add(collision.Placed{
		Shape: collision.Polyline{Points: []gamemath.Vec{{X: 0, Y: 8}, {X: 64, Y: 8}}},
	})

	near := set.Near(collision.AABB{
		Pos:  gamemath.Vec{X: 32, Y: 8},
		Half: gamemath.Vec{X: 40, Y: 8},
	})
	if len(near) != 1 {
		t.Fatalf("Near returned %d entries for one collider, want 1", len(near))
	}
}

// The grid index must never miss a collider the brute-force scan would test
// positive. False positives are fine; false negatives are not.
func TestColliderSetNearSuperset(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	set := NewColliderSet(16)
	for i := 0; i < 80; i++ {
		var shape collision.Shape
		switch i % 4 {
		case 0:
			shape = collision.Rectangle{W: 16, H: 16}
		case 1:
			shape = collision.Ellipse{X: 8, Y: 8, RX: 8, RY: 8}
		case 2:
			shape = collision.Polygon{Points: []gamemath.Vec{{X: 0, Y: 16}, {X: 16, Y: 16}, {X: 16, Y: 0}}}
		default:
			shape = collision.Polyline{Points: []gamemath.Vec{{X: 0, Y: 0}, {X: 16, Y: 16}}}
		}
		set.Add(collision.Placed{
			Shape: shape,
			Offset: gamemath.Vec{
				X: float64(rng.Intn(40)) * 16,
				Y: float64(rng.Intn(40)) * 16,
			},
		})
	}

	for i := 0; i < 300; i++ {
		box := collision.AABB{
			Pos:  gamemath.Vec{X: rng.Float64() * 640, Y: rng.Float64() * 640},
			Half: gamemath.Vec{X: 1 + rng.Float64()*20, Y: 1 + rng.Float64()*20},
		}

		nearHits := 0
		for _, p := range set.Near(box) {
			if p.TestBox(box) {
				nearHits++
			}
		}
		bruteHits := 0
		for _, p := range set.All() {
			if p.TestBox(box) {
				bruteHits++
			}
		}
		if nearHits != bruteHits {
			t.Fatalf("iteration %d: grid query found %d hits, brute force found %d", i, nearHits, bruteHits)
		}
	}
}
