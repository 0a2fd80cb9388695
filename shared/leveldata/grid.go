package leveldata

import (
	"math"

	"github.com/fenwick/tilecollider/shared/collision"
)

// ColliderSet holds every placed collider of a level, bucketed by tile
// coordinate so per-body queries only touch nearby cells. Buckets are purely
// an optimization: a placement is registered in every cell its bounds touch,
// so Near returns a superset of the true overlaps and the narrow-phase
// filters the rest. The set is immutable once built and safe for concurrent
// reads during a tick.
type ColliderSet struct {
	cell    float64
	all     []collision.Placed
	buckets map[[2]int][]int
}

// NewColliderSet creates an empty set with the given bucket cell size,
// normally the level's tile size.
func NewColliderSet(cell float64) *ColliderSet {
	if cell <= 0 {
		cell = 16
	}
	return &ColliderSet{
		cell:    cell,
		buckets: make(map[[2]int][]int),
	}
}

// Add registers a placed collider in every bucket its bounds touch.
func (s *ColliderSet) Add(p collision.Placed) {
	idx := len(s.all)
	s.all = append(s.all, p)

	min, max := p.Bounds()
	x0, y0 := s.cellAt(min.X, min.Y)
	x1, y1 := s.cellAt(max.X, max.Y)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			key := [2]int{x, y}
			s.buckets[key] = append(s.buckets[key], idx)
		}
	}
}

// Near returns every placed collider whose bucket region overlaps the box,
// padded by one unit so epsilon-range contacts are never missed. The result
// may contain false positives but never false negatives.
func (s *ColliderSet) Near(box collision.AABB) []collision.Placed {
	min := box.Min()
	max := box.Max()
	x0, y0 := s.cellAt(min.X-1, min.Y-1)
	x1, y1 := s.cellAt(max.X+1, max.Y+1)

	var out []collision.Placed
	seen := make(map[int]struct{})
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			for _, idx := range s.buckets[[2]int{x, y}] {
				if _, ok := seen[idx]; ok {
					continue
				}
				seen[idx] = struct{}{}
				out = append(out, s.all[idx])
			}
		}
	}
	return out
}

// All returns every placed collider in the set.
func (s *ColliderSet) All() []collision.Placed {
	return s.all
}

// Len returns the number of placed colliders.
func (s *ColliderSet) Len() int {
	return len(s.all)
}

func (s *ColliderSet) cellAt(x, y float64) (int, int) {
	return int(math.Floor(x / s.cell)), int(math.Floor(y / s.cell))
}
