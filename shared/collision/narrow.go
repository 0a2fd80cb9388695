package collision

import (
	"github.com/fenwick/tilecollider/mathutil"
	"github.com/fenwick/tilecollider/shared/gamemath"
)

// TestBox implements Shape: interval overlap on both principal axes.
func (r Rectangle) TestBox(box AABB) bool {
	min := box.Min()
	max := box.Max()
	return gamemath.IntervalsOverlap(min.X, max.X, r.X, r.X+r.W, Epsilon) &&
		gamemath.IntervalsOverlap(min.Y, max.Y, r.Y, r.Y+r.H, Epsilon)
}

// TestBox implements Shape. The ellipse center is clamped to the box to find
// the closest box point, and the offset from that point back to the center is
// measured in radius units. Exact for circles, a closest-point approximation
// for true ellipses; tile geometry is small enough that the error does not
// matter in practice.
func (e Ellipse) TestBox(box AABB) bool {
	if e.RX <= 0 || e.RY <= 0 {
		return false
	}
	min := box.Min()
	max := box.Max()
	closest := gamemath.Vec{
		X: mathutil.ClampFloat(e.X, min.X, max.X),
		Y: mathutil.ClampFloat(e.Y, min.Y, max.Y),
	}
	nx := (e.X - closest.X) / e.RX
	ny := (e.Y - closest.Y) / e.RY
	return nx*nx+ny*ny < 1.0
}

// TestBox implements Shape via the Separating Axis Theorem. Candidate axes
// are the box's two principal axes plus one perpendicular per polygon edge;
// if any axis shows a gap wider than Epsilon the shapes do not overlap.
// Exact only for convex polygons.
func (p Polygon) TestBox(box AABB) bool {
	if len(p.Points) < 3 {
		// Degenerate, no collision possible.
		return false
	}

	corners := box.Corners()
	boxPoints := corners[:]

	axes := make([]gamemath.Vec, 0, 2+len(p.Points))
	axes = append(axes, gamemath.Vec{X: 1}, gamemath.Vec{Y: 1})
	for i := range p.Points {
		edge := p.Points[(i+1)%len(p.Points)].Sub(p.Points[i])
		axis, ok := edge.Perp().Normalized()
		if !ok {
			// Zero-length edge contributes no axis.
			continue
		}
		axes = append(axes, axis)
	}

	for _, axis := range axes {
		min1, max1 := gamemath.Project(boxPoints, axis)
		min2, max2 := gamemath.Project(p.Points, axis)
		if !gamemath.IntervalsOverlap(min1, max1, min2, max2, Epsilon) {
			return false
		}
	}
	return true
}

// TestBox implements Shape: each consecutive point pair collides if either
// endpoint lies inside the box or the segment crosses one of the box's four
// boundary edges. A single-point polyline runs zero segment tests and never
// collides.
func (p Polyline) TestBox(box AABB) bool {
	if len(p.Points) < 2 {
		return false
	}
	corners := box.Corners()
	for i := 0; i < len(p.Points)-1; i++ {
		a := p.Points[i]
		b := p.Points[i+1]
		if box.ContainsPoint(a) || box.ContainsPoint(b) {
			return true
		}
		for j := range corners {
			if gamemath.SegmentsIntersect(a, b, corners[j], corners[(j+1)%4]) {
				return true
			}
		}
	}
	return false
}

// TestBox implements Shape: a point-in-box test.
func (p Point) TestBox(box AABB) bool {
	return box.ContainsPoint(gamemath.Vec{X: p.X, Y: p.Y})
}
