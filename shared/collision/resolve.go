package collision

import (
	"github.com/fenwick/tilecollider/mathutil"
	"github.com/fenwick/tilecollider/shared/gamemath"
)

const (
	// ellipsePushStep is how far an ellipse pushes an overlapping box per
	// tick. Deep interpenetration is worked off over several ticks instead
	// of in one jump, which keeps the correction stable.
	ellipsePushStep = 1.0

	// fallbackLift is the upward step applied by shapes that have no proper
	// minimum-translation resolver (polygon, polyline, point). Only correct
	// when those shapes are used as platform tops.
	fallbackLift = 1.0
)

// Resolve implements Shape. Penetration depth is computed on each axis and
// the correction is applied only along the axis of smaller penetration,
// pushing the box away from the rectangle's center. The other axis is left
// untouched, which avoids popping diagonally through corners.
func (r Rectangle) Resolve(box AABB) (gamemath.Vec, bool) {
	c := r.Center()
	dx := box.Pos.X - c.X
	dy := box.Pos.Y - c.Y
	penX := box.Half.X + r.W/2 - mathutil.AbsFloat(dx)
	penY := box.Half.Y + r.H/2 - mathutil.AbsFloat(dy)
	if penX <= 0 || penY <= 0 {
		return gamemath.Vec{}, false
	}

	if penX < penY {
		if dx < 0 {
			penX = -penX
		}
		return gamemath.Vec{X: penX}, true
	}
	if dy < 0 {
		penY = -penY
	}
	return gamemath.Vec{Y: penY}, true
}

// Resolve implements Shape: push the box straight away from the ellipse
// center by a fixed step. Not a true penetration-depth correction. When the
// box sits exactly on the center the direction is undefined and the push is
// skipped for this tick rather than dividing by zero.
func (e Ellipse) Resolve(box AABB) (gamemath.Vec, bool) {
	dir, ok := box.Pos.Sub(gamemath.Vec{X: e.X, Y: e.Y}).Normalized()
	if !ok {
		return gamemath.Vec{}, false
	}
	return dir.Scale(ellipsePushStep), true
}

// Resolve implements Shape. Polygons have no minimum-translation resolver;
// the fixed upward step assumes platform-top usage. Degenerate polygons
// never resolve.
func (p Polygon) Resolve(box AABB) (gamemath.Vec, bool) {
	if len(p.Points) < 3 {
		return gamemath.Vec{}, false
	}
	return gamemath.Vec{Y: -fallbackLift}, true
}

// Resolve implements Shape. Same platform-top fallback as Polygon.
func (p Polyline) Resolve(box AABB) (gamemath.Vec, bool) {
	if len(p.Points) < 2 {
		return gamemath.Vec{}, false
	}
	return gamemath.Vec{Y: -fallbackLift}, true
}

// Resolve implements Shape. Same platform-top fallback as Polygon.
func (p Point) Resolve(box AABB) (gamemath.Vec, bool) {
	return gamemath.Vec{Y: -fallbackLift}, true
}
