package collision

import "github.com/fenwick/tilecollider/shared/gamemath"

// Rectangle is an axis-aligned rectangle: top-left offset plus extents.
type Rectangle struct {
	X, Y, W, H float64
}

// Center returns the rectangle's center point.
func (r Rectangle) Center() gamemath.Vec {
	return gamemath.Vec{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Bounds implements Shape.
func (r Rectangle) Bounds() (gamemath.Vec, gamemath.Vec) {
	return gamemath.Vec{X: r.X, Y: r.Y}, gamemath.Vec{X: r.X + r.W, Y: r.Y + r.H}
}

// Ellipse is an axis-aligned ellipse: center offset plus radii.
type Ellipse struct {
	X, Y, RX, RY float64
}

// Bounds implements Shape.
func (e Ellipse) Bounds() (gamemath.Vec, gamemath.Vec) {
	return gamemath.Vec{X: e.X - e.RX, Y: e.Y - e.RY},
		gamemath.Vec{X: e.X + e.RX, Y: e.Y + e.RY}
}

// Polygon is a closed point chain, assumed convex. Convexity is not enforced;
// the SAT test is exact only for convex input. A polygon with fewer than
// three points is degenerate and never collides.
type Polygon struct {
	Points []gamemath.Vec
}

// Bounds implements Shape.
func (p Polygon) Bounds() (gamemath.Vec, gamemath.Vec) {
	return pointBounds(p.Points)
}

// Polyline is an open point chain tested as consecutive segments.
type Polyline struct {
	Points []gamemath.Vec
}

// Bounds implements Shape.
func (p Polyline) Bounds() (gamemath.Vec, gamemath.Vec) {
	return pointBounds(p.Points)
}

// Point is a zero-area collider.
type Point struct {
	X, Y float64
}

// Bounds implements Shape.
func (p Point) Bounds() (gamemath.Vec, gamemath.Vec) {
	v := gamemath.Vec{X: p.X, Y: p.Y}
	return v, v
}

func pointBounds(points []gamemath.Vec) (gamemath.Vec, gamemath.Vec) {
	if len(points) == 0 {
		return gamemath.Vec{}, gamemath.Vec{}
	}
	min := points[0]
	max := points[0]
	for _, p := range points[1:] {
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
	}
	return min, max
}
