package gamemath

// Project projects every point onto the given unit axis and returns the
// minimum and maximum scalar values. The axis does not have to be normalized
// for overlap tests, as long as both shapes are projected onto the same axis.
func Project(points []Vec, axis Vec) (min, max float64) {
	if len(points) == 0 {
		return 0, 0
	}
	min = points[0].Dot(axis)
	max = min
	for _, p := range points[1:] {
		d := p.Dot(axis)
		if d < min {
			min = d
		}
		if d > max {
			max = d
		}
	}
	return min, max
}

// IntervalsOverlap reports whether [min1, max1] and [min2, max2] intersect
// with an epsilon tolerance: a gap of at most epsilon still counts as
// overlap. The tolerance absorbs floating-point noise at exact edge contact
// and is part of the collision contract, not an implementation detail.
func IntervalsOverlap(min1, max1, min2, max2, epsilon float64) bool {
	return min1 <= max2+epsilon && min2 <= max1+epsilon
}

// orient returns the sign of the cross product (b-a) x (c-a): positive for a
// counter-clockwise turn, negative for clockwise, zero for collinear points.
func orient(a, b, c Vec) int {
	cross := b.Sub(a).Cross(c.Sub(a))
	switch {
	case cross > 0:
		return 1
	case cross < 0:
		return -1
	default:
		return 0
	}
}

// onSegment reports whether collinear point p lies within the bounding box of
// segment ab.
func onSegment(a, b, p Vec) bool {
	return p.X >= minf(a.X, b.X) && p.X <= maxf(a.X, b.X) &&
		p.Y >= minf(a.Y, b.Y) && p.Y <= maxf(a.Y, b.Y)
}

// SegmentsIntersect reports whether segment a1-a2 intersects segment b1-b2,
// using orientation tests. Collinear overlapping segments count as
// intersecting.
func SegmentsIntersect(a1, a2, b1, b2 Vec) bool {
	o1 := orient(a1, a2, b1)
	o2 := orient(a1, a2, b2)
	o3 := orient(b1, b2, a1)
	o4 := orient(b1, b2, a2)

	if o1 != o2 && o3 != o4 {
		return true
	}

	// Collinear cases: an endpoint of one segment lies on the other.
	if o1 == 0 && onSegment(a1, a2, b1) {
		return true
	}
	if o2 == 0 && onSegment(a1, a2, b2) {
		return true
	}
	if o3 == 0 && onSegment(b1, b2, a1) {
		return true
	}
	if o4 == 0 && onSegment(b1, b2, a2) {
		return true
	}
	return false
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
