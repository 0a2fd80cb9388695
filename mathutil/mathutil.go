// Package mathutil provides small scalar helpers shared by the collision
// and physics packages.
package mathutil

// ClampFloat clamps v to the range [min, max].
func ClampFloat(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// AbsFloat returns the absolute value of v.
func AbsFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
