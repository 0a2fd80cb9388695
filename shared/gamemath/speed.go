package gamemath

// ApplyDamping multiplies speed by the damping factor and snaps values that
// have decayed below the threshold to zero so bodies come to a full rest
// instead of drifting forever.
func ApplyDamping(speed, damping, restThreshold float64) float64 {
	speed *= damping
	if speed > -restThreshold && speed < restThreshold {
		return 0
	}
	return speed
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}
