package gamemath

// ApplyFriction reduces speed toward zero by friction amount.
func ApplyFriction(speedX, friction float64) float64 {
	if speedX > friction {
		return speedX - friction
	}
	if speedX < -friction {
		return speedX + friction
	}
	return 0
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

// Accelerate adds delta to speed without pushing |speed| past max. A speed
// that is already above max (a dash) is never reduced here.
func Accelerate(speed, delta, max float64) float64 {
	next := speed + delta
	switch {
	case next > max && delta > 0:
		if speed > max {
			return speed
		}
		return max
	case next < -max && delta < 0:
		if speed < -max {
			return speed
		}
		return -max
	}
	return next
}

// BrakeToward slows a speed whose magnitude exceeds limit by decel, stopping
// at the limit.
func BrakeToward(speed, limit, decel float64) float64 {
	switch {
	case speed > limit:
		speed -= decel
		if speed < limit {
			speed = limit
		}
	case speed < -limit:
		speed += decel
		if speed > -limit {
			speed = -limit
		}
	}
	return speed
}

func ClampFloat(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
