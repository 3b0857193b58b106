package gamemath

import "math"

// StepGravity advances a body one physics step. Y grows downward, so a
// negative velocity is rising.
func StepGravity(y, velY, gravity float64) (newY, newVelY float64) {
	return y + velY, velY + gravity
}

// ClampEnergy clamps energy to [0, max].
func ClampEnergy(energy, max int) int {
	if energy < 0 {
		return 0
	}
	if energy > max {
		return max
	}
	return energy
}

// ClampPercentage clamps a percentage to [0, 100]. NaN maps to 0.
func ClampPercentage(pct float64) float64 {
	if math.IsNaN(pct) || pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// Approach moves current toward target by at most step.
func Approach(current, target, step float64) float64 {
	if current < target {
		return math.Min(current+step, target)
	}
	if current > target {
		return math.Max(current-step, target)
	}
	return current
}
