package retained

import "math"

// EasingFunc defines how animation progress maps to value progress.
// Input t is 0-1 (time progress), output is 0-1 (value progress).
type EasingFunc func(t float64) float64

const viscousFluidScale = 8.0

var (
	viscousFluidNormalize = 1.0 / viscousFluid(1.0)
	viscousFluidOffset    = 1.0 - viscousFluidNormalize*viscousFluid(1.0)
)

// viscousFluid models a fluid that first accelerates under a constant
// force, then decays exponentially once the force is released.
func viscousFluid(x float64) float64 {
	x *= viscousFluidScale
	if x < 1.0 {
		x -= 1.0 - math.Exp(-x)
	} else {
		start := 0.36787944117 // 1/e == exp(-1)
		x = 1.0 - math.Exp(1.0-x)
		x = start + x*(1.0-start)
	}
	return x
}

// Common easing functions
var (
	// EaseLinear - constant speed
	EaseLinear EasingFunc = func(t float64) float64 { return t }

	// EaseOutQuad - decelerate to zero
	EaseOutQuad EasingFunc = func(t float64) float64 { return t * (2 - t) }

	// EaseOutCubic - smooth deceleration
	EaseOutCubic EasingFunc = func(t float64) float64 {
		t--
		return t*t*t + 1
	}

	// EaseInOutCubic - smooth acceleration and deceleration
	EaseInOutCubic EasingFunc = func(t float64) float64 {
		if t < 0.5 {
			return 4 * t * t * t
		}
		return (t-1)*(2*t-2)*(2*t-2) + 1
	}

	// EaseViscousFluid - slow start, fast middle, long settle. Default for
	// drawer transitions.
	EaseViscousFluid EasingFunc = func(t float64) float64 {
		interpolated := viscousFluidNormalize * viscousFluid(t)
		if interpolated > 0 {
			return interpolated + viscousFluidOffset
		}
		return interpolated
	}
)

// EasingByName returns the easing function for a given name.
// Returns nil if the name is unknown.
func EasingByName(name string) EasingFunc {
	switch name {
	case "linear":
		return EaseLinear
	case "ease-out":
		return EaseOutQuad
	case "cubic":
		return EaseOutCubic
	case "ease-in-out", "ease":
		return EaseInOutCubic
	case "viscous", "":
		return EaseViscousFluid
	default:
		return nil
	}
}

// clamp restricts a value to a range.
func clamp(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
