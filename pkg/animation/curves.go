package animation

// A Curve transforms linear animation progress in [0, 1] into eased
// motion. Set a [Springback]'s Curve field to apply easing.
type Curve func(t float64) float64

// LinearCurve returns linear progress (no easing).
func LinearCurve(t float64) float64 {
	return clampUnit(t)
}

// DecelerateCurve starts fast and slows toward the end, matching the
// feel of a platform scroller settling. This is the default springback
// curve.
func DecelerateCurve(t float64) float64 {
	t = clampUnit(t)
	inv := 1 - t
	return 1 - inv*inv
}

// EaseInOutCurve accelerates through the middle of the animation and
// eases at both ends.
func EaseInOutCurve(t float64) float64 {
	t = clampUnit(t)
	if t < 0.5 {
		return 2 * t * t
	}
	inv := 1 - t
	return 1 - 2*inv*inv
}

func clampUnit(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}
