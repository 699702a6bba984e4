package animation

// Curve maps linear progress t in [0, 1] to eased progress.
type Curve func(t float64) float64

// Linear is the identity curve.
func Linear(t float64) float64 {
	return t
}

// Material motion curves, equivalent to the CSS cubic-bezier values the
// ripple stylesheet uses.
var (
	Standard   = CubicBezier(0.4, 0.0, 0.2, 1.0)
	Decelerate = CubicBezier(0.0, 0.0, 0.2, 1.0)
	Accelerate = CubicBezier(0.4, 0.0, 1.0, 1.0)
)

// CubicBezier returns an easing function matching CSS cubic-bezier(x1, y1, x2, y2).
// The x polynomial is monotonic for x1, x2 in [0, 1], so the parameter for a
// given t is found by bisection.
func CubicBezier(x1, y1, x2, y2 float64) Curve {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		lo, hi := 0.0, 1.0
		u := t
		for range 24 {
			x := bezier(x1, x2, u)
			if x < t {
				lo = u
			} else {
				hi = u
			}
			u = (lo + hi) / 2
		}
		return bezier(y1, y2, u)
	}
}

// bezier evaluates one axis of a cubic bezier whose end points are 0 and 1.
func bezier(p1, p2, u float64) float64 {
	v := 1 - u
	return 3*v*v*u*p1 + 3*v*u*u*p2 + u*u*u
}
