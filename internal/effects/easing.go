package effects

import "math"

// Bezier is a CSS cubic-bezier timing function with end points (0,0) and
// (1,1).
type Bezier struct {
	X1, Y1, X2, Y2 float64
}

var (
	// FallEase is the curve of a particle's transform transition.
	FallEase = Bezier{0.25, 0.46, 0.45, 0.94}
	// EaseOut matches the CSS ease-out keyword.
	EaseOut = Bezier{0, 0, 0.58, 1}
)

func bezierCoord(t, p1, p2 float64) float64 {
	u := 1 - t
	return 3*u*u*t*p1 + 3*u*t*t*p2 + t*t*t
}

func bezierSlope(t, p1, p2 float64) float64 {
	u := 1 - t
	return 3*u*u*p1 + 6*u*t*(p2-p1) + 3*t*t*(1-p2)
}

// Ease maps progress x in [0,1] to eased progress.
func (b Bezier) Ease(x float64) float64 {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 1
	}
	t := x
	for i := 0; i < 8; i++ {
		d := bezierCoord(t, b.X1, b.X2) - x
		if math.Abs(d) < 1e-7 {
			return bezierCoord(t, b.Y1, b.Y2)
		}
		s := bezierSlope(t, b.X1, b.X2)
		if math.Abs(s) < 1e-6 {
			break
		}
		t -= d / s
	}
	lo, hi := 0.0, 1.0
	t = x
	for i := 0; i < 32; i++ {
		v := bezierCoord(t, b.X1, b.X2)
		if math.Abs(v-x) < 1e-7 {
			break
		}
		if v < x {
			lo = t
		} else {
			hi = t
		}
		t = (lo + hi) / 2
	}
	return bezierCoord(t, b.Y1, b.Y2)
}

// CSS renders the timing function.
func (b Bezier) CSS() string {
	return "cubic-bezier(" + num(b.X1) + ", " + num(b.Y1) + ", " + num(b.X2) + ", " + num(b.Y2) + ")"
}
