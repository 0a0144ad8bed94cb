package csscolor

import (
	"math"
	"testing"
)

func TestInterpolateRGB(t *testing.T) {
	a := RGBA(0, 0, 0, 0)
	b := RGBA(1, 1, 1, 1)

	if got := a.InterpolateRGB(b, 0); got != a {
		t.Errorf("t=0: got %v, want %v", got, a)
	}
	if got := a.InterpolateRGB(b, 1); got != b {
		t.Errorf("t=1: got %v, want %v", got, b)
	}
	if got := a.InterpolateRGB(b, 0.5); !colorNear(got, Color{0.5, 0.5, 0.5, 0.5}, 1e-12) {
		t.Errorf("t=0.5: got %v", got)
	}

	// t is not clamped: extrapolation produces out-of-range channels.
	if got := a.InterpolateRGB(b, 2); got.R != 2 {
		t.Errorf("t=2: got R=%v, want 2", got.R)
	}
	if got := a.InterpolateRGB(b, -1); got.R != -1 {
		t.Errorf("t=-1: got R=%v, want -1", got.R)
	}
}

func TestInterpolateLinearRGB(t *testing.T) {
	a := RGB(0, 0, 0)
	b := RGB(1, 1, 1)

	if got := a.InterpolateLinearRGB(b, 0); !colorNear(got, a, 1e-12) {
		t.Errorf("t=0: got %v", got)
	}
	if got := a.InterpolateLinearRGB(b, 1); !colorNear(got, b, 1e-12) {
		t.Errorf("t=1: got %v", got)
	}

	// The linear-space midpoint of black and white is lighter than
	// the gamma-space midpoint after re-encoding.
	mid := a.InterpolateLinearRGB(b, 0.5)
	want := linearToSRGB(0.5)
	if !floatNear(mid.R, want, 1e-12) || !floatNear(mid.G, want, 1e-12) || !floatNear(mid.B, want, 1e-12) {
		t.Errorf("linear midpoint = %v, want channels %v", mid, want)
	}
	if mid.R <= 0.5 {
		t.Errorf("linear midpoint %v not lighter than gamma midpoint", mid.R)
	}
}

// TestInterpolateHSVShortestArc checks that hue blending crosses the
// 0/360 seam instead of sweeping the long way around.
func TestInterpolateHSVShortestArc(t *testing.T) {
	a := HSV(350, 1, 1)
	b := HSV(10, 1, 1)

	mid := a.InterpolateHSV(b, 0.5)
	h, s, v, _ := mid.HSVA()
	if !angleNear(h, 0, 1e-6) || !floatNear(s, 1, 1e-9) || !floatNear(v, 1, 1e-9) {
		t.Errorf("midpoint of 350 and 10 degrees = (h=%v, s=%v, v=%v), want (0, 1, 1)", h, s, v)
	}

	// And symmetrically in the other direction.
	mid = b.InterpolateHSV(a, 0.5)
	h, _, _, _ = mid.HSVA()
	if !angleNear(h, 0, 1e-6) {
		t.Errorf("midpoint of 10 and 350 degrees: hue %v, want 0", h)
	}
}

// angleNear compares two angles in degrees, treating 0 and 360 as the
// same point.
func angleNear(a, b, epsilon float64) bool {
	d := math.Abs(math.Mod(a-b+540, 360) - 180)
	return d < epsilon
}

func TestInterpolateHSVEndpoints(t *testing.T) {
	a := HSV(40, 0.5, 0.8)
	b := HSV(200, 0.9, 0.3)

	if got := a.InterpolateHSV(b, 0); !colorNear(got, a, 1e-9) {
		t.Errorf("t=0: got %v, want %v", got, a)
	}
	if got := a.InterpolateHSV(b, 1); !colorNear(got, b, 1e-9) {
		t.Errorf("t=1: got %v, want %v", got, b)
	}
}

func TestInterpolateOklab(t *testing.T) {
	a := RGB(1, 0, 0)
	b := RGB(0, 0, 1)

	if got := a.InterpolateOklab(b, 0); !colorNear(got, a, 1e-6) {
		t.Errorf("t=0: got %v, want %v", got, a)
	}
	if got := a.InterpolateOklab(b, 1); !colorNear(got, b, 1e-6) {
		t.Errorf("t=1: got %v, want %v", got, b)
	}

	// The midpoint's lightness sits between the endpoints'.
	la, _, _, _ := a.Oklaba()
	lb, _, _, _ := b.Oklaba()
	lm, _, _, _ := a.InterpolateOklab(b, 0.5).Oklaba()
	if !floatNear(lm, (la+lb)/2, 1e-6) {
		t.Errorf("midpoint lightness %v, want %v", lm, (la+lb)/2)
	}
}

func TestInterpolateAlpha(t *testing.T) {
	a := RGBA(1, 0, 0, 0)
	b := RGBA(1, 0, 0, 1)

	for _, tt := range []struct {
		t    float64
		want float64
	}{{0, 0}, {0.25, 0.25}, {1, 1}} {
		got := a.InterpolateRGB(b, tt.t)
		if !floatNear(got.A, tt.want, 1e-12) {
			t.Errorf("alpha at t=%v: got %v, want %v", tt.t, got.A, tt.want)
		}
	}
}
