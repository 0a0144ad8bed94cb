package csscolor

import "math"

// hueToRGB resolves one channel of an HSL color. h is in sixths of a
// turn and wraps into [0,6); n1 and n2 are the HSL intermediates.
func hueToRGB(n1, n2, h float64) float64 {
	h = modulo(h, 6)

	if h < 1 {
		return n1 + (n2-n1)*h
	}

	if h < 3 {
		return n2
	}

	if h < 4 {
		return n1 + (n2-n1)*(4-h)
	}

	return n1
}

// hslToRGB converts h in degrees [0,360) and s, l in [0,1] to RGB
// fractions. s == 0 is achromatic: all channels equal l.
func hslToRGB(h, s, l float64) (r, g, b float64) {
	if s == 0 {
		return l, l, l
	}

	var n2 float64
	if l < 0.5 {
		n2 = l * (1 + s)
	} else {
		n2 = l + s - l*s
	}

	n1 := 2*l - n2
	h /= 60
	r = hueToRGB(n1, n2, h+2)
	g = hueToRGB(n1, n2, h)
	b = hueToRGB(n1, n2, h-2)
	return r, g, b
}

// hwbToRGB converts hue/whiteness/blackness to RGB fractions.
// When white+black >= 1 the hue is irrelevant and the result is the
// gray white/(white+black).
func hwbToRGB(hue, white, black float64) (r, g, b float64) {
	if white+black >= 1 {
		l := white / (white + black)
		return l, l, l
	}

	r, g, b = hslToRGB(hue, 1, 0.5)
	r = r*(1-white-black) + white
	g = g*(1-white-black) + white
	b = b*(1-white-black) + white
	return r, g, b
}

// hsvToHSL converts an HSV triple to the equivalent HSL triple.
// The saturation branching (including the l == 0 and l == 1 special
// cases) is a compatibility contract; do not replace it with the
// textbook identity.
func hsvToHSL(h, s, v float64) (float64, float64, float64) {
	l := (2 - s) * v / 2

	if l != 0 {
		switch {
		case l == 1:
			s = 0
		case l < 0.5:
			s = s * v / (l * 2)
		default:
			s = s * v / (2 - l*2)
		}
	}

	return h, s, l
}

func hsvToRGB(h, s, v float64) (r, g, b float64) {
	h, s, l := hsvToHSL(h, s, v)
	return hslToRGB(h, s, l)
}

// rgbToHSV converts RGB fractions to hue [0,360), saturation, and
// value. Achromatic inputs report hue 0 by convention.
func rgbToHSV(r, g, b float64) (h, s, v float64) {
	v = math.Max(r, math.Max(g, b))
	d := v - math.Min(r, math.Min(g, b))

	if d == 0 {
		return 0, 0, v
	}

	s = d / v
	dr := (v - r) / d
	dg := (v - g) / d
	db := (v - b) / d

	switch {
	case r == v:
		h = db - dg
	case g == v:
		h = 2 + dr - db
	default:
		h = 4 + dg - dr
	}

	h = math.Mod(h*60, 360)
	return normalizeAngle(h), s, v
}

// rgbToHSL converts RGB fractions to hue [0,360), saturation, and
// lightness. Achromatic inputs report hue 0 by convention.
func rgbToHSL(r, g, b float64) (h, s, l float64) {
	min := math.Min(r, math.Min(g, b))
	max := math.Max(r, math.Max(g, b))
	l = (max + min) / 2

	if min == max {
		return 0, 0, l
	}

	d := max - min

	if l < 0.5 {
		s = d / (max + min)
	} else {
		s = d / (2 - max - min)
	}

	dr := (max - r) / d
	dg := (max - g) / d
	db := (max - b) / d

	switch {
	case r == max:
		h = db - dg
	case g == max:
		h = 2 + dr - db
	default:
		h = 4 + dg - dr
	}

	h = math.Mod(h*60, 360)
	return normalizeAngle(h), s, l
}

func rgbToHWB(r, g, b float64) (hue, white, black float64) {
	hue, _, _ = rgbToHSL(r, g, b)
	white = math.Min(r, math.Min(g, b))
	black = 1 - math.Max(r, math.Max(g, b))
	return hue, white, black
}

// linearToSRGB applies the sRGB OETF to one linear-light component.
// Alpha is never passed through this function.
func linearToSRGB(x float64) float64 {
	if x >= 0.0031308 {
		return 1.055*math.Pow(x, 1/2.4) - 0.055
	}
	return 12.92 * x
}

// srgbToLinear applies the sRGB EOTF to one gamma-encoded component.
func srgbToLinear(x float64) float64 {
	if x >= 0.04045 {
		return math.Pow((x+0.055)/1.055, 2.4)
	}
	return x / 12.92
}

// oklabToLinearRGB applies the fixed Oklab inverse transform,
// producing linear-light RGB. The matrix constants are the published
// reference values and must not be re-derived.
func oklabToLinearRGB(l, a, b float64) (r, g, bl float64) {
	l_ := cube(l + 0.3963377774*a + 0.2158037573*b)
	m_ := cube(l - 0.1055613458*a - 0.0638541728*b)
	s_ := cube(l - 0.0894841775*a - 1.2914855480*b)

	r = 4.0767245293*l_ - 3.3072168827*m_ + 0.2307590544*s_
	g = -1.2681437731*l_ + 2.6093323231*m_ - 0.3411344290*s_
	bl = -0.0041119885*l_ - 0.7034763098*m_ + 1.7068625689*s_
	return r, g, bl
}

// linearRGBToOklab applies the fixed Oklab forward transform to
// linear-light RGB. Round trips with oklabToLinearRGB agree to within
// floating precision, not exactly.
func linearRGBToOklab(r, g, b float64) (l, a, bl float64) {
	l_ := math.Cbrt(0.4121656120*r + 0.5362752080*g + 0.0514575653*b)
	m_ := math.Cbrt(0.2118591070*r + 0.6807189584*g + 0.1074065790*b)
	s_ := math.Cbrt(0.0883097947*r + 0.2818474174*g + 0.6302613616*b)

	l = 0.2104542553*l_ + 0.7936177850*m_ - 0.0040720468*s_
	a = 1.9779984951*l_ - 2.4285922050*m_ + 0.4505937099*s_
	bl = 0.0259040371*l_ + 0.7827717662*m_ - 0.8086757660*s_
	return l, a, bl
}

// normalizeAngle wraps an angle in degrees into [0,360).
func normalizeAngle(t float64) float64 {
	t = math.Mod(t, 360)
	if t < 0 {
		t += 360
	}
	return t
}

// interpAngle interpolates between two angles in degrees along the
// shorter arc. The result is in [0,360).
func interpAngle(a0, a1, t float64) float64 {
	delta := math.Mod(math.Mod(a1-a0, 360)+540, 360) - 180
	return math.Mod(a0+t*delta+360, 360)
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// modulo is the strictly positive remainder: negative x wraps into
// [0,n).
func modulo(x, n float64) float64 {
	return math.Mod(math.Mod(x, n)+n, n)
}

func cube(x float64) float64 {
	return x * x * x
}

// round255 converts a fraction to a byte, rounding half away from
// zero. Out-of-range fractions saturate.
func round255(v float64) uint8 {
	return uint8(math.Round(clamp01(v) * 255))
}
