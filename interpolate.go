package csscolor

// InterpolateRGB blends c with other in the gamma-encoded RGB color
// space. t is not clamped: 0 yields c, 1 yields other, values outside
// [0,1] extrapolate.
func (c Color) InterpolateRGB(other Color, t float64) Color {
	return Color{
		R: c.R + t*(other.R-c.R),
		G: c.G + t*(other.G-c.G),
		B: c.B + t*(other.B-c.B),
		A: c.A + t*(other.A-c.A),
	}
}

// InterpolateLinearRGB blends c with other in the linear RGB color
// space: both colors are decoded to linear light, blended, and
// re-encoded.
func (c Color) InterpolateLinearRGB(other Color, t float64) Color {
	r1, g1, b1, a1 := c.LinearRGBA()
	r2, g2, b2, a2 := other.LinearRGBA()
	return LinearRGBA(
		r1+t*(r2-r1),
		g1+t*(g2-g1),
		b1+t*(b2-b1),
		a1+t*(a2-a1),
	)
}

// InterpolateHSV blends c with other in the HSV color space. The hue
// travels the shorter arc around the hue circle; saturation, value,
// and alpha blend linearly.
func (c Color) InterpolateHSV(other Color, t float64) Color {
	h1, s1, v1, a1 := c.HSVA()
	h2, s2, v2, a2 := other.HSVA()
	return HSVA(
		interpAngle(h1, h2, t),
		s1+t*(s2-s1),
		v1+t*(v2-v1),
		a1+t*(a2-a1),
	)
}

// InterpolateOklab blends c with other in the Oklab color space,
// which gives perceptually even transitions.
func (c Color) InterpolateOklab(other Color, t float64) Color {
	l1, a1, b1, alpha1 := c.Oklaba()
	l2, a2, b2, alpha2 := other.Oklaba()
	return Oklaba(
		l1+t*(l2-l1),
		a1+t*(a2-a1),
		b1+t*(b2-b1),
		alpha1+t*(alpha2-alpha1),
	)
}
