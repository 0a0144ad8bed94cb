package csscolor

// Color represents a color with red, green, blue, and alpha fractions.
// Each component is in the range [0,1] by convention; direct field
// access and construction are not validated.
//
// The zero value is fully transparent black. Use Black, White, or the
// constructor functions for opaque colors.
type Color struct {
	R, G, B, A float64
}

// Common colors.
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Transparent = Color{}
)

// RGB creates an opaque color from RGB fractions in [0,1].
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// RGBA creates a color from RGBA fractions in [0,1].
func RGBA(r, g, b, a float64) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// RGB255 creates an opaque color from 8-bit RGB components.
func RGB255(r, g, b uint8) Color {
	return Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: 1,
	}
}

// RGBA255 creates a color from 8-bit RGBA components.
func RGBA255(r, g, b, a uint8) Color {
	return Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}
}

// LinearRGB creates an opaque color from linear-light RGB fractions,
// gamma-encoding each channel.
func LinearRGB(r, g, b float64) Color {
	return LinearRGBA(r, g, b, 1)
}

// LinearRGBA creates a color from linear-light RGBA fractions.
// The RGB channels are gamma-encoded; alpha is stored as given.
func LinearRGBA(r, g, b, a float64) Color {
	return RGBA(linearToSRGB(r), linearToSRGB(g), linearToSRGB(b), a)
}

// LinearRGB255 creates an opaque color from 8-bit linear-light RGB
// components.
func LinearRGB255(r, g, b uint8) Color {
	return LinearRGBA(float64(r)/255, float64(g)/255, float64(b)/255, 1)
}

// LinearRGBA255 creates a color from 8-bit linear-light RGBA
// components.
func LinearRGBA255(r, g, b, a uint8) Color {
	return LinearRGBA(float64(r)/255, float64(g)/255, float64(b)/255, float64(a)/255)
}

// HSV creates an opaque color from hue in degrees, saturation, and
// value. The hue wraps into [0,360); saturation and value clamp to
// [0,1].
func HSV(h, s, v float64) Color {
	return HSVA(h, s, v, 1)
}

// HSVA creates a color from hue, saturation, value, and alpha.
func HSVA(h, s, v, a float64) Color {
	r, g, b := hsvToRGB(normalizeAngle(h), clamp01(s), clamp01(v))
	return RGBA(clamp01(r), clamp01(g), clamp01(b), clamp01(a))
}

// HSL creates an opaque color from hue in degrees, saturation, and
// lightness. The hue wraps into [0,360); saturation and lightness
// clamp to [0,1].
func HSL(h, s, l float64) Color {
	return HSLA(h, s, l, 1)
}

// HSLA creates a color from hue, saturation, lightness, and alpha.
func HSLA(h, s, l, a float64) Color {
	r, g, b := hslToRGB(normalizeAngle(h), clamp01(s), clamp01(l))
	return RGBA(clamp01(r), clamp01(g), clamp01(b), clamp01(a))
}

// HWB creates an opaque color from hue in degrees, whiteness, and
// blackness. The hue wraps into [0,360); whiteness and blackness
// clamp to [0,1].
func HWB(h, w, b float64) Color {
	return HWBA(h, w, b, 1)
}

// HWBA creates a color from hue, whiteness, blackness, and alpha.
// Alpha is stored as given, without clamping.
func HWBA(h, w, b, a float64) Color {
	red, green, blue := hwbToRGB(normalizeAngle(h), clamp01(w), clamp01(b))
	return RGBA(clamp01(red), clamp01(green), clamp01(blue), a)
}

// Oklab creates an opaque color from Oklab coordinates: l is the
// perceived lightness, a the green/red axis, b the blue/yellow axis.
func Oklab(l, a, b float64) Color {
	return Oklaba(l, a, b, 1)
}

// Oklaba creates a color from Oklab coordinates and alpha. Inputs are
// not validated; out-of-gamut coordinates produce out-of-range
// channels.
func Oklaba(l, a, b, alpha float64) Color {
	r, g, bl := oklabToLinearRGB(l, a, b)
	return LinearRGBA(r, g, bl, alpha)
}

// RGBA255 returns the 8-bit RGBA components, rounding half away from
// zero.
func (c Color) RGBA255() (r, g, b, a uint8) {
	return round255(c.R), round255(c.G), round255(c.B), round255(c.A)
}

// HSVA returns the hue in degrees [0,360), saturation, value, and
// alpha. Achromatic colors report hue 0.
func (c Color) HSVA() (h, s, v, a float64) {
	h, s, v = rgbToHSV(c.R, c.G, c.B)
	return h, s, v, c.A
}

// HSLA returns the hue in degrees [0,360), saturation, lightness, and
// alpha. Achromatic colors report hue 0.
func (c Color) HSLA() (h, s, l, a float64) {
	h, s, l = rgbToHSL(c.R, c.G, c.B)
	return h, s, l, c.A
}

// HWBA returns the hue in degrees [0,360), whiteness, blackness, and
// alpha.
func (c Color) HWBA() (h, w, b, a float64) {
	h, w, b = rgbToHWB(c.R, c.G, c.B)
	return h, w, b, c.A
}

// LinearRGBA returns the linear-light RGBA fractions. Only the RGB
// channels are decoded; alpha is always linear.
func (c Color) LinearRGBA() (r, g, b, a float64) {
	return srgbToLinear(c.R), srgbToLinear(c.G), srgbToLinear(c.B), c.A
}

// LinearRGBA255 returns the 8-bit linear-light RGBA components,
// rounding half away from zero.
func (c Color) LinearRGBA255() (r, g, b, a uint8) {
	lr, lg, lb, la := c.LinearRGBA()
	return round255(lr), round255(lg), round255(lb), round255(la)
}

// Oklaba returns the Oklab coordinates and alpha.
func (c Color) Oklaba() (l, a, b, alpha float64) {
	lr, lg, lb, _ := c.LinearRGBA()
	l, a, b = linearRGBToOklab(lr, lg, lb)
	return l, a, b, c.A
}
