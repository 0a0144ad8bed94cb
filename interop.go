package csscolor

import (
	"image/color"
	"math"
)

// RGBA implements the standard color.Color interface, returning
// alpha-premultiplied 16-bit components.
func (c Color) RGBA() (r, g, b, a uint32) {
	alpha := clamp01(c.A)
	r = uint32(math.Round(clamp01(c.R) * alpha * 65535))
	g = uint32(math.Round(clamp01(c.G) * alpha * 65535))
	b = uint32(math.Round(clamp01(c.B) * alpha * 65535))
	a = uint32(math.Round(alpha * 65535))
	return r, g, b, a
}

// NRGBA returns the color as a non-premultiplied 8-bit color.NRGBA.
func (c Color) NRGBA() color.NRGBA {
	r, g, b, a := c.RGBA255()
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

// NRGBA64 returns the color as a non-premultiplied 16-bit
// color.NRGBA64.
func (c Color) NRGBA64() color.NRGBA64 {
	return color.NRGBA64{
		R: uint16(math.Round(clamp01(c.R) * 65535)),
		G: uint16(math.Round(clamp01(c.G) * 65535)),
		B: uint16(math.Round(clamp01(c.B) * 65535)),
		A: uint16(math.Round(clamp01(c.A) * 65535)),
	}
}

// FromColor converts any standard color.Color to a Color,
// un-premultiplying the alpha.
func FromColor(c color.Color) Color {
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return Color{
		R: float64(n.R) / 65535,
		G: float64(n.G) / 65535,
		B: float64(n.B) / 65535,
		A: float64(n.A) / 65535,
	}
}

// Array returns the components as a 4-element array.
func (c Color) Array() [4]float64 {
	return [4]float64{c.R, c.G, c.B, c.A}
}

// FromArray creates a color from a 4-element RGBA array.
func FromArray(v [4]float64) Color {
	return Color{R: v[0], G: v[1], B: v[2], A: v[3]}
}

// FromArray3 creates an opaque color from a 3-element RGB array.
func FromArray3(v [3]float64) Color {
	return Color{R: v[0], G: v[1], B: v[2], A: 1}
}
