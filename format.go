package csscolor

import "fmt"

// HexString returns the color as a lowercase hex string: "#rrggbb",
// or "#rrggbbaa" when the alpha byte is below 255.
func (c Color) HexString() string {
	r, g, b, a := c.RGBA255()

	if a < 255 {
		return fmt.Sprintf("#%02x%02x%02x%02x", r, g, b, a)
	}

	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// RGBString returns the color in CSS rgb() form: "rgb(r,g,b)", or
// "rgba(r,g,b,a)" with the alpha fraction printed as-is when A < 1.
func (c Color) RGBString() string {
	r, g, b, _ := c.RGBA255()

	if c.A < 1 {
		return fmt.Sprintf("rgba(%d,%d,%d,%v)", r, g, b, c.A)
	}

	return fmt.Sprintf("rgb(%d,%d,%d)", r, g, b)
}

// String implements fmt.Stringer with the raw fractions.
func (c Color) String() string {
	return fmt.Sprintf("RGBA(%v,%v,%v,%v)", c.R, c.G, c.B, c.A)
}
