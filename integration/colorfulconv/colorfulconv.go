// Package colorfulconv bridges csscolor.Color and go-colorful's
// colorful.Color. It lives outside the core package so that projects
// not using go-colorful never touch the dependency.
package colorfulconv

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/gocolor/csscolor"
)

// FromColorful converts a go-colorful color to an opaque
// csscolor.Color.
func FromColorful(c colorful.Color) csscolor.Color {
	return csscolor.Color{R: c.R, G: c.G, B: c.B, A: 1}
}

// ToColorful converts a csscolor.Color to a go-colorful color. The
// alpha is dropped, since colorful.Color carries none.
func ToColorful(c csscolor.Color) colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}
