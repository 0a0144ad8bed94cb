// Package csscolor provides a CSS color value type with colorspace
// conversion and interpolation.
//
// # Overview
//
// A Color holds normalized red, green, blue, and alpha fractions as
// float64. Colors convert losslessly (up to floating precision) to and
// from HSL, HSV, HWB, linear RGB, and Oklab, blend in four different
// color spaces, and format as hex or CSS rgb() strings.
//
// # Quick Start
//
//	import "github.com/gocolor/csscolor"
//
//	c, err := csscolor.Parse("hsl(120, 50%, 50%)")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	fmt.Println(c.HexString())   // "#40bf40"
//	fmt.Println(c.RGBString())   // "rgb(64,191,64)"
//
//	mid := c.InterpolateOklab(csscolor.RGB255(255, 0, 0), 0.5)
//
// # Value Semantics
//
// Color is a plain value: every conversion, interpolation, and format
// operation returns a new Color and never mutates the receiver. Colors
// may be copied and used from any number of goroutines without
// synchronization.
//
// # Ranges
//
// Components are fractions in [0,1] by convention. Construction from
// bounded inputs (the HSL, HSV, and HWB families) clamps its inputs
// and the resulting channels; direct construction and interpolation
// with t outside [0,1] do not validate, and out-of-range results
// propagate as-is.
package csscolor

// Version is the current version of the library.
const Version = "0.1.0"
