package csscolor

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ParseError describes a color string that could not be parsed. It is
// the only error the package produces.
type ParseError struct {
	Input  string // the original, untrimmed input
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid color %q: %s", e.Input, e.Reason)
}

// Parse converts a CSS color string to a Color. Supported forms:
//
//   - hex literals: "#rgb", "#rgba", "#rrggbb", "#rrggbbaa", with or
//     without the leading "#"
//   - functional notation: rgb()/rgba() with 0-255 values or
//     percentages, hsl()/hsla(), hwb(), and hsv(); arguments separated
//     by commas or spaces, alpha optionally after "/"
//   - named colors ("rebeccapurple") and "transparent"
//
// Parsing is case-insensitive and ignores surrounding whitespace.
// Every other text entry point of the package (UnmarshalText, YAML
// decoding, the CLI) delegates here.
func Parse(s string) (Color, error) {
	c, err := parseColor(s)
	if err != nil {
		Logger().Debug("color parse failed", "input", s, "error", err)
	}
	return c, err
}

func parseColor(input string) (Color, error) {
	s := strings.ToLower(strings.TrimSpace(input))

	if s == "transparent" {
		return Color{}, nil
	}

	if named, ok := colornames.Map[s]; ok {
		return RGBA255(named.R, named.G, named.B, named.A), nil
	}

	if strings.HasPrefix(s, "#") {
		return parseHex(input, s[1:])
	}

	if open := strings.IndexByte(s, '('); open >= 0 {
		if !strings.HasSuffix(s, ")") {
			return Color{}, &ParseError{Input: input, Reason: "missing closing parenthesis"}
		}
		return parseFunctional(input, strings.TrimSpace(s[:open]), s[open+1:len(s)-1])
	}

	// Bare hex without the leading "#" is accepted last so that it
	// cannot shadow named colors.
	if c, err := parseHex(input, s); err == nil {
		return c, nil
	}

	return Color{}, &ParseError{Input: input, Reason: "unknown color format"}
}

// parseHex parses 3, 4, 6, or 8 hex digits.
func parseHex(input, hex string) (Color, error) {
	n, err := strconv.ParseUint(hex, 16, 64)
	if err != nil {
		return Color{}, &ParseError{Input: input, Reason: "invalid hex digits"}
	}

	var r, g, b uint8
	a := uint8(255)

	switch len(hex) {
	case 3:
		r, g, b = uint8(n>>8&0xf*17), uint8(n>>4&0xf*17), uint8(n&0xf*17)
	case 4:
		r, g, b, a = uint8(n>>12&0xf*17), uint8(n>>8&0xf*17), uint8(n>>4&0xf*17), uint8(n&0xf*17)
	case 6:
		r, g, b = uint8(n>>16), uint8(n>>8), uint8(n)
	case 8:
		r, g, b, a = uint8(n>>24), uint8(n>>16), uint8(n>>8), uint8(n)
	default:
		return Color{}, &ParseError{Input: input, Reason: "hex literals must have 3, 4, 6, or 8 digits"}
	}

	return RGBA255(r, g, b, a), nil
}

// argSeparators covers both the legacy comma syntax and the modern
// space syntax with "/" before the alpha.
func argSeparators(r rune) bool {
	return r == ',' || r == '/' || r == ' ' || r == '\t'
}

func parseFunctional(input, name, args string) (Color, error) {
	fields := strings.FieldsFunc(args, argSeparators)
	if len(fields) != 3 && len(fields) != 4 {
		return Color{}, &ParseError{Input: input, Reason: fmt.Sprintf("%s() takes 3 or 4 arguments", name)}
	}

	alpha := 1.0
	if len(fields) == 4 {
		var err error
		alpha, err = parseFraction(fields[3])
		if err != nil {
			return Color{}, &ParseError{Input: input, Reason: "invalid alpha value"}
		}
	}

	switch name {
	case "rgb", "rgba":
		var ch [3]float64
		for i, f := range fields[:3] {
			v, err := parseRGBChannel(f)
			if err != nil {
				return Color{}, &ParseError{Input: input, Reason: "invalid rgb channel"}
			}
			ch[i] = v
		}
		return RGBA(clamp01(ch[0]), clamp01(ch[1]), clamp01(ch[2]), clamp01(alpha)), nil

	case "hsl", "hsla", "hwb", "hsv":
		h, err := parseAngle(fields[0])
		if err != nil {
			return Color{}, &ParseError{Input: input, Reason: "invalid hue"}
		}
		x, err := parseFraction(fields[1])
		if err != nil {
			return Color{}, &ParseError{Input: input, Reason: "invalid " + name + " component"}
		}
		y, err := parseFraction(fields[2])
		if err != nil {
			return Color{}, &ParseError{Input: input, Reason: "invalid " + name + " component"}
		}

		switch name {
		case "hwb":
			return HWBA(h, x, y, clamp01(alpha)), nil
		case "hsv":
			return HSVA(h, x, y, alpha), nil
		default:
			return HSLA(h, x, y, alpha), nil
		}
	}

	return Color{}, &ParseError{Input: input, Reason: "unsupported function " + name + "()"}
}

// parseRGBChannel parses an rgb() argument: 0-255, or a percentage.
// The result is a fraction.
func parseRGBChannel(s string) (float64, error) {
	if p, ok := strings.CutSuffix(s, "%"); ok {
		v, err := strconv.ParseFloat(p, 64)
		return v / 100, err
	}
	v, err := strconv.ParseFloat(s, 64)
	return v / 255, err
}

// parseFraction parses a [0,1] fraction or a percentage.
func parseFraction(s string) (float64, error) {
	if p, ok := strings.CutSuffix(s, "%"); ok {
		v, err := strconv.ParseFloat(p, 64)
		return v / 100, err
	}
	return strconv.ParseFloat(s, 64)
}

// parseAngle parses a hue with an optional CSS angle unit, returning
// degrees.
func parseAngle(s string) (float64, error) {
	scale := 1.0
	switch {
	case strings.HasSuffix(s, "deg"):
		s = strings.TrimSuffix(s, "deg")
	case strings.HasSuffix(s, "grad"):
		s, scale = strings.TrimSuffix(s, "grad"), 360.0/400.0
	case strings.HasSuffix(s, "rad"):
		s, scale = strings.TrimSuffix(s, "rad"), 180/math.Pi
	case strings.HasSuffix(s, "turn"):
		s, scale = strings.TrimSuffix(s, "turn"), 360
	}
	v, err := strconv.ParseFloat(s, 64)
	return v * scale, err
}
