package vg

import (
	"image/color"
	"math"
)

// Color represents a color with red, green, blue, and alpha components.
// Components are float64 and are not clamped to [0, 1]; operations that
// need a bounded range clamp explicitly. The engine does not enforce
// premultiplied alpha; callers must pick a convention and stay with it.
//
// All blend and composite functions are pure: they return new values and
// never mutate their inputs.
type Color struct {
	R, G, B, A float64
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1.0}
}

// RGBA creates a color from RGBA components.
func RGBA(r, g, b, a float64) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Gray creates an opaque gray color.
func Gray(v float64) Color {
	return Color{R: v, G: v, B: v, A: 1.0}
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Red         = RGB(1, 0, 0)
	Green       = RGB(0, 1, 0)
	Blue        = RGB(0, 0, 1)
	Yellow      = RGB(1, 1, 0)
	Cyan        = RGB(0, 1, 1)
	Magenta     = RGB(1, 0, 1)
	Transparent = RGBA(0, 0, 0, 0)
)

// Add returns the component-wise sum of two colors.
func (c Color) Add(o Color) Color {
	return Color{R: c.R + o.R, G: c.G + o.G, B: c.B + o.B, A: c.A + o.A}
}

// Sub returns the component-wise difference of two colors.
func (c Color) Sub(o Color) Color {
	return Color{R: c.R - o.R, G: c.G - o.G, B: c.B - o.B, A: c.A - o.A}
}

// Mul returns the component-wise product of two colors.
func (c Color) Mul(o Color) Color {
	return Color{R: c.R * o.R, G: c.G * o.G, B: c.B * o.B, A: c.A * o.A}
}

// Scale returns the color with every component multiplied by s.
func (c Color) Scale(s float64) Color {
	return Color{R: c.R * s, G: c.G * s, B: c.B * s, A: c.A * s}
}

// Lerp performs linear interpolation between two colors.
func (c Color) Lerp(o Color, t float64) Color {
	return Color{
		R: c.R + (o.R-c.R)*t,
		G: c.G + (o.G-c.G)*t,
		B: c.B + (o.B-c.B)*t,
		A: c.A + (o.A-c.A)*t,
	}
}

// ToOpaque returns the color with alpha forced to 1.
func (c Color) ToOpaque() Color {
	return Color{R: c.R, G: c.G, B: c.B, A: 1.0}
}

// Luminance returns the grayscale luminance of the color scaled by its
// alpha, using the Rec. 709 coefficients.
func (c Color) Luminance() float64 {
	return (0.2126*c.R + 0.7152*c.G + 0.0722*c.B) * c.A
}

// gamma is the exponent of the sRGB transfer approximation.
const gamma = 2.2

// ToLinear converts the color channels from sRGB to linear light using
// the x^2.2 approximation. Inputs are not clamped: negative or >1
// channels propagate NaN or out-of-range results through the power
// function. Alpha is unchanged.
func (c Color) ToLinear() Color {
	return Color{
		R: math.Pow(c.R, gamma),
		G: math.Pow(c.G, gamma),
		B: math.Pow(c.B, gamma),
		A: c.A,
	}
}

// ToSRGB converts the color channels from linear light back to sRGB
// using the x^(1/2.2) approximation. Alpha is unchanged.
func (c Color) ToSRGB() Color {
	return Color{
		R: math.Pow(c.R, 1/gamma),
		G: math.Pow(c.G, 1/gamma),
		B: math.Pow(c.B, 1/gamma),
		A: c.A,
	}
}

// Premultiply returns a premultiplied color.
func (c Color) Premultiply() Color {
	return Color{R: c.R * c.A, G: c.G * c.A, B: c.B * c.A, A: c.A}
}

// Unpremultiply returns an unpremultiplied color.
func (c Color) Unpremultiply() Color {
	if c.A == 0 {
		return Color{}
	}
	return Color{R: c.R / c.A, G: c.G / c.A, B: c.B / c.A, A: c.A}
}

// HSV creates a color from hue, saturation, value, and alpha.
// h, s and v are in [0, 1]; h wraps via its fractional part. The sector
// is selected by floor(h*6). s == 0 takes the flat gray fast path.
func HSV(h, s, v, a float64) Color {
	if s == 0 {
		return Color{R: v, G: v, B: v, A: a}
	}

	h = h - math.Floor(h)
	h *= 6
	sector := int(math.Floor(h))
	f := h - float64(sector)

	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))

	switch sector {
	case 0:
		return Color{R: v, G: t, B: p, A: a}
	case 1:
		return Color{R: q, G: v, B: p, A: a}
	case 2:
		return Color{R: p, G: v, B: t, A: a}
	case 3:
		return Color{R: p, G: q, B: v, A: a}
	case 4:
		return Color{R: t, G: p, B: v, A: a}
	default:
		return Color{R: v, G: p, B: q, A: a}
	}
}

// Hex creates a color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA".
func Hex(hex string) Color {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b, a uint32
	a = 255

	switch len(hex) {
	case 3: // RGB
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 4: // RGBA
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		parseHex(hex[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6: // RRGGBB
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
	case 8: // RRGGBBAA
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
		parseHex(hex[6:8], &a)
	default:
		return Color{R: 0, G: 0, B: 0, A: 1}
	}

	return Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}
}

// parseHex is a helper for hex parsing
func parseHex(s string, val *uint32) {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return
		}
	}
}

// RGBA implements the standard color.Color interface. Components are
// clamped and alpha-premultiplied per the image/color contract.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(clamp01(c.R*c.A) * 65535)
	g = uint32(clamp01(c.G*c.A) * 65535)
	b = uint32(clamp01(c.B*c.A) * 65535)
	a = uint32(clamp01(c.A) * 65535)
	return
}

// FromColor converts a standard color.Color to Color.
func FromColor(c color.Color) Color {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return Transparent
	}
	// Undo the premultiplication applied by color.Color.RGBA.
	af := float64(a) / 65535
	return Color{
		R: float64(r) / 65535 / af,
		G: float64(g) / 65535 / af,
		B: float64(b) / 65535 / af,
		A: af,
	}
}

// clamp01 restricts a value to the [0, 1] range. NaN passes through.
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
