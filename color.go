package rasterkit

import (
	"image/color"
	"math"
)

// ColorEpsilon is the per-component tolerance used by [Color.Equal].
const ColorEpsilon = 0.01

// Color is an opaque color with red, green and blue components in [0, 1].
type Color struct {
	R, G, B float64
}

// RGB creates a color from its components.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Equal reports whether every component of c differs from other by less
// than ColorEpsilon. Colors read back from a Pixmap are quantized to 8 bits,
// so exact comparison would reject colors that were written unchanged.
func (c Color) Equal(other Color) bool {
	return math.Abs(c.R-other.R) < ColorEpsilon &&
		math.Abs(c.G-other.G) < ColorEpsilon &&
		math.Abs(c.B-other.B) < ColorEpsilon
}

// Lerp interpolates between c and other. t=0 returns c, t=1 returns other.
func (c Color) Lerp(other Color, t float64) Color {
	return Color{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
	}
}

// Color converts c to an opaque color.NRGBA.
func (c Color) Color() color.Color {
	r, g, b := c.bytes()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

// bytes quantizes c to 8 bits per channel.
func (c Color) bytes() (r, g, b uint8) {
	return uint8(clamp255(c.R * 255)), uint8(clamp255(c.G * 255)), uint8(clamp255(c.B * 255))
}

// fromBytes is the inverse of bytes.
func fromBytes(r, g, b uint8) Color {
	return Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
	}
}

// FromColor converts a standard color.Color to a Color, dropping alpha.
// Premultiplied components are divided back out for translucent colors.
func FromColor(c color.Color) Color {
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fromBytes(nc.R, nc.G, nc.B)
}

// Hex creates a color from a hex string.
// Supports formats: "RGB" and "RRGGBB", with an optional leading '#'.
// Malformed input yields black.
func Hex(hex string) Color {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b uint32
	switch len(hex) {
	case 3: // RGB
		if !parseHex(hex[0:1], &r) || !parseHex(hex[1:2], &g) || !parseHex(hex[2:3], &b) {
			return Color{}
		}
		r, g, b = r*17, g*17, b*17
	case 6: // RRGGBB
		if !parseHex(hex[0:2], &r) || !parseHex(hex[2:4], &g) || !parseHex(hex[4:6], &b) {
			return Color{}
		}
	default:
		return Color{}
	}

	return fromBytes(uint8(r), uint8(g), uint8(b))
}

// parseHex parses s as a hexadecimal number into val.
func parseHex(s string, val *uint32) bool {
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
			return false
		}
	}
	return true
}

// clamp255 rounds x and clamps it to [0, 255].
func clamp255(x float64) float64 {
	x = math.Round(x)
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}
