package fractalcolor

import (
	"math"

	"github.com/gogpu/fractalcolor/internal/color"
)

// ColorRGB is the canonical in-memory color: three components in [0,1].
type ColorRGB struct {
	R, G, B float32
}

// clamp01 restricts a value to [0, 1].
func clamp01(x float32) float32 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// lerp performs linear interpolation between a and b.
func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// Clamp returns c with each channel restricted to [0, 1].
func (c ColorRGB) Clamp() ColorRGB {
	return ColorRGB{R: clamp01(c.R), G: clamp01(c.G), B: clamp01(c.B)}
}

// Lerp interpolates linearly between c and other in RGB space.
func (c ColorRGB) Lerp(other ColorRGB, t float32) ColorRGB {
	return ColorRGB{
		R: lerp(c.R, other.R, t),
		G: lerp(c.G, other.G, t),
		B: lerp(c.B, other.B, t),
	}
}

// Hex parses a color from a hex string. Supports "RGB" and "RRGGBB",
// with or without a leading '#'.
func Hex(hex string) ColorRGB {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b uint32
	switch len(hex) {
	case 3:
		parseHexDigits(hex[0:1], &r)
		parseHexDigits(hex[1:2], &g)
		parseHexDigits(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 6:
		parseHexDigits(hex[0:2], &r)
		parseHexDigits(hex[2:4], &g)
		parseHexDigits(hex[4:6], &b)
	default:
		return ColorRGB{}
	}

	return ColorRGB{R: float32(r) / 255, G: float32(g) / 255, B: float32(b) / 255}
}

func parseHexDigits(s string, val *uint32) {
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

// defaultHueWheel is the engine's zero-layer fallback: a fixed HSL wheel
// driven by iteration count, used by apply when the layer stack is empty.
// hue = (iter * 3.5) mod 360, s = 0.8, l = 0.5.
func defaultHueWheel(iterations float32) ColorRGB {
	hue := float32(math.Mod(float64(iterations)*3.5, 360))
	if hue < 0 {
		hue += 360
	}
	r, g, b := color.HSLToRGB(hue, 0.8, 0.5)
	return ColorRGB{R: r, G: g, B: b}
}
