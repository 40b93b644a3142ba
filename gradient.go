package fractalcolor

import (
	"math"
	"sort"

	"github.com/gogpu/fractalcolor/internal/color"
)

// ColorSpaceKind selects the space a Gradient interpolates in.
type ColorSpaceKind string

const (
	SpaceRGB   ColorSpaceKind = "rgb"
	SpaceHSL   ColorSpaceKind = "hsl"
	SpaceOKLab ColorSpaceKind = "oklab"
)

// InterpolationKind selects the easing curve applied to the local
// interpolation factor between two stops.
type InterpolationKind string

const (
	InterpLinear     InterpolationKind = "linear"
	InterpSmoothstep InterpolationKind = "smooth"
	InterpStep       InterpolationKind = "step"
)

// ColorStop is one (position, color) pair in a Gradient's stop list.
type ColorStop struct {
	Position float32
	Color    ColorRGB
}

// Gradient is an ordered sequence of color stops sampled cyclically.
// Ported from the teacher's gradient.go (ColorStop, sortStops,
// colorAtOffset), generalized from the teacher's Pad/Repeat/Reflect
// extend modes to the spec's single cyclic (modulo-1) rule, and from a
// single linear-sRGB interpolation to the RGB/HSL/OKLab axis.
type Gradient struct {
	Stops         []ColorStop
	ColorSpace    ColorSpaceKind
	Interpolation InterpolationKind
}

// NewGradient builds a gradient from stops, sorting them by position.
func NewGradient(space ColorSpaceKind, interp InterpolationKind, stops ...ColorStop) *Gradient {
	sorted := make([]ColorStop, len(stops))
	copy(sorted, stops)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Position < sorted[j].Position })
	return &Gradient{Stops: sorted, ColorSpace: space, Interpolation: interp}
}

// Sample evaluates the gradient at t, reduced modulo 1 (cyclic): for all
// t, Sample(t) == Sample(t+1).
func (g *Gradient) Sample(t float32) ColorRGB {
	if len(g.Stops) == 0 {
		return ColorRGB{}
	}
	if len(g.Stops) == 1 {
		return g.Stops[0].Color
	}

	t = wrapUnit(t)

	lo, hi := g.adjacentStops(t)
	f := float32(0)
	if hi.Position != lo.Position {
		f = (t - lo.Position) / (hi.Position - lo.Position)
	}
	f = g.applyCurve(f)

	return g.interpolate(lo.Color, hi.Color, f)
}

// wrapUnit reduces t into [0,1) via t - floor(t).
func wrapUnit(t float32) float32 {
	return t - float32(math.Floor(float64(t)))
}

// adjacentStops finds the stops L, U with L.pos <= t <= U.pos. Stops
// wrap: past the last stop, L is the last stop and U is the first
// (offset by +1) so that sampling stays cyclic across the seam.
func (g *Gradient) adjacentStops(t float32) (lo, hi ColorStop) {
	stops := g.Stops
	if t <= stops[0].Position {
		last := stops[len(stops)-1]
		last.Position -= 1
		return last, stops[0]
	}
	for i := 0; i < len(stops)-1; i++ {
		if t >= stops[i].Position && t <= stops[i+1].Position {
			return stops[i], stops[i+1]
		}
	}
	last := stops[len(stops)-1]
	first := stops[0]
	first.Position += 1
	return last, first
}

func (g *Gradient) applyCurve(f float32) float32 {
	switch g.Interpolation {
	case InterpSmoothstep:
		return f * f * (3 - 2*f)
	case InterpStep:
		if f < 0.5 {
			return 0
		}
		return 1
	default:
		return f
	}
}

func (g *Gradient) interpolate(a, b ColorRGB, t float32) ColorRGB {
	switch g.ColorSpace {
	case SpaceHSL:
		return interpolateHSL(a, b, t)
	case SpaceOKLab:
		return interpolateOKLab(a, b, t)
	default:
		return a.Lerp(b, t)
	}
}

func interpolateHSL(a, b ColorRGB, t float32) ColorRGB {
	h1, s1, l1 := color.RGBToHSL(a.R, a.G, a.B)
	h2, s2, l2 := color.RGBToHSL(b.R, b.G, b.B)

	// Shortest-arc hue interpolation: handle wrap by +-1 full turn.
	d := h2 - h1
	if d > 180 {
		h2 -= 360
	} else if d < -180 {
		h2 += 360
	}

	h := lerp(h1, h2, t)
	s := lerp(s1, s2, t)
	l := lerp(l1, l2, t)

	r, g, bl := color.HSLToRGB(h, s, l)
	return ColorRGB{R: r, G: g, B: bl}
}

func interpolateOKLab(a, b ColorRGB, t float32) ColorRGB {
	L1, a1, b1 := color.RGBToOKLab(a.R, a.G, a.B)
	L2, a2, b2 := color.RGBToOKLab(b.R, b.G, b.B)

	L := lerp(L1, L2, t)
	aa := lerp(a1, a2, t)
	bb := lerp(b1, b2, t)

	r, g, bl := color.OKLabToRGB(L, aa, bb)
	return ColorRGB{R: clamp01(r), G: clamp01(g), B: clamp01(bl)}
}

// GenerateLUT samples the gradient at n evenly spaced points across
// [0,1] (i/(n-1) for i in [0,n)) and packs them as an RGBA byte strip,
// alpha 255 throughout. Grounded in the teacher's internal/color/lut.go
// precomputed-table idiom, generalized from sRGB conversion to arbitrary
// gradient sampling.
func (g *Gradient) GenerateLUT(n int) []byte {
	out := make([]byte, 4*n)
	if n == 0 {
		return out
	}
	if n == 1 {
		c := g.Sample(0).Clamp()
		out[0], out[1], out[2], out[3] = toByte(c.R), toByte(c.G), toByte(c.B), 255
		return out
	}
	for i := 0; i < n; i++ {
		t := float32(i) / float32(n-1)
		c := g.Sample(t).Clamp()
		out[4*i+0] = toByte(c.R)
		out[4*i+1] = toByte(c.G)
		out[4*i+2] = toByte(c.B)
		out[4*i+3] = 255
	}
	return out
}

// toByte rounds a single [0,1] component through the engine's final
// RGBA write step (color.F32ToU8), so the LUT strip and the per-pixel
// output buffer always agree on rounding behavior.
func toByte(v float32) byte {
	return color.F32ToU8(color.ColorF32{R: v}).R
}
