// Package algorithms implements the per-pixel coloring value functions:
// smooth iteration, orbit-trap, distance-estimation, histogram
// equalization, triangle-inequality-average, stripe-average, curvature,
// angle/decomposition and hybrid families.
//
// Every algorithm shares one signature (Func): it reads a PixelContext
// and a ParamMap and returns a scalar in [0,1] (unless documented
// otherwise), optionally consulting a *histogram.Context for the
// equalization family.
package algorithms

import (
	"math"

	"github.com/gogpu/fractalcolor/internal/histogram"
)

// OrbitStep is one recorded point of a pixel's orbit history.
type OrbitStep struct {
	X, Y float32
}

// PixelContext is the per-pixel view an algorithm operates on.
type PixelContext struct {
	X, Y          int
	Width, Height int
	MaxIterations float32
	EscapeRadius  float32

	Iterations float32
	Escaped    bool
	OrbitX     float32
	OrbitY     float32

	HasDistance  bool
	Distance     float32
	HasPotential bool
	Potential    float32
	HasAngle     bool
	Angle        float32

	HasOrbitHistory bool
	OrbitHistory    []OrbitStep

	// Neighbor distances for the gradient-magnitude algorithm's 4-neighbour
	// central difference. Populated alongside Distance; at a field edge the
	// missing neighbour falls back to the center pixel's own Distance, so
	// the central difference degrades to a one-sided difference rather than
	// reading outside the field.
	HasNeighborDistance                                 bool
	DistanceUp, DistanceDown, DistanceLeft, DistanceRight float32
}

// ParamMap is a loosely-typed parameter bag: scalar (float64), bool,
// string, or []float64, mirroring the JSON-shaped configuration format.
type ParamMap map[string]any

// Float returns params[name] as a float32, or def if absent/wrong type.
func (p ParamMap) Float(name string, def float32) float32 {
	if p == nil {
		return def
	}
	switch v := p[name].(type) {
	case float64:
		return float32(v)
	case float32:
		return v
	case int:
		return float32(v)
	}
	return def
}

// Bool returns params[name] as a bool, or def if absent/wrong type.
func (p ParamMap) Bool(name string, def bool) bool {
	if p == nil {
		return def
	}
	if v, ok := p[name].(bool); ok {
		return v
	}
	return def
}

// String returns params[name] as a string, or def if absent/wrong type.
func (p ParamMap) String(name string, def string) string {
	if p == nil {
		return def
	}
	if v, ok := p[name].(string); ok {
		return v
	}
	return def
}

// FloatSlice returns params[name] as a []float32, or def if absent/wrong type.
func (p ParamMap) FloatSlice(name string, def []float32) []float32 {
	if p == nil {
		return def
	}
	switch v := p[name].(type) {
	case []float64:
		out := make([]float32, len(v))
		for i, x := range v {
			out[i] = float32(x)
		}
		return out
	case []float32:
		return v
	}
	return def
}

// Func is the value function every algorithm implements.
type Func func(ctx PixelContext, params ParamMap, hist *histogram.Context) float32

// guardFinite replaces NaN/Inf with 0, per the numerical policy: an
// algorithm must never leak a non-finite value to the output buffer.
func guardFinite(v float32) float32 {
	if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
		return 0
	}
	return v
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// wrap01 reduces v into [0,1) with math.Mod(v, 1) and a negative wrap
// fix.
func wrap01(v float32) float32 {
	v = float32(math.Mod(float64(v), 1))
	if v < 0 {
		v += 1
	}
	return v
}

// cycle applies the final cycle_scale*x + cycle_offset step shared by
// the smooth-iteration family, reducing modulo 256/256 to [0,1).
func cycle(x, scale, offset float32) float32 {
	v := x*scale + offset
	v = float32(math.Mod(float64(v)*256, 256)) / 256
	if v < 0 {
		v += 1
	}
	return v
}
