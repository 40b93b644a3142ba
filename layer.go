package fractalcolor

import (
	"math"

	"github.com/gogpu/fractalcolor/internal/algorithms"
	"github.com/gogpu/fractalcolor/internal/blend"
	"github.com/gogpu/fractalcolor/internal/histogram"
)

// BlendMode re-exports internal/blend's stable mode identifiers at the
// package boundary, so callers never need to import internal/blend.
type BlendMode = blend.Mode

const (
	BlendNormal      = blend.Normal
	BlendAdd         = blend.Add
	BlendSubtract    = blend.Subtract
	BlendMultiply    = blend.Multiply
	BlendScreen      = blend.Screen
	BlendOverlay     = blend.Overlay
	BlendSoftLight   = blend.SoftLight
	BlendHardLight   = blend.HardLight
	BlendColorDodge  = blend.ColorDodge
	BlendColorBurn   = blend.ColorBurn
	BlendDifference  = blend.Difference
	BlendExclusion   = blend.Exclusion
	BlendLighten     = blend.Lighten
	BlendDarken      = blend.Darken
	BlendLinearLight = blend.LinearLight
	BlendPinLight    = blend.PinLight
	BlendVividLight  = blend.VividLight
	BlendHue         = blend.Hue
	BlendSaturation  = blend.Saturation
	BlendColor       = blend.Color
	BlendLuminosity  = blend.Luminosity
)

// ParamMap re-exports the algorithm parameter bag type.
type ParamMap = algorithms.ParamMap

// Transform is a layer's scalar post-processing step, applied to an
// algorithm's raw [0,1] output before gradient sampling. All fields
// default to 1.0 except Offset (0) and Invert (false).
type Transform struct {
	Intensity float32
	Offset    float32
	Scale     float32
	Invert    bool
	Gamma     float32
}

// DefaultTransform returns the identity transform.
func DefaultTransform() Transform {
	return Transform{Intensity: 1, Offset: 0, Scale: 1, Invert: false, Gamma: 1}
}

// Apply runs the transform's four steps in order: scale+offset, then
// intensity power, then gamma power, then optional invert. Continuous
// in v wherever Intensity and Gamma are > 0, since signedPow preserves
// sign across the origin instead of producing a branch discontinuity.
func (t Transform) Apply(v float32) float32 {
	v = v*t.Scale + t.Offset
	if t.Intensity != 1 {
		v = signedPow(v, t.Intensity)
	}
	if t.Gamma != 1 {
		v = signedPow(v, t.Gamma)
	}
	if t.Invert {
		v = 1 - v
	}
	return v
}

func signedPow(v, p float32) float32 {
	sign := float32(1)
	if v < 0 {
		sign = -1
	}
	return sign * float32(math.Pow(float64(sign*v), float64(p)))
}

// MaskFunc computes a per-pixel mask weight in [0,1].
type MaskFunc func(ctx PixelContext) float32

// CoLoringLayer is one entry in the engine's bottom-up compositing
// stack: a parameter bag bound to an algorithm, a transform, a
// gradient, an optional mask, and a blend mode/opacity pair.
//
// Grounded in the teacher's paint.go/brush.go pattern of a plain struct
// with a Clone method and zero-value-safe defaults.
type CoLoringLayer struct {
	Name        string
	AlgorithmID string
	Enabled     bool
	Opacity     float32
	BlendMode   BlendMode
	Params      ParamMap
	Transform   Transform
	Gradient    *Gradient

	Mask       MaskFunc
	MaskInvert bool
}

// Clone returns a deep-enough copy of the layer: the parameter map is
// copied so mutating the clone's params never affects the original.
func (l CoLoringLayer) Clone() CoLoringLayer {
	clone := l
	if l.Params != nil {
		clone.Params = make(ParamMap, len(l.Params))
		for k, v := range l.Params {
			clone.Params[k] = v
		}
	}
	return clone
}

// evaluate runs the layer's algorithm, transform and gradient sample,
// returning the layer's color and its effective opacity (Opacity times
// the mask weight, inverted first when MaskInvert is set), per the
// coloring-layer contract.
func (l CoLoringLayer) evaluate(ctx PixelContext, fn algorithms.Func, hist *histogram.Context) (color ColorRGB, effectiveOpacity float32) {
	v := fn(ctx, l.Params, hist)
	v = l.Transform.Apply(v)

	if l.Gradient != nil {
		color = l.Gradient.Sample(v)
	} else {
		color = ColorRGB{R: v, G: v, B: v}.Clamp()
	}

	m := float32(1)
	if l.Mask != nil {
		m = l.Mask(ctx)
		if l.MaskInvert {
			m = 1 - m
		}
	}

	return color, l.Opacity * m
}
