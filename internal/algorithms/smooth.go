package algorithms

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/fractalcolor/internal/histogram"
)

// Smooth iteration family: a canonical smooth count derived from the
// escape magnitude, with 13 variants sharing the same final
// cycle_scale*x + cycle_offset modulo-256/256 step.

func maxOr1(v float32) float32 {
	if v == 0 {
		return 1
	}
	return v
}

func lerp32(a, b, t float32) float32 { return a + (b-a)*t }

// smoothBase computes the canonical smooth count mu, before the cycle step.
func smoothBase(ctx PixelContext, params ParamMap) float32 {
	power := params.Float("power", 2)
	x, y := finalOrbitPoint(ctx)
	mag := magnitude(x, y)
	if mag <= 1 {
		return ctx.Iterations / maxOr1(ctx.MaxIterations)
	}
	return ctx.Iterations + 1 - safeLog(safeLog(mag))/safeLog(power)
}

func SmoothIteration(ctx PixelContext, params ParamMap, _ *histogram.Context) float32 {
	if !ctx.Escaped {
		return 0
	}
	mu := smoothBase(ctx, params)
	return guardFinite(cycle(mu, params.Float("cycleScale", 1), params.Float("cycleOffset", 0)))
}

func ContinuousPotential(ctx PixelContext, params ParamMap, _ *histogram.Context) float32 {
	if !ctx.Escaped {
		return 0
	}
	x, y := finalOrbitPoint(ctx)
	mag := magnitude(x, y)
	bailout := ctx.EscapeRadius
	mu := ctx.Iterations - safeLog2(safeLog(mag)/safeLog(bailout))
	return guardFinite(cycle(mu, params.Float("cycleScale", 1), params.Float("cycleOffset", 0)))
}

func FractionalEscape(ctx PixelContext, params ParamMap, _ *histogram.Context) float32 {
	if !ctx.Escaped {
		return 0
	}
	x, y := finalOrbitPoint(ctx)
	mag2 := magnitude2(x, y)
	bailout := ctx.EscapeRadius
	denom := safeLog(bailout)
	frac := clamp01(safeLog(mag2) / (denom * denom))
	mu := ctx.Iterations + frac
	return guardFinite(cycle(mu, params.Float("cycleScale", 1), params.Float("cycleOffset", 0)))
}

func BinaryDecomposition(ctx PixelContext, params ParamMap, _ *histogram.Context) float32 {
	if !ctx.Escaped {
		return 0
	}
	x, y := finalOrbitPoint(ctx)
	var bit float32
	switch params.String("component", "real") {
	case "imag":
		if y < 0 {
			bit = 0.5
		}
	case "both":
		if x < 0 && y < 0 {
			bit = 0.5
		}
	default:
		if x < 0 {
			bit = 0.5
		}
	}
	mu := ctx.Iterations + bit
	return guardFinite(cycle(mu, params.Float("cycleScale", 1), params.Float("cycleOffset", 0)))
}

func ExponentialSmooth(ctx PixelContext, params ParamMap, _ *histogram.Context) float32 {
	if !ctx.Escaped {
		return 0
	}
	x, y := finalOrbitPoint(ctx)
	mag2 := magnitude2(x, y)
	bailout := ctx.EscapeRadius
	mu := ctx.Iterations + math32.Exp(-mag2/(bailout*bailout))
	return guardFinite(cycle(mu, params.Float("cycleScale", 1), params.Float("cycleOffset", 0)))
}

func Renormalized(ctx PixelContext, params ParamMap, _ *histogram.Context) float32 {
	if !ctx.Escaped {
		return 0
	}
	mu := wrap01(ctx.Iterations / maxOr1(ctx.MaxIterations))
	return guardFinite(cycle(mu, params.Float("cycleScale", 1), params.Float("cycleOffset", 0)))
}

func DerivativeSmooth(ctx PixelContext, params ParamMap, _ *histogram.Context) float32 {
	if !ctx.Escaped {
		return 0
	}
	x, y := finalOrbitPoint(ctx)
	mag := magnitude(x, y)
	mu := ctx.Iterations
	if ctx.HasDistance && ctx.Distance > 0 {
		d := safeLog(mag * safeLog(mag) / ctx.Distance)
		mu = lerp32(ctx.Iterations, ctx.Iterations+d, params.Float("blend", 0.5))
	}
	return guardFinite(cycle(mu, params.Float("cycleScale", 1), params.Float("cycleOffset", 0)))
}

func ParabolicSmooth(ctx PixelContext, params ParamMap, _ *histogram.Context) float32 {
	if !ctx.Escaped {
		return 0
	}
	v := wrap01(smoothBase(ctx, params) / 256)
	curved := 4 * v * (1 - v)
	return guardFinite(cycle(curved*256, params.Float("cycleScale", 1), params.Float("cycleOffset", 0)))
}

func SinusoidalSmooth(ctx PixelContext, params ParamMap, _ *histogram.Context) float32 {
	if !ctx.Escaped {
		return 0
	}
	v := wrap01(smoothBase(ctx, params) / 256)
	curved := (math32.Sin(2*math32.Pi*v) + 1) / 2
	return guardFinite(cycle(curved*256, params.Float("cycleScale", 1), params.Float("cycleOffset", 0)))
}

func TangentSmooth(ctx PixelContext, params ParamMap, _ *histogram.Context) float32 {
	if !ctx.Escaped {
		return 0
	}
	v := wrap01(smoothBase(ctx, params) / 256)
	curved := clamp01(math32.Tan(math32.Pi*(v-0.5))/10 + 0.5)
	return guardFinite(cycle(curved*256, params.Float("cycleScale", 1), params.Float("cycleOffset", 0)))
}

func LogBands(ctx PixelContext, params ParamMap, _ *histogram.Context) float32 {
	if !ctx.Escaped {
		return 0
	}
	v := wrap01(smoothBase(ctx, params) / 256)
	bands := params.Float("bands", 8)
	curved := wrap01(safeLog(v*bands + 1))
	return guardFinite(cycle(curved*256, params.Float("cycleScale", 1), params.Float("cycleOffset", 0)))
}

func Biomorph(ctx PixelContext, params ParamMap, _ *histogram.Context) float32 {
	if !ctx.Escaped {
		return 0
	}
	x, y := finalOrbitPoint(ctx)
	threshold := params.Float("threshold", 1)
	if math32.Abs(x) < threshold || math32.Abs(y) < threshold {
		return guardFinite(angleOf(x, y))
	}
	mu := smoothBase(ctx, params)
	return guardFinite(cycle(mu, params.Float("cycleScale", 1), params.Float("cycleOffset", 0)))
}

func SmoothDistanceHybrid(ctx PixelContext, params ParamMap, _ *histogram.Context) float32 {
	if !ctx.Escaped {
		return 0
	}
	mu := smoothBase(ctx, params)
	base := wrap01(cycle(mu, params.Float("cycleScale", 1), params.Float("cycleOffset", 0)))
	d := float32(0)
	if ctx.HasDistance {
		d = clamp01(ctx.Distance)
	}
	return guardFinite(lerp32(base, d, params.Float("weight", 0.5)))
}

func SmoothAngleHybrid(ctx PixelContext, params ParamMap, _ *histogram.Context) float32 {
	if !ctx.Escaped {
		return 0
	}
	mu := smoothBase(ctx, params)
	base := wrap01(cycle(mu, params.Float("cycleScale", 1), params.Float("cycleOffset", 0)))
	x, y := finalOrbitPoint(ctx)
	a := angleOf(x, y)
	return guardFinite(lerp32(base, a, params.Float("weight", 0.5)))
}
