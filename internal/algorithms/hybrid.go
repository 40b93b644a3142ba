package algorithms

import "github.com/gogpu/fractalcolor/internal/histogram"

// Cross-family hybrids: each blends two otherwise-independent families
// that individually need different optional fields, so each hybrid only
// contributes the fraction its available data supports.

func TrapSmoothHybrid(ctx PixelContext, params ParamMap, hist *histogram.Context) float32 {
	if !ctx.Escaped {
		return 0
	}
	trap := PointTrap(ctx, params, hist)
	smooth := SmoothIteration(ctx, params, hist)
	weight := params.Float("trapWeight", 0.5)
	return guardFinite(clamp01(lerp32(smooth, trap, weight)))
}

func StripeTrapHybrid(ctx PixelContext, params ParamMap, hist *histogram.Context) float32 {
	if !ctx.Escaped || !ctx.HasOrbitHistory {
		return 0
	}
	stripe := StripeAverage(ctx, params, hist)
	trap := CircleTrap(ctx, params, hist)
	weight := params.Float("weight", 0.5)
	return guardFinite(clamp01(lerp32(stripe, trap, weight)))
}

func HistogramTIAHybrid(ctx PixelContext, params ParamMap, hist *histogram.Context) float32 {
	if !ctx.Escaped {
		return 0
	}
	var eq float32
	if hist != nil {
		eq = clamp01(hist.Equalize(ctx.Iterations))
	}
	var tia float32
	if ctx.HasOrbitHistory {
		tia = TriangleInequalityAverage(ctx, params, hist)
	}
	weight := params.Float("weight", 0.5)
	return guardFinite(clamp01(lerp32(eq, tia, weight)))
}

func CurvatureStripeHybrid(ctx PixelContext, params ParamMap, hist *histogram.Context) float32 {
	if !ctx.Escaped || !ctx.HasOrbitHistory {
		return 0
	}
	curv := CurvatureEstimate(ctx, params, hist)
	stripe := StripeAverage(ctx, params, hist)
	weight := params.Float("weight", 0.5)
	return guardFinite(clamp01(lerp32(curv, stripe, weight)))
}

func AngleDistanceHybrid(ctx PixelContext, params ParamMap, hist *histogram.Context) float32 {
	if !ctx.Escaped {
		return 0
	}
	angle := ContinuousAngle(ctx, params, hist)
	var dist float32
	if ctx.HasDistance {
		dist = clamp01(ctx.Distance)
	}
	weight := params.Float("weight", 0.5)
	return guardFinite(clamp01(lerp32(angle, dist, weight)))
}
