package algorithms

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/fractalcolor/internal/histogram"
)

// Histogram-equalization family: every variant reads the per-apply
// histogram context the engine precomputes once per (field, bin-count)
// pair and reuses across pixels, per the pre-pass contract.

func HistogramEqualization(ctx PixelContext, params ParamMap, hist *histogram.Context) float32 {
	if !ctx.Escaped || hist == nil {
		return 0
	}
	return guardFinite(clamp01(hist.Equalize(ctx.Iterations)))
}

// LogHistogram equalizes ln(iter+1) against the log-space CDF. When the
// context carries no log histogram it equalizes the raw iteration count
// against the linear CDF instead.
func LogHistogram(ctx PixelContext, params ParamMap, hist *histogram.Context) float32 {
	if !ctx.Escaped || hist == nil {
		return 0
	}
	if hist.Log != nil {
		return guardFinite(clamp01(hist.Log.Equalize(safeLog(ctx.Iterations + 1))))
	}
	return guardFinite(clamp01(hist.Equalize(ctx.Iterations)))
}

func PercentileStretch(ctx PixelContext, params ParamMap, hist *histogram.Context) float32 {
	if !ctx.Escaped || hist == nil || hist.EscapedCount == 0 {
		return 0
	}
	lo := params.Float("lowPercentile", 0.02)
	hi := params.Float("highPercentile", 0.98)
	v := hist.Equalize(ctx.Iterations)
	if hi <= lo {
		return guardFinite(clamp01(v))
	}
	return guardFinite(clamp01((v - lo) / (hi - lo)))
}

// AdaptiveEqualization blends the raw equalized value toward a local
// contrast-boosted curve, the degree controlled by strength.
func AdaptiveEqualization(ctx PixelContext, params ParamMap, hist *histogram.Context) float32 {
	if !ctx.Escaped || hist == nil {
		return 0
	}
	v := hist.Equalize(ctx.Iterations)
	strength := params.Float("strength", 0.5)
	boosted := clamp01(0.5 + (v-0.5)*(1+strength))
	return guardFinite(lerp32(v, boosted, strength))
}

func GammaEqualization(ctx PixelContext, params ParamMap, hist *histogram.Context) float32 {
	if !ctx.Escaped || hist == nil {
		return 0
	}
	v := clamp01(hist.Equalize(ctx.Iterations))
	gamma := params.Float("gamma", 1)
	if gamma <= 0 {
		gamma = 1
	}
	return guardFinite(math32.Pow(v, 1/gamma))
}

// MultiPassEqualization re-equalizes the already-equalized value against
// the same CDF, sharpening the distribution's tails over two passes.
func MultiPassEqualization(ctx PixelContext, params ParamMap, hist *histogram.Context) float32 {
	if !ctx.Escaped || hist == nil {
		return 0
	}
	v := hist.Equalize(ctx.Iterations)
	passes := int(params.Float("passes", 2))
	if passes < 1 {
		passes = 1
	}
	for i := 1; i < passes; i++ {
		v = hist.Equalize(v * hist.MaxIter)
	}
	return guardFinite(clamp01(v))
}

// WeightedEqualization boosts near-boundary points (small distance to the
// set) over the plain equalized value: result = eq * (1 + w*exp(-10*d)).
func WeightedEqualization(ctx PixelContext, params ParamMap, hist *histogram.Context) float32 {
	if !ctx.Escaped || hist == nil {
		return 0
	}
	eq := hist.Equalize(ctx.Iterations)
	weight := params.Float("weight", 0.8)
	if !ctx.HasDistance {
		return guardFinite(clamp01(eq))
	}
	boost := 1 + weight*math32.Exp(-10*ctx.Distance)
	return guardFinite(clamp01(eq * boost))
}

func SigmoidEqualization(ctx PixelContext, params ParamMap, hist *histogram.Context) float32 {
	if !ctx.Escaped || hist == nil {
		return 0
	}
	v := hist.Equalize(ctx.Iterations)
	steepness := params.Float("steepness", 10)
	midpoint := params.Float("midpoint", 0.5)
	s := 1 / (1 + math32.Exp(-steepness*(v-midpoint)))
	return guardFinite(clamp01(s))
}
