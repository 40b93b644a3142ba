package algorithms

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/fractalcolor/internal/histogram"
)

// Distance-estimation family: algorithms built on the field's precomputed
// distance/potential/angle channels rather than the raw orbit.

// DistanceEstimation uses the field's precomputed distance channel when
// present, else estimates it from the final orbit point and iteration
// count: |z|*log|z|/(iter+1).
func DistanceEstimation(ctx PixelContext, params ParamMap, _ *histogram.Context) float32 {
	if !ctx.Escaped {
		return 0
	}
	d := ctx.Distance
	if !ctx.HasDistance {
		x, y := finalOrbitPoint(ctx)
		mag := magnitude(x, y)
		d = mag * safeLog(mag) / (ctx.Iterations + 1)
	}
	return guardFinite(cycle(d, params.Float("cycleScale", 1), params.Float("cycleOffset", 0)))
}

func NormalizedDistance(ctx PixelContext, params ParamMap, _ *histogram.Context) float32 {
	if !ctx.Escaped || !ctx.HasDistance {
		return 0
	}
	maxDistance := params.Float("maxDistance", 10)
	v := clamp01(safeLog(ctx.Distance+1) / safeLog(maxDistance+1))
	return guardFinite(v)
}

func BoundaryGlow(ctx PixelContext, params ParamMap, _ *histogram.Context) float32 {
	if !ctx.Escaped || !ctx.HasDistance {
		return 0
	}
	k := params.Float("falloff", 8)
	return guardFinite(clamp01(math32.Exp(-ctx.Distance * k)))
}

func OutlineDetection(ctx PixelContext, params ParamMap, _ *histogram.Context) float32 {
	if !ctx.Escaped || !ctx.HasDistance {
		return 0
	}
	threshold := params.Float("threshold", 0.01)
	if ctx.Distance < threshold {
		return 1
	}
	return 0
}

func LevelSets(ctx PixelContext, params ParamMap, _ *histogram.Context) float32 {
	if !ctx.Escaped || !ctx.HasDistance {
		return 0
	}
	levels := params.Float("levels", 10)
	if levels < 1 {
		levels = 1
	}
	return guardFinite(clamp01(math32.Floor(ctx.Distance*levels) / levels))
}

// InteriorDistance reuses the escaped pixel's distance/potential channel
// as an analog of distance-to-interior, since interior pixels themselves
// never reach an algorithm's value function (the engine colors them via
// its interior policy instead).
func InteriorDistance(ctx PixelContext, params ParamMap, _ *histogram.Context) float32 {
	if !ctx.Escaped {
		return 0
	}
	var v float32
	switch {
	case ctx.HasPotential:
		v = clamp01(1 - ctx.Potential)
	case ctx.HasDistance:
		v = clamp01(1 - ctx.Distance)
	default:
		v = 0
	}
	return guardFinite(v)
}

// GradientMagnitude computes the 4-neighbour central difference of the
// distance channel across pixels: dx = (right-left)/2, dy = (down-up)/2,
// magnitude = hypot(dx, dy).
func GradientMagnitude(ctx PixelContext, params ParamMap, _ *histogram.Context) float32 {
	if !ctx.Escaped || !ctx.HasDistance || !ctx.HasNeighborDistance {
		return 0
	}
	dx := (ctx.DistanceRight - ctx.DistanceLeft) / 2
	dy := (ctx.DistanceDown - ctx.DistanceUp) / 2
	mag := magnitude(dx, dy)
	sensitivity := params.Float("sensitivity", 0.1)
	return guardFinite(clamp01(mag * sensitivity))
}

func CombinedDistance(ctx PixelContext, params ParamMap, _ *histogram.Context) float32 {
	if !ctx.Escaped {
		return 0
	}
	var d, p, a float32
	if ctx.HasDistance {
		d = clamp01(ctx.Distance)
	}
	if ctx.HasPotential {
		p = clamp01(ctx.Potential)
	}
	if ctx.HasAngle {
		a = wrap01(ctx.Angle / (2 * math32.Pi))
	}
	wd := params.Float("distanceWeight", 0.5)
	wp := params.Float("potentialWeight", 0.3)
	wa := params.Float("angleWeight", 0.2)
	total := wd + wp + wa
	if total == 0 {
		return 0
	}
	return guardFinite(clamp01((d*wd + p*wp + a*wa) / total))
}

func ExponentialGlow(ctx PixelContext, params ParamMap, _ *histogram.Context) float32 {
	if !ctx.Escaped || !ctx.HasDistance {
		return 0
	}
	intensity := params.Float("intensity", 5)
	return guardFinite(clamp01(1 - math32.Exp(-ctx.Distance*intensity)))
}

func PowerLawDistance(ctx PixelContext, params ParamMap, _ *histogram.Context) float32 {
	if !ctx.Escaped || !ctx.HasDistance {
		return 0
	}
	exponent := params.Float("exponent", 0.5)
	return guardFinite(clamp01(math32.Pow(clamp01(ctx.Distance), exponent)))
}

func DistanceBands(ctx PixelContext, params ParamMap, _ *histogram.Context) float32 {
	if !ctx.Escaped || !ctx.HasDistance {
		return 0
	}
	bandWidth := params.Float("bandWidth", 0.1)
	if bandWidth <= 0 {
		bandWidth = 0.1
	}
	return guardFinite(wrap01(ctx.Distance / bandWidth))
}

func DistanceIterationHybrid(ctx PixelContext, params ParamMap, _ *histogram.Context) float32 {
	if !ctx.Escaped {
		return 0
	}
	d := float32(0)
	if ctx.HasDistance {
		d = clamp01(ctx.Distance)
	}
	iter := clamp01(ctx.Iterations / maxOr1(ctx.MaxIterations))
	w := params.Float("weight", 0.5)
	return guardFinite(lerp32(iter, d, w))
}
