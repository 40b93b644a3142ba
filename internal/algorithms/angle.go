package algorithms

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/fractalcolor/internal/histogram"
)

// Angle/decomposition family: algorithms built from the orbit's argument
// and radius rather than its escape count.

func AngularDecomposition(ctx PixelContext, params ParamMap, _ *histogram.Context) float32 {
	if !ctx.Escaped {
		return 0
	}
	x, y := finalOrbitPoint(ctx)
	sectors := params.Float("sectors", 6)
	if sectors < 1 {
		sectors = 1
	}
	a := angleOf(x, y)
	return guardFinite(math32.Floor(a*sectors) / sectors)
}

func ContinuousAngle(ctx PixelContext, params ParamMap, _ *histogram.Context) float32 {
	if !ctx.Escaped {
		return 0
	}
	x, y := finalOrbitPoint(ctx)
	return guardFinite(angleOf(x, y))
}

func RadialWaves(ctx PixelContext, params ParamMap, _ *histogram.Context) float32 {
	if !ctx.Escaped {
		return 0
	}
	x, y := finalOrbitPoint(ctx)
	freq := params.Float("frequency", 5)
	r := magnitude(x, y)
	return guardFinite(0.5 + 0.5*math32.Sin(freq*r))
}

func AngularStripes(ctx PixelContext, params ParamMap, _ *histogram.Context) float32 {
	if !ctx.Escaped {
		return 0
	}
	x, y := finalOrbitPoint(ctx)
	freq := params.Float("frequency", 6)
	a := angleOf(x, y)
	return guardFinite(0.5 + 0.5*math32.Sin(freq*a*2*math32.Pi))
}

func SpiralPattern(ctx PixelContext, params ParamMap, _ *histogram.Context) float32 {
	if !ctx.Escaped {
		return 0
	}
	x, y := finalOrbitPoint(ctx)
	twist := params.Float("twist", 3)
	a := angleOf(x, y)
	r := magnitude(x, y)
	return guardFinite(wrap01(a + r*twist))
}

func IterationAngleHybrid(ctx PixelContext, params ParamMap, _ *histogram.Context) float32 {
	if !ctx.Escaped {
		return 0
	}
	x, y := finalOrbitPoint(ctx)
	a := angleOf(x, y)
	iter := clamp01(ctx.Iterations / maxOr1(ctx.MaxIterations))
	weight := params.Float("weight", 0.5)
	return guardFinite(lerp32(iter, a, weight))
}

// PhaseAccumulation sums the per-step argument across the whole orbit
// history, wrapping the total into [0,1); absent history it degrades to
// the final point's single argument.
func PhaseAccumulation(ctx PixelContext, params ParamMap, _ *histogram.Context) float32 {
	if !ctx.Escaped {
		return 0
	}
	if !ctx.HasOrbitHistory || len(ctx.OrbitHistory) == 0 {
		x, y := finalOrbitPoint(ctx)
		return guardFinite(angleOf(x, y))
	}
	var sum float32
	for _, p := range ctx.OrbitHistory {
		sum += angleOf(p.X, p.Y)
	}
	scale := params.Float("scale", 1)
	return guardFinite(wrap01(sum * scale))
}

// WindingNumber accumulates the unwrapped angular change between
// successive orbit steps and normalizes by 2*pi, approximating how many
// times the orbit winds around the origin.
func WindingNumber(ctx PixelContext, params ParamMap, _ *histogram.Context) float32 {
	if !ctx.Escaped || !ctx.HasOrbitHistory || len(ctx.OrbitHistory) < 2 {
		return 0
	}
	hist := ctx.OrbitHistory
	var total float32
	for i := 0; i < len(hist)-1; i++ {
		a1 := math32.Atan2(hist[i].Y, hist[i].X)
		a2 := math32.Atan2(hist[i+1].Y, hist[i+1].X)
		d := a2 - a1
		for d > math32.Pi {
			d -= 2 * math32.Pi
		}
		for d < -math32.Pi {
			d += 2 * math32.Pi
		}
		total += d
	}
	windings := total / (2 * math32.Pi)
	scale := params.Float("scale", 1)
	return guardFinite(wrap01(windings * scale))
}

func ArgumentSum(ctx PixelContext, params ParamMap, _ *histogram.Context) float32 {
	if !ctx.Escaped || !ctx.HasOrbitHistory || len(ctx.OrbitHistory) == 0 {
		return 0
	}
	var sum float32
	for _, p := range ctx.OrbitHistory {
		sum += math32.Atan2(p.Y, p.X)
	}
	return guardFinite(wrap01(sum / (2 * math32.Pi)))
}

// PolarDecomposition buckets the final orbit point by concentric radius
// band and angular sector jointly, the polar analog of a checkerboard.
func PolarDecomposition(ctx PixelContext, params ParamMap, _ *histogram.Context) float32 {
	if !ctx.Escaped {
		return 0
	}
	x, y := finalOrbitPoint(ctx)
	rings := params.Float("rings", 5)
	sectors := params.Float("sectors", 8)
	r := magnitude(x, y)
	a := angleOf(x, y)
	ring := math32.Floor(r * rings)
	sector := math32.Floor(a * sectors)
	parity := math32.Mod(ring+sector, 2)
	if parity < 0 {
		parity++
	}
	return guardFinite(parity)
}

func CheckerboardDecomposition(ctx PixelContext, params ParamMap, _ *histogram.Context) float32 {
	if !ctx.Escaped {
		return 0
	}
	x, y := finalOrbitPoint(ctx)
	scale := params.Float("scale", 4)
	parity := math32.Mod(math32.Floor(x*scale)+math32.Floor(y*scale), 2)
	if parity < 0 {
		parity++
	}
	return guardFinite(parity)
}

// AngleSectorBands is a smooth-transition companion to
// AngularDecomposition: instead of hard sector edges it fades between
// neighboring sectors with a cosine ramp.
func AngleSectorBands(ctx PixelContext, params ParamMap, _ *histogram.Context) float32 {
	if !ctx.Escaped {
		return 0
	}
	x, y := finalOrbitPoint(ctx)
	sectors := params.Float("sectors", 6)
	if sectors < 1 {
		sectors = 1
	}
	a := angleOf(x, y)
	v := 0.5 + 0.5*math32.Cos(a*sectors*2*math32.Pi)
	return guardFinite(v)
}
