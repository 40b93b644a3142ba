package algorithms

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/fractalcolor/internal/histogram"
)

// Triangle-inequality-average family. For each orbit step the triangle
// inequality bounds |z_{n+1}| between ||z_n|^2 - |c|| and |z_n|^2 + |c|;
// TIA measures where the actual magnitude falls in that band, averaged
// across the orbit. c is approximated as the orbit's first recorded
// point, which is exact for the canonical z_0=0 Mandelbrot iteration.
func tiaRatios(ctx PixelContext) []float32 {
	hist := ctx.OrbitHistory
	if len(hist) < 2 {
		return nil
	}
	cMag := magnitude(hist[0].X, hist[0].Y)
	ratios := make([]float32, 0, len(hist)-1)
	for i := 0; i < len(hist)-1; i++ {
		zMag := magnitude(hist[i].X, hist[i].Y)
		zNextMag := magnitude(hist[i+1].X, hist[i+1].Y)
		lower := math32.Abs(zMag*zMag - cMag)
		upper := zMag*zMag + cMag
		if upper == lower {
			continue
		}
		ratios = append(ratios, clamp01((zNextMag-lower)/(upper-lower)))
	}
	return ratios
}

func TriangleInequalityAverage(ctx PixelContext, params ParamMap, _ *histogram.Context) float32 {
	if !ctx.Escaped || !ctx.HasOrbitHistory {
		return 0
	}
	ratios := tiaRatios(ctx)
	if len(ratios) == 0 {
		return 0
	}
	var sum float32
	for _, r := range ratios {
		sum += r
	}
	return guardFinite(sum / float32(len(ratios)))
}

func WeightedTIA(ctx PixelContext, params ParamMap, _ *histogram.Context) float32 {
	if !ctx.Escaped || !ctx.HasOrbitHistory {
		return 0
	}
	ratios := tiaRatios(ctx)
	if len(ratios) == 0 {
		return 0
	}
	var sum, wsum float32
	n := float32(len(ratios))
	for i, r := range ratios {
		w := (float32(i) + 1) / n
		sum += r * w
		wsum += w
	}
	if wsum == 0 {
		return 0
	}
	return guardFinite(sum / wsum)
}

// PhaseTIA modulates each ratio by the angular turn between consecutive
// orbit steps before averaging, so pixels whose orbit spirals contribute
// differently than ones that move in a straight line.
func PhaseTIA(ctx PixelContext, params ParamMap, _ *histogram.Context) float32 {
	if !ctx.Escaped || !ctx.HasOrbitHistory {
		return 0
	}
	hist := ctx.OrbitHistory
	ratios := tiaRatios(ctx)
	if len(ratios) == 0 || len(hist) < 2 {
		return 0
	}
	var sum, wsum float32
	for i, r := range ratios {
		a1 := math32.Atan2(hist[i].Y, hist[i].X)
		a2 := math32.Atan2(hist[i+1].Y, hist[i+1].X)
		phase := (math32.Cos(a2-a1) + 1) / 2
		sum += r * phase
		wsum += phase
	}
	if wsum == 0 {
		return 0
	}
	return guardFinite(sum / wsum)
}

func MinimumTIA(ctx PixelContext, params ParamMap, _ *histogram.Context) float32 {
	if !ctx.Escaped || !ctx.HasOrbitHistory {
		return 0
	}
	ratios := tiaRatios(ctx)
	if len(ratios) == 0 {
		return 0
	}
	min := ratios[0]
	for _, r := range ratios[1:] {
		if r < min {
			min = r
		}
	}
	return guardFinite(min)
}

func MaximumTIA(ctx PixelContext, params ParamMap, _ *histogram.Context) float32 {
	if !ctx.Escaped || !ctx.HasOrbitHistory {
		return 0
	}
	ratios := tiaRatios(ctx)
	if len(ratios) == 0 {
		return 0
	}
	max := ratios[0]
	for _, r := range ratios[1:] {
		if r > max {
			max = r
		}
	}
	return guardFinite(max)
}

func VarianceTIA(ctx PixelContext, params ParamMap, _ *histogram.Context) float32 {
	if !ctx.Escaped || !ctx.HasOrbitHistory {
		return 0
	}
	ratios := tiaRatios(ctx)
	if len(ratios) == 0 {
		return 0
	}
	var mean float32
	for _, r := range ratios {
		mean += r
	}
	mean /= float32(len(ratios))
	var variance float32
	for _, r := range ratios {
		d := r - mean
		variance += d * d
	}
	variance /= float32(len(ratios))
	return guardFinite(clamp01(variance * 4))
}

func HybridTIA(ctx PixelContext, params ParamMap, _ *histogram.Context) float32 {
	if !ctx.Escaped || !ctx.HasOrbitHistory {
		return 0
	}
	mean := TriangleInequalityAverage(ctx, params, nil)
	variance := VarianceTIA(ctx, params, nil)
	weight := params.Float("varianceWeight", 0.5)
	return guardFinite(clamp01(lerp32(mean, variance, weight)))
}
