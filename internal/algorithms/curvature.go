package algorithms

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/fractalcolor/internal/histogram"
)

// Curvature family: discrete differential-geometry estimates over the
// orbit's path, treated as a 2D polyline.

// curvatureSeries returns the signed discrete curvature at each interior
// orbit point (needs a predecessor and successor), via the standard
// two-segment estimate k = 2*cross(v1,v2) / (|v1|*|v2|*|v1+v2|).
func curvatureSeries(ctx PixelContext) []float32 {
	hist := ctx.OrbitHistory
	if len(hist) < 3 {
		return nil
	}
	out := make([]float32, 0, len(hist)-2)
	for i := 1; i < len(hist)-1; i++ {
		v1x, v1y := hist[i].X-hist[i-1].X, hist[i].Y-hist[i-1].Y
		v2x, v2y := hist[i+1].X-hist[i].X, hist[i+1].Y-hist[i].Y
		cross := v1x*v2y - v1y*v2x
		m1, m2 := magnitude(v1x, v1y), magnitude(v2x, v2y)
		sumMag := magnitude(v1x+v2x, v1y+v2y)
		denom := m1 * m2 * sumMag
		if denom == 0 {
			out = append(out, 0)
			continue
		}
		out = append(out, 2*cross/denom)
	}
	return out
}

func CurvatureEstimate(ctx PixelContext, params ParamMap, _ *histogram.Context) float32 {
	if !ctx.Escaped || !ctx.HasOrbitHistory {
		return 0
	}
	series := curvatureSeries(ctx)
	if len(series) == 0 {
		return 0
	}
	var sum float32
	for _, k := range series {
		sum += math32.Abs(k)
	}
	scale := params.Float("scale", 2)
	return guardFinite(clamp01(sum / float32(len(series)) * scale))
}

func GaussianCurvature(ctx PixelContext, params ParamMap, _ *histogram.Context) float32 {
	if !ctx.Escaped || !ctx.HasOrbitHistory {
		return 0
	}
	series := curvatureSeries(ctx)
	if len(series) == 0 {
		return 0
	}
	var sum float32
	for _, k := range series {
		sum += k * k
	}
	scale := params.Float("scale", 4)
	return guardFinite(clamp01(sum / float32(len(series)) * scale))
}

func MeanCurvature(ctx PixelContext, params ParamMap, _ *histogram.Context) float32 {
	if !ctx.Escaped || !ctx.HasOrbitHistory {
		return 0
	}
	series := curvatureSeries(ctx)
	if len(series) == 0 {
		return 0
	}
	var sum float32
	for _, k := range series {
		sum += k
	}
	scale := params.Float("scale", 2)
	return guardFinite(clamp01(0.5 + sum/float32(len(series))*scale))
}

func AngularVelocity(ctx PixelContext, params ParamMap, _ *histogram.Context) float32 {
	if !ctx.Escaped || !ctx.HasOrbitHistory {
		return 0
	}
	hist := ctx.OrbitHistory
	if len(hist) < 2 {
		return 0
	}
	var sum float32
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
		sum += math32.Abs(d)
	}
	mean := sum / float32(len(hist)-1)
	scale := params.Float("scale", 1/math32.Pi)
	return guardFinite(clamp01(mean * scale))
}

func OrbitAcceleration(ctx PixelContext, params ParamMap, _ *histogram.Context) float32 {
	if !ctx.Escaped || !ctx.HasOrbitHistory {
		return 0
	}
	hist := ctx.OrbitHistory
	if len(hist) < 3 {
		return 0
	}
	var sum float32
	for i := 1; i < len(hist)-1; i++ {
		ax := hist[i+1].X - 2*hist[i].X + hist[i-1].X
		ay := hist[i+1].Y - 2*hist[i].Y + hist[i-1].Y
		sum += magnitude(ax, ay)
	}
	mean := sum / float32(len(hist)-2)
	scale := params.Float("scale", 2)
	return guardFinite(clamp01(mean * scale))
}

// TorsionEstimate approximates the 2D analog of torsion as the rate of
// change of curvature along the orbit.
func TorsionEstimate(ctx PixelContext, params ParamMap, _ *histogram.Context) float32 {
	if !ctx.Escaped || !ctx.HasOrbitHistory {
		return 0
	}
	series := curvatureSeries(ctx)
	if len(series) < 2 {
		return 0
	}
	var sum float32
	for i := 0; i < len(series)-1; i++ {
		sum += math32.Abs(series[i+1] - series[i])
	}
	mean := sum / float32(len(series)-1)
	scale := params.Float("scale", 4)
	return guardFinite(clamp01(mean * scale))
}

func CombinedCurvature(ctx PixelContext, params ParamMap, _ *histogram.Context) float32 {
	if !ctx.Escaped || !ctx.HasOrbitHistory {
		return 0
	}
	curv := CurvatureEstimate(ctx, params, nil)
	angVel := AngularVelocity(ctx, params, nil)
	weight := params.Float("weight", 0.5)
	return guardFinite(clamp01(lerp32(curv, angVel, weight)))
}
