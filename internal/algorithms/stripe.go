package algorithms

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/fractalcolor/internal/histogram"
)

// Stripe-average family: each orbit step contributes a sinusoidal term
// of its argument, averaged across the orbit to produce the classic
// "stripe" banding pattern.
func stripeTerms(ctx PixelContext, freq float32) []float32 {
	hist := ctx.OrbitHistory
	if len(hist) == 0 {
		return nil
	}
	terms := make([]float32, len(hist))
	for i, p := range hist {
		theta := math32.Atan2(p.Y, p.X)
		terms[i] = 0.5 + 0.5*math32.Sin(freq*theta)
	}
	return terms
}

func meanOf(v []float32) float32 {
	if len(v) == 0 {
		return 0
	}
	var sum float32
	for _, x := range v {
		sum += x
	}
	return sum / float32(len(v))
}

func StripeAverage(ctx PixelContext, params ParamMap, _ *histogram.Context) float32 {
	if !ctx.Escaped || !ctx.HasOrbitHistory {
		return 0
	}
	freq := params.Float("frequency", 5)
	return guardFinite(clamp01(meanOf(stripeTerms(ctx, freq))))
}

func CosineStripe(ctx PixelContext, params ParamMap, _ *histogram.Context) float32 {
	if !ctx.Escaped || !ctx.HasOrbitHistory {
		return 0
	}
	freq := params.Float("frequency", 5)
	hist := ctx.OrbitHistory
	if len(hist) == 0 {
		return 0
	}
	var sum float32
	for _, p := range hist {
		theta := math32.Atan2(p.Y, p.X)
		sum += 0.5 + 0.5*math32.Cos(freq*theta)
	}
	return guardFinite(clamp01(sum / float32(len(hist))))
}

// WeightedStripe favors later orbit steps, the way escape-radius-adjacent
// iterations dominate the visible banding near the boundary.
func WeightedStripe(ctx PixelContext, params ParamMap, _ *histogram.Context) float32 {
	if !ctx.Escaped || !ctx.HasOrbitHistory {
		return 0
	}
	freq := params.Float("frequency", 5)
	terms := stripeTerms(ctx, freq)
	if len(terms) == 0 {
		return 0
	}
	var sum, wsum float32
	n := float32(len(terms))
	for i, t := range terms {
		w := (float32(i) + 1) / n
		sum += t * w
		wsum += w
	}
	if wsum == 0 {
		return 0
	}
	return guardFinite(clamp01(sum / wsum))
}

func MultiFrequencyStripe(ctx PixelContext, params ParamMap, _ *histogram.Context) float32 {
	if !ctx.Escaped || !ctx.HasOrbitHistory {
		return 0
	}
	freqs := params.FloatSlice("frequencies", []float32{3, 5, 7})
	if len(freqs) == 0 {
		return 0
	}
	var sum float32
	for _, f := range freqs {
		sum += meanOf(stripeTerms(ctx, f))
	}
	return guardFinite(clamp01(sum / float32(len(freqs))))
}

// MagnitudeStripe modulates the stripe term's amplitude by the orbit
// magnitude at each step, instead of treating every step equally.
func MagnitudeStripe(ctx PixelContext, params ParamMap, _ *histogram.Context) float32 {
	if !ctx.Escaped || !ctx.HasOrbitHistory {
		return 0
	}
	freq := params.Float("frequency", 5)
	hist := ctx.OrbitHistory
	if len(hist) == 0 {
		return 0
	}
	var sum, wsum float32
	for _, p := range hist {
		theta := math32.Atan2(p.Y, p.X)
		mag := magnitude(p.X, p.Y)
		term := 0.5 + 0.5*math32.Sin(freq*theta)
		sum += term * mag
		wsum += mag
	}
	if wsum == 0 {
		return 0
	}
	return guardFinite(clamp01(sum / wsum))
}

func RadialStripe(ctx PixelContext, params ParamMap, _ *histogram.Context) float32 {
	if !ctx.Escaped || !ctx.HasOrbitHistory {
		return 0
	}
	freq := params.Float("frequency", 5)
	hist := ctx.OrbitHistory
	if len(hist) == 0 {
		return 0
	}
	var sum float32
	for _, p := range hist {
		r := magnitude(p.X, p.Y)
		sum += 0.5 + 0.5*math32.Sin(freq*r)
	}
	return guardFinite(clamp01(sum / float32(len(hist))))
}

func CombinedStripe(ctx PixelContext, params ParamMap, _ *histogram.Context) float32 {
	if !ctx.Escaped || !ctx.HasOrbitHistory {
		return 0
	}
	freq := params.Float("frequency", 5)
	angular := meanOf(stripeTerms(ctx, freq))
	radial := RadialStripe(ctx, params, nil)
	weight := params.Float("radialWeight", 0.5)
	return guardFinite(clamp01(lerp32(angular, radial, weight)))
}

func SmoothStripeBands(ctx PixelContext, params ParamMap, _ *histogram.Context) float32 {
	if !ctx.Escaped || !ctx.HasOrbitHistory {
		return 0
	}
	freq := params.Float("frequency", 5)
	bands := params.Float("bands", 8)
	v := meanOf(stripeTerms(ctx, freq))
	return guardFinite(clamp01(math32.Floor(v*bands) / bands))
}

func IterationStripeHybrid(ctx PixelContext, params ParamMap, _ *histogram.Context) float32 {
	if !ctx.Escaped || !ctx.HasOrbitHistory {
		return 0
	}
	freq := params.Float("frequency", 5)
	stripe := meanOf(stripeTerms(ctx, freq))
	iter := clamp01(ctx.Iterations / maxOr1(ctx.MaxIterations))
	weight := params.Float("weight", 0.5)
	return guardFinite(clamp01(lerp32(iter, stripe, weight)))
}
