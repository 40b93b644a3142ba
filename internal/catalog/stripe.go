package catalog

import (
	"github.com/gogpu/fractalcolor/internal/algorithms"
	"github.com/gogpu/fractalcolor/internal/registry"
)

func addStripe(r *registry.Registry) {
	r.Register(entry("stripe-average", "Stripe Average", registry.CategoryStripe,
		"Average of a sinusoidal term of each orbit step's argument.",
		algorithms.StripeAverage, map[string]registry.ParamSpec{
			"frequency": registry.NumberParam(0.1, 64, 0.1, 5),
		}, true, false, "stripe"))

	r.Register(entry("cosine-stripe", "Cosine Stripe", registry.CategoryStripe,
		"Cosine variant of the stripe-average term.",
		algorithms.CosineStripe, map[string]registry.ParamSpec{
			"frequency": registry.NumberParam(0.1, 64, 0.1, 5),
		}, true, false, "stripe"))

	r.Register(entry("weighted-stripe", "Weighted Stripe", registry.CategoryStripe,
		"Stripe average weighted toward later orbit steps.",
		algorithms.WeightedStripe, map[string]registry.ParamSpec{
			"frequency": registry.NumberParam(0.1, 64, 0.1, 5),
		}, true, false, "stripe"))

	r.Register(entry("multi-frequency-stripe", "Multi-Frequency Stripe", registry.CategoryStripe,
		"Average of stripe terms at several frequencies.",
		algorithms.MultiFrequencyStripe, map[string]registry.ParamSpec{
			"frequencies": registry.ArrayParam(3, 5, 7),
		}, true, false, "stripe"))

	r.Register(entry("magnitude-stripe", "Magnitude Stripe", registry.CategoryStripe,
		"Stripe average weighted by each orbit step's magnitude.",
		algorithms.MagnitudeStripe, map[string]registry.ParamSpec{
			"frequency": registry.NumberParam(0.1, 64, 0.1, 5),
		}, true, false, "stripe"))

	r.Register(entry("radial-stripe", "Radial Stripe", registry.CategoryStripe,
		"Stripe term computed from orbit radius instead of angle.",
		algorithms.RadialStripe, map[string]registry.ParamSpec{
			"frequency": registry.NumberParam(0.1, 64, 0.1, 5),
		}, true, false, "stripe"))

	r.Register(entry("combined-stripe", "Combined Stripe", registry.CategoryStripe,
		"Weighted blend of angular and radial stripe terms.",
		algorithms.CombinedStripe, map[string]registry.ParamSpec{
			"frequency":    registry.NumberParam(0.1, 64, 0.1, 5),
			"radialWeight": registry.NumberParam(0, 1, 0.01, 0.5),
		}, true, false, "stripe", "hybrid"))

	r.Register(entry("smooth-stripe-bands", "Smooth Stripe Bands", registry.CategoryStripe,
		"Quantizes the stripe average into discrete bands.",
		algorithms.SmoothStripeBands, map[string]registry.ParamSpec{
			"frequency": registry.NumberParam(0.1, 64, 0.1, 5),
			"bands":     registry.NumberParam(1, 256, 1, 8),
		}, true, false, "stripe", "bands"))

	r.Register(entry("iteration-stripe-hybrid", "Iteration/Stripe Hybrid", registry.CategoryStripe,
		"Weighted blend of normalized iteration count and stripe average.",
		algorithms.IterationStripeHybrid, map[string]registry.ParamSpec{
			"frequency": registry.NumberParam(0.1, 64, 0.1, 5),
			"weight":    registry.NumberParam(0, 1, 0.01, 0.5),
		}, true, false, "stripe", "hybrid"))
}
