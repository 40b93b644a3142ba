package catalog

import (
	"github.com/gogpu/fractalcolor/internal/algorithms"
	"github.com/gogpu/fractalcolor/internal/registry"
)

func addHybrid(r *registry.Registry) {
	r.Register(entry("trap-smooth-hybrid", "Trap/Smooth Hybrid", registry.CategoryHybrid,
		"Weighted blend of a point trap and the smooth iteration count.",
		algorithms.TrapSmoothHybrid, map[string]registry.ParamSpec{
			"trapWeight":  registry.NumberParam(0, 1, 0.01, 0.5),
			"x":           registry.NumberParam(-10, 10, 0.01, 0),
			"y":           registry.NumberParam(-10, 10, 0.01, 0),
			"cycleScale":  registry.NumberParam(0.001, 1000, 0.001, 1),
			"cycleOffset": registry.NumberParam(-1000, 1000, 0.001, 0),
			"power":       registry.NumberParam(1, 10, 0.1, 2),
			"scale":       registry.NumberParam(0.01, 1000, 0.01, 10),
			"offset":      registry.NumberParam(-1000, 1000, 0.01, 0),
		}, true, false, "hybrid"))

	r.Register(entry("stripe-trap-hybrid", "Stripe/Trap Hybrid", registry.CategoryHybrid,
		"Weighted blend of the stripe average and a circle trap.",
		algorithms.StripeTrapHybrid, map[string]registry.ParamSpec{
			"weight":    registry.NumberParam(0, 1, 0.01, 0.5),
			"frequency": registry.NumberParam(0.1, 64, 0.1, 5),
			"radius":    registry.NumberParam(0.01, 10, 0.01, 1),
			"scale":     registry.NumberParam(0.01, 1000, 0.01, 10),
			"offset":    registry.NumberParam(-1000, 1000, 0.01, 0),
		}, true, false, "hybrid"))

	r.Register(entry("histogram-tia-hybrid", "Histogram/TIA Hybrid", registry.CategoryHybrid,
		"Weighted blend of histogram equalization and triangle-inequality average.",
		algorithms.HistogramTIAHybrid, map[string]registry.ParamSpec{
			"weight": registry.NumberParam(0, 1, 0.01, 0.5),
			"bins":   registry.NumberParam(2, 65536, 1, 256),
			"useLog": registry.BoolParam(false),
		}, true, true, "hybrid"))

	r.Register(entry("curvature-stripe-hybrid", "Curvature/Stripe Hybrid", registry.CategoryHybrid,
		"Weighted blend of curvature estimate and stripe average.",
		algorithms.CurvatureStripeHybrid, map[string]registry.ParamSpec{
			"weight":    registry.NumberParam(0, 1, 0.01, 0.5),
			"scale":     registry.NumberParam(0.01, 100, 0.01, 2),
			"frequency": registry.NumberParam(0.1, 64, 0.1, 5),
		}, true, false, "hybrid"))

	r.Register(entry("angle-distance-hybrid", "Angle/Distance Hybrid", registry.CategoryHybrid,
		"Weighted blend of final orbit angle and normalized distance.",
		algorithms.AngleDistanceHybrid, map[string]registry.ParamSpec{
			"weight": registry.NumberParam(0, 1, 0.01, 0.5),
		}, false, false, "hybrid"))
}
