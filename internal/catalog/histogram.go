package catalog

import (
	"github.com/gogpu/fractalcolor/internal/algorithms"
	"github.com/gogpu/fractalcolor/internal/registry"
)

func binsSchema(extra map[string]registry.ParamSpec) map[string]registry.ParamSpec {
	schema := map[string]registry.ParamSpec{
		"bins":   registry.NumberParam(2, 65536, 1, 256),
		"useLog": registry.BoolParam(false),
	}
	for k, v := range extra {
		schema[k] = v
	}
	return schema
}

func addHistogram(r *registry.Registry) {
	r.Register(entry("histogram-equalization", "Histogram Equalization", registry.CategoryHistogram,
		"Classic CDF-based histogram equalization over the iteration count.",
		algorithms.HistogramEqualization, binsSchema(nil), false, true, "histogram"))

	r.Register(entry("log-histogram", "Log Histogram", registry.CategoryHistogram,
		"Histogram equalization over the log-transformed iteration count.",
		algorithms.LogHistogram, binsSchema(nil), false, true, "histogram"))

	r.Register(entry("percentile-stretch", "Percentile Stretch", registry.CategoryHistogram,
		"Stretches the equalized value between a low and high percentile.",
		algorithms.PercentileStretch, binsSchema(map[string]registry.ParamSpec{
			"lowPercentile":  registry.NumberParam(0, 1, 0.001, 0.02),
			"highPercentile": registry.NumberParam(0, 1, 0.001, 0.98),
		}), false, true, "histogram", "contrast"))

	r.Register(entry("adaptive-equalization", "Adaptive Equalization", registry.CategoryHistogram,
		"Blends equalized and locally contrast-boosted values.",
		algorithms.AdaptiveEqualization, binsSchema(map[string]registry.ParamSpec{
			"strength": registry.NumberParam(0, 1, 0.01, 0.5),
		}), false, true, "histogram", "contrast"))

	r.Register(entry("gamma-equalization", "Gamma Equalization", registry.CategoryHistogram,
		"Gamma-corrects the equalized value.",
		algorithms.GammaEqualization, binsSchema(map[string]registry.ParamSpec{
			"gamma": registry.NumberParam(0.01, 10, 0.01, 1),
		}), false, true, "histogram"))

	r.Register(entry("multi-pass-equalization", "Multi-Pass Equalization", registry.CategoryHistogram,
		"Re-applies histogram equalization across multiple passes.",
		algorithms.MultiPassEqualization, binsSchema(map[string]registry.ParamSpec{
			"passes": registry.NumberParam(1, 8, 1, 2),
		}), false, true, "histogram"))

	r.Register(entry("weighted-equalization", "Weighted Equalization", registry.CategoryHistogram,
		"Boosts the equalized value near the boundary using the distance channel.",
		algorithms.WeightedEqualization, binsSchema(map[string]registry.ParamSpec{
			"weight": registry.NumberParam(0, 1, 0.01, 0.8),
		}), false, true, "histogram", "distance"))

	r.Register(entry("sigmoid-equalization", "Sigmoid Equalization", registry.CategoryHistogram,
		"Sigmoid response curve over the equalized value.",
		algorithms.SigmoidEqualization, binsSchema(map[string]registry.ParamSpec{
			"steepness": registry.NumberParam(0.1, 100, 0.1, 10),
			"midpoint":  registry.NumberParam(0, 1, 0.01, 0.5),
		}), false, true, "histogram", "curve"))
}
