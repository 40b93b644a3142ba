package catalog

import (
	"github.com/gogpu/fractalcolor/internal/algorithms"
	"github.com/gogpu/fractalcolor/internal/registry"
)

func addTIA(r *registry.Registry) {
	r.Register(entry("triangle-inequality-average", "Triangle Inequality Average", registry.CategoryTriangleInequality,
		"Average of the triangle-inequality ratio across the orbit.",
		algorithms.TriangleInequalityAverage, map[string]registry.ParamSpec{}, true, false, "tia"))

	r.Register(entry("weighted-tia", "Weighted TIA", registry.CategoryTriangleInequality,
		"Triangle-inequality average weighted toward later orbit steps.",
		algorithms.WeightedTIA, map[string]registry.ParamSpec{}, true, false, "tia"))

	r.Register(entry("phase-tia", "Phase TIA", registry.CategoryTriangleInequality,
		"Triangle-inequality average modulated by the orbit's angular turning.",
		algorithms.PhaseTIA, map[string]registry.ParamSpec{}, true, false, "tia", "phase"))

	r.Register(entry("minimum-tia", "Minimum TIA", registry.CategoryTriangleInequality,
		"Minimum triangle-inequality ratio across the orbit.",
		algorithms.MinimumTIA, map[string]registry.ParamSpec{}, true, false, "tia"))

	r.Register(entry("maximum-tia", "Maximum TIA", registry.CategoryTriangleInequality,
		"Maximum triangle-inequality ratio across the orbit.",
		algorithms.MaximumTIA, map[string]registry.ParamSpec{}, true, false, "tia"))

	r.Register(entry("variance-tia", "Variance TIA", registry.CategoryTriangleInequality,
		"Variance of the triangle-inequality ratio across the orbit.",
		algorithms.VarianceTIA, map[string]registry.ParamSpec{}, true, false, "tia"))

	r.Register(entry("hybrid-tia", "Hybrid TIA", registry.CategoryTriangleInequality,
		"Weighted blend of the mean and variance triangle-inequality ratios.",
		algorithms.HybridTIA, map[string]registry.ParamSpec{
			"varianceWeight": registry.NumberParam(0, 1, 0.01, 0.5),
		}, true, false, "tia", "hybrid"))
}
