package catalog

import (
	"github.com/gogpu/fractalcolor/internal/algorithms"
	"github.com/gogpu/fractalcolor/internal/registry"
)

func addDistance(r *registry.Registry) {
	r.Register(entry("distance-estimation", "Distance Estimation", registry.CategoryDistance,
		"Raw distance-estimator channel, cycled into [0,1).",
		algorithms.DistanceEstimation, cycleSchema(nil), false, false, "distance"))

	r.Register(entry("normalized-distance", "Normalized Distance", registry.CategoryDistance,
		"Log-normalized distance against a configurable maximum.",
		algorithms.NormalizedDistance, map[string]registry.ParamSpec{
			"maxDistance": registry.NumberParam(0.001, 1000, 0.001, 10),
		}, false, false, "distance"))

	r.Register(entry("boundary-glow", "Boundary Glow", registry.CategoryDistance,
		"Exponential falloff highlighting pixels near the fractal boundary.",
		algorithms.BoundaryGlow, map[string]registry.ParamSpec{
			"falloff": registry.NumberParam(0.01, 1000, 0.01, 8),
		}, false, false, "distance", "glow"))

	r.Register(entry("outline-detection", "Outline Detection", registry.CategoryDistance,
		"Binary threshold on distance, isolating a thin boundary outline.",
		algorithms.OutlineDetection, map[string]registry.ParamSpec{
			"threshold": registry.NumberParam(0, 10, 0.001, 0.01),
		}, false, false, "distance", "outline"))

	r.Register(entry("level-sets", "Level Sets", registry.CategoryDistance,
		"Discrete distance bands.",
		algorithms.LevelSets, map[string]registry.ParamSpec{
			"levels": registry.NumberParam(1, 256, 1, 10),
		}, false, false, "distance", "bands"))

	r.Register(entry("interior-distance", "Interior Distance", registry.CategoryDistance,
		"Proxy for distance-to-interior derived from the potential or distance channel.",
		algorithms.InteriorDistance, map[string]registry.ParamSpec{}, false, false, "distance"))

	r.Register(entry("gradient-magnitude", "Gradient Magnitude", registry.CategoryDistance,
		"Approximate spatial rate of change of the distance channel.",
		algorithms.GradientMagnitude, map[string]registry.ParamSpec{
			"sensitivity": registry.NumberParam(0.001, 100, 0.001, 0.1),
		}, false, false, "distance", "gradient"))

	r.Register(entry("combined-distance", "Combined Distance", registry.CategoryDistance,
		"Weighted combination of distance, potential and angle channels.",
		algorithms.CombinedDistance, map[string]registry.ParamSpec{
			"distanceWeight":  registry.NumberParam(0, 10, 0.01, 0.5),
			"potentialWeight": registry.NumberParam(0, 10, 0.01, 0.3),
			"angleWeight":     registry.NumberParam(0, 10, 0.01, 0.2),
		}, false, false, "distance", "hybrid"))

	r.Register(entry("exponential-glow", "Exponential Glow", registry.CategoryDistance,
		"Saturating exponential glow around the boundary.",
		algorithms.ExponentialGlow, map[string]registry.ParamSpec{
			"intensity": registry.NumberParam(0.001, 1000, 0.001, 5),
		}, false, false, "distance", "glow"))

	r.Register(entry("power-law-distance", "Power-Law Distance", registry.CategoryDistance,
		"Power-law response curve over the distance channel.",
		algorithms.PowerLawDistance, map[string]registry.ParamSpec{
			"exponent": registry.NumberParam(0.01, 10, 0.01, 0.5),
		}, false, false, "distance", "curve"))

	r.Register(entry("distance-bands", "Distance Bands", registry.CategoryDistance,
		"Cyclic banding of the distance channel at a fixed band width.",
		algorithms.DistanceBands, map[string]registry.ParamSpec{
			"bandWidth": registry.NumberParam(0.001, 10, 0.001, 0.1),
		}, false, false, "distance", "bands"))

	r.Register(entry("distance-iteration-hybrid", "Distance/Iteration Hybrid", registry.CategoryDistance,
		"Weighted blend of normalized iteration count and distance.",
		algorithms.DistanceIterationHybrid, map[string]registry.ParamSpec{
			"weight": registry.NumberParam(0, 1, 0.01, 0.5),
		}, false, false, "distance", "hybrid"))
}
