package catalog

import (
	"github.com/gogpu/fractalcolor/internal/algorithms"
	"github.com/gogpu/fractalcolor/internal/registry"
)

func addCurvature(r *registry.Registry) {
	r.Register(entry("curvature-estimate", "Curvature Estimate", registry.CategoryCurvature,
		"Mean absolute discrete curvature of the orbit path.",
		algorithms.CurvatureEstimate, map[string]registry.ParamSpec{
			"scale": registry.NumberParam(0.01, 100, 0.01, 2),
		}, true, false, "curvature"))

	r.Register(entry("gaussian-curvature", "Gaussian Curvature", registry.CategoryCurvature,
		"Mean squared discrete curvature of the orbit path.",
		algorithms.GaussianCurvature, map[string]registry.ParamSpec{
			"scale": registry.NumberParam(0.01, 100, 0.01, 4),
		}, true, false, "curvature"))

	r.Register(entry("mean-curvature", "Mean Curvature", registry.CategoryCurvature,
		"Mean signed discrete curvature of the orbit path.",
		algorithms.MeanCurvature, map[string]registry.ParamSpec{
			"scale": registry.NumberParam(0.01, 100, 0.01, 2),
		}, true, false, "curvature"))

	r.Register(entry("angular-velocity", "Angular Velocity", registry.CategoryCurvature,
		"Average unwrapped angular change between successive orbit steps.",
		algorithms.AngularVelocity, map[string]registry.ParamSpec{
			"scale": registry.NumberParam(0.001, 100, 0.001, 0.318309886),
		}, true, false, "curvature", "angle"))

	r.Register(entry("orbit-acceleration", "Orbit Acceleration", registry.CategoryCurvature,
		"Average magnitude of the orbit's discrete second difference.",
		algorithms.OrbitAcceleration, map[string]registry.ParamSpec{
			"scale": registry.NumberParam(0.01, 100, 0.01, 2),
		}, true, false, "curvature"))

	r.Register(entry("torsion-estimate", "Torsion Estimate", registry.CategoryCurvature,
		"Rate of change of curvature along the orbit.",
		algorithms.TorsionEstimate, map[string]registry.ParamSpec{
			"scale": registry.NumberParam(0.01, 100, 0.01, 4),
		}, true, false, "curvature"))

	r.Register(entry("combined-curvature", "Combined Curvature", registry.CategoryCurvature,
		"Weighted blend of curvature estimate and angular velocity.",
		algorithms.CombinedCurvature, map[string]registry.ParamSpec{
			"weight": registry.NumberParam(0, 1, 0.01, 0.5),
		}, true, false, "curvature", "hybrid"))
}
