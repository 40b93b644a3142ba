package catalog

import (
	"github.com/gogpu/fractalcolor/internal/algorithms"
	"github.com/gogpu/fractalcolor/internal/registry"
)

func cycleSchema(extra map[string]registry.ParamSpec) map[string]registry.ParamSpec {
	schema := map[string]registry.ParamSpec{
		"cycleScale":  registry.NumberParam(0.001, 1000, 0.001, 1),
		"cycleOffset": registry.NumberParam(-1000, 1000, 0.001, 0),
	}
	for k, v := range extra {
		schema[k] = v
	}
	return schema
}

func addSmooth(r *registry.Registry) {
	r.Register(entry("smooth-iteration", "Smooth Iteration", registry.CategorySmooth,
		"Canonical smooth iteration count via the Douady-Hubbard potential.",
		algorithms.SmoothIteration, cycleSchema(map[string]registry.ParamSpec{
			"power": registry.NumberParam(1, 10, 0.1, 2),
		}), false, false, "smooth", "classic"))

	r.Register(entry("continuous-potential", "Continuous Potential", registry.CategorySmooth,
		"Continuous potential smoothing normalized by escape radius.",
		algorithms.ContinuousPotential, cycleSchema(nil), false, false, "smooth"))

	r.Register(entry("fractional-escape", "Fractional Escape", registry.CategorySmooth,
		"Linear interpolation in log-magnitude-squared over log-bailout-squared.",
		algorithms.FractionalEscape, cycleSchema(nil), false, false, "smooth"))

	r.Register(entry("binary-decomposition", "Binary Decomposition", registry.CategorySmooth,
		"Adds a half-step offset by the sign of the final orbit point's components.",
		algorithms.BinaryDecomposition, cycleSchema(map[string]registry.ParamSpec{
			"component": registry.SelectParam("real", "real", "imag", "both"),
		}), false, false, "smooth", "decomposition"))

	r.Register(entry("exponential-smooth", "Exponential Smooth", registry.CategorySmooth,
		"Smooths the iteration count with an exponential falloff of escape magnitude.",
		algorithms.ExponentialSmooth, cycleSchema(nil), false, false, "smooth"))

	r.Register(entry("renormalized", "Renormalized", registry.CategorySmooth,
		"Iteration count divided by the maximum, wrapped to [0,1).",
		algorithms.Renormalized, cycleSchema(nil), false, false, "smooth"))

	r.Register(entry("derivative-smooth", "Derivative Smooth", registry.CategorySmooth,
		"Blends in the distance-estimator derivative term when available.",
		algorithms.DerivativeSmooth, cycleSchema(map[string]registry.ParamSpec{
			"blend": registry.NumberParam(0, 1, 0.01, 0.5),
		}), false, false, "smooth"))

	r.Register(entry("parabolic-smooth", "Parabolic Smooth", registry.CategorySmooth,
		"Applies a parabolic response curve to the base smooth value.",
		algorithms.ParabolicSmooth, cycleSchema(nil), false, false, "smooth", "curve"))

	r.Register(entry("sinusoidal-smooth", "Sinusoidal Smooth", registry.CategorySmooth,
		"Applies a sinusoidal response curve to the base smooth value.",
		algorithms.SinusoidalSmooth, cycleSchema(nil), false, false, "smooth", "curve"))

	r.Register(entry("tangent-smooth", "Tangent Smooth", registry.CategorySmooth,
		"Applies a tangent response curve to the base smooth value.",
		algorithms.TangentSmooth, cycleSchema(nil), false, false, "smooth", "curve"))

	r.Register(entry("log-bands", "Log Bands", registry.CategorySmooth,
		"Logarithmic banding of the base smooth value.",
		algorithms.LogBands, cycleSchema(map[string]registry.ParamSpec{
			"bands": registry.NumberParam(1, 256, 1, 8),
		}), false, false, "smooth", "bands"))

	r.Register(entry("biomorph", "Biomorph", registry.CategorySmooth,
		"Switches to angle-based coloring near the coordinate axes, smooth elsewhere.",
		algorithms.Biomorph, cycleSchema(map[string]registry.ParamSpec{
			"threshold": registry.NumberParam(0, 10, 0.01, 1),
		}), false, false, "smooth", "biomorph"))

	r.Register(entry("smooth-distance-hybrid", "Smooth/Distance Hybrid", registry.CategorySmooth,
		"Weighted blend of smooth iteration and normalized distance.",
		algorithms.SmoothDistanceHybrid, cycleSchema(map[string]registry.ParamSpec{
			"weight": registry.NumberParam(0, 1, 0.01, 0.5),
		}), false, false, "smooth", "hybrid"))

	r.Register(entry("smooth-angle-hybrid", "Smooth/Angle Hybrid", registry.CategorySmooth,
		"Weighted blend of smooth iteration and final orbit angle.",
		algorithms.SmoothAngleHybrid, cycleSchema(map[string]registry.ParamSpec{
			"weight": registry.NumberParam(0, 1, 0.01, 0.5),
		}), false, false, "smooth", "hybrid"))
}
