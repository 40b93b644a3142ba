package catalog

import (
	"github.com/gogpu/fractalcolor/internal/algorithms"
	"github.com/gogpu/fractalcolor/internal/registry"
)

func addAngle(r *registry.Registry) {
	r.Register(entry("angular-decomposition", "Angular Decomposition", registry.CategoryAngle,
		"Banded final orbit angle into fixed sectors.",
		algorithms.AngularDecomposition, map[string]registry.ParamSpec{
			"sectors": registry.NumberParam(1, 128, 1, 6),
		}, false, false, "angle"))

	r.Register(entry("continuous-angle", "Continuous Angle", registry.CategoryAngle,
		"Final orbit point's argument, normalized to [0,1).",
		algorithms.ContinuousAngle, map[string]registry.ParamSpec{}, false, false, "angle"))

	r.Register(entry("radial-waves", "Radial Waves", registry.CategoryAngle,
		"Sinusoidal modulation of the final orbit radius.",
		algorithms.RadialWaves, map[string]registry.ParamSpec{
			"frequency": registry.NumberParam(0.1, 64, 0.1, 5),
		}, false, false, "angle", "radial"))

	r.Register(entry("angular-stripes", "Angular Stripes", registry.CategoryAngle,
		"Sinusoidal modulation of the final orbit angle.",
		algorithms.AngularStripes, map[string]registry.ParamSpec{
			"frequency": registry.NumberParam(0.1, 64, 0.1, 6),
		}, false, false, "angle", "stripe"))

	r.Register(entry("spiral-pattern", "Spiral Pattern", registry.CategoryAngle,
		"Angle twisted by radius, producing a spiral banding pattern.",
		algorithms.SpiralPattern, map[string]registry.ParamSpec{
			"twist": registry.NumberParam(-32, 32, 0.1, 3),
		}, false, false, "angle", "spiral"))

	r.Register(entry("iteration-angle-hybrid", "Iteration/Angle Hybrid", registry.CategoryAngle,
		"Weighted blend of normalized iteration count and final orbit angle.",
		algorithms.IterationAngleHybrid, map[string]registry.ParamSpec{
			"weight": registry.NumberParam(0, 1, 0.01, 0.5),
		}, false, false, "angle", "hybrid"))

	r.Register(entry("phase-accumulation", "Phase Accumulation", registry.CategoryAngle,
		"Sum of the per-step argument across the whole orbit history.",
		algorithms.PhaseAccumulation, map[string]registry.ParamSpec{
			"scale": registry.NumberParam(0.001, 100, 0.001, 1),
		}, true, false, "angle"))

	r.Register(entry("winding-number", "Winding Number", registry.CategoryAngle,
		"Net angular winding of the orbit around the origin.",
		algorithms.WindingNumber, map[string]registry.ParamSpec{
			"scale": registry.NumberParam(0.001, 100, 0.001, 1),
		}, true, false, "angle", "winding"))

	r.Register(entry("argument-sum", "Argument Sum", registry.CategoryAngle,
		"Sum of the orbit's raw arguments, wrapped to [0,1).",
		algorithms.ArgumentSum, map[string]registry.ParamSpec{}, true, false, "angle"))

	r.Register(entry("polar-decomposition", "Polar Decomposition", registry.CategoryAngle,
		"Joint radius-ring and angle-sector parity of the final orbit point.",
		algorithms.PolarDecomposition, map[string]registry.ParamSpec{
			"rings":   registry.NumberParam(1, 64, 1, 5),
			"sectors": registry.NumberParam(1, 128, 1, 8),
		}, false, false, "angle", "decomposition"))

	r.Register(entry("checkerboard-decomposition", "Checkerboard Decomposition", registry.CategoryAngle,
		"Checkerboard parity of the final orbit point's Cartesian cell.",
		algorithms.CheckerboardDecomposition, map[string]registry.ParamSpec{
			"scale": registry.NumberParam(0.1, 64, 0.1, 4),
		}, false, false, "angle", "decomposition"))

	r.Register(entry("angle-sector-bands", "Angle Sector Bands", registry.CategoryAngle,
		"Smooth cosine transition between angular sectors.",
		algorithms.AngleSectorBands, map[string]registry.ParamSpec{
			"sectors": registry.NumberParam(1, 128, 1, 6),
		}, false, false, "angle", "bands"))
}
