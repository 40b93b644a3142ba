package catalog

import (
	"github.com/gogpu/fractalcolor/internal/algorithms"
	"github.com/gogpu/fractalcolor/internal/registry"
)

func trapSchema(extra map[string]registry.ParamSpec) map[string]registry.ParamSpec {
	schema := map[string]registry.ParamSpec{
		"scale":  registry.NumberParam(0.01, 1000, 0.01, 10),
		"offset": registry.NumberParam(-1000, 1000, 0.01, 0),
	}
	for k, v := range extra {
		schema[k] = v
	}
	return schema
}

func addTrap(r *registry.Registry) {
	r.Register(entry("trap-point", "Point Trap", registry.CategoryOrbitTrap,
		"Minimum distance from the orbit to a fixed point.",
		algorithms.PointTrap, trapSchema(map[string]registry.ParamSpec{
			"x": registry.NumberParam(-10, 10, 0.01, 0),
			"y": registry.NumberParam(-10, 10, 0.01, 0),
		}), true, false, "trap"))

	r.Register(entry("trap-origin", "Origin Trap", registry.CategoryOrbitTrap,
		"Minimum distance from the orbit to the origin.",
		algorithms.OriginTrap, trapSchema(nil), true, false, "trap"))

	r.Register(entry("trap-cross", "Cross Trap", registry.CategoryOrbitTrap,
		"Minimum distance from the orbit to the coordinate axes.",
		algorithms.CrossTrap, trapSchema(nil), true, false, "trap"))

	r.Register(entry("trap-x-cross", "X-Cross Trap", registry.CategoryOrbitTrap,
		"Minimum distance from the orbit to the diagonal axes.",
		algorithms.XCrossTrap, trapSchema(nil), true, false, "trap"))

	r.Register(entry("trap-star-cross", "Star-Cross Trap", registry.CategoryOrbitTrap,
		"Combined axis and diagonal cross trap.",
		algorithms.StarCrossTrap, trapSchema(nil), true, false, "trap"))

	r.Register(entry("trap-circle", "Circle Trap", registry.CategoryOrbitTrap,
		"Minimum distance from the orbit to a circle.",
		algorithms.CircleTrap, trapSchema(map[string]registry.ParamSpec{
			"radius": registry.NumberParam(0.01, 10, 0.01, 1),
		}), true, false, "trap"))

	r.Register(entry("trap-concentric", "Concentric Trap", registry.CategoryOrbitTrap,
		"Minimum distance from the orbit to a family of concentric rings.",
		algorithms.ConcentricTrap, trapSchema(map[string]registry.ParamSpec{
			"spacing": registry.NumberParam(0.01, 10, 0.01, 0.5),
		}), true, false, "trap"))

	r.Register(entry("trap-square", "Square Trap", registry.CategoryOrbitTrap,
		"Minimum Chebyshev distance from the orbit to a square boundary.",
		algorithms.SquareTrap, trapSchema(map[string]registry.ParamSpec{
			"size": registry.NumberParam(0.01, 10, 0.01, 1),
		}), true, false, "trap"))

	r.Register(entry("trap-polygon", "Polygon Trap", registry.CategoryOrbitTrap,
		"Minimum distance from the orbit to a regular polygon boundary.",
		algorithms.PolygonTrap, trapSchema(map[string]registry.ParamSpec{
			"sides":  registry.NumberParam(3, 12, 1, 5),
			"radius": registry.NumberParam(0.01, 10, 0.01, 1),
		}), true, false, "trap"))

	r.Register(entry("trap-star", "Star Trap", registry.CategoryOrbitTrap,
		"Minimum distance from the orbit to a star polygon boundary.",
		algorithms.StarTrap, trapSchema(map[string]registry.ParamSpec{
			"points":      registry.NumberParam(2, 12, 1, 5),
			"outerRadius": registry.NumberParam(0.01, 10, 0.01, 1),
			"innerRadius": registry.NumberParam(0.01, 10, 0.01, 0.5),
		}), true, false, "trap"))

	r.Register(entry("trap-spiral", "Spiral Trap", registry.CategoryOrbitTrap,
		"Minimum distance from the orbit to an Archimedean spiral.",
		algorithms.SpiralTrap, trapSchema(map[string]registry.ParamSpec{
			"a": registry.NumberParam(-10, 10, 0.01, 0),
			"b": registry.NumberParam(-10, 10, 0.01, 0.2),
		}), true, false, "trap"))

	r.Register(entry("trap-golden-spiral", "Golden Spiral Trap", registry.CategoryOrbitTrap,
		"Minimum distance from the orbit to a golden-ratio logarithmic spiral.",
		algorithms.GoldenSpiralTrap, trapSchema(map[string]registry.ParamSpec{
			"a": registry.NumberParam(0.001, 10, 0.001, 0.1),
		}), true, false, "trap"))

	r.Register(entry("trap-grid", "Grid Trap", registry.CategoryOrbitTrap,
		"Minimum distance from the orbit to a Cartesian grid.",
		algorithms.GridTrap, trapSchema(map[string]registry.ParamSpec{
			"spacing": registry.NumberParam(0.01, 10, 0.01, 0.5),
		}), true, false, "trap"))

	r.Register(entry("trap-radial-grid", "Radial Grid Trap", registry.CategoryOrbitTrap,
		"Minimum distance from the orbit to a polar grid of rings and sectors.",
		algorithms.RadialGridTrap, trapSchema(map[string]registry.ParamSpec{
			"spacing": registry.NumberParam(0.01, 10, 0.01, 0.5),
			"sectors": registry.NumberParam(1, 64, 1, 8),
		}), true, false, "trap"))

	r.Register(entry("trap-flower", "Flower Trap", registry.CategoryOrbitTrap,
		"Minimum distance from the orbit to a petaled polar curve.",
		algorithms.FlowerTrap, trapSchema(map[string]registry.ParamSpec{
			"petals":    registry.NumberParam(1, 24, 1, 6),
			"base":      registry.NumberParam(0, 10, 0.01, 0.5),
			"amplitude": registry.NumberParam(0, 10, 0.01, 0.3),
		}), true, false, "trap"))

	r.Register(entry("trap-rose", "Rose Trap", registry.CategoryOrbitTrap,
		"Minimum distance from the orbit to a polar rose curve.",
		algorithms.RoseTrap, trapSchema(map[string]registry.ParamSpec{
			"k": registry.NumberParam(0.5, 24, 0.5, 3),
		}), true, false, "trap"))

	r.Register(entry("trap-pickover-stalks", "Pickover Stalks", registry.CategoryOrbitTrap,
		"Highlights orbit points passing close to either coordinate axis.",
		algorithms.PickoverStalksTrap, trapSchema(map[string]registry.ParamSpec{
			"threshold": registry.NumberParam(0.001, 5, 0.001, 0.1),
		}), true, false, "trap"))

	r.Register(entry("trap-gaussian", "Gaussian Trap", registry.CategoryOrbitTrap,
		"Gaussian falloff of orbit distance from the origin.",
		algorithms.GaussianTrap, trapSchema(map[string]registry.ParamSpec{
			"sigma": registry.NumberParam(0.01, 10, 0.01, 1),
		}), true, false, "trap"))

	r.Register(entry("line-trap", "Line Trap", registry.CategoryOrbitTrap,
		"Minimum distance from the orbit to a line through the origin.",
		algorithms.LineTrap, trapSchema(map[string]registry.ParamSpec{
			"angle": registry.NumberParam(-6.5, 6.5, 0.01, 0),
		}), true, false, "trap"))

	r.Register(entry("triangle-trap", "Triangle Trap", registry.CategoryOrbitTrap,
		"Minimum distance from the orbit to an equilateral triangle boundary.",
		algorithms.TriangleTrap, trapSchema(map[string]registry.ParamSpec{
			"size": registry.NumberParam(0.01, 10, 0.01, 1),
		}), true, false, "trap"))

	r.Register(entry("hexagon-trap", "Hexagon Trap", registry.CategoryOrbitTrap,
		"Minimum distance from the orbit to a regular hexagon boundary.",
		algorithms.HexagonTrap, trapSchema(map[string]registry.ParamSpec{
			"size": registry.NumberParam(0.01, 10, 0.01, 1),
		}), true, false, "trap"))

	r.Register(entry("diamond-trap", "Diamond Trap", registry.CategoryOrbitTrap,
		"Minimum L1 distance from the orbit to a diamond boundary.",
		algorithms.DiamondTrap, trapSchema(map[string]registry.ParamSpec{
			"size": registry.NumberParam(0.01, 10, 0.01, 1),
		}), true, false, "trap"))

	r.Register(entry("checkerboard-trap", "Checkerboard Trap", registry.CategoryOrbitTrap,
		"Parity of the orbit's cell in a fixed-size checkerboard.",
		algorithms.CheckerboardTrap, trapSchema(map[string]registry.ParamSpec{
			"cellSize": registry.NumberParam(0.01, 10, 0.01, 0.5),
		}), true, false, "trap"))

	r.Register(entry("multi-trap", "Multi Trap", registry.CategoryOrbitTrap,
		"Combines a battery of origin, circle and square traps via a selectable mode.",
		algorithms.MultiTrap, trapSchema(map[string]registry.ParamSpec{
			"radius": registry.NumberParam(0.01, 10, 0.01, 1),
			"size":   registry.NumberParam(0.01, 10, 0.01, 1),
			"mode":   registry.SelectParam("min", "min", "max", "average", "multiply", "sum"),
		}), true, false, "trap", "composite"))

	r.Register(entry("phase-trap", "Phase Trap", registry.CategoryOrbitTrap,
		"Mixes a circle trap's distance with the orbit's angular phase.",
		algorithms.PhaseTrap, trapSchema(map[string]registry.ParamSpec{
			"radius":      registry.NumberParam(0.01, 10, 0.01, 1),
			"phaseWeight": registry.NumberParam(0, 1, 0.01, 0.5),
			"falloff":     registry.NumberParam(0.01, 100, 0.01, 8),
		}), true, false, "trap", "phase"))
}
