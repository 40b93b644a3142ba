package algorithms

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/fractalcolor/internal/histogram"
)

// Orbit trap family: every variant measures how close the orbit comes to
// some reference shape. When the full orbit history is present the trap
// keeps the minimum distance seen across every iteration; absent history,
// it falls back to evaluating the shape at the final orbit point only.

// trapScan folds distFn over the orbit history (minimum wins), or applies
// it to the final orbit point when no history was captured.
func trapScan(ctx PixelContext, distFn func(x, y float32) float32) float32 {
	if ctx.HasOrbitHistory && len(ctx.OrbitHistory) > 0 {
		min := float32(math32.MaxFloat32)
		for _, p := range ctx.OrbitHistory {
			if d := distFn(p.X, p.Y); d < min {
				min = d
			}
		}
		return min
	}
	x, y := finalOrbitPoint(ctx)
	return distFn(x, y)
}

func trapResult(ctx PixelContext, params ParamMap, v float32) float32 {
	if !ctx.Escaped {
		return 0
	}
	return guardFinite(cycle(v, params.Float("scale", 10), params.Float("offset", 0)))
}

func distPoint(x, y, px, py float32) float32  { return magnitude(x-px, y-py) }
func distOrigin(x, y float32) float32         { return magnitude(x, y) }
func distCross(x, y float32) float32          { return math32.Min(math32.Abs(x), math32.Abs(y)) }
func distXCross(x, y float32) float32 {
	return math32.Min(math32.Abs(x-y), math32.Abs(x+y)) / math32.Sqrt(2)
}
func distStarCross(x, y float32) float32 { return math32.Min(distCross(x, y), distXCross(x, y)) }
func distCircle(x, y, r float32) float32 { return math32.Abs(magnitude(x, y) - r) }
func distConcentric(x, y, spacing float32) float32 {
	r := magnitude(x, y)
	return math32.Abs(math32.Mod(r, spacing) - spacing/2)
}
func distSquare(x, y, size float32) float32 {
	return math32.Abs(math32.Max(math32.Abs(x), math32.Abs(y)) - size)
}
func distDiamond(x, y, size float32) float32 {
	return math32.Abs(math32.Abs(x)+math32.Abs(y)-size)
}
func distPolygon(x, y float32, sides int, r float32) float32 {
	theta := math32.Atan2(y, x)
	n := float32(sides)
	edge := math32.Cos(math32.Pi/n) / math32.Cos(math32.Mod(theta, 2*math32.Pi/n)-math32.Pi/n)
	return math32.Abs(magnitude(x, y) - r*edge)
}
func distStar(x, y float32, points int, rOuter, rInner float32) float32 {
	theta := math32.Atan2(y, x)
	n := float32(points)
	frac := math32.Mod(theta*n/(2*math32.Pi), 1)
	if frac < 0 {
		frac++
	}
	amp := rInner + (rOuter-rInner)*(1-math32.Abs(2*frac-1))
	return math32.Abs(magnitude(x, y) - amp)
}
func distSpiral(x, y, a, b float32) float32 {
	r := magnitude(x, y)
	theta := math32.Atan2(y, x)
	if theta < 0 {
		theta += 2 * math32.Pi
	}
	return math32.Abs(r - (a + b*theta))
}
func distGoldenSpiral(x, y, a float32) float32 {
	const phi = 1.6180339887
	r := magnitude(x, y)
	theta := math32.Atan2(y, x)
	if theta < 0 {
		theta += 2 * math32.Pi
	}
	return math32.Abs(r - a*math32.Pow(phi, theta/(math32.Pi/2)))
}
func distGrid(x, y, spacing float32) float32 {
	dx := math32.Abs(math32.Mod(x, spacing) - spacing/2)
	dy := math32.Abs(math32.Mod(y, spacing) - spacing/2)
	return math32.Min(dx, dy)
}
func distRadialGrid(x, y, spacing, sectors float32) float32 {
	rPart := distConcentric(x, y, spacing)
	theta := math32.Atan2(y, x)
	sectorWidth := 2 * math32.Pi / sectors
	aPart := math32.Abs(math32.Mod(theta, sectorWidth) - sectorWidth/2)
	return math32.Min(rPart, aPart)
}
func distFlower(x, y float32, petals int, base, amp float32) float32 {
	r := magnitude(x, y)
	theta := math32.Atan2(y, x)
	target := base + amp*math32.Cos(float32(petals)*theta)
	return math32.Abs(r - target)
}
func distRose(x, y float32, k float32) float32 {
	r := magnitude(x, y)
	theta := math32.Atan2(y, x)
	target := math32.Cos(k * theta)
	return math32.Abs(r - target)
}
func distPickoverStalks(x, y, threshold float32) float32 {
	d := distCross(x, y)
	if d > threshold {
		return threshold
	}
	return d
}
func distGaussian(x, y, sigma float32) float32 {
	r2 := magnitude2(x, y)
	return 1 - math32.Exp(-r2/(2*sigma*sigma))
}
func distLine(x, y, angle float32) float32 {
	nx, ny := -math32.Sin(angle), math32.Cos(angle)
	return math32.Abs(x*nx + y*ny)
}
func distTriangle(x, y, size float32) float32 {
	theta := math32.Atan2(y, x)
	edge := math32.Cos(math32.Pi/3) / math32.Cos(math32.Mod(theta, 2*math32.Pi/3)-math32.Pi/3)
	return math32.Abs(magnitude(x, y) - size*edge)
}
func distHexagon(x, y, size float32) float32 {
	theta := math32.Atan2(y, x)
	edge := math32.Cos(math32.Pi/6) / math32.Cos(math32.Mod(theta, math32.Pi/3)-math32.Pi/6)
	return math32.Abs(magnitude(x, y) - size*edge)
}
func distCheckerboard(x, y, cell float32) float32 {
	cx := math32.Floor(x / cell)
	cy := math32.Floor(y / cell)
	parity := math32.Mod(cx+cy, 2)
	if parity < 0 {
		parity++
	}
	return parity
}

func PointTrap(ctx PixelContext, params ParamMap, _ *histogram.Context) float32 {
	px, py := params.Float("x", 0), params.Float("y", 0)
	return trapResult(ctx, params, trapScan(ctx, func(x, y float32) float32 { return distPoint(x, y, px, py) }))
}

func OriginTrap(ctx PixelContext, params ParamMap, _ *histogram.Context) float32 {
	return trapResult(ctx, params, trapScan(ctx, distOrigin))
}

func CrossTrap(ctx PixelContext, params ParamMap, _ *histogram.Context) float32 {
	return trapResult(ctx, params, trapScan(ctx, distCross))
}

func XCrossTrap(ctx PixelContext, params ParamMap, _ *histogram.Context) float32 {
	return trapResult(ctx, params, trapScan(ctx, distXCross))
}

func StarCrossTrap(ctx PixelContext, params ParamMap, _ *histogram.Context) float32 {
	return trapResult(ctx, params, trapScan(ctx, distStarCross))
}

func CircleTrap(ctx PixelContext, params ParamMap, _ *histogram.Context) float32 {
	r := params.Float("radius", 1)
	return trapResult(ctx, params, trapScan(ctx, func(x, y float32) float32 { return distCircle(x, y, r) }))
}

func ConcentricTrap(ctx PixelContext, params ParamMap, _ *histogram.Context) float32 {
	spacing := params.Float("spacing", 0.5)
	return trapResult(ctx, params, trapScan(ctx, func(x, y float32) float32 { return distConcentric(x, y, spacing) }))
}

func SquareTrap(ctx PixelContext, params ParamMap, _ *histogram.Context) float32 {
	size := params.Float("size", 1)
	return trapResult(ctx, params, trapScan(ctx, func(x, y float32) float32 { return distSquare(x, y, size) }))
}

func PolygonTrap(ctx PixelContext, params ParamMap, _ *histogram.Context) float32 {
	sides := int(params.Float("sides", 5))
	if sides < 3 {
		sides = 3
	}
	r := params.Float("radius", 1)
	return trapResult(ctx, params, trapScan(ctx, func(x, y float32) float32 { return distPolygon(x, y, sides, r) }))
}

func StarTrap(ctx PixelContext, params ParamMap, _ *histogram.Context) float32 {
	points := int(params.Float("points", 5))
	if points < 2 {
		points = 2
	}
	rOuter, rInner := params.Float("outerRadius", 1), params.Float("innerRadius", 0.5)
	return trapResult(ctx, params, trapScan(ctx, func(x, y float32) float32 { return distStar(x, y, points, rOuter, rInner) }))
}

func SpiralTrap(ctx PixelContext, params ParamMap, _ *histogram.Context) float32 {
	a, b := params.Float("a", 0), params.Float("b", 0.2)
	return trapResult(ctx, params, trapScan(ctx, func(x, y float32) float32 { return distSpiral(x, y, a, b) }))
}

func GoldenSpiralTrap(ctx PixelContext, params ParamMap, _ *histogram.Context) float32 {
	a := params.Float("a", 0.1)
	return trapResult(ctx, params, trapScan(ctx, func(x, y float32) float32 { return distGoldenSpiral(x, y, a) }))
}

func GridTrap(ctx PixelContext, params ParamMap, _ *histogram.Context) float32 {
	spacing := params.Float("spacing", 0.5)
	return trapResult(ctx, params, trapScan(ctx, func(x, y float32) float32 { return distGrid(x, y, spacing) }))
}

func RadialGridTrap(ctx PixelContext, params ParamMap, _ *histogram.Context) float32 {
	spacing := params.Float("spacing", 0.5)
	sectors := params.Float("sectors", 8)
	return trapResult(ctx, params, trapScan(ctx, func(x, y float32) float32 { return distRadialGrid(x, y, spacing, sectors) }))
}

func FlowerTrap(ctx PixelContext, params ParamMap, _ *histogram.Context) float32 {
	petals := int(params.Float("petals", 6))
	base, amp := params.Float("base", 0.5), params.Float("amplitude", 0.3)
	return trapResult(ctx, params, trapScan(ctx, func(x, y float32) float32 { return distFlower(x, y, petals, base, amp) }))
}

func RoseTrap(ctx PixelContext, params ParamMap, _ *histogram.Context) float32 {
	k := params.Float("k", 3)
	return trapResult(ctx, params, trapScan(ctx, func(x, y float32) float32 { return distRose(x, y, k) }))
}

func PickoverStalksTrap(ctx PixelContext, params ParamMap, _ *histogram.Context) float32 {
	threshold := params.Float("threshold", 0.1)
	return trapResult(ctx, params, trapScan(ctx, func(x, y float32) float32 { return distPickoverStalks(x, y, threshold) }))
}

func GaussianTrap(ctx PixelContext, params ParamMap, _ *histogram.Context) float32 {
	sigma := params.Float("sigma", 1)
	return trapResult(ctx, params, trapScan(ctx, func(x, y float32) float32 { return distGaussian(x, y, sigma) }))
}

func LineTrap(ctx PixelContext, params ParamMap, _ *histogram.Context) float32 {
	angle := params.Float("angle", 0)
	return trapResult(ctx, params, trapScan(ctx, func(x, y float32) float32 { return distLine(x, y, angle) }))
}

func TriangleTrap(ctx PixelContext, params ParamMap, _ *histogram.Context) float32 {
	size := params.Float("size", 1)
	return trapResult(ctx, params, trapScan(ctx, func(x, y float32) float32 { return distTriangle(x, y, size) }))
}

func HexagonTrap(ctx PixelContext, params ParamMap, _ *histogram.Context) float32 {
	size := params.Float("size", 1)
	return trapResult(ctx, params, trapScan(ctx, func(x, y float32) float32 { return distHexagon(x, y, size) }))
}

func DiamondTrap(ctx PixelContext, params ParamMap, _ *histogram.Context) float32 {
	size := params.Float("size", 1)
	return trapResult(ctx, params, trapScan(ctx, func(x, y float32) float32 { return distDiamond(x, y, size) }))
}

func CheckerboardTrap(ctx PixelContext, params ParamMap, _ *histogram.Context) float32 {
	cell := params.Float("cellSize", 0.5)
	return trapResult(ctx, params, trapScan(ctx, func(x, y float32) float32 { return distCheckerboard(x, y, cell) }))
}

// combineTrapMode folds a battery of trap distances into one according to
// mode: min, max, average, multiply or sum.
func combineTrapMode(mode string, ds []float32) float32 {
	switch mode {
	case "max":
		v := ds[0]
		for _, d := range ds[1:] {
			v = math32.Max(v, d)
		}
		return v
	case "average":
		var sum float32
		for _, d := range ds {
			sum += d
		}
		return sum / float32(len(ds))
	case "multiply":
		v := float32(1)
		for _, d := range ds {
			v *= d
		}
		return v
	case "sum":
		var sum float32
		for _, d := range ds {
			sum += d
		}
		return sum
	default: // "min"
		v := ds[0]
		for _, d := range ds[1:] {
			v = math32.Min(v, d)
		}
		return v
	}
}

// MultiTrap combines a small fixed battery of reference shapes via a
// selectable mode: min, max, average, multiply or sum.
func MultiTrap(ctx PixelContext, params ParamMap, _ *histogram.Context) float32 {
	r := params.Float("radius", 1)
	size := params.Float("size", 1)
	mode := params.String("mode", "min")
	v := trapScan(ctx, func(x, y float32) float32 {
		return combineTrapMode(mode, []float32{distOrigin(x, y), distCircle(x, y, r), distSquare(x, y, size)})
	})
	return trapResult(ctx, params, v)
}

// PhaseTrap mixes a shape's trap distance with the orbit's angular phase:
// lerp(distance_term, atan2(y,x)/2pi + 0.5, phaseWeight).
func PhaseTrap(ctx PixelContext, params ParamMap, _ *histogram.Context) float32 {
	r := params.Float("radius", 1)
	phaseWeight := params.Float("phaseWeight", 0.5)
	falloff := params.Float("falloff", 8)

	d := trapScan(ctx, func(x, y float32) float32 { return distCircle(x, y, r) })
	distanceTerm := clamp01(math32.Exp(-d * falloff))

	x, y := finalOrbitPoint(ctx)
	phase := angleOf(x, y)

	v := lerp32(distanceTerm, phase, phaseWeight)
	if !ctx.Escaped {
		return 0
	}
	return guardFinite(cycle(v, params.Float("scale", 1), params.Float("offset", 0)))
}
