package algorithms

import "github.com/chewxy/math32"

// safeLog returns ln(x), guarding against the domain error at x<=0 by
// falling back to ln(x+1) the way the numerical policy requires; x+1 is
// floored at 1e-6 so the result stays finite for x <= -1.
func safeLog(x float32) float32 {
	if x <= 0 {
		return math32.Log(math32.Max(x+1, 1e-6))
	}
	return math32.Log(x)
}

func safeLog2(x float32) float32 {
	if x <= 0 {
		x = 1e-6
	}
	return math32.Log2(x)
}

func magnitude(x, y float32) float32 {
	return math32.Hypot(x, y)
}

func magnitude2(x, y float32) float32 {
	return x*x + y*y
}

// angleOf returns the argument of (x, y) normalized to [0,1): (atan2+pi)/(2*pi).
func angleOf(x, y float32) float32 {
	a := math32.Atan2(y, x)
	v := (a + math32.Pi) / (2 * math32.Pi)
	if v >= 1 {
		v = 0
	}
	return v
}

// finalOrbitPoint extracts the final orbit point from ctx, falling back
// to the final (OrbitX, OrbitY) pair when no history is present.
func finalOrbitPoint(ctx PixelContext) (x, y float32) {
	if ctx.HasOrbitHistory && len(ctx.OrbitHistory) > 0 {
		last := ctx.OrbitHistory[len(ctx.OrbitHistory)-1]
		return last.X, last.Y
	}
	return ctx.OrbitX, ctx.OrbitY
}
