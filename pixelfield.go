package fractalcolor

import "github.com/gogpu/fractalcolor/internal/algorithms"

// PixelContext and OrbitStep are owned by internal/algorithms (every
// algorithm's Func signature closes over them) and re-exported here so
// callers assembling a PixelField never need to import that package
// directly.
type (
	PixelContext = algorithms.PixelContext
	OrbitStep    = algorithms.OrbitStep
)

// PixelField holds the producer-owned, read-only per-pixel buffers
// coming out of a fractal escape-time renderer. All slices have length
// Width*Height, row-major, origin top-left.
//
// Required fields are Iterations, Escaped, OrbitX, OrbitY. Optional
// fields (Distance, Potential, Angle, OrbitHistory) may be nil; an
// algorithm that needs an absent field falls back to a single-point
// approximation or, for requires_orbit_history algorithms, the engine
// skips the layer entirely when OrbitHistory is nil.
type PixelField struct {
	Width, Height int

	Iterations []float32 // smoothed iteration count, in [0, MaxIterations]
	Escaped    []uint8   // 0 or 1
	OrbitX     []float32 // final z.Re
	OrbitY     []float32 // final z.Im

	Distance     []float32     // optional, >= 0, 0 = unknown
	Potential    []float32     // optional
	Angle        []float32     // optional, radians
	OrbitHistory [][]OrbitStep // optional, variable length per pixel
}

// RenderConfig describes the fractal render that produced a PixelField.
// Immutable for the duration of a single Apply call.
type RenderConfig struct {
	Width, Height int
	MaxIterations float32
	EscapeRadius  float32 // default 2 when zero
}

func (c RenderConfig) escapeRadius() float32 {
	if c.EscapeRadius == 0 {
		return 2
	}
	return c.EscapeRadius
}

// pixelContext builds a PixelContext for pixel index i of field under config.
func pixelContext(field *PixelField, cfg RenderConfig, i int) PixelContext {
	ctx := PixelContext{
		X: i % cfg.Width, Y: i / cfg.Width,
		Width: cfg.Width, Height: cfg.Height,
		MaxIterations: cfg.MaxIterations,
		EscapeRadius:  cfg.escapeRadius(),
		Iterations:    field.Iterations[i],
		Escaped:       field.Escaped[i] != 0,
		OrbitX:        field.OrbitX[i],
		OrbitY:        field.OrbitY[i],
	}

	if field.Distance != nil {
		ctx.HasDistance = true
		ctx.Distance = field.Distance[i]
		ctx.HasNeighborDistance = true
		ctx.DistanceUp, ctx.DistanceDown, ctx.DistanceLeft, ctx.DistanceRight = neighborDistances(field, cfg, ctx.X, ctx.Y, ctx.Distance)
	}
	if field.Potential != nil {
		ctx.HasPotential = true
		ctx.Potential = field.Potential[i]
	}
	if field.Angle != nil {
		ctx.HasAngle = true
		ctx.Angle = field.Angle[i]
	}
	if field.OrbitHistory != nil {
		ctx.HasOrbitHistory = true
		ctx.OrbitHistory = field.OrbitHistory[i]
	}

	return ctx
}

// neighborDistances reads the 4-connected neighbour distances around (x,y),
// falling back to center (the pixel's own distance) at field edges so
// gradient-magnitude's central difference degrades gracefully instead of
// indexing outside the field.
func neighborDistances(field *PixelField, cfg RenderConfig, x, y int, center float32) (up, down, left, right float32) {
	up, down, left, right = center, center, center, center
	if y > 0 {
		up = field.Distance[(y-1)*cfg.Width+x]
	}
	if y < cfg.Height-1 {
		down = field.Distance[(y+1)*cfg.Width+x]
	}
	if x > 0 {
		left = field.Distance[y*cfg.Width+x-1]
	}
	if x < cfg.Width-1 {
		right = field.Distance[y*cfg.Width+x+1]
	}
	return up, down, left, right
}
