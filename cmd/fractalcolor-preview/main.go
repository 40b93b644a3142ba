// Command fractalcolor-preview renders a synthetic Mandelbrot field and
// colors it with a single registered algorithm, for smoke-testing the
// engine end to end without a real fractal renderer.
package main

import (
	"flag"
	"log"
	"math"

	"github.com/chewxy/math32"
	"github.com/gogpu/fractalcolor"
)

func main() {
	var (
		width     = flag.Int("width", 800, "image width")
		height    = flag.Int("height", 600, "image height")
		algo      = flag.String("algorithm", "smooth-iteration", "registered algorithm id")
		preset    = flag.String("gradient", "fire", "gradient preset name")
		maxIter   = flag.Float64("max-iterations", 256, "maximum escape-time iterations")
		output    = flag.String("output", "preview.png", "output PNG path")
		listAlgos = flag.Bool("list-algorithms", false, "print every registered algorithm id and exit")
	)
	flag.Parse()

	registry := fractalcolor.DefaultRegistry()

	if *listAlgos {
		for _, entry := range registry.All() {
			log.Printf("%-30s %s", entry.ID, entry.Description)
		}
		return
	}

	if !registry.Has(*algo) {
		log.Fatalf("unknown algorithm id %q (use -list-algorithms to see the catalog)", *algo)
	}

	field, cfg := synthesizeMandelbrot(*width, *height, float32(*maxIter))

	engine := fractalcolor.NewEngine(registry)
	engine.AddLayer(fractalcolor.CoLoringLayer{
		Name:        "preview",
		AlgorithmID: *algo,
		Enabled:     true,
		Opacity:     1,
		BlendMode:   fractalcolor.BlendNormal,
		Transform:   fractalcolor.DefaultTransform(),
		Gradient:    fractalcolor.Preset(*preset),
	})

	out := make([]byte, *width**height*4)
	if err := engine.Apply(field, cfg, out); err != nil {
		log.Fatalf("apply: %v", err)
	}

	if err := fractalcolor.SavePNG(*output, *width, *height, out); err != nil {
		log.Fatalf("save png: %v", err)
	}

	log.Printf("preview saved to %s (%dx%d, algorithm=%s, gradient=%s)\n",
		*output, *width, *height, *algo, *preset)
}

// synthesizeMandelbrot iterates z_{n+1} = z_n^2 + c over the region
// [-2.5, 1] x [-1.25, 1.25] and fills every PixelField channel a real
// renderer would plausibly produce, including orbit history, so every
// algorithm family (including requires_orbit_history entries) has real
// data to run against.
func synthesizeMandelbrot(width, height int, maxIterations float32) (*fractalcolor.PixelField, fractalcolor.RenderConfig) {
	const escapeRadius = float32(2)
	n := width * height

	field := &fractalcolor.PixelField{
		Width:  width,
		Height: height,

		Iterations: make([]float32, n),
		Escaped:    make([]uint8, n),
		OrbitX:     make([]float32, n),
		OrbitY:     make([]float32, n),

		Distance:     make([]float32, n),
		Potential:    make([]float32, n),
		Angle:        make([]float32, n),
		OrbitHistory: make([][]fractalcolor.OrbitStep, n),
	}

	for py := 0; py < height; py++ {
		im := -1.25 + 2.5*float32(py)/float32(height)
		for px := 0; px < width; px++ {
			re := -2.5 + 3.5*float32(px)/float32(width)
			i := py*width + px

			cRe, cIm := re, im
			var zRe, zIm float32
			history := make([]fractalcolor.OrbitStep, 0, 64)
			escaped := false
			var iter float32
			var lastMag2 float32

			maxN := int(maxIterations)
			for n := 0; n < maxN; n++ {
				zRe2 := zRe*zRe - zIm*zIm + cRe
				zIm2 := 2*zRe*zIm + cIm
				zRe, zIm = zRe2, zIm2

				mag2 := zRe*zRe + zIm*zIm
				lastMag2 = mag2
				history = append(history, fractalcolor.OrbitStep{X: zRe, Y: zIm})

				iter = float32(n + 1)
				if mag2 > escapeRadius*escapeRadius {
					escaped = true
					break
				}
			}

			field.Iterations[i] = smoothedIteration(iter, lastMag2, escaped)
			if escaped {
				field.Escaped[i] = 1
			}
			field.OrbitX[i] = zRe
			field.OrbitY[i] = zIm
			field.Distance[i] = distanceEstimate(zRe, zIm, lastMag2, escaped)
			field.Potential[i] = float32(math.Log(float64(lastMag2) + 1))
			field.Angle[i] = math32.Atan2(zIm, zRe)
			field.OrbitHistory[i] = history
		}
	}

	return field, fractalcolor.RenderConfig{
		Width:         width,
		Height:        height,
		MaxIterations: maxIterations,
		EscapeRadius:  escapeRadius,
	}
}

func smoothedIteration(iter, mag2 float32, escaped bool) float32 {
	if !escaped {
		return iter
	}
	logZn := math32.Log(mag2) / 2
	nu := math32.Log(logZn/math32.Log(2)) / math32.Log(2)
	return iter + 1 - nu
}

func distanceEstimate(zRe, zIm, mag2 float32, escaped bool) float32 {
	if !escaped || mag2 <= 0 {
		return 0
	}
	mag := math32.Sqrt(mag2)
	return mag * math32.Log(mag) / mag
}
