// Package fractalcolor provides a fractal escape-time coloring engine.
//
// # Overview
//
// fractalcolor is a Pure Go per-pixel coloring pipeline for fractal
// renderers. It does not compute fractals itself: it consumes the raw
// per-pixel output of an escape-time renderer (iteration counts, final
// orbit components, optional distance/orbit-history data) and turns it
// into a final RGB image through a registry of coloring algorithms, a
// layered compositor with gradients and blend modes, and an optional
// histogram equalization pre-pass.
//
// # Quick Start
//
//	import "github.com/gogpu/fractalcolor"
//
//	engine := fractalcolor.NewEngine(fractalcolor.DefaultRegistry())
//	engine.AddLayer(fractalcolor.CoLoringLayer{
//		Name:        "iterations",
//		AlgorithmID: "smooth-iteration",
//		Enabled:     true,
//		Opacity:     1,
//		BlendMode:   fractalcolor.BlendNormal,
//		Gradient:    fractalcolor.Preset("fire"),
//	})
//
//	out := make([]byte, field.Width*field.Height*4)
//	if err := engine.Apply(field, config, out); err != nil {
//		// handle error
//	}
//
// # Architecture
//
// The package is organized into:
//   - Public API: PixelField, CoLoringLayer, CoLoringEngine, Gradient
//   - Internal: color (color-space math), blend (blend-mode functions),
//     registry (algorithm catalog), algorithms (value functions),
//     histogram (equalization pre-pass), cache (generic LRU),
//     parallel (row-chunked worker pool)
//
// # Coordinate system
//
// All pixel buffers are row-major, origin top-left, length W·H.
//
// # Concurrency
//
// Apply is embarrassingly parallel: every pixel reads only immutable
// inputs and writes a unique output slot. The engine splits work across
// a row-chunked worker pool sized to runtime.GOMAXPROCS by default.
package fractalcolor
