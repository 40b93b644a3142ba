package fractalcolor

// EngineOption configures a CoLoringEngine during creation. Ported from
// the teacher's ContextOption functional-options pattern (options.go),
// generalized from renderer/pixmap injection to engine configuration.
//
// Example:
//
//	engine := fractalcolor.NewEngine(registry, fractalcolor.WithWorkers(4))
type EngineOption func(*CoLoringEngine)

// WithWorkers overrides the number of row-chunked workers Apply uses.
// 0 or negative means runtime.GOMAXPROCS(0) (the default).
func WithWorkers(n int) EngineOption {
	return func(e *CoLoringEngine) {
		e.workers = n
	}
}

// WithInteriorMode sets the interior-pixel coloring policy.
func WithInteriorMode(mode InteriorMode) EngineOption {
	return func(e *CoLoringEngine) {
		e.InteriorMode = mode
	}
}

// WithInteriorColor sets the fallback interior color used when no layer
// exists to sample a gradient from.
func WithInteriorColor(c ColorRGB) EngineOption {
	return func(e *CoLoringEngine) {
		e.InteriorColor = c
	}
}

// WithBackgroundColor sets the accumulator's starting color for escaped pixels.
func WithBackgroundColor(c ColorRGB) EngineOption {
	return func(e *CoLoringEngine) {
		e.BackgroundColor = c
	}
}

// WithPostProcess sets the engine-wide post-process step.
func WithPostProcess(p PostProcess) EngineOption {
	return func(e *CoLoringEngine) {
		e.PostProcess = p
	}
}

// WithHistogramCacheSize overrides the soft limit of the per-apply
// histogram context cache (default 8).
func WithHistogramCacheSize(n int) EngineOption {
	return func(e *CoLoringEngine) {
		e.histCacheSize = n
	}
}
