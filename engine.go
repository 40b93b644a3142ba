package fractalcolor

import (
	"math"
	"time"

	"github.com/gogpu/fractalcolor/internal/blend"
	"github.com/gogpu/fractalcolor/internal/cache"
	"github.com/gogpu/fractalcolor/internal/histogram"
	"github.com/gogpu/fractalcolor/internal/parallel"
)

// InteriorMode selects how interior pixels (escaped=0) are colored.
type InteriorMode int

const (
	InteriorBlack InteriorMode = iota
	InteriorGradient
	InteriorOrbit
	InteriorDistance
)

// Stats are the engine's cumulative, monotonically-increasing counters.
type Stats struct {
	PixelsColored     uint64
	ColoringTimeNS    uint64
	LayersSkipped     uint64 // required optional field absent
}

// CoLoringEngine orchestrates the layer stack, interior policy,
// post-process step, LUT export and config I/O. Apply's per-pixel
// compositing loop is grounded in the teacher's internal/blend/layer.go
// compositeLayer (blend-func lookup once outside the inner loop, then a
// direct call per pixel), generalized from image-over-image compositing
// to value->gradient->blend->accumulator.
type CoLoringEngine struct {
	layers []CoLoringLayer

	InteriorMode    InteriorMode
	InteriorColor   ColorRGB
	BackgroundColor ColorRGB
	PostProcess     PostProcess

	registry *Registry

	workers       int
	histCacheSize int

	stats Stats
}

// NewEngine constructs an engine bound to registry, applying opts.
func NewEngine(registry *Registry, opts ...EngineOption) *CoLoringEngine {
	e := &CoLoringEngine{
		registry:        registry,
		InteriorMode:    InteriorBlack,
		BackgroundColor: ColorRGB{},
		PostProcess:     DefaultPostProcess(),
		histCacheSize:   8,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// RegisterAlgorithm registers entry on the engine's bound registry.
func (e *CoLoringEngine) RegisterAlgorithm(entry AlgorithmEntry) {
	if e.registry == nil {
		e.registry = NewRegistry()
	}
	e.registry.Register(entry)
	Logger().Info("algorithm registered", "id", entry.ID, "category", string(entry.Category))
}

// UnregisterAlgorithm removes an algorithm from the engine's bound
// registry by id. No-op if the engine has no registry or id is absent.
func (e *CoLoringEngine) UnregisterAlgorithm(id string) {
	if e.registry == nil {
		return
	}
	e.registry.Unregister(id)
	Logger().Info("algorithm unregistered", "id", id)
}

// SetRegistry rebinds the engine to a different registry.
func (e *CoLoringEngine) SetRegistry(r *Registry) {
	e.registry = r
}

// Registry returns the engine's bound registry, or nil if none is set.
func (e *CoLoringEngine) Registry() *Registry {
	return e.registry
}

// AddLayer appends layer to the stack and returns its index.
func (e *CoLoringEngine) AddLayer(layer CoLoringLayer) int {
	e.layers = append(e.layers, layer)
	return len(e.layers) - 1
}

// RemoveLayer removes the layer at i. Silent no-op if i is out of range.
func (e *CoLoringEngine) RemoveLayer(i int) {
	if i < 0 || i >= len(e.layers) {
		return
	}
	e.layers = append(e.layers[:i], e.layers[i+1:]...)
}

// MoveLayer relocates the layer at from to index to. Silent no-op if
// either index is out of range.
func (e *CoLoringEngine) MoveLayer(from, to int) {
	n := len(e.layers)
	if from < 0 || from >= n || to < 0 || to >= n {
		return
	}
	layer := e.layers[from]
	e.layers = append(e.layers[:from], e.layers[from+1:]...)
	e.layers = append(e.layers[:to], append([]CoLoringLayer{layer}, e.layers[to:]...)...)
}

// Layers returns the current layer stack (read-only; callers mutate
// through AddLayer/RemoveLayer/MoveLayer).
func (e *CoLoringEngine) Layers() []CoLoringLayer {
	return e.layers
}

// Stats returns the engine's cumulative statistics.
func (e *CoLoringEngine) Stats() Stats {
	return e.stats
}

type resolvedLayer struct {
	layer  CoLoringLayer
	entry  AlgorithmEntry
	active bool // false if required optional field is absent: layer is skipped
}

type histogramKey struct {
	field *PixelField
	bins  int
}

// Apply runs the coloring pipeline over pixels under config, writing
// RGBA bytes (alpha=255) to out. out must be at least W*H*4 bytes;
// every PixelField array must have length W*H.
func (e *CoLoringEngine) Apply(field *PixelField, config RenderConfig, out []byte) error {
	start := nowForStats()

	n := config.Width * config.Height
	if len(out) < n*4 {
		return ErrBufferTooSmall
	}
	if err := validateFieldLengths(field, n); err != nil {
		return err
	}
	if len(e.layers) > 0 && e.registry == nil {
		return ErrNoRegistry
	}

	resolved, skipped := e.resolveLayers(field)
	e.stats.LayersSkipped += skipped

	histCache := cache.New[histogramKey, *histogram.Context](e.histCacheSize)

	workers := e.workers
	if workers <= 0 {
		workers = 0 // NewWorkerPool treats <=0 as GOMAXPROCS
	}
	pool := parallel.NewWorkerPool(workers)
	defer pool.Close()

	pool.ColorRows(config.Height, func(y int) {
		e.colorRow(field, config, resolved, histCache, out, y)
	})

	e.stats.PixelsColored += uint64(n)
	e.stats.ColoringTimeNS += uint64(nowForStats() - start)
	return nil
}

func validateFieldLengths(field *PixelField, n int) error {
	if len(field.Iterations) != n || len(field.Escaped) != n ||
		len(field.OrbitX) != n || len(field.OrbitY) != n {
		return ErrFieldLengthMismatch
	}
	if field.Distance != nil && len(field.Distance) != n {
		return ErrFieldLengthMismatch
	}
	if field.Potential != nil && len(field.Potential) != n {
		return ErrFieldLengthMismatch
	}
	if field.Angle != nil && len(field.Angle) != n {
		return ErrFieldLengthMismatch
	}
	if field.OrbitHistory != nil && len(field.OrbitHistory) != n {
		return ErrFieldLengthMismatch
	}
	return nil
}

// resolveLayers looks up each enabled layer's algorithm entry once
// before the per-pixel loop, and gates layers whose algorithm requires
// an absent optional field.
func (e *CoLoringEngine) resolveLayers(field *PixelField) (resolved []resolvedLayer, skipped uint64) {
	resolved = make([]resolvedLayer, 0, len(e.layers))
	for _, l := range e.layers {
		if !l.Enabled {
			continue
		}
		entry, ok := e.registry.Get(l.AlgorithmID)
		if !ok {
			continue
		}
		active := true
		if entry.RequiresOrbitHistory && field.OrbitHistory == nil {
			active = false
		}
		if !active {
			skipped++
			Logger().Warn("layer skipped: required field absent",
				"algorithm", l.AlgorithmID, "requires", "orbit_history")
		}
		resolved = append(resolved, resolvedLayer{layer: l, entry: entry, active: active})
	}
	return resolved, skipped
}

func (e *CoLoringEngine) colorRow(field *PixelField, config RenderConfig, resolved []resolvedLayer, histCache *cache.Cache[histogramKey, *histogram.Context], out []byte, y int) {
	for x := 0; x < config.Width; x++ {
		i := y*config.Width + x
		ctx := pixelContext(field, config, i)

		var rgb ColorRGB
		if !ctx.Escaped {
			rgb = e.interiorColor(ctx)
		} else {
			rgb = e.compositePixel(ctx, field, config, resolved, histCache)
		}

		rgb = e.PostProcess.Apply(rgb)
		writeRGBA(out, i, rgb)
	}
}

func (e *CoLoringEngine) compositePixel(ctx PixelContext, field *PixelField, config RenderConfig, resolved []resolvedLayer, histCache *cache.Cache[histogramKey, *histogram.Context]) ColorRGB {
	if len(resolved) == 0 {
		return defaultHueWheel(ctx.Iterations)
	}

	acc := [3]float32{e.BackgroundColor.R, e.BackgroundColor.G, e.BackgroundColor.B}

	for _, rl := range resolved {
		if !rl.active {
			continue
		}
		var hist *histogram.Context
		if rl.entry.RequiresPrecompute {
			hist = e.histogramFor(field, config, rl.layer, histCache)
		}

		color, opacity := rl.layer.evaluate(ctx, rl.entry.ValueFn, hist)
		top := [3]float32{color.R, color.G, color.B}
		acc = blend.Composite(rl.layer.BlendMode, acc, top, opacity)
	}

	return ColorRGB{R: acc[0], G: acc[1], B: acc[2]}
}

func (e *CoLoringEngine) histogramFor(field *PixelField, config RenderConfig, layer CoLoringLayer, histCache *cache.Cache[histogramKey, *histogram.Context]) *histogram.Context {
	bins := int(layer.Params.Float("bins", 256))
	computeLog := layer.Params.Bool("useLog", false)
	key := histogramKey{field: field, bins: bins}

	var computed bool
	start := nowForStats()
	hist := histCache.GetOrCreate(key, func() *histogram.Context {
		computed = true
		return histogram.Precompute(field.Iterations, field.Escaped, histogram.Options{Bins: bins, ComputeLog: computeLog})
	})
	if computed {
		Logger().Debug("histogram pre-pass computed",
			"bins", bins, "pixels", len(field.Iterations), "ns", nowForStats()-start)
	} else {
		Logger().Debug("histogram pre-pass cache hit", "bins", bins)
	}
	return hist
}

func (e *CoLoringEngine) interiorColor(ctx PixelContext) ColorRGB {
	if len(e.layers) == 0 || e.layers[0].Gradient == nil {
		return e.InteriorColor
	}
	g := e.layers[0].Gradient
	switch e.InteriorMode {
	case InteriorGradient:
		return g.Sample(1 - float32(math.Exp(-math.Hypot(float64(ctx.OrbitX), float64(ctx.OrbitY)))))
	case InteriorOrbit:
		t := float32(math.Atan2(float64(ctx.OrbitY), float64(ctx.OrbitX)))/(2*math.Pi) + 0.5
		return g.Sample(t)
	case InteriorDistance:
		d := ctx.Distance
		return g.Sample(float32(math.Log(float64(d)+1)) / 10)
	default:
		return ColorRGB{}
	}
}

// GenerateLUT samples the full layer stack + post-process at n evenly
// spaced synthetic contexts, per the engine's downstream-shader LUT
// contract: escaped=true, iterations=t*1000, orbit=(cos2*pi*t,
// sin2*pi*t), distance=t, angle=2*pi*t.
func (e *CoLoringEngine) GenerateLUT(size int) []byte {
	out := make([]byte, 4*size)
	if size == 0 {
		return out
	}

	resolved, _ := e.resolveLayers(&PixelField{OrbitHistory: syntheticHistoryPlaceholder(e.layers)})
	histCache := cache.New[histogramKey, *histogram.Context](e.histCacheSize)

	for i := 0; i < size; i++ {
		t := float32(i) / float32(max(size-1, 1))
		ctx := PixelContext{
			Escaped:         true,
			Iterations:      t * 1000,
			OrbitX:          float32(math.Cos(2 * math.Pi * float64(t))),
			OrbitY:          float32(math.Sin(2 * math.Pi * float64(t))),
			HasDistance:     true,
			Distance:        t,
			HasAngle:        true,
			Angle:           2 * math.Pi * t,
			HasOrbitHistory: len(e.layers) > 0,
		}

		rgb := e.compositePixel(ctx, &PixelField{}, RenderConfig{}, resolved, histCache)
		rgb = e.PostProcess.Apply(rgb)
		writeRGBA(out, i, rgb)
	}
	return out
}

// syntheticHistoryPlaceholder signals requires_orbit_history layers as
// satisfiable for LUT generation, since GenerateLUT's synthetic context
// always carries an orbit point.
func syntheticHistoryPlaceholder(layers []CoLoringLayer) [][]OrbitStep {
	if len(layers) == 0 {
		return nil
	}
	return [][]OrbitStep{{}}
}

func writeRGBA(out []byte, i int, c ColorRGB) {
	out[4*i+0] = toByte(c.R)
	out[4*i+1] = toByte(c.G)
	out[4*i+2] = toByte(c.B)
	out[4*i+3] = 255
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// nowForStats is a thin seam over time.Now().UnixNano so Stats.ColoringTimeNS
// accumulates monotonically without importing time in every call site.
func nowForStats() int64 {
	return time.Now().UnixNano()
}
