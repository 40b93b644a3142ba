package fractalcolor

import (
	"context"
	"log/slog"
	"sync"
	"testing"

	"github.com/gogpu/fractalcolor/internal/histogram"
)

// recordingHandler captures every record it receives, for asserting
// which log points the engine actually fires.
type recordingHandler struct {
	mu      sync.Mutex
	records []slog.Record
}

func (h *recordingHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *recordingHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = append(h.records, r)
	return nil
}

func (h *recordingHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *recordingHandler) WithGroup(string) slog.Handler     { return h }

func (h *recordingHandler) messages() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, len(h.records))
	for i, r := range h.records {
		out[i] = r.Message
	}
	return out
}

func TestDefaultLoggerIsSilent(t *testing.T) {
	if Logger() == nil {
		t.Fatal("Logger() returned nil before SetLogger was ever called")
	}
}

func TestSetLoggerNilRestoresNopLogger(t *testing.T) {
	h := &recordingHandler{}
	SetLogger(slog.New(h))
	defer SetLogger(nil)

	SetLogger(nil)
	Logger().Info("should be discarded")
	if len(h.messages()) != 0 {
		t.Errorf("expected no records reaching the replaced handler, got %v", h.messages())
	}
}

func TestRegisterAlgorithmLogsInfo(t *testing.T) {
	h := &recordingHandler{}
	SetLogger(slog.New(h))
	defer SetLogger(nil)

	engine := NewEngine(NewRegistry())
	engine.RegisterAlgorithm(AlgorithmEntry{ID: "test-algo", Category: CategorySmooth})

	found := false
	for _, m := range h.messages() {
		if m == "algorithm registered" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected an \"algorithm registered\" record, got %v", h.messages())
	}
}

func TestUnregisterAlgorithmLogsInfo(t *testing.T) {
	h := &recordingHandler{}
	SetLogger(slog.New(h))
	defer SetLogger(nil)

	engine := NewEngine(NewRegistry())
	engine.RegisterAlgorithm(AlgorithmEntry{ID: "test-algo", Category: CategorySmooth})
	engine.UnregisterAlgorithm("test-algo")

	found := false
	for _, m := range h.messages() {
		if m == "algorithm unregistered" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected an \"algorithm unregistered\" record, got %v", h.messages())
	}
	if engine.Registry().Has("test-algo") {
		t.Error("test-algo should have been removed from the registry")
	}
}

func TestApplyWarnsWhenLayerSkippedForMissingOrbitHistory(t *testing.T) {
	h := &recordingHandler{}
	SetLogger(slog.New(h))
	defer SetLogger(nil)

	registry := NewRegistry()
	registry.Register(AlgorithmEntry{
		ID:                   "needs-history",
		Category:             CategoryHybrid,
		ValueFn:               func(ctx PixelContext, _ ParamMap, _ *histogram.Context) float32 { return 0 },
		RequiresOrbitHistory: true,
	})

	engine := NewEngine(registry)
	engine.AddLayer(CoLoringLayer{
		Name: "layer0", AlgorithmID: "needs-history", Enabled: true,
		Opacity: 1, BlendMode: BlendNormal, Transform: DefaultTransform(),
		Gradient: Preset("fire"),
	})

	width, height := 4, 4
	field := smallField(width, height)
	// OrbitHistory left nil: the layer requires it and must be skipped.
	config := RenderConfig{Width: width, Height: height, MaxIterations: 100, EscapeRadius: 2}
	out := make([]byte, width*height*4)
	if err := engine.Apply(field, config, out); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	found := false
	for _, m := range h.messages() {
		if m == "layer skipped: required field absent" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a layer-skip warning, got %v", h.messages())
	}
	if engine.Stats().LayersSkipped == 0 {
		t.Error("expected LayersSkipped to be incremented")
	}
}

func TestApplyLogsHistogramPrePass(t *testing.T) {
	h := &recordingHandler{}
	SetLogger(slog.New(h))
	defer SetLogger(nil)

	width, height := 8, 8
	field := smallField(width, height)
	config := RenderConfig{Width: width, Height: height, MaxIterations: 100, EscapeRadius: 2}

	engine := NewEngine(DefaultRegistry())
	engine.AddLayer(CoLoringLayer{
		Name: "layer0", AlgorithmID: "histogram-equalization", Enabled: true,
		Opacity: 1, BlendMode: BlendNormal, Transform: DefaultTransform(),
		Gradient: Preset("fire"),
	})

	out := make([]byte, width*height*4)
	if err := engine.Apply(field, config, out); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	found := false
	for _, m := range h.messages() {
		if m == "histogram pre-pass computed" || m == "histogram pre-pass cache hit" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a histogram pre-pass record, got %v", h.messages())
	}
}
