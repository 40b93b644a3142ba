package fractalcolor

import (
	"testing"
)

func smallField(width, height int) *PixelField {
	n := width * height
	field := &PixelField{
		Width: width, Height: height,
		Iterations: make([]float32, n),
		Escaped:    make([]uint8, n),
		OrbitX:     make([]float32, n),
		OrbitY:     make([]float32, n),
	}
	for i := 0; i < n; i++ {
		field.Iterations[i] = float32(i % 100)
		if i%4 != 0 {
			field.Escaped[i] = 1
		}
		field.OrbitX[i] = float32(i%7) - 3
		field.OrbitY[i] = float32(i%5) - 2
	}
	return field
}

func TestApplyProducesValidRGBABuffer(t *testing.T) {
	width, height := 16, 12
	field := smallField(width, height)
	config := RenderConfig{Width: width, Height: height, MaxIterations: 100, EscapeRadius: 2}

	engine := NewEngine(DefaultRegistry())
	engine.AddLayer(CoLoringLayer{
		Name: "layer0", AlgorithmID: "smooth-iteration", Enabled: true,
		Opacity: 1, BlendMode: BlendNormal, Transform: DefaultTransform(),
		Gradient: Preset("fire"),
	})

	out := make([]byte, width*height*4)
	if err := engine.Apply(field, config, out); err != nil {
		t.Fatalf("Apply returned an error: %v", err)
	}

	for i := 0; i < width*height; i++ {
		if out[4*i+3] != 255 {
			t.Fatalf("pixel %d: alpha = %d, want 255", i, out[4*i+3])
		}
	}
}

func TestApplyRejectsUndersizedBuffer(t *testing.T) {
	width, height := 4, 4
	field := smallField(width, height)
	config := RenderConfig{Width: width, Height: height, MaxIterations: 50}

	engine := NewEngine(DefaultRegistry())
	out := make([]byte, width*height*4-1)
	if err := engine.Apply(field, config, out); err != ErrBufferTooSmall {
		t.Fatalf("Apply with undersized buffer = %v, want ErrBufferTooSmall", err)
	}
}

func TestApplyRejectsMismatchedFieldLength(t *testing.T) {
	width, height := 4, 4
	field := smallField(width, height)
	field.OrbitX = field.OrbitX[:len(field.OrbitX)-1]
	config := RenderConfig{Width: width, Height: height, MaxIterations: 50}

	engine := NewEngine(DefaultRegistry())
	out := make([]byte, width*height*4)
	if err := engine.Apply(field, config, out); err != ErrFieldLengthMismatch {
		t.Fatalf("Apply with mismatched field length = %v, want ErrFieldLengthMismatch", err)
	}
}

func TestApplyWithLayersButNoRegistryFails(t *testing.T) {
	width, height := 4, 4
	field := smallField(width, height)
	config := RenderConfig{Width: width, Height: height, MaxIterations: 50}

	engine := NewEngine(nil)
	engine.AddLayer(CoLoringLayer{Name: "l", AlgorithmID: "smooth-iteration", Enabled: true, Opacity: 1})

	out := make([]byte, width*height*4)
	if err := engine.Apply(field, config, out); err != ErrNoRegistry {
		t.Fatalf("Apply with layers and no registry = %v, want ErrNoRegistry", err)
	}
}

func TestApplyWithNoLayersUsesHueWheelForEscapedPixels(t *testing.T) {
	width, height := 4, 4
	field := smallField(width, height)
	config := RenderConfig{Width: width, Height: height, MaxIterations: 50}

	engine := NewEngine(DefaultRegistry())
	engine.InteriorMode = InteriorBlack

	out := make([]byte, width*height*4)
	if err := engine.Apply(field, config, out); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	// With no layers, escaped pixels fall back to defaultHueWheel, which
	// is never pure black for iterations > 0; interior pixels (escaped=0,
	// InteriorBlack) stay zero. Every pixel's RGB must match that, after
	// the post-process step, and alpha must be set.
	for i := 0; i < width*height; i++ {
		if out[4*i+3] != 255 {
			t.Fatalf("pixel %d alpha = %d, want 255", i, out[4*i+3])
		}
		want := ColorRGB{}
		if field.Escaped[i] != 0 {
			want = engine.PostProcess.Apply(defaultHueWheel(field.Iterations[i]))
		}
		got := [3]byte{out[4*i], out[4*i+1], out[4*i+2]}
		if exp := [3]byte{toByte(want.R), toByte(want.G), toByte(want.B)}; got != exp {
			t.Errorf("pixel %d RGB = %v, want %v", i, got, exp)
		}
	}
}

func TestApplyIsDeterministic(t *testing.T) {
	width, height := 20, 15
	field := smallField(width, height)
	config := RenderConfig{Width: width, Height: height, MaxIterations: 100, EscapeRadius: 2}

	run := func() []byte {
		engine := NewEngine(DefaultRegistry())
		engine.AddLayer(CoLoringLayer{
			Name: "layer0", AlgorithmID: "stripe-average", Enabled: true,
			Opacity: 1, BlendMode: BlendNormal, Transform: DefaultTransform(),
			Gradient: Preset("ocean"),
		})
		out := make([]byte, width*height*4)
		if err := engine.Apply(field, config, out); err != nil {
			t.Fatalf("Apply: %v", err)
		}
		return out
	}

	a := run()
	b := run()
	if len(a) != len(b) {
		t.Fatalf("length mismatch: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("byte %d differs between identical runs: %d vs %d", i, a[i], b[i])
		}
	}
}

func TestApplyRequiresOrbitHistoryLayerIsSkippedWhenAbsent(t *testing.T) {
	width, height := 4, 4
	field := smallField(width, height) // no OrbitHistory
	config := RenderConfig{Width: width, Height: height, MaxIterations: 50}

	engine := NewEngine(DefaultRegistry())
	engine.AddLayer(CoLoringLayer{
		Name: "needs-history", AlgorithmID: "stripe-average", Enabled: true,
		Opacity: 1, BlendMode: BlendNormal, Gradient: Preset("fire"),
	})

	out := make([]byte, width*height*4)
	if err := engine.Apply(field, config, out); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if engine.Stats().LayersSkipped == 0 {
		t.Error("expected LayersSkipped > 0 when a requires_orbit_history layer has no history")
	}
}

func TestAddRemoveMoveLayer(t *testing.T) {
	engine := NewEngine(DefaultRegistry())
	engine.AddLayer(CoLoringLayer{Name: "a"})
	engine.AddLayer(CoLoringLayer{Name: "b"})
	engine.AddLayer(CoLoringLayer{Name: "c"})

	engine.MoveLayer(0, 2)
	names := []string{}
	for _, l := range engine.Layers() {
		names = append(names, l.Name)
	}
	if names[0] != "b" || names[1] != "c" || names[2] != "a" {
		t.Errorf("after MoveLayer(0,2), order = %v, want [b c a]", names)
	}

	engine.RemoveLayer(1)
	if len(engine.Layers()) != 2 {
		t.Fatalf("after RemoveLayer, have %d layers, want 2", len(engine.Layers()))
	}

	// Out-of-range operations are silent no-ops.
	engine.RemoveLayer(99)
	engine.MoveLayer(-1, 0)
	if len(engine.Layers()) != 2 {
		t.Fatalf("out-of-range RemoveLayer/MoveLayer mutated the stack: %v", engine.Layers())
	}
}

func TestInteriorBlackIsZero(t *testing.T) {
	width, height := 2, 2
	field := &PixelField{
		Width: width, Height: height,
		Iterations: make([]float32, 4),
		Escaped:    make([]uint8, 4), // all interior
		OrbitX:     make([]float32, 4),
		OrbitY:     make([]float32, 4),
	}
	config := RenderConfig{Width: width, Height: height, MaxIterations: 50}

	engine := NewEngine(DefaultRegistry())
	engine.InteriorMode = InteriorBlack
	engine.InteriorColor = ColorRGB{}

	out := make([]byte, width*height*4)
	if err := engine.Apply(field, config, out); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	for i := 0; i < width*height; i++ {
		if out[4*i+0] != 0 || out[4*i+1] != 0 || out[4*i+2] != 0 {
			t.Errorf("interior pixel %d = %v, want black", i, out[4*i:4*i+3])
		}
	}
}

func TestGenerateLUTSizeAndAlpha(t *testing.T) {
	engine := NewEngine(DefaultRegistry())
	engine.AddLayer(CoLoringLayer{
		Name: "l", AlgorithmID: "smooth-iteration", Enabled: true,
		Opacity: 1, BlendMode: BlendNormal, Gradient: Preset("fire"),
	})
	lut := engine.GenerateLUT(32)
	if len(lut) != 32*4 {
		t.Fatalf("GenerateLUT(32) length = %d, want 128", len(lut))
	}
	for i := 0; i < 32; i++ {
		if lut[4*i+3] != 255 {
			t.Errorf("LUT entry %d alpha = %d, want 255", i, lut[4*i+3])
		}
	}
}
