package algorithms

import (
	"math"
	"testing"
)

func TestGuardFinite(t *testing.T) {
	tests := []struct {
		name  string
		input float32
		want  float32
	}{
		{"finite passthrough", 0.5, 0.5},
		{"nan becomes zero", float32(math.NaN()), 0},
		{"positive inf becomes zero", float32(math.Inf(1)), 0},
		{"negative inf becomes zero", float32(math.Inf(-1)), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := guardFinite(tt.input); got != tt.want {
				t.Errorf("guardFinite(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestClamp01(t *testing.T) {
	tests := []struct {
		input, want float32
	}{
		{-1, 0}, {0, 0}, {0.5, 0.5}, {1, 1}, {2, 1},
	}
	for _, tt := range tests {
		if got := clamp01(tt.input); got != tt.want {
			t.Errorf("clamp01(%v) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestWrap01StaysInRange(t *testing.T) {
	for _, v := range []float32{-3.75, -1, -0.1, 0, 0.5, 1, 1.5, 10.25} {
		got := wrap01(v)
		if got < 0 || got >= 1 {
			t.Errorf("wrap01(%v) = %v, out of [0,1)", v, got)
		}
	}
}

func TestCycleStaysInRange(t *testing.T) {
	for _, v := range []float32{-1000, -1, 0, 0.5, 1, 256, 1e6} {
		got := cycle(v, 1, 0)
		if got < 0 || got >= 1 {
			t.Errorf("cycle(%v,1,0) = %v, out of [0,1)", v, got)
		}
	}
}

func TestMagnitude(t *testing.T) {
	if got := magnitude(3, 4); math.Abs(float64(got-5)) > 1e-5 {
		t.Errorf("magnitude(3,4) = %v, want 5", got)
	}
	if got := magnitude(0, 0); got != 0 {
		t.Errorf("magnitude(0,0) = %v, want 0", got)
	}
}

func TestMagnitude2(t *testing.T) {
	if got := magnitude2(3, 4); got != 25 {
		t.Errorf("magnitude2(3,4) = %v, want 25", got)
	}
}

func TestAngleOfRange(t *testing.T) {
	for _, p := range [][2]float32{{1, 0}, {0, 1}, {-1, 0}, {0, -1}, {1, 1}, {-1, -1}} {
		got := angleOf(p[0], p[1])
		if got < 0 || got >= 1 {
			t.Errorf("angleOf(%v,%v) = %v, out of [0,1)", p[0], p[1], got)
		}
	}
}

func TestSafeLogGuardsNonPositive(t *testing.T) {
	if math.IsNaN(float64(safeLog(0))) || math.IsInf(float64(safeLog(0)), 0) {
		t.Errorf("safeLog(0) produced a non-finite value: %v", safeLog(0))
	}
	if math.IsNaN(float64(safeLog(-5))) || math.IsInf(float64(safeLog(-5)), 0) {
		t.Errorf("safeLog(-5) produced a non-finite value: %v", safeLog(-5))
	}
}

func TestFinalOrbitPointFallback(t *testing.T) {
	ctx := PixelContext{OrbitX: 1.5, OrbitY: -2.5}
	x, y := finalOrbitPoint(ctx)
	if x != 1.5 || y != -2.5 {
		t.Errorf("finalOrbitPoint fallback = (%v,%v), want (1.5,-2.5)", x, y)
	}

	ctx.HasOrbitHistory = true
	ctx.OrbitHistory = []OrbitStep{{X: 0, Y: 0}, {X: 3, Y: 4}}
	x, y = finalOrbitPoint(ctx)
	if x != 3 || y != 4 {
		t.Errorf("finalOrbitPoint with history = (%v,%v), want (3,4)", x, y)
	}
}

func TestParamMapFloatFallback(t *testing.T) {
	p := ParamMap{"a": float64(2.5), "b": "not a number"}
	if got := p.Float("a", 0); got != 2.5 {
		t.Errorf("Float(a) = %v, want 2.5", got)
	}
	if got := p.Float("b", 9); got != 9 {
		t.Errorf("Float(b) with wrong type = %v, want fallback 9", got)
	}
	if got := p.Float("missing", 7); got != 7 {
		t.Errorf("Float(missing) = %v, want fallback 7", got)
	}
	var nilMap ParamMap
	if got := nilMap.Float("a", 3); got != 3 {
		t.Errorf("nil ParamMap Float = %v, want fallback 3", got)
	}
}
