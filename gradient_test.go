package fractalcolor

import (
	"math"
	"testing"
)

func twoStopGradient() *Gradient {
	return NewGradient(SpaceRGB, InterpLinear,
		ColorStop{Position: 0, Color: ColorRGB{R: 0, G: 0, B: 0}},
		ColorStop{Position: 0.5, Color: ColorRGB{R: 1, G: 1, B: 1}},
	)
}

func TestGradientSampleIsCyclic(t *testing.T) {
	g := twoStopGradient()
	for _, t0 := range []float32{0, 0.1, 0.37, 0.9, 0.999} {
		a := g.Sample(t0)
		b := g.Sample(t0 + 1)
		if !colorNear(a, b, 1e-4) {
			t.Errorf("Sample(%v) = %v, Sample(%v+1) = %v, want equal (cyclic)", t0, a, t0, b)
		}
	}
}

func TestGradientSampleNegativeWrapsCorrectly(t *testing.T) {
	g := twoStopGradient()
	a := g.Sample(0.25)
	b := g.Sample(-0.75)
	if !colorNear(a, b, 1e-4) {
		t.Errorf("Sample(0.25) = %v, Sample(-0.75) = %v, want equal", a, b)
	}
}

func TestGradientSingleStopIsConstant(t *testing.T) {
	g := NewGradient(SpaceRGB, InterpLinear, ColorStop{Position: 0.5, Color: ColorRGB{R: 0.2, G: 0.4, B: 0.6}})
	for _, t0 := range []float32{0, 0.3, 0.7, 1.5} {
		c := g.Sample(t0)
		if c.R != 0.2 || c.G != 0.4 || c.B != 0.6 {
			t.Errorf("Sample(%v) on a one-stop gradient = %v, want the constant stop color", t0, c)
		}
	}
}

func TestGradientEmptyStopsReturnsZeroColor(t *testing.T) {
	g := &Gradient{ColorSpace: SpaceRGB, Interpolation: InterpLinear}
	c := g.Sample(0.5)
	if c != (ColorRGB{}) {
		t.Errorf("Sample on an empty gradient = %v, want zero color", c)
	}
}

func TestNewGradientSortsStopsByPosition(t *testing.T) {
	g := NewGradient(SpaceRGB, InterpLinear,
		ColorStop{Position: 0.8, Color: ColorRGB{R: 1}},
		ColorStop{Position: 0.1, Color: ColorRGB{G: 1}},
		ColorStop{Position: 0.5, Color: ColorRGB{B: 1}},
	)
	for i := 1; i < len(g.Stops); i++ {
		if g.Stops[i-1].Position > g.Stops[i].Position {
			t.Fatalf("stops not sorted: %v", g.Stops)
		}
	}
}

func TestGradientStepInterpolationIsDiscrete(t *testing.T) {
	g := NewGradient(SpaceRGB, InterpStep,
		ColorStop{Position: 0, Color: ColorRGB{R: 0}},
		ColorStop{Position: 1, Color: ColorRGB{R: 1}},
	)
	if c := g.Sample(0.1); c.R != 0 {
		t.Errorf("Sample(0.1) with step interpolation = %v, want R=0", c)
	}
	if c := g.Sample(0.9); c.R != 1 {
		t.Errorf("Sample(0.9) with step interpolation = %v, want R=1", c)
	}
}

func TestGradientOKLabInterpolationStaysInGamut(t *testing.T) {
	g := NewGradient(SpaceOKLab, InterpLinear,
		ColorStop{Position: 0, Color: ColorRGB{R: 1, G: 0, B: 0}},
		ColorStop{Position: 1, Color: ColorRGB{R: 0, G: 0, B: 1}},
	)
	for _, t0 := range []float32{0, 0.25, 0.5, 0.75, 1} {
		c := g.Sample(t0)
		if c.R < 0 || c.R > 1 || c.G < 0 || c.G > 1 || c.B < 0 || c.B > 1 {
			t.Errorf("Sample(%v) in OKLab space = %v, out of [0,1] gamut", t0, c)
		}
	}
}

func TestGenerateLUTExactSize(t *testing.T) {
	g := twoStopGradient()
	for _, n := range []int{0, 1, 2, 16, 256} {
		lut := g.GenerateLUT(n)
		if len(lut) != 4*n {
			t.Errorf("GenerateLUT(%d) has length %d, want %d", n, len(lut), 4*n)
		}
	}
}

func TestGenerateLUTAlphaIsAlwaysOpaque(t *testing.T) {
	g := twoStopGradient()
	lut := g.GenerateLUT(64)
	for i := 0; i < 64; i++ {
		if lut[4*i+3] != 255 {
			t.Errorf("LUT entry %d alpha = %d, want 255", i, lut[4*i+3])
		}
	}
}

func TestGenerateLUTEndpointsMatchSample(t *testing.T) {
	g := twoStopGradient()
	lut := g.GenerateLUT(4)
	first := g.Sample(0).Clamp()
	if lut[0] != toByte(first.R) || lut[1] != toByte(first.G) || lut[2] != toByte(first.B) {
		t.Errorf("LUT[0] = %v, want byte-packed %v", lut[:4], first)
	}
}

func colorNear(a, b ColorRGB, eps float32) bool {
	return nearf(a.R, b.R, eps) && nearf(a.G, b.G, eps) && nearf(a.B, b.B, eps)
}

func nearf(a, b, eps float32) bool {
	return math.Abs(float64(a-b)) <= float64(eps)
}
