package fractalcolor

import (
	"testing"

	"github.com/gogpu/fractalcolor/internal/algorithms"
	"github.com/gogpu/fractalcolor/internal/histogram"
)

func TestDefaultTransformIsIdentity(t *testing.T) {
	tr := DefaultTransform()
	for _, v := range []float32{0, 0.25, 0.5, 0.9, 1} {
		if got := tr.Apply(v); got != v {
			t.Errorf("DefaultTransform().Apply(%v) = %v, want %v", v, got, v)
		}
	}
}

func TestTransformOffsetAndScale(t *testing.T) {
	tr := DefaultTransform()
	tr.Scale = 2
	tr.Offset = 0.1
	got := tr.Apply(0.3)
	want := float32(0.3*2 + 0.1)
	if got != want {
		t.Errorf("Apply with Scale=2 Offset=0.1 on 0.3 = %v, want %v", got, want)
	}
}

func TestTransformInvert(t *testing.T) {
	tr := DefaultTransform()
	tr.Invert = true
	got := tr.Apply(0.3)
	want := float32(0.7)
	if !nearf(got, want, 1e-6) {
		t.Errorf("Invert: Apply(0.3) = %v, want %v", got, want)
	}
}

func TestTransformIntensityPreservesSign(t *testing.T) {
	tr := DefaultTransform()
	tr.Intensity = 2
	pos := tr.Apply(0.5)
	neg := tr.Apply(-0.5)
	if pos <= 0 {
		t.Errorf("Apply(0.5) with Intensity=2 = %v, want positive", pos)
	}
	if neg >= 0 {
		t.Errorf("Apply(-0.5) with Intensity=2 = %v, want negative (sign preserved)", neg)
	}
}

func TestCloneCopiesParamsIndependently(t *testing.T) {
	layer := CoLoringLayer{
		Name:        "base",
		AlgorithmID: "smooth-iteration",
		Params:      ParamMap{"k": 1.0},
	}
	clone := layer.Clone()
	clone.Params["k"] = 2.0

	if layer.Params["k"] != 1.0 {
		t.Errorf("original layer's params mutated via clone: %v", layer.Params["k"])
	}
	if clone.Params["k"] != 2.0 {
		t.Errorf("clone's params = %v, want 2.0", clone.Params["k"])
	}
}

func TestCloneOfNilParamsStaysNil(t *testing.T) {
	layer := CoLoringLayer{Name: "bare"}
	clone := layer.Clone()
	if clone.Params != nil {
		t.Errorf("Clone() of a layer with nil Params = %v, want nil", clone.Params)
	}
}

func constFn(v float32) algorithms.Func {
	return func(ctx algorithms.PixelContext, params algorithms.ParamMap, hist *histogram.Context) float32 {
		return v
	}
}

func TestEvaluateWithoutGradientUsesGrayscale(t *testing.T) {
	layer := CoLoringLayer{Opacity: 1}
	ctx := algorithms.PixelContext{}
	color, _ := layer.evaluate(ctx, constFn(0.4), nil)
	want := ColorRGB{R: 0.4, G: 0.4, B: 0.4}
	if !colorRGBNear(color, want, 1e-6) {
		t.Errorf("evaluate() without a gradient = %v, want grayscale %v", color, want)
	}
}

func TestEvaluateWithGradientSamplesIt(t *testing.T) {
	grad := NewGradient(SpaceRGB, InterpLinear,
		ColorStop{Position: 0, Color: ColorRGB{R: 0, G: 0, B: 0}},
		ColorStop{Position: 1, Color: ColorRGB{R: 1, G: 1, B: 1}},
	)
	layer := CoLoringLayer{Opacity: 1, Gradient: grad}
	ctx := algorithms.PixelContext{}
	color, _ := layer.evaluate(ctx, constFn(0.5), nil)
	if color.R < 0.1 || color.R > 0.9 {
		t.Errorf("evaluate() with gradient at v=0.5 = %v, want mid-gray-ish", color)
	}
}

func TestEvaluateAppliesMaskAndOpacity(t *testing.T) {
	layer := CoLoringLayer{
		Opacity: 0.5,
		Mask:    func(ctx algorithms.PixelContext) float32 { return 0.4 },
	}
	ctx := algorithms.PixelContext{}
	_, effectiveOpacity := layer.evaluate(ctx, constFn(1), nil)
	want := float32(0.5 * 0.4)
	if !nearf(effectiveOpacity, want, 1e-6) {
		t.Errorf("effectiveOpacity = %v, want Opacity*Mask = %v", effectiveOpacity, want)
	}
}

func TestEvaluateMaskInvert(t *testing.T) {
	layer := CoLoringLayer{
		Opacity:    1,
		Mask:       func(ctx algorithms.PixelContext) float32 { return 0.3 },
		MaskInvert: true,
	}
	ctx := algorithms.PixelContext{}
	_, effectiveOpacity := layer.evaluate(ctx, constFn(1), nil)
	want := float32(0.7)
	if !nearf(effectiveOpacity, want, 1e-6) {
		t.Errorf("effectiveOpacity with MaskInvert = %v, want %v", effectiveOpacity, want)
	}
}

func TestEvaluateWithoutMaskDefaultsToFullWeight(t *testing.T) {
	layer := CoLoringLayer{Opacity: 0.8}
	ctx := algorithms.PixelContext{}
	_, effectiveOpacity := layer.evaluate(ctx, constFn(1), nil)
	if !nearf(effectiveOpacity, 0.8, 1e-6) {
		t.Errorf("effectiveOpacity without a mask = %v, want Opacity 0.8", effectiveOpacity)
	}
}
