package fractalcolor

import "testing"

func TestHexParsesSixDigitForm(t *testing.T) {
	got := Hex("#FF8800")
	want := ColorRGB{R: 1, G: float32(0x88) / 255, B: 0}
	if !colorRGBNear(got, want, 1e-5) {
		t.Errorf("Hex(#FF8800) = %v, want %v", got, want)
	}
}

func TestHexParsesThreeDigitShorthand(t *testing.T) {
	got := Hex("#F80")
	want := Hex("#FF8800")
	if !colorRGBNear(got, want, 1e-5) {
		t.Errorf("Hex(#F80) = %v, want shorthand-expanded %v", got, want)
	}
}

func TestHexWithoutLeadingHash(t *testing.T) {
	got := Hex("00FF00")
	want := ColorRGB{R: 0, G: 1, B: 0}
	if !colorRGBNear(got, want, 1e-5) {
		t.Errorf("Hex(00FF00) = %v, want %v", got, want)
	}
}

func TestHexInvalidLengthReturnsZeroColor(t *testing.T) {
	got := Hex("#ABCD")
	if got != (ColorRGB{}) {
		t.Errorf("Hex with invalid length = %v, want zero color", got)
	}
}

func TestClampRestrictsToUnitRange(t *testing.T) {
	got := ColorRGB{R: -1, G: 0.5, B: 2}.Clamp()
	want := ColorRGB{R: 0, G: 0.5, B: 1}
	if got != want {
		t.Errorf("Clamp() = %v, want %v", got, want)
	}
}

func TestLerpEndpoints(t *testing.T) {
	a := ColorRGB{R: 0, G: 0, B: 0}
	b := ColorRGB{R: 1, G: 1, B: 1}
	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Lerp(t=0) = %v, want a %v", got, a)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("Lerp(t=1) = %v, want b %v", got, b)
	}
}

func TestDefaultHueWheelWrapsModulo360(t *testing.T) {
	a := defaultHueWheel(0)
	b := defaultHueWheel(360.0 / 3.5)
	if !colorRGBNear(a, b, 1e-4) {
		t.Errorf("defaultHueWheel should be periodic with period 360/3.5, got %v vs %v", a, b)
	}
}

func TestDefaultHueWheelNegativeIterationsStaysInGamut(t *testing.T) {
	got := defaultHueWheel(-17)
	c := got.Clamp()
	if !colorRGBNear(got, c, 1e-5) {
		t.Errorf("defaultHueWheel(-17) = %v, out of [0,1] gamut", got)
	}
}
