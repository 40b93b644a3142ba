package color

import (
	"math"
	"testing"
)

func TestOKLabRoundTrip(t *testing.T) {
	const maxError = 2.0 / 255.0 // within ~1 LSB after the cube/cbrt round trip
	colors := [][3]float32{
		{0, 0, 0},
		{1, 1, 1},
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
		{0.5, 0.5, 0.5},
		{0.8, 0.2, 0.6},
	}
	for _, c := range colors {
		L, a, b := RGBToOKLab(c[0], c[1], c[2])
		r, g, bl := OKLabToRGB(L, a, b)
		if diff := absf(r - c[0]); diff > maxError {
			t.Errorf("RGB(%v): R round trip = %v, diff %v exceeds %v", c, r, diff, maxError)
		}
		if diff := absf(g - c[1]); diff > maxError {
			t.Errorf("RGB(%v): G round trip = %v, diff %v exceeds %v", c, g, diff, maxError)
		}
		if diff := absf(bl - c[2]); diff > maxError {
			t.Errorf("RGB(%v): B round trip = %v, diff %v exceeds %v", c, bl, diff, maxError)
		}
	}
}

func TestOKLabBlackIsZeroLightness(t *testing.T) {
	L, _, _ := RGBToOKLab(0, 0, 0)
	if absf(L) > 1e-5 {
		t.Errorf("OKLab lightness of black = %v, want ~0", L)
	}
}

func TestOKLabWhiteIsUnitLightness(t *testing.T) {
	L, _, _ := RGBToOKLab(1, 1, 1)
	if absf(L-1) > 1e-3 {
		t.Errorf("OKLab lightness of white = %v, want ~1", L)
	}
}

func absf(v float32) float32 {
	return float32(math.Abs(float64(v)))
}
