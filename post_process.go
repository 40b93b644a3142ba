package fractalcolor

import "math"

// PostProcess holds the engine-wide brightness/contrast/saturation/gamma
// adjustment applied to the composited RGB before the final clamp and
// u8 write. Grounded in the teacher's internal/filter/colormatrix.go
// brightness/contrast/saturation formulas, reimplemented as direct
// scalar functions instead of its 4x5 color-matrix machinery (which
// targets image.Image compositing, not a bare per-pixel accumulator).
type PostProcess struct {
	Brightness float32 // additive
	Contrast   float32 // default 1: (c-0.5)*k + 0.5
	Saturation float32 // default 1: lerp toward grayscale
	Gamma      float32 // default 1: sign(c)*|c|^gamma
}

// DefaultPostProcess returns the identity post-process step.
func DefaultPostProcess() PostProcess {
	return PostProcess{Brightness: 0, Contrast: 1, Saturation: 1, Gamma: 1}
}

// Apply runs the four steps in order: brightness, contrast, saturation,
// gamma, then a final clamp to [0,1].
func (p PostProcess) Apply(c ColorRGB) ColorRGB {
	c.R += p.Brightness
	c.G += p.Brightness
	c.B += p.Brightness

	c.R = contrast(c.R, p.Contrast)
	c.G = contrast(c.G, p.Contrast)
	c.B = contrast(c.B, p.Contrast)

	c = saturate(c, p.Saturation)

	c.R = gammaPow(c.R, p.Gamma)
	c.G = gammaPow(c.G, p.Gamma)
	c.B = gammaPow(c.B, p.Gamma)

	return c.Clamp()
}

func contrast(c, k float32) float32 {
	return (c-0.5)*k + 0.5
}

func saturate(c ColorRGB, s float32) ColorRGB {
	gray := 0.299*c.R + 0.587*c.G + 0.114*c.B
	return ColorRGB{
		R: lerp(gray, c.R, s),
		G: lerp(gray, c.G, s),
		B: lerp(gray, c.B, s),
	}
}

func gammaPow(c, gamma float32) float32 {
	if gamma == 1 {
		return c
	}
	sign := float32(1)
	v := c
	if v < 0 {
		sign, v = -1, -v
	}
	return sign * float32(math.Pow(float64(v), float64(gamma)))
}
