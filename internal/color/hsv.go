package color

import "math"

// RGBToHSV converts an RGB triple (each in [0,1]) to HSV: hue in degrees
// [0,360), saturation and value in [0,1].
func RGBToHSV(r, g, b float32) (h, s, v float32) {
	maxV := max3(r, g, b)
	minV := min3(r, g, b)
	v = maxV
	d := maxV - minV

	if maxV == 0 {
		s = 0
	} else {
		s = d / maxV
	}

	if d == 0 {
		return 0, s, v
	}

	switch maxV {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	h *= 60

	return h, s, v
}

// HSVToRGB converts HSV (hue in degrees, any range; s, v in [0,1]) back
// to an RGB triple in [0,1].
func HSVToRGB(h, s, v float32) (r, g, b float32) {
	h = float32(math.Mod(float64(h), 360))
	if h < 0 {
		h += 360
	}

	c := v * s
	hp := h / 60
	x := c * (1 - float32(math.Abs(math.Mod(float64(hp), 2)-1)))
	m := v - c

	switch {
	case hp < 1:
		r, g, b = c, x, 0
	case hp < 2:
		r, g, b = x, c, 0
	case hp < 3:
		r, g, b = 0, c, x
	case hp < 4:
		r, g, b = 0, x, c
	case hp < 5:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return r + m, g + m, b + m
}
