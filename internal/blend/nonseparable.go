package blend

// Non-separable blend modes (Hue, Saturation, Color, Luminosity) operate
// on the full RGB triple rather than per channel, via the Lum/Sat/
// SetLum/SetSat/ClipColor machinery from the W3C Compositing and
// Blending spec. Optional per the coloring-layer contract.

func lumOf(c [3]float32) float32 {
	return 0.3*c[0] + 0.59*c[1] + 0.11*c[2]
}

func satOf(c [3]float32) float32 {
	return max3(c) - min3(c)
}

func setLum(c [3]float32, l float32) [3]float32 {
	d := l - lumOf(c)
	out := [3]float32{c[0] + d, c[1] + d, c[2] + d}
	return clipColor(out)
}

func clipColor(c [3]float32) [3]float32 {
	l := lumOf(c)
	n := min3(c)
	x := max3(c)

	if n < 0 && l != n {
		for i := range c {
			c[i] = l + (c[i]-l)*l/(l-n)
		}
	}
	if x > 1 && x != l {
		for i := range c {
			c[i] = l + (c[i]-l)*(1-l)/(x-l)
		}
	}
	return c
}

func setSat(c [3]float32, s float32) [3]float32 {
	idx := [3]int{0, 1, 2}
	// sort indices by value ascending
	if c[idx[0]] > c[idx[1]] {
		idx[0], idx[1] = idx[1], idx[0]
	}
	if c[idx[1]] > c[idx[2]] {
		idx[1], idx[2] = idx[2], idx[1]
	}
	if c[idx[0]] > c[idx[1]] {
		idx[0], idx[1] = idx[1], idx[0]
	}
	minI, midI, maxI := idx[0], idx[1], idx[2]

	out := c
	if out[maxI] > out[minI] {
		out[midI] = (out[midI] - out[minI]) * s / (out[maxI] - out[minI])
		out[maxI] = s
	} else {
		out[midI] = 0
		out[maxI] = 0
	}
	out[minI] = 0
	return out
}

func max3(c [3]float32) float32 {
	m := c[0]
	if c[1] > m {
		m = c[1]
	}
	if c[2] > m {
		m = c[2]
	}
	return m
}

func min3(c [3]float32) float32 {
	m := c[0]
	if c[1] < m {
		m = c[1]
	}
	if c[2] < m {
		m = c[2]
	}
	return m
}
