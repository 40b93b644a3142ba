// Package blend implements the coloring engine's per-channel blend-mode
// functions and the final compositing step.
//
// Ported from the teacher's byte/premultiplied-alpha Porter-Duff
// compositing formulas (advanced.go, hsl.go) to the plain [0,1]^2 -> [0,1]
// float32 formulas the coloring engine needs: only the channel math
// survives, the surrounding premultiplied-alpha "over" composition does
// not apply here because a coloring layer's opacity model is a single
// lerp(base, blend(base,top), effectiveOpacity), not Porter-Duff over.
package blend

// Mode identifies a blend mode by its stable external name.
type Mode string

const (
	Normal      Mode = "normal"
	Add         Mode = "add"
	Subtract    Mode = "subtract"
	Multiply    Mode = "multiply"
	Screen      Mode = "screen"
	Overlay     Mode = "overlay"
	SoftLight   Mode = "soft-light"
	HardLight   Mode = "hard-light"
	ColorDodge  Mode = "color-dodge"
	ColorBurn   Mode = "color-burn"
	Difference  Mode = "difference"
	Exclusion   Mode = "exclusion"
	Lighten     Mode = "lighten"
	Darken      Mode = "darken"
	LinearLight Mode = "linear-light"
	PinLight    Mode = "pin-light"
	VividLight  Mode = "vivid-light"

	Hue        Mode = "hue"
	Saturation Mode = "saturation"
	Color      Mode = "color"
	Luminosity Mode = "luminosity"
)

// separableModes is the set of modes every separable-channel function handles.
var separableModes = map[Mode]func(base, s float32) float32{
	Normal:      func(_, s float32) float32 { return s },
	Add:         add,
	Subtract:    subtract,
	Multiply:    multiply,
	Screen:      screen,
	Overlay:     overlay,
	SoftLight:   softLight,
	HardLight:   hardLight,
	ColorDodge:  colorDodge,
	ColorBurn:   colorBurn,
	Difference:  difference,
	Exclusion:   exclusion,
	Lighten:     lighten,
	Darken:      darken,
	LinearLight: linearLight,
	PinLight:    pinLight,
	VividLight:  vividLight,
}

// IsValid reports whether m is a recognized blend mode.
func IsValid(m Mode) bool {
	if _, ok := separableModes[m]; ok {
		return true
	}
	switch m {
	case Hue, Saturation, Color, Luminosity:
		return true
	}
	return false
}

// Apply blends top over base using mode m, channel by channel for the
// separable modes and via HSL composition for the non-separable ones,
// returning the raw blend result (opacity compositing is the caller's
// job — see Composite).
func Apply(m Mode, base, top [3]float32) [3]float32 {
	if fn, ok := separableModes[m]; ok {
		return [3]float32{
			fn(base[0], top[0]),
			fn(base[1], top[1]),
			fn(base[2], top[2]),
		}
	}
	switch m {
	case Hue:
		return setLum(setSat(top, satOf(base)), lumOf(base))
	case Saturation:
		return setLum(setSat(base, satOf(top)), lumOf(base))
	case Color:
		return setLum(top, lumOf(base))
	case Luminosity:
		return setLum(base, lumOf(top))
	}
	return top
}

// Composite applies the spec's final compositing step:
// out = lerp(base, blendfn(base,top), opacity).
func Composite(m Mode, base, top [3]float32, opacity float32) [3]float32 {
	blended := Apply(m, base, top)
	return [3]float32{
		lerp(base[0], blended[0], opacity),
		lerp(base[1], blended[1], opacity),
		lerp(base[2], blended[2], opacity),
	}
}

func lerp(a, b, t float32) float32 { return a*(1-t) + b*t }

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
