package fractalcolor

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Preset builds a copy of one of the stable built-in gradients by name.
// Stop lists are fixed test fixtures per the external interface contract;
// parsing goes through go-colorful's Hex, the one pack reference that
// implements fractal pixel coloring and reaches for it the same way.
func Preset(name string) *Gradient {
	def, ok := presetDefs[name]
	if !ok {
		return nil
	}
	stops := make([]ColorStop, len(def.hexStops))
	for i, hs := range def.hexStops {
		stops[i] = ColorStop{Position: hs.pos, Color: mustHex(hs.hex)}
	}
	return NewGradient(SpaceRGB, InterpLinear, stops...)
}

// PresetNames returns the stable names ship with the engine.
func PresetNames() []string {
	names := make([]string, 0, len(presetOrder))
	names = append(names, presetOrder...)
	return names
}

func mustHex(hex string) ColorRGB {
	c, err := colorful.Hex(hex)
	if err != nil {
		panic(fmt.Sprintf("fractalcolor: invalid preset hex literal %q: %v", hex, err))
	}
	return ColorRGB{R: float32(c.R), G: float32(c.G), B: float32(c.B)}
}

type hexStop struct {
	pos float32
	hex string
}

type presetDef struct {
	hexStops []hexStop
}

var presetOrder = []string{
	"rainbow", "fire", "ice", "electric", "grayscale", "psychedelic", "sunset", "ocean",
}

var presetDefs = map[string]presetDef{
	"rainbow": {hexStops: []hexStop{
		{0.0, "#ff0000"}, {1.0 / 6, "#ff8000"}, {2.0 / 6, "#ffff00"},
		{3.0 / 6, "#00ff00"}, {4.0 / 6, "#0000ff"}, {5.0 / 6, "#4b0082"}, {1.0, "#ee82ee"},
	}},
	"fire": {hexStops: []hexStop{
		{0.0, "#000000"}, {0.25, "#7f0000"}, {0.5, "#ff0000"}, {0.75, "#ffbf00"}, {1.0, "#ffffff"},
	}},
	"ice": {hexStops: []hexStop{
		{0.0, "#000033"}, {0.33, "#0066cc"}, {0.66, "#66ccff"}, {1.0, "#ffffff"},
	}},
	"electric": {hexStops: []hexStop{
		{0.0, "#000000"}, {0.3, "#1a0066"}, {0.6, "#6600ff"}, {0.85, "#cc99ff"}, {1.0, "#ffffff"},
	}},
	"grayscale": {hexStops: []hexStop{
		{0.0, "#000000"}, {1.0, "#ffffff"},
	}},
	"psychedelic": {hexStops: []hexStop{
		{0.0, "#ff00ff"}, {0.25, "#00ffff"}, {0.5, "#ffff00"}, {0.75, "#ff0080"}, {1.0, "#ff00ff"},
	}},
	"sunset": {hexStops: []hexStop{
		{0.0, "#0d1b2a"}, {0.35, "#7b2d26"}, {0.65, "#e85d04"}, {0.85, "#ffba08"}, {1.0, "#fff3b0"},
	}},
	"ocean": {hexStops: []hexStop{
		{0.0, "#001219"}, {0.3, "#005f73"}, {0.6, "#0a9396"}, {0.85, "#94d2bd"}, {1.0, "#e9d8a6"},
	}},
}
