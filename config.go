package fractalcolor

import "encoding/json"

// ConfigValue is the JSON-shaped configuration schema from the external
// interface contract. encoding/json is the idiomatic fit here: no
// third-party serialization library in the corpus specializes in a
// schema this small and dynamically typed.
type ConfigValue struct {
	Layers          []LayerConfig      `json:"layers"`
	InteriorMode    string             `json:"interiorMode"`
	InteriorColor   ColorConfig        `json:"interiorColor"`
	PostProcess     PostProcessConfig  `json:"postProcess"`
}

type LayerConfig struct {
	Name      string             `json:"name"`
	Algorithm string             `json:"algorithm"`
	Enabled   bool               `json:"enabled"`
	Opacity   float32            `json:"opacity"`
	BlendMode string             `json:"blendMode"`
	Params    map[string]any     `json:"params"`
	Transform TransformConfig    `json:"transform"`
	Gradient  GradientConfig     `json:"gradient"`
}

// TransformConfig uses pointer fields for Intensity/Scale/Gamma so the
// decoder can distinguish "absent from JSON" (nil, takes the 1.0
// default) from "present and explicitly 0" (a legal transform value via
// Transform.Apply's signedPow) — a plain zero-value float32 can't make
// that distinction, which otherwise breaks the import(export(x))≡x
// round-trip for any layer whose transform legitimately zeroes one of
// these fields.
type TransformConfig struct {
	Intensity *float32 `json:"intensity,omitempty"`
	Offset    float32  `json:"offset"`
	Scale     *float32 `json:"scale,omitempty"`
	Invert    bool     `json:"invert"`
	Gamma     *float32 `json:"gamma,omitempty"`
}

type GradientConfig struct {
	Stops         []StopConfig `json:"stops"`
	ColorSpace    string       `json:"colorSpace"`
	Interpolation string       `json:"interpolation"`
}

type StopConfig struct {
	Position float32     `json:"position"`
	Color    ColorConfig `json:"color"`
}

type ColorConfig struct {
	R float32 `json:"r"`
	G float32 `json:"g"`
	B float32 `json:"b"`
}

type PostProcessConfig struct {
	Brightness float32 `json:"brightness"`
	Contrast   float32 `json:"contrast"`
	Saturation float32 `json:"saturation"`
	Gamma      float32 `json:"gamma"`
}

// ExportConfig snapshots the engine's current layer stack, interior
// policy and post-process settings as a ConfigValue.
func (e *CoLoringEngine) ExportConfig() ConfigValue {
	cfg := ConfigValue{
		Layers:        make([]LayerConfig, len(e.layers)),
		InteriorMode:  interiorModeToString(e.InteriorMode),
		InteriorColor: colorToConfig(e.InteriorColor),
		PostProcess: PostProcessConfig{
			Brightness: e.PostProcess.Brightness,
			Contrast:   e.PostProcess.Contrast,
			Saturation: e.PostProcess.Saturation,
			Gamma:      e.PostProcess.Gamma,
		},
	}
	for i, l := range e.layers {
		cfg.Layers[i] = layerToConfig(l)
	}
	return cfg
}

// ImportConfig replaces the engine's layer stack, interior policy and
// post-process settings from cfg. Unknown fields are ignored by
// encoding/json already. Missing fields take their zero value, except a
// layer transform's Intensity, Scale and Gamma, which default to 1, and a
// gradient's color space and interpolation, which default to rgb and
// linear; a layer with no gradient stops gets no gradient.
// ImportConfig(ExportConfig()) restores every layer field except Mask and
// MaskInvert, which LayerConfig does not carry: imported layers have no
// mask. BackgroundColor is not part of ConfigValue and is left unchanged.
func (e *CoLoringEngine) ImportConfig(cfg ConfigValue) {
	e.layers = make([]CoLoringLayer, len(cfg.Layers))
	for i, lc := range cfg.Layers {
		e.layers[i] = layerFromConfig(lc)
	}
	e.InteriorMode = interiorModeFromString(cfg.InteriorMode)
	e.InteriorColor = colorFromConfig(cfg.InteriorColor)
	e.PostProcess = PostProcess{
		Brightness: cfg.PostProcess.Brightness,
		Contrast:   cfg.PostProcess.Contrast,
		Saturation: cfg.PostProcess.Saturation,
		Gamma:      cfg.PostProcess.Gamma,
	}
}

// ExportConfigJSON and ImportConfigJSON are JSON convenience wrappers
// around ExportConfig and ImportConfig.

func (e *CoLoringEngine) ExportConfigJSON() ([]byte, error) {
	return json.Marshal(e.ExportConfig())
}

func (e *CoLoringEngine) ImportConfigJSON(data []byte) error {
	var cfg ConfigValue
	if err := json.Unmarshal(data, &cfg); err != nil {
		return err
	}
	e.ImportConfig(cfg)
	return nil
}

func layerToConfig(l CoLoringLayer) LayerConfig {
	lc := LayerConfig{
		Name:      l.Name,
		Algorithm: l.AlgorithmID,
		Enabled:   l.Enabled,
		Opacity:   l.Opacity,
		BlendMode: string(l.BlendMode),
		Params:    map[string]any(l.Params),
		Transform: TransformConfig{
			Intensity: &l.Transform.Intensity,
			Offset:    l.Transform.Offset,
			Scale:     &l.Transform.Scale,
			Invert:    l.Transform.Invert,
			Gamma:     &l.Transform.Gamma,
		},
	}
	if l.Gradient != nil {
		lc.Gradient = gradientToConfig(l.Gradient)
	}
	return lc
}

func layerFromConfig(lc LayerConfig) CoLoringLayer {
	l := CoLoringLayer{
		Name:        lc.Name,
		AlgorithmID: lc.Algorithm,
		Enabled:     lc.Enabled,
		Opacity:     lc.Opacity,
		BlendMode:   BlendMode(lc.BlendMode),
		Params:      ParamMap(lc.Params),
		Transform: Transform{
			Intensity: derefOr(lc.Transform.Intensity, 1),
			Offset:    lc.Transform.Offset,
			Scale:     derefOr(lc.Transform.Scale, 1),
			Invert:    lc.Transform.Invert,
			Gamma:     derefOr(lc.Transform.Gamma, 1),
		},
	}
	if len(lc.Gradient.Stops) > 0 {
		l.Gradient = gradientFromConfig(lc.Gradient)
	}
	return l
}

// derefOr returns *p when present, else def. Used to distinguish a field
// absent from imported JSON from one explicitly set to 0.
func derefOr(p *float32, def float32) float32 {
	if p == nil {
		return def
	}
	return *p
}

func gradientToConfig(g *Gradient) GradientConfig {
	gc := GradientConfig{
		Stops:         make([]StopConfig, len(g.Stops)),
		ColorSpace:    string(g.ColorSpace),
		Interpolation: string(g.Interpolation),
	}
	for i, s := range g.Stops {
		gc.Stops[i] = StopConfig{Position: s.Position, Color: colorToConfig(s.Color)}
	}
	return gc
}

func gradientFromConfig(gc GradientConfig) *Gradient {
	stops := make([]ColorStop, len(gc.Stops))
	for i, s := range gc.Stops {
		stops[i] = ColorStop{Position: s.Position, Color: colorFromConfig(s.Color)}
	}
	space := ColorSpaceKind(gc.ColorSpace)
	if space == "" {
		space = SpaceRGB
	}
	interp := InterpolationKind(gc.Interpolation)
	if interp == "" {
		interp = InterpLinear
	}
	return NewGradient(space, interp, stops...)
}

func colorToConfig(c ColorRGB) ColorConfig {
	return ColorConfig{R: c.R, G: c.G, B: c.B}
}

func colorFromConfig(c ColorConfig) ColorRGB {
	return ColorRGB{R: c.R, G: c.G, B: c.B}
}

func interiorModeToString(m InteriorMode) string {
	switch m {
	case InteriorGradient:
		return "gradient"
	case InteriorOrbit:
		return "orbit"
	case InteriorDistance:
		return "distance"
	default:
		return "black"
	}
}

func interiorModeFromString(s string) InteriorMode {
	switch s {
	case "gradient":
		return InteriorGradient
	case "orbit":
		return InteriorOrbit
	case "distance":
		return InteriorDistance
	default:
		return InteriorBlack
	}
}
