package fractalcolor

import (
	"image"
	"image/color"
	"image/png"
	"os"
)

// rgbaView is a minimal read-only image.Image adapter over a flat RGBA
// byte buffer (an engine Apply/GenerateLUT output). Ported from the
// teacher's Pixmap, which additionally implements draw.Image's
// read-write span-fill API; that half has no caller in a pure
// pixel-coloring engine and is dropped here.
type rgbaView struct {
	width, height int
	pix           []byte
}

func (v *rgbaView) ColorModel() color.Model { return color.NRGBAModel }
func (v *rgbaView) Bounds() image.Rectangle { return image.Rect(0, 0, v.width, v.height) }
func (v *rgbaView) At(x, y int) color.Color {
	if x < 0 || x >= v.width || y < 0 || y >= v.height {
		return color.NRGBA{}
	}
	i := (y*v.width + x) * 4
	return color.NRGBA{R: v.pix[i], G: v.pix[i+1], B: v.pix[i+2], A: v.pix[i+3]}
}

// SavePNG encodes an RGBA byte buffer (the output of Apply or
// GenerateLUT) as a PNG file. buf must be exactly width*height*4 bytes.
func SavePNG(path string, width, height int, buf []byte) error {
	if len(buf) != width*height*4 {
		return ErrBufferTooSmall
	}

	f, err := os.Create(path) //nolint:gosec // path is caller-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	img := &rgbaView{width: width, height: height, pix: buf}
	return png.Encode(f, img)
}

// SaveLUTStrip saves a generate_lut buffer (a 1-row-high RGBA strip) as a PNG.
func SaveLUTStrip(path string, lut []byte) error {
	n := len(lut) / 4
	return SavePNG(path, n, 1, lut)
}
