package sink

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"

	xdraw "golang.org/x/image/draw"

	"github.com/mhuggins102-sudo/Estimate-Game/pkg/palette"
	"github.com/mhuggins102-sudo/Estimate-Game/pkg/sample"
)

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	size int
}

// WithPNGSize sets the pixel width of the PNG. The height follows the grid's
// aspect ratio.
func WithPNGSize(px int) PNGOption {
	return func(r *pngRenderer) { r.size = px }
}

// RenderPNG draws the classified grid of m, one flat color per sample,
// scaled to the requested size with nearest-neighbour sampling so that cell
// edges stay sharp. m must have been measured with [sample.WithGrid].
func RenderPNG(m *sample.Measurement, opts ...PNGOption) ([]byte, error) {
	if m == nil || m.Cells == nil {
		return nil, fmt.Errorf("png: measurement has no classified grid")
	}
	r := pngRenderer{size: DefaultSize}
	for _, opt := range opts {
		opt(&r)
	}
	if r.size <= 0 {
		r.size = DefaultSize
	}

	src := GridImage(m)

	var img image.Image = src
	if r.size != m.Grid.SX {
		h := max(1, r.size*m.Grid.SY/m.Grid.SX)
		dst := image.NewPaletted(image.Rect(0, 0, r.size, h), src.Palette)
		xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
		img = dst
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("png: encode: %w", err)
	}
	return buf.Bytes(), nil
}

// GridImage returns the classified grid of m at one pixel per sample.
func GridImage(m *sample.Measurement) *image.Paletted {
	img := image.NewPaletted(image.Rect(0, 0, m.Grid.SX, m.Grid.SY), colorPalette)
	for j := range m.Grid.SY {
		for i := range m.Grid.SX {
			img.SetColorIndex(i, j, uint8(m.At(i, j)))
		}
	}
	return img
}

// colorPalette is indexed by palette.Color.
var colorPalette = func() color.Palette {
	p := make(color.Palette, len(palette.All))
	for _, c := range palette.All {
		v := c.RGB()
		p[c] = color.RGBA{R: v.R, G: v.G, B: v.B, A: 0xff}
	}
	return p
}()
