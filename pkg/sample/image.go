package sample

import (
	"image"

	"github.com/mhuggins102-sudo/Estimate-Game/pkg/palette"
)

// MeasureImage classifies a rendered board instead of its objects: every
// sample takes the board color nearest to the pixel under its cell center.
// Translucent pixels are composited over the background color first. An
// invalid grid is replaced by [DefaultGrid].
//
// A flat-color rendering of a measurement, scaled by a whole factor,
// measures back to the same counts on the same grid.
func MeasureImage(img image.Image, grid Grid, opts ...Option) *Measurement {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if !grid.valid() {
		grid = DefaultGrid()
	}

	m := newMeasurement(grid, o.keepCells)
	counts := make([][numColors]int, grid.SY)
	bounds := img.Bounds()
	if bounds.Empty() {
		for j := range counts {
			counts[j][palette.Background] = grid.SX
		}
		for i := range m.Cells {
			m.Cells[i] = palette.Background
		}
		m.collect(counts)
		return m
	}

	for j := range grid.SY {
		y := bounds.Min.Y + pixelIndex(j, grid.SY, bounds.Dy())
		for i := range grid.SX {
			x := bounds.Min.X + pixelIndex(i, grid.SX, bounds.Dx())
			c := palette.Nearest(opaque(img, x, y))
			counts[j][c]++
			if m.Cells != nil {
				m.Cells[j*grid.SX+i] = c
			}
		}
	}
	m.collect(counts)
	return m
}

// pixelIndex maps the center of sample k of n onto a span of px pixels.
func pixelIndex(k, n, px int) int {
	return min(px-1, int((float64(k)+0.5)/float64(n)*float64(px)))
}

// opaque reads the pixel at (x, y) composited over the background color.
func opaque(img image.Image, x, y int) palette.RGB {
	r, g, b, a := img.At(x, y).RGBA()
	bg := palette.Background.RGB()
	over := func(v uint32, base uint8) uint8 {
		// v is alpha-premultiplied in 16 bits.
		return uint8((v + uint32(base)*0x101*(0xffff-a)/0xffff) >> 8)
	}
	return palette.RGB{R: over(r, bg.R), G: over(g, bg.G), B: over(b, bg.B)}
}
