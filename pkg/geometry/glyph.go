package geometry

import (
	"image"
	"sync"

	"github.com/jbeda/geom"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

const (
	// GlyphResolution is the side length of a glyph mask in cells.
	GlyphResolution = 32

	glyphThreshold = 128
)

// GlyphMask is a rasterized character. Cell (x, y) is at index y*GlyphResolution+x.
type GlyphMask [GlyphResolution * GlyphResolution]bool

// At reports whether mask cell (x, y) is inked. Out-of-range cells are not.
func (m *GlyphMask) At(x, y int) bool {
	if x < 0 || y < 0 || x >= GlyphResolution || y >= GlyphResolution {
		return false
	}
	return m[y*GlyphResolution+x]
}

// Coverage returns the inked fraction of the mask.
func (m *GlyphMask) Coverage() float64 {
	n := 0
	for _, v := range m {
		if v {
			n++
		}
	}
	return float64(n) / float64(len(m))
}

var glyphs struct {
	once    sync.Once
	font    *opentype.Font
	fontErr error

	mu    sync.Mutex // serializes rasterization
	masks sync.Map   // rune -> *GlyphMask
}

func loadGlyphFont() {
	glyphs.font, glyphs.fontErr = opentype.Parse(gobold.TTF)
}

// MaskFor returns the bitmap mask of r, rasterizing it on first use. Runes
// the font lacks get the mask of [DefaultGlyph]. If the embedded font cannot
// be loaded the mask is fully inked, so text objects degrade to rectangles
// rather than disappearing.
func MaskFor(r rune) *GlyphMask {
	if m, ok := glyphs.masks.Load(r); ok {
		return m.(*GlyphMask)
	}
	glyphs.once.Do(loadGlyphFont)

	glyphs.mu.Lock()
	defer glyphs.mu.Unlock()
	if m, ok := glyphs.masks.Load(r); ok {
		return m.(*GlyphMask)
	}

	m := new(GlyphMask)
	if glyphs.fontErr != nil || rasterizeGlyph(glyphs.font, r, m) != nil {
		for i := range m {
			m[i] = true
		}
	}
	glyphs.masks.Store(r, m)
	return m
}

// glyphFace returns a Go Bold face at size pixels per em.
func glyphFace(f *opentype.Font, size float64) (font.Face, error) {
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
}

// rasterizeGlyph draws r so that its ink box fills the mask: the longer side
// spans all GlyphResolution cells and the shorter one is centered. A rune
// with no ink leaves the mask empty.
func rasterizeGlyph(f *opentype.Font, r rune, m *GlyphMask) error {
	sizing, err := glyphFace(f, GlyphResolution)
	if err != nil {
		return err
	}
	bounds, _, ok := sizing.GlyphBounds(r)
	if !ok {
		r = DefaultGlyph
		bounds, _, _ = sizing.GlyphBounds(r)
	}
	sizing.Close()

	extent := max(bounds.Max.X-bounds.Min.X, bounds.Max.Y-bounds.Min.Y)
	if extent <= 0 {
		return nil
	}

	face, err := glyphFace(f, GlyphResolution*float64(fixed.I(GlyphResolution))/float64(extent))
	if err != nil {
		return err
	}
	defer face.Close()
	bounds, _, _ = face.GlyphBounds(r)

	size := fixed.I(GlyphResolution)
	w := bounds.Max.X - bounds.Min.X
	h := bounds.Max.Y - bounds.Min.Y
	dst := image.NewAlpha(image.Rect(0, 0, GlyphResolution, GlyphResolution))
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.Opaque,
		Face: face,
		Dot: fixed.Point26_6{
			X: (size-w)/2 - bounds.Min.X,
			Y: (size-h)/2 - bounds.Min.Y,
		},
	}
	d.DrawString(string(r))

	for y := range GlyphResolution {
		for x := range GlyphResolution {
			m[y*GlyphResolution+x] = dst.AlphaAt(x, y).A >= glyphThreshold
		}
	}
	return nil
}

func glyphContains(r rune, p geom.Coord) bool {
	if r == 0 {
		r = DefaultGlyph
	}
	x := int(p.X * GlyphResolution)
	y := int(p.Y * GlyphResolution)
	if x == GlyphResolution {
		x--
	}
	if y == GlyphResolution {
		y--
	}
	return MaskFor(r).At(x, y)
}
