package sink

import (
	"bytes"
	"cmp"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/mhuggins102-sudo/Estimate-Game/pkg/board"
	"github.com/mhuggins102-sudo/Estimate-Game/pkg/geometry"
	"github.com/mhuggins102-sudo/Estimate-Game/pkg/palette"
)

// DefaultSize is the default pixel width of rendered images.
const DefaultSize = 700

// heartSegments is the number of points per heart arc and side.
const heartSegments = 16

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	size        int
	transparent bool
}

// WithSize sets the pixel width and height of the SVG.
func WithSize(px int) SVGOption { return func(r *svgRenderer) { r.size = px } }

// WithTransparent leaves uncovered canvas transparent instead of painting it
// in the background color.
func WithTransparent() SVGOption { return func(r *svgRenderer) { r.transparent = true } }

// RenderSVG draws b back to front in Priority order.
func RenderSVG(b *board.Board, opts ...SVGOption) []byte {
	r := svgRenderer{size: DefaultSize}
	for _, opt := range opts {
		opt(&r)
	}
	if r.size <= 0 {
		r.size = DefaultSize
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100" width="%d" height="%d">`+"\n",
		r.size, r.size)
	if b.Style != "" {
		fmt.Fprintf(&buf, "  <title>%s</title>\n", escape(b.Style))
	}
	if !r.transparent {
		fmt.Fprintf(&buf, `  <rect width="100" height="100" fill="%s"/>`+"\n", palette.Background.Hex())
	}

	for i, o := range drawOrder(b.Objects) {
		renderObject(&buf, i, o)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// drawOrder returns objs sorted bottom-up the way the sampler stacks them:
// by Priority, later objects above earlier ones on ties.
func drawOrder(objs []board.Object) []board.Object {
	out := slices.Clone(objs)
	slices.SortStableFunc(out, func(a, b board.Object) int {
		return cmp.Compare(a.Priority, b.Priority)
	})
	return out
}

func renderObject(buf *bytes.Buffer, i int, o board.Object) {
	fill := o.Color.Hex()
	rot := geometry.NormalizeDegrees(o.Rotation)

	fmt.Fprintf(buf, `  <g id="obj-%d" data-id="%s" transform="translate(%s %s)`, i, escape(o.ID), num(o.X), num(o.Y))
	if rot != 0 {
		fmt.Fprintf(buf, ` rotate(%s %s %s)`, num(rot), num(o.W/2), num(o.H/2))
	}
	fmt.Fprintf(buf, ` scale(%s %s)">`+"\n", num(o.W/100), num(o.H/100))

	k := o.Fill.InnerScale()
	if k > 0 {
		mask := fmt.Sprintf("hollow-%d", i)
		fmt.Fprintf(buf, `    <mask id="%s" maskUnits="userSpaceOnUse" x="0" y="0" width="100" height="100">`+"\n", mask)
		buf.WriteString(`      <rect width="100" height="100" fill="white"/>` + "\n")
		fmt.Fprintf(buf, `      <g transform="translate(50 50) scale(%s) translate(-50 -50)">%s</g>`+"\n",
			num(k), shapeMarkup(o.Shape, "black"))
		buf.WriteString("    </mask>\n")
		fmt.Fprintf(buf, `    <g mask="url(#%s)">%s</g>`+"\n", mask, shapeMarkup(o.Shape, fill))
	} else {
		fmt.Fprintf(buf, "    %s\n", shapeMarkup(o.Shape, fill))
	}
	buf.WriteString("  </g>\n")
}

// shapeMarkup draws s filling the 0..100 box.
func shapeMarkup(s geometry.Shape, fill string) string {
	switch s := s.(type) {
	case geometry.Rect:
		return fmt.Sprintf(`<rect width="100" height="100" fill="%s"/>`, fill)
	case geometry.Circle:
		return fmt.Sprintf(`<circle cx="50" cy="50" r="50" fill="%s"/>`, fill)
	case geometry.Polygon:
		var sb strings.Builder
		for _, ring := range geometry.PolygonTable(s.Kind) {
			sb.WriteString(`<polygon points="`)
			for j, v := range ring {
				if j > 0 {
					sb.WriteByte(' ')
				}
				fmt.Fprintf(&sb, "%s,%s", num(v[0]), num(v[1]))
			}
			fmt.Fprintf(&sb, `" fill="%s"/>`, fill)
		}
		return sb.String()
	case geometry.Heart:
		var sb strings.Builder
		sb.WriteString(`<polygon points="`)
		for j, p := range geometry.HeartOutline(heartSegments) {
			if j > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%s,%s", num(p.X*100), num(p.Y*100))
		}
		fmt.Fprintf(&sb, `" fill="%s"/>`, fill)
		return sb.String()
	case geometry.Glyph:
		return fmt.Sprintf(`<path d="%s" fill="%s"/>`, glyphPath(s.Char), fill)
	}
	return ""
}

// glyphPath traces the glyph mask as one rectangle per horizontal run of
// set cells.
func glyphPath(r rune) string {
	const n = geometry.GlyphResolution
	cell := 100.0 / n
	m := geometry.MaskFor(r)

	var sb strings.Builder
	for y := range n {
		for x := 0; x < n; {
			if !m.At(x, y) {
				x++
				continue
			}
			start := x
			for x < n && m.At(x, y) {
				x++
			}
			fmt.Fprintf(&sb, "M%s %sh%sv%sh-%sz",
				num(float64(start)*cell), num(float64(y)*cell),
				num(float64(x-start)*cell), num(cell), num(float64(x-start)*cell))
		}
	}
	return sb.String()
}

// num formats v with up to three decimals and no trailing zeros.
func num(v float64) string {
	v = math.Round(v*1000) / 1000
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

var xmlEscaper = strings.NewReplacer(`&`, "&amp;", `<`, "&lt;", `>`, "&gt;", `"`, "&quot;")

func escape(s string) string { return xmlEscaper.Replace(s) }
