package layout

import (
	"fmt"
	"math/rand/v2"

	"github.com/mhuggins102-sudo/Estimate-Game/pkg/board"
	"github.com/mhuggins102-sudo/Estimate-Game/pkg/geometry"
	"github.com/mhuggins102-sudo/Estimate-Game/pkg/palette"
)

var (
	rect         = geometry.Rect{}
	circle       = geometry.Circle{}
	heart        = geometry.Heart{}
	triangle     = geometry.Polygon{Kind: geometry.Triangle}
	diamond      = geometry.Polygon{Kind: geometry.Diamond}
	star         = geometry.Polygon{Kind: geometry.Star}
	sixPointStar = geometry.Polygon{Kind: geometry.SixPointStar}
	arrow        = geometry.Polygon{Kind: geometry.Arrow}
)

// tileShapes read as distinct cells when packed densely.
var tileShapes = []geometry.Shape{rect, circle, diamond}

// place builds a solid or hollow object depending on fill.
func place(id string, x, y, w, h float64, c palette.Color, s geometry.Shape, rot float64, fill geometry.Fill) board.Object {
	if fill.Hollow {
		return board.Hollow(id, x, y, w, h, c, s, rot, fill.Stroke)
	}
	return board.Solid(id, x, y, w, h, c, s, rot)
}

// RegularGrid tiles one shape in a grid, colored in column, row or diagonal
// bands, with a slight rotation jitter and an occasional hollow variant.
func RegularGrid(rng *rand.Rand) []board.Object {
	shape := pick(rng, []geometry.Shape{circle, diamond, triangle, star, rect, heart, arrow, sixPointStar})
	hollow := rng.Float64() < 0.30
	fill := geometry.NewFill(hollow, rnd(rng, 0.12, 0.22))

	cell := rnd(rng, 6.5, 14)
	step := packedStep(rng, cell, geometry.Area(shape, fill), 1.0, 1.2)
	pattern := rndInt(rng, 0, 3)
	colors := colorOrder(rng)

	var objs []board.Object
	for row := -1; float64(row)*step < 105; row++ {
		for col := -1; float64(col)*step < 105; col++ {
			c := colors[gridPattern(pattern, row, col)]
			objs = append(objs, place(fmt.Sprintf("g-%d", len(objs)),
				float64(col)*step, float64(row)*step, cell, cell,
				c, shape, rnd(rng, -12, 12), fill))
		}
	}
	return objs
}

// StaggeredDots is a halftone grid with alternate rows offset by half a
// step and slightly varying dot sizes.
func StaggeredDots(rng *rand.Rand) []board.Object {
	shape := pick(rng, []geometry.Shape{circle, diamond, rect})
	hollow := rng.Float64() < 0.25
	fill := geometry.NewFill(hollow, rnd(rng, 0.12, 0.22))
	cell := rnd(rng, 6, 12)
	step := packedStep(rng, cell, geometry.Area(shape, fill), 1.0, 1.2)
	colors := colorOrder(rng)
	pattern := rndInt(rng, 0, 2)

	var objs []board.Object
	for row := -1; float64(row)*step < 108; row++ {
		offset := 0.0
		if row%2 != 0 {
			offset = step / 2
		}
		for col := -2; float64(col)*step < 115; col++ {
			size := cell * rnd(rng, 0.82, 1.00)
			c := colors[gridPattern(pattern, row, col)]
			objs = append(objs, place(fmt.Sprintf("sd-%d", len(objs)),
				float64(col)*step+offset, float64(row)*step, size, size,
				c, shape, 0, fill))
		}
	}
	return objs
}

// MixedShapes cycles through a small random pool of shapes on a grid.
func MixedShapes(rng *rand.Rand) []board.Object {
	all := shuffled(rng, []geometry.Shape{circle, diamond, triangle, star, heart, rect, sixPointStar, arrow})
	pool := all[:rndInt(rng, 3, 5)]
	hollow := rng.Float64() < 0.20
	fill := geometry.NewFill(hollow, rnd(rng, 0.12, 0.20))
	var ink float64
	for _, s := range pool {
		ink += geometry.Area(s, fill)
	}
	ink /= float64(len(pool))
	cell := rnd(rng, 7, 14)
	step := packedStep(rng, cell, ink, 1.0, 1.15)
	colors := colorOrder(rng)
	pattern := rndInt(rng, 0, 3)

	var objs []board.Object
	for row := -1; float64(row)*step < 108; row++ {
		for col := -1; float64(col)*step < 108; col++ {
			idx := len(objs)
			c := colors[gridPattern(pattern, row, col)]
			objs = append(objs, place(fmt.Sprintf("ms-%d", idx),
				float64(col)*step, float64(row)*step, cell, cell,
				c, pool[idx%len(pool)], rnd(rng, -15, 15), fill))
		}
	}
	return objs
}

// textChars are drawn from Go Bold, which has no U+25C6, so the diamond is
// the card suit.
var textChars = []rune{
	'A', 'B', 'E', 'H', 'K', 'M', 'N', 'R', 'S', 'T', 'W', 'X',
	'3', '5', '6', '8', '+', '■', '●', '♦',
}

// maxTextScatter bounds the scattered text variant.
const maxTextScatter = 300

// TextGrid places characters, either one repeated character in a banded
// grid or a scatter of random rotated characters. The grid packs tighter
// for light characters; the scatter adds characters until their ink covers
// the canvas about once over.
func TextGrid(rng *rand.Rand) []board.Object {
	colors := colorOrder(rng)
	var objs []board.Object

	if rng.Float64() < 0.6 {
		cell := rnd(rng, 11, 17)
		glyph := geometry.Glyph{Char: pick(rng, textChars)}
		step := packedStep(rng, cell, geometry.MaskFor(glyph.Char).Coverage(), 0.82, 0.95)
		pattern := rndInt(rng, 0, 2)

		for row := -1; float64(row)*step < 108; row++ {
			for col := -1; float64(col)*step < 108; col++ {
				c := colors[gridPattern(pattern, row, col)]
				objs = append(objs, board.Solid(fmt.Sprintf("tx-%d", len(objs)),
					float64(col)*step, float64(row)*step, cell, cell, c, glyph, 0))
			}
		}
		return objs
	}

	target := rnd(rng, 1.0, 1.6) * canvasArea
	for painted := 0.0; painted < target && len(objs) < maxTextScatter; {
		i := len(objs)
		size := rnd(rng, 10, 28)
		x := rnd(rng, -2, 98-size)
		y := rnd(rng, -2, 98-size)
		glyph := geometry.Glyph{Char: pick(rng, textChars)}
		objs = append(objs, board.Solid(fmt.Sprintf("tx-%d", i),
			x, y, size, size, colors[i%4], glyph, rnd(rng, 0, 360)))
		painted += geometry.MaskFor(glyph.Char).Coverage() * size * size
	}
	return objs
}
