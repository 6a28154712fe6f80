package layout

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/mhuggins102-sudo/Estimate-Game/pkg/board"
	"github.com/mhuggins102-sudo/Estimate-Game/pkg/geometry"
	"github.com/mhuggins102-sudo/Estimate-Game/pkg/palette"
)

// tileGap separates neighbouring tiles in the field styles.
const tileGap = 0.25

// colorFunc chooses a band index for the tile centered at (cx, cy). Tiles
// with ok=false are left out.
type colorFunc func(cx, cy float64) (band int, ok bool)

// tileField covers the canvas with square tiles and colors each through
// colorAt. The bands index into a shuffled color order.
func tileField(prefix string, colors []palette.Color, cell float64, shape geometry.Shape, colorAt colorFunc) []board.Object {
	step := cell + tileGap
	var objs []board.Object
	for row := -2; float64(row)*step < 108; row++ {
		for col := -2; float64(col)*step < 108; col++ {
			x, y := float64(col)*step, float64(row)*step
			band, ok := colorAt(x+cell/2, y+cell/2)
			if !ok {
				continue
			}
			objs = append(objs, board.Solid(fmt.Sprintf("%s-%d", prefix, len(objs)),
				x, y, cell, cell, colors[mod4(band)], shape, 0))
		}
	}
	return objs
}

// bandOf folds a position onto a repeating sequence of four bands of the
// given width.
func bandOf(pos, width float64) int {
	period := width * 4
	norm := math.Mod(math.Mod(pos, period)+period, period)
	return int(norm/width) % 4
}

// WavyStripes colors a dense tile field with stripes bent by two sine
// waves, running horizontally, vertically or diagonally.
func WavyStripes(rng *rand.Rand) []board.Object {
	shape := pick(rng, tileShapes)
	cell := rnd(rng, 4.5, 7.5)
	colors := colorOrder(rng)

	width := 100 / float64(rndInt(rng, 4, 9))
	amp1 := rnd(rng, 5, 22)
	freq1 := rnd(rng, 0.03, 0.10)
	amp2 := rnd(rng, 1, 7)
	freq2 := rnd(rng, 0.07, 0.18)
	dir := pick(rng, []byte{'h', 'v', 'd'})

	return tileField("wv", colors, cell, shape, func(cx, cy float64) (int, bool) {
		var pos float64
		switch dir {
		case 'h':
			pos = cy + amp1*math.Sin(cx*freq1) + amp2*math.Sin(cx*freq2+1.5)
		case 'v':
			pos = cx + amp1*math.Sin(cy*freq1) + amp2*math.Sin(cy*freq2+0.7)
		default:
			diag := (cx + cy) * 0.707
			perp := (cx - cy) * 0.707
			pos = diag + amp1*math.Sin(perp*freq1*1.4)
		}
		return bandOf(pos, width), true
	})
}

// RadialPie colors tiles by their angle around a focal point, optionally
// twisted into a pinwheel and with an empty hub.
func RadialPie(rng *rand.Rand) []board.Object {
	shape := pick(rng, tileShapes)
	cell := rnd(rng, 4.5, 7.5)
	colors := colorOrder(rng)

	wedges := float64(rndInt(rng, 4, 16))
	fx := rnd(rng, 28, 72)
	fy := rnd(rng, 28, 72)
	twist := rnd(rng, -0.05, 0.05)
	hub := 0.0
	if rng.Float64() < 0.25 {
		hub = rnd(rng, 6, 16)
	}

	const tau = 2 * math.Pi
	return tileField("rp", colors, cell, shape, func(cx, cy float64) (int, bool) {
		dx, dy := cx-fx, cy-fy
		dist := math.Hypot(dx, dy)
		if dist < hub {
			return 0, false
		}
		angle := math.Mod(math.Atan2(dy, dx)+tau, tau)
		twisted := math.Mod(angle+dist*twist+tau*20, tau)
		return int(twisted / (tau / wedges)), true
	})
}

// WaveRings colors tiles by distance from a center, with an elliptical
// squish and an angular wobble on the ring edges.
func WaveRings(rng *rand.Rand) []board.Object {
	shape := pick(rng, tileShapes)
	cell := rnd(rng, 4.5, 7.0)
	colors := colorOrder(rng)

	fx := rnd(rng, 25, 75)
	fy := rnd(rng, 25, 75)
	width := rnd(rng, 5, 16)
	amp := rnd(rng, 0, 5)
	freq := float64(rndInt(rng, 3, 9))
	squish := rnd(rng, 0.65, 1.35)

	return tileField("cr", colors, cell, shape, func(cx, cy float64) (int, bool) {
		dx := (cx - fx) * squish
		dy := (cy - fy) / squish
		dist := math.Hypot(dx, dy) + amp*math.Sin(math.Atan2(dy, dx)*freq)
		return bandOf(dist, width), true
	})
}

type voronoiSeed struct {
	x, y float64
	band int
}

// Voronoi colors square tiles by their nearest seed, giving organic
// regions. Every color gets the same number of seeds.
func Voronoi(rng *rand.Rand) []board.Object {
	cell := rnd(rng, 5.5, 9.0)
	colors := colorOrder(rng)
	perColor := rndInt(rng, 2, 5)

	seeds := make([]voronoiSeed, 0, 4*perColor)
	for band := range 4 {
		for range perColor {
			seeds = append(seeds, voronoiSeed{rnd(rng, 5, 95), rnd(rng, 5, 95), band})
		}
	}

	return tileField("vo", colors, cell, rect, func(cx, cy float64) (int, bool) {
		best, nearest := math.Inf(1), 0
		for _, s := range seeds {
			dx, dy := cx-s.x, cy-s.y
			if d := dx*dx + dy*dy; d < best {
				best, nearest = d, s.band
			}
		}
		return nearest, true
	})
}
