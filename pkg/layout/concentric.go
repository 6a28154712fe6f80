package layout

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/mhuggins102-sudo/Estimate-Game/pkg/board"
	"github.com/mhuggins102-sudo/Estimate-Game/pkg/geometry"
	"github.com/mhuggins102-sudo/Estimate-Game/pkg/palette"
)

// maxConcentric caps the outer layer of a concentric board.
const maxConcentric = 150

// sparseScale enlarges shapes that paint less of their box than a circle,
// so that a star or heart fills about as much canvas as a disc of the same
// nominal size would.
func sparseScale(s geometry.Shape) float64 {
	circleArea := geometry.Area(circle, geometry.Solid)
	return max(1, math.Sqrt(circleArea/geometry.Area(s, geometry.Solid)))
}

// Concentric nests shrinking copies of one shape around a common center,
// cycling through the colors and twisting each layer a little further.
func Concentric(rng *rand.Rand) []board.Object {
	shape := pick(rng, []geometry.Shape{circle, heart, diamond, star, rect, sixPointStar})
	layers := rndInt(rng, 5, 9)
	cx := rnd(rng, 30, 70)
	cy := rnd(rng, 30, 70)
	size := min(rnd(rng, 65, 96)*sparseScale(shape), maxConcentric)
	shrink := rnd(rng, 0.60, 0.78)
	first := rndInt(rng, 0, 3)
	baseRot := rnd(rng, 0, 360)
	rotStep := rnd(rng, 2, 12)

	objs := make([]board.Object, 0, layers)
	for l := range layers {
		c := palette.Playable[(first+l)%4]
		objs = append(objs, board.Solid(fmt.Sprintf("cn-%d", l),
			cx-size/2, cy-size/2, size, size, c, shape, baseRot+float64(l)*rotStep))
		size *= shrink
	}
	return objs
}

// LargeOverlap piles a handful of big shapes near the center and sprinkles
// small accents of the same shape on top.
func LargeOverlap(rng *rand.Rand) []board.Object {
	shape := pick(rng, []geometry.Shape{circle, heart, diamond, star, sixPointStar, triangle})
	colors := colorOrder(rng)
	big := rndInt(rng, 5, 7)
	scale := sparseScale(shape)

	var objs []board.Object
	for i := range big {
		cx := rnd(rng, 25, 75)
		cy := rnd(rng, 25, 75)
		w := rnd(rng, 40, 66) * scale
		h := w * rnd(rng, 0.75, 1.30)
		objs = append(objs, board.Solid(fmt.Sprintf("lo-%d", i),
			cx-w/2, cy-h/2, w, h, colors[i%4], shape, rnd(rng, 0, 360)))
	}

	accents := rndInt(rng, 8, 18)
	for i := range accents {
		w := rnd(rng, 3, 13)
		h := w * rnd(rng, 0.8, 1.2)
		x := rnd(rng, 0, 100-w)
		y := rnd(rng, 0, 100-h)
		objs = append(objs, board.Solid(fmt.Sprintf("lo-sm-%d", i),
			x, y, w, h, colors[rndInt(rng, 0, 3)], shape, rnd(rng, 0, 360)))
	}
	return objs
}
