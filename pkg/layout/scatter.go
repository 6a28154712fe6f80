package layout

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/mhuggins102-sudo/Estimate-Game/pkg/board"
	"github.com/mhuggins102-sudo/Estimate-Game/pkg/geometry"
)

type scatterVariant struct {
	shape  geometry.Shape
	hollow bool
}

// Circle appears twice as hollow: once as a thin-stroked circle and once as
// the original "ring" variant. Both decode to the same shape.
var scatterVariants = []scatterVariant{
	{circle, false},
	{circle, true},
	{circle, true},
	{diamond, false},
	{diamond, true},
	{star, false},
	{heart, false},
	{triangle, false},
	{sixPointStar, false},
	{arrow, false},
}

// maxScatter bounds the number of scattered objects for very sparse shapes.
const maxScatter = 400

// Scattered drops many copies of one shape at random positions, sizes
// skewed toward small, with free rotation. Copies are added until their
// painted area reaches 0.9 to 1.6 times the canvas, so thin outlines get
// more copies than solid discs.
func Scattered(rng *rand.Rand) []board.Object {
	v := pick(rng, scatterVariants)
	fill := geometry.NewFill(v.hollow, rnd(rng, 0.10, 0.20))
	ink := geometry.Area(v.shape, fill)
	target := rnd(rng, 0.9, 1.6) * canvasArea
	colors := colorOrder(rng)

	var objs []board.Object
	for painted := 0.0; painted < target && len(objs) < maxScatter; {
		i := len(objs)
		size := math.Max(4, rnd(rng, 8, 28)*math.Sqrt(rng.Float64()))
		x := rnd(rng, -3, 100-size+3)
		y := rnd(rng, -3, 100-size+3)
		objs = append(objs, place(fmt.Sprintf("sc-%d", i),
			x, y, size, size, colors[i%4], v.shape, rnd(rng, 0, 360), fill))
		painted += ink * size * size
	}
	return objs
}
