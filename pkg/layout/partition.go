package layout

import (
	"fmt"
	"math"
	"math/rand/v2"
	"slices"

	"github.com/mhuggins102-sudo/Estimate-Game/pkg/board"
	"github.com/mhuggins102-sudo/Estimate-Game/pkg/geometry"
	"github.com/mhuggins102-sudo/Estimate-Game/pkg/palette"
)

// blockGap is the margin left between bold blocks, in canvas percent.
const blockGap = 1.0

// cuts returns 0, n sorted random cut points in [15, 85], and 100.
func cuts(rng *rand.Rand, n int) []float64 {
	pts := make([]float64, n)
	for i := range pts {
		pts[i] = rnd(rng, 15, 85)
	}
	slices.Sort(pts)
	return append(append([]float64{0}, pts...), 100)
}

// BoldBlocks partitions the canvas with a few horizontal and vertical cuts
// and fills the cells with rectangles. The first four cells get one color
// each; the rest go to whichever color has the least area so far.
func BoldBlocks(rng *rand.Rand) []board.Object {
	ys := cuts(rng, rndInt(rng, 1, 3))
	xs := cuts(rng, rndInt(rng, 1, 3))

	type cell struct{ x, y, w, h float64 }
	var cells []cell
	for r := 0; r < len(ys)-1; r++ {
		for c := 0; c < len(xs)-1; c++ {
			cells = append(cells, cell{xs[c], ys[r], xs[c+1] - xs[c], ys[r+1] - ys[r]})
		}
	}
	cells = shuffled(rng, cells)

	area := make(map[palette.Color]float64, 4)
	objs := make([]board.Object, 0, len(cells))
	for i, cl := range cells {
		var color palette.Color
		if i < len(palette.Playable) {
			color = palette.Playable[i]
		} else {
			color = leastArea(area)
		}
		area[color] += cl.w * cl.h
		objs = append(objs, board.Solid(fmt.Sprintf("bb-%d", i),
			cl.x+blockGap/2, cl.y+blockGap/2, cl.w-blockGap, cl.h-blockGap,
			color, rect, 0))
	}
	return objs
}

// leastArea returns the playable color with the smallest area, preferring
// the earlier color on ties.
func leastArea(area map[palette.Color]float64) palette.Color {
	best := palette.Playable[0]
	for _, c := range palette.Playable[1:] {
		if area[c] < area[best] {
			best = c
		}
	}
	return best
}

// ParallelStripes draws straight bands. Axis-aligned angles use full-length
// rectangles; diagonal angles use a tile grid colored by projection onto
// the stripe normal.
func ParallelStripes(rng *rand.Rand) []board.Object {
	angle := pick(rng, []float64{0, 30, 45, 60, 90})
	n := rndInt(rng, 4, 9)
	colors := colorOrder(rng)

	var objs []board.Object
	if angle == 0 || angle == 90 {
		size := 100 / float64(n)
		for i := range n {
			x, y, w, h := 0.0, float64(i)*size, 100.0, size
			if angle == 90 {
				x, y, w, h = y, x, h, w
			}
			objs = append(objs, board.Solid(fmt.Sprintf("ps-%d", i), x, y, w, h, colors[i%4], rect, 0))
		}
		return objs
	}

	shape := pick(rng, []geometry.Shape{circle, diamond, rect, triangle})
	cell := rnd(rng, 5.5, 11)
	step := cell * rnd(rng, 1.08, 1.25)
	sin, cos := math.Sincos(angle * math.Pi / 180)
	band := 100 / float64(n)

	for row := -3; float64(row)*step < 110; row++ {
		for col := -3; float64(col)*step < 110; col++ {
			x, y := float64(col)*step, float64(row)*step
			proj := (x+cell/2)*cos + (y+cell/2)*sin
			c := colors[mod4(int(math.Floor(proj/band)))]
			objs = append(objs, board.Solid(fmt.Sprintf("ps-%d", len(objs)),
				x, y, cell, cell, c, shape, angle+rnd(rng, -10, 10)))
		}
	}
	return objs
}
