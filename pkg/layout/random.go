package layout

import (
	"math"
	"math/rand/v2"

	"github.com/mhuggins102-sudo/Estimate-Game/pkg/palette"
)

// canvasArea is the area of the canvas in square canvas percent.
const canvasArea = 100 * 100

// Grid styles keep their nominal spacing for shapes that paint at least
// inkRef of their box. Sparser shapes are packed closer, down to minPack
// times the nominal step.
const (
	inkRef  = 0.6
	minPack = 0.7
)

// packedStep returns the distance between grid cells of the given size:
// cell times a factor drawn from [lo, hi), tightened for shapes that paint
// less than inkRef of their box.
func packedStep(rng *rand.Rand, cell, ink, lo, hi float64) float64 {
	return cell * rnd(rng, lo, hi) * max(minPack, min(1, math.Sqrt(ink/inkRef)))
}

// rnd returns a uniform value in [a, b).
func rnd(rng *rand.Rand, a, b float64) float64 {
	return a + rng.Float64()*(b-a)
}

// rndInt returns a uniform integer in [a, b].
func rndInt(rng *rand.Rand, a, b int) int {
	return a + rng.IntN(b-a+1)
}

func pick[T any](rng *rand.Rand, items []T) T {
	return items[rng.IntN(len(items))]
}

// shuffled returns a shuffled copy of items.
func shuffled[T any](rng *rand.Rand, items []T) []T {
	out := append([]T(nil), items...)
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// colorOrder is a random permutation of the playable colors.
func colorOrder(rng *rand.Rand) []palette.Color {
	return shuffled(rng, palette.Playable)
}

// mod4 is n mod 4 in [0, 4) for negative n too.
func mod4(n int) int {
	return ((n % 4) + 4) % 4
}

// gridPattern maps a cell to a color index for the striped grid styles.
//
//	0: by column   1: by row   2: diagonal   3: steep diagonal
func gridPattern(pattern, row, col int) int {
	switch pattern {
	case 0:
		return mod4(col)
	case 1:
		return mod4(row)
	case 2:
		return mod4(col + row)
	default:
		return mod4(col*2 + row)
	}
}
