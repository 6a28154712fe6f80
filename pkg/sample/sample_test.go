package sample

import (
	"context"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhuggins102-sudo/Estimate-Game/pkg/board"
	"github.com/mhuggins102-sudo/Estimate-Game/pkg/geometry"
	"github.com/mhuggins102-sudo/Estimate-Game/pkg/layout"
	"github.com/mhuggins102-sudo/Estimate-Game/pkg/palette"
)

func fullCanvas(id string, c palette.Color) board.Object {
	return board.Solid(id, 0, 0, 100, 100, c, geometry.Rect{}, 0)
}

func TestFullCanvasRect(t *testing.T) {
	m := Measure([]board.Object{fullCanvas("r", palette.Red)}, Square(100))
	b := m.Breakdown()

	assert.Equal(t, 100.0, b[palette.Red])
	for _, c := range []palette.Color{palette.Blue, palette.Green, palette.Yellow, palette.Background} {
		assert.Zero(t, b[c], c.String())
	}
}

func TestHigherPriorityWins(t *testing.T) {
	red := fullCanvas("red", palette.Red)
	blue := fullCanvas("blue", palette.Blue)
	red.Priority, blue.Priority = 0, 1

	// Input order must not matter, only priority.
	for _, objs := range [][]board.Object{{red, blue}, {blue, red}} {
		b := Measure(objs, Square(80)).Breakdown()
		assert.InDelta(t, 100, b[palette.Blue], 1e-9)
		assert.InDelta(t, 0, b[palette.Red], 1e-9)
	}
}

func TestEqualPriorityLaterOnTop(t *testing.T) {
	objs := []board.Object{fullCanvas("a", palette.Green), fullCanvas("b", palette.Yellow)}
	b := Measure(objs, Square(20)).Breakdown()
	assert.Equal(t, 100.0, b[palette.Yellow])
}

func TestEmptyBoardIsBackground(t *testing.T) {
	m := Measure(nil, Square(10))
	assert.Equal(t, 100, m.Counts[palette.Background])
	assert.Equal(t, 100.0, m.Breakdown()[palette.Background])
}

func TestHollowCircleArea(t *testing.T) {
	ring := board.Hollow("ring", 0, 0, 100, 100, palette.Green, geometry.Circle{}, 0, 0.2)
	m := Measure([]board.Object{ring}, Square(400), WithGrid())

	// Annulus between radius 30 and 50 canvas percent.
	want := math.Pi * (50*50 - 30*30) / 100
	assert.InDelta(t, want, m.Breakdown()[palette.Green], 0.5)

	grid := m.Grid
	for j := range grid.SY {
		for i := range grid.SX {
			p := grid.Point(i, j)
			r := math.Hypot(p.X-50, p.Y-50)
			if r < 30-1e-6 {
				require.Equal(t, palette.Background, m.At(i, j), "sample at radius %.3f", r)
			}
		}
	}
}

func TestRotation360MatchesZero(t *testing.T) {
	shapes := []geometry.Shape{
		geometry.Polygon{Kind: geometry.Star},
		geometry.Heart{},
		geometry.Polygon{Kind: geometry.Arrow},
	}
	for _, s := range shapes {
		a := Measure([]board.Object{board.Solid("a", 12, 20, 60, 45, palette.Red, s, 0)}, Square(120), WithGrid())
		b := Measure([]board.Object{board.Solid("b", 12, 20, 60, 45, palette.Red, s, 360)}, Square(120), WithGrid())
		assert.Equal(t, a.Cells, b.Cells, s.Name())
	}
}

func TestBreakdownInvariants(t *testing.T) {
	for _, style := range layout.All() {
		t.Run(style.Name, func(t *testing.T) {
			rng := rand.New(rand.NewPCG(11, 11^0xdeadbeef))
			objs := board.EnsurePalette(style.Generate(rng), rng)
			board.SortByDepth(objs)

			grid := Grid{SX: 90, SY: 70}
			m := Measure(objs, grid)

			assert.InDelta(t, 100, m.Breakdown().Sum(), 100.0/float64(grid.Total()))

			total := 0
			for _, c := range palette.All {
				rows := m.Rows[c]
				require.Len(t, rows, grid.SY)
				sum := 0
				for _, n := range rows {
					sum += n
				}
				assert.Equal(t, m.Counts[c], sum, "row sum for %s", c)
				total += m.Counts[c]
			}
			assert.Equal(t, grid.Total(), total)
		})
	}
}

func TestWorkersDoNotChangeResult(t *testing.T) {
	rng := rand.New(rand.NewPCG(4, 5))
	objs := layout.Scattered(rng)
	board.SortByDepth(objs)

	one := Measure(objs, Square(150), WithGrid(), WithWorkers(1))
	many := Measure(objs, Square(150), WithGrid(), WithWorkers(16))
	assert.Equal(t, one.Cells, many.Cells)
	assert.Equal(t, one.Counts, many.Counts)
}

func TestBucketingMatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewPCG(21, 22))
	objs := layout.LargeOverlap(rng)
	board.SortByDepth(objs)

	grid := Square(60)
	m := Measure(objs, grid, WithGrid())
	for j := range grid.SY {
		for i := range grid.SX {
			p := grid.Point(i, j)
			want := palette.Background
			for k := len(objs) - 1; k >= 0; k-- {
				if objs[k].Contains(p.X, p.Y) {
					want = objs[k].Color
					break
				}
			}
			require.Equal(t, want, m.At(i, j), "sample (%d, %d)", i, j)
		}
	}
}

func TestMarkersAddSmallShares(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 1))
	objs := []board.Object{fullCanvas("red", palette.Red)}

	before := Measure(objs, DefaultGrid()).Breakdown()
	assert.Equal(t, 100.0, before[palette.Red])

	objs = board.EnsurePalette(objs, rng)
	board.SortByDepth(objs)
	after := Measure(objs, DefaultGrid()).Breakdown()

	for _, c := range []palette.Color{palette.Blue, palette.Green, palette.Yellow} {
		assert.Greater(t, after[c], 0.0, c.String())
		assert.Less(t, after[c], 1.0, c.String())
	}
	assert.Less(t, after[palette.Red], 100.0)
}

func TestMeasureContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := MeasureContext(ctx, []board.Object{fullCanvas("r", palette.Red)}, Square(50))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestInvalidGridFallsBack(t *testing.T) {
	m := Measure(nil, Grid{})
	assert.Equal(t, DefaultGrid(), m.Grid)
}

func TestWithoutCells(t *testing.T) {
	m := Measure([]board.Object{fullCanvas("r", palette.Red)}, Square(4), WithGrid())
	require.Len(t, m.Cells, 16)
	stripped := m.WithoutCells()
	assert.Nil(t, stripped.Cells)
	assert.Len(t, m.Cells, 16)
	assert.Equal(t, palette.Background, stripped.At(0, 0))
}
