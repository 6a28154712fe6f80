package sample

import (
	"context"
	"math"
	"runtime"
	"slices"
	"time"

	"github.com/jbeda/geom"
	"golang.org/x/sync/errgroup"

	"github.com/mhuggins102-sudo/Estimate-Game/pkg/board"
	"github.com/mhuggins102-sudo/Estimate-Game/pkg/geometry"
	"github.com/mhuggins102-sudo/Estimate-Game/pkg/observability"
	"github.com/mhuggins102-sudo/Estimate-Game/pkg/palette"
)

// DefaultResolution is the side length of the default sampling grid.
const DefaultResolution = 350

const numColors = int(palette.Background) + 1

// boundsSlack widens bounding boxes so that rounding in the rotated bounds
// never drops a sample the exact hit test would accept.
const boundsSlack = 1e-9

// Grid is the number of sample columns (SX) and rows (SY) laid over the
// canvas.
type Grid struct {
	SX int `json:"sx"`
	SY int `json:"sy"`
}

// DefaultGrid returns a DefaultResolution × DefaultResolution grid.
func DefaultGrid() Grid { return Square(DefaultResolution) }

// Square returns an n × n grid.
func Square(n int) Grid { return Grid{SX: n, SY: n} }

// Total is the number of samples.
func (g Grid) Total() int { return g.SX * g.SY }

// Point returns the canvas position of sample (i, j): the center of its
// cell in canvas percent.
func (g Grid) Point(i, j int) geom.Coord {
	return geom.Coord{
		X: (float64(i) + 0.5) / float64(g.SX) * 100,
		Y: (float64(j) + 0.5) / float64(g.SY) * 100,
	}
}

func (g Grid) valid() bool { return g.SX > 0 && g.SY > 0 }

type options struct {
	keepCells bool
	workers   int
}

// Option configures [Measure].
type Option func(*options)

// WithGrid keeps the classified color of every sample in
// [Measurement.Cells].
func WithGrid() Option {
	return func(o *options) { o.keepCells = true }
}

// WithWorkers limits the number of rows sampled concurrently. Values below
// one mean GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

// placed is an object prepared for repeated hit tests.
type placed struct {
	frame  geometry.Frame
	bounds geom.Rect
	shape  geometry.Shape
	fill   geometry.Fill
	color  palette.Color
}

// Measure classifies every sample of grid by the topmost object covering
// it, or Background if none does. Objects are stacked by Priority; among
// equal priorities the later object is on top. An invalid grid is replaced
// by [DefaultGrid].
func Measure(objs []board.Object, grid Grid, opts ...Option) *Measurement {
	m, _ := MeasureContext(context.Background(), objs, grid, opts...)
	return m
}

// MeasureContext is [Measure] with cancellation. Rows are sampled in
// parallel; the result does not depend on the number of workers.
func MeasureContext(ctx context.Context, objs []board.Object, grid Grid, opts ...Option) (*Measurement, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.workers < 1 {
		o.workers = runtime.GOMAXPROCS(0)
	}
	if !grid.valid() {
		grid = DefaultGrid()
	}

	start := time.Now()
	hooks := observability.Sample()
	hooks.OnSampleStart(ctx, len(objs), grid.Total())

	stack := topFirst(objs)
	rows := bucketRows(stack, grid)

	m := newMeasurement(grid, o.keepCells)
	counts := make([][numColors]int, grid.SY)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for j := range grid.SY {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			sampleRow(stack, rows[j], grid, j, &counts[j], m.Cells)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		hooks.OnSampleComplete(ctx, len(objs), grid.Total(), time.Since(start), err)
		return nil, err
	}

	m.collect(counts)
	hooks.OnSampleComplete(ctx, len(objs), grid.Total(), time.Since(start), nil)
	return m, nil
}

// topFirst returns the objects prepared for hit testing, topmost first.
func topFirst(objs []board.Object) []placed {
	order := make([]int, len(objs))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		if pa, pb := objs[a].Priority, objs[b].Priority; pa != pb {
			return pb - pa
		}
		return b - a
	})

	out := make([]placed, len(objs))
	for k, i := range order {
		o := objs[i]
		f := o.Frame()
		out[k] = placed{frame: f, bounds: f.Bounds(), shape: o.Shape, fill: o.Fill, color: o.Color}
	}
	return out
}

// bucketRows lists, for each sample row, the objects whose bounds reach
// it, keeping the top-first order.
func bucketRows(stack []placed, grid Grid) [][]int {
	rows := make([][]int, grid.SY)
	sy := float64(grid.SY)
	for k, p := range stack {
		lo := int(math.Ceil((p.bounds.Min.Y-boundsSlack)/100*sy - 0.5))
		hi := int(math.Floor((p.bounds.Max.Y+boundsSlack)/100*sy - 0.5))
		lo = max(lo, 0)
		hi = min(hi, grid.SY-1)
		for j := lo; j <= hi; j++ {
			rows[j] = append(rows[j], k)
		}
	}
	return rows
}

func sampleRow(stack []placed, row []int, grid Grid, j int, counts *[numColors]int, cells []palette.Color) {
	for i := range grid.SX {
		pt := grid.Point(i, j)
		c := palette.Background
		for _, k := range row {
			p := &stack[k]
			if pt.X < p.bounds.Min.X-boundsSlack || pt.X > p.bounds.Max.X+boundsSlack {
				continue
			}
			if p.frame.Covers(pt, p.shape, p.fill) {
				c = p.color
				break
			}
		}
		counts[c]++
		if cells != nil {
			cells[j*grid.SX+i] = c
		}
	}
}
