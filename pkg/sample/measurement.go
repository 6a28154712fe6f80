package sample

import (
	"github.com/mhuggins102-sudo/Estimate-Game/pkg/palette"
)

// Breakdown is the percentage of the canvas showing each color. All five
// colors are present, and the values sum to 100 up to rounding.
type Breakdown map[palette.Color]float64

// Playable returns the summed share of the playable colors.
func (b Breakdown) Playable() float64 {
	var sum float64
	for _, c := range palette.Playable {
		sum += b[c]
	}
	return sum
}

// Sum returns the total of all entries.
func (b Breakdown) Sum() float64 {
	var sum float64
	for _, v := range b {
		sum += v
	}
	return sum
}

// RowDistribution holds, for each color, the number of samples of that
// color in every grid row, top to bottom.
type RowDistribution map[palette.Color][]int

// Measurement is the result of sampling a board.
type Measurement struct {
	Grid   Grid                  `json:"grid"`
	Counts map[palette.Color]int `json:"counts"`
	Rows   RowDistribution       `json:"rows"`

	// Cells is the classified grid in row-major order. It is only set
	// when measuring with [WithGrid].
	Cells []palette.Color `json:"cells,omitempty"`
}

func newMeasurement(g Grid, keepCells bool) *Measurement {
	m := &Measurement{
		Grid:   g,
		Counts: make(map[palette.Color]int, len(palette.All)),
		Rows:   make(RowDistribution, len(palette.All)),
	}
	if keepCells {
		m.Cells = make([]palette.Color, g.Total())
	}
	return m
}

func (m *Measurement) collect(rows [][numColors]int) {
	for _, c := range palette.All {
		dist := make([]int, len(rows))
		total := 0
		for j, r := range rows {
			dist[j] = r[c]
			total += r[c]
		}
		m.Rows[c] = dist
		m.Counts[c] = total
	}
}

// Total is the number of samples taken.
func (m *Measurement) Total() int { return m.Grid.Total() }

// Breakdown converts counts to percentages of the canvas.
func (m *Measurement) Breakdown() Breakdown {
	b := make(Breakdown, len(palette.All))
	total := float64(m.Total())
	for _, c := range palette.All {
		b[c] = 100 * float64(m.Counts[c]) / total
	}
	return b
}

// At returns the classified color of sample (i, j). It reports Background
// when the grid was not kept.
func (m *Measurement) At(i, j int) palette.Color {
	if m.Cells == nil || i < 0 || j < 0 || i >= m.Grid.SX || j >= m.Grid.SY {
		return palette.Background
	}
	return m.Cells[j*m.Grid.SX+i]
}

// WithoutCells returns a copy of m that drops the classified grid.
func (m *Measurement) WithoutCells() *Measurement {
	cp := *m
	cp.Cells = nil
	return &cp
}
