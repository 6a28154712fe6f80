package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/mhuggins102-sudo/Estimate-Game/pkg/board"
	"github.com/mhuggins102-sudo/Estimate-Game/pkg/constraints"
	"github.com/mhuggins102-sudo/Estimate-Game/pkg/geometry"
	"github.com/mhuggins102-sudo/Estimate-Game/pkg/palette"
	"github.com/mhuggins102-sudo/Estimate-Game/pkg/sample"
)

func TestGridViewRows(t *testing.T) {
	objs := []board.Object{board.Solid("bg", 0, 0, 100, 100, palette.Red, geometry.Rect{}, 0)}

	tests := []struct {
		width int
		lines int
	}{
		{2, 1},
		{5, 3},
		{20, 10},
	}
	for _, tt := range tests {
		m, err := previewMeasurement(context.Background(), &board.Board{Objects: objs}, tt.width)
		if err != nil {
			t.Fatal(err)
		}
		view := gridView(m)
		if got := strings.Count(view, "\n"); got != tt.lines {
			t.Errorf("width %d: %d lines, want %d", tt.width, got, tt.lines)
		}
		if got := strings.Count(view, "▀"); got != tt.width*tt.lines {
			t.Errorf("width %d: %d cells, want %d", tt.width, got, tt.width*tt.lines)
		}
	}
}

func TestBreakdownTable(t *testing.T) {
	b := sample.Breakdown{
		palette.Red:        40,
		palette.Blue:       30,
		palette.Green:      20,
		palette.Yellow:     0.25,
		palette.Background: 9.75,
	}
	vs := constraints.Default().Check(b)
	if vs.OK() {
		t.Fatal("yellow at 0.25% should break the default constraints")
	}

	out := breakdownTable(b, vs)
	for _, c := range palette.All {
		if !strings.Contains(out, c.String()) {
			t.Errorf("table is missing %s", c)
		}
	}
	if !strings.Contains(out, "40.00%") || !strings.Contains(out, "0.25%") {
		t.Errorf("table is missing percentages:\n%s", out)
	}
	if strings.Count(out, iconWarning) != 1 {
		t.Errorf("exactly one row should be marked:\n%s", out)
	}
}

func TestBoardStats(t *testing.T) {
	line := boardStats(12, 3, true)
	for _, want := range []string{"12 objects", "3 attempts", iconCached} {
		if !strings.Contains(line, want) {
			t.Errorf("boardStats() = %q, missing %q", line, want)
		}
	}
	if strings.Contains(boardStats(4, 0, false), "attempts") {
		t.Error("measured boards have no attempt count")
	}
}

func TestStylesTable(t *testing.T) {
	out := stylesTable()
	for _, name := range []string{"voronoi", "bold-blocks", "text-grid"} {
		if !strings.Contains(out, name) {
			t.Errorf("styles table is missing %s", name)
		}
	}
}

func TestCompleteStyles(t *testing.T) {
	got, _ := completeStyles(nil, nil, "wav")
	if len(got) != 2 {
		t.Fatalf("completeStyles(wav) = %v, want wavy-stripes and wave-rings", got)
	}
	for _, g := range got {
		if !strings.HasPrefix(g, "wav") {
			t.Errorf("unexpected completion %q", g)
		}
	}
}
