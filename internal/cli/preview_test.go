package cli

import (
	"context"
	"image"
	"io"
	"path/filepath"
	"testing"

	"github.com/mhuggins102-sudo/Estimate-Game/pkg/board"
	"github.com/mhuggins102-sudo/Estimate-Game/pkg/geometry"
	mosaicio "github.com/mhuggins102-sudo/Estimate-Game/pkg/io"
	"github.com/mhuggins102-sudo/Estimate-Game/pkg/palette"
	"github.com/mhuggins102-sudo/Estimate-Game/pkg/sample"
)

func TestPreviewFileUsesConfiguredResolution(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "band.json")
	b := &board.Board{Style: "hand-made", Objects: []board.Object{
		board.Solid("band", 0, 0, 100, 37, palette.Red, geometry.Rect{}, 0),
	}}
	if err := mosaicio.ExportJSON(b, path); err != nil {
		t.Fatal(err)
	}

	c := New(io.Discard, LogInfo)
	c.cfg.Sampler.Resolution = 200
	ctx := context.Background()
	runner, err := c.newRunner(ctx, true)
	if err != nil {
		t.Fatal(err)
	}
	defer runner.Close()

	opts := previewOpts{width: 4, breakdown: true}
	result, err := c.previewResult(ctx, runner, path, opts)
	if err != nil {
		t.Fatal(err)
	}
	if result.Measurement.Grid != sample.Square(200) {
		t.Errorf("grid = %+v, want 200x200", result.Measurement.Grid)
	}
	// A 4-row preview only sees the band in its first row.
	if got := result.Breakdown[palette.Red]; got != 37 {
		t.Errorf("red = %.2f%%, want 37%%", got)
	}
	if result.Violations.OK() {
		t.Error("a single-color board should break the constraints")
	}

	coarse, err := previewMeasurement(ctx, result.Board, opts.width)
	if err != nil {
		t.Fatal(err)
	}
	if got := coarse.Breakdown()[palette.Red]; got != 25 {
		t.Errorf("preview grid red = %.2f%%, want 25%%", got)
	}
}

func TestImageGrid(t *testing.T) {
	tests := []struct {
		name   string
		bounds image.Rectangle
		res    int
		want   sample.Grid
	}{
		{"square", image.Rect(0, 0, 400, 400), 100, sample.Grid{SX: 100, SY: 100}},
		{"wide", image.Rect(0, 0, 400, 200), 100, sample.Grid{SX: 100, SY: 50}},
		{"small image", image.Rect(0, 0, 30, 30), 100, sample.Grid{SX: 30, SY: 30}},
		{"empty", image.Rectangle{}, 50, sample.Square(50)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := imageGrid(tt.bounds, tt.res); got != tt.want {
				t.Errorf("imageGrid() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
