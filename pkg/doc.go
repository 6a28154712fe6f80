// Package pkg provides the core libraries for mosaic boards.
//
// # Overview
//
// Mosaic builds boards for a color-estimation game: a canvas covered by
// overlapping colored shapes, where the player guesses how much of the
// canvas one color covers. The pkg directory is organized into four areas:
//
//  1. Domain: [palette], [geometry], [board], [layout], [sample], [constraints]
//  2. Orchestration: [pipeline] (generate → measure → accept → render)
//  3. Output: [render/sink] (SVG, PNG, JSON) and [io] (board files)
//  4. Infrastructure: [cache], [config], [errors], [observability], [buildinfo]
//
// # Architecture
//
// The typical data flow:
//
//	style (layout.Selector)
//	         ↓
//	    [layout] generator → objects
//	         ↓
//	    [board] missing-color markers + depth sort
//	         ↓
//	    [sample] area measurement on a grid
//	         ↓
//	    [constraints] accept, or retry with a new style
//	         ↓
//	    SVG/PNG/JSON output
//
// # Quick Start
//
//	runner := pipeline.NewRunner(nil, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Seed:    42,
//	    Formats: []string{"svg"},
//	})
//	if err != nil {
//	    return err
//	}
//	os.WriteFile("board.svg", result.Artifacts["svg"], 0o644)
//	fmt.Printf("red covers %.1f%%\n", result.Breakdown[palette.Red])
package pkg
