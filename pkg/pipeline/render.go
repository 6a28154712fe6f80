package pipeline

import (
	"fmt"

	"github.com/mhuggins102-sudo/Estimate-Game/pkg/errors"
	"github.com/mhuggins102-sudo/Estimate-Game/pkg/render/sink"
	"github.com/mhuggins102-sudo/Estimate-Game/pkg/sample"
)

// Render generates output artifacts in the requested formats without
// touching the cache. PNG needs the classified grid; when the result's
// measurement does not carry one, the board is sampled again on the same
// grid.
func Render(result *Result, opts Options) (map[string][]byte, error) {
	if result == nil || result.Board == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "nothing to render")
	}
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}

	m := result.Measurement
	if m == nil {
		m = sample.Measure(result.Board.Objects, opts.Grid())
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data = sink.RenderSVG(result.Board, sink.WithSize(opts.Size))
		case FormatPNG:
			if m.Cells == nil {
				m = sample.Measure(result.Board.Objects, m.Grid, sample.WithGrid(), sample.WithWorkers(opts.Workers))
			}
			data, err = sink.RenderPNG(m, sink.WithPNGSize(opts.Size))
		case FormatJSON:
			data, err = sink.RenderJSON(result.Board, m, jsonOptions(result)...)
		default:
			return nil, fmt.Errorf("unsupported format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

func jsonOptions(result *Result) []sink.JSONOption {
	var opts []sink.JSONOption
	if result.Attempts > 0 {
		opts = append(opts,
			sink.WithJSONSeed(result.Seed),
			sink.WithJSONAttempts(result.Attempts, result.Exhausted))
	}
	if !result.Violations.OK() {
		v := make([]string, len(result.Violations))
		for i, x := range result.Violations {
			v[i] = x.String()
		}
		opts = append(opts, sink.WithJSONViolations(v))
	}
	return opts
}
