package sink

import (
	"encoding/json"

	"github.com/google/uuid"

	"github.com/mhuggins102-sudo/Estimate-Game/pkg/board"
	"github.com/mhuggins102-sudo/Estimate-Game/pkg/sample"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonOutput)

// WithJSONSeed records the seed the board was generated from.
func WithJSONSeed(seed uint64) JSONOption {
	return func(o *jsonOutput) { o.Seed = &seed }
}

// WithJSONAttempts records how many boards were generated and whether the
// retries ran out.
func WithJSONAttempts(n int, exhausted bool) JSONOption {
	return func(o *jsonOutput) { o.Attempts = n; o.Exhausted = exhausted }
}

// WithJSONViolations records the constraints the board breaks.
func WithJSONViolations(v []string) JSONOption {
	return func(o *jsonOutput) { o.Violations = v }
}

// jsonOutput embeds the board fields at the top level so that the output
// can be read back as a board.
type jsonOutput struct {
	ID         uuid.UUID              `json:"id"`
	Style      string                 `json:"style,omitempty"`
	Seed       *uint64                `json:"seed,omitempty"`
	Objects    []board.Object         `json:"objects"`
	Grid       sample.Grid            `json:"grid"`
	Breakdown  sample.Breakdown       `json:"color_breakdown"`
	Rows       sample.RowDistribution `json:"row_distribution"`
	Attempts   int                    `json:"attempts,omitempty"`
	Exhausted  bool                   `json:"exhausted,omitempty"`
	Violations []string               `json:"violations,omitempty"`
}

// RenderJSON exports the board together with its measurement.
func RenderJSON(b *board.Board, m *sample.Measurement, opts ...JSONOption) ([]byte, error) {
	out := jsonOutput{
		ID:        b.ID,
		Style:     b.Style,
		Objects:   b.Objects,
		Grid:      m.Grid,
		Breakdown: m.Breakdown(),
		Rows:      m.Rows,
	}
	for _, opt := range opts {
		opt(&out)
	}
	return json.MarshalIndent(out, "", "  ")
}
