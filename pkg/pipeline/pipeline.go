// Package pipeline runs the generate → measure → accept loop that produces
// playable boards, and renders the results.
//
// CLI and HTTP server both go through a [Runner] so that retries, caching
// and logging behave the same everywhere.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	runner.Selector = layout.NewSelector(rng) // optional, shared across calls
//
//	result, err := runner.Generate(ctx, pipeline.Options{Seed: 7})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Board.Style, result.Breakdown[palette.Red])
//
// Measure a board that came from elsewhere:
//
//	b, _ := io.ImportJSON("board.json")
//	result, err := runner.Measure(ctx, b, pipeline.Options{})
//
// Render artifacts:
//
//	artifacts, err := runner.Render(ctx, result, pipeline.Options{Formats: []string{"svg", "png"}})
//
// # Retries
//
// A board is generated, measured and checked against the [constraints].
// A rejected board is thrown away and a new one generated with a fresh
// style pick, up to Constraints.MaxAttempts retries. When every attempt
// fails the last board is kept and [Result.Exhausted] is set.
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/mhuggins102-sudo/Estimate-Game/pkg/board"
	"github.com/mhuggins102-sudo/Estimate-Game/pkg/cache"
	"github.com/mhuggins102-sudo/Estimate-Game/pkg/constraints"
	"github.com/mhuggins102-sudo/Estimate-Game/pkg/errors"
	"github.com/mhuggins102-sudo/Estimate-Game/pkg/layout"
	"github.com/mhuggins102-sudo/Estimate-Game/pkg/sample"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultResolution is the side of the square sampling grid.
	DefaultResolution = sample.DefaultResolution

	// MaxResolution bounds request-supplied grids.
	MaxResolution = 2000

	// DefaultSize is the default pixel width of rendered artifacts.
	DefaultSize = 700

	// MaxSize bounds request-supplied artifact sizes.
	MaxSize = 4096
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatJSON: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options configures a pipeline run. It supports JSON for API requests.
type Options struct {
	// Generation options
	Seed      uint64 `json:"seed"`
	Style     string `json:"style,omitempty"`     // force one style for every attempt
	Selection string `json:"selection,omitempty"` // "bag" or "uniform"

	// Measurement options
	Resolution  int                      `json:"resolution,omitempty"`
	Constraints *constraints.Constraints `json:"constraints,omitempty"`
	Refresh     bool                     `json:"refresh,omitempty"` // ignore cached measurements

	// Render options
	Formats []string `json:"formats,omitempty"`
	Size    int      `json:"size,omitempty"`

	// Runtime options (not serialized)
	Workers int         `json:"-"`
	Logger  *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result is the outcome of a pipeline run.
type Result struct {
	// Seed is the seed the board was generated from.
	Seed uint64

	// Board is the accepted board, depth-sorted.
	Board *board.Board

	// Measurement holds the raw sample counts of Board.
	Measurement *sample.Measurement

	// Breakdown is the percentage of the canvas per color.
	Breakdown sample.Breakdown

	// Rows is the per-row sample count per color.
	Rows sample.RowDistribution

	// Violations lists the constraints Board breaks. It is empty unless
	// Exhausted is set or the board was supplied by the caller.
	Violations constraints.Violations

	// Attempts is the number of boards generated. It is zero for measured
	// boards.
	Attempts int

	// Exhausted is set when no attempt passed the constraints and the last
	// board was kept anyway.
	Exhausted bool

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Objects      int
	GenerateTime time.Duration
	MeasureTime  time.Duration
	RenderTime   time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	MeasureHits int  // Number of measurements served from cache
	RenderHit   bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: svg, png, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks every field and applies defaults for a full
// run. It is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForGenerate(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForGenerate checks the generation and measurement fields.
func (o *Options) ValidateForGenerate() error {
	if o.Style != "" {
		if _, err := layout.ByName(o.Style); err != nil {
			return err
		}
	}
	switch o.Selection {
	case "", layout.ModeBag, layout.ModeUniform:
	default:
		return errors.New(errors.ErrCodeInvalidInput,
			"invalid selection: %q (must be one of: bag, uniform)", o.Selection)
	}
	return o.ValidateForMeasure()
}

// ValidateForMeasure checks the measurement fields and applies their
// defaults.
func (o *Options) ValidateForMeasure() error {
	o.SetMeasureDefaults()
	if o.Resolution < 1 || o.Resolution > MaxResolution {
		return errors.New(errors.ErrCodeInvalidInput,
			"invalid resolution: %d (must be between 1 and %d)", o.Resolution, MaxResolution)
	}
	return o.Constraints.Validate()
}

// SetMeasureDefaults sets default values for measurement.
func (o *Options) SetMeasureDefaults() {
	if o.Resolution == 0 {
		o.Resolution = DefaultResolution
	}
	if o.Constraints == nil {
		c := constraints.Default()
		o.Constraints = &c
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Size == 0 {
		o.Size = DefaultSize
	}
	if o.Resolution == 0 {
		o.Resolution = DefaultResolution
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if o.Size < 1 || o.Size > MaxSize {
		return errors.New(errors.ErrCodeInvalidInput,
			"invalid size: %d (must be between 1 and %d)", o.Size, MaxSize)
	}
	return ValidateFormats(o.Formats)
}

// Grid returns the sampling grid.
func (o *Options) Grid() sample.Grid {
	return sample.Square(o.Resolution)
}

// MeasureKeyOpts returns cache key options for measurement.
func (o *Options) MeasureKeyOpts() cache.MeasureKeyOpts {
	g := o.Grid()
	return cache.MeasureKeyOpts{SX: g.SX, SY: g.SY}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format: format,
		Size:   o.Size,
		Grid:   o.Resolution,
	}
}
