package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/mhuggins102-sudo/Estimate-Game/pkg/board"
	"github.com/mhuggins102-sudo/Estimate-Game/pkg/cache"
	"github.com/mhuggins102-sudo/Estimate-Game/pkg/layout"
	"github.com/mhuggins102-sudo/Estimate-Game/pkg/observability"
	"github.com/mhuggins102-sudo/Estimate-Game/pkg/palette"
	"github.com/mhuggins102-sudo/Estimate-Game/pkg/sample"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API use it to avoid duplicating the retry and caching logic.
//
// The Runner does not store results. Multiple goroutines can use the same
// Runner with different options; the shared Selector is itself safe for
// concurrent use.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	// Selector picks styles when a run does not force one. Nil means every
	// run shuffles its own deal from its seed.
	Selector *layout.Selector

	// MeasureTTL is how long measurements stay cached. Zero means
	// cache.TTLMeasurement.
	MeasureTTL time.Duration
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
// If logger is nil, log output is discarded.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute generates a board and renders it in the requested formats.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result, err := r.Generate(ctx, opts)
	if err != nil {
		return nil, err
	}

	renderStart := time.Now()
	artifacts, hit, err := r.RenderWithCacheInfo(ctx, result, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = hit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Generate produces a board that passes the constraints, retrying with a
// fresh style pick each time one is rejected. After MaxAttempts retries the
// last board is returned with Exhausted set. Rejected boards are not errors;
// Generate only fails on invalid options or cancellation.
func (r *Runner) Generate(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForGenerate(); err != nil {
		return nil, err
	}

	start := time.Now()
	rng := NewRand(opts.Seed)
	next, err := r.stylePicker(opts, rng)
	if err != nil {
		return nil, err
	}

	hooks := observability.Generation()
	limits := *opts.Constraints
	result := &Result{Seed: opts.Seed}

	for attempt := 0; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		style := next()
		hooks.OnAttempt(ctx, style.Name, attempt)

		genStart := time.Now()
		b := Build(style, rng, opts.Seed, attempt)
		result.Stats.GenerateTime += time.Since(genStart)

		measureStart := time.Now()
		m, hit, err := r.MeasureWithCacheInfo(ctx, b, opts)
		if err != nil {
			return nil, fmt.Errorf("measure: %w", err)
		}
		result.Stats.MeasureTime += time.Since(measureStart)
		if hit {
			result.CacheInfo.MeasureHits++
		}

		result.Board = b
		result.Measurement = m
		result.Attempts = attempt + 1
		result.Violations = limits.Check(m.Breakdown())

		if result.Violations.OK() {
			break
		}

		hooks.OnReject(ctx, style.Name, attempt, result.Violations.String())
		r.Logger.Debug("rejected board",
			"style", style.Name,
			"attempt", attempt,
			"reason", result.Violations.String())

		if attempt >= limits.MaxAttempts {
			result.Exhausted = true
			r.Logger.Warn("no board passed the constraints, keeping the last one",
				"attempts", result.Attempts,
				"style", style.Name,
				"reason", result.Violations.String())
			break
		}
	}

	result.Breakdown = result.Measurement.Breakdown()
	result.Rows = result.Measurement.Rows
	result.Stats.Objects = len(result.Board.Objects)
	hooks.OnAccept(ctx, result.Board.Style, result.Attempts, result.Exhausted, time.Since(start))

	r.Logger.Info("generated board",
		"seed", opts.Seed,
		"style", result.Board.Style,
		"objects", result.Stats.Objects,
		"attempts", result.Attempts,
		"duration", time.Since(start))

	return result, nil
}

// Measure samples a caller-supplied board and reports which constraints it
// breaks. The board is used as given: it is neither re-sorted nor given
// missing-color markers.
func (r *Runner) Measure(ctx context.Context, b *board.Board, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForMeasure(); err != nil {
		return nil, err
	}

	start := time.Now()
	m, hit, err := r.MeasureWithCacheInfo(ctx, b, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Board:       b,
		Measurement: m,
		Breakdown:   m.Breakdown(),
		Rows:        m.Rows,
		Violations:  opts.Constraints.Check(m.Breakdown()),
	}
	result.Stats.Objects = len(b.Objects)
	result.Stats.MeasureTime = time.Since(start)
	if hit {
		result.CacheInfo.MeasureHits = 1
	}

	r.Logger.Info("measured board",
		"objects", result.Stats.Objects,
		"background", fmt.Sprintf("%.2f%%", result.Breakdown[palette.Background]),
		"cached", hit,
		"duration", result.Stats.MeasureTime)

	return result, nil
}

// MeasureWithCacheInfo samples b on the options' grid, using the cache
// when possible, and reports whether the result came from the cache.
// Cache failures are ignored and the board is sampled.
func (r *Runner) MeasureWithCacheInfo(ctx context.Context, b *board.Board, opts Options) (*sample.Measurement, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForMeasure(); err != nil {
		return nil, false, err
	}
	grid := opts.Grid()

	var key string
	if hash, err := cache.HashJSON(b.Objects); err == nil {
		key = r.Keyer.MeasureKey(hash, opts.MeasureKeyOpts())
	}

	if key != "" && !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			var m sample.Measurement
			if err := json.Unmarshal(data, &m); err == nil && m.Grid == grid {
				observability.Cache().OnCacheHit(ctx, "measure")
				return &m, true, nil
			}
			// Undecodable entries fall through and are overwritten.
		} else if err != nil {
			r.Logger.Debug("cache read failed", "error", err)
		}
		observability.Cache().OnCacheMiss(ctx, "measure")
	}

	m, err := sample.MeasureContext(ctx, b.Objects, grid, sample.WithWorkers(opts.Workers))
	if err != nil {
		return nil, false, err
	}

	if key != "" {
		if data, err := json.Marshal(m); err == nil {
			if err := r.Cache.Set(ctx, key, data, r.measureTTL()); err == nil {
				observability.Cache().OnCacheSet(ctx, "measure", len(data))
			} else {
				r.Logger.Debug("cache write failed", "error", err)
			}
		}
	}

	return m, false, nil
}

// RenderWithCacheInfo renders result in every requested format and reports
// whether all artifacts came from the cache. JSON reports carry per-run
// fields (attempts, violations) and are always rendered fresh.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, result *Result, opts Options) (map[string][]byte, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}

	hash, err := cache.HashJSON(result.Board.Objects)
	if err != nil {
		return nil, false, fmt.Errorf("hash board: %w", err)
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	var missing []string
	for _, format := range opts.Formats {
		if format == FormatJSON {
			missing = append(missing, format)
			continue
		}
		key := r.Keyer.ArtifactKey(hash, opts.ArtifactKeyOpts(format))
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			observability.Cache().OnCacheHit(ctx, "artifact")
			artifacts[format] = data
			continue
		}
		observability.Cache().OnCacheMiss(ctx, "artifact")
		missing = append(missing, format)
	}

	if len(missing) == 0 {
		return artifacts, true, nil
	}

	renderOpts := opts
	renderOpts.Formats = missing
	rendered, err := Render(result, renderOpts)
	if err != nil {
		return nil, false, err
	}

	for format, data := range rendered {
		artifacts[format] = data
		if format == FormatJSON {
			continue
		}
		key := r.Keyer.ArtifactKey(hash, opts.ArtifactKeyOpts(format))
		if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err == nil {
			observability.Cache().OnCacheSet(ctx, "artifact", len(data))
		}
	}

	return artifacts, false, nil
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and discards the cache hit info.
func (r *Runner) Render(ctx context.Context, result *Result, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, result, opts)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func (r *Runner) measureTTL() time.Duration {
	if r.MeasureTTL > 0 {
		return r.MeasureTTL
	}
	return cache.TTLMeasurement
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
