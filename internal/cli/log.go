// Package cli implements the mosaic command-line interface.
//
// The CLI generates boards, measures boards from files, previews them in
// the terminal and serves the HTTP API. It is built with cobra and logs
// through charmbracelet/log.
//
// # Commands
//
//   - generate: Generate boards and write SVG, PNG or JSON
//   - measure: Measure the color areas of a board file
//   - preview: Draw a board in the terminal
//   - browse: Step through boards interactively
//   - styles: List the generator styles
//   - serve: Run the HTTP API
//   - cache: Manage the measurement cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which also
// reports every rejected board and cache lookup. Loggers are passed through
// context.Context.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress logs the completion of an operation with its elapsed time.
// It is not safe for concurrent use.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time, e.g. "Generated 5 boards (1.234s)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, or log.Default() when
// none is attached.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
