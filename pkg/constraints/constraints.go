// Package constraints decides whether a measured board is good enough to
// play.
//
// A board is rejected when any playable color is (nearly) invisible or when
// too much of the canvas is left as background. Rejection is not an error:
// the pipeline simply generates another board, up to MaxAttempts retries,
// and then accepts the last one.
package constraints

import (
	"fmt"
	"strings"

	"github.com/mhuggins102-sudo/Estimate-Game/pkg/errors"
	"github.com/mhuggins102-sudo/Estimate-Game/pkg/palette"
	"github.com/mhuggins102-sudo/Estimate-Game/pkg/sample"
)

// Defaults.
const (
	DefaultMinColorAreaPct  = 0.5
	DefaultMaxBackgroundPct = 60.0
	DefaultMaxAttempts      = 6
)

// Constraints are the acceptance thresholds for a board.
type Constraints struct {
	// MinColorAreaPct is the smallest share, in percent, each playable
	// color must reach.
	MinColorAreaPct float64 `toml:"min_color_area_pct" json:"min_color_area_pct"`

	// MaxBackgroundPct is the largest share of uncovered canvas allowed.
	MaxBackgroundPct float64 `toml:"max_background_pct" json:"max_background_pct"`

	// MaxAttempts is the number of retries after the first board. The
	// generator therefore runs at most MaxAttempts+1 times.
	MaxAttempts int `toml:"max_attempts" json:"max_attempts"`
}

// Default returns the standard thresholds.
func Default() Constraints {
	return Constraints{
		MinColorAreaPct:  DefaultMinColorAreaPct,
		MaxBackgroundPct: DefaultMaxBackgroundPct,
		MaxAttempts:      DefaultMaxAttempts,
	}
}

// Validate checks that the thresholds are usable.
func (c Constraints) Validate() error {
	var errs errors.ValidationErrors
	errors.ValidateRange(&errs, "min_color_area_pct", c.MinColorAreaPct, 0, 25)
	errors.ValidateRange(&errs, "max_background_pct", c.MaxBackgroundPct, 0, 100)
	if c.MaxAttempts < 0 {
		errs.Add("max_attempts", "must not be negative, got %d", c.MaxAttempts)
	}
	return errs.Err(errors.ErrCodeInvalidConfig, "constraints")
}

// Kind names the rule a board broke.
type Kind string

const (
	TooLittleColor    Kind = "too_little_color"
	TooMuchBackground Kind = "too_much_background"
)

// Violation is one broken rule.
type Violation struct {
	Kind  Kind
	Color palette.Color
	Pct   float64
	Limit float64
}

func (v Violation) String() string {
	switch v.Kind {
	case TooLittleColor:
		return fmt.Sprintf("%s covers %.2f%% (min %.2f%%)", v.Color, v.Pct, v.Limit)
	case TooMuchBackground:
		return fmt.Sprintf("background covers %.2f%% (max %.2f%%)", v.Pct, v.Limit)
	}
	return string(v.Kind)
}

// Violations is the outcome of [Constraints.Check]. It is empty for an
// acceptable board.
type Violations []Violation

// OK reports whether no rule was broken.
func (vs Violations) OK() bool { return len(vs) == 0 }

func (vs Violations) String() string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = v.String()
	}
	return strings.Join(parts, "; ")
}

// Check evaluates a breakdown against the thresholds. Playable colors are
// checked in palette order, then the background.
func (c Constraints) Check(b sample.Breakdown) Violations {
	var vs Violations
	for _, col := range palette.Playable {
		if pct := b[col]; pct < c.MinColorAreaPct {
			vs = append(vs, Violation{Kind: TooLittleColor, Color: col, Pct: pct, Limit: c.MinColorAreaPct})
		}
	}
	if pct := b[palette.Background]; pct > c.MaxBackgroundPct {
		vs = append(vs, Violation{Kind: TooMuchBackground, Color: palette.Background, Pct: pct, Limit: c.MaxBackgroundPct})
	}
	return vs
}

// Accept reports whether b satisfies every threshold.
func (c Constraints) Accept(b sample.Breakdown) bool {
	return c.Check(b).OK()
}
