package pipeline

import (
	"math/rand/v2"
	"time"

	"github.com/mhuggins102-sudo/Estimate-Game/pkg/palette"
	"github.com/mhuggins102-sudo/Estimate-Game/pkg/sample"
)

// Round parameters.
const (
	// RoundDuration is how long a board is shown.
	RoundDuration = 3 * time.Second

	// ClassifiedFromLevel is the first level past which rounds may hide
	// the target color.
	ClassifiedFromLevel = 5

	classifiedChance = 0.6
)

// Round describes one guess: which color the player estimates, and how long
// the board is visible.
type Round struct {
	Level       int           `json:"level"`
	TargetColor palette.Color `json:"target_color"`
	Classified  bool          `json:"classified"`
	Duration    time.Duration `json:"duration"`

	// TargetArea is the true share of TargetColor, in percent. It is zero
	// until [Round.Resolve] is called.
	TargetArea float64 `json:"target_area"`
}

// NewRound draws the parameters of a round at level. The target color is
// uniform over the playable colors; past [ClassifiedFromLevel] a round is
// classified with probability 0.6.
func NewRound(level int, rng *rand.Rand) Round {
	target := palette.Playable[rng.IntN(len(palette.Playable))]
	classified := level > ClassifiedFromLevel && rng.Float64() > 1-classifiedChance
	return Round{
		Level:       level,
		TargetColor: target,
		Classified:  classified,
		Duration:    RoundDuration,
	}
}

// Resolve fills TargetArea from the measured board.
func (r *Round) Resolve(b sample.Breakdown) {
	r.TargetArea = b[r.TargetColor]
}
