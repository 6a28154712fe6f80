package pipeline

import (
	"math/rand/v2"

	"github.com/mhuggins102-sudo/Estimate-Game/pkg/board"
	"github.com/mhuggins102-sudo/Estimate-Game/pkg/layout"
)

// =============================================================================
// Board Generation
// =============================================================================

// NewRand returns the PCG stream for seed. Every run owns its stream, so the
// same seed and style sequence always produce the same boards.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
}

// Build runs one generator and turns its objects into a playable board:
// missing colors get a marker and the objects are depth-sorted.
func Build(style layout.Style, rng *rand.Rand, seed uint64, attempt int) *board.Board {
	objs := style.Generate(rng)
	objs = board.EnsurePalette(objs, rng)
	board.SortByDepth(objs)
	return &board.Board{
		ID:      board.NewID(seed, attempt, style.Name),
		Style:   style.Name,
		Objects: objs,
	}
}

// stylePicker returns the style source for one run. A forced style wins;
// otherwise the runner's shared selector is used when its mode matches the
// requested one, and a selector private to this run is created when not.
func (r *Runner) stylePicker(opts Options, rng *rand.Rand) (func() layout.Style, error) {
	if opts.Style != "" {
		s, err := layout.ByName(opts.Style)
		if err != nil {
			return nil, err
		}
		return func() layout.Style { return s }, nil
	}

	sel := r.Selector
	if sel == nil || (opts.Selection != "" && opts.Selection != sel.Mode()) {
		var err error
		if sel, err = layout.NewSelectorMode(rng, opts.Selection); err != nil {
			return nil, err
		}
	}
	return sel.Next, nil
}
