package layout

import (
	"math/rand/v2"
	"sync"

	"github.com/mhuggins102-sudo/Estimate-Game/pkg/errors"
)

// Selection modes.
const (
	// ModeBag deals every style once, in shuffled order, before any style
	// repeats.
	ModeBag = "bag"
	// ModeUniform picks a style uniformly at random on every call.
	ModeUniform = "uniform"
)

// Selector chooses the style for each new board.
//
// A Selector is safe for concurrent use. In bag mode it holds the remaining
// styles of the current deal, so one Selector should be shared by everything
// that wants the no-repeat guarantee (a CLI session, a server).
type Selector struct {
	mu   sync.Mutex
	rng  *rand.Rand
	mode string
	bag  []Style
}

// NewSelector returns a selector in bag mode that shuffles with rng.
func NewSelector(rng *rand.Rand) *Selector {
	return &Selector{rng: rng, mode: ModeBag}
}

// NewSelectorMode returns a selector using the given mode. An empty mode
// means [ModeBag].
func NewSelectorMode(rng *rand.Rand, mode string) (*Selector, error) {
	switch mode {
	case "", ModeBag:
		return NewSelector(rng), nil
	case ModeUniform:
		return &Selector{rng: rng, mode: ModeUniform}, nil
	}
	return nil, errors.New(errors.ErrCodeInvalidInput,
		"unknown selection mode %q (must be one of: %s, %s)", mode, ModeBag, ModeUniform)
}

// Mode returns the selection mode.
func (s *Selector) Mode() string { return s.mode }

// Next returns the next style.
func (s *Selector) Next() Style {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mode == ModeUniform {
		return styles[s.rng.IntN(len(styles))]
	}
	if len(s.bag) == 0 {
		s.bag = shuffled(s.rng, styles)
	}
	next := s.bag[len(s.bag)-1]
	s.bag = s.bag[:len(s.bag)-1]
	return next
}

// Remaining reports how many styles are left in the current deal. It is
// always zero in uniform mode.
func (s *Selector) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.bag)
}
