package layout

import (
	"math/rand/v2"
	"strings"

	"github.com/mhuggins102-sudo/Estimate-Game/pkg/board"
	"github.com/mhuggins102-sudo/Estimate-Game/pkg/errors"
)

// Generator produces the raw objects of a board. Generators draw all of
// their randomness from rng and have no other inputs, so a seeded rng gives
// a reproducible board. The result is unsorted and may miss colors.
type Generator func(rng *rand.Rand) []board.Object

// Style is a named generator.
type Style struct {
	Name        string
	Description string
	Generate    Generator
}

var styles = []Style{
	{"regular-grid", "one shape tiled in colored bands", RegularGrid},
	{"concentric", "nested copies of one shape around a center", Concentric},
	{"scattered", "many copies of one shape at random", Scattered},
	{"bold-blocks", "rectangles partitioning the canvas", BoldBlocks},
	{"parallel-stripes", "straight bands, solid or tiled", ParallelStripes},
	{"large-overlap", "a few big shapes with small accents", LargeOverlap},
	{"wavy-stripes", "tile field with sine-bent stripes", WavyStripes},
	{"radial-pie", "tile field colored by angle", RadialPie},
	{"wave-rings", "tile field colored by distance", WaveRings},
	{"text-grid", "characters in a grid or scattered", TextGrid},
	{"voronoi", "tile field colored by nearest seed", Voronoi},
	{"staggered-dots", "offset halftone grid", StaggeredDots},
	{"mixed-shapes", "grid cycling through several shapes", MixedShapes},
}

// All returns every registered style in a fixed order.
func All() []Style {
	return append([]Style(nil), styles...)
}

// Names returns the names of all registered styles.
func Names() []string {
	names := make([]string, len(styles))
	for i, s := range styles {
		names[i] = s.Name
	}
	return names
}

// ByName looks up a style. Matching ignores case, and underscores are
// accepted in place of dashes.
func ByName(name string) (Style, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	for _, s := range styles {
		if s.Name == key {
			return s, nil
		}
	}
	return Style{}, errors.New(errors.ErrCodeInvalidStyle,
		"unknown style %q (must be one of: %s)", name, strings.Join(Names(), ", "))
}
