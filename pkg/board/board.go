package board

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/google/uuid"

	"github.com/mhuggins102-sudo/Estimate-Game/pkg/geometry"
	"github.com/mhuggins102-sudo/Estimate-Game/pkg/palette"
)

// Marker placement for colors a generator left out.
const (
	MarkerSize = 8.0
	markerMin  = 40.0
	markerMax  = 50.0
)

// namespace scopes board IDs derived by [NewID].
var namespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("mosaic:board"))

// Board is a complete, depth-sorted set of objects.
type Board struct {
	ID      uuid.UUID `json:"id"`
	Style   string    `json:"style"`
	Objects []Object  `json:"objects"`
}

// NewID derives a stable board ID from the inputs that produced it, so the
// same seed always yields the same ID.
func NewID(seed uint64, attempt int, style string) uuid.UUID {
	return uuid.NewSHA1(namespace, fmt.Appendf(nil, "%d/%d/%s", seed, attempt, style))
}

// Colors returns the set of colors used by the board's objects.
func (b *Board) Colors() map[palette.Color]bool {
	return usedColors(b.Objects)
}

func usedColors(objs []Object) map[palette.Color]bool {
	used := make(map[palette.Color]bool, len(palette.All))
	for _, o := range objs {
		used[o.Color] = true
	}
	return used
}

// EnsurePalette appends a solid [MarkerSize] circle near the canvas center
// for every playable color missing from objs. Markers are checked in
// palette order, and each one draws its position from rng.
func EnsurePalette(objs []Object, rng *rand.Rand) []Object {
	used := usedColors(objs)
	for _, c := range palette.Playable {
		if used[c] {
			continue
		}
		x := markerMin + rng.Float64()*(markerMax-markerMin)
		y := markerMin + rng.Float64()*(markerMax-markerMin)
		objs = append(objs, Solid("forced-"+c.String(), x, y, MarkerSize, MarkerSize, c, geometry.Circle{}, 0))
	}
	return objs
}

// SortByDepth orders objs back to front: descending box area, ties kept in
// their original order. Priority is then set to the index, so the smallest
// object ends up on top.
func SortByDepth(objs []Object) {
	slices.SortStableFunc(objs, func(a, b Object) int {
		switch aa, ba := a.Area(), b.Area(); {
		case aa > ba:
			return -1
		case aa < ba:
			return 1
		}
		return 0
	})
	for i := range objs {
		objs[i].Priority = i
	}
}

// Validate checks that a decoded board can be measured.
func (b *Board) Validate() error {
	if len(b.Objects) == 0 {
		return fmt.Errorf("board has no objects")
	}
	for i, o := range b.Objects {
		if o.Shape == nil {
			return fmt.Errorf("object %d (%s): missing shape", i, o.ID)
		}
		if !o.Color.Valid() {
			return fmt.Errorf("object %d (%s): invalid color", i, o.ID)
		}
		if o.W <= 0 || o.H <= 0 {
			return fmt.Errorf("object %d (%s): non-positive size", i, o.ID)
		}
	}
	return nil
}
