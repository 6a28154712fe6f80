package layout

import (
	"fmt"
	"math/rand/v2"
	"reflect"
	"testing"

	"github.com/mhuggins102-sudo/Estimate-Game/pkg/board"
	"github.com/mhuggins102-sudo/Estimate-Game/pkg/constraints"
	"github.com/mhuggins102-sudo/Estimate-Game/pkg/errors"
	"github.com/mhuggins102-sudo/Estimate-Game/pkg/geometry"
	"github.com/mhuggins102-sudo/Estimate-Game/pkg/palette"
	"github.com/mhuggins102-sudo/Estimate-Game/pkg/sample"
)

func newRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
}

func TestGeneratorsProduceValidObjects(t *testing.T) {
	for _, s := range All() {
		t.Run(s.Name, func(t *testing.T) {
			for seed := uint64(1); seed <= 20; seed++ {
				objs := s.Generate(newRNG(seed))
				if len(objs) == 0 {
					t.Fatalf("seed %d: no objects", seed)
				}
				ids := make(map[string]bool, len(objs))
				for _, o := range objs {
					if o.W <= 0 || o.H <= 0 {
						t.Fatalf("seed %d: %s has size %vx%v", seed, o.ID, o.W, o.H)
					}
					if !o.Color.IsPlayable() {
						t.Fatalf("seed %d: %s has non-playable color %v", seed, o.ID, o.Color)
					}
					if o.Shape == nil {
						t.Fatalf("seed %d: %s has no shape", seed, o.ID)
					}
					if o.Fill.Hollow && (o.Fill.Stroke < geometry.MinStroke || o.Fill.Stroke > geometry.MaxStroke) {
						t.Fatalf("seed %d: %s stroke %v out of range", seed, o.ID, o.Fill.Stroke)
					}
					if ids[o.ID] {
						t.Fatalf("seed %d: duplicate id %s", seed, o.ID)
					}
					ids[o.ID] = true
				}
			}
		})
	}
}

func TestGeneratorsDeterministic(t *testing.T) {
	for _, s := range All() {
		a := s.Generate(newRNG(99))
		b := s.Generate(newRNG(99))
		if !reflect.DeepEqual(a, b) {
			t.Errorf("%s: same seed produced different boards", s.Name)
		}
	}
}

// Every style has to produce playable boards on its own; a style that is
// always rejected never reaches a player.
func TestStylesPassDefaultConstraints(t *testing.T) {
	const seeds = 40
	limits := constraints.Default()

	for _, s := range All() {
		t.Run(s.Name, func(t *testing.T) {
			accepted := 0
			var background float64
			for seed := uint64(1); seed <= seeds; seed++ {
				rng := newRNG(seed)
				objs := board.EnsurePalette(s.Generate(rng), rng)
				board.SortByDepth(objs)
				b := sample.Measure(objs, sample.Square(120)).Breakdown()
				background += b[palette.Background]
				if limits.Accept(b) {
					accepted++
				}
			}
			if accepted < seeds/4 {
				t.Errorf("%d/%d boards accepted, mean background %.1f%%",
					accepted, seeds, background/seeds)
			}
		})
	}
}

func TestPackedStep(t *testing.T) {
	tests := []struct {
		name     string
		ink      float64
		min, max float64
	}{
		{"solid", 1, 10, 12},
		{"at reference", inkRef, 10, 12},
		{"sparse", inkRef / 4, 10 * minPack, 12 * minPack},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for seed := range uint64(10) {
				got := packedStep(newRNG(seed), 10, tt.ink, 1.0, 1.2)
				if got < tt.min || got >= tt.max {
					t.Errorf("packedStep = %v, want [%v, %v)", got, tt.min, tt.max)
				}
			}
		})
	}
}

func TestScatteredAddsCopiesForSparseShapes(t *testing.T) {
	// Thin outlines paint less per copy, so boards made of them need more
	// copies to reach the same painted area.
	var solid, hollow []int
	for seed := range uint64(200) {
		objs := Scattered(newRNG(seed))
		if objs[0].Fill.Hollow {
			hollow = append(hollow, len(objs))
		} else if objs[0].Shape == circle {
			solid = append(solid, len(objs))
		}
	}
	if len(solid) == 0 || len(hollow) == 0 {
		t.Fatalf("seeds gave %d solid and %d hollow circle boards", len(solid), len(hollow))
	}
	if mean(hollow) <= mean(solid) {
		t.Errorf("hollow boards average %.0f objects, solid circles %.0f", mean(hollow), mean(solid))
	}
}

func mean(xs []int) float64 {
	var sum float64
	for _, x := range xs {
		sum += float64(x)
	}
	return sum / float64(len(xs))
}

func TestTextGridUsesFontGlyphs(t *testing.T) {
	for _, r := range textChars {
		if *geometry.MaskFor(r) == *geometry.MaskFor(geometry.DefaultGlyph) && r != geometry.DefaultGlyph {
			t.Errorf("%q falls back to the default glyph", r)
		}
	}
}

func TestBoldBlocksCoversAllColors(t *testing.T) {
	for seed := uint64(0); seed < 50; seed++ {
		objs := BoldBlocks(newRNG(seed))
		if len(objs) < 4 {
			t.Fatalf("seed %d: only %d blocks", seed, len(objs))
		}
		seen := map[string]bool{}
		for _, o := range objs {
			seen[o.Color.String()] = true
		}
		if len(seen) != 4 {
			t.Errorf("seed %d: colors %v", seed, seen)
		}
	}
}

func TestConcentricShrinks(t *testing.T) {
	objs := Concentric(newRNG(3))
	for i := 1; i < len(objs); i++ {
		if objs[i].W >= objs[i-1].W {
			t.Fatalf("layer %d (%v) not smaller than layer %d (%v)", i, objs[i].W, i-1, objs[i-1].W)
		}
	}
}

func TestByName(t *testing.T) {
	for _, name := range Names() {
		s, err := ByName(name)
		if err != nil || s.Name != name {
			t.Errorf("ByName(%q) = %v, %v", name, s.Name, err)
		}
	}
	if s, err := ByName("Wavy_Stripes"); err != nil || s.Name != "wavy-stripes" {
		t.Errorf("ByName(Wavy_Stripes) = %v, %v", s.Name, err)
	}
	_, err := ByName("plaid")
	if !errors.Is(err, errors.ErrCodeInvalidStyle) {
		t.Errorf("ByName(plaid) error = %v, want INVALID_STYLE", err)
	}
	if len(Names()) != 13 {
		t.Errorf("len(Names()) = %d, want 13", len(Names()))
	}
}

func TestSelectorBagDealsEachStyleOnce(t *testing.T) {
	sel := NewSelector(newRNG(5))
	n := len(All())

	for round := range 3 {
		seen := make(map[string]bool, n)
		for range n {
			s := sel.Next()
			if seen[s.Name] {
				t.Fatalf("round %d: %s dealt twice", round, s.Name)
			}
			seen[s.Name] = true
		}
		if sel.Remaining() != 0 {
			t.Fatalf("round %d: %d styles left", round, sel.Remaining())
		}
	}
}

func TestSelectorUniform(t *testing.T) {
	sel, err := NewSelectorMode(newRNG(5), ModeUniform)
	if err != nil {
		t.Fatal(err)
	}
	counts := map[string]int{}
	for range 1300 {
		counts[sel.Next().Name]++
	}
	if len(counts) != 13 {
		t.Errorf("uniform selector reached %d styles", len(counts))
	}
	if sel.Remaining() != 0 {
		t.Error("uniform selector has no bag")
	}

	if _, err := NewSelectorMode(newRNG(1), "roulette"); err == nil {
		t.Error("unknown mode should fail")
	}
}

func TestSelectorConcurrent(t *testing.T) {
	sel := NewSelector(newRNG(8))
	done := make(chan string, 26)
	for range 26 {
		go func() { done <- sel.Next().Name }()
	}
	counts := map[string]int{}
	for range 26 {
		counts[<-done]++
	}
	for name, c := range counts {
		if c != 2 {
			t.Errorf("%s dealt %d times across two bags", name, c)
		}
	}
}

func ExampleByName() {
	s, _ := ByName("voronoi")
	fmt.Println(s.Name, "-", s.Description)
	// Output: voronoi - tile field colored by nearest seed
}
