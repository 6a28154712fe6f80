package geometry

import (
	"math"
	"testing"

	"github.com/jbeda/geom"
)

func TestContainsSolidShapes(t *testing.T) {
	tests := []struct {
		name  string
		shape Shape
		x, y  float64
		want  bool
	}{
		{"rect center", Rect{}, 0.5, 0.5, true},
		{"rect corner", Rect{}, 0.0, 1.0, true},
		{"circle center", Circle{}, 0.5, 0.5, true},
		{"circle edge", Circle{}, 1.0, 0.5, true},
		{"circle corner", Circle{}, 0.05, 0.05, false},
		{"triangle center", Polygon{Kind: Triangle}, 0.5, 0.7, true},
		{"triangle top corner", Polygon{Kind: Triangle}, 0.1, 0.1, false},
		{"diamond center", Polygon{Kind: Diamond}, 0.5, 0.5, true},
		{"diamond corner", Polygon{Kind: Diamond}, 0.1, 0.1, false},
		{"star center", Polygon{Kind: Star}, 0.5, 0.5, true},
		{"star notch", Polygon{Kind: Star}, 0.5, 0.85, false},
		{"six star center", Polygon{Kind: SixPointStar}, 0.5, 0.5, true},
		{"six star top tip", Polygon{Kind: SixPointStar}, 0.5, 0.1, true},
		{"six star bottom tip", Polygon{Kind: SixPointStar}, 0.5, 0.9, true},
		{"arrow shaft", Polygon{Kind: Arrow}, 0.5, 0.8, true},
		{"arrow beside shaft", Polygon{Kind: Arrow}, 0.1, 0.8, false},
		{"heart left lobe", Heart{}, 0.3, 0.25, true},
		{"heart lower body", Heart{}, 0.5, 0.6, true},
		{"heart notch", Heart{}, 0.5, 0.08, false},
		{"heart below tip", Heart{}, 0.5, 0.9, false},
		{"heart bottom corner", Heart{}, 0.1, 0.8, false},
		{"outside square", Rect{}, 1.2, 0.5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Contains(tt.x, tt.y, tt.shape, Solid); got != tt.want {
				t.Errorf("Contains(%v, %v, %s) = %v, want %v", tt.x, tt.y, tt.shape.Name(), got, tt.want)
			}
		})
	}
}

func TestHollowCircleExcludesInnerDisc(t *testing.T) {
	fill := NewFill(true, 0.2)
	inner := 0.5 * (1 - 2*0.2)

	for _, r := range []float64{0, 0.1, 0.2, inner - 1e-6} {
		if Contains(0.5+r, 0.5, Circle{}, fill) {
			t.Errorf("point at radius %.4f should be excluded", r)
		}
	}
	for _, r := range []float64{inner + 1e-6, 0.4, 0.5} {
		if !Contains(0.5+r, 0.5, Circle{}, fill) {
			t.Errorf("point at radius %.4f should be in the stroke", r)
		}
	}
}

func TestHollowRectKeepsBorder(t *testing.T) {
	fill := NewFill(true, 0.1)
	if Contains(0.5, 0.5, Rect{}, fill) {
		t.Error("hollow rect center should be empty")
	}
	if !Contains(0.05, 0.5, Rect{}, fill) {
		t.Error("hollow rect border should be painted")
	}
}

func TestDegenerateStrokeIsSolid(t *testing.T) {
	// Unclamped fills with no room for an inner shape behave as solid.
	for _, s := range []float64{0.5, 0.9} {
		f := Fill{Hollow: true, Stroke: s}
		if !Contains(0.5, 0.5, Circle{}, f) {
			t.Errorf("stroke %.2f: center should be painted", s)
		}
	}
}

func TestNewFillClamps(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, DefaultStroke},
		{0.01, MinStroke},
		{0.2, 0.2},
		{0.7, MaxStroke},
		{-1, MinStroke},
		{math.NaN(), DefaultStroke},
		{math.Inf(1), MaxStroke},
	}
	for _, tt := range tests {
		if got := NewFill(true, tt.in).Stroke; got != tt.want {
			t.Errorf("NewFill(true, %v).Stroke = %v, want %v", tt.in, got, tt.want)
		}
	}
	if NewFill(false, 0.3) != Solid {
		t.Error("non-hollow fill should be Solid")
	}
}

func TestNaNStrokeKeepsOutline(t *testing.T) {
	f := NewFill(true, math.NaN())
	if !Contains(0.02, 0.5, Rect{}, f) {
		t.Error("border of a NaN-stroke frame should be painted")
	}
	if Contains(0.5, 0.5, Rect{}, f) {
		t.Error("center of a NaN-stroke frame should be empty")
	}
}

func TestArea(t *testing.T) {
	tests := []struct {
		name  string
		shape Shape
		fill  Fill
		want  float64
	}{
		{"rect", Rect{}, Solid, 1},
		{"circle", Circle{}, Solid, math.Pi / 4},
		{"diamond", Polygon{Kind: Diamond}, Solid, 0.5},
		{"frame", Rect{}, NewFill(true, 0.25), 0.75},
		{"ring", Circle{}, NewFill(true, 0.25), math.Pi / 4 * 0.75},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Area(tt.shape, tt.fill); math.Abs(got-tt.want) > 0.02 {
				t.Errorf("Area = %.4f, want %.4f", got, tt.want)
			}
		})
	}
	if Area(Circle{}, Solid) != Area(Circle{}, Solid) {
		t.Error("Area should be stable")
	}
}

func TestFrameRotation360IsIdentity(t *testing.T) {
	shapes := []Shape{Rect{}, Circle{}, Polygon{Kind: Star}, Heart{}, Polygon{Kind: Arrow}}
	f0 := NewFrame(10, 20, 30, 40, 0)
	f360 := NewFrame(10, 20, 30, 40, 360)
	fNeg := NewFrame(10, 20, 30, 40, -720)

	for _, s := range shapes {
		for y := 15.0; y < 65; y += 0.7 {
			for x := 5.0; x < 45; x += 0.7 {
				p := geom.Coord{X: x, Y: y}
				want := f0.Covers(p, s, Solid)
				if got := f360.Covers(p, s, Solid); got != want {
					t.Fatalf("%s at (%v,%v): 360° = %v, 0° = %v", s.Name(), x, y, got, want)
				}
				if got := fNeg.Covers(p, s, Solid); got != want {
					t.Fatalf("%s at (%v,%v): -720° = %v, 0° = %v", s.Name(), x, y, got, want)
				}
			}
		}
	}
}

func TestFrameRotation90(t *testing.T) {
	// A 40x10 bar rotated 90° becomes a 10x40 bar about the same center.
	f := NewFrame(30, 45, 40, 10, 90)
	if !f.Covers(geom.Coord{X: 50, Y: 35}, Rect{}, Solid) {
		t.Error("rotated bar should cover point above center")
	}
	if f.Covers(geom.Coord{X: 35, Y: 50}, Rect{}, Solid) {
		t.Error("rotated bar should not cover its original left end")
	}

	b := f.Bounds()
	if math.Abs(b.Width()-10) > 1e-9 || math.Abs(b.Height()-40) > 1e-9 {
		t.Errorf("rotated bounds = %vx%v, want 10x40", b.Width(), b.Height())
	}
}

func TestFrameLocalOutside(t *testing.T) {
	f := NewFrame(0, 0, 10, 10, 45)
	if _, ok := f.Local(geom.Coord{X: 0.2, Y: 0.2}); ok {
		t.Error("corner of unrotated box lies outside the 45° rotated box")
	}
}

func TestByName(t *testing.T) {
	for _, name := range Names {
		s, err := ByName(name, 'A')
		if err != nil {
			t.Fatalf("ByName(%q): %v", name, err)
		}
		if s.Name() != name {
			t.Errorf("ByName(%q).Name() = %q", name, s.Name())
		}
	}
	if s, _ := ByName("ring", 0); s != (Circle{}) || !ImpliesHollow("ring") {
		t.Error("ring should be a hollow circle")
	}
	if s, _ := ByName("text", 0); s != (Glyph{Char: DefaultGlyph}) {
		t.Errorf("text without char = %v", s)
	}
	if _, err := ByName("hexagon", 0); err == nil {
		t.Error("unknown shape should fail")
	}
}

func TestGlyphMask(t *testing.T) {
	m := MaskFor('H')
	cov := m.Coverage()
	if cov <= 0.05 || cov >= 0.9 {
		t.Errorf("glyph H coverage = %.3f, expected partial ink", cov)
	}
	if MaskFor('H') != m {
		t.Error("masks should be cached")
	}

	// Blank character has no ink.
	if MaskFor(' ').Coverage() != 0 {
		t.Error("space should have no ink")
	}

	// The ink box fills the mask: H is taller than wide, so it spans
	// every row.
	for _, y := range []int{0, GlyphResolution - 1} {
		inked := false
		for x := range GlyphResolution {
			inked = inked || m.At(x, y)
		}
		if !inked {
			t.Errorf("row %d of H has no ink", y)
		}
	}
	if c := MaskFor('■').Coverage(); c < 0.9 {
		t.Errorf("■ coverage = %.3f, want a near-full cell", c)
	}

	// Runes the font lacks fall back to the default glyph.
	if *MaskFor('◆') != *MaskFor(DefaultGlyph) {
		t.Error("missing rune should use the default glyph")
	}

	// Membership agrees with the mask.
	hits := 0
	for y := range GlyphResolution {
		for x := range GlyphResolution {
			nx := (float64(x) + 0.5) / GlyphResolution
			ny := (float64(y) + 0.5) / GlyphResolution
			if Contains(nx, ny, Glyph{Char: 'H'}, Solid) {
				hits++
			}
		}
	}
	if want := int(cov * GlyphResolution * GlyphResolution); hits != want {
		t.Errorf("hits = %d, want %d", hits, want)
	}
}

func TestHeartOutline(t *testing.T) {
	for _, n := range []int{0, 1, 8} {
		if got, want := len(HeartOutline(n)), 4*max(n, 1); got != want {
			t.Errorf("HeartOutline(%d) has %d points, want %d", n, got, want)
		}
	}

	pts := HeartOutline(48)
	for _, p := range pts {
		if p.X < 0 || p.X > 1 || p.Y < 0 || p.Y > 1 {
			t.Fatalf("point %v outside the unit box", p)
		}
	}

	// The outline encloses the same area the hit-test reports.
	var shoelace float64
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		shoelace += p.X*q.Y - q.X*p.Y
	}
	outlineArea := math.Abs(shoelace) / 2

	const res = 400
	inside := 0
	for y := range res {
		for x := range res {
			if heartContains(geom.Coord{X: (float64(x) + 0.5) / res, Y: (float64(y) + 0.5) / res}) {
				inside++
			}
		}
	}
	sampledArea := float64(inside) / (res * res)

	if math.Abs(outlineArea-sampledArea) > 0.02*sampledArea {
		t.Errorf("outline area %.4f, sampled area %.4f", outlineArea, sampledArea)
	}
}
