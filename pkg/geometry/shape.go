package geometry

import (
	"fmt"
	"strings"

	"github.com/jbeda/geom"
)

// Shape is one of [Rect], [Circle], [Polygon], [Heart] or [Glyph].
type Shape interface {
	// Name is the stable identifier used in JSON and on the command line.
	Name() string
	isShape()
}

// Rect covers its whole bounding box.
type Rect struct{}

// Circle is the disc inscribed in the unit square (radius 0.5).
type Circle struct{}

// Heart is two circular lobes over a pointed lower half.
type Heart struct{}

// Glyph is a single character rendered through a bitmap mask.
type Glyph struct {
	Char rune
}

func (Rect) Name() string   { return "rectangle" }
func (Circle) Name() string { return "circle" }
func (Heart) Name() string  { return "heart" }
func (Glyph) Name() string  { return "text" }

func (Rect) isShape()    {}
func (Circle) isShape()  {}
func (Heart) isShape()   {}
func (Glyph) isShape()   {}
func (Polygon) isShape() {}

// DefaultGlyph is used when a text shape has no character.
const DefaultGlyph = '?'

// Names lists every shape name accepted by [ByName].
var Names = []string{
	"rectangle", "circle", "triangle", "diamond", "star",
	"six_point_star", "heart", "arrow", "text",
}

// ByName resolves a shape name. char is only consulted for "text".
func ByName(name string, char rune) (Shape, error) {
	name = strings.ToLower(name)
	switch name {
	case "rectangle", "frame":
		return Rect{}, nil
	case "circle", "ring":
		return Circle{}, nil
	case "heart":
		return Heart{}, nil
	case "text":
		if char == 0 {
			char = DefaultGlyph
		}
		return Glyph{Char: char}, nil
	}
	for k := Triangle; k <= Arrow; k++ {
		if k.String() == name {
			return Polygon{Kind: k}, nil
		}
	}
	return nil, fmt.Errorf("unknown shape %q", name)
}

// ImpliesHollow reports whether a shape name is an outline-only alias
// ("ring", "frame").
func ImpliesHollow(name string) bool {
	switch strings.ToLower(name) {
	case "ring", "frame":
		return true
	}
	return false
}

var center = geom.Coord{X: 0.5, Y: 0.5}

// solid reports whether p lies inside s, ignoring hollowness. Points outside
// the unit square are never inside.
func solid(s Shape, p geom.Coord) bool {
	if p.X < 0 || p.X > 1 || p.Y < 0 || p.Y > 1 {
		return false
	}
	switch s := s.(type) {
	case Rect:
		return true
	case Circle:
		d := p.Minus(center)
		return d.X*d.X+d.Y*d.Y <= 0.25
	case Polygon:
		return s.contains(p)
	case Heart:
		return heartContains(p)
	case Glyph:
		return glyphContains(s.Char, p)
	default:
		return false
	}
}
