package geometry

import (
	"fmt"

	"github.com/jbeda/geom"
)

// PolygonKind selects one of the constant vertex tables.
type PolygonKind uint8

const (
	Triangle PolygonKind = iota
	Diamond
	Star
	SixPointStar
	Arrow
)

var polygonNames = [...]string{"triangle", "diamond", "star", "six_point_star", "arrow"}

func (k PolygonKind) String() string {
	if int(k) < len(polygonNames) {
		return polygonNames[k]
	}
	return fmt.Sprintf("polygon(%d)", uint8(k))
}

// Polygon is a fixed-vertex shape. A point is inside when it is inside any
// of the kind's rings under the even-odd rule.
type Polygon struct {
	Kind PolygonKind
}

// Name returns the polygon kind's identifier.
func (p Polygon) Name() string { return p.Kind.String() }

// Rings returns the vertex rings in normalized coordinates. The returned
// slices are shared and must not be modified.
func (p Polygon) Rings() [][]geom.Coord {
	if int(p.Kind) < len(polygonRings) {
		return polygonRings[p.Kind]
	}
	return nil
}

func (p Polygon) contains(pt geom.Coord) bool {
	for _, ring := range p.Rings() {
		if inRing(ring, pt) {
			return true
		}
	}
	return false
}

func inRing(ring []geom.Coord, p geom.Coord) bool {
	in := false
	for i, j := 0, len(ring)-1; i < len(ring); j, i = i, i+1 {
		a, b := ring[i], ring[j]
		if (a.Y > p.Y) != (b.Y > p.Y) && p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
			in = !in
		}
	}
	return in
}

// Vertex tables in the 0..100 box the shapes are drawn in.
var polygonTables = [...][][][2]float64{
	Triangle: {{{50, 5}, {5, 95}, {95, 95}}},
	Diamond:  {{{50, 0}, {100, 50}, {50, 100}, {0, 50}}},
	Star: {{
		{50, 5}, {61, 35}, {98, 35}, {68, 57}, {79, 91},
		{50, 70}, {21, 91}, {32, 57}, {2, 35}, {39, 35},
	}},
	SixPointStar: {
		{{50, 5}, {15, 75}, {85, 75}},
		{{50, 95}, {15, 25}, {85, 25}},
	},
	Arrow: {{{50, 5}, {5, 50}, {25, 50}, {25, 95}, {75, 95}, {75, 50}, {95, 50}}},
}

// PolygonTable returns the raw 0..100 vertex rings for kind, as used by the
// SVG sink.
func PolygonTable(kind PolygonKind) [][][2]float64 {
	if int(kind) < len(polygonTables) {
		return polygonTables[kind]
	}
	return nil
}

var polygonRings = func() [][][]geom.Coord {
	out := make([][][]geom.Coord, len(polygonTables))
	for k, rings := range polygonTables {
		for _, ring := range rings {
			pts := make([]geom.Coord, len(ring))
			for i, v := range ring {
				pts[i] = geom.Coord{X: v[0] / 100, Y: v[1] / 100}
			}
			out[k] = append(out[k], pts)
		}
	}
	return out
}()
