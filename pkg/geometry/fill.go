package geometry

import (
	"math"
	"sync"

	"github.com/jbeda/geom"
)

// Stroke width bounds, as a fraction of the object's size.
const (
	MinStroke     = 0.05
	MaxStroke     = 0.45
	DefaultStroke = 0.15
)

// Fill describes how a shape is painted. The zero value is solid.
type Fill struct {
	Hollow bool
	Stroke float64
}

// Solid is the fill of a filled shape.
var Solid = Fill{}

// NewFill returns a fill with the stroke clamped to [MinStroke, MaxStroke].
// A zero stroke on a hollow fill becomes DefaultStroke.
func NewFill(hollow bool, stroke float64) Fill {
	if !hollow {
		return Solid
	}
	return Fill{Hollow: true, Stroke: ClampStroke(stroke)}
}

// ClampStroke limits a stroke fraction to the supported range. Zero and NaN
// become DefaultStroke.
func ClampStroke(s float64) float64 {
	if s == 0 || math.IsNaN(s) {
		return DefaultStroke
	}
	return max(MinStroke, min(MaxStroke, s))
}

// InnerScale is the size of the cut-out relative to the outer shape, scaled
// about the shape's center. A non-positive value means there is nothing to
// cut out.
func (f Fill) InnerScale() float64 {
	if !f.Hollow {
		return 0
	}
	return 1 - 2*f.Stroke
}

// Contains reports whether the normalized point (nx, ny) is painted by shape
// with the given fill. The point must already be in the object's local unit
// square; use [Frame.Local] to get there from canvas coordinates.
func Contains(nx, ny float64, shape Shape, fill Fill) bool {
	p := geom.Coord{X: nx, Y: ny}
	if !solid(shape, p) {
		return false
	}
	k := fill.InnerScale()
	if k <= 0 {
		return true
	}
	inner := p.Minus(center).Times(1 / k).Plus(center)
	return !solid(shape, inner)
}

// areaResolution is the side of the grid [Area] samples.
const areaResolution = 48

type areaKey struct {
	shape Shape
	fill  Fill
}

var areas sync.Map // areaKey -> float64

// Area returns the painted fraction of the unit square, sampled on a fixed
// grid. Results are cached per shape and fill.
func Area(s Shape, f Fill) float64 {
	key := areaKey{s, f}
	if v, ok := areas.Load(key); ok {
		return v.(float64)
	}
	n := 0
	for j := range areaResolution {
		for i := range areaResolution {
			if Contains((float64(i)+0.5)/areaResolution, (float64(j)+0.5)/areaResolution, s, f) {
				n++
			}
		}
	}
	a := float64(n) / (areaResolution * areaResolution)
	areas.Store(key, a)
	return a
}
