package geometry

import (
	"math"

	"github.com/jbeda/geom"
)

// Frame places a unit-square shape on the canvas: a top-left position, a size
// and a clockwise rotation in degrees about the box center. All lengths share
// one unit (the board uses canvas percent).
type Frame struct {
	center   geom.Coord
	w, h     float64
	sin, cos float64
	rotated  bool
}

// NewFrame precomputes the transform for an object box.
func NewFrame(x, y, w, h, rotation float64) Frame {
	f := Frame{
		center: geom.Coord{X: x + w/2, Y: y + h/2},
		w:      w,
		h:      h,
		cos:    1,
	}
	if deg := NormalizeDegrees(rotation); deg != 0 {
		rad := deg * math.Pi / 180
		f.sin, f.cos = math.Sincos(rad)
		f.rotated = true
	}
	return f
}

// NormalizeDegrees reduces an angle to [0, 360). Multiples of 360 map to
// exactly zero.
func NormalizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 {
		deg = 0
	}
	return deg
}

// Local maps a canvas point into the shape's unit square. ok is false when
// the point falls outside the box after un-rotating.
func (f Frame) Local(p geom.Coord) (geom.Coord, bool) {
	if f.w <= 0 || f.h <= 0 {
		return geom.Coord{}, false
	}
	d := p.Minus(f.center)
	if f.rotated {
		d = geom.Coord{
			X: f.cos*d.X + f.sin*d.Y,
			Y: -f.sin*d.X + f.cos*d.Y,
		}
	}
	l := geom.Coord{X: d.X/f.w + 0.5, Y: d.Y/f.h + 0.5}
	if l.X < 0 || l.X > 1 || l.Y < 0 || l.Y > 1 {
		return l, false
	}
	return l, true
}

// Bounds returns the axis-aligned box enclosing the rotated object.
func (f Frame) Bounds() geom.Rect {
	ex := math.Abs(f.w/2*f.cos) + math.Abs(f.h/2*f.sin)
	ey := math.Abs(f.w/2*f.sin) + math.Abs(f.h/2*f.cos)
	return geom.Rect{
		Min: geom.Coord{X: f.center.X - ex, Y: f.center.Y - ey},
		Max: geom.Coord{X: f.center.X + ex, Y: f.center.Y + ey},
	}
}

// Covers reports whether the canvas point p is painted by shape with fill
// when placed in this frame.
func (f Frame) Covers(p geom.Coord, shape Shape, fill Fill) bool {
	l, ok := f.Local(p)
	if !ok {
		return false
	}
	return Contains(l.X, l.Y, shape, fill)
}
