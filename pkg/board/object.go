package board

import (
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"github.com/jbeda/geom"

	"github.com/mhuggins102-sudo/Estimate-Game/pkg/geometry"
	"github.com/mhuggins102-sudo/Estimate-Game/pkg/palette"
)

// MinSize is the smallest width or height an object can have. Constructors
// raise anything smaller to this value.
const MinSize = 0.01

// Object is one colored shape placed on the canvas.
//
// The zero value is not usable; build objects with [Solid] or [Hollow], or
// decode them from JSON.
type Object struct {
	ID       string
	X, Y     float64 // top-left corner, canvas percent
	W, H     float64 // box size, canvas percent
	Rotation float64 // degrees clockwise about the box center
	Color    palette.Color
	Shape    geometry.Shape
	Fill     geometry.Fill

	// Priority is the draw order. Higher values are on top.
	Priority int
}

// Solid returns a filled object.
func Solid(id string, x, y, w, h float64, c palette.Color, s geometry.Shape, rotation float64) Object {
	return Object{
		ID:       id,
		X:        x,
		Y:        y,
		W:        max(w, MinSize),
		H:        max(h, MinSize),
		Rotation: rotation,
		Color:    c,
		Shape:    s,
	}
}

// Hollow returns an outline-only object. stroke is clamped as by
// [geometry.NewFill].
func Hollow(id string, x, y, w, h float64, c palette.Color, s geometry.Shape, rotation, stroke float64) Object {
	o := Solid(id, x, y, w, h, c, s, rotation)
	o.Fill = geometry.NewFill(true, stroke)
	return o
}

// Frame returns the placement transform of the object. Callers testing many
// points should compute it once.
func (o Object) Frame() geometry.Frame {
	return geometry.NewFrame(o.X, o.Y, o.W, o.H, o.Rotation)
}

// Contains reports whether the canvas point (x, y) is painted by o,
// ignoring anything drawn above it.
func (o Object) Contains(x, y float64) bool {
	return o.Frame().Covers(geom.Coord{X: x, Y: y}, o.Shape, o.Fill)
}

// Area is the area of the unrotated box. It orders objects by depth.
func (o Object) Area() float64 { return o.W * o.H }

// Bounds returns the axis-aligned box enclosing the rotated object.
func (o Object) Bounds() geom.Rect { return o.Frame().Bounds() }

// objectJSON is the wire form of an Object.
type objectJSON struct {
	ID          string        `json:"id"`
	X           float64       `json:"x"`
	Y           float64       `json:"y"`
	W           float64       `json:"w"`
	H           float64       `json:"h"`
	Rotation    float64       `json:"rotation,omitempty"`
	Color       palette.Color `json:"color"`
	Shape       string        `json:"shape"`
	Hollow      bool          `json:"hollow,omitempty"`
	StrokeWidth float64       `json:"stroke_width,omitempty"`
	Char        string        `json:"char,omitempty"`
	ZIndex      int           `json:"z_index"`
}

// MarshalJSON implements json.Marshaler.
func (o Object) MarshalJSON() ([]byte, error) {
	if o.Shape == nil {
		return nil, fmt.Errorf("object %q: missing shape", o.ID)
	}
	out := objectJSON{
		ID:       o.ID,
		X:        o.X,
		Y:        o.Y,
		W:        o.W,
		H:        o.H,
		Rotation: o.Rotation,
		Color:    o.Color,
		Shape:    o.Shape.Name(),
		ZIndex:   o.Priority,
	}
	if o.Fill.Hollow {
		out.Hollow = true
		out.StrokeWidth = o.Fill.Stroke
	}
	if g, ok := o.Shape.(geometry.Glyph); ok {
		out.Char = string(g.Char)
	}
	return json.Marshal(out)
}

// UnmarshalJSON implements json.Unmarshaler. The aliases "ring" and "frame"
// decode to hollow circles and rectangles.
func (o *Object) UnmarshalJSON(b []byte) error {
	var in objectJSON
	if err := json.Unmarshal(b, &in); err != nil {
		return err
	}
	var char rune
	if in.Char != "" {
		char, _ = utf8.DecodeRuneInString(in.Char)
	}
	shape, err := geometry.ByName(in.Shape, char)
	if err != nil {
		return fmt.Errorf("object %q: %w", in.ID, err)
	}

	if in.Hollow || geometry.ImpliesHollow(in.Shape) {
		*o = Hollow(in.ID, in.X, in.Y, in.W, in.H, in.Color, shape, in.Rotation, in.StrokeWidth)
	} else {
		*o = Solid(in.ID, in.X, in.Y, in.W, in.H, in.Color, shape, in.Rotation)
	}
	o.Priority = in.ZIndex
	return nil
}
