// Package geometry defines the shapes a board object can take and the single
// point-membership predicate used to measure them.
//
// # Coordinate Spaces
//
// Every shape is defined over its own normalized unit square: (0,0) is the
// top-left corner of the object's bounding box and (1,1) the bottom-right.
// [Frame] converts canvas coordinates into this space, undoing the object's
// rotation about its box center.
//
// # Shapes
//
// [Shape] is a closed set: [Rect], [Circle], [Polygon], [Heart] and [Glyph].
// [Contains] dispatches over them with an exhaustive type switch, so adding a
// shape means adding a case there and in the SVG sink.
//
// Polygons use the even-odd rule per ring and take the union across rings,
// which matches how the six-point star is painted (two filled triangles).
//
// Glyph membership is a 32x32 bitmap mask rasterized once per rune from the
// Go Bold font, scaled so that the glyph's ink box fills the mask. That mask
// is the authoritative definition of a glyph's area; font ink is never
// sampled directly.
//
// # Hollow Shapes
//
// A [Fill] with Hollow set keeps only the outline: a point is covered when it
// lies in the shape but not in the same shape scaled by (1 - 2*stroke) about
// the center. Stroke widths are clamped by [NewFill] to [MinStroke, MaxStroke].
package geometry
