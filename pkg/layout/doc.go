// Package layout generates the raw objects of a board.
//
// Each [Style] wraps a [Generator], a function that turns a random stream
// into a list of objects in canvas percent. There are thirteen styles,
// ranging from banded shape grids through nested and overlapping shapes to
// dense tile fields colored by a formula (sine stripes, angle wedges, ring
// distance, nearest seed).
//
// Generators are deliberately loose: objects may hang off the canvas, and a
// generator may fail to use every color. The pipeline fixes the latter with
// [board.EnsurePalette] and orders objects with [board.SortByDepth].
//
// A [Selector] decides which style to use for each board:
//
//	sel := layout.NewSelector(rng)
//	style := sel.Next()
//	objs := style.Generate(rng)
package layout
