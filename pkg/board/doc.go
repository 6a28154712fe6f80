// Package board holds placed objects and the boards built from them.
//
// # Coordinates
//
// Objects live on a canvas measured in percent: x and y run from 0 to 100
// with the origin at the top-left corner. An object is described by the
// top-left corner of its box, its width and height, and a clockwise
// rotation in degrees about the box center. Boxes may extend past the
// canvas; anything outside is simply never sampled.
//
// # Draw Order
//
// Objects carry a Priority. Higher priorities are drawn on top. Boards from
// the layout generators are ordered with [SortByDepth], which puts larger
// boxes behind smaller ones so that small details stay visible:
//
//	objs = board.EnsurePalette(objs, rng)
//	board.SortByDepth(objs)
//
// [EnsurePalette] appends a small marker for each playable color a
// generator failed to use, so every board offers every color to guess.
//
// # JSON
//
// [Object] marshals to a flat record with the shape name, fill and z-index,
// which is the format read and written by package io and served by the
// HTTP API.
package board
