// Package io reads and writes boards as JSON.
//
// # JSON Format
//
// A board is an object with an "objects" array. "id" and "style" are
// optional:
//
//	{
//	  "id": "5b0c0c5e-3a4f-5d43-9a55-6f1a3f0c1b2d",
//	  "style": "bold-blocks",
//	  "objects": [
//	    {"id": "a", "x": 0, "y": 0, "w": 100, "h": 100, "color": "red", "shape": "rectangle", "z_index": 0},
//	    {"id": "b", "x": 25, "y": 25, "w": 50, "h": 50, "color": "blue", "shape": "ring", "stroke_width": 0.2, "z_index": 1}
//	  ]
//	}
//
// A bare array of objects is accepted as well. Coordinates are canvas
// percent with the origin at the top left. "z_index" stacks objects: higher
// values are drawn on top.
//
// # Object Fields
//
// Required: x, y, w, h, color, shape.
//
// Optional:
//   - rotation: degrees about the box center
//   - hollow, stroke_width: outline shapes (stroke as a fraction of the box)
//   - char: the letter drawn by the "text" shape
//
// The shape aliases "ring" and "frame" decode to hollow circles and hollow
// rectangles.
//
// The JSON written by the render/sink package for a full result includes a
// board in this format, so a rendered result can be read back and measured
// again.
package io
