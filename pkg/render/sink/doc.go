// Package sink renders boards and measurements to output formats.
//
//   - SVG: the board as vector shapes, see [RenderSVG]
//   - PNG: the classified sample grid, see [RenderPNG]
//   - JSON: board, breakdown and row distribution, see [RenderJSON]
//
// The SVG draws every object from the same geometry the sampler hit-tests:
// hollow shapes are masked by the scaled inner shape and glyphs are drawn
// from their bitmap masks. The PNG is exactly the grid that was counted, so
// it shows what the measurement saw rather than a second rasterization.
//
// All sinks use the canvas coordinate system of the board: 0..100 on both
// axes with the origin at the top left.
package sink
