// Package render holds the output renderers for boards.
//
// The [sink] subpackage turns a board and its measurement into artifacts:
//
//   - SVG: the board as drawn, on a 0..100 viewBox
//   - PNG: the classified sample grid, exactly what was measured
//   - JSON: objects, color breakdown and row distribution
//
// Renderers are pure functions of their input; caching happens in the
// [pipeline] runner.
package render
