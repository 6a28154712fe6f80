// Package sample measures how much of the canvas each color covers.
//
// A [Grid] of SX × SY sample points is laid over the canvas, one point at
// the center of each cell. Each point takes the color of the topmost object
// covering it, or Background. The counts give an exact answer for that
// grid, independent of how boards are drawn:
//
//	m := sample.Measure(b.Objects, sample.DefaultGrid())
//	pct := m.Breakdown()
//	fmt.Printf("red covers %.1f%%\n", pct[palette.Red])
//
// Objects are bucketed by the rows their rotated bounding boxes reach, and
// rows are sampled concurrently. Neither affects the result.
package sample
