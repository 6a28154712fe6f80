package geometry

import (
	"math"

	"github.com/jbeda/geom"
)

const (
	heartLobeY      = 0.30
	heartLobeRadius = 0.21
	heartTipY       = 0.85
	heartHalfWidth  = 0.41
)

var heartLobes = [2]geom.Coord{{X: 0.30, Y: heartLobeY}, {X: 0.70, Y: heartLobeY}}

// heartContains tests the upper lobes as circles and the lower half as a
// quadratic falloff to the tip.
func heartContains(p geom.Coord) bool {
	if p.Y <= heartLobeY {
		for _, c := range heartLobes {
			if p.DistanceFrom(c) <= heartLobeRadius {
				return true
			}
		}
		return false
	}
	if p.Y > heartTipY {
		return false
	}
	t := (p.Y - heartLobeY) / (heartTipY - heartLobeY)
	dx := p.X - 0.5
	if dx < 0 {
		dx = -dx
	}
	return dx <= heartHalfWidth*(1-t*t)
}

// HeartOutline returns the boundary of the heart as a closed polygon in
// normalized coordinates, clockwise from the left end of the lobes. Each arc
// and each side of the lower half gets n segments.
func HeartOutline(n int) []geom.Coord {
	if n < 1 {
		n = 1
	}
	r := heartLobeRadius
	d := (heartLobes[1].X - heartLobes[0].X) / 2
	top := -math.Sqrt(r*r - d*d)

	pts := make([]geom.Coord, 0, 4*n+1)
	arc := func(c geom.Coord, from, to float64) {
		for i := range n {
			a := from + (to-from)*float64(i)/float64(n)
			pts = append(pts, geom.Coord{X: c.X + r*math.Cos(a), Y: c.Y + r*math.Sin(a)})
		}
	}
	arc(heartLobes[0], -math.Pi, math.Atan2(top, d))
	arc(heartLobes[1], math.Atan2(top, -d), 0)

	side := func(t, sign float64) geom.Coord {
		return geom.Coord{
			X: 0.5 + sign*heartHalfWidth*(1-t*t),
			Y: heartLobeY + t*(heartTipY-heartLobeY),
		}
	}
	for i := range n + 1 {
		pts = append(pts, side(float64(i)/float64(n), 1))
	}
	for i := n - 1; i > 0; i-- {
		pts = append(pts, side(float64(i)/float64(n), -1))
	}
	return pts
}
