// Package palette defines the fixed color set a mosaic board is painted with.
//
// Four colors are playable: they can be a round's target and every board must
// contain each of them. A fifth value, [Background], marks canvas area that no
// object covers. Background is never a playable target.
//
// Each color carries the flat RGB value the boards are drawn with, so sinks
// and raster classification agree on what a color looks like:
//
//	c, _ := palette.Parse("blue")
//	fmt.Println(c.Hex()) // #3b82f6
package palette

import (
	"fmt"
	"strings"
)

// Color is one of the board colors.
type Color uint8

const (
	Red Color = iota
	Blue
	Green
	Yellow
	Background
)

// Playable lists the colors that participate in win/loss judgement, in
// canonical order. Callers must not modify the returned slice.
var Playable = []Color{Red, Blue, Green, Yellow}

// All lists every color including Background.
var All = []Color{Red, Blue, Green, Yellow, Background}

// RGB is an 8-bit sRGB triple.
type RGB struct{ R, G, B uint8 }

var (
	names = [...]string{"red", "blue", "green", "yellow", "background"}
	flat  = [...]RGB{
		{239, 68, 68},
		{59, 130, 246},
		{34, 197, 94},
		{234, 179, 8},
		{248, 250, 252},
	}
)

// String returns the lower-case color name.
func (c Color) String() string {
	if int(c) < len(names) {
		return names[c]
	}
	return fmt.Sprintf("color(%d)", uint8(c))
}

// IsPlayable reports whether c can be a round target.
func (c Color) IsPlayable() bool { return c < Background }

// Valid reports whether c is a known color.
func (c Color) Valid() bool { return c <= Background }

// RGB returns the flat fill color.
func (c Color) RGB() RGB {
	if !c.Valid() {
		return flat[Background]
	}
	return flat[c]
}

// Hex returns the fill color as "#rrggbb".
func (c Color) Hex() string {
	v := c.RGB()
	return fmt.Sprintf("#%02x%02x%02x", v.R, v.G, v.B)
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("invalid color %d", uint8(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(b []byte) error {
	v, err := Parse(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// Parse converts a color name to a Color. Matching is case-insensitive and
// "white" is accepted as an alias for Background.
func Parse(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "white" {
		return Background, nil
	}
	for i, n := range names {
		if n == s {
			return Color(i), nil
		}
	}
	return Background, fmt.Errorf("unknown color %q (must be one of: red, blue, green, yellow, background)", s)
}

// Nearest classifies an arbitrary RGB value as the board color with the
// smallest squared RGB distance. Ties resolve to the earlier color in [All].
func Nearest(v RGB) Color {
	best, bestDist := Background, -1
	for _, c := range All {
		f := flat[c]
		dr := int(v.R) - int(f.R)
		dg := int(v.G) - int(f.G)
		db := int(v.B) - int(f.B)
		d := dr*dr + dg*dg + db*db
		if bestDist < 0 || d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}
