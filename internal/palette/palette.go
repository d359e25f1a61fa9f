// Package palette implements the palette document model: named reference
// colours, style resolution, deduplication and the builtin theme set.
package palette

import (
	"fmt"
	"slices"
)

// Color is an 8-bit sRGB reference colour.
type Color struct {
	R uint8
	G uint8
	B uint8
}

// Hex returns the colour as a hex string (e.g. "#2e3440").
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// NamedColor is one palette entry: a display name and its colour.
type NamedColor struct {
	Name  string
	Color Color
}

// Palette is an ordered collection of named colours. Name is empty for a
// flat, style-less theme.
type Palette struct {
	Name   string
	Colors []NamedColor
}

// Named reports whether the palette came from a named style.
func (p Palette) Named() bool {
	return p.Name != ""
}

// Dedupe returns a copy of the palette with entries sorted by raw
// (R, G, B) value and exact duplicates collapsed. Sorting makes duplicate
// elimination well-defined; the stable sort keeps the first-seen name for
// each surviving colour. Duplicate reference colours would only waste
// distance comparisons, so this runs before the Lab search array is built.
func (p Palette) Dedupe() Palette {
	colours := slices.Clone(p.Colors)
	slices.SortStableFunc(colours, func(a, b NamedColor) int {
		if c := int(a.Color.R) - int(b.Color.R); c != 0 {
			return c
		}
		if c := int(a.Color.G) - int(b.Color.G); c != 0 {
			return c
		}
		return int(a.Color.B) - int(b.Color.B)
	})
	colours = slices.CompactFunc(colours, func(a, b NamedColor) bool {
		return a.Color == b.Color
	})
	return Palette{Name: p.Name, Colors: colours}
}

// Flatten concatenates the deduplicated colours of each palette in
// resolution order. The result is the reference set every pixel is
// matched against; its order is the tie-break order.
func Flatten(palettes []Palette) []NamedColor {
	var out []NamedColor
	for _, p := range palettes {
		out = append(out, p.Dedupe().Colors...)
	}
	return out
}
