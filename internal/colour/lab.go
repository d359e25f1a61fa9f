// Package colour implements the CIELAB colour model and the perceptual
// colour-difference (deltaE) metrics used by the conversion engine.
package colour

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Lab is a colour in the CIELAB colour space, D65 reference white.
// L is in the standard 0..100 lightness range; A and B are unbounded in
// practice but stay within roughly -128..128 for sRGB inputs.
type Lab struct {
	L float64
	A float64
	B float64
}

// FromRGB converts an 8-bit sRGB triple to CIELAB.
// go-colorful works in a 0..1 scaled Lab space, so the result is rescaled
// into the standard range the published deltaE constants assume.
func FromRGB(r, g, b uint8) Lab {
	c := colorful.Color{
		R: float64(r) / 255.0,
		G: float64(g) / 255.0,
		B: float64(b) / 255.0,
	}
	l, a, bb := c.Lab()
	return Lab{L: l * 100.0, A: a * 100.0, B: bb * 100.0}
}

// RGB converts the colour back to an 8-bit sRGB triple.
// For any Lab value produced by FromRGB this reproduces the original
// triple exactly; out-of-gamut values are clamped first.
func (lab Lab) RGB() (r, g, b uint8) {
	return colorful.Lab(lab.L/100.0, lab.A/100.0, lab.B/100.0).Clamped().RGB255()
}
