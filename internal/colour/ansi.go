package colour

import (
	"fmt"
	"math"
	"strings"
)

// ANSI escape codes for truecolour terminal output.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	swatchWidth  = 6
)

// Swatch returns a solid colour block rendered with an ANSI background
// colour. Width specifies how many characters wide the block should be.
func Swatch(r, g, b uint8, width int) string {
	if width <= 0 {
		width = swatchWidth
	}
	bg := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, r, g, b, ansiSuffix)
	return bg + strings.Repeat(" ", width) + ansiReset
}

// SwatchText returns text rendered on a coloured background. The text
// colour flips between black and white for contrast with the background.
func SwatchText(r, g, b uint8, text string) string {
	fgR, fgG, fgB := uint8(255), uint8(255), uint8(255)
	if relativeLuminance(r, g, b) > 0.5 {
		fgR, fgG, fgB = 0, 0, 0
	}
	bg := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, r, g, b, ansiSuffix)
	fg := fmt.Sprintf("%s%d;%d;%d%s", ansiFgPrefix, fgR, fgG, fgB, ansiSuffix)
	return bg + fg + " " + text + " " + ansiReset
}

// relativeLuminance computes the WCAG relative luminance of an sRGB
// colour.
func relativeLuminance(r, g, b uint8) float64 {
	lin := func(c uint8) float64 {
		v := float64(c) / 255.0
		if v <= 0.03928 {
			return v / 12.92
		}
		return math.Pow((v+0.055)/1.055, 2.4)
	}
	return 0.2126*lin(r) + 0.7152*lin(g) + 0.0722*lin(b)
}
