package pipeline

import (
	"strings"

	"github.com/retint/retint/internal/colour"
	"github.com/retint/retint/internal/palette"
)

// OutputName derives the deterministic output file name for a conversion:
// <stem>_<palette-id>[-<style>...][_<method>].png. Style suffixes appear
// in resolution order with spaces replaced by underscores; the method
// suffix appears only for non-default methods. The extension is always
// .png, whatever the encoded format.
func OutputName(stem, paletteID string, palettes []palette.Palette, method colour.Method) string {
	var b strings.Builder
	b.WriteString(stem)
	b.WriteByte('_')
	b.WriteString(paletteID)
	for _, p := range palettes {
		if p.Named() {
			b.WriteByte('-')
			b.WriteString(strings.ReplaceAll(p.Name, " ", "_"))
		}
	}
	if method != colour.DefaultMethod {
		b.WriteByte('_')
		b.WriteString(method.String())
	}
	b.WriteString(".png")
	return b.String()
}
