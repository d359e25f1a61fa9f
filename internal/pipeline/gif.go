package pipeline

import (
	"bytes"
	"image/color"
	"image/gif"
	"os"
	"time"

	"github.com/retint/retint/internal/colour"
)

// convertGIF transforms an animated (or single-frame) GIF. Frames arrive
// as indexed images, so each frame is transformed by rewriting its
// colour table: the per-pixel substitution is a pure function of the
// pixel's colour, and every pixel of an indexed frame goes through the
// table, so remapping the table applies exactly that function to every
// pixel while keeping indices, per-frame delays and disposal intact.
func (c *Converter) convertGIF(input, dest string) error {
	start := time.Now()

	f, err := os.Open(input) // #nosec G304 - User-specified image path, intended to be read
	if err != nil {
		return &OperationalError{Op: OpDecode, Path: input, Err: err}
	}
	g, err := gif.DecodeAll(f)
	f.Close()
	if err != nil {
		return &OperationalError{Op: OpDecode, Path: input, Err: err}
	}

	total := int64(len(g.Image))
	c.log.Debug("animated image decoded", "input", input, "frames", total)

	for i, frame := range g.Image {
		c.remapColourTable(frame.Palette)
		if c.progress != nil {
			c.progress(int64(i)+1, total)
		}
	}
	if p, ok := g.Config.ColorModel.(color.Palette); ok {
		// The global table can back frames without a local one; the
		// remap is idempotent by value, so a shared slice is safe.
		c.remapColourTable(p)
	}

	// The output animation loops forever regardless of the source's
	// loop count.
	g.LoopCount = 0

	var buf bytes.Buffer
	if err := gif.EncodeAll(&buf, g); err != nil {
		return &OperationalError{Op: OpEncode, Path: dest, Err: err}
	}
	if err := os.WriteFile(dest, buf.Bytes(), 0o644); err != nil {
		return &OperationalError{Op: OpWrite, Path: dest, Err: err}
	}

	c.log.Debug("animation converted",
		"input", input,
		"output", dest,
		"frames", total,
		"elapsed", time.Since(start))
	return nil
}

// remapColourTable substitutes each colour-table entry with its nearest
// palette colour, preserving the entry's alpha (the transparent entry
// stays transparent).
func (c *Converter) remapColourTable(table color.Palette) {
	for i, entry := range table {
		nrgba := color.NRGBAModel.Convert(entry).(color.NRGBA)
		lab := colour.FromRGB(nrgba.R, nrgba.G, nrgba.B)
		matched := c.colours[colour.Nearest(lab, c.labs, c.method)].Color
		table[i] = color.NRGBA{R: matched.R, G: matched.G, B: matched.B, A: nrgba.A}
	}
}
