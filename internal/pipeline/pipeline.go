// Package pipeline drives the palette-substitution transform over
// decoded images: palette preparation, the parallel per-pixel rewrite,
// and the animated GIF special case.
package pipeline

import (
	"bytes"
	"fmt"
	"image"
	"os"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/retint/retint/internal/colour"
	imageio "github.com/retint/retint/internal/image"
	"github.com/retint/retint/internal/palette"
)

// chunkPixels is the unit of work one worker claims at a time.
const chunkPixels = 4096

// ProgressFunc receives transform progress. Units are pixels for static
// images and frames for animated ones.
type ProgressFunc func(done, total int64)

// Options configures a Converter.
type Options struct {
	// Method is the deltaE formula applied to every pixel.
	Method colour.Method
	// Workers is the size of the pixel worker pool; 0 means GOMAXPROCS.
	Workers int
	// Logger receives run diagnostics; nil disables logging.
	Logger hclog.Logger
	// Progress, when set, is called as work completes.
	Progress ProgressFunc
}

// Converter holds the resolved palette state shared read-only by all
// pixel workers for the duration of a run. Any palette failure happens
// during construction, before any image is touched.
type Converter struct {
	source   palette.Source
	palettes []palette.Palette
	colours  []palette.NamedColor
	labs     []colour.Lab
	method   colour.Method
	workers  int
	log      hclog.Logger
	progress ProgressFunc
}

// New resolves the palette source under the given style selection and
// prepares the flat Lab search array.
func New(src palette.Source, sel palette.StyleSelection, opts Options) (*Converter, error) {
	doc, err := src.Document()
	if err != nil {
		return nil, err
	}
	palettes, err := palette.Resolve(doc, sel)
	if err != nil {
		return nil, err
	}

	colours := palette.Flatten(palettes)
	if len(colours) == 0 {
		return nil, fmt.Errorf("palette %q resolved to no colours", src.ID())
	}

	// The Lab projection is computed once here and never again for
	// palette colours; input pixels are converted on the fly because the
	// search set is small and the input set is large.
	labs := make([]colour.Lab, len(colours))
	for i, c := range colours {
		labs[i] = colour.FromRGB(c.Color.R, c.Color.G, c.Color.B)
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	log := opts.Logger
	if log == nil {
		log = hclog.NewNullLogger()
	}

	log.Debug("palette ready",
		"source", src.ID(),
		"palettes", len(palettes),
		"colours", len(colours),
		"method", opts.Method.String(),
		"workers", workers)

	return &Converter{
		source:   src,
		palettes: palettes,
		colours:  colours,
		labs:     labs,
		method:   opts.Method,
		workers:  workers,
		log:      log,
		progress: opts.Progress,
	}, nil
}

// Source returns the palette source the converter was built from.
func (c *Converter) Source() palette.Source {
	return c.source
}

// Palettes returns the resolved palettes before deduplication, in
// resolution order, for caller-side preview.
func (c *Converter) Palettes() []palette.Palette {
	return c.palettes
}

// Colors returns the deduplicated flat reference set, in tie-break order.
func (c *Converter) Colors() []palette.NamedColor {
	return c.colours
}

// Method returns the distance method in use.
func (c *Converter) Method() colour.Method {
	return c.method
}

// Convert processes the input paths strictly in order, one image at a
// time. dests, when non-empty, must pair one destination per input; the
// mismatch is rejected before any image work starts. The first per-image
// failure halts the run.
func (c *Converter) Convert(inputs, dests []string) error {
	if len(dests) != 0 && len(dests) != len(inputs) {
		return fmt.Errorf("%d destinations given for %d inputs", len(dests), len(inputs))
	}
	for i, input := range inputs {
		dest := ""
		if len(dests) != 0 {
			dest = dests[i]
		}
		if err := c.ConvertFile(input, dest); err != nil {
			return err
		}
	}
	return nil
}

// ConvertFile transforms one image file. An empty dest derives the
// output name with OutputName, relative to the current directory.
func (c *Converter) ConvertFile(input, dest string) error {
	if dest == "" {
		dest = OutputName(imageio.Stem(input), c.source.ID(), c.palettes, c.method)
	}

	format, err := imageio.DetectFormat(input)
	if err != nil {
		return &OperationalError{Op: OpDecode, Path: input, Err: err}
	}
	if format == "gif" {
		return c.convertGIF(input, dest)
	}

	start := time.Now()
	decoded, _, err := imageio.Load(input)
	if err != nil {
		return &OperationalError{Op: OpDecode, Path: input, Err: err}
	}

	buf := imageio.ToNRGBA(decoded)
	c.Transform(buf)

	if err := c.writeEncoded(dest, buf, imageio.EncodableFormat(format)); err != nil {
		return err
	}

	c.log.Debug("image converted",
		"input", input,
		"output", dest,
		"format", format,
		"pixels", len(buf.Pix)/4,
		"elapsed", time.Since(start))
	return nil
}

// Transform rewrites every pixel of img in place: RGB channels are
// replaced by the nearest palette colour, alpha is left untouched. A
// fixed pool of workers claims disjoint pixel chunks from an atomic
// cursor, so no two workers touch the same bytes and the result is
// byte-identical for any worker count.
func (c *Converter) Transform(img *image.NRGBA) {
	pix := img.Pix
	totalPixels := len(pix) / 4
	if totalPixels == 0 {
		return
	}
	chunks := (totalPixels + chunkPixels - 1) / chunkPixels

	var cursor atomic.Int64
	var done atomic.Int64
	var wg sync.WaitGroup
	for w := 0; w < c.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				chunk := int(cursor.Add(1)) - 1
				if chunk >= chunks {
					return
				}
				startPix := chunk * chunkPixels
				endPix := min(startPix+chunkPixels, totalPixels)
				c.transformRange(pix, startPix, endPix)
				if c.progress != nil {
					c.progress(done.Add(int64(endPix-startPix)), int64(totalPixels))
				}
			}
		}()
	}
	wg.Wait()
}

// transformRange substitutes pixels [startPix, endPix). Each pixel's
// result depends only on its own value and the shared read-only palette
// arrays, so ranges need no synchronisation between workers.
func (c *Converter) transformRange(pix []uint8, startPix, endPix int) {
	for p := startPix; p < endPix; p++ {
		o := p * 4
		lab := colour.FromRGB(pix[o], pix[o+1], pix[o+2])
		matched := c.colours[colour.Nearest(lab, c.labs, c.method)].Color
		pix[o] = matched.R
		pix[o+1] = matched.G
		pix[o+2] = matched.B
	}
}

// writeEncoded encodes into memory first so a failed encode leaves no
// half-written file, then writes the destination in one step.
func (c *Converter) writeEncoded(dest string, img image.Image, format string) error {
	var buf bytes.Buffer
	if err := imageio.Encode(&buf, img, format); err != nil {
		return &OperationalError{Op: OpEncode, Path: dest, Err: err}
	}
	if err := os.WriteFile(dest, buf.Bytes(), 0o644); err != nil {
		return &OperationalError{Op: OpWrite, Path: dest, Err: err}
	}
	return nil
}
