package image

import (
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// jpegQuality matches the encoder default used for re-encoded photos.
const jpegQuality = 90

// Encode writes img in the named format. The output format mirrors the
// input format where an encoder exists; webp (decode-only in Go) and
// anything unrecognised fall back to png.
func Encode(w io.Writer, img image.Image, format string) error {
	switch format {
	case "jpeg":
		return jpeg.Encode(w, img, &jpeg.Options{Quality: jpegQuality})
	case "bmp":
		return bmp.Encode(w, img)
	case "tiff":
		return tiff.Encode(w, img, nil)
	default:
		return png.Encode(w, img)
	}
}

// EncodableFormat returns the format Encode will actually produce for a
// detected input format.
func EncodableFormat(format string) string {
	switch format {
	case "jpeg", "bmp", "tiff", "gif":
		return format
	default:
		return "png"
	}
}

// ToNRGBA normalises a decoded image to a non-premultiplied RGBA buffer
// that can be rewritten in place. The NRGBA layout keeps the source
// channel values exact for pixels with partial alpha.
func ToNRGBA(img image.Image) *image.NRGBA {
	if nrgba, ok := img.(*image.NRGBA); ok {
		return nrgba
	}
	bounds := img.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			out.Set(x-bounds.Min.X, y-bounds.Min.Y, img.At(x, y))
		}
	}
	return out
}

// Stem returns the file name without directory or extension, used to
// derive output names. An empty stem defaults to "image".
func Stem(path string) string {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" || stem == "." || stem == string(filepath.Separator) {
		return "image"
	}
	return stem
}
