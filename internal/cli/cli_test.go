// Package cli_test provides tests for the CLI package.
package cli_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/retint/retint/internal/cli"
)

// writeTestPNG writes a small image with two distinct colours.
func writeTestPNG(t *testing.T, path string) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			c := color.NRGBA{R: 20, G: 20, B: 20, A: 255}
			if (x+y)%2 == 0 {
				c = color.NRGBA{R: 230, G: 230, B: 230, A: 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func runCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	rootCmd := cli.NewRootCmd()
	rootCmd.SetOut(&outBuf)
	rootCmd.SetErr(&errBuf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return outBuf.String(), errBuf.String(), err
}

func TestPalettesList(t *testing.T) {
	out, _, err := runCommand(t, "palettes")
	if err != nil {
		t.Fatalf("palettes failed: %v", err)
	}
	for _, want := range []string{"PALETTE", "nord", "catppuccin", "gruvbox", "onedark"} {
		if !strings.Contains(out, want) {
			t.Errorf("listing is missing %q:\n%s", want, out)
		}
	}
}

func TestPalettesShowInline(t *testing.T) {
	// A flat document needs -s none; the default all-styles selection
	// treats top-level entries as styles and rejects colour values.
	out, _, err := runCommand(t, "palettes", "-s", "none", `JSON: {"ink": "#2E3440", "paper": "#ECEFF4"}`)
	if err != nil {
		t.Fatalf("palettes failed: %v", err)
	}
	if !strings.Contains(out, "ink") || !strings.Contains(out, "#2e3440") {
		t.Errorf("colour listing incomplete:\n%s", out)
	}
}

func TestPalettesShowFlatDefaultSelectionFails(t *testing.T) {
	_, _, err := runCommand(t, "palettes", `JSON: {"ink": "#2E3440"}`)
	if err == nil {
		t.Fatal("expected style error for flat document under the default selection")
	}
	if !strings.Contains(err.Error(), "ink") {
		t.Errorf("error does not name the entry: %v", err)
	}
}

func TestPalettesShowUnknownStyle(t *testing.T) {
	_, _, err := runCommand(t, "palettes", "nord", "-s", "no-such-style")
	if err == nil {
		t.Fatal("expected error for unknown style")
	}
	if !strings.Contains(err.Error(), "no-such-style") {
		t.Errorf("error does not name the style: %v", err)
	}
}

func TestConvertProducesOutput(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "photo.png")
	writeTestPNG(t, input)
	outDir := filepath.Join(dir, "out")

	out, _, err := runCommand(t, "convert", "nord", input, "-o", outDir, "-s", "Polar Night")
	if err != nil {
		t.Fatalf("convert failed: %v", err)
	}

	want := filepath.Join(outDir, "photo_nord-Polar_Night.png")
	if !strings.Contains(out, want) {
		t.Errorf("stdout = %q, want the output path %q", out, want)
	}
	if _, err := os.Stat(want); err != nil {
		t.Errorf("output file missing: %v", err)
	}
}

func TestConvertExplicitDest(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "photo.png")
	writeTestPNG(t, input)
	dest := filepath.Join(dir, "custom-name.png")

	if _, _, err := runCommand(t, "convert", "nord", input, "-d", dest); err != nil {
		t.Fatalf("convert failed: %v", err)
	}
	if _, err := os.Stat(dest); err != nil {
		t.Errorf("explicit destination missing: %v", err)
	}
}

func TestConvertDestCountMismatch(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "photo.png")
	writeTestPNG(t, input)

	_, _, err := runCommand(t, "convert", "nord", input, input, "-d", "one.png")
	if err == nil {
		t.Fatal("expected destination count error")
	}
}

func TestConvertValidatesInputsUpFront(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "photo.png")
	writeTestPNG(t, good)
	missing := filepath.Join(dir, "missing.png")
	goodDest := filepath.Join(dir, "good-out.png")

	_, _, err := runCommand(t, "convert", "nord",
		good, missing,
		"-d", goodDest, "-d", filepath.Join(dir, "missing-out.png"))
	if err == nil {
		t.Fatal("expected error for missing input")
	}
	if !strings.Contains(err.Error(), "missing.png") {
		t.Errorf("error does not name the input: %v", err)
	}
	// Validation runs before any conversion, so the valid input was not
	// converted either.
	if _, statErr := os.Stat(goodDest); statErr == nil {
		t.Error("conversion started despite an invalid input")
	}
}

func TestConvertUnknownPaletteFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "photo.png")
	writeTestPNG(t, input)

	_, _, err := runCommand(t, "convert", "no-such-palette", input)
	if err == nil {
		t.Fatal("expected error for unknown palette")
	}
}

func TestConvertBadMethodFlag(t *testing.T) {
	_, _, err := runCommand(t, "convert", "nord", "x.png", "-m", "euclid")
	if err == nil {
		t.Fatal("expected flag parse error for unknown method")
	}
}

func TestVersionCommand(t *testing.T) {
	out, _, err := runCommand(t, "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.Contains(out, "retint version") {
		t.Errorf("version output = %q", out)
	}
}
