package pipeline

import (
	"testing"

	"github.com/retint/retint/internal/colour"
	"github.com/retint/retint/internal/palette"
)

func TestOutputName(t *testing.T) {
	tests := []struct {
		name      string
		stem      string
		paletteID string
		palettes  []palette.Palette
		method    colour.Method
		want      string
	}{
		{
			name:      "flat palette default method",
			stem:      "photo",
			paletteID: "nord",
			palettes:  []palette.Palette{{}},
			method:    colour.DefaultMethod,
			want:      "photo_nord.png",
		},
		{
			name:      "single style with space",
			stem:      "photo",
			paletteID: "nord",
			palettes:  []palette.Palette{{Name: "dark blue"}},
			method:    colour.DefaultMethod,
			want:      "photo_nord-dark_blue.png",
		},
		{
			name:      "multiple styles keep resolution order",
			stem:      "photo",
			paletteID: "catppuccin",
			palettes:  []palette.Palette{{Name: "latte"}, {Name: "mocha"}},
			method:    colour.DefaultMethod,
			want:      "photo_catppuccin-latte-mocha.png",
		},
		{
			name:      "non-default method suffix",
			stem:      "photo",
			paletteID: "nord",
			palettes:  []palette.Palette{{}},
			method:    colour.DE1976,
			want:      "photo_nord_de1976.png",
		},
		{
			name:      "custom source",
			stem:      "scan",
			paletteID: "custom",
			palettes:  []palette.Palette{{}},
			method:    colour.DE1994G,
			want:      "scan_custom_de1994g.png",
		},
		{
			name:      "unnamed palettes add no suffix",
			stem:      "photo",
			paletteID: "gruvbox",
			palettes:  []palette.Palette{{}, {}},
			method:    colour.DefaultMethod,
			want:      "photo_gruvbox.png",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := OutputName(tt.stem, tt.paletteID, tt.palettes, tt.method)
			if got != tt.want {
				t.Errorf("OutputName() = %q, want %q", got, tt.want)
			}
		})
	}
}
