package palette

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestStyleSelectionSet(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		want     string
		wantKind ErrorKind
		wantErr  bool
	}{
		{name: "all", in: "all", want: "all"},
		{name: "all upper", in: "ALL", want: "all"},
		{name: "none", in: "none", want: "none"},
		{name: "no", in: "no", want: "none"},
		{name: "single", in: "dark", want: "dark"},
		{name: "list", in: "dark,light", want: "dark,light"},
		{name: "empty", in: "", wantErr: true, wantKind: ErrEmptySelection},
		{name: "doubled comma", in: "dark,,light", wantErr: true, wantKind: ErrEmptyStyleName},
		{name: "trailing comma", in: "dark,", wantErr: true, wantKind: ErrEmptyStyleName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sel StyleSelection
			err := sel.Set(tt.in)
			if tt.wantErr {
				var pe *Error
				if !errors.As(err, &pe) || pe.Kind != tt.wantKind {
					t.Fatalf("Set(%q) error = %v, want kind %d", tt.in, err, tt.wantKind)
				}
				return
			}
			if err != nil {
				t.Fatalf("Set(%q) error: %v", tt.in, err)
			}
			if sel.String() != tt.want {
				t.Errorf("String() = %q, want %q", sel.String(), tt.want)
			}
		})
	}
}

func TestParseSourceBuiltin(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "nord", want: "nord"},
		{in: "gruvbox_material", want: "gruvbox-material"},
		{in: "gruvboxmaterial", want: "gruvbox-material"},
		{in: "rose_pine", want: "rose-pine"},
		{in: "catpuccin", want: "catppuccin"},
		{in: "tokyonight", want: "tokyo-night"},
		{in: "NORD", want: "nord"},
	}
	for _, tt := range tests {
		src, err := ParseSource(tt.in)
		if err != nil {
			t.Errorf("ParseSource(%q) error: %v", tt.in, err)
			continue
		}
		if src.ID() != tt.want {
			t.Errorf("ParseSource(%q).ID() = %q, want %q", tt.in, src.ID(), tt.want)
		}
	}
}

func TestParseSourceInline(t *testing.T) {
	src, err := ParseSource(`JSON: {"x": "#123456"}`)
	if err != nil {
		t.Fatalf("ParseSource error: %v", err)
	}
	if src.ID() != "custom" {
		t.Errorf("ID() = %q, want custom", src.ID())
	}
	doc, err := src.Document()
	if err != nil {
		t.Fatalf("Document error: %v", err)
	}
	if doc.Len() != 1 || doc.Entries()[0].Key != "x" {
		t.Errorf("document = %+v", doc.Entries())
	}
}

func TestParseSourceFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.json")
	if err := os.WriteFile(path, []byte(`{"dark": {"x": "#000000"}}`), 0o600); err != nil {
		t.Fatal(err)
	}
	src, err := ParseSource(path)
	if err != nil {
		t.Fatalf("ParseSource error: %v", err)
	}
	if src.ID() != "custom" {
		t.Errorf("ID() = %q, want custom", src.ID())
	}
	doc, err := src.Document()
	if err != nil {
		t.Fatalf("Document error: %v", err)
	}
	if doc.Len() != 1 {
		t.Errorf("document has %d entries, want 1", doc.Len())
	}
}

func TestParseSourceUnknown(t *testing.T) {
	if _, err := ParseSource("no-such-theme-or-file"); err == nil {
		t.Error("expected error for unknown source")
	}
}

// Every embedded builtin must parse, resolve with every style and carry
// only valid colours.
func TestBuiltinsResolve(t *testing.T) {
	flat := map[string]bool{"onedark": true}

	for _, name := range Builtins() {
		t.Run(name, func(t *testing.T) {
			src, err := BuiltinSource(name)
			if err != nil {
				t.Fatalf("BuiltinSource error: %v", err)
			}
			doc, err := src.Document()
			if err != nil {
				t.Fatalf("Document error: %v", err)
			}

			sel := AllStyles()
			if flat[name] {
				sel = NoStyles()
			}
			palettes, err := Resolve(doc, sel)
			if err != nil {
				t.Fatalf("Resolve error: %v", err)
			}
			if len(palettes) == 0 {
				t.Fatal("no palettes resolved")
			}
			for _, p := range palettes {
				if len(p.Colors) == 0 {
					t.Errorf("palette %q has no colours", p.Name)
				}
			}
		})
	}
}
