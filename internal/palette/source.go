package palette

import (
	"embed"
	"fmt"
	"os"
	"sort"
	"strings"
)

//go:embed palettes/*.json
var builtinFS embed.FS

// builtinAliases maps every accepted spelling to the canonical builtin
// identifier, which is also the embedded file's base name.
var builtinAliases = map[string]string{
	"catppuccin":       "catppuccin",
	"catppucin":        "catppuccin",
	"catpuccin":        "catppuccin",
	"catpucin":         "catppuccin",
	"edge":             "edge",
	"everforest":       "everforest",
	"gruvbox":          "gruvbox",
	"gruvbox-material": "gruvbox-material",
	"gruvbox_material": "gruvbox-material",
	"gruvboxmaterial":  "gruvbox-material",
	"nord":             "nord",
	"onedark":          "onedark",
	"one-dark":         "onedark",
	"one_dark":         "onedark",
	"rose-pine":        "rose-pine",
	"rosepine":         "rose-pine",
	"rose_pine":        "rose-pine",
	"tokyo-night":      "tokyo-night",
	"tokyonight":       "tokyo-night",
	"tokyo_night":      "tokyo-night",
}

// Builtins returns the canonical builtin theme identifiers, sorted.
func Builtins() []string {
	seen := make(map[string]bool)
	var out []string
	for _, canonical := range builtinAliases {
		if !seen[canonical] {
			seen[canonical] = true
			out = append(out, canonical)
		}
	}
	sort.Strings(out)
	return out
}

type sourceKind int

const (
	sourceBuiltin sourceKind = iota
	sourceInline
	sourceFile
)

// Source identifies where a palette document comes from: a builtin theme,
// an inline JSON argument, or an external file. It is a closed variant
// type; exactly one payload field is meaningful per kind.
type Source struct {
	kind    sourceKind
	builtin string // canonical builtin identifier
	inline  string // raw JSON text
	path    string // external file path
}

// inlinePrefix marks a CLI palette argument carrying the document itself.
const inlinePrefix = "JSON:"

// ParseSource classifies a palette argument. A "JSON: {...}" prefix means
// an inline document, a known theme name means a builtin, and anything
// else is treated as the path of a JSON theme file.
func ParseSource(arg string) (Source, error) {
	if rest, ok := strings.CutPrefix(arg, inlinePrefix); ok {
		return Source{kind: sourceInline, inline: strings.TrimSpace(rest)}, nil
	}
	if canonical, ok := builtinAliases[strings.ToLower(arg)]; ok {
		return Source{kind: sourceBuiltin, builtin: canonical}, nil
	}

	info, err := os.Stat(arg)
	if err != nil {
		return Source{}, fmt.Errorf("%q is neither a builtin theme nor a readable theme file", arg)
	}
	if info.IsDir() {
		return Source{}, fmt.Errorf("theme source %q is a directory, not a file", arg)
	}
	return Source{kind: sourceFile, path: arg}, nil
}

// BuiltinSource returns the source for a builtin theme identifier.
func BuiltinSource(name string) (Source, error) {
	canonical, ok := builtinAliases[strings.ToLower(name)]
	if !ok {
		return Source{}, fmt.Errorf("unknown builtin theme %q", name)
	}
	return Source{kind: sourceBuiltin, builtin: canonical}, nil
}

// ID returns the identifier used in output file names: the canonical
// builtin name, or "custom" for inline and file documents.
func (s Source) ID() string {
	if s.kind == sourceBuiltin {
		return s.builtin
	}
	return "custom"
}

// Document loads and parses the source's palette document.
func (s Source) Document() (*Document, error) {
	switch s.kind {
	case sourceBuiltin:
		data, err := builtinFS.ReadFile("palettes/" + s.builtin + ".json")
		if err != nil {
			return nil, fmt.Errorf("reading builtin theme %q: %w", s.builtin, err)
		}
		return ParseDocument(data)
	case sourceInline:
		return ParseDocument([]byte(s.inline))
	default:
		data, err := os.ReadFile(s.path)
		if err != nil {
			return nil, fmt.Errorf("reading theme file: %w", err)
		}
		doc, err := ParseDocument(data)
		if err != nil {
			return nil, fmt.Errorf("parsing theme file %q: %w", s.path, err)
		}
		return doc, nil
	}
}
