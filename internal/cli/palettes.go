package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/retint/retint/internal/colour"
	"github.com/retint/retint/internal/palette"
)

// newPalettesCmd builds the palettes command.
func newPalettesCmd() *cobra.Command {
	var styles = palette.AllStyles()

	cmd := &cobra.Command{
		Use:   "palettes [palette]",
		Short: "List built-in palettes or show one palette's colours",
		Long: `Without an argument, list the built-in palettes with their styles and
colour counts. With a palette argument, show every colour of that
palette with a terminal swatch, grouped by style.

The argument accepts the same forms as convert: a built-in name, a JSON
file path, or inline JSON prefixed with "JSON:".`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return runPalettesList(cmd)
			}
			return runPalettesShow(cmd, args[0], styles)
		},
	}

	cmd.Flags().VarP(&styles, "styles", "s", "palette styles to show (all, none, or a comma-separated list)")

	return cmd
}

// runPalettesList prints a table of the built-in palettes.
func runPalettesList(cmd *cobra.Command) error {
	table := NewTable([]string{"PALETTE", "STYLES", "COLOURS"})

	for _, name := range palette.Builtins() {
		src, err := palette.BuiltinSource(name)
		if err != nil {
			return err
		}
		doc, err := src.Document()
		if err != nil {
			return err
		}

		styleNames, colours := summariseDocument(doc)
		styleCol := strings.Join(styleNames, ", ")
		if styleCol == "" {
			styleCol = "-"
		}
		table.AddRow([]string{name, styleCol, fmt.Sprintf("%d", colours)})
	}

	fmt.Fprint(cmd.OutOrStdout(), table.Render())
	return nil
}

// summariseDocument reports a document's style names and total colour
// count. Entries whose value is a JSON object are styles holding their
// own colours; anything else is a colour of a flat palette.
func summariseDocument(doc *palette.Document) ([]string, int) {
	var styleNames []string
	colours := 0
	for _, entry := range doc.Entries() {
		raw := bytes.TrimSpace(entry.Value)
		if len(raw) > 0 && raw[0] == '{' {
			styleNames = append(styleNames, entry.Key)
			sub, err := palette.ParseDocument(raw)
			if err == nil {
				colours += sub.Len()
			}
			continue
		}
		colours++
	}
	return styleNames, colours
}

// printPaletteSwatches writes one row of colour swatches per palette,
// prefixed with the style name for named palettes.
func printPaletteSwatches(w io.Writer, palettes []palette.Palette) {
	for _, p := range palettes {
		var b strings.Builder
		for _, nc := range p.Dedupe().Colors {
			b.WriteString(colour.Swatch(nc.Color.R, nc.Color.G, nc.Color.B, 2))
		}
		if p.Named() {
			fmt.Fprintf(w, "%-16s %s\n", p.Name, b.String())
		} else {
			fmt.Fprintln(w, b.String())
		}
	}
}

// runPalettesShow resolves one palette and prints its colours with
// swatches, grouped by style.
func runPalettesShow(cmd *cobra.Command, arg string, styles palette.StyleSelection) error {
	src, err := palette.ParseSource(arg)
	if err != nil {
		return err
	}
	doc, err := src.Document()
	if err != nil {
		return err
	}
	palettes, err := palette.Resolve(doc, styles)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	useColour := term.IsTerminal(int(os.Stdout.Fd()))

	for i, p := range palettes {
		p = p.Dedupe()
		if p.Named() {
			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "%s:\n", p.Name)
		}
		for _, nc := range p.Colors {
			line := fmt.Sprintf("%-24s %s", nc.Name, nc.Color.Hex())
			if useColour {
				// The swatch carries the hex code itself, text colour
				// flipped for contrast.
				swatch := colour.SwatchText(nc.Color.R, nc.Color.G, nc.Color.B, nc.Color.Hex())
				line = fmt.Sprintf("%s %-24s", swatch, nc.Name)
			}
			fmt.Fprintln(out, line)
		}
	}
	return nil
}
