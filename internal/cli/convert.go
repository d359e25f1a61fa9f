package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/retint/retint/internal/colour"
	"github.com/retint/retint/internal/image"
	"github.com/retint/retint/internal/palette"
	"github.com/retint/retint/internal/pipeline"
)

// newConvertCmd builds the convert command.
func newConvertCmd() *cobra.Command {
	var (
		styles    = palette.AllStyles()
		method    = colour.DefaultMethod
		outputDir string
		dests     []string
		jobs      int
	)

	cmd := &cobra.Command{
		Use:   "convert <palette> <image>...",
		Short: "Recolour images with a palette",
		Long: `Convert one or more images so that every pixel uses the perceptually
nearest colour from the chosen palette.

The palette argument is a built-in palette name, a path to a JSON
palette file, or inline JSON prefixed with "JSON:". Use the palettes
command to list the built-in palettes.

Output files land in the output directory with a name derived from the
input, the palette, the selected styles and the comparison method.
Explicit destinations given with --dest bypass the output directory and
must pair one destination per input image.

Examples:
  # Convert a wallpaper with every style of the Nord palette
  retint convert nord wallpaper.png

  # Use only the dark style of Gruvbox
  retint convert gruvbox -s dark wallpaper.png

  # Compare colours with CIE76 instead of CIEDE2000
  retint convert catppuccin -m de1976 wallpaper.png

  # A palette file, several images, a custom output directory
  retint convert mypalette.json -o themed a.png b.jpg c.gif

  # Inline palette JSON (flat documents need -s none)
  retint convert -s none 'JSON: {"ink": "#2E3440", "paper": "#ECEFF4"}' scan.png`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, args[0], args[1:], styles, method, outputDir, dests, jobs)
		},
	}

	cmd.Flags().VarP(&styles, "styles", "s", "palette styles to include (all, none, or a comma-separated list)")
	cmd.Flags().VarP(&method, "method", "m", "colour comparison method (de2000, de1994g, de1994t, de1976)")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "output", "directory for converted images")
	cmd.Flags().StringArrayVarP(&dests, "dest", "d", nil, "explicit destination path, repeatable, one per input image")
	cmd.Flags().IntVarP(&jobs, "jobs", "j", 0, "worker goroutines (0 = one per CPU)")

	return cmd
}

// runConvert resolves the palette, derives destinations and runs the
// conversion pipeline over the inputs.
func runConvert(cmd *cobra.Command, paletteArg string, inputs []string, styles palette.StyleSelection, method colour.Method, outputDir string, dests []string, jobs int) error {
	src, err := palette.ParseSource(paletteArg)
	if err != nil {
		return err
	}

	// Every input is validated up front so a bad path fails the run
	// before any image is converted. The error keeps the decode class
	// and with it the operational exit status.
	for _, input := range inputs {
		if err := image.ValidateImagePath(input); err != nil {
			return &pipeline.OperationalError{Op: pipeline.OpDecode, Path: input, Err: err}
		}
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	logger := newLogger(verbose)

	opts := pipeline.Options{
		Method:  method,
		Workers: jobs,
		Logger:  logger,
	}
	if term.IsTerminal(int(os.Stderr.Fd())) {
		opts.Progress = terminalProgress(cmd.ErrOrStderr())
	}

	conv, err := pipeline.New(src, styles, opts)
	if err != nil {
		return err
	}

	if term.IsTerminal(int(os.Stdout.Fd())) {
		printPaletteSwatches(cmd.OutOrStdout(), conv.Palettes())
	}

	if len(dests) == 0 {
		if err := os.MkdirAll(outputDir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		for _, input := range inputs {
			name := pipeline.OutputName(image.Stem(input), src.ID(), conv.Palettes(), method)
			dests = append(dests, filepath.Join(outputDir, name))
		}
	}

	if err := conv.Convert(inputs, dests); err != nil {
		return err
	}

	for _, dest := range dests {
		fmt.Fprintln(cmd.OutOrStdout(), dest)
	}
	return nil
}

// newLogger builds the pipeline logger. Verbose runs log debug detail;
// otherwise logging is off and failures surface as returned errors.
func newLogger(verbose bool) hclog.Logger {
	level := hclog.Off
	if verbose {
		level = hclog.Debug
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "retint",
		Output: os.Stderr,
		Level:  level,
	})
}

// terminalProgress returns a progress callback that redraws a counter
// on one line. Workers report progress concurrently, so a late small
// update may briefly follow a larger one.
func terminalProgress(w io.Writer) pipeline.ProgressFunc {
	return func(done, total int64) {
		fmt.Fprintf(w, "\r%d/%d", done, total)
		if done >= total {
			fmt.Fprintln(w)
		}
	}
}
