// Package cli provides the command-line interface for retint.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/retint/retint/internal/version"
)

// NewRootCmd builds the root command with all subcommands attached.
// Each invocation returns a fresh command tree so tests can run
// commands in isolation.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "retint",
		Short: "Recolour images with a fixed palette",
		Long: `Retint maps every pixel of an image onto its perceptually nearest
colour from a palette, producing an image that uses only the palette's
colours. Palettes come from built-in colour schemes, JSON files, or
inline JSON.

Animated GIFs are converted frame by frame with timing preserved.`,
		Version:       version.Short(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")
	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConvertCmd())
	rootCmd.AddCommand(newPalettesCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
