// Retint - palette-constrained image recolouring
//
// Retint maps every pixel of an image onto its perceptually nearest
// colour from a palette.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/retint/retint/internal/cli"
	"github.com/retint/retint/internal/pipeline"
)

// Exit codes distinguish failures of the image work itself from usage
// and palette errors.
const (
	exitUsage       = 1
	exitOperational = 127
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		var op *pipeline.OperationalError
		if errors.As(err, &op) {
			os.Exit(exitOperational)
		}
		os.Exit(exitUsage)
	}
}
