package main

import (
	"fmt"
	"os"

	"github.com/thenoetrevino/sprintsim/cmd"
	"github.com/thenoetrevino/sprintsim/internal/cli"
)

func main() {
	if err := cmd.Execute(); err != nil {
		// Commands that already reported through the formatter return an ExitError
		if !cli.Reported(err) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(cli.ExitCode(err))
	}
}
