// Package reset implements the command that discards the saved simulation.
package reset

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/sprintsim/internal/cli"
	simservice "github.com/thenoetrevino/sprintsim/internal/services/simulation"
)

// ResetCmd returns the reset command
func ResetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Start a new simulation",
		Long:  "Delete every feature and return to the product backlog stage. Asks for confirmation unless --yes is given.",
		RunE:  runReset,
	}

	cmd.Flags().Bool("yes", false, "Skip confirmation")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runReset(cmd *cobra.Command, args []string) error {
	yes, _ := cmd.Flags().GetBool("yes")

	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, formatter *cli.OutputFormatter) error {
		if yes {
			ctx = simservice.ContextWithConfirmer(ctx, simservice.AlwaysConfirm)
		}

		features := len(c.Service().Snapshot().Features)
		confirmed, err := c.Service().Confirm(ctx, fmt.Sprintf("Discard the simulation and its %d feature(s)?", features))
		if err != nil {
			return formatter.Fail(err)
		}
		if confirmed {
			if err := c.Service().Reset(ctx); err != nil {
				return formatter.Fail(err)
			}
		}

		if formatter.Quiet {
			return nil
		}
		if formatter.JSON {
			return formatter.Success(map[string]interface{}{
				"reset":    confirmed,
				"features": features,
			})
		}
		if !confirmed {
			fmt.Println("Cancelled")
			return nil
		}
		fmt.Println("✓ Simulation reset")
		return nil
	})
}
