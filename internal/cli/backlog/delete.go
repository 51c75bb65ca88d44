package backlog

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/sprintsim/internal/cli"
	simservice "github.com/thenoetrevino/sprintsim/internal/services/simulation"
)

// DeleteCmd returns the backlog delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a feature",
		Long: `Delete a feature from the backlog, the sprint and the board.
Asks for confirmation unless --yes is given.`,
		RunE: runDelete,
	}

	cmd.Flags().String("id", "", "Feature id, id prefix or name (required)")
	cli.MarkRequired(cmd, "id")
	cmd.Flags().Bool("yes", false, "Skip confirmation")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	yes, _ := cmd.Flags().GetBool("yes")

	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, formatter *cli.OutputFormatter) error {
		id, err := cli.ResolveFeature(cmd, c)
		if err != nil {
			return formatter.Fail(err)
		}
		feature, _ := c.Service().Snapshot().Feature(id)

		if yes {
			ctx = simservice.ContextWithConfirmer(ctx, simservice.AlwaysConfirm)
		}
		deleted, err := c.Service().DeleteFeature(ctx, id)
		if err != nil {
			return formatter.Fail(err)
		}
		if deleted {
			if err := c.Persist(ctx); err != nil {
				return formatter.Fail(err)
			}
		}

		if formatter.Quiet {
			if deleted {
				cli.PrintIDs(id)
			}
			return nil
		}
		if formatter.JSON {
			return formatter.Success(map[string]interface{}{
				"id":      id.String(),
				"name":    feature.Name,
				"deleted": deleted,
			})
		}

		if !deleted {
			fmt.Println("Cancelled")
			return nil
		}
		fmt.Printf("✓ Deleted '%s'\n", feature.Name)
		return nil
	})
}
