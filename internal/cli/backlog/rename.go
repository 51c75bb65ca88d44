package backlog

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/sprintsim/internal/cli"
)

// RenameCmd returns the backlog rename subcommand
func RenameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename",
		Short: "Rename a feature",
		RunE:  runRename,
	}

	cmd.Flags().String("id", "", "Feature id, id prefix or name (required)")
	cmd.Flags().String("name", "", "New feature name (required)")
	cli.MarkRequired(cmd, "id", "name")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runRename(cmd *cobra.Command, args []string) error {
	name, _ := cmd.Flags().GetString("name")

	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, formatter *cli.OutputFormatter) error {
		id, err := cli.ResolveFeature(cmd, c)
		if err != nil {
			return formatter.Fail(err)
		}
		if err := c.Service().RenameFeature(ctx, id, name); err != nil {
			return formatter.Fail(err)
		}
		if err := c.Persist(ctx); err != nil {
			return formatter.Fail(err)
		}

		state := c.Service().Snapshot()
		feature, _ := state.Feature(id)
		if formatter.Quiet {
			cli.PrintIDs(id)
			return nil
		}
		if formatter.JSON {
			return formatter.Success(cli.FeatureJSON(state, feature))
		}

		fmt.Printf("✓ Renamed %s to '%s'\n", id.Short(), feature.Name)
		return nil
	})
}
