package backlog

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/sprintsim/internal/cli"
	"github.com/thenoetrevino/sprintsim/internal/models"
	"github.com/thenoetrevino/sprintsim/internal/simulation"
)

// scoreFlags maps flag names to the dimension they set
var scoreFlags = []struct {
	flag      string
	dimension models.Dimension
}{
	{"user-need", models.DimensionUserNeed},
	{"business-value", models.DimensionBusinessValue},
	{"effort", models.DimensionEffort},
}

// ScoreCmd returns the backlog score subcommand
func ScoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Set the scoring dimensions of a feature",
		Long: `Set user need, business value and/or effort (each 1-5) of a feature.
Only available during prioritization.

Examples:
  sprintsim backlog score --id 4f1c --user-need 5 --effort 2`,
		RunE: runScore,
	}

	cmd.Flags().String("id", "", "Feature id, id prefix or name (required)")
	cli.MarkRequired(cmd, "id")
	for _, sf := range scoreFlags {
		cmd.Flags().Int(sf.flag, 0, sf.dimension.Title()+" (1-5)")
	}
	cli.AddOutputFlags(cmd)

	return cmd
}

func runScore(cmd *cobra.Command, args []string) error {
	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, formatter *cli.OutputFormatter) error {
		id, err := cli.ResolveFeature(cmd, c)
		if err != nil {
			return formatter.Fail(err)
		}

		updated := 0
		for _, sf := range scoreFlags {
			if !cmd.Flags().Changed(sf.flag) {
				continue
			}
			value, _ := cmd.Flags().GetInt(sf.flag)
			if err := c.Service().UpdateScore(ctx, id, sf.dimension, value); err != nil {
				return formatter.Fail(fmt.Errorf("%s: %w", sf.flag, err))
			}
			updated++
		}
		if updated == 0 {
			return formatter.FailWith(cli.ExitUsage, "NO_UPDATES",
				errors.New("at least one of --user-need, --business-value or --effort is required"))
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

		fmt.Printf("✓ Updated %s\n", feature.Name)
		fmt.Printf("  %s\n", cli.FeatureLine(feature))
		fmt.Printf("  Score: %.1f\n", simulation.Score(feature))
		return nil
	})
}
