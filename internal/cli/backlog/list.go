package backlog

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/sprintsim/internal/cli"
	"github.com/thenoetrevino/sprintsim/internal/cli/styles"
	"github.com/thenoetrevino/sprintsim/internal/models"
	"github.com/thenoetrevino/sprintsim/internal/simulation"
)

// ListCmd returns the backlog list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List backlog features in creation order",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, simulation.BacklogFeatures)
		},
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

// RankedCmd returns the backlog ranked subcommand
func RankedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ranked",
		Short: "List backlog features by priority score, highest first",
		Long: `List backlog features sorted by score = (user need + business value) / 2 - effort / 5.
Features with equal scores keep their creation order.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, rankedFeatures)
		},
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func rankedFeatures(s simulation.State) []models.Feature {
	ranked := simulation.Ranked(s)
	features := make([]models.Feature, len(ranked))
	for i, r := range ranked {
		features[i] = r.Feature
	}
	return features
}

func runList(cmd *cobra.Command, features func(simulation.State) []models.Feature) error {
	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, formatter *cli.OutputFormatter) error {
		state := c.Service().Snapshot()
		list := features(state)

		if formatter.Quiet {
			for _, f := range list {
				cli.PrintIDs(f.ID)
			}
			return nil
		}

		if formatter.JSON {
			out := make([]map[string]interface{}, 0, len(list))
			for _, f := range list {
				out = append(out, cli.FeatureJSON(state, f))
			}
			return formatter.Success(map[string]interface{}{
				"stage":    string(state.Stage),
				"features": out,
				"count":    len(list),
			})
		}

		if len(list) == 0 {
			fmt.Println("No features in the backlog")
			return nil
		}

		fmt.Println(styles.TitleStyle.Render(fmt.Sprintf("Product Backlog (%d)", len(list))))
		for _, f := range list {
			marker := " "
			if simulation.InSprint(state, f.ID) {
				marker = "*"
			}
			fmt.Printf("%s %s\n", marker, cli.FeatureLine(f))
		}
		return nil
	})
}
