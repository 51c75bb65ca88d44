// Package sprint implements the sprint planning commands.
package sprint

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/sprintsim/internal/cli"
	"github.com/thenoetrevino/sprintsim/internal/cli/styles"
	"github.com/thenoetrevino/sprintsim/internal/simulation"
	"github.com/thenoetrevino/sprintsim/internal/types"
)

// SprintCmd returns the sprint parent command
func SprintCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sprint",
		Short: "Plan the sprint backlog",
	}

	cmd.AddCommand(AddCmd())
	cmd.AddCommand(RemoveCmd())
	cmd.AddCommand(ListCmd())

	return cmd
}

// AddCmd returns the sprint add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Commit a feature to the sprint",
		Long:  "Commit a feature to the sprint backlog. Adding a feature twice has no effect.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChange(cmd, "Added", func(ctx context.Context, c *cli.CLI, id types.FeatureID) error {
				return c.Service().AddToSprint(ctx, id)
			})
		},
	}

	cmd.Flags().String("id", "", "Feature id, id prefix or name (required)")
	cli.MarkRequired(cmd, "id")
	cli.AddOutputFlags(cmd)

	return cmd
}

// RemoveCmd returns the sprint remove subcommand
func RemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Take a feature out of the sprint",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChange(cmd, "Removed", func(ctx context.Context, c *cli.CLI, id types.FeatureID) error {
				return c.Service().RemoveFromSprint(ctx, id)
			})
		},
	}

	cmd.Flags().String("id", "", "Feature id, id prefix or name (required)")
	cli.MarkRequired(cmd, "id")
	cli.AddOutputFlags(cmd)

	return cmd
}

// ListCmd returns the sprint list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the sprint backlog in commitment order",
		RunE:  runList,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runChange(cmd *cobra.Command, verb string, change func(context.Context, *cli.CLI, types.FeatureID) error) error {
	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, formatter *cli.OutputFormatter) error {
		id, err := cli.ResolveFeature(cmd, c)
		if err != nil {
			return formatter.Fail(err)
		}
		if err := change(ctx, c, id); err != nil {
			return formatter.Fail(err)
		}
		if err := c.Persist(ctx); err != nil {
			return formatter.Fail(err)
		}

		state := c.Service().Snapshot()
		if formatter.Quiet {
			cli.PrintIDs(id)
			return nil
		}
		if formatter.JSON {
			return formatter.Success(sprintJSON(state))
		}

		feature, _ := state.Feature(id)
		fmt.Printf("✓ %s '%s' (sprint effort %d)\n", verb, feature.Name, simulation.TotalEffort(state))
		return nil
	})
}

func sprintJSON(s simulation.State) map[string]interface{} {
	items := simulation.SprintFeatures(s)
	out := make([]map[string]interface{}, 0, len(items))
	for _, item := range items {
		out = append(out, cli.SprintItemJSON(item))
	}
	return map[string]interface{}{
		"items":        out,
		"count":        len(items),
		"total_effort": simulation.TotalEffort(s),
	}
}

func runList(cmd *cobra.Command, args []string) error {
	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, formatter *cli.OutputFormatter) error {
		state := c.Service().Snapshot()
		items := simulation.SprintFeatures(state)

		if formatter.Quiet {
			for _, item := range items {
				cli.PrintIDs(item.FeatureID)
			}
			return nil
		}
		if formatter.JSON {
			return formatter.Success(sprintJSON(state))
		}

		if len(items) == 0 {
			fmt.Println("The sprint backlog is empty")
			return nil
		}

		fmt.Println(styles.TitleStyle.Render(fmt.Sprintf("Sprint Backlog (%d)", len(items))))
		for _, item := range items {
			fmt.Printf("  %s  %-30s  %-11s  effort %d  score %.1f\n",
				item.FeatureID.Short(), item.Feature.Name, item.Status.Title(), item.Effort, item.Score())
		}
		fmt.Println(styles.Field("Total effort", simulation.TotalEffort(state)))
		return nil
	})
}
