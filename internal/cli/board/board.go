// Package board implements the Kanban board commands used during sprint
// execution.
package board

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/sprintsim/internal/cli"
	"github.com/thenoetrevino/sprintsim/internal/cli/styles"
	"github.com/thenoetrevino/sprintsim/internal/models"
	simservice "github.com/thenoetrevino/sprintsim/internal/services/simulation"
	"github.com/thenoetrevino/sprintsim/internal/simulation"
)

// BoardCmd returns the board parent command
func BoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Show and update the sprint board",
	}

	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(MoveCmd())

	return cmd
}

// ShowCmd returns the board show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the three board columns",
		RunE:  runShow,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

// MoveCmd returns the board move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move",
		Short: "Move a card to a column and position",
		Long: `Move a card between or within board columns. Only available during sprint execution.

--to-index is the position in the destination column after the card has been
taken out of its source column; it is clamped to the column bounds and defaults
to the end of the column. --from and --from-index are optional hints; when they
do not point at the card it is located by id.

Examples:
  sprintsim board move --id 4f1c --to inProgress
  sprintsim board move --id 4f1c --to done --to-index 0`,
		RunE: runMove,
	}

	cmd.Flags().String("id", "", "Feature id, id prefix or name (required)")
	cmd.Flags().String("to", "", "Destination column: todo, inProgress or done (required)")
	cli.MarkRequired(cmd, "id", "to")
	cmd.Flags().Int("to-index", 0, "Position in the destination column")
	cmd.Flags().String("from", "", "Source column hint")
	cmd.Flags().Int("from-index", 0, "Source position hint")
	cli.AddOutputFlags(cmd)

	return cmd
}

func boardJSON(s simulation.State) map[string]interface{} {
	out := make(map[string]interface{}, models.ColumnCount)
	for _, status := range models.Statuses {
		items := simulation.Column(s, status)
		column := make([]map[string]interface{}, 0, len(items))
		for _, item := range items {
			column = append(column, cli.SprintItemJSON(item))
		}
		out[string(status)] = column
	}
	return out
}

func runShow(cmd *cobra.Command, args []string) error {
	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, formatter *cli.OutputFormatter) error {
		state := c.Service().Snapshot()

		if formatter.Quiet {
			for _, status := range models.Statuses {
				for _, item := range simulation.Column(state, status) {
					fmt.Printf("%s\t%s\n", status, item.FeatureID)
				}
			}
			return nil
		}
		if formatter.JSON {
			return formatter.Success(boardJSON(state))
		}

		for _, status := range models.Statuses {
			items := simulation.Column(state, status)
			fmt.Println(styles.StatusHeader(status, len(items)))
			for i, item := range items {
				fmt.Printf("  %d. %s  %s (effort %d)\n", i, item.FeatureID.Short(), item.Feature.Name, item.Effort)
			}
		}
		return nil
	})
}

func runMove(cmd *cobra.Command, args []string) error {
	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, formatter *cli.OutputFormatter) error {
		id, err := cli.ResolveFeature(cmd, c)
		if err != nil {
			return formatter.Fail(err)
		}
		to, err := cli.ParseStatusFlag(cmd, "to")
		if err != nil {
			return formatter.Fail(err)
		}

		req := simservice.MoveRequest{ID: id, To: to}
		if cmd.Flags().Changed("to-index") {
			req.ToIndex, _ = cmd.Flags().GetInt("to-index")
		} else {
			req.ToIndex = len(c.Service().Snapshot().Board[to.Column()])
		}
		if cmd.Flags().Changed("from") {
			from, err := cli.ParseStatusFlag(cmd, "from")
			if err != nil {
				return formatter.Fail(err)
			}
			req.From = &from
		}
		if cmd.Flags().Changed("from-index") {
			fromIndex, _ := cmd.Flags().GetInt("from-index")
			req.FromIndex = &fromIndex
		}

		if err := c.Service().MoveFeature(ctx, req); err != nil {
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
			return formatter.Success(boardJSON(state))
		}

		status, index, _ := simulation.Locate(state, id)
		feature, _ := state.Feature(id)
		fmt.Printf("✓ Moved '%s' to %s at position %d\n", feature.Name, status.Title(), index)
		return nil
	})
}
