// Package review implements the sprint review command.
package review

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/sprintsim/internal/cli"
	"github.com/thenoetrevino/sprintsim/internal/models"
	"github.com/thenoetrevino/sprintsim/internal/report"
	"github.com/thenoetrevino/sprintsim/internal/simulation"
	"github.com/thenoetrevino/sprintsim/internal/user"
)

const renderWidth = 80

// now is replaced in tests
var now = time.Now

// ReviewCmd returns the review command
func ReviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "review",
		Short: "Summarize the sprint",
		Long: `Show total sprint effort, the number of features per status and the
completed effort. The report is rendered with glamour; --markdown prints
the raw markdown instead.`,
		RunE: runReview,
	}

	cmd.Flags().Bool("markdown", false, "Print raw markdown")
	cmd.Flags().String("style", "", "Glamour style (dark, light, notty, auto); defaults to review_style from config")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runReview(cmd *cobra.Command, args []string) error {
	raw, _ := cmd.Flags().GetBool("markdown")
	style, _ := cmd.Flags().GetString("style")

	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, formatter *cli.OutputFormatter) error {
		state := c.Service().Snapshot()
		summary := simulation.Review(state)

		if formatter.Quiet {
			fmt.Println(summary.TotalEffort)
			return nil
		}
		if formatter.JSON {
			counts := make(map[string]int, len(summary.Counts))
			for _, status := range models.Statuses {
				counts[string(status)] = summary.Counts[status]
			}
			return formatter.Success(map[string]interface{}{
				"stage":              string(state.Stage),
				"items":              summary.Items,
				"total_effort":       summary.TotalEffort,
				"completed_effort":   summary.CompletedEffort,
				"completion_percent": summary.CompletionPercent,
				"counts":             counts,
			})
		}

		markdown := report.Markdown(state, user.Facilitator(), now())
		if raw {
			fmt.Print(markdown)
			return nil
		}

		if style == "" {
			style = c.App.Config.ReviewStyle
		}
		rendered, err := report.Render(markdown, style, renderWidth)
		if err != nil {
			return formatter.FailWith(cli.ExitFailure, "RENDER_ERROR", err)
		}
		fmt.Print(rendered)
		return nil
	})
}
