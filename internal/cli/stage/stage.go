// Package stage implements the commands that inspect and advance the
// simulation stage.
package stage

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/sprintsim/internal/cli"
	"github.com/thenoetrevino/sprintsim/internal/cli/styles"
	"github.com/thenoetrevino/sprintsim/internal/models"
	"github.com/thenoetrevino/sprintsim/internal/simulation"
)

// StageCmd returns the stage parent command
func StageCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stage",
		Short: "Show or advance the simulation stage",
	}

	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(AdvanceCmd())

	return cmd
}

// ShowCmd returns the stage show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the current stage",
		RunE:  runShow,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

// AdvanceCmd returns the stage advance subcommand
func AdvanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "advance",
		Short: "Move to the next stage",
		Long: `Move the simulation one stage forward:
product backlog -> prioritization -> sprint planning -> sprint execution -> review.

Starting the sprint requires at least one feature in the sprint backlog.`,
		RunE: runAdvance,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func stageJSON(s simulation.State) map[string]interface{} {
	next := ""
	if n, ok := s.Stage.Next(); ok {
		next = string(n)
	}
	return map[string]interface{}{
		"stage":       string(s.Stage),
		"title":       s.Stage.Title(),
		"index":       s.Stage.Index(),
		"next":        next,
		"can_advance": simulation.CanAdvance(s),
		"features":    len(s.Backlog),
		"sprint":      len(s.Sprint),
	}
}

func runShow(cmd *cobra.Command, args []string) error {
	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, formatter *cli.OutputFormatter) error {
		state := c.Service().Snapshot()

		if formatter.Quiet {
			fmt.Println(state.Stage)
			return nil
		}
		if formatter.JSON {
			return formatter.Success(stageJSON(state))
		}

		for _, st := range models.Stages {
			marker := "  "
			line := fmt.Sprintf("%d. %s", st.Index()+1, st.Title())
			if st == state.Stage {
				marker = "▶ "
				line = styles.TitleStyle.Render(line)
			}
			fmt.Println(marker + line)
		}
		fmt.Println()
		fmt.Println(styles.Field("Features", len(state.Backlog)))
		fmt.Println(styles.Field("Sprint backlog", len(state.Sprint)))
		return nil
	})
}

func runAdvance(cmd *cobra.Command, args []string) error {
	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, formatter *cli.OutputFormatter) error {
		stage, err := c.Service().Advance(ctx)
		if err != nil {
			return formatter.Fail(err)
		}
		if err := c.Persist(ctx); err != nil {
			return formatter.Fail(err)
		}

		if formatter.Quiet {
			fmt.Println(stage)
			return nil
		}
		if formatter.JSON {
			return formatter.Success(stageJSON(c.Service().Snapshot()))
		}

		fmt.Printf("✓ Now in %s\n", stage.Title())
		return nil
	})
}
