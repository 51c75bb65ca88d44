package cmd

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/sprintsim/internal/cli/backlog"
	"github.com/thenoetrevino/sprintsim/internal/cli/board"
	"github.com/thenoetrevino/sprintsim/internal/cli/reset"
	"github.com/thenoetrevino/sprintsim/internal/cli/review"
	"github.com/thenoetrevino/sprintsim/internal/cli/sprint"
	"github.com/thenoetrevino/sprintsim/internal/cli/stage"
	"github.com/thenoetrevino/sprintsim/internal/cli/tutorial"
	"github.com/thenoetrevino/sprintsim/internal/launcher"
)

// NewRootCmd builds the sprintsim command tree. Without a subcommand the
// interactive board is launched.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sprintsim",
		Short: "sprintsim - walk a product backlog through one agile sprint",
		Long: `sprintsim simulates a single agile sprint in the terminal: capture a backlog,
prioritize it, plan the sprint, work the Kanban board and review the result.

Run without arguments for the interactive interface, or use the subcommands
to script each step.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return launcher.Launch()
		},
	}

	rootCmd.AddCommand(backlog.BacklogCmd())
	rootCmd.AddCommand(stage.StageCmd())
	rootCmd.AddCommand(sprint.SprintCmd())
	rootCmd.AddCommand(board.BoardCmd())
	rootCmd.AddCommand(review.ReviewCmd())
	rootCmd.AddCommand(reset.ResetCmd())
	rootCmd.AddCommand(tutorial.TutorialCmd())

	return rootCmd
}

func Execute() error {
	return NewRootCmd().Execute()
}
