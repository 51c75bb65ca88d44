// Package backlog implements the product backlog commands: bulk creation,
// listing, scoring, renaming and deletion of features.
package backlog

import (
	"github.com/spf13/cobra"
)

// BacklogCmd returns the backlog parent command
func BacklogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backlog",
		Short: "Manage the product backlog",
	}

	cmd.AddCommand(AddCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(RankedCmd())
	cmd.AddCommand(ScoreCmd())
	cmd.AddCommand(RenameCmd())
	cmd.AddCommand(DeleteCmd())

	return cmd
}
