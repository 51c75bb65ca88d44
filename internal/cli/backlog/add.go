package backlog

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/sprintsim/internal/cli"
	"github.com/thenoetrevino/sprintsim/internal/models"
)

// AddCmd returns the backlog add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [text|-]",
		Short: "Add features to the product backlog",
		Long: `Add one feature per non-blank line of text.

Text comes from --text, the first argument, or stdin when the argument is "-".
Every new feature starts with user need, business value and effort of 3.

Examples:
  sprintsim backlog add "Login page"
  printf 'Login\nCheckout\n' | sprintsim backlog add -`,
		Args: cobra.MaximumNArgs(1),
		RunE: runAdd,
	}

	cmd.Flags().String("text", "", "Newline separated feature names")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	raw, _ := cmd.Flags().GetString("text")
	if len(args) > 0 {
		raw = args[0]
	}

	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, formatter *cli.OutputFormatter) error {
		text, err := cli.ReadText(raw)
		if err != nil {
			return formatter.FailWith(cli.ExitDataErr, "READ_ERROR", err)
		}

		created, err := c.Service().CreateFeatures(ctx, text)
		if err != nil {
			return formatter.Fail(err)
		}
		if err := c.Persist(ctx); err != nil {
			return formatter.Fail(err)
		}

		return printCreated(c, formatter, created)
	})
}

func printCreated(c *cli.CLI, formatter *cli.OutputFormatter, created []models.Feature) error {
	if formatter.Quiet {
		for _, f := range created {
			cli.PrintIDs(f.ID)
		}
		return nil
	}

	if formatter.JSON {
		state := c.Service().Snapshot()
		features := make([]map[string]interface{}, 0, len(created))
		for _, f := range created {
			features = append(features, cli.FeatureJSON(state, f))
		}
		return formatter.Success(map[string]interface{}{
			"features": features,
			"count":    len(created),
		})
	}

	fmt.Printf("✓ Added %d feature(s)\n", len(created))
	for _, f := range created {
		fmt.Printf("  %s  %s\n", f.ID.Short(), f.Name)
	}
	return nil
}
