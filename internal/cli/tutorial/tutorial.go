package tutorial

import (
	_ "embed"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/sprintsim/internal/report"
)

//go:embed tutorial.md
var tutorialContent string

// TutorialCmd returns the tutorial command
func TutorialCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tutorial",
		Short: "Walk through the five simulation stages",
		Long: `Print a short guide to the sprintsim workflow, one section per stage,
with the commands that drive each step.

Use --raw for the markdown source (suitable for agents and pagers).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, _ := cmd.Flags().GetBool("raw")
			style, _ := cmd.Flags().GetString("style")
			return outputTutorial(cmd, raw, style)
		},
	}

	cmd.Flags().Bool("raw", false, "Print markdown without rendering")
	cmd.Flags().String("style", "", "Glamour style (dark, light, notty, ...); detected from the terminal when empty")
	return cmd
}

func outputTutorial(cmd *cobra.Command, raw bool, style string) error {
	out := cmd.OutOrStdout()
	if raw {
		_, err := fmt.Fprint(out, tutorialContent)
		return err
	}

	rendered, err := report.Render(tutorialContent, style, 80)
	if err != nil {
		return fmt.Errorf("failed to render tutorial: %w", err)
	}
	_, err = fmt.Fprint(out, rendered)
	return err
}
