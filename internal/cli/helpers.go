package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/sprintsim/internal/models"
	"github.com/thenoetrevino/sprintsim/internal/simulation"
	"github.com/thenoetrevino/sprintsim/internal/types"
)

// Stdin is where "-" arguments are read from. Tests replace it.
var Stdin io.Reader = os.Stdin

// Run opens a CLI for cmd, runs fn with it and closes it afterwards
func Run(cmd *cobra.Command, fn func(ctx context.Context, c *CLI, f *OutputFormatter) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	formatter := FormatterFor(cmd)

	cliInstance, err := GetCLIFromContext(ctx)
	if err != nil {
		exitCode, code := Classify(err)
		if exitCode == ExitFailure {
			code = "INITIALIZATION_ERROR"
		}
		return formatter.FailWith(exitCode, code, err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}()

	return fn(ctx, cliInstance, formatter)
}

// ReadText returns value, or all of Stdin when value is "-"
func ReadText(value string) (string, error) {
	if value != "-" {
		return value, nil
	}
	data, err := io.ReadAll(Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}

// ResolveFeature resolves the --id flag of cmd to a feature id
func ResolveFeature(cmd *cobra.Command, c *CLI) (types.FeatureID, error) {
	ref, _ := cmd.Flags().GetString("id")
	return c.Service().Resolve(ref)
}

// FeatureJSON is the JSON shape of a feature
func FeatureJSON(s simulation.State, f models.Feature) map[string]interface{} {
	return map[string]interface{}{
		"id":             f.ID.String(),
		"name":           f.Name,
		"user_need":      f.UserNeed,
		"business_value": f.BusinessValue,
		"effort":         f.Effort,
		"score":          simulation.Score(f),
		"in_sprint":      simulation.InSprint(s, f.ID),
	}
}

// SprintItemJSON is the JSON shape of a sprint entry
func SprintItemJSON(item simulation.SprintItem) map[string]interface{} {
	return map[string]interface{}{
		"id":     item.FeatureID.String(),
		"name":   item.Feature.Name,
		"status": string(item.Status),
		"score":  item.Score(),
		"effort": item.Effort,
	}
}

// FeatureLine formats a feature as one human-readable line
func FeatureLine(f models.Feature) string {
	return fmt.Sprintf("%s  %-30s  need %d  value %d  effort %d  score %.1f",
		f.ID.Short(), f.Name, f.UserNeed, f.BusinessValue, f.Effort, simulation.Score(f))
}

// ParseStatusFlag reads the named status flag
func ParseStatusFlag(cmd *cobra.Command, name string) (models.Status, error) {
	value, _ := cmd.Flags().GetString(name)
	return models.ParseStatus(strings.TrimSpace(value))
}

// MarkRequired marks each named flag of cmd as required
func MarkRequired(cmd *cobra.Command, names ...string) {
	for _, name := range names {
		if err := cmd.MarkFlagRequired(name); err != nil {
			slog.Error("Error marking flag as required", "flag", name, "error", err)
		}
	}
}

// PrintIDs writes one feature id per line, used by --quiet
func PrintIDs(ids ...types.FeatureID) {
	for _, id := range ids {
		fmt.Println(id)
	}
}
