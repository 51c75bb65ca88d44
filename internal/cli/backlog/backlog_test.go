package backlog

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	clipkg "github.com/thenoetrevino/sprintsim/internal/cli"
	"github.com/thenoetrevino/sprintsim/internal/models"
	"github.com/thenoetrevino/sprintsim/internal/simulation"
	"github.com/thenoetrevino/sprintsim/internal/testutil"
	"github.com/thenoetrevino/sprintsim/internal/testutil/cli"
	"github.com/thenoetrevino/sprintsim/internal/types"
)

func TestBacklogCmd_Subcommands(t *testing.T) {
	cmd := BacklogCmd()

	names := make([]string, 0)
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.ElementsMatch(t, []string{"add", "list", "ranked", "score", "rename", "delete"}, names)
}

func TestAddFeatures_Positive(t *testing.T) {
	t.Run("Add from text flag", func(t *testing.T) {
		_, app := cli.SetupCLITest(t)

		output, err := cli.ExecuteCLICommand(t, app, AddCmd(), []string{
			"--text", "Login\n\n  Checkout  \n",
		})

		assert.NoError(t, err)
		assert.Contains(t, output, "Added 2 feature(s)")
		assert.Contains(t, output, "Checkout")

		// State survives a reload from the database
		require.NoError(t, app.SimulationService.Load(context.Background()))
		state := app.SimulationService.Snapshot()
		assert.Equal(t, []types.FeatureID{"f1", "f2"}, state.Backlog)
		assert.Equal(t, "Checkout", state.Features["f2"].Name)
		assert.Equal(t, models.DefaultScore, state.Features["f2"].Effort)
	})

	t.Run("Add from stdin", func(t *testing.T) {
		_, app := cli.SetupCLITest(t)
		orig := clipkg.Stdin
		defer func() { clipkg.Stdin = orig }()
		clipkg.Stdin = strings.NewReader("Search\nCart\nProfile\n")

		output, err := cli.ExecuteCLICommand(t, app, AddCmd(), []string{"-", "--quiet"})

		assert.NoError(t, err)
		assert.Equal(t, "f1\nf2\nf3\n", output)
	})

	t.Run("Add with json output", func(t *testing.T) {
		_, app := cli.SetupCLITest(t)

		output, err := cli.ExecuteCLICommand(t, app, AddCmd(), []string{"Login", "--json"})

		assert.NoError(t, err)
		result := testutil.ParseJSON(t, output)
		assert.True(t, result["success"].(bool))
		data := result["data"].(map[string]interface{})
		assert.Equal(t, float64(1), data["count"])
		feature := data["features"].([]interface{})[0].(map[string]interface{})
		assert.Equal(t, "Login", feature["name"])
		assert.Equal(t, 2.4, feature["score"])
	})
}

func TestAddFeatures_Negative(t *testing.T) {
	t.Run("Blank input", func(t *testing.T) {
		_, app := cli.SetupCLITest(t)

		output, err := cli.ExecuteCLICommand(t, app, AddCmd(), []string{"--text", " \n\t\n", "--json"})

		assert.Error(t, err)
		assert.Equal(t, clipkg.ExitValidation, clipkg.ExitCode(err))
		assert.Contains(t, output, "EMPTY_INPUT")
		assert.Empty(t, app.SimulationService.Snapshot().Features)
	})

	t.Run("Wrong stage", func(t *testing.T) {
		_, app := cli.SetupCLITest(t)
		cli.AdvanceTo(t, app, models.StagePrioritization)

		_, err := cli.ExecuteCLICommand(t, app, AddCmd(), []string{"Login", "--json"})

		assert.Equal(t, clipkg.ExitStage, clipkg.ExitCode(err))
	})
}

func TestListAndRanked(t *testing.T) {
	_, app := cli.SetupCLITest(t)
	ids := cli.SeedFeatures(t, app, "Login", "Checkout", "Search")
	cli.AdvanceTo(t, app, models.StagePrioritization)

	ctx := context.Background()
	require.NoError(t, app.SimulationService.UpdateScore(ctx, ids[2], models.DimensionUserNeed, 5))
	require.NoError(t, app.SimulationService.UpdateScore(ctx, ids[0], models.DimensionEffort, 5))
	require.NoError(t, app.SimulationService.Save(ctx))

	t.Run("List keeps creation order", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, ListCmd(), []string{"--quiet"})

		assert.NoError(t, err)
		assert.Equal(t, "f1\nf2\nf3\n", output)
	})

	t.Run("Ranked sorts by score", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, RankedCmd(), []string{"--quiet"})

		assert.NoError(t, err)
		assert.Equal(t, "f3\nf2\nf1\n", output)
	})

	t.Run("Ranked json carries scores", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, RankedCmd(), []string{"--json"})

		assert.NoError(t, err)
		data := testutil.ParseJSON(t, output)["data"].(map[string]interface{})
		features := data["features"].([]interface{})
		require.Len(t, features, 3)
		assert.Equal(t, 3.4, features[0].(map[string]interface{})["score"])
		assert.Equal(t, 2.0, features[2].(map[string]interface{})["score"])
	})

	t.Run("Human output", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, ListCmd(), []string{})

		assert.NoError(t, err)
		assert.Contains(t, output, "Product Backlog (3)")
		assert.Contains(t, output, "Search")
	})
}

func TestListEmpty(t *testing.T) {
	_, app := cli.SetupCLITest(t)

	output, err := cli.ExecuteCLICommand(t, app, ListCmd(), []string{})

	assert.NoError(t, err)
	assert.Contains(t, output, "No features in the backlog")
}

func TestScoreFeature(t *testing.T) {
	t.Run("Updates given dimensions", func(t *testing.T) {
		_, app := cli.SetupCLITest(t)
		cli.SeedFeatures(t, app, "Login")
		cli.AdvanceTo(t, app, models.StagePrioritization)

		output, err := cli.ExecuteCLICommand(t, app, ScoreCmd(), []string{
			"--id", "Login", "--user-need", "5", "--effort", "1", "--json",
		})

		assert.NoError(t, err)
		data := testutil.ParseJSON(t, output)["data"].(map[string]interface{})
		assert.Equal(t, float64(5), data["user_need"])
		assert.Equal(t, float64(3), data["business_value"])
		assert.Equal(t, float64(1), data["effort"])
		assert.Equal(t, 3.8, data["score"])
	})

	t.Run("Out of range leaves feature unchanged", func(t *testing.T) {
		_, app := cli.SetupCLITest(t)
		cli.SeedFeatures(t, app, "Login")
		cli.AdvanceTo(t, app, models.StagePrioritization)

		_, err := cli.ExecuteCLICommand(t, app, ScoreCmd(), []string{"--id", "f1", "--effort", "6", "--json"})

		assert.Equal(t, clipkg.ExitValidation, clipkg.ExitCode(err))
		require.NoError(t, app.SimulationService.Load(context.Background()))
		assert.Equal(t, 3, app.SimulationService.Snapshot().Features["f1"].Effort)
	})

	t.Run("Locked outside prioritization", func(t *testing.T) {
		_, app := cli.SetupCLITest(t)
		cli.SeedFeatures(t, app, "Login")

		_, err := cli.ExecuteCLICommand(t, app, ScoreCmd(), []string{"--id", "f1", "--effort", "2", "--json"})

		assert.Equal(t, clipkg.ExitStage, clipkg.ExitCode(err))
	})

	t.Run("No dimension flags", func(t *testing.T) {
		_, app := cli.SetupCLITest(t)
		cli.SeedFeatures(t, app, "Login")

		output, err := cli.ExecuteCLICommand(t, app, ScoreCmd(), []string{"--id", "f1", "--json"})

		assert.Equal(t, clipkg.ExitUsage, clipkg.ExitCode(err))
		assert.Contains(t, output, "NO_UPDATES")
	})

	t.Run("Unknown feature", func(t *testing.T) {
		_, app := cli.SetupCLITest(t)

		_, err := cli.ExecuteCLICommand(t, app, ScoreCmd(), []string{"--id", "nope", "--effort", "2", "--json"})

		assert.Equal(t, clipkg.ExitNotFound, clipkg.ExitCode(err))
	})
}

func TestRenameFeature(t *testing.T) {
	_, app := cli.SetupCLITest(t)
	cli.SeedFeatures(t, app, "Login", "Checkout")
	cli.AdvanceTo(t, app, models.StageSprintPlanning)
	cli.CommitToSprint(t, app, "f1")

	t.Run("Rename shows in sprint", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, RenameCmd(), []string{"--id", "f1", "--name", "  Sign in  "})

		assert.NoError(t, err)
		assert.Contains(t, output, "Renamed f1 to 'Sign in'")
		items := simulation.SprintFeatures(app.SimulationService.Snapshot())
		require.Len(t, items, 1)
		assert.Equal(t, "Sign in", items[0].Feature.Name)
	})

	t.Run("Blank name rejected", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, app, RenameCmd(), []string{"--id", "f2", "--name", "   ", "--json"})

		assert.Equal(t, clipkg.ExitValidation, clipkg.ExitCode(err))
		assert.Equal(t, "Checkout", app.SimulationService.Snapshot().Features["f2"].Name)
	})
}

func TestDeleteFeature(t *testing.T) {
	t.Run("Declined without --yes", func(t *testing.T) {
		_, app := cli.SetupCLITest(t)
		cli.SeedFeatures(t, app, "Login")

		output, err := cli.ExecuteCLICommand(t, app, DeleteCmd(), []string{"--id", "f1"})

		assert.NoError(t, err)
		assert.Contains(t, output, "Cancelled")
		assert.Contains(t, app.SimulationService.Snapshot().Features, types.FeatureID("f1"))
	})

	t.Run("Deleted with --yes cascades to sprint and board", func(t *testing.T) {
		_, app := cli.SetupCLITest(t)
		cli.SeedFeatures(t, app, "Login", "Checkout")
		cli.AdvanceTo(t, app, models.StageSprintPlanning)
		cli.CommitToSprint(t, app, "f1", "f2")

		output, err := cli.ExecuteCLICommand(t, app, DeleteCmd(), []string{"--id", "f1", "--yes", "--json"})

		assert.NoError(t, err)
		data := testutil.ParseJSON(t, output)["data"].(map[string]interface{})
		assert.Equal(t, true, data["deleted"])
		assert.Equal(t, "Login", data["name"])

		require.NoError(t, app.SimulationService.Load(context.Background()))
		state := app.SimulationService.Snapshot()
		assert.Equal(t, []types.FeatureID{"f2"}, state.Backlog)
		require.Len(t, state.Sprint, 1)
		assert.Equal(t, []types.FeatureID{"f2"}, state.Board[models.StatusTodo.Column()])
	})

	t.Run("Quiet prints deleted id", func(t *testing.T) {
		_, app := cli.SetupCLITest(t)
		cli.SeedFeatures(t, app, "Login")

		output, err := cli.ExecuteCLICommand(t, app, DeleteCmd(), []string{"--id", "f1", "--yes", "--quiet"})

		assert.NoError(t, err)
		assert.Equal(t, "f1\n", output)
	})
}
