package sprint

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	clipkg "github.com/thenoetrevino/sprintsim/internal/cli"
	"github.com/thenoetrevino/sprintsim/internal/models"
	"github.com/thenoetrevino/sprintsim/internal/testutil"
	"github.com/thenoetrevino/sprintsim/internal/testutil/cli"
)

func TestSprintAdd(t *testing.T) {
	t.Run("Adds once and snapshots effort", func(t *testing.T) {
		_, app := cli.SetupCLITest(t)
		cli.SeedFeatures(t, app, "Login", "Checkout")
		cli.AdvanceTo(t, app, models.StagePrioritization)
		require.NoError(t, app.SimulationService.UpdateScore(context.Background(), "f2", models.DimensionEffort, 5))
		cli.AdvanceTo(t, app, models.StageSprintPlanning)

		for i := 0; i < 2; i++ {
			_, err := cli.ExecuteCLICommand(t, app, AddCmd(), []string{"--id", "Checkout", "--quiet"})
			assert.NoError(t, err)
		}
		output, err := cli.ExecuteCLICommand(t, app, AddCmd(), []string{"--id", "f1", "--json"})

		assert.NoError(t, err)
		data := testutil.ParseJSON(t, output)["data"].(map[string]interface{})
		assert.Equal(t, float64(2), data["count"])
		assert.Equal(t, float64(8), data["total_effort"])
		first := data["items"].([]interface{})[0].(map[string]interface{})
		assert.Equal(t, "f2", first["id"])
		assert.Equal(t, "todo", first["status"])
	})

	t.Run("Locked outside planning", func(t *testing.T) {
		_, app := cli.SetupCLITest(t)
		cli.SeedFeatures(t, app, "Login")

		output, err := cli.ExecuteCLICommand(t, app, AddCmd(), []string{"--id", "f1", "--json"})

		assert.Equal(t, clipkg.ExitStage, clipkg.ExitCode(err))
		assert.Contains(t, output, "STAGE_LOCKED")
		assert.Empty(t, app.SimulationService.Snapshot().Sprint)
	})
}

func TestSprintRemoveAndList(t *testing.T) {
	_, app := cli.SetupCLITest(t)
	cli.SeedFeatures(t, app, "Login", "Checkout", "Search")
	cli.AdvanceTo(t, app, models.StageSprintPlanning)
	cli.CommitToSprint(t, app, "f1", "f2", "f3")

	output, err := cli.ExecuteCLICommand(t, app, RemoveCmd(), []string{"--id", "f2", "--quiet"})
	assert.NoError(t, err)
	assert.Equal(t, "f2\n", output)

	output, err = cli.ExecuteCLICommand(t, app, ListCmd(), []string{"--quiet"})
	assert.NoError(t, err)
	assert.Equal(t, "f1\nf3\n", output)

	output, err = cli.ExecuteCLICommand(t, app, ListCmd(), []string{})
	assert.NoError(t, err)
	assert.Contains(t, output, "Sprint Backlog (2)")
	assert.Contains(t, output, "Total effort: 6")

	state := app.SimulationService.Snapshot()
	assert.Len(t, state.Board[models.StatusTodo.Column()], 2)
}

func TestSprintListEmpty(t *testing.T) {
	_, app := cli.SetupCLITest(t)

	output, err := cli.ExecuteCLICommand(t, app, ListCmd(), []string{})

	assert.NoError(t, err)
	assert.Contains(t, output, "The sprint backlog is empty")
}
