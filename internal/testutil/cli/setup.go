package cli

import (
	"context"
	"database/sql"
	"testing"

	"github.com/thenoetrevino/sprintsim/internal/app"
	"github.com/thenoetrevino/sprintsim/internal/models"
	simservice "github.com/thenoetrevino/sprintsim/internal/services/simulation"
	"github.com/thenoetrevino/sprintsim/internal/simulation"
	"github.com/thenoetrevino/sprintsim/internal/testutil"
	"github.com/thenoetrevino/sprintsim/internal/types"
)

// SetupCLITest creates an in-memory DB and returns both the DB and App instance
// This function is only for CLI tests and is isolated in a separate package
// to avoid import cycles when service tests import testutil.
// Feature ids are f1, f2, ... and deletions are declined unless --yes is given.
func SetupCLITest(t *testing.T) (*sql.DB, *app.App) {
	t.Helper()
	db := testutil.SetupTestDB(t)

	// Note: EventPublisher is nil - commands persist synchronously
	appInstance := app.New(db,
		app.WithReducer(simulation.NewReducer(simulation.WithIDGenerator(testutil.SequentialIDs()))),
		app.WithConfirmer(simservice.NeverConfirm),
	)

	return db, appInstance
}

// SeedFeatures creates one feature per name and saves the state
func SeedFeatures(t *testing.T, a *app.App, names ...string) []types.FeatureID {
	t.Helper()
	ctx := context.Background()

	text := ""
	for _, name := range names {
		text += name + "\n"
	}
	created, err := a.SimulationService.CreateFeatures(ctx, text)
	if err != nil {
		t.Fatalf("Failed to create features: %v", err)
	}
	save(t, a)

	ids := make([]types.FeatureID, len(created))
	for i, f := range created {
		ids[i] = f.ID
	}
	return ids
}

// AdvanceTo advances the simulation until it reaches stage and saves it
func AdvanceTo(t *testing.T, a *app.App, stage models.Stage) {
	t.Helper()
	ctx := context.Background()

	for a.SimulationService.Snapshot().Stage != stage {
		if _, err := a.SimulationService.Advance(ctx); err != nil {
			t.Fatalf("Failed to advance to %s: %v", stage, err)
		}
	}
	save(t, a)
}

// CommitToSprint adds the features to the sprint backlog and saves the state.
// The simulation must be in sprint planning.
func CommitToSprint(t *testing.T, a *app.App, ids ...types.FeatureID) {
	t.Helper()
	ctx := context.Background()

	for _, id := range ids {
		if err := a.SimulationService.AddToSprint(ctx, id); err != nil {
			t.Fatalf("Failed to add %s to sprint: %v", id, err)
		}
	}
	save(t, a)
}

func save(t *testing.T, a *app.App) {
	t.Helper()
	if err := a.SimulationService.Save(context.Background()); err != nil {
		t.Fatalf("Failed to save state: %v", err)
	}
}
