package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/thenoetrevino/sprintsim/internal/events"
	"github.com/thenoetrevino/sprintsim/internal/models"
	"github.com/thenoetrevino/sprintsim/internal/simulation"
	"github.com/thenoetrevino/sprintsim/internal/types"
)

func TestLoadState_FreshDatabase(t *testing.T) {
	repo := NewRepository(setupTestDB(t))

	s, err := repo.LoadState(context.Background())
	if err != nil {
		t.Fatalf("LoadState failed: %v", err)
	}

	if s.Stage != models.StageProductBacklog {
		t.Errorf("Expected stage %s, got %s", models.StageProductBacklog, s.Stage)
	}
	if len(s.Features) != 0 || len(s.Sprint) != 0 {
		t.Errorf("Expected empty simulation, got %d features and %d sprint entries", len(s.Features), len(s.Sprint))
	}
}

func TestSaveState_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(setupTestDB(t))
	want := executionState(t)

	if err := repo.SaveState(ctx, want); err != nil {
		t.Fatalf("SaveState failed: %v", err)
	}

	got, err := repo.LoadState(ctx)
	if err != nil {
		t.Fatalf("LoadState failed: %v", err)
	}

	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("Loaded state mismatch (-want +got):\n%s", diff)
	}
}

func TestSaveState_ReplacesPreviousSnapshot(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(setupTestDB(t))

	if err := repo.SaveState(ctx, executionState(t)); err != nil {
		t.Fatalf("SaveState failed: %v", err)
	}

	r := simulation.NewReducer(simulation.WithIDGenerator(func() types.FeatureID { return "only" }))
	smaller := mustApply(t, r, simulation.New(), simulation.CreateBatch{Text: "Only"})
	if err := repo.SaveState(ctx, smaller); err != nil {
		t.Fatalf("SaveState failed: %v", err)
	}

	got, err := repo.LoadState(ctx)
	if err != nil {
		t.Fatalf("LoadState failed: %v", err)
	}
	if len(got.Backlog) != 1 || got.Backlog[0] != "only" {
		t.Errorf("Expected backlog [only], got %v", got.Backlog)
	}
	if len(got.Sprint) != 0 {
		t.Errorf("Expected no sprint entries, got %d", len(got.Sprint))
	}
	if got.Stage != models.StageProductBacklog {
		t.Errorf("Expected stage %s, got %s", models.StageProductBacklog, got.Stage)
	}
}

func TestSaveState_EditSessionNotPersisted(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(setupTestDB(t))
	s := executionState(t)
	s.Edit = &simulation.EditBuffer{FeatureID: "f1", Name: "Login"}

	if err := repo.SaveState(ctx, s); err != nil {
		t.Fatalf("SaveState failed: %v", err)
	}
	got, err := repo.LoadState(ctx)
	if err != nil {
		t.Fatalf("LoadState failed: %v", err)
	}
	if got.Edit != nil {
		t.Errorf("Expected no edit session after load, got %+v", got.Edit)
	}
}

func TestSaveState_RejectsDanglingBacklog(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	s := simulation.New()
	s.Backlog = []types.FeatureID{"ghost"}

	err := repo.SaveState(context.Background(), s)
	if !errors.Is(err, simulation.ErrCorruptState) {
		t.Errorf("Expected ErrCorruptState, got %v", err)
	}
}

func TestSaveFeature_InsertAndUpdate(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(setupTestDB(t))

	login := models.NewFeature("a", "Login")
	checkout := models.NewFeature("b", "Checkout")
	for _, f := range []models.Feature{login, checkout} {
		if err := repo.SaveFeature(ctx, f); err != nil {
			t.Fatalf("SaveFeature failed: %v", err)
		}
	}

	login.Name = "Sign in"
	login.Effort = 5
	if err := repo.SaveFeature(ctx, login); err != nil {
		t.Fatalf("SaveFeature update failed: %v", err)
	}

	s, err := repo.LoadState(ctx)
	if err != nil {
		t.Fatalf("LoadState failed: %v", err)
	}
	if diff := cmp.Diff([]types.FeatureID{"a", "b"}, s.Backlog); diff != "" {
		t.Errorf("Backlog order mismatch (-want +got):\n%s", diff)
	}
	if got := s.Features["a"]; got.Name != "Sign in" || got.Effort != 5 {
		t.Errorf("Expected updated feature, got %+v", got)
	}
}

func TestSaveFeature_RejectsOutOfRangeScore(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	f := models.NewFeature("a", "Login")
	f.Effort = 9

	if err := repo.SaveFeature(context.Background(), f); err == nil {
		t.Error("Expected constraint violation for effort 9")
	}
}

func TestDeleteFeature_CascadesToSprintEntries(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewRepository(db)
	if err := repo.SaveState(ctx, executionState(t)); err != nil {
		t.Fatalf("SaveState failed: %v", err)
	}

	if _, err := db.ExecContext(ctx, "DELETE FROM features WHERE id = ?", "f1"); err != nil {
		t.Fatalf("Failed to delete feature: %v", err)
	}

	var count int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM sprint_entries WHERE feature_id = ?", "f1").Scan(&count); err != nil {
		t.Fatalf("Failed to count sprint entries: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected sprint entry to be removed by cascade, found %d", count)
	}
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(setupTestDB(t))
	if err := repo.SaveState(ctx, executionState(t)); err != nil {
		t.Fatalf("SaveState failed: %v", err)
	}

	if err := repo.Reset(ctx); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}

	s, err := repo.LoadState(ctx)
	if err != nil {
		t.Fatalf("LoadState failed: %v", err)
	}
	if diff := cmp.Diff(simulation.New(), s, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("Expected empty simulation after reset (-want +got):\n%s", diff)
	}
}

func TestLoadState_DetectsCorruptBoard(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewRepository(db)
	if err := repo.SaveState(ctx, executionState(t)); err != nil {
		t.Fatalf("SaveState failed: %v", err)
	}

	if _, err := db.ExecContext(ctx, "UPDATE sprint_entries SET status = 'sideways' WHERE feature_id = 'f1'"); err != nil {
		t.Fatalf("Failed to corrupt status: %v", err)
	}

	if _, err := repo.LoadState(ctx); !errors.Is(err, models.ErrUnknownStatus) {
		t.Errorf("Expected ErrUnknownStatus, got %v", err)
	}
}

func TestPersistenceAcrossRestart(t *testing.T) {
	ctx := context.Background()
	db, path := setupTestDBFile(t)
	want := executionState(t)
	if err := NewRepository(db).SaveState(ctx, want); err != nil {
		t.Fatalf("SaveState failed: %v", err)
	}

	db = closeAndReopenDB(t, db, path)

	got, err := NewRepository(db).LoadState(ctx)
	if err != nil {
		t.Fatalf("LoadState after restart failed: %v", err)
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("State did not survive restart (-want +got):\n%s", diff)
	}
}

func TestHandler_PersistsDispatchedSnapshots(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(setupTestDB(t))
	d := events.NewDispatcher([]events.Handler{repo.Handler()}, events.WithHandlerTimeout(time.Second))

	want := executionState(t)
	if err := d.SendEvent(events.Event{Type: events.EventBoardChanged, State: want}); err != nil {
		t.Fatalf("SendEvent failed: %v", err)
	}
	if err := d.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	got, err := repo.LoadState(ctx)
	if err != nil {
		t.Fatalf("LoadState failed: %v", err)
	}
	if got.Seq != want.Seq {
		t.Errorf("Expected seq %d, got %d", want.Seq, got.Seq)
	}
	if snap := d.Metrics().GetSnapshot(); snap.EventsDelivered != 1 {
		t.Errorf("Expected 1 delivered event, got %d", snap.EventsDelivered)
	}
}
