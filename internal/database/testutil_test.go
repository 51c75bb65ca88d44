package database

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/thenoetrevino/sprintsim/internal/models"
	"github.com/thenoetrevino/sprintsim/internal/simulation"
	"github.com/thenoetrevino/sprintsim/internal/types"
)

// ============================================================================
// DATABASE SETUP HELPERS
// ============================================================================

// setupTestDB creates an in-memory database and runs migrations
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := InitDB(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// setupTestDBFile creates a file-based database for testing persistence across restarts
func setupTestDBFile(t *testing.T) (*sql.DB, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "sprintsim.db")
	db, err := InitDB(context.Background(), path)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	return db, path
}

// closeAndReopenDB simulates app restart by closing and reopening the database
func closeAndReopenDB(t *testing.T, db *sql.DB, path string) *sql.DB {
	t.Helper()
	if err := db.Close(); err != nil {
		t.Fatalf("Failed to close database: %v", err)
	}

	newDB, err := InitDB(context.Background(), path)
	if err != nil {
		t.Fatalf("Failed to reopen database: %v", err)
	}
	t.Cleanup(func() { newDB.Close() })
	return newDB
}

// ============================================================================
// STATE BUILDERS
// ============================================================================

// sequentialIDs mints f1, f2, ...
func sequentialIDs() func() types.FeatureID {
	n := 0
	return func() types.FeatureID {
		n++
		return types.FeatureID(fmt.Sprintf("f%d", n))
	}
}

// mustApply runs each action in order and fails the test on the first error
func mustApply(t *testing.T, r *simulation.Reducer, s simulation.State, actions ...simulation.Action) simulation.State {
	t.Helper()
	for _, a := range actions {
		var err error
		s, err = r.Reduce(s, a)
		if err != nil {
			t.Fatalf("%s failed: %v", a.Name(), err)
		}
	}
	return s
}

// executionState returns a sprint in execution with f1 in progress and f2
// done, f3 left in the backlog
func executionState(t *testing.T) simulation.State {
	t.Helper()
	r := simulation.NewReducer(simulation.WithIDGenerator(sequentialIDs()))
	return mustApply(t, r, simulation.New(),
		simulation.CreateBatch{Text: "Login\nCheckout\nSearch"},
		simulation.Advance{},
		simulation.UpdateField{ID: "f1", Dimension: models.DimensionUserNeed, Value: 5},
		simulation.UpdateField{ID: "f2", Dimension: models.DimensionEffort, Value: 1},
		simulation.Advance{},
		simulation.AddToSprint{ID: "f1"},
		simulation.AddToSprint{ID: "f2"},
		simulation.Advance{},
		simulation.Move{ID: "f1", From: models.StatusTodo, FromIndex: 0, To: models.StatusInProgress, ToIndex: 0},
		simulation.Move{ID: "f2", From: models.StatusTodo, FromIndex: 0, To: models.StatusDone, ToIndex: 0},
	)
}
