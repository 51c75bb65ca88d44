package app

import (
	"context"
	"database/sql"
	"testing"

	"github.com/thenoetrevino/sprintsim/internal/config"
	"github.com/thenoetrevino/sprintsim/internal/database"
	simservice "github.com/thenoetrevino/sprintsim/internal/services/simulation"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.InitDB(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	return db
}

func TestNew(t *testing.T) {
	db := setupTestDB(t)
	defer func() { _ = db.Close() }()

	app := New(db)

	if app == nil {
		t.Fatal("Expected app to be created, got nil")
	}
	if app.SimulationService == nil {
		t.Error("Expected SimulationService to be initialized")
	}
	if app.Config == nil {
		t.Error("Expected default config to be set")
	}
	if app.Repo() == nil {
		t.Error("Expected repository to be initialized")
	}
}

func TestClose(t *testing.T) {
	db := setupTestDB(t)
	defer func() { _ = db.Close() }()

	app := New(db)

	if err := app.Close(); err != nil {
		t.Errorf("Expected Close to succeed, got error: %v", err)
	}
}

func TestAsyncPersistence(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	defer func() { _ = db.Close() }()

	app := New(db, WithAsyncPersistence())
	if _, err := app.SimulationService.CreateFeatures(ctx, "Login\nCheckout"); err != nil {
		t.Fatalf("CreateFeatures failed: %v", err)
	}

	// Close drains the dispatcher so the snapshot is on disk afterwards
	if err := app.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	st, err := app.Repo().LoadState(ctx)
	if err != nil {
		t.Fatalf("LoadState failed: %v", err)
	}
	if len(st.Backlog) != 2 {
		t.Errorf("Expected 2 persisted features, got %d", len(st.Backlog))
	}
}

func TestConfirmDeletesDisabled(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	defer func() { _ = db.Close() }()

	off := false
	cfg := config.Default()
	cfg.ConfirmDeletes = &off

	// NeverConfirm would decline, but the config turns prompting off
	app := New(db, WithConfig(cfg), WithConfirmer(simservice.NeverConfirm))
	created, err := app.SimulationService.CreateFeatures(ctx, "Login")
	if err != nil {
		t.Fatalf("CreateFeatures failed: %v", err)
	}

	deleted, err := app.SimulationService.DeleteFeature(ctx, created[0].ID)
	if err != nil {
		t.Fatalf("DeleteFeature failed: %v", err)
	}
	if !deleted {
		t.Error("Expected deletion without prompting")
	}
}
