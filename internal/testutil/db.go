package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/thenoetrevino/sprintsim/internal/database"
	"github.com/thenoetrevino/sprintsim/internal/types"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

// TestAppKey carries an injected *app.App through a command context
const TestAppKey ContextKey = "testApp"

// SetupTestDB creates an in-memory database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.InitDB(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})
	return db
}

// SequentialIDs returns a generator producing f1, f2, f3, ...
func SequentialIDs() func() types.FeatureID {
	n := 0
	return func() types.FeatureID {
		n++
		return types.FeatureID(fmt.Sprintf("f%d", n))
	}
}
