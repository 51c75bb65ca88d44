package database

import (
	"context"
	"database/sql"
)

// runMigrations creates the database schema and seeds the singleton
// simulation row if needed
func runMigrations(ctx context.Context, db *sql.DB) error {
	// Create simulation table. There is only ever one row (id = 1).
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS simulation (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			stage TEXT NOT NULL DEFAULT 'product_backlog',
			draft TEXT NOT NULL DEFAULT '',
			validation_error TEXT NOT NULL DEFAULT '',
			seq INTEGER NOT NULL DEFAULT 0,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return err
	}

	// Create features table
	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS features (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			user_need INTEGER NOT NULL CHECK (user_need BETWEEN 1 AND 5),
			business_value INTEGER NOT NULL CHECK (business_value BETWEEN 1 AND 5),
			effort INTEGER NOT NULL CHECK (effort BETWEEN 1 AND 5),
			position INTEGER NOT NULL
		)
	`)
	if err != nil {
		return err
	}

	// Create sprint entries table
	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS sprint_entries (
			feature_id TEXT PRIMARY KEY,
			status TEXT NOT NULL,
			sprint_position INTEGER NOT NULL,
			column_position INTEGER NOT NULL,
			score_tenths INTEGER NOT NULL,
			effort INTEGER NOT NULL,
			FOREIGN KEY (feature_id) REFERENCES features(id) ON DELETE CASCADE
		)
	`)
	if err != nil {
		return err
	}

	// Create index for efficient queries
	_, err = db.ExecContext(ctx, `
		CREATE INDEX IF NOT EXISTS idx_sprint_entries_column
		ON sprint_entries(status, column_position)
	`)
	if err != nil {
		return err
	}

	return seedSimulation(ctx, db)
}

// seedSimulation inserts the simulation row if the table is empty
func seedSimulation(ctx context.Context, db *sql.DB) error {
	var count int
	err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM simulation").Scan(&count)
	if err != nil {
		return err
	}

	if count > 0 {
		return nil
	}

	_, err = db.ExecContext(ctx, "INSERT INTO simulation (id) VALUES (1)")
	return err
}
