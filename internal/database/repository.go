package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/thenoetrevino/sprintsim/internal/events"
	"github.com/thenoetrevino/sprintsim/internal/models"
	"github.com/thenoetrevino/sprintsim/internal/simulation"
	"github.com/thenoetrevino/sprintsim/internal/types"
)

// StateStore is the persistence collaborator used by the simulation service
type StateStore interface {
	SaveState(ctx context.Context, s simulation.State) error
	LoadState(ctx context.Context) (simulation.State, error)
	SaveFeature(ctx context.Context, f models.Feature) error
	Reset(ctx context.Context) error
}

var _ StateStore = (*Repository)(nil)

// Repository stores simulation snapshots in SQLite
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new Repository instance wrapping the given database connection.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// ============================================================================
// Writes
// ============================================================================

// SaveState replaces the stored snapshot with s in one transaction. The open
// edit session is not persisted.
func (r *Repository) SaveState(ctx context.Context, s simulation.State) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		if err := execAll(ctx, tx,
			"DELETE FROM sprint_entries",
			"DELETE FROM features",
		); err != nil {
			return fmt.Errorf("failed to clear snapshot: %w", err)
		}

		_, err := tx.ExecContext(ctx,
			`UPDATE simulation
			 SET stage = ?, draft = ?, validation_error = ?, seq = ?, updated_at = CURRENT_TIMESTAMP
			 WHERE id = 1`,
			string(s.Stage), s.Draft, s.ValidationError, s.Seq,
		)
		if err != nil {
			return fmt.Errorf("failed to save stage: %w", err)
		}

		insertFeature, err := tx.PrepareContext(ctx,
			`INSERT INTO features (id, name, user_need, business_value, effort, position)
			 VALUES (?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return err
		}
		defer insertFeature.Close()

		for pos, id := range s.Backlog {
			f, ok := s.Features[id]
			if !ok {
				return fmt.Errorf("%w: backlog references missing feature %s", simulation.ErrCorruptState, id)
			}
			if _, err := insertFeature.ExecContext(ctx,
				f.ID.String(), f.Name, f.UserNeed, f.BusinessValue, f.Effort, pos,
			); err != nil {
				return fmt.Errorf("failed to save feature %s: %w", f.ID, err)
			}
		}

		columnPos := make(map[types.FeatureID]int, len(s.Sprint))
		for _, ids := range s.Board {
			for i, id := range ids {
				columnPos[id] = i
			}
		}

		insertEntry, err := tx.PrepareContext(ctx,
			`INSERT INTO sprint_entries (feature_id, status, sprint_position, column_position, score_tenths, effort)
			 VALUES (?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return err
		}
		defer insertEntry.Close()

		for pos, entry := range s.Sprint {
			if _, err := insertEntry.ExecContext(ctx,
				entry.FeatureID.String(), string(entry.Status), pos,
				columnPos[entry.FeatureID], entry.ScoreTenths, entry.Effort,
			); err != nil {
				return fmt.Errorf("failed to save sprint entry %s: %w", entry.FeatureID, err)
			}
		}

		return nil
	})
}

// SaveFeature inserts or updates a single feature. New features are
// appended to the end of the backlog.
func (r *Repository) SaveFeature(ctx context.Context, f models.Feature) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO features (id, name, user_need, business_value, effort, position)
		 VALUES (?, ?, ?, ?, ?, (SELECT COALESCE(MAX(position) + 1, 0) FROM features))
		 ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			user_need = excluded.user_need,
			business_value = excluded.business_value,
			effort = excluded.effort`,
		f.ID.String(), f.Name, f.UserNeed, f.BusinessValue, f.Effort,
	)
	if err != nil {
		return fmt.Errorf("failed to save feature %s: %w", f.ID, err)
	}
	return nil
}

// Reset deletes every feature and returns the simulation to the first stage
func (r *Repository) Reset(ctx context.Context) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		return execAll(ctx, tx,
			"DELETE FROM sprint_entries",
			"DELETE FROM features",
			`UPDATE simulation
			 SET stage = 'product_backlog', draft = '', validation_error = '', seq = 0, updated_at = CURRENT_TIMESTAMP
			 WHERE id = 1`,
		)
	})
}

// ============================================================================
// Reads
// ============================================================================

// LoadState rebuilds the stored snapshot. A fresh database yields an empty
// simulation. The result is validated with simulation.Check.
func (r *Repository) LoadState(ctx context.Context) (simulation.State, error) {
	s := simulation.New()

	var stage string
	err := r.db.QueryRowContext(ctx,
		"SELECT stage, draft, validation_error, seq FROM simulation WHERE id = 1",
	).Scan(&stage, &s.Draft, &s.ValidationError, &s.Seq)
	if errors.Is(err, sql.ErrNoRows) {
		return s, nil
	}
	if err != nil {
		return simulation.State{}, fmt.Errorf("failed to load stage: %w", err)
	}
	if s.Stage, err = models.ParseStage(stage); err != nil {
		return simulation.State{}, err
	}

	if err := r.loadFeatures(ctx, &s); err != nil {
		return simulation.State{}, err
	}
	if err := r.loadSprint(ctx, &s); err != nil {
		return simulation.State{}, err
	}

	if err := simulation.Check(s); err != nil {
		return simulation.State{}, err
	}
	return s, nil
}

func (r *Repository) loadFeatures(ctx context.Context, s *simulation.State) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, user_need, business_value, effort
		 FROM features
		 ORDER BY position`,
	)
	if err != nil {
		return fmt.Errorf("failed to load features: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var f models.Feature
		if err := rows.Scan(&f.ID, &f.Name, &f.UserNeed, &f.BusinessValue, &f.Effort); err != nil {
			return err
		}
		s.Features[f.ID] = f
		s.Backlog = append(s.Backlog, f.ID)
	}

	return rows.Err()
}

func (r *Repository) loadSprint(ctx context.Context, s *simulation.State) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT feature_id, status, score_tenths, effort
		 FROM sprint_entries
		 ORDER BY sprint_position`,
	)
	if err != nil {
		return fmt.Errorf("failed to load sprint: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var entry models.SprintEntry
		var status string
		if err := rows.Scan(&entry.FeatureID, &status, &entry.ScoreTenths, &entry.Effort); err != nil {
			return err
		}
		if entry.Status, err = models.ParseStatus(status); err != nil {
			return err
		}
		s.Sprint = append(s.Sprint, entry)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	return r.loadBoard(ctx, s)
}

func (r *Repository) loadBoard(ctx context.Context, s *simulation.State) error {
	for col, status := range models.Statuses {
		rows, err := r.db.QueryContext(ctx,
			`SELECT feature_id FROM sprint_entries
			 WHERE status = ?
			 ORDER BY column_position`,
			string(status),
		)
		if err != nil {
			return fmt.Errorf("failed to load %s column: %w", status, err)
		}

		var ids []types.FeatureID
		for rows.Next() {
			var id types.FeatureID
			if err := rows.Scan(&id); err != nil {
				rows.Close()
				return err
			}
			ids = append(ids, id)
		}
		err = rows.Err()
		rows.Close()
		if err != nil {
			return err
		}
		s.Board[col] = ids
	}
	return nil
}

// ============================================================================
// Events
// ============================================================================

// Handler persists every snapshot delivered by an events.Dispatcher
func (r *Repository) Handler() events.Handler {
	return func(ctx context.Context, e events.Event) error {
		return r.SaveState(ctx, e.State)
	}
}
