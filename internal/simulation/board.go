package simulation

import (
	"fmt"
	"slices"

	"github.com/thenoetrevino/sprintsim/internal/models"
	"github.com/thenoetrevino/sprintsim/internal/types"
)

// move relocates a sprint entry. The entry at FromIndex is removed from the
// source column first, then inserted at ToIndex of the destination column as
// it looks after the removal, so an in-column reorder uses final positions.
// ToIndex is clamped to the column bounds.
func move(s *State, m Move) error {
	if err := requireStage(s, models.StageSprintExecution); err != nil {
		return err
	}

	from, to := m.From.Column(), m.To.Column()
	if from < 0 {
		return fmt.Errorf("%w: %q", models.ErrUnknownStatus, m.From)
	}
	if to < 0 {
		return fmt.Errorf("%w: %q", models.ErrUnknownStatus, m.To)
	}

	entry := s.sprintIndex(m.ID)
	if entry < 0 {
		return nil
	}

	src := s.Board[from]
	idx := m.FromIndex
	if idx < 0 || idx >= len(src) || src[idx] != m.ID {
		// stale gesture index: fall back to the entry's real position
		idx = slices.Index(src, m.ID)
		if idx < 0 {
			return nil
		}
	}
	s.Board[from] = slices.Delete(src, idx, idx+1)

	dst := s.Board[to]
	at := min(max(m.ToIndex, 0), len(dst))
	s.Board[to] = slices.Insert(dst, at, m.ID)

	s.Sprint[entry].Status = m.To
	return nil
}

// Column returns the features in one board column, in display order
func Column(s State, status models.Status) []SprintItem {
	col := status.Column()
	if col < 0 {
		return nil
	}

	items := make([]SprintItem, 0, len(s.Board[col]))
	for _, id := range s.Board[col] {
		i := s.sprintIndex(id)
		if i < 0 {
			continue
		}
		items = append(items, SprintItem{SprintEntry: s.Sprint[i], Feature: s.Features[id]})
	}
	return items
}

// Locate returns the column and position holding id on the board
func Locate(s State, id types.FeatureID) (models.Status, int, bool) {
	for col, ids := range s.Board {
		if i := slices.Index(ids, id); i >= 0 {
			return models.Statuses[col], i, true
		}
	}
	return "", 0, false
}
