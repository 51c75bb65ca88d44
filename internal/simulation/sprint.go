package simulation

import (
	"github.com/thenoetrevino/sprintsim/internal/models"
	"github.com/thenoetrevino/sprintsim/internal/types"
)

// addToSprint commits a feature with status todo and appends it to the todo
// column. Adding an id that is already committed is a no-op.
func addToSprint(s *State, id types.FeatureID) error {
	if err := requireStage(s, models.StageSprintPlanning); err != nil {
		return err
	}

	f, ok := s.Features[id]
	if !ok || s.sprintIndex(id) >= 0 {
		return nil
	}

	s.Sprint = append(s.Sprint, models.SprintEntry{
		FeatureID:   id,
		Status:      models.StatusTodo,
		ScoreTenths: ScoreTenths(f),
		Effort:      f.Effort,
	})
	todo := models.StatusTodo.Column()
	s.Board[todo] = append(s.Board[todo], id)
	return nil
}

func removeFromSprint(s *State, id types.FeatureID) error {
	if err := requireStage(s, models.StageSprintPlanning); err != nil {
		return err
	}
	dropFromSprint(s, id)
	return nil
}

// dropFromSprint removes id from the sprint backlog and from whichever
// column holds it
func dropFromSprint(s *State, id types.FeatureID) {
	i := s.sprintIndex(id)
	if i < 0 {
		return
	}
	s.Sprint = append(s.Sprint[:i], s.Sprint[i+1:]...)
	for col := range s.Board {
		s.Board[col] = without(s.Board[col], id)
	}
}

// InSprint reports whether id is committed to the sprint
func InSprint(s State, id types.FeatureID) bool {
	return s.sprintIndex(id) >= 0
}

// CanAddToSprint reports whether AddToSprint would commit a new entry
func CanAddToSprint(s State, id types.FeatureID) bool {
	if s.Stage != models.StageSprintPlanning {
		return false
	}
	_, ok := s.Features[id]
	return ok && !InSprint(s, id)
}

// SprintItem is a sprint entry joined with its feature
type SprintItem struct {
	models.SprintEntry
	Feature models.Feature
}

// SprintFeatures returns the sprint backlog in commitment order
func SprintFeatures(s State) []SprintItem {
	items := make([]SprintItem, 0, len(s.Sprint))
	for _, entry := range s.Sprint {
		items = append(items, SprintItem{SprintEntry: entry, Feature: s.Features[entry.FeatureID]})
	}
	return items
}
