package simulation

import (
	"github.com/thenoetrevino/sprintsim/internal/models"
)

// advance moves to the next stage. The machine is forward only; there is no
// action returning to an earlier stage.
func advance(s *State) error {
	if s.Stage == models.StageSprintPlanning && len(s.Sprint) == 0 {
		return models.ErrEmptySprint
	}

	next, ok := s.Stage.Next()
	if !ok {
		return models.ErrTerminalStage
	}

	s.Stage = next
	s.Draft = ""
	s.ValidationError = ""
	return nil
}

// CanAdvance reports whether Advance would succeed from s
func CanAdvance(s State) bool {
	if s.Stage.IsTerminal() || !s.Stage.Valid() {
		return false
	}
	if s.Stage == models.StageSprintPlanning {
		return CanStartSprint(s)
	}
	return true
}

// CanStartSprint reports whether the sprint can leave planning
func CanStartSprint(s State) bool {
	return s.Stage == models.StageSprintPlanning && len(s.Sprint) > 0
}
