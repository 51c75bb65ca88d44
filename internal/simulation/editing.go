package simulation

import (
	"strings"

	"github.com/thenoetrevino/sprintsim/internal/models"
	"github.com/thenoetrevino/sprintsim/internal/types"
)

// openEdit snapshots a feature's name into the shared edit buffer,
// replacing any session already open
func openEdit(s *State, id types.FeatureID) {
	f, ok := s.Features[id]
	if !ok {
		return
	}
	s.Edit = &EditBuffer{FeatureID: id, Name: f.Name}
}

// commitEdit renames the edited feature. Sprint entries and board columns
// reference the feature by id, so the new name is visible everywhere at once.
func commitEdit(s *State, name string) error {
	if s.Edit == nil {
		return models.ErrNoEditSession
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return models.ErrEmptyName
	}
	if len(name) > models.MaxNameLength {
		return models.ErrNameTooLong
	}

	id := s.Edit.FeatureID
	s.Edit = nil
	if f, ok := s.Features[id]; ok {
		f.Name = name
		s.Features[id] = f
	}
	return nil
}
