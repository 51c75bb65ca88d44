package simulation

import (
	"fmt"
	"strings"

	"github.com/thenoetrevino/sprintsim/internal/models"
	"github.com/thenoetrevino/sprintsim/internal/types"
)

// ParseBatch splits bulk input into trimmed, non-blank feature names
func ParseBatch(text string) []string {
	var names []string
	for _, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		name := strings.TrimSpace(line)
		if name == "" {
			continue
		}
		names = append(names, name)
	}
	return names
}

func setDraft(s *State, text string) error {
	if err := requireStage(s, models.StageProductBacklog); err != nil {
		return err
	}
	s.Draft = text
	return nil
}

func createBatch(s *State, text string, newID func() types.FeatureID) error {
	if err := requireStage(s, models.StageProductBacklog); err != nil {
		return err
	}

	names := ParseBatch(text)
	if len(names) == 0 {
		return models.ErrEmptyBacklogInput
	}
	for _, name := range names {
		if len(name) > models.MaxNameLength {
			return fmt.Errorf("%w: %.20q...", models.ErrNameTooLong, name)
		}
	}

	for _, name := range names {
		id := newID()
		for _, exists := s.Features[id]; exists; _, exists = s.Features[id] {
			id = newID()
		}
		s.Features[id] = models.NewFeature(id, name)
		s.Backlog = append(s.Backlog, id)
	}

	s.Draft = ""
	s.ValidationError = ""
	return nil
}

func updateField(s *State, id types.FeatureID, d models.Dimension, value int) error {
	if err := requireStage(s, models.StagePrioritization); err != nil {
		return err
	}
	if d != models.DimensionUserNeed && d != models.DimensionBusinessValue && d != models.DimensionEffort {
		return fmt.Errorf("%w: %q", models.ErrUnknownDimension, d)
	}
	if !models.ValidScore(value) {
		return fmt.Errorf("%w: got %d", models.ErrScoreOutOfRange, value)
	}

	f, ok := s.Features[id]
	if !ok {
		return nil
	}
	s.Features[id] = f.With(d, value)
	return nil
}

// removeFeature deletes id from the backlog and cascades to the sprint
// backlog, the board and an open edit session
func removeFeature(s *State, id types.FeatureID) {
	if _, ok := s.Features[id]; !ok {
		return
	}

	delete(s.Features, id)
	s.Backlog = without(s.Backlog, id)
	dropFromSprint(s, id)
	if s.Edit != nil && s.Edit.FeatureID == id {
		s.Edit = nil
	}
}

// BacklogFeatures returns the features in creation order
func BacklogFeatures(s State) []models.Feature {
	features := make([]models.Feature, 0, len(s.Backlog))
	for _, id := range s.Backlog {
		if f, ok := s.Features[id]; ok {
			features = append(features, f)
		}
	}
	return features
}

// without returns ids minus every occurrence of id
func without(ids []types.FeatureID, id types.FeatureID) []types.FeatureID {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
