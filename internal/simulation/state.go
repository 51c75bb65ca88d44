package simulation

import (
	"errors"
	"fmt"

	"github.com/thenoetrevino/sprintsim/internal/models"
	"github.com/thenoetrevino/sprintsim/internal/types"
)

// ErrCorruptState is returned by Check when collections disagree with each other
var ErrCorruptState = errors.New("simulation state is inconsistent")

// EditBuffer is the single shared rename session
type EditBuffer struct {
	FeatureID types.FeatureID
	Name      string // name captured when the session was opened
}

// State is the complete simulation state. Treat it as immutable: use Reduce
// to derive a new State.
type State struct {
	Stage models.Stage

	// Features is the arena holding every feature by id. It is the only place
	// names and score dimensions are stored.
	Features map[types.FeatureID]models.Feature

	// Backlog holds feature ids in creation order
	Backlog []types.FeatureID

	// Sprint holds the committed entries in the order they were added
	Sprint []models.SprintEntry

	// Board holds one ordered column per status, indexed by Status.Column()
	Board [models.ColumnCount][]types.FeatureID

	// Draft is the bulk creation text buffer
	Draft string

	// ValidationError is the message of the last rejected bulk creation
	ValidationError string

	// Edit is the open rename session, nil when none is open
	Edit *EditBuffer

	// Seq counts successfully applied actions
	Seq int64
}

// New returns an empty simulation positioned at the first stage
func New() State {
	return State{
		Stage:    models.StageProductBacklog,
		Features: make(map[types.FeatureID]models.Feature),
	}
}

// clone returns a deep copy that shares no backing storage with s
func (s State) clone() State {
	next := s
	next.Features = make(map[types.FeatureID]models.Feature, len(s.Features))
	for id, f := range s.Features {
		next.Features[id] = f
	}
	next.Backlog = append([]types.FeatureID(nil), s.Backlog...)
	next.Sprint = append([]models.SprintEntry(nil), s.Sprint...)
	for i := range s.Board {
		next.Board[i] = append([]types.FeatureID(nil), s.Board[i]...)
	}
	if s.Edit != nil {
		edit := *s.Edit
		next.Edit = &edit
	}
	return next
}

// Feature looks up a feature by id
func (s State) Feature(id types.FeatureID) (models.Feature, bool) {
	f, ok := s.Features[id]
	return f, ok
}

// sprintIndex returns the position of id in the sprint backlog, or -1
func (s State) sprintIndex(id types.FeatureID) int {
	for i, entry := range s.Sprint {
		if entry.FeatureID == id {
			return i
		}
	}
	return -1
}

// Check verifies the cross-collection invariants: every referenced id exists,
// every sprint entry sits in exactly one column matching its status, and all
// dimensions are in range.
func Check(s State) error {
	if !s.Stage.Valid() {
		return fmt.Errorf("%w: stage %q", ErrCorruptState, s.Stage)
	}
	if len(s.Backlog) != len(s.Features) {
		return fmt.Errorf("%w: backlog has %d ids for %d features", ErrCorruptState, len(s.Backlog), len(s.Features))
	}
	for _, id := range s.Backlog {
		f, ok := s.Features[id]
		if !ok {
			return fmt.Errorf("%w: backlog references missing feature %s", ErrCorruptState, id)
		}
		for _, d := range models.Dimensions {
			if !models.ValidScore(f.Value(d)) {
				return fmt.Errorf("%w: feature %s has %s=%d", ErrCorruptState, id, d, f.Value(d))
			}
		}
	}

	placed := make(map[types.FeatureID]models.Status)
	for col, ids := range s.Board {
		for _, id := range ids {
			if _, dup := placed[id]; dup {
				return fmt.Errorf("%w: feature %s appears in more than one column", ErrCorruptState, id)
			}
			placed[id] = models.Statuses[col]
		}
	}
	if len(placed) != len(s.Sprint) {
		return fmt.Errorf("%w: board holds %d entries for %d sprint entries", ErrCorruptState, len(placed), len(s.Sprint))
	}
	for _, entry := range s.Sprint {
		if _, ok := s.Features[entry.FeatureID]; !ok {
			return fmt.Errorf("%w: sprint references missing feature %s", ErrCorruptState, entry.FeatureID)
		}
		status, ok := placed[entry.FeatureID]
		if !ok {
			return fmt.Errorf("%w: sprint entry %s is not on the board", ErrCorruptState, entry.FeatureID)
		}
		if status != entry.Status {
			return fmt.Errorf("%w: sprint entry %s has status %s but sits in %s", ErrCorruptState, entry.FeatureID, entry.Status, status)
		}
	}
	return nil
}
