package simulation

import (
	"errors"
	"fmt"

	"github.com/thenoetrevino/sprintsim/internal/models"
	"github.com/thenoetrevino/sprintsim/internal/types"
)

// Reducer applies actions to states. The zero value is not usable; call NewReducer.
type Reducer struct {
	newID func() types.FeatureID
}

// ReducerOption configures a Reducer
type ReducerOption func(*Reducer)

// WithIDGenerator overrides how feature ids are minted
func WithIDGenerator(fn func() types.FeatureID) ReducerOption {
	return func(r *Reducer) {
		r.newID = fn
	}
}

// NewReducer creates a Reducer that mints random feature ids
func NewReducer(opts ...ReducerOption) *Reducer {
	r := &Reducer{newID: types.NewFeatureID}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var defaultReducer = NewReducer()

// Reduce applies a with the default Reducer
func Reduce(s State, a Action) (State, error) {
	return defaultReducer.Reduce(s, a)
}

// Reduce returns the state that results from applying a to s. On error the
// returned state equals s, except for a rejected CreateBatch which records
// its message in ValidationError. s itself is never modified.
func (r *Reducer) Reduce(s State, a Action) (State, error) {
	if s.Features == nil {
		s.Features = map[types.FeatureID]models.Feature{}
	}
	next := s.clone()

	var err error
	switch a := a.(type) {
	case SetDraft:
		err = setDraft(&next, a.Text)
	case CreateBatch:
		err = createBatch(&next, a.Text, r.newID)
		if err != nil && !errors.Is(err, models.ErrStageLocked) {
			rejected := s.clone()
			rejected.ValidationError = err.Error()
			return rejected, err
		}
	case UpdateField:
		err = updateField(&next, a.ID, a.Dimension, a.Value)
	case RemoveFeature:
		removeFeature(&next, a.ID)
	case Advance:
		err = advance(&next)
	case AddToSprint:
		err = addToSprint(&next, a.ID)
	case RemoveFromSprint:
		err = removeFromSprint(&next, a.ID)
	case Move:
		err = move(&next, a)
	case OpenEdit:
		openEdit(&next, a.ID)
	case CommitEdit:
		err = commitEdit(&next, a.NewName)
	case CancelEdit:
		next.Edit = nil
	default:
		err = fmt.Errorf("unsupported action %T", a)
	}
	if err != nil {
		return s, err
	}

	next.Seq++
	return next, nil
}

// requireStage rejects actions issued outside their stage
func requireStage(s *State, stage models.Stage) error {
	if s.Stage != stage {
		return fmt.Errorf("%w: requires %s, simulation is in %s", models.ErrStageLocked, stage.Title(), s.Stage.Title())
	}
	return nil
}
