package simulation

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/sprintsim/internal/models"
	"github.com/thenoetrevino/sprintsim/internal/types"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

// newTestReducer returns a reducer minting predictable ids f1, f2, ...
func newTestReducer() *Reducer {
	n := 0
	return NewReducer(WithIDGenerator(func() types.FeatureID {
		n++
		return types.FeatureID(fmt.Sprintf("f%d", n))
	}))
}

// apply runs every action and fails the test on the first error
func apply(t *testing.T, r *Reducer, s State, actions ...Action) State {
	t.Helper()
	for _, a := range actions {
		var err error
		s, err = r.Reduce(s, a)
		require.NoError(t, err, "action %s", a.Name())
		require.NoError(t, Check(s), "invariants after %s", a.Name())
	}
	return s
}

// advanceTo moves s forward until it reaches stage
func advanceTo(t *testing.T, r *Reducer, s State, stage models.Stage) State {
	t.Helper()
	for s.Stage != stage {
		s = apply(t, r, s, Advance{})
	}
	return s
}

// sprintBoard builds a state in sprint execution with the named features
// committed in order
func sprintBoard(t *testing.T, r *Reducer, names string) State {
	t.Helper()
	s := apply(t, r, New(), CreateBatch{Text: names})
	s = advanceTo(t, r, s, models.StageSprintPlanning)
	for _, id := range s.Backlog {
		s = apply(t, r, s, AddToSprint{ID: id})
	}
	return apply(t, r, s, Advance{})
}

// columnIDs returns the feature ids of a column
func columnIDs(s State, status models.Status) []types.FeatureID {
	return append([]types.FeatureID(nil), s.Board[status.Column()]...)
}

// byName finds a feature id by name
func byName(t *testing.T, s State, name string) types.FeatureID {
	t.Helper()
	for id, f := range s.Features {
		if f.Name == name {
			return id
		}
	}
	t.Fatalf("feature %q not found", name)
	return ""
}
