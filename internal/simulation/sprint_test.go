package simulation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/sprintsim/internal/models"
)

func planningState(t *testing.T, r *Reducer, names string) State {
	t.Helper()
	s := apply(t, r, New(), CreateBatch{Text: names})
	return advanceTo(t, r, s, models.StageSprintPlanning)
}

func TestAddToSprint_Idempotent(t *testing.T) {
	r := newTestReducer()
	s := planningState(t, r, "A")
	id := s.Backlog[0]
	require.True(t, CanAddToSprint(s, id))

	s = apply(t, r, s, AddToSprint{ID: id}, AddToSprint{ID: id})

	assert.Len(t, s.Sprint, 1)
	assert.Equal(t, id, s.Sprint[0].FeatureID)
	assert.Equal(t, []string{"f1"}, toStrings(columnIDs(s, models.StatusTodo)))
	assert.False(t, CanAddToSprint(s, id))
}

func TestAddToSprint_DefaultsAndSnapshots(t *testing.T) {
	r := newTestReducer()
	s := apply(t, r, New(), CreateBatch{Text: "A"}, Advance{})
	id := s.Backlog[0]
	s = apply(t, r, s, UpdateField{ID: id, Dimension: models.DimensionEffort, Value: 1}, Advance{})

	s = apply(t, r, s, AddToSprint{ID: id})

	entry := s.Sprint[0]
	assert.Equal(t, models.StatusTodo, entry.Status)
	assert.Equal(t, 1, entry.Effort)
	assert.Equal(t, 2.8, entry.Score())
}

func TestAddToSprint_UnknownIDIsNoOp(t *testing.T) {
	r := newTestReducer()
	s := planningState(t, r, "A")

	s = apply(t, r, s, AddToSprint{ID: "missing"})

	assert.Empty(t, s.Sprint)
	assert.False(t, CanAddToSprint(s, "missing"))
}

func TestAddToSprint_OnlyDuringPlanning(t *testing.T) {
	r := newTestReducer()
	s := apply(t, r, New(), CreateBatch{Text: "A"})

	_, err := r.Reduce(s, AddToSprint{ID: s.Backlog[0]})

	assert.ErrorIs(t, err, models.ErrStageLocked)
	assert.False(t, CanAddToSprint(s, s.Backlog[0]))
}

func TestAddToSprint_PreservesCommitOrder(t *testing.T) {
	r := newTestReducer()
	s := planningState(t, r, "A\nB\nC")

	s = apply(t, r, s, AddToSprint{ID: "f3"}, AddToSprint{ID: "f1"})

	items := SprintFeatures(s)
	require.Len(t, items, 2)
	assert.Equal(t, "C", items[0].Feature.Name)
	assert.Equal(t, "A", items[1].Feature.Name)
}

func TestRemoveFromSprint(t *testing.T) {
	r := newTestReducer()
	s := planningState(t, r, "A\nB")
	s = apply(t, r, s, AddToSprint{ID: "f1"}, AddToSprint{ID: "f2"})

	s = apply(t, r, s, RemoveFromSprint{ID: "f1"}, RemoveFromSprint{ID: "missing"})

	assert.False(t, InSprint(s, "f1"))
	assert.True(t, InSprint(s, "f2"))
	assert.Equal(t, []string{"f2"}, toStrings(columnIDs(s, models.StatusTodo)))
	assert.Len(t, s.Backlog, 2, "backlog keeps the feature")
}
