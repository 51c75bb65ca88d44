package simulation

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/sprintsim/internal/models"
)

func TestReduce_DoesNotMutateInput(t *testing.T) {
	r := newTestReducer()
	before := sprintBoard(t, r, "A\nB\nC")
	snapshot := before.clone()

	actions := []Action{
		Move{ID: "f1", From: models.StatusTodo, FromIndex: 0, To: models.StatusTodo, ToIndex: 2},
		Move{ID: "f2", From: models.StatusTodo, FromIndex: 1, To: models.StatusDone, ToIndex: 0},
		RemoveFeature{ID: "f3"},
		OpenEdit{ID: "f1"},
	}
	for _, a := range actions {
		_, err := r.Reduce(before, a)
		require.NoError(t, err)
	}

	if diff := cmp.Diff(snapshot, before); diff != "" {
		t.Errorf("Reduce mutated its input (-want +got):\n%s", diff)
	}
}

func TestReduce_ErrorReturnsOriginal(t *testing.T) {
	r := newTestReducer()
	s := apply(t, r, New(), CreateBatch{Text: "A"}, Advance{})

	next, err := r.Reduce(s, UpdateField{ID: "f1", Dimension: models.DimensionEffort, Value: 9})

	require.Error(t, err)
	if diff := cmp.Diff(s, next); diff != "" {
		t.Errorf("rejected action changed state (-want +got):\n%s", diff)
	}
}

func TestReduce_IncrementsSeq(t *testing.T) {
	r := newTestReducer()
	s := apply(t, r, New(), CreateBatch{Text: "A"}, Advance{})

	assert.Equal(t, int64(2), s.Seq)
}

type bogusAction struct{}

func (bogusAction) Name() string { return "bogus" }

func TestReduce_UnsupportedAction(t *testing.T) {
	_, err := Reduce(New(), bogusAction{})
	assert.Error(t, err)
}

func TestReduce_ZeroStateIsUsable(t *testing.T) {
	var s State
	s.Stage = models.StageProductBacklog

	next, err := Reduce(s, CreateBatch{Text: "A"})

	require.NoError(t, err)
	assert.Len(t, next.Features, 1)
}

func TestCheck_DetectsCorruption(t *testing.T) {
	r := newTestReducer()
	good := sprintBoard(t, r, "A\nB")
	require.NoError(t, Check(good))

	tests := []struct {
		name   string
		mutate func(s *State)
	}{
		{"bad stage", func(s *State) { s.Stage = "retro" }},
		{"orphan backlog id", func(s *State) { s.Backlog = append(s.Backlog, "ghost") }},
		{"score out of range", func(s *State) {
			f := s.Features["f1"]
			f.Effort = 9
			s.Features["f1"] = f
		}},
		{"entry missing from board", func(s *State) { s.Board[0] = s.Board[0][:1] }},
		{"duplicate on board", func(s *State) { s.Board[2] = append(s.Board[2], "f1") }},
		{"status mismatch", func(s *State) { s.Sprint[0].Status = models.StatusDone }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := good.clone()
			tt.mutate(&s)
			err := Check(s)
			assert.True(t, errors.Is(err, ErrCorruptState), "got %v", err)
		})
	}
}
