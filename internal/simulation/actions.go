package simulation

import (
	"github.com/thenoetrevino/sprintsim/internal/models"
	"github.com/thenoetrevino/sprintsim/internal/types"
)

// Action is a user intent applied to a State by Reduce
type Action interface {
	// Name identifies the action in logs and events
	Name() string
}

// SetDraft replaces the bulk creation text buffer
type SetDraft struct {
	Text string
}

// CreateBatch creates one feature per non-blank line of Text
type CreateBatch struct {
	Text string
}

// UpdateField sets one scoring dimension of a feature
type UpdateField struct {
	ID        types.FeatureID
	Dimension models.Dimension
	Value     int
}

// RemoveFeature deletes a feature from every collection holding it.
// Callers are expected to have obtained confirmation beforehand.
type RemoveFeature struct {
	ID types.FeatureID
}

// Advance moves the simulation to the next stage
type Advance struct{}

// AddToSprint commits a feature to the sprint backlog
type AddToSprint struct {
	ID types.FeatureID
}

// RemoveFromSprint takes a feature out of the sprint backlog and the board
type RemoveFromSprint struct {
	ID types.FeatureID
}

// Move relocates a sprint entry within or across board columns. It carries
// the same fields as a drag gesture.
type Move struct {
	ID        types.FeatureID
	From      models.Status
	FromIndex int
	To        models.Status
	ToIndex   int
}

// OpenEdit starts a rename session for a feature
type OpenEdit struct {
	ID types.FeatureID
}

// CommitEdit applies the new name of the open rename session
type CommitEdit struct {
	NewName string
}

// CancelEdit discards the open rename session
type CancelEdit struct{}

func (SetDraft) Name() string         { return "set_draft" }
func (CreateBatch) Name() string      { return "create_batch" }
func (UpdateField) Name() string      { return "update_field" }
func (RemoveFeature) Name() string    { return "remove_feature" }
func (Advance) Name() string          { return "advance" }
func (AddToSprint) Name() string      { return "add_to_sprint" }
func (RemoveFromSprint) Name() string { return "remove_from_sprint" }
func (Move) Name() string             { return "move" }
func (OpenEdit) Name() string         { return "open_edit" }
func (CommitEdit) Name() string       { return "commit_edit" }
func (CancelEdit) Name() string       { return "cancel_edit" }
