package events

import (
	"time"

	"github.com/thenoetrevino/sprintsim/internal/models"
	"github.com/thenoetrevino/sprintsim/internal/simulation"
	"github.com/thenoetrevino/sprintsim/internal/types"
)

// EventType indicates what kind of change occurred
type EventType string

const (
	EventFeatureCreated EventType = "feature_created"
	EventFeatureUpdated EventType = "feature_updated"
	EventFeatureRenamed EventType = "feature_renamed"
	EventFeatureDeleted EventType = "feature_deleted"
	EventSprintChanged  EventType = "sprint_changed"
	EventBoardChanged   EventType = "board_changed"
	EventStageAdvanced  EventType = "stage_advanced"
	EventReset          EventType = "simulation_reset"
)

// Event is a change notification carrying the state it produced
type Event struct {
	Type       EventType
	FeatureID  types.FeatureID // empty for events not tied to one feature
	Stage      models.Stage
	Timestamp  time.Time
	SequenceID int64 // assigned by the dispatcher, monotonically increasing
	State      simulation.State
}

// TypeFor maps an engine action to the event announcing its effect.
// Actions that only touch transient buffers return false.
func TypeFor(a simulation.Action) (EventType, bool) {
	switch a.(type) {
	case simulation.CreateBatch:
		return EventFeatureCreated, true
	case simulation.UpdateField:
		return EventFeatureUpdated, true
	case simulation.CommitEdit:
		return EventFeatureRenamed, true
	case simulation.RemoveFeature:
		return EventFeatureDeleted, true
	case simulation.AddToSprint, simulation.RemoveFromSprint:
		return EventSprintChanged, true
	case simulation.Move:
		return EventBoardChanged, true
	case simulation.Advance:
		return EventStageAdvanced, true
	}
	return "", false
}
