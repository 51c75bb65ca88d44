package models

import "errors"

// Domain errors shared by the engine, the service layer and the CLI
var (
	// ErrEmptyBacklogInput indicates bulk creation text with no usable lines
	ErrEmptyBacklogInput = errors.New("please enter at least one feature")

	// ErrScoreOutOfRange indicates a dimension value outside [1,5]
	ErrScoreOutOfRange = errors.New("score must be between 1 and 5")

	// ErrUnknownDimension indicates a field name that is not a scoring dimension
	ErrUnknownDimension = errors.New("unknown scoring dimension")

	// ErrUnknownStatus indicates a column name that is not a board status
	ErrUnknownStatus = errors.New("unknown status")

	// ErrUnknownStage indicates a stage name that is not part of the simulation
	ErrUnknownStage = errors.New("unknown stage")

	// ErrTerminalStage indicates an attempt to advance past the review stage
	ErrTerminalStage = errors.New("simulation is already in the final stage")

	// ErrStageLocked indicates an action that is not available in the current stage
	ErrStageLocked = errors.New("action not available in the current stage")

	// ErrEmptySprint indicates an attempt to start a sprint with no committed features
	ErrEmptySprint = errors.New("add at least one feature to the sprint before starting it")

	// ErrEmptyName indicates a rename to a blank name
	ErrEmptyName = errors.New("feature name cannot be empty")

	// ErrNameTooLong indicates a rename beyond MaxNameLength
	ErrNameTooLong = errors.New("feature name cannot exceed 255 characters")

	// ErrNoEditSession indicates a commit without an open editing session
	ErrNoEditSession = errors.New("no feature is being edited")
)
