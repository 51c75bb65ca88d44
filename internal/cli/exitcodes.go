package cli

import (
	"errors"

	"github.com/thenoetrevino/sprintsim/internal/models"
	simservice "github.com/thenoetrevino/sprintsim/internal/services/simulation"
	"github.com/thenoetrevino/sprintsim/internal/simulation"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitFailure indicates a general error occurred.
	// Use for: Database errors, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitFailure = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags, ambiguous feature references.
	ExitUsage = 2

	// ExitNotFound indicates a requested feature was not found.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: Unreadable stdin, a stored simulation that fails its consistency check.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Scores outside 1-5, empty names or backlog input, unknown statuses.
	ExitValidation = 5

	// ExitStage indicates the operation is not allowed in the current stage.
	// Use for: Editing scores outside prioritization, starting an empty sprint,
	// advancing past review.
	ExitStage = 6
)

// ExitError carries the process exit code for a failed command
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string { return e.Err.Error() }

func (e *ExitError) Unwrap() error { return e.Err }

// ExitCode returns the exit code for an error returned by a command
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// Reported reports whether err was already written out by an OutputFormatter
func Reported(err error) bool {
	var exitErr *ExitError
	return errors.As(err, &exitErr)
}

// Classify maps a service or engine error to an exit code and an error code
// string for JSON output
func Classify(err error) (int, string) {
	switch {
	case errors.Is(err, simservice.ErrFeatureNotFound):
		return ExitNotFound, "FEATURE_NOT_FOUND"
	case errors.Is(err, simservice.ErrAmbiguousFeature):
		return ExitUsage, "AMBIGUOUS_FEATURE"
	case errors.Is(err, simservice.ErrEmptyFeatureRef):
		return ExitUsage, "MISSING_FEATURE"
	case errors.Is(err, models.ErrEmptyBacklogInput):
		return ExitValidation, "EMPTY_INPUT"
	case errors.Is(err, models.ErrScoreOutOfRange):
		return ExitValidation, "SCORE_OUT_OF_RANGE"
	case errors.Is(err, models.ErrEmptyName), errors.Is(err, models.ErrNameTooLong):
		return ExitValidation, "INVALID_NAME"
	case errors.Is(err, models.ErrUnknownDimension),
		errors.Is(err, models.ErrUnknownStatus),
		errors.Is(err, models.ErrUnknownStage):
		return ExitValidation, "INVALID_VALUE"
	case errors.Is(err, models.ErrStageLocked):
		return ExitStage, "STAGE_LOCKED"
	case errors.Is(err, models.ErrEmptySprint):
		return ExitStage, "EMPTY_SPRINT"
	case errors.Is(err, models.ErrTerminalStage):
		return ExitStage, "TERMINAL_STAGE"
	case errors.Is(err, simulation.ErrCorruptState):
		return ExitDataErr, "CORRUPT_STATE"
	}
	return ExitFailure, "ERROR"
}

// suggestions holds hints printed under common errors
var suggestions = map[string]string{
	"FEATURE_NOT_FOUND":  "Use 'sprintsim backlog list' to see feature ids",
	"AMBIGUOUS_FEATURE":  "Use a longer id prefix or the full id",
	"STAGE_LOCKED":       "Use 'sprintsim stage show' to see the current stage",
	"EMPTY_SPRINT":       "Add a feature with 'sprintsim sprint add --id <id>' first",
	"TERMINAL_STAGE":     "Use 'sprintsim reset' to start a new simulation",
	"SCORE_OUT_OF_RANGE": "Scores must be between 1 and 5",
}
