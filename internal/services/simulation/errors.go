package simulation

import "errors"

// Service-level errors. Engine validation errors (models.Err*) pass through
// unchanged.
var (
	ErrFeatureNotFound      = errors.New("feature not found")
	ErrAmbiguousFeature     = errors.New("feature reference matches more than one feature")
	ErrEmptyFeatureRef      = errors.New("feature reference cannot be empty")
	ErrConfirmationRequired = errors.New("confirmation required but no confirmer is configured")
	ErrNoStore              = errors.New("no state store configured")
)
