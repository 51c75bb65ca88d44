package types

import "github.com/google/uuid"

// ID types give semantic meaning to the opaque identifiers passed between
// the engine, the service layer and the persistence collaborator.

// FeatureID identifies a feature for the lifetime of a simulation run
type FeatureID string

// NewFeatureID returns a fresh random identifier
func NewFeatureID() FeatureID {
	return FeatureID(uuid.NewString())
}

// String returns the raw identifier
func (id FeatureID) String() string {
	return string(id)
}

// IsZero reports whether the identifier is empty
func (id FeatureID) IsZero() bool {
	return id == ""
}

// Short returns the first eight characters, used for compact CLI and TUI output
func (id FeatureID) Short() string {
	if len(id) <= 8 {
		return string(id)
	}
	return string(id[:8])
}
