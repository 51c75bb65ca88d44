package models

import (
	"fmt"
	"strings"

	"github.com/thenoetrevino/sprintsim/internal/types"
)

// Dimension names one of the three scoring inputs of a feature
type Dimension string

const (
	DimensionUserNeed      Dimension = "userNeed"
	DimensionBusinessValue Dimension = "businessValue"
	DimensionEffort        Dimension = "effort"
)

// Dimensions lists the scoring inputs in display order
var Dimensions = []Dimension{DimensionUserNeed, DimensionBusinessValue, DimensionEffort}

// Title returns the label shown next to the dimension value
func (d Dimension) Title() string {
	switch d {
	case DimensionUserNeed:
		return "User Need"
	case DimensionBusinessValue:
		return "Business Value"
	case DimensionEffort:
		return "Effort"
	}
	return string(d)
}

// ParseDimension accepts camel, snake or kebab case dimension names
func ParseDimension(name string) (Dimension, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.NewReplacer("-", "", "_", "", " ", "").Replace(key)
	switch key {
	case "userneed", "need":
		return DimensionUserNeed, nil
	case "businessvalue", "value":
		return DimensionBusinessValue, nil
	case "effort":
		return DimensionEffort, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDimension, name)
}

// Feature is a single candidate unit of work
type Feature struct {
	ID            types.FeatureID
	Name          string
	UserNeed      int
	BusinessValue int
	Effort        int
}

// NewFeature creates a feature with the default scores
func NewFeature(id types.FeatureID, name string) Feature {
	return Feature{
		ID:            id,
		Name:          name,
		UserNeed:      DefaultScore,
		BusinessValue: DefaultScore,
		Effort:        DefaultScore,
	}
}

// Value returns the current value of a dimension
func (f Feature) Value(d Dimension) int {
	switch d {
	case DimensionUserNeed:
		return f.UserNeed
	case DimensionBusinessValue:
		return f.BusinessValue
	case DimensionEffort:
		return f.Effort
	}
	return 0
}

// With returns a copy of f with one dimension replaced
func (f Feature) With(d Dimension, value int) Feature {
	switch d {
	case DimensionUserNeed:
		f.UserNeed = value
	case DimensionBusinessValue:
		f.BusinessValue = value
	case DimensionEffort:
		f.Effort = value
	}
	return f
}

// ValidScore reports whether v lies within [MinScore, MaxScore]
func ValidScore(v int) bool {
	return v >= MinScore && v <= MaxScore
}

// SprintEntry is a feature committed to the active sprint. Name is read
// through the feature arena; status and the score inputs are tracked here.
type SprintEntry struct {
	FeatureID   types.FeatureID
	Status      Status
	ScoreTenths int // score snapshot taken when the entry was added, in tenths
	Effort      int // effort snapshot taken when the entry was added
}

// Score returns the snapshot score as a float
func (e SprintEntry) Score() float64 {
	return float64(e.ScoreTenths) / 10
}
