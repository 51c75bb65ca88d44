package models

import (
	"fmt"
	"strings"
)

// Stage is one of the five sequential phases of a simulation run
type Stage string

const (
	StageProductBacklog  Stage = "product_backlog"
	StagePrioritization  Stage = "prioritization"
	StageSprintPlanning  Stage = "sprint_planning"
	StageSprintExecution Stage = "sprint_execution"
	StageReview          Stage = "review"
)

// Stages lists every stage in simulation order
var Stages = []Stage{
	StageProductBacklog,
	StagePrioritization,
	StageSprintPlanning,
	StageSprintExecution,
	StageReview,
}

var stageTitles = map[Stage]string{
	StageProductBacklog:  "Product Backlog",
	StagePrioritization:  "Prioritization",
	StageSprintPlanning:  "Sprint Planning",
	StageSprintExecution: "Sprint Execution",
	StageReview:          "Review",
}

// Index returns the zero-based position of the stage, or -1 if unknown
func (s Stage) Index() int {
	for i, stage := range Stages {
		if stage == s {
			return i
		}
	}
	return -1
}

// Next returns the following stage and false when s is terminal or unknown
func (s Stage) Next() (Stage, bool) {
	i := s.Index()
	if i < 0 || i == len(Stages)-1 {
		return s, false
	}
	return Stages[i+1], true
}

// IsTerminal reports whether s is the review stage
func (s Stage) IsTerminal() bool {
	return s == StageReview
}

// Valid reports whether s is one of the five stages
func (s Stage) Valid() bool {
	return s.Index() >= 0
}

// Title returns the human readable stage name
func (s Stage) Title() string {
	if title, ok := stageTitles[s]; ok {
		return title
	}
	return string(s)
}

// ParseStage maps a stage name (snake, kebab or title case) to a Stage
func ParseStage(name string) (Stage, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.NewReplacer("-", "_", " ", "_").Replace(key)
	for _, stage := range Stages {
		if string(stage) == key {
			return stage, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStage, name)
}
