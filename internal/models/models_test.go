package models

import (
	"errors"
	"testing"
)

// ============================================================================
// Stage Tests
// ============================================================================

func TestStage_NextSequence(t *testing.T) {
	stage := StageProductBacklog
	var visited []Stage
	for {
		visited = append(visited, stage)
		next, ok := stage.Next()
		if !ok {
			break
		}
		stage = next
	}

	if len(visited) != len(Stages) {
		t.Fatalf("Expected %d stages, got %d", len(Stages), len(visited))
	}
	for i := range Stages {
		if visited[i] != Stages[i] {
			t.Errorf("Stage %d = %s, want %s", i, visited[i], Stages[i])
		}
	}
	if !stage.IsTerminal() {
		t.Errorf("Expected final stage to be terminal, got %s", stage)
	}
}

func TestStage_NextUnknown(t *testing.T) {
	if _, ok := Stage("bogus").Next(); ok {
		t.Error("Unknown stage should not advance")
	}
}

func TestParseStage(t *testing.T) {
	tests := []struct {
		input string
		want  Stage
	}{
		{"product_backlog", StageProductBacklog},
		{"Sprint Planning", StageSprintPlanning},
		{"sprint-execution", StageSprintExecution},
		{"REVIEW", StageReview},
	}

	for _, tt := range tests {
		got, err := ParseStage(tt.input)
		if err != nil {
			t.Errorf("ParseStage(%q) returned error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseStage(%q) = %s, want %s", tt.input, got, tt.want)
		}
	}

	if _, err := ParseStage("retro"); !errors.Is(err, ErrUnknownStage) {
		t.Errorf("Expected ErrUnknownStage, got %v", err)
	}
}

// ============================================================================
// Status Tests
// ============================================================================

func TestParseStatus(t *testing.T) {
	tests := []struct {
		input string
		want  Status
	}{
		{"todo", StatusTodo},
		{"inProgress", StatusInProgress},
		{"in_progress", StatusInProgress},
		{"In Progress", StatusInProgress},
		{"in-progress", StatusInProgress},
		{"Done", StatusDone},
	}

	for _, tt := range tests {
		got, err := ParseStatus(tt.input)
		if err != nil {
			t.Errorf("ParseStatus(%q) returned error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseStatus(%q) = %s, want %s", tt.input, got, tt.want)
		}
	}

	if _, err := ParseStatus("blocked"); !errors.Is(err, ErrUnknownStatus) {
		t.Errorf("Expected ErrUnknownStatus, got %v", err)
	}
}

func TestStatus_Column(t *testing.T) {
	for i, status := range Statuses {
		if status.Column() != i {
			t.Errorf("%s.Column() = %d, want %d", status, status.Column(), i)
		}
	}
	if Status("blocked").Column() != -1 {
		t.Error("Unknown status should map to column -1")
	}
}

// ============================================================================
// Feature Tests
// ============================================================================

func TestNewFeature_Defaults(t *testing.T) {
	f := NewFeature("id-1", "Login")

	if f.UserNeed != DefaultScore || f.BusinessValue != DefaultScore || f.Effort != DefaultScore {
		t.Errorf("Expected default scores of %d, got %+v", DefaultScore, f)
	}
}

func TestFeature_WithDoesNotMutate(t *testing.T) {
	f := NewFeature("id-1", "Login")
	g := f.With(DimensionEffort, 5)

	if f.Effort != DefaultScore {
		t.Errorf("Original feature mutated: effort = %d", f.Effort)
	}
	if g.Value(DimensionEffort) != 5 {
		t.Errorf("Expected effort 5, got %d", g.Value(DimensionEffort))
	}
}

func TestParseDimension(t *testing.T) {
	for _, input := range []string{"userNeed", "user_need", "user-need"} {
		if d, err := ParseDimension(input); err != nil || d != DimensionUserNeed {
			t.Errorf("ParseDimension(%q) = %s, %v", input, d, err)
		}
	}
	if _, err := ParseDimension("risk"); !errors.Is(err, ErrUnknownDimension) {
		t.Errorf("Expected ErrUnknownDimension, got %v", err)
	}
}

func TestValidScore(t *testing.T) {
	for v := -1; v <= 7; v++ {
		want := v >= 1 && v <= 5
		if ValidScore(v) != want {
			t.Errorf("ValidScore(%d) = %v, want %v", v, !want, want)
		}
	}
}
