package cli

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thenoetrevino/sprintsim/internal/models"
	simservice "github.com/thenoetrevino/sprintsim/internal/services/simulation"
	"github.com/thenoetrevino/sprintsim/internal/simulation"
)

func TestReadText(t *testing.T) {
	orig := Stdin
	defer func() { Stdin = orig }()
	Stdin = strings.NewReader("Login\nCheckout\n")

	got, err := ReadText("-")
	assert.NoError(t, err)
	assert.Equal(t, "Login\nCheckout\n", got)

	got, err = ReadText("Search")
	assert.NoError(t, err)
	assert.Equal(t, "Search", got)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		err      error
		wantExit int
		wantCode string
	}{
		{simservice.ErrFeatureNotFound, ExitNotFound, "FEATURE_NOT_FOUND"},
		{fmt.Errorf("wrapped: %w", simservice.ErrAmbiguousFeature), ExitUsage, "AMBIGUOUS_FEATURE"},
		{models.ErrScoreOutOfRange, ExitValidation, "SCORE_OUT_OF_RANGE"},
		{models.ErrEmptyBacklogInput, ExitValidation, "EMPTY_INPUT"},
		{models.ErrStageLocked, ExitStage, "STAGE_LOCKED"},
		{models.ErrEmptySprint, ExitStage, "EMPTY_SPRINT"},
		{models.ErrTerminalStage, ExitStage, "TERMINAL_STAGE"},
		{simulation.ErrCorruptState, ExitDataErr, "CORRUPT_STATE"},
		{errors.New("disk on fire"), ExitFailure, "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.wantCode, func(t *testing.T) {
			exitCode, code := Classify(tt.err)
			assert.Equal(t, tt.wantExit, exitCode)
			assert.Equal(t, tt.wantCode, code)
		})
	}
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, ExitCode(nil))
	assert.Equal(t, ExitFailure, ExitCode(errors.New("plain")))

	wrapped := fmt.Errorf("outer: %w", &ExitError{Code: ExitStage, Err: models.ErrStageLocked})
	assert.Equal(t, ExitStage, ExitCode(wrapped))
	assert.ErrorIs(t, wrapped, models.ErrStageLocked)
}

func TestReported(t *testing.T) {
	assert.False(t, Reported(errors.New("unknown flag: --bogus")))
	assert.True(t, Reported(&ExitError{Code: ExitUsage, Err: errors.New("missing id")}))
}
