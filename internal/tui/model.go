// Package tui is the interactive terminal front end of the simulation. It
// holds presentation state only; every change to the simulation goes through
// the simulation service.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/thenoetrevino/sprintsim/internal/config"
	"github.com/thenoetrevino/sprintsim/internal/models"
	simservice "github.com/thenoetrevino/sprintsim/internal/services/simulation"
	"github.com/thenoetrevino/sprintsim/internal/simulation"
	"github.com/thenoetrevino/sprintsim/internal/tui/state"
	"github.com/thenoetrevino/sprintsim/internal/tui/theme"
	"github.com/thenoetrevino/sprintsim/internal/types"
)

const notificationTimeout = 4 * time.Second

// ConfigReloadedMsg carries a configuration re-read after the file changed
type ConfigReloadedMsg struct {
	Config *config.Config
}

type notificationExpiredMsg struct {
	id int
}

// Model represents the application state for the TUI
type Model struct {
	ctx         context.Context
	svc         simservice.Service
	cfg         *config.Config
	keys        KeyMap
	facilitator string

	uiState           *state.UIState
	notificationState *state.NotificationState

	input  textarea.Model  // bulk feature input
	rename textinput.Model // rename modal
	review viewport.Model  // rendered sprint review
	help   help.Model

	pendingDelete types.FeatureID
}

// InitialModel creates the TUI model around an already loaded service
func InitialModel(ctx context.Context, svc simservice.Service, cfg *config.Config, facilitator string) Model {
	if cfg == nil {
		cfg = config.Default()
	}
	theme.Init(cfg.ColorScheme)

	input := textarea.New()
	input.Placeholder = "One feature per line"
	input.ShowLineNumbers = false
	input.CharLimit = 0
	input.SetValue(svc.Snapshot().Draft)

	rename := textinput.New()
	rename.Prompt = "Name: "
	rename.CharLimit = models.MaxNameLength

	m := Model{
		ctx:               ctx,
		svc:               svc,
		cfg:               cfg,
		keys:              NewKeyMap(cfg.KeyMappings),
		facilitator:       facilitator,
		uiState:           state.NewUIState(),
		notificationState: state.NewNotificationState(),
		input:             input,
		rename:            rename,
		review:            viewport.New(80, 20),
		help:              help.New(),
	}
	if svc.Snapshot().Stage == models.StageReview {
		m.refreshReview()
	}
	return m
}

// Init initializes the Bubble Tea application
// Required by tea.Model interface
func (m Model) Init() tea.Cmd {
	return nil
}

// ============================================================================
// Accessors
// ============================================================================

func (m Model) snapshot() simulation.State {
	return m.svc.Snapshot()
}

// listFeatures returns the rows of the list view for the current stage
func (m Model) listFeatures() []models.Feature {
	s := m.snapshot()
	switch s.Stage {
	case models.StagePrioritization:
		if m.uiState.ShowRanked() {
			return rankedFeatures(s)
		}
		return simulation.BacklogFeatures(s)
	case models.StageSprintPlanning:
		return rankedFeatures(s)
	}
	return simulation.BacklogFeatures(s)
}

func rankedFeatures(s simulation.State) []models.Feature {
	ranked := simulation.Ranked(s)
	features := make([]models.Feature, len(ranked))
	for i, r := range ranked {
		features[i] = r.Feature
	}
	return features
}

// selectedFeature returns the feature under the cursor, if any
func (m Model) selectedFeature() (types.FeatureID, bool) {
	s := m.snapshot()
	switch s.Stage {
	case models.StageReview:
		return "", false
	case models.StageSprintExecution:
		ids := s.Board[m.uiState.SelectedColumn()]
		if m.uiState.SelectedCard() < len(ids) {
			return ids[m.uiState.SelectedCard()], true
		}
		return "", false
	}

	features := m.listFeatures()
	if m.uiState.SelectedRow() < len(features) {
		return features[m.uiState.SelectedRow()].ID, true
	}
	return "", false
}

// cardsIn returns the number of cards in a board column
func (m Model) cardsIn(column int) int {
	return len(m.snapshot().Board[column])
}

// ============================================================================
// Notifications
// ============================================================================

func (m Model) notify(level state.NotificationLevel, message string) tea.Cmd {
	id := m.notificationState.Add(level, message)
	return tea.Tick(notificationTimeout, func(time.Time) tea.Msg {
		return notificationExpiredMsg{id: id}
	})
}

func (m Model) notifyErr(err error) tea.Cmd {
	return m.notify(state.LevelError, err.Error())
}

func (m *Model) applyConfig(cfg *config.Config) {
	m.cfg = cfg
	m.keys = NewKeyMap(cfg.KeyMappings)
	theme.Init(cfg.ColorScheme)
	if m.snapshot().Stage == models.StageReview {
		m.refreshReview()
	}
}
