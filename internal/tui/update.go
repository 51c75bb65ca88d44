package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/thenoetrevino/sprintsim/internal/models"
	simservice "github.com/thenoetrevino/sprintsim/internal/services/simulation"
	"github.com/thenoetrevino/sprintsim/internal/simulation"
	"github.com/thenoetrevino/sprintsim/internal/tui/state"
	"github.com/thenoetrevino/sprintsim/internal/types"
)

// Update handles all messages and updates the model accordingly
// This implements the "Update" part of the Model-View-Update pattern
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case ConfigReloadedMsg:
		if msg.Config == nil {
			return m, nil
		}
		m.applyConfig(msg.Config)
		return m, m.notify(state.LevelInfo, "Configuration reloaded")

	case notificationExpiredMsg:
		m.notificationState.Expire(msg.id)
		return m, nil
	}

	// cursor blink and other component messages
	var cmd tea.Cmd
	switch m.uiState.Mode() {
	case state.InputMode:
		m.input, cmd = m.input.Update(msg)
	case state.RenameMode:
		m.rename, cmd = m.rename.Update(msg)
	}
	return m, cmd
}

func (m *Model) resize(width, height int) {
	m.uiState.SetSize(width, height)
	m.input.SetWidth(max(width-4, 20))
	m.input.SetHeight(max(height-14, 3))
	m.rename.Width = max(width/2, 20)
	m.review.Width = width
	m.review.Height = max(height-6, 3)
	m.help.Width = width
	if m.snapshot().Stage == models.StageReview {
		m.refreshReview()
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	switch m.uiState.Mode() {
	case state.InputMode:
		return m.updateInput(msg)
	case state.RenameMode:
		return m.updateRename(msg)
	case state.DeleteConfirmMode, state.ResetConfirmMode:
		return m.updateConfirm(msg)
	case state.HelpMode:
		m.uiState.SetMode(state.NormalMode)
		return m, nil
	}
	return m.updateNormal(msg)
}

// ============================================================================
// Normal mode
// ============================================================================

func (m Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.ShowHelp):
		m.uiState.SetMode(state.HelpMode)
		return m, nil
	case key.Matches(msg, m.keys.Advance):
		return m.advance()
	case key.Matches(msg, m.keys.Reset):
		m.uiState.SetMode(state.ResetConfirmMode)
		return m, nil
	case key.Matches(msg, m.keys.EditFeature):
		return m.startRename()
	case key.Matches(msg, m.keys.DeleteFeature):
		if id, ok := m.selectedFeature(); ok {
			m.pendingDelete = id
			m.uiState.SetMode(state.DeleteConfirmMode)
		}
		return m, nil
	}

	switch m.snapshot().Stage {
	case models.StageProductBacklog:
		return m.updateBacklog(msg)
	case models.StagePrioritization:
		return m.updatePrioritization(msg)
	case models.StageSprintPlanning:
		return m.updatePlanning(msg)
	case models.StageSprintExecution:
		return m.updateBoard(msg)
	case models.StageReview:
		var cmd tea.Cmd
		m.review, cmd = m.review.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) advance() (tea.Model, tea.Cmd) {
	stage, err := m.svc.Advance(m.ctx)
	if err != nil {
		return m, m.notifyErr(err)
	}

	m.uiState.Reset()
	m.input.Reset()
	if stage == models.StageReview {
		m.refreshReview()
	}
	return m, m.notify(state.LevelInfo, "Now in "+stage.Title())
}

// moveRows handles the up/down keys shared by the list views
func (m Model) moveRows(msg tea.KeyMsg) bool {
	count := len(m.listFeatures())
	switch {
	case key.Matches(msg, m.keys.PrevFeature):
		m.uiState.MoveRow(-1, count)
	case key.Matches(msg, m.keys.NextFeature):
		m.uiState.MoveRow(1, count)
	default:
		return false
	}
	return true
}

func (m Model) updateBacklog(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.moveRows(msg) {
		return m, nil
	}
	if key.Matches(msg, m.keys.AddFeature) {
		m.uiState.SetMode(state.InputMode)
		focus := m.input.Focus()
		return m, tea.Batch(focus, textarea.Blink)
	}
	return m, nil
}

func (m Model) updatePrioritization(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.moveRows(msg) {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.PrevColumn):
		m.uiState.MoveDimension(-1)
	case key.Matches(msg, m.keys.NextColumn):
		m.uiState.MoveDimension(1)
	case key.Matches(msg, m.keys.ToggleRank):
		// keep the cursor on the same feature across the reorder
		id, ok := m.selectedFeature()
		m.uiState.ToggleRanked()
		if ok {
			m.selectRow(id)
		}
	case key.Matches(msg, m.keys.IncreaseScore):
		return m.adjustScore(1)
	case key.Matches(msg, m.keys.DecreaseScore):
		return m.adjustScore(-1)
	}
	return m, nil
}

// selectRow puts the list cursor on id
func (m Model) selectRow(id types.FeatureID) {
	for i, f := range m.listFeatures() {
		if f.ID == id {
			m.uiState.MoveRow(i-m.uiState.SelectedRow(), len(m.listFeatures()))
			return
		}
	}
}

func (m Model) adjustScore(delta int) (tea.Model, tea.Cmd) {
	id, ok := m.selectedFeature()
	if !ok {
		return m, nil
	}
	f, _ := m.snapshot().Feature(id)
	dim := models.Dimensions[m.uiState.SelectedDimension()]

	if err := m.svc.UpdateScore(m.ctx, id, dim, f.Value(dim)+delta); err != nil {
		return m, m.notifyErr(err)
	}
	if m.uiState.ShowRanked() {
		m.selectRow(id)
	}
	return m, nil
}

func (m Model) updatePlanning(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.moveRows(msg) {
		return m, nil
	}
	if !key.Matches(msg, m.keys.ToggleSprint) {
		return m, nil
	}

	id, ok := m.selectedFeature()
	if !ok {
		return m, nil
	}
	var err error
	if simulation.InSprint(m.snapshot(), id) {
		err = m.svc.RemoveFromSprint(m.ctx, id)
	} else {
		err = m.svc.AddToSprint(m.ctx, id)
	}
	if err != nil {
		return m, m.notifyErr(err)
	}
	return m, nil
}

func (m Model) updateBoard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	col, card := m.uiState.SelectedColumn(), m.uiState.SelectedCard()

	switch {
	case key.Matches(msg, m.keys.PrevColumn):
		m.uiState.MoveColumn(-1, models.ColumnCount, m.cardsIn)
	case key.Matches(msg, m.keys.NextColumn):
		m.uiState.MoveColumn(1, models.ColumnCount, m.cardsIn)
	case key.Matches(msg, m.keys.PrevFeature):
		m.uiState.MoveCard(-1, m.cardsIn(col))
	case key.Matches(msg, m.keys.NextFeature):
		m.uiState.MoveCard(1, m.cardsIn(col))
	case key.Matches(msg, m.keys.MoveCardLeft):
		return m.moveCard(col-1, card)
	case key.Matches(msg, m.keys.MoveCardRight):
		return m.moveCard(col+1, card)
	case key.Matches(msg, m.keys.MoveCardUp):
		return m.moveCard(col, card-1)
	case key.Matches(msg, m.keys.MoveCardDown):
		return m.moveCard(col, card+1)
	}
	return m, nil
}

// moveCard drags the selected card to column/index and keeps it selected
func (m Model) moveCard(column, index int) (tea.Model, tea.Cmd) {
	if column < 0 || column >= models.ColumnCount || index < 0 {
		return m, nil
	}
	id, ok := m.selectedFeature()
	if !ok {
		return m, nil
	}

	from := models.Statuses[m.uiState.SelectedColumn()]
	fromIndex := m.uiState.SelectedCard()
	err := m.svc.MoveFeature(m.ctx, simservice.MoveRequest{
		ID:        id,
		From:      &from,
		FromIndex: &fromIndex,
		To:        models.Statuses[column],
		ToIndex:   index,
	})
	if err != nil {
		return m, m.notifyErr(err)
	}

	for c, ids := range m.snapshot().Board {
		for i, cardID := range ids {
			if cardID == id {
				m.uiState.Select(c, i)
			}
		}
	}
	return m, nil
}

// ============================================================================
// Input, rename and confirmation modes
// ============================================================================

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyEsc:
		m.input.Blur()
		m.uiState.SetMode(state.NormalMode)
		return m, nil

	case key.Matches(msg, m.keys.SubmitBatch):
		created, err := m.svc.CreateFeatures(m.ctx, m.input.Value())
		if errors.Is(err, models.ErrEmptyBacklogInput) {
			// shown from the state's validation message
			return m, nil
		}
		if err != nil {
			return m, m.notifyErr(err)
		}
		m.input.Reset()
		m.input.Blur()
		m.uiState.SetMode(state.NormalMode)
		m.uiState.MoveRow(len(m.listFeatures()), len(m.listFeatures()))
		return m, m.notify(state.LevelInfo, fmt.Sprintf("Added %d feature(s)", len(created)))
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if value := m.input.Value(); value != m.snapshot().Draft {
		if err := m.svc.SetDraft(m.ctx, value); err != nil {
			return m, tea.Batch(cmd, m.notifyErr(err))
		}
	}
	return m, cmd
}

func (m Model) startRename() (tea.Model, tea.Cmd) {
	id, ok := m.selectedFeature()
	if !ok {
		return m, nil
	}
	if err := m.svc.StartEdit(m.ctx, id); err != nil {
		return m, m.notifyErr(err)
	}

	f, _ := m.snapshot().Feature(id)
	m.rename.SetValue(f.Name)
	m.rename.CursorEnd()
	m.uiState.SetMode(state.RenameMode)
	focus := m.rename.Focus()
	return m, tea.Batch(focus, textinput.Blink)
}

func (m Model) updateRename(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.rename.Blur()
		m.uiState.SetMode(state.NormalMode)
		if err := m.svc.CancelEdit(m.ctx); err != nil {
			return m, m.notifyErr(err)
		}
		return m, nil

	case tea.KeyEnter:
		if err := m.svc.CommitEdit(m.ctx, m.rename.Value()); err != nil {
			// the editing session stays open so the name can be fixed
			return m, m.notifyErr(err)
		}
		m.rename.Blur()
		m.uiState.SetMode(state.NormalMode)
		return m, m.notify(state.LevelInfo, "Feature renamed")
	}

	var cmd tea.Cmd
	m.rename, cmd = m.rename.Update(msg)
	return m, cmd
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
	case "n", "N", "esc":
		m.pendingDelete = ""
		m.uiState.SetMode(state.NormalMode)
		return m, nil
	default:
		return m, nil
	}

	mode := m.uiState.Mode()
	m.uiState.SetMode(state.NormalMode)

	if mode == state.ResetConfirmMode {
		if err := m.svc.Reset(m.ctx); err != nil {
			return m, m.notifyErr(err)
		}
		m.uiState.Reset()
		m.input.Reset()
		return m, m.notify(state.LevelInfo, "Simulation reset")
	}

	id := m.pendingDelete
	m.pendingDelete = ""
	// the user already answered the modal
	ctx := simservice.ContextWithConfirmer(m.ctx, simservice.AlwaysConfirm)
	if _, err := m.svc.DeleteFeature(ctx, id); err != nil {
		return m, m.notifyErr(err)
	}

	m.uiState.ClampRow(len(m.listFeatures()))
	m.uiState.MoveCard(0, m.cardsIn(m.uiState.SelectedColumn()))
	return m, m.notify(state.LevelInfo, "Feature deleted")
}
