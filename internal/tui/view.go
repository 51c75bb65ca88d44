package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/thenoetrevino/sprintsim/internal/models"
	"github.com/thenoetrevino/sprintsim/internal/tui/notifications"
	"github.com/thenoetrevino/sprintsim/internal/tui/state"
	"github.com/thenoetrevino/sprintsim/internal/tui/theme"
)

// View renders the current state of the application
// This implements the "View" part of the Model-View-Update pattern
func (m Model) View() string {
	var body string
	switch m.uiState.Mode() {
	case state.HelpMode:
		body = m.help.FullHelpView(m.keys.FullHelp())
	case state.RenameMode:
		body = m.viewRename()
	case state.DeleteConfirmMode:
		body = m.viewDeleteConfirm()
	case state.ResetConfirmMode:
		body = m.viewResetConfirm()
	default:
		body = m.viewStage()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.viewTabs(),
		"",
		body,
		"",
		m.viewStatusBar(),
	)
}

func (m Model) viewTabs() string {
	current := m.snapshot().Stage
	tabs := make([]string, 0, len(models.Stages))
	for _, stage := range models.Stages {
		tabs = append(tabs, tabStyle(stage == current).Render(stage.Title()))
	}
	step := subtleStyle().Render(fmt.Sprintf("  step %d/%d", current.Index()+1, len(models.Stages)))
	return lipgloss.JoinHorizontal(lipgloss.Top, append(tabs, step)...)
}

func (m Model) viewStatusBar() string {
	if n, ok := m.notificationState.Current(); ok {
		return notifications.RenderInline(n)
	}
	if m.uiState.Mode() == state.InputMode {
		return subtleStyle().Render(fmt.Sprintf("%s create features • esc stop editing", m.cfg.KeyMappings.SubmitBatch))
	}
	return m.help.View(m.keys)
}

func (m Model) viewStage() string {
	switch m.snapshot().Stage {
	case models.StageProductBacklog:
		return m.viewBacklog()
	case models.StagePrioritization:
		return m.viewPrioritization()
	case models.StageSprintPlanning:
		return m.viewPlanning()
	case models.StageSprintExecution:
		return m.viewBoard()
	case models.StageReview:
		return m.review.View()
	}
	return ""
}

// ============================================================================
// Modals
// ============================================================================

func (m Model) viewRename() string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle().Render("Rename feature"),
		"",
		m.rename.View(),
		"",
		subtleStyle().Render("enter save • esc cancel"),
	)
	return modalStyle(theme.Accent).Render(content)
}

func (m Model) viewDeleteConfirm() string {
	f, _ := m.snapshot().Feature(m.pendingDelete)
	content := lipgloss.JoinVertical(lipgloss.Left,
		errorStyle().Bold(true).Render(fmt.Sprintf("Delete %q?", f.Name)),
		"",
		normalStyle().Render("It is also removed from the sprint and the board."),
		subtleStyle().Render("y delete • n cancel"),
	)
	return modalStyle(theme.Delete).Render(content)
}

func (m Model) viewResetConfirm() string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		errorStyle().Bold(true).Render("Discard this simulation and start over?"),
		"",
		subtleStyle().Render("y reset • n cancel"),
	)
	return modalStyle(theme.Delete).Render(content)
}

// cursor returns the list marker for row i
func (m Model) cursor(i int) string {
	if i == m.uiState.SelectedRow() {
		return selectedStyle().Render("▶ ")
	}
	return "  "
}

func emptyHint(text string) string {
	return subtleStyle().Italic(true).Render(text)
}

func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	r := []rune(s)
	if len(r) > width-1 {
		r = r[:width-1]
	}
	return strings.TrimSpace(string(r)) + "…"
}
