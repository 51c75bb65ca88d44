package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/muesli/reflow/wordwrap"
	"github.com/thenoetrevino/sprintsim/internal/models"
	"github.com/thenoetrevino/sprintsim/internal/report"
	"github.com/thenoetrevino/sprintsim/internal/simulation"
	"github.com/thenoetrevino/sprintsim/internal/tui/state"
	"github.com/thenoetrevino/sprintsim/internal/tui/theme"
)

// ============================================================================
// Product backlog
// ============================================================================

func (m Model) viewBacklog() string {
	s := m.snapshot()
	var b strings.Builder

	b.WriteString(titleStyle().Render("Add features"))
	b.WriteString("\n")
	if m.uiState.Mode() != state.InputMode {
		b.WriteString(subtleStyle().Render(fmt.Sprintf("press %s to type, one feature per line", m.cfg.KeyMappings.AddFeature)))
		b.WriteString("\n")
	}
	b.WriteString(m.input.View())
	b.WriteString("\n")
	if s.ValidationError != "" {
		b.WriteString(errorStyle().Render(s.ValidationError))
		b.WriteString("\n")
	}

	features := simulation.BacklogFeatures(s)
	b.WriteString("\n")
	b.WriteString(titleStyle().Render(fmt.Sprintf("Product Backlog (%d)", len(features))))
	b.WriteString("\n")
	if len(features) == 0 {
		b.WriteString(emptyHint("No features yet"))
		return b.String()
	}
	for i, f := range features {
		b.WriteString(m.cursor(i) + normalStyle().Render(f.Name) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// ============================================================================
// Prioritization
// ============================================================================

func (m Model) viewPrioritization() string {
	features := m.listFeatures()
	order := "creation order"
	if m.uiState.ShowRanked() {
		order = "ranked by score"
	}
	header := titleStyle().Render("Prioritize") + subtleStyle().Render(" · "+order)
	if len(features) == 0 {
		return header + "\n" + emptyHint("The backlog is empty")
	}

	rows := make([][]string, 0, len(features))
	for _, f := range features {
		rows = append(rows, []string{
			truncate(f.Name, columnWidth),
			strconv.Itoa(f.UserNeed),
			strconv.Itoa(f.BusinessValue),
			strconv.Itoa(f.Effort),
			fmt.Sprintf("%.1f", simulation.Score(f)),
		})
	}

	selRow, selCol := m.uiState.SelectedRow(), m.uiState.SelectedDimension()+1
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))).
		Headers("Feature", "User need", "Business value", "Effort", "Score").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := lipgloss.NewStyle().Padding(0, 1)
			switch {
			case row == table.HeaderRow:
				return style.Bold(true).Foreground(lipgloss.Color(theme.Accent))
			case row == selRow && col == selCol:
				return style.Bold(true).Reverse(true).Foreground(lipgloss.Color(theme.Selected))
			case row == selRow:
				return style.Foreground(lipgloss.Color(theme.Selected))
			}
			return style.Foreground(lipgloss.Color(theme.Normal))
		})

	hint := subtleStyle().Render(fmt.Sprintf("%s/%s change score • %s toggle ranked view",
		m.cfg.KeyMappings.IncreaseScore, m.cfg.KeyMappings.DecreaseScore, m.cfg.KeyMappings.ToggleRank))
	return lipgloss.JoinVertical(lipgloss.Left, header, t.Render(), hint)
}

// ============================================================================
// Sprint planning
// ============================================================================

func (m Model) viewPlanning() string {
	s := m.snapshot()
	features := m.listFeatures()

	var b strings.Builder
	b.WriteString(titleStyle().Render("Plan the sprint"))
	b.WriteString(subtleStyle().Render(" · ranked by score"))
	b.WriteString("\n")
	if len(features) == 0 {
		b.WriteString(emptyHint("The backlog is empty"))
		b.WriteString("\n")
	}
	for i, f := range features {
		marker := subtleStyle().Render("[ ]    ")
		if simulation.InSprint(s, f.ID) {
			marker = selectedStyle().Render("[Added]")
		}
		fmt.Fprintf(&b, "%s%s %s %s\n", m.cursor(i), marker,
			normalStyle().Render(truncate(f.Name, columnWidth)),
			subtleStyle().Render(fmt.Sprintf("score %.1f · effort %d", simulation.Score(f), f.Effort)))
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "Sprint: %d feature(s), total effort %d\n", len(s.Sprint), simulation.TotalEffort(s))
	if simulation.CanStartSprint(s) {
		b.WriteString(subtleStyle().Render(fmt.Sprintf("press %s to start the sprint", m.cfg.KeyMappings.Advance)))
	} else {
		b.WriteString(subtleStyle().Render("add at least one feature to start the sprint"))
	}
	return b.String()
}

// ============================================================================
// Sprint execution
// ============================================================================

func (m Model) viewBoard() string {
	s := m.snapshot()
	columns := make([]string, 0, models.ColumnCount)

	for col, status := range models.Statuses {
		items := simulation.Column(s, status)
		focused := col == m.uiState.SelectedColumn()

		header := lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(theme.StatusColor(col))).
			Render(fmt.Sprintf("%s (%d)", status.Title(), len(items)))

		lines := []string{header, ""}
		if len(items) == 0 {
			lines = append(lines, emptyHint("empty"))
		}
		for i, item := range items {
			selected := focused && i == m.uiState.SelectedCard()
			prefix := "  "
			if selected {
				prefix = "▶ "
			}
			// long names wrap inside the card, aligned under the first line
			name := wordwrap.String(item.Feature.Name, columnWidth-6)
			name = strings.ReplaceAll(name, "\n", "\n  ")
			lines = append(lines, cardStyle(selected).Render(
				fmt.Sprintf("%s%s\n  effort %d", prefix, name, item.Effort)))
		}

		columns = append(columns, columnStyle(col, focused).Render(strings.Join(lines, "\n")))
	}

	board := lipgloss.JoinHorizontal(lipgloss.Top, columns...)
	summary := simulation.Review(s)
	footer := subtleStyle().Render(fmt.Sprintf("total effort %d · completed %d", summary.TotalEffort, summary.CompletedEffort))
	return lipgloss.JoinVertical(lipgloss.Left, board, footer)
}

// ============================================================================
// Review
// ============================================================================

// refreshReview re-renders the review document into the viewport
func (m *Model) refreshReview() {
	markdown := report.Markdown(m.snapshot(), m.facilitator, time.Now())
	width := m.review.Width
	if width <= 0 {
		width = 80
	}

	rendered, err := report.Render(markdown, m.cfg.ReviewStyle, width)
	if err != nil {
		rendered = markdown
	}
	m.review.SetContent(rendered)
}
