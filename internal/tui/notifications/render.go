package notifications

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/thenoetrevino/sprintsim/internal/tui/state"
	"github.com/thenoetrevino/sprintsim/internal/tui/theme"
)

// RenderInline renders a compact single-line notification for the status bar
func RenderInline(n state.Notification) string {
	icon, color := "🔔", theme.InfoFg
	if n.Level == state.LevelError {
		icon, color = "✕", theme.ErrorFg
	}

	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(color)).
		Bold(n.Level == state.LevelError).
		Padding(0, 1).
		Render(icon + " " + n.Message)
}
