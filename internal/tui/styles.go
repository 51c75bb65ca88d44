package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/thenoetrevino/sprintsim/internal/tui/theme"
)

// Styles are built on demand so a reloaded theme applies on the next frame

const columnWidth = 32

func titleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Title))
}

func subtleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))
}

func normalStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Normal))
}

func selectedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Selected))
}

func errorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(theme.ErrorFg))
}

func tabStyle(active bool) lipgloss.Style {
	if active {
		return lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Foreground(lipgloss.Color(theme.Accent)).
			Underline(true)
	}
	return lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color(theme.Subtle))
}

func columnStyle(column int, focused bool) lipgloss.Style {
	border := theme.StatusColor(column)
	if focused {
		border = theme.Selected
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(border)).
		Padding(0, 1).
		Width(columnWidth)
}

func cardStyle(selected bool) lipgloss.Style {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Normal))
	if selected {
		style = style.Bold(true).Foreground(lipgloss.Color(theme.Selected))
	}
	return style
}

func modalStyle(color string) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(color)).
		Padding(1, 2)
}
