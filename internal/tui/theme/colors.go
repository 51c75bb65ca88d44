package theme

import "github.com/thenoetrevino/sprintsim/internal/config"

// Colors holds the current theme colors, initialized by Init
var (
	Accent     string
	Todo       string
	InProgress string
	Done       string
	Selected   string
	Delete     string
	Title      string
	Subtle     string
	Normal     string
	InfoFg     string
	ErrorFg    string
)

// Init initializes the theme colors from the given color scheme
func Init(colors config.ColorScheme) {
	Accent = colors.Accent
	Todo = colors.Todo
	InProgress = colors.InProgress
	Done = colors.Done
	Selected = colors.Selected
	Delete = colors.Delete
	Title = colors.Title
	Subtle = colors.Subtle
	Normal = colors.Normal
	InfoFg = colors.InfoFg
	ErrorFg = colors.ErrorFg
}

// StatusColor returns the column color for a board column index
func StatusColor(column int) string {
	switch column {
	case 0:
		return Todo
	case 1:
		return InProgress
	case 2:
		return Done
	}
	return Normal
}
