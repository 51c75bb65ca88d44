package models

// ============================================================================
// SCORE CONSTANTS
// ============================================================================

// Bounds for the three scoring dimensions of a feature
const (
	MinScore     = 1
	MaxScore     = 5
	DefaultScore = 3
)

// ============================================================================
// BOARD CONSTANTS
// ============================================================================

// ColumnCount is the number of kanban columns on the sprint board
const ColumnCount = 3

// MaxNameLength bounds feature names accepted from the CLI and TUI
const MaxNameLength = 255
