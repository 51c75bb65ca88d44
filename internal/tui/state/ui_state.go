package state

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode        Mode = iota // Default navigation mode
	InputMode                     // Typing into the bulk feature input
	RenameMode                    // Renaming a feature in the modal
	DeleteConfirmMode             // Confirming feature deletion
	ResetConfirmMode              // Confirming a simulation reset
	HelpMode                      // Displaying help screen
)

// Dimension count for the prioritization table cursor
const dimensionCount = 3

// UIState manages the user interface state.
// This includes list and board selection, terminal dimensions and the
// current interaction mode.
type UIState struct {
	// selectedRow is the cursor in list views (backlog, prioritization, planning)
	selectedRow int

	// selectedDimension is the scoring column under the cursor in prioritization
	selectedDimension int

	// selectedColumn and selectedCard are the board cursor during execution
	selectedColumn int
	selectedCard   int

	// showRanked switches the prioritization table to score order
	showRanked bool

	// width is the current terminal width in characters
	width int

	// height is the current terminal height in characters
	height int

	// mode is the current interaction mode
	mode Mode
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{mode: NormalMode}
}

func (s *UIState) Mode() Mode        { return s.mode }
func (s *UIState) SetMode(mode Mode) { s.mode = mode }

func (s *UIState) Width() int  { return s.width }
func (s *UIState) Height() int { return s.height }

// SetSize records the terminal dimensions
func (s *UIState) SetSize(width, height int) {
	s.width = width
	s.height = height
}

func (s *UIState) SelectedRow() int       { return s.selectedRow }
func (s *UIState) SelectedDimension() int { return s.selectedDimension }
func (s *UIState) SelectedColumn() int    { return s.selectedColumn }
func (s *UIState) SelectedCard() int      { return s.selectedCard }
func (s *UIState) ShowRanked() bool       { return s.showRanked }

// ToggleRanked flips between creation order and score order
func (s *UIState) ToggleRanked() {
	s.showRanked = !s.showRanked
}

// MoveRow moves the list cursor by delta, keeping it inside [0, count)
func (s *UIState) MoveRow(delta, count int) {
	s.selectedRow = clamp(s.selectedRow+delta, count)
}

// ClampRow keeps the list cursor valid after the list changed size
func (s *UIState) ClampRow(count int) {
	s.selectedRow = clamp(s.selectedRow, count)
}

// MoveDimension moves the prioritization cursor between scoring columns
func (s *UIState) MoveDimension(delta int) {
	s.selectedDimension = clamp(s.selectedDimension+delta, dimensionCount)
}

// MoveColumn moves the board cursor to another column. The card cursor is
// clamped to the new column's length.
func (s *UIState) MoveColumn(delta, columns int, cardsIn func(int) int) {
	s.selectedColumn = clamp(s.selectedColumn+delta, columns)
	s.selectedCard = clamp(s.selectedCard, cardsIn(s.selectedColumn))
}

// MoveCard moves the card cursor within the current column
func (s *UIState) MoveCard(delta, count int) {
	s.selectedCard = clamp(s.selectedCard+delta, count)
}

// Select places the board cursor on a specific card, used to follow a moved card
func (s *UIState) Select(column, card int) {
	s.selectedColumn = column
	s.selectedCard = card
}

// Reset returns every cursor to the top-left
func (s *UIState) Reset() {
	s.selectedRow = 0
	s.selectedDimension = 0
	s.selectedColumn = 0
	s.selectedCard = 0
	s.showRanked = false
}

// clamp limits v to [0, count-1], returning 0 for empty ranges
func clamp(v, count int) int {
	if count <= 0 || v < 0 {
		return 0
	}
	if v >= count {
		return count - 1
	}
	return v
}
