package models

import (
	"fmt"
	"strings"
)

// Status is the execution state of a sprint entry. It doubles as the key of the
// kanban column that holds the entry.
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "inProgress"
	StatusDone       Status = "done"
)

// Statuses lists the board columns in display order
var Statuses = [ColumnCount]Status{StatusTodo, StatusInProgress, StatusDone}

// Column returns the board column index for the status, or -1 if unknown
func (s Status) Column() int {
	for i, status := range Statuses {
		if status == s {
			return i
		}
	}
	return -1
}

// Valid reports whether s is one of the three statuses
func (s Status) Valid() bool {
	return s.Column() >= 0
}

// Title returns the column heading for the status
func (s Status) Title() string {
	switch s {
	case StatusTodo:
		return "To Do"
	case StatusInProgress:
		return "In Progress"
	case StatusDone:
		return "Done"
	}
	return string(s)
}

// ParseStatus maps user input such as "in-progress" or "In Progress" to a Status
func ParseStatus(name string) (Status, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.NewReplacer("-", "", "_", "", " ", "").Replace(key)
	switch key {
	case "todo":
		return StatusTodo, nil
	case "inprogress", "doing":
		return StatusInProgress, nil
	case "done":
		return StatusDone, nil
	}
	return "", fmt.Errorf("%w: %q (must be: todo, inProgress, done)", ErrUnknownStatus, name)
}
