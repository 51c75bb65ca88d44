package events

import "errors"

var (
	// ErrClosed is returned when sending to a dispatcher that has been closed
	ErrClosed = errors.New("event dispatcher is closed")

	// ErrQueueFull is returned when the dispatcher buffer has no room left
	ErrQueueFull = errors.New("event queue is full")
)
