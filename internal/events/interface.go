package events

// EventPublisher defines the interface for sending events.
// This interface allows for loose coupling and easier testing by depending
// on behavior rather than concrete implementation.
type EventPublisher interface {
	// SendEvent queues an event for delivery
	SendEvent(event Event) error

	// Close stops accepting events and waits for queued ones to be delivered
	Close() error
}

// Compile-time verification that *Dispatcher implements EventPublisher
var _ EventPublisher = (*Dispatcher)(nil)
