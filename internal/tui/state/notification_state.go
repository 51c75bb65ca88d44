package state

// NotificationLevel represents the severity/type of a notification.
type NotificationLevel int

const (
	// LevelInfo represents informational notifications
	LevelInfo NotificationLevel = iota
	// LevelError represents rejected actions and failures
	LevelError
)

// Notification represents a single notification message with a severity level.
type Notification struct {
	Level   NotificationLevel
	Message string
	ID      int // increases with every Add, used to expire stale messages
}

// NotificationState manages notification display state.
// Only the most recent notification is shown; a new one replaces the old.
type NotificationState struct {
	current *Notification
	nextID  int
}

// NewNotificationState creates a new NotificationState with no notifications.
func NewNotificationState() *NotificationState {
	return &NotificationState{}
}

// Add shows a new notification and returns its id
func (s *NotificationState) Add(level NotificationLevel, message string) int {
	s.nextID++
	s.current = &Notification{Level: level, Message: message, ID: s.nextID}
	return s.nextID
}

// Clear removes the current notification.
func (s *NotificationState) Clear() {
	s.current = nil
}

// Expire clears the notification only if it is still the one with id
func (s *NotificationState) Expire(id int) {
	if s.current != nil && s.current.ID == id {
		s.current = nil
	}
}

// Current returns the visible notification
func (s *NotificationState) Current() (Notification, bool) {
	if s.current == nil {
		return Notification{}, false
	}
	return *s.current, true
}

// HasAny returns true if a notification is visible.
func (s *NotificationState) HasAny() bool {
	return s.current != nil
}
