package events

import (
	"sync/atomic"
	"time"
)

// Metrics tracks dispatcher statistics using atomic operations for thread-safety
type Metrics struct {
	EventsSent      atomic.Int64
	EventsDelivered atomic.Int64
	EventsDropped   atomic.Int64
	HandlerFailures atomic.Int64
	StartTime       time.Time
}

// NewMetrics creates a new Metrics instance
func NewMetrics() *Metrics {
	return &Metrics{
		StartTime: time.Now(),
	}
}

// MetricsSnapshot represents a point-in-time snapshot of metrics
type MetricsSnapshot struct {
	EventsSent      int64     `json:"events_sent"`
	EventsDelivered int64     `json:"events_delivered"`
	EventsDropped   int64     `json:"events_dropped"`
	HandlerFailures int64     `json:"handler_failures"`
	StartTime       time.Time `json:"start_time"`
	Uptime          string    `json:"uptime"`
}

// GetSnapshot returns a snapshot of current metrics
func (m *Metrics) GetSnapshot() MetricsSnapshot {
	return MetricsSnapshot{
		EventsSent:      m.EventsSent.Load(),
		EventsDelivered: m.EventsDelivered.Load(),
		EventsDropped:   m.EventsDropped.Load(),
		HandlerFailures: m.HandlerFailures.Load(),
		StartTime:       m.StartTime,
		Uptime:          time.Since(m.StartTime).String(),
	}
}
