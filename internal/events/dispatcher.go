package events

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// DefaultBufferSize is the queue capacity used when none is given
const DefaultBufferSize = 64

// Handler consumes one event. Returned errors are logged and counted, never
// propagated back to the sender.
type Handler func(ctx context.Context, event Event) error

// Dispatcher delivers events to its handlers on a single background
// goroutine, in the order they were sent
type Dispatcher struct {
	queue    chan Event
	handlers []Handler
	timeout  time.Duration
	metrics  *Metrics
	logger   *slog.Logger
	seq      atomic.Int64

	mu     sync.RWMutex
	closed bool
	done   chan struct{}
}

// DispatcherOption configures a Dispatcher
type DispatcherOption func(*Dispatcher)

// WithBufferSize sets the queue capacity
func WithBufferSize(n int) DispatcherOption {
	return func(d *Dispatcher) {
		if n > 0 {
			d.queue = make(chan Event, n)
		}
	}
}

// WithHandlerTimeout bounds how long a single handler call may run
func WithHandlerTimeout(timeout time.Duration) DispatcherOption {
	return func(d *Dispatcher) {
		d.timeout = timeout
	}
}

// WithLogger sets where handler failures and the shutdown summary are logged
func WithLogger(logger *slog.Logger) DispatcherOption {
	return func(d *Dispatcher) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// NewDispatcher starts a dispatcher delivering to handlers
func NewDispatcher(handlers []Handler, opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		queue:    make(chan Event, DefaultBufferSize),
		handlers: handlers,
		timeout:  5 * time.Second,
		metrics:  NewMetrics(),
		logger:   slog.Default(),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(d)
	}

	go d.run()
	return d
}

// SendEvent stamps the event and queues it without blocking
func (d *Dispatcher) SendEvent(event Event) error {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		return ErrClosed
	}

	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	event.SequenceID = d.seq.Add(1)

	select {
	case d.queue <- event:
		d.metrics.EventsSent.Add(1)
		return nil
	default:
		d.metrics.EventsDropped.Add(1)
		return ErrQueueFull
	}
}

// Close stops accepting events, drains the queue and waits for the
// background goroutine to exit. Calling Close more than once is safe.
func (d *Dispatcher) Close() error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		<-d.done
		return nil
	}
	d.closed = true
	close(d.queue)
	d.mu.Unlock()

	<-d.done

	snap := d.metrics.GetSnapshot()
	d.logger.Info("event dispatcher closed",
		"events_sent", snap.EventsSent,
		"events_delivered", snap.EventsDelivered,
		"events_dropped", snap.EventsDropped,
		"handler_failures", snap.HandlerFailures,
		"uptime", snap.Uptime)
	return nil
}

// Metrics exposes the dispatcher counters
func (d *Dispatcher) Metrics() *Metrics {
	return d.metrics
}

func (d *Dispatcher) run() {
	defer close(d.done)

	for event := range d.queue {
		failed := false
		for _, handle := range d.handlers {
			ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
			err := handle(ctx, event)
			cancel()
			if err != nil {
				failed = true
				d.metrics.HandlerFailures.Add(1)
				d.logger.Warn("event handler failed",
					"event_type", event.Type,
					"sequence_id", event.SequenceID,
					"error", err)
			}
		}
		if !failed {
			d.metrics.EventsDelivered.Add(1)
		}
	}
}
