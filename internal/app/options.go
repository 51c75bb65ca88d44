package app

import (
	"log/slog"

	"github.com/thenoetrevino/sprintsim/internal/config"
	"github.com/thenoetrevino/sprintsim/internal/events"
	simservice "github.com/thenoetrevino/sprintsim/internal/services/simulation"
	"github.com/thenoetrevino/sprintsim/internal/simulation"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	eventClient  events.EventPublisher
	asyncPersist bool
	logger       *slog.Logger
	cfg          *config.Config
	confirmer    simservice.Confirmer
	reducer      *simulation.Reducer
}

// WithEventPublisher sets the event publisher for the application
func WithEventPublisher(ec events.EventPublisher) Option {
	return func(cfg *appConfig) {
		cfg.eventClient = ec
	}
}

// WithAsyncPersistence persists every change through an events.Dispatcher
// feeding the repository. Ignored when WithEventPublisher is also given.
func WithAsyncPersistence() Option {
	return func(cfg *appConfig) {
		cfg.asyncPersist = true
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}

// WithConfig sets the loaded configuration
func WithConfig(c *config.Config) Option {
	return func(cfg *appConfig) {
		cfg.cfg = c
	}
}

// WithConfirmer sets how deletions are confirmed
func WithConfirmer(c simservice.Confirmer) Option {
	return func(cfg *appConfig) {
		cfg.confirmer = c
	}
}

// WithReducer overrides the simulation reducer (deterministic ids in tests)
func WithReducer(r *simulation.Reducer) Option {
	return func(cfg *appConfig) {
		cfg.reducer = r
	}
}
