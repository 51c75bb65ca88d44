package app

import (
	"database/sql"
	"log/slog"

	"github.com/thenoetrevino/sprintsim/internal/config"
	"github.com/thenoetrevino/sprintsim/internal/database"
	"github.com/thenoetrevino/sprintsim/internal/events"
	simservice "github.com/thenoetrevino/sprintsim/internal/services/simulation"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	// Repository layer (direct database access)
	repo *database.Repository

	// Event system for change notifications
	eventClient events.EventPublisher

	// Config is the effective configuration
	Config *config.Config

	// Service layer (business logic)
	SimulationService simservice.Service
}

// New creates a new App with all services initialized.
// This is the single entry point for creating the application container.
func New(db *sql.DB, opts ...Option) *App {
	cfg := &appConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.cfg == nil {
		cfg.cfg = config.Default()
	}
	if cfg.logger != nil {
		slog.SetDefault(cfg.logger)
	}

	repo := database.NewRepository(db)

	eventClient := cfg.eventClient
	if eventClient == nil && cfg.asyncPersist {
		eventClient = events.NewDispatcher([]events.Handler{repo.Handler()})
	}

	confirmer := cfg.confirmer
	if !cfg.cfg.ShouldConfirmDeletes() {
		confirmer = simservice.AlwaysConfirm
	}

	var svcOpts []simservice.Option
	if cfg.reducer != nil {
		svcOpts = append(svcOpts, simservice.WithReducer(cfg.reducer))
	}

	return &App{
		repo:              repo,
		eventClient:       eventClient,
		Config:            cfg.cfg,
		SimulationService: simservice.NewService(repo, eventClient, confirmer, svcOpts...),
	}
}

// Repo returns the underlying repository for direct database access.
func (a *App) Repo() *database.Repository {
	return a.repo
}

// Close flushes pending events. The database handle belongs to the caller.
func (a *App) Close() error {
	if a.eventClient == nil {
		return nil
	}
	return a.eventClient.Close()
}
