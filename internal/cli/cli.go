// Package cli holds the pieces shared by every sprintsim subcommand: app
// bootstrapping, output formatting and exit codes.
package cli

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/thenoetrevino/sprintsim/internal/app"
	"github.com/thenoetrevino/sprintsim/internal/cli/styles"
	"github.com/thenoetrevino/sprintsim/internal/config"
	"github.com/thenoetrevino/sprintsim/internal/database"
	simservice "github.com/thenoetrevino/sprintsim/internal/services/simulation"
	"github.com/thenoetrevino/sprintsim/internal/testutil"
)

// CLI represents the CLI application context
type CLI struct {
	App *app.App // Application container with services
	db  *sql.DB  // owned connection, nil when the app was injected
}

// NewCLI loads config, opens the database and restores the saved simulation
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	styles.Init(cfg.ColorScheme)

	db, err := database.InitDB(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	application := app.New(db,
		app.WithConfig(cfg),
		app.WithConfirmer(FormConfirmer{In: os.Stdin, Out: os.Stderr}),
	)

	c := &CLI{App: application, db: db}
	if err := application.SimulationService.Load(ctx); err != nil {
		if closeErr := c.Close(); closeErr != nil {
			slog.Error("Error closing CLI", "error", closeErr)
		}
		return nil, err
	}
	return c, nil
}

// GetCLIFromContext returns a CLI for the command context. Tests inject an
// app through testutil.TestAppKey; otherwise a new CLI is created.
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	if injected, ok := ctx.Value(testutil.TestAppKey).(*app.App); ok && injected != nil {
		if err := injected.SimulationService.Load(ctx); err != nil {
			return nil, err
		}
		return &CLI{App: injected}, nil
	}

	return NewCLI(ctx)
}

// Service is shorthand for the simulation service
func (c *CLI) Service() simservice.Service {
	return c.App.SimulationService
}

// Persist writes the current simulation state to the database
func (c *CLI) Persist(ctx context.Context) error {
	return c.Service().Save(ctx)
}

// Close cleans up CLI resources. Injected apps are left open for the caller.
func (c *CLI) Close() error {
	if c.db == nil {
		return nil
	}
	return errors.Join(c.App.Close(), c.db.Close())
}
