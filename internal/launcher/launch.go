package launcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/thenoetrevino/sprintsim/internal/app"
	"github.com/thenoetrevino/sprintsim/internal/config"
	"github.com/thenoetrevino/sprintsim/internal/database"
	"github.com/thenoetrevino/sprintsim/internal/logging"
	simservice "github.com/thenoetrevino/sprintsim/internal/services/simulation"
	"github.com/thenoetrevino/sprintsim/internal/tui"
	"github.com/thenoetrevino/sprintsim/internal/user"
	"golang.org/x/sync/errgroup"
)

// Launch starts the TUI application
func Launch() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logging to file before anything else touches slog
	logFile, err := logging.Init(cfg.SlogLevel())
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer logFile.Close()

	// Create root context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	db, err := database.InitDB(ctx, cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("error closing database", "error", err)
		}
	}()

	// Snapshots are persisted by the dispatcher goroutine; the TUI asks for
	// confirmation itself, so the service never prompts.
	application := app.New(db,
		app.WithConfig(cfg),
		app.WithAsyncPersistence(),
		app.WithConfirmer(simservice.AlwaysConfirm),
	)
	// Close drains queued snapshots and must run before the database closes
	defer func() {
		if err := application.Close(); err != nil {
			slog.Error("error flushing pending snapshots", "error", err)
		}
	}()

	if err := application.SimulationService.Load(ctx); err != nil {
		return fmt.Errorf("failed to load simulation: %w", err)
	}

	model := tui.InitialModel(ctx, application.SimulationService, cfg, user.Facilitator())
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	// The watcher lives exactly as long as the program
	runCtx, stop := context.WithCancel(ctx)
	g, gctx := errgroup.WithContext(runCtx)
	g.Go(func() error {
		watchConfig(gctx, p)
		return nil
	})
	g.Go(func() error {
		defer stop()
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("error running program: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	slog.Info("tui exited")
	return nil
}

// watchConfig forwards config file edits to the running program until ctx is done
func watchConfig(ctx context.Context, p *tea.Program) {
	path, err := config.Path()
	if err != nil {
		slog.Warn("config watch disabled", "error", err)
		return
	}
	err = config.Watch(ctx, path, func(c *config.Config) {
		p.Send(tui.ConfigReloadedMsg{Config: c})
	})
	if err != nil {
		slog.Warn("config watch stopped", "path", path, "error", err)
	}
}
