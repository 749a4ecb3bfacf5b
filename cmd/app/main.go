package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/avenmore/focusquest/internal/bootstrap"
	"github.com/avenmore/focusquest/internal/config"
	"github.com/avenmore/focusquest/internal/database"
	"github.com/avenmore/focusquest/internal/event"
	"github.com/avenmore/focusquest/internal/handler"
	"github.com/avenmore/focusquest/internal/server"
	"github.com/avenmore/focusquest/internal/worker"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load first (pulls in .env), then validate so misconfiguration
	// fails fast with a readable message
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		slog.Error("Environment validation failed", "error", err)
		os.Exit(1)
	}
	for _, w := range warnings {
		slog.Warn("Environment warning", "warning", w)
	}

	initLogger(cfg)
	handler.InitValidator()

	// Run migrations before opening the pool so the schema is ready
	if err := database.Migrate(cfg.GetDBConnString()); err != nil {
		slog.Error("Migrations failed", "error", err)
		os.Exit(1)
	}

	dbPool, err := database.NewPool(cfg.GetDBConnString(),
		database.DefaultMaxConnections,
		database.DefaultMaxConnIdleTime,
		database.DefaultMaxConnLifetime)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}

	eventBus := event.NewMemoryBus()
	bootstrap.RegisterEventHandlers(eventBus)

	repos := bootstrap.InitializeRepositories(dbPool)
	services := bootstrap.InitializeServices(cfg, dbPool, repos, eventBus)

	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies, dbPool,
		services.Battle, services.Raid, services.User)

	cleanupWorker := worker.NewCleanupWorker(dbPool, worker.DefaultCleanupInterval, worker.DefaultLimitsRetention)
	cleanupWorker.Start()

	// Run the server in the background so the main goroutine can wait
	// for shutdown signals
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		slog.Error("Server failed", "error", err)
		dbPool.Close()
		os.Exit(1)
	case sig := <-stop:
		slog.Info("Shutdown signal received", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(ctx, bootstrap.ShutdownComponents{
		Server:        srv,
		CleanupWorker: cleanupWorker,
		DBPool:        dbPool,
	})
}
