package bootstrap

import (
	"context"
	"log/slog"

	"github.com/avenmore/focusquest/internal/database"
	"github.com/avenmore/focusquest/internal/server"
	"github.com/avenmore/focusquest/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server        *server.Server
	CleanupWorker *worker.CleanupWorker
	DBPool        database.Pool
}

// GracefulShutdown stops the HTTP server first so no new requests
// arrive, then the background workers, then closes the database pool
// once in-flight work drains. Errors during shutdown are logged but do
// not stop the sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if err := components.Server.Stop(ctx); err != nil {
		slog.Error(LogMsgServerForcedShutdown, "error", err)
	}

	if components.CleanupWorker != nil {
		if err := components.CleanupWorker.Shutdown(ctx); err != nil {
			slog.Error(LogMsgWorkerShutdownFailed, "error", err)
		}
	}

	components.DBPool.Close()

	slog.Info(LogMsgServerStopped)
}
