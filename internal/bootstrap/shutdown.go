package bootstrap

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/CraftEconomy_Go/internal/event"
	"github.com/osse101/CraftEconomy_Go/internal/scheduler"
	"github.com/osse101/CraftEconomy_Go/internal/worker"
)

// HTTPServer is the part of the API server needed for shutdown
type HTTPServer interface {
	Stop(ctx context.Context) error
}

// ShutdownComponents holds all components that need graceful shutdown.
// Nil fields are skipped.
type ShutdownComponents struct {
	Server        HTTPServer
	Scheduler     *scheduler.Scheduler
	WorkerPool    *worker.Pool
	EventHandlers []*event.ResilientHandler
	DeadLetter    *event.DeadLetterWriter
	DBPool        *pgxpool.Pool
}

// GracefulShutdown performs graceful shutdown of all application components.
// It shuts down in order:
// 1. HTTP server (stop accepting new requests)
// 2. Scheduler and worker pool (no new refreshes, finish the running one)
// 3. Event handlers (pending archive retries are dead-lettered)
// 4. Dead-letter file and database pool
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	if components.Server != nil {
		slog.Info(LogMsgShuttingDownServer)
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Scheduler != nil {
		slog.Info(LogMsgShuttingDownScheduler)
		components.Scheduler.Stop()
	}

	if components.WorkerPool != nil {
		slog.Info(LogMsgShuttingDownWorkers)
		components.WorkerPool.Stop()
	}

	if len(components.EventHandlers) > 0 {
		slog.Info(LogMsgShuttingDownEventHandlers)
		for _, h := range components.EventHandlers {
			if err := h.Shutdown(ctx); err != nil {
				slog.Error(LogMsgHandlerShutdownFailed, "error", err)
			}
		}
	}

	if components.DeadLetter != nil {
		if err := components.DeadLetter.Close(); err != nil {
			slog.Error(LogMsgDeadLetterCloseFailed, "error", err)
		}
	}

	if components.DBPool != nil {
		slog.Info(LogMsgClosingDatabase)
		components.DBPool.Close()
	}

	slog.Info(LogMsgServerStopped)
}
