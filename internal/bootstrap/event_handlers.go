package bootstrap

import (
	"log/slog"

	"github.com/osse101/CraftEconomy_Go/internal/event"
	"github.com/osse101/CraftEconomy_Go/internal/market"
	"github.com/osse101/CraftEconomy_Go/internal/metrics"
)

// EventHandlerDependencies holds the dependencies needed for event handler registration.
type EventHandlerDependencies struct {
	EventBus event.Bus
	// Archive is nil when the snapshot archive is disabled
	Archive    market.Archive
	DeadLetter *event.DeadLetterWriter
	Retry      event.ResilientConfig
}

// RegisterEventHandlers sets up all event subscribers:
// - Metrics collector (feed outcome counters)
// - Snapshot archiver (persists landed snapshots, retried and dead-lettered on failure)
//
// The returned handlers must be shut down after the feed stops.
func RegisterEventHandlers(deps EventHandlerDependencies) []*event.ResilientHandler {
	metricsCollector := metrics.NewEventMetricsCollector()
	metricsCollector.Register(deps.EventBus)
	slog.Info(LogMsgMetricsCollectorRegistered)

	if deps.Archive == nil {
		return nil
	}

	retry := deps.Retry
	if retry.MaxRetries == 0 {
		retry.MaxRetries = EventDefaultMaxRetries
	}
	if retry.RetryDelay == 0 {
		retry.RetryDelay = EventDefaultRetryDelay
	}

	archiver := market.NewArchiver(deps.Archive)
	resilient := event.NewResilientHandler(HandlerNameArchiver, archiver.HandleEvent, retry, deps.DeadLetter)
	deps.EventBus.Subscribe(event.MarketSnapshotLanded, resilient.Handle)
	slog.Info(LogMsgArchiverRegistered, "max_retries", retry.MaxRetries, "retry_delay", retry.RetryDelay)

	return []*event.ResilientHandler{resilient}
}
