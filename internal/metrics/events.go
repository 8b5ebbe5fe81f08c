package metrics

import (
	"context"

	"github.com/osse101/CraftEconomy_Go/internal/event"
	"github.com/osse101/CraftEconomy_Go/internal/logger"
)

// EventMetricsCollector subscribes to market feed events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to every feed event type
func (e *EventMetricsCollector) Register(bus event.Bus) {
	for _, eventType := range event.AllTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.MarketSnapshotLanded:
		payload, err := event.DecodePayload[event.SnapshotLandedPayloadV1](evt.Payload)
		if err != nil {
			EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
			log.Debug(LogMsgEventPayloadInvalid, "type", evt.Type, "error", err)
			return nil
		}
		SnapshotOutcomes.WithLabelValues(OutcomeLanded).Inc()
		SnapshotQuotes.Set(float64(payload.QuoteCount))
		SnapshotTimestamp.Set(float64(payload.FetchedAt.Unix()))

	case event.MarketFetchFailed:
		SnapshotOutcomes.WithLabelValues(OutcomeFailed).Inc()

	case event.MarketFetchSuperseded:
		SnapshotOutcomes.WithLabelValues(OutcomeSuperseded).Inc()
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
