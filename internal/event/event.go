package event

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/CraftEconomy_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata map[string]interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata,omitempty"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}
	return e.Metadata[key]
}

// Market feed event types
const (
	MarketSnapshotLanded  Type = "market.snapshot.landed"
	MarketFetchFailed     Type = "market.fetch.failed"
	MarketFetchSuperseded Type = "market.fetch.superseded"
)

// AllTypes lists every event type the feed publishes
var AllTypes = []Type{MarketSnapshotLanded, MarketFetchFailed, MarketFetchSuperseded}

// Snapshot origins
const (
	SourceAPI     = "api"
	SourceArchive = "archive"
)

// SnapshotLandedPayloadV1 is published when a snapshot replaces the current one
type SnapshotLandedPayloadV1 struct {
	Ticket     uint64              `json:"ticket"`
	Server     domain.Server       `json:"server"`
	Source     string              `json:"source"`
	FetchedAt  time.Time           `json:"fetched_at"`
	QuoteCount int                 `json:"quote_count"`
	Quotes     []domain.PriceQuote `json:"quotes"`
}

// FetchFailedPayloadV1 is published when the newest fetch failed and the previous snapshot was kept
type FetchFailedPayloadV1 struct {
	Ticket uint64 `json:"ticket"`
	Error  string `json:"error"`
}

// FetchSupersededPayloadV1 is published when a fetch finished after a newer snapshot landed
type FetchSupersededPayloadV1 struct {
	Ticket       uint64 `json:"ticket"`
	LandedTicket uint64 `json:"landed_ticket"`
	Failed       bool   `json:"failed"`
}

// NewSnapshotLandedEvent creates a snapshot landed event
func NewSnapshotLandedEvent(ticket uint64, server domain.Server, source string, fetchedAt time.Time, quotes []domain.PriceQuote) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    MarketSnapshotLanded,
		Payload: SnapshotLandedPayloadV1{
			Ticket:     ticket,
			Server:     server,
			Source:     source,
			FetchedAt:  fetchedAt,
			QuoteCount: len(quotes),
			Quotes:     quotes,
		},
		Metadata: Metadata{MetadataKeySource: source},
	}
}

// NewFetchFailedEvent creates a fetch failed event
func NewFetchFailedEvent(ticket uint64, err error) Event {
	msg := ""
	if err != nil {
		msg = err.Error()
	}
	return Event{
		Version: EventSchemaVersion,
		Type:    MarketFetchFailed,
		Payload: FetchFailedPayloadV1{Ticket: ticket, Error: msg},
	}
}

// NewFetchSupersededEvent creates a fetch superseded event
func NewFetchSupersededEvent(ticket, landed uint64, failed bool) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    MarketFetchSuperseded,
		Payload: FetchSupersededPayloadV1{Ticket: ticket, LandedTicket: landed, Failed: failed},
	}
}

// DecodePayload decodes an event payload into T via type assertion then JSON fallback.
// In-process payloads are already the right struct; dead-lettered ones arrive as maps.
func DecodePayload[T any](input interface{}) (T, error) {
	if v, ok := input.(T); ok {
		return v, nil
	}
	var result T
	data, err := json.Marshal(input)
	if err != nil {
		return result, err
	}
	return result, json.Unmarshal(data, &result)
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish runs every subscriber synchronously and joins their errors
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[event.Type]...)
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}
	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
