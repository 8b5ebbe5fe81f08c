package market

import (
	"time"

	"github.com/osse101/CraftEconomy_Go/internal/domain"
	"github.com/osse101/CraftEconomy_Go/internal/pricing"
)

// Snapshot is an immutable set of quotes published by the feed.
// Readers share it without copying; nothing mutates it after it lands.
type Snapshot struct {
	Ticket    uint64
	Server    domain.Server
	Source    string
	FetchedAt time.Time
	Quotes    []domain.PriceQuote
	Book      *pricing.Book
}

func newSnapshot(ticket uint64, server domain.Server, source string, fetchedAt time.Time, quotes []domain.PriceQuote) *Snapshot {
	return &Snapshot{
		Ticket:    ticket,
		Server:    server,
		Source:    source,
		FetchedAt: fetchedAt,
		Quotes:    quotes,
		Book:      pricing.NewBook(quotes),
	}
}

// Age is the time since the snapshot's data was fetched
func (s *Snapshot) Age(now time.Time) time.Duration {
	return now.Sub(s.FetchedAt)
}

// ToDomain converts the snapshot into its archival form
func (s *Snapshot) ToDomain() domain.MarketSnapshot {
	return domain.MarketSnapshot{Server: s.Server, FetchedAt: s.FetchedAt, Quotes: s.Quotes}
}

// Status reports feed health
type Status struct {
	HasSnapshot   bool      `json:"has_snapshot"`
	Ticket        uint64    `json:"ticket"`
	Source        string    `json:"source,omitempty"`
	FetchedAt     time.Time `json:"fetched_at,omitempty"`
	QuoteCount    int       `json:"quote_count"`
	Stale         bool      `json:"stale"`
	LastError     string    `json:"last_error,omitempty"`
	LastErrorAt   time.Time `json:"last_error_at,omitempty"`
	PendingTicket uint64    `json:"pending_ticket"`
}
