package market

import (
	"context"
	"errors"

	"github.com/osse101/CraftEconomy_Go/internal/domain"
	"github.com/osse101/CraftEconomy_Go/internal/event"
	"github.com/osse101/CraftEconomy_Go/internal/logger"
)

// Archive persists landed snapshots.
// LatestSnapshot returns domain.ErrNoSnapshot when nothing is stored for the server.
type Archive interface {
	SaveSnapshot(ctx context.Context, snap domain.MarketSnapshot) error
	LatestSnapshot(ctx context.Context, server domain.Server) (domain.MarketSnapshot, error)
}

// Archiver saves every snapshot fetched from the API
type Archiver struct {
	archive Archive
}

// NewArchiver creates an archiver over the given store
func NewArchiver(archive Archive) *Archiver {
	return &Archiver{archive: archive}
}

// HandleEvent implements event.Handler for MarketSnapshotLanded.
// Snapshots that came from the archive are not written back.
func (a *Archiver) HandleEvent(ctx context.Context, evt event.Event) error {
	if evt.Type != event.MarketSnapshotLanded {
		return nil
	}
	payload, err := event.DecodePayload[event.SnapshotLandedPayloadV1](evt.Payload)
	if err != nil {
		return err
	}
	if payload.Source == event.SourceArchive {
		return nil
	}

	snap := domain.MarketSnapshot{Server: payload.Server, FetchedAt: payload.FetchedAt, Quotes: payload.Quotes}
	if err := a.archive.SaveSnapshot(ctx, snap); err != nil {
		return err
	}
	logger.FromContext(ctx).Debug(LogMsgArchiveSaved, "ticket", payload.Ticket, "quotes", payload.QuoteCount)
	return nil
}

// SeedFeed loads the latest archived snapshot into the feed.
// An empty archive is not an error.
func SeedFeed(ctx context.Context, feed *Feed, archive Archive, server domain.Server) error {
	log := logger.FromContext(ctx)

	snap, err := archive.LatestSnapshot(ctx, server)
	if errors.Is(err, domain.ErrNoSnapshot) {
		log.Info(LogMsgArchiveEmpty, "server", server)
		return nil
	}
	if err != nil {
		return err
	}

	outcome, err := feed.Seed(ctx, snap)
	if err != nil {
		return err
	}
	log.Info(LogMsgArchiveSeeded, "server", server, "quotes", len(snap.Quotes), "fetched_at", snap.FetchedAt, "outcome", outcome)
	return nil
}
