package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/CraftEconomy_Go/internal/config"
	"github.com/osse101/CraftEconomy_Go/internal/database"
	"github.com/osse101/CraftEconomy_Go/internal/database/postgres"
	"github.com/osse101/CraftEconomy_Go/internal/market"
)

// SetupArchive migrates the archive database and opens its pool.
// Both returns are nil when the archive is disabled; the caller must close a non-nil pool.
func SetupArchive(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, market.Archive, error) {
	if !cfg.ArchiveEnabled {
		slog.Info(LogMsgArchiveDisabled)
		return nil, nil, nil
	}

	connString := cfg.GetDBConnString()
	if err := database.RunMigrations(ctx, connString); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
	}

	pool, err := database.NewPool(ctx, connString, cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectArchive, err)
	}

	slog.Info(LogMsgArchiveReady, "host", cfg.DBHost, "db", cfg.DBName, "retention", cfg.SnapshotRetention)
	return pool, postgres.NewSnapshotRepository(pool, cfg.SnapshotRetention), nil
}

// SeedFromArchive warms the feed with the last archived snapshot.
// Failures are logged; a cold feed still serves once the first fetch lands.
func SeedFromArchive(ctx context.Context, feed *market.Feed, archive market.Archive, cfg *config.Config) {
	if archive == nil {
		return
	}
	server, err := cfg.Server()
	if err != nil {
		slog.Warn(LogMsgArchiveSeedFailed, "error", err)
		return
	}
	if err := market.SeedFeed(ctx, feed, archive, server); err != nil {
		slog.Warn(LogMsgArchiveSeedFailed, "error", err)
	}
}
