package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/CraftEconomy_Go/internal/domain"
	"github.com/osse101/CraftEconomy_Go/internal/logger"
)

// SnapshotRepository archives market snapshots in postgres.
// It implements market.Archive.
type SnapshotRepository struct {
	db        *pgxpool.Pool
	retention int
}

// NewSnapshotRepository creates a repository keeping the newest retention snapshots per server
func NewSnapshotRepository(db *pgxpool.Pool, retention int) *SnapshotRepository {
	if retention <= 0 {
		retention = DefaultSnapshotRetention
	}
	return &SnapshotRepository{db: db, retention: retention}
}

// SaveSnapshot stores the snapshot and its quotes in one transaction, then prunes old snapshots
func (r *SnapshotRepository) SaveSnapshot(ctx context.Context, snap domain.MarketSnapshot) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	var snapshotID int64
	err = tx.QueryRow(ctx, `
		INSERT INTO market_snapshots (server, fetched_at, quote_count)
		VALUES ($1, $2, $3)
		RETURNING snapshot_id`,
		string(snap.Server), snap.FetchedAt, len(snap.Quotes),
	).Scan(&snapshotID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertSnapshot, err)
	}

	rows := make([][]interface{}, 0, len(snap.Quotes))
	seen := make(map[quoteKey]bool, len(snap.Quotes))
	for _, q := range snap.Quotes {
		key := quoteKey{q.ItemID, q.City, q.Quality}
		if seen[key] {
			continue
		}
		seen[key] = true
		rows = append(rows, []interface{}{
			snapshotID, q.ItemID, string(q.City), int16(q.Quality),
			q.SellPriceMin, q.SellPriceMax, q.BuyPriceMin, q.BuyPriceMax,
		})
	}
	if len(rows) > 0 {
		if _, err := tx.CopyFrom(ctx, pgx.Identifier{tableMarketQuotes}, quoteColumns, pgx.CopyFromRows(rows)); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToCopyQuotes, err)
		}
	}

	_, err = tx.Exec(ctx, `
		DELETE FROM market_snapshots
		WHERE server = $1 AND snapshot_id NOT IN (
			SELECT snapshot_id FROM market_snapshots
			WHERE server = $1
			ORDER BY fetched_at DESC, snapshot_id DESC
			LIMIT $2
		)`,
		string(snap.Server), r.retention,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToPruneSnapshots, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}

type quoteKey struct {
	itemID  string
	city    domain.City
	quality int
}

// LatestSnapshot returns the most recently fetched snapshot for the server
func (r *SnapshotRepository) LatestSnapshot(ctx context.Context, server domain.Server) (domain.MarketSnapshot, error) {
	snap := domain.MarketSnapshot{Server: server}

	var snapshotID int64
	err := r.db.QueryRow(ctx, `
		SELECT snapshot_id, fetched_at
		FROM market_snapshots
		WHERE server = $1
		ORDER BY fetched_at DESC, snapshot_id DESC
		LIMIT 1`,
		string(server),
	).Scan(&snapshotID, &snap.FetchedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.MarketSnapshot{}, fmt.Errorf("%w: server %s", domain.ErrNoSnapshot, server)
	}
	if err != nil {
		return domain.MarketSnapshot{}, fmt.Errorf("%s: %w", ErrMsgFailedToQuerySnapshot, err)
	}

	rows, err := r.db.Query(ctx, `
		SELECT item_id, city, quality, sell_price_min, sell_price_max, buy_price_min, buy_price_max
		FROM market_quotes
		WHERE snapshot_id = $1
		ORDER BY item_id, city, quality`,
		snapshotID,
	)
	if err != nil {
		return domain.MarketSnapshot{}, fmt.Errorf("%s: %w", ErrMsgFailedToQueryQuotes, err)
	}
	defer rows.Close()

	log := logger.FromContext(ctx)
	for rows.Next() {
		var (
			q       domain.PriceQuote
			city    string
			quality int16
		)
		if err := rows.Scan(&q.ItemID, &city, &quality, &q.SellPriceMin, &q.SellPriceMax, &q.BuyPriceMin, &q.BuyPriceMax); err != nil {
			return domain.MarketSnapshot{}, fmt.Errorf("%s: %w", ErrMsgFailedToQueryQuotes, err)
		}
		parsed, err := domain.ParseCity(city)
		if err != nil {
			log.Warn(LogMsgUnknownCity, "city", city, "item", q.ItemID)
			continue
		}
		q.City = parsed
		q.Quality = int(quality)
		snap.Quotes = append(snap.Quotes, q)
	}
	if err := rows.Err(); err != nil {
		return domain.MarketSnapshot{}, fmt.Errorf("%s: %w", ErrMsgFailedToQueryQuotes, err)
	}

	return snap, nil
}
