package postgres

// DefaultSnapshotRetention is how many snapshots per server are kept after each save
const DefaultSnapshotRetention = 48

// Error Messages - Snapshot Archive
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToInsertSnapshot    = "failed to insert snapshot"
	ErrMsgFailedToCopyQuotes        = "failed to copy quotes"
	ErrMsgFailedToPruneSnapshots    = "failed to prune snapshots"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
	ErrMsgFailedToQuerySnapshot     = "failed to query latest snapshot"
	ErrMsgFailedToQueryQuotes       = "failed to query snapshot quotes"
)

// Log Messages
const (
	LogMsgRollbackFailed = "Failed to rollback transaction"
	LogMsgUnknownCity    = "Archived quote has unknown city, skipping"
)

const (
	tableMarketQuotes = "market_quotes"
)

var quoteColumns = []string{
	"snapshot_id", "item_id", "city", "quality",
	"sell_price_min", "sell_price_max", "buy_price_min", "buy_price_max",
}
