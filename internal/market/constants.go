package market

import "time"

// Market data API paths
const (
	PricesPath  = "/api/v2/stats/prices/"
	HistoryPath = "/api/v2/stats/history/"

	QueryLocations = "locations"
	QueryQualities = "qualities"
	QueryTimeScale = "time-scale"

	// HistoryTimeScaleDaily requests one history bucket per day
	HistoryTimeScaleDaily = 24
)

// Metric endpoint labels
const (
	EndpointPrices  = "prices"
	EndpointHistory = "history"
)

// Client defaults
const (
	DefaultChunkSize         = 100
	DefaultConcurrency       = 4
	DefaultRequestTimeout    = 15 * time.Second
	DefaultRequestsPerMinute = 180
	DefaultMaxRetries        = 3
	DefaultRetryDelay        = 500 * time.Millisecond
	DefaultHistoryCacheSize  = 256
	DefaultHistoryCacheTTL   = 10 * time.Minute
	DefaultFetchTimeout      = 60 * time.Second
	DefaultStaleAfter        = 5 * time.Minute

	// feedQueueSize bounds pending submissions to the feed actor
	feedQueueSize = 16
)

// Log messages
const (
	LogMsgRetryingRequest = "Retrying market API request"
	LogMsgRequestFailed   = "Market API request failed"
	LogMsgUnknownCity     = "Skipping quote for unknown market location"
	LogMsgSnapshotLanded  = "Market snapshot landed"
	LogMsgSnapshotDiscard = "Discarding superseded market fetch"
	LogMsgFetchFailed     = "Market fetch failed, keeping previous snapshot"
	LogMsgFeedStopped     = "Market feed stopped"
	LogMsgRefreshStarting = "Market refresh starting"
	LogMsgNothingToFetch  = "Market refresh has no items to fetch"
	LogMsgArchiveSeeded   = "Market feed seeded from archive"
	LogMsgArchiveEmpty    = "Market archive has no snapshot to seed from"
	LogMsgArchiveSaved    = "Market snapshot archived"
	LogMsgPublishFailed   = "Failed to publish market event"
)
