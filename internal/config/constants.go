package config

import "time"

const (
	// Configuration file paths
	ConfigPathRecipes    = "configs/recipes.json"
	ConfigPathCharacters = "configs/characters.json"
)

// Defaults
const (
	DefaultLogLevel       = "info"
	DefaultLogFormat      = "text"
	DefaultLogDir         = "logs"
	DefaultServiceName    = "crafteconomy"
	DefaultVersion        = "dev"
	DefaultEnvironment    = "dev"
	DefaultDBName         = "crafteconomy"
	DefaultDeadLetterPath = "logs/event_deadletter.jsonl"

	DefaultDBMaxConns        = 20
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute
	DefaultSnapshotRetention = 48

	DefaultMarketServer      = "west"
	DefaultMarketQuality     = 1
	DefaultPollInterval      = 30 * time.Second
	DefaultFetchTimeout      = 60 * time.Second
	DefaultStaleAfter        = 5 * time.Minute
	DefaultChunkSize         = 100
	DefaultConcurrency       = 4
	DefaultRequestsPerMinute = 180
	DefaultMaxRetries        = 3
	DefaultHistoryCacheSize  = 256
	DefaultHistoryCacheTTL   = 10 * time.Minute

	DefaultClientRateLimit = 200
	DefaultClientBurst     = 50

	DefaultTaxRate     = 0.04
	DefaultWorkerCount = 2
)
