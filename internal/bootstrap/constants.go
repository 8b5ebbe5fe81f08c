package bootstrap

import "time"

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files (read/write for owner, read for group/others)
	LogFilePermission = 0666
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of older log files kept when a new session starts
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingService     = "Starting crafting economy service"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedCreateLogsDir = "failed to create logs directory"
	LogMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
)

// =============================================================================
// Event System Configuration
// =============================================================================

const (
	// EventDefaultMaxRetries is the default number of retry attempts for failed event handlers
	EventDefaultMaxRetries = 5

	// EventDefaultRetryDelay is the default base delay between retry attempts (exponential backoff)
	EventDefaultRetryDelay = 2 * time.Second

	// EventDefaultDeadLetterPath is the default file path for dead-letter event logging
	EventDefaultDeadLetterPath = "logs/event_deadletter.jsonl"
)

// Log messages for event system initialization
const (
	LogMsgEventSystemInitialized    = "Event system initialized"
	LogMsgFailedCreateDeadLetterDir = "failed to create dead-letter directory"
	LogMsgFailedOpenDeadLetter      = "failed to open dead-letter file"
)

// =============================================================================
// Static Data
// =============================================================================

const (
	LogMsgRecipesLoaded       = "Recipes loaded"
	LogMsgCharactersLoaded    = "Character registry loaded"
	LogMsgCharactersMissing   = "Character registry file not found, starting with no characters"
	ErrMsgFailedLoadRecipes   = "failed to load recipe config"
	ErrMsgInvalidRecipes      = "invalid recipe configuration"
	ErrMsgFailedLoadRegistry  = "failed to load character registry"
	ErrMsgInvalidMarketConfig = "invalid market configuration"
)

// =============================================================================
// Market Feed
// =============================================================================

const (
	LogMsgMarketConfigured = "Market feed configured"
	LogMsgRefreshScheduled = "Market refresh scheduled"

	// WorkerQueueSize bounds pending background jobs; refresh ticks beyond it are dropped
	WorkerQueueSize = 4
)

// =============================================================================
// Snapshot Archive
// =============================================================================

const (
	LogMsgArchiveDisabled      = "Snapshot archive disabled"
	LogMsgArchiveReady         = "Snapshot archive ready"
	LogMsgArchiveSeedFailed    = "Failed to seed market feed from archive"
	ErrMsgFailedMigrate        = "failed to run database migrations"
	ErrMsgFailedConnectArchive = "failed to connect to archive database"
)

// =============================================================================
// Event Handler Configuration
// =============================================================================

// Log messages for event handler registration
const (
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgArchiverRegistered         = "Snapshot archiver registered"

	// HandlerNameArchiver labels the archiver in retry logs and dead letters
	HandlerNameArchiver = "snapshot_archiver"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer        = "Shutting down server..."
	LogMsgShuttingDownScheduler     = "Stopping market refresh scheduler..."
	LogMsgShuttingDownWorkers       = "Stopping worker pool..."
	LogMsgShuttingDownEventHandlers = "Shutting down event handlers..."
	LogMsgServerStopped             = "Server stopped"
	LogMsgServerForcedShutdown      = "Server forced to shutdown"
	LogMsgHandlerShutdownFailed     = "Event handler shutdown failed"
	LogMsgDeadLetterCloseFailed     = "Failed to close dead-letter file"
	LogMsgClosingDatabase           = "Closing archive database pool"

	// ShutdownTimeout bounds the whole graceful shutdown sequence
	ShutdownTimeout = 30 * time.Second
)
