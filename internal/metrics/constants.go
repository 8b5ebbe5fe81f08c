package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Market metric names
const (
	MetricNameMarketRequestsTotal   = "market_api_requests_total"
	MetricNameMarketRequestDuration = "market_api_request_duration_seconds"
	MetricNameSnapshotQuotes        = "market_snapshot_quotes"
	MetricNameSnapshotTimestamp     = "market_snapshot_timestamp_seconds"
	MetricNameSnapshotOutcomes      = "market_snapshot_outcomes_total"
	MetricNameHistoryCacheLookups   = "market_history_cache_lookups_total"
)

// Business metric names
const (
	MetricNameCraftEstimates = "craft_estimates_total"
	MetricNameRoutePlans     = "route_plans_total"
	MetricNameWorkerJobs     = "worker_jobs_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Market metric help text
const (
	HelpTextMarketRequestsTotal   = "Total number of requests sent to the market data API"
	HelpTextMarketRequestDuration = "Market data API request latency in seconds"
	HelpTextSnapshotQuotes        = "Number of quotes in the current market snapshot"
	HelpTextSnapshotTimestamp     = "Unix time at which the current market snapshot was fetched"
	HelpTextSnapshotOutcomes      = "Market fetch outcomes by kind (landed, superseded, failed)"
	HelpTextHistoryCacheLookups   = "Price history cache lookups by result"
)

// Business metric help text
const (
	HelpTextCraftEstimates = "Total number of craft estimates computed"
	HelpTextRoutePlans     = "Total number of route plans computed"
	HelpTextWorkerJobs     = "Total number of background jobs processed"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelType      = "type"
	LabelEndpoint  = "endpoint"
	LabelOutcome   = "outcome"
	LabelResult    = "result"
	LabelCategory  = "category"
	LabelHasPrices = "has_prices"
	LabelJob       = "job"
)

// Outcome label values
const (
	OutcomeLanded     = "landed"
	OutcomeSuperseded = "superseded"
	OutcomeFailed     = "failed"
	OutcomeSuccess    = "success"
	OutcomeError      = "error"
	ResultHit         = "hit"
	ResultMiss        = "miss"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// MarketLatencyBuckets covers upstream API calls from 50ms to 30s
var MarketLatencyBuckets = []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgEventPayloadInvalid = "Event payload could not be decoded"
	LogMsgMetricsRecorded     = "Metrics recorded for event"
)
