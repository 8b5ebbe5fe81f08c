package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Market Metrics
var (
	MarketRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameMarketRequestsTotal,
			Help: HelpTextMarketRequestsTotal,
		},
		[]string{LabelEndpoint, LabelOutcome},
	)

	MarketRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameMarketRequestDuration,
			Help:    HelpTextMarketRequestDuration,
			Buckets: MarketLatencyBuckets,
		},
		[]string{LabelEndpoint},
	)

	SnapshotQuotes = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameSnapshotQuotes,
			Help: HelpTextSnapshotQuotes,
		},
	)

	SnapshotTimestamp = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameSnapshotTimestamp,
			Help: HelpTextSnapshotTimestamp,
		},
	)

	SnapshotOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSnapshotOutcomes,
			Help: HelpTextSnapshotOutcomes,
		},
		[]string{LabelOutcome},
	)

	HistoryCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHistoryCacheLookups,
			Help: HelpTextHistoryCacheLookups,
		},
		[]string{LabelResult},
	)
)

// Business Metrics
var (
	CraftEstimatesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCraftEstimates,
			Help: HelpTextCraftEstimates,
		},
		[]string{LabelCategory, LabelHasPrices},
	)

	RoutePlansTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRoutePlans,
			Help: HelpTextRoutePlans,
		},
	)

	WorkerJobsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameWorkerJobs,
			Help: HelpTextWorkerJobs,
		},
		[]string{LabelJob, LabelOutcome},
	)
)
