package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/osse101/CraftEconomy_Go/internal/metrics"
)

// AdminMetricsResponse contains JSON-formatted metrics for operators
type AdminMetricsResponse struct {
	HTTP     HTTPMetrics     `json:"http"`
	Events   EventMetrics    `json:"events"`
	Market   MarketMetrics   `json:"market"`
	Business BusinessMetrics `json:"business"`
}

type HTTPMetrics struct {
	RequestsTotalByStatus map[string]float64 `json:"requests_total_by_status"`
	AvgLatencyMs          float64            `json:"avg_latency_ms"`
	P95LatencyMs          float64            `json:"p95_latency_ms"`
	InFlight              float64            `json:"in_flight"`
}

type EventMetrics struct {
	PublishedTotalByType map[string]float64 `json:"published_total_by_type"`
	HandlerErrorsByType  map[string]float64 `json:"handler_errors_by_type"`
}

type MarketMetrics struct {
	RequestsByOutcome map[string]float64 `json:"requests_by_outcome"`
	AvgLatencyMs      float64            `json:"avg_latency_ms"`
	SnapshotOutcomes  map[string]float64 `json:"snapshot_outcomes"`
	SnapshotQuotes    float64            `json:"snapshot_quotes"`
	HistoryCache      map[string]float64 `json:"history_cache"`
}

type BusinessMetrics struct {
	CraftEstimatesByCategory map[string]float64 `json:"craft_estimates_by_category"`
	RoutePlans               float64            `json:"route_plans"`
}

// HandleAdminMetrics returns a JSON summary of the Prometheus metrics
// @Summary Get metrics summary
// @Tags admin
// @Produce json
// @Success 200 {object} AdminMetricsResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/metrics [get]
func HandleAdminMetrics(gatherer prometheus.Gatherer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := gatherMetrics(gatherer)
		if err != nil {
			respondServiceError(w, r, "Gather metrics", err)
			return
		}
		respondJSON(w, http.StatusOK, summary)
	}
}

func gatherMetrics(gatherer prometheus.Gatherer) (*AdminMetricsResponse, error) {
	metricFamilies, err := gatherer.Gather()
	if err != nil {
		return nil, err
	}

	resp := &AdminMetricsResponse{
		HTTP: HTTPMetrics{RequestsTotalByStatus: make(map[string]float64)},
		Events: EventMetrics{
			PublishedTotalByType: make(map[string]float64),
			HandlerErrorsByType:  make(map[string]float64),
		},
		Market: MarketMetrics{
			RequestsByOutcome: make(map[string]float64),
			SnapshotOutcomes:  make(map[string]float64),
			HistoryCache:      make(map[string]float64),
		},
		Business: BusinessMetrics{CraftEstimatesByCategory: make(map[string]float64)},
	}

	for _, mf := range metricFamilies {
		switch mf.GetName() {
		case metrics.MetricNameHTTPRequestsTotal:
			sumCounterBy(mf, metrics.LabelStatus, resp.HTTP.RequestsTotalByStatus)
		case metrics.MetricNameHTTPRequestDuration:
			avg, p95 := histogramSummary(mf)
			resp.HTTP.AvgLatencyMs = avg * 1000
			resp.HTTP.P95LatencyMs = p95 * 1000
		case metrics.MetricNameHTTPRequestsInFlight:
			for _, m := range mf.GetMetric() {
				resp.HTTP.InFlight += m.GetGauge().GetValue()
			}
		case metrics.MetricNameEventsPublished:
			sumCounterBy(mf, metrics.LabelType, resp.Events.PublishedTotalByType)
		case metrics.MetricNameEventHandlerErrors:
			sumCounterBy(mf, metrics.LabelType, resp.Events.HandlerErrorsByType)
		case metrics.MetricNameMarketRequestsTotal:
			sumCounterBy(mf, metrics.LabelOutcome, resp.Market.RequestsByOutcome)
		case metrics.MetricNameMarketRequestDuration:
			avg, _ := histogramSummary(mf)
			resp.Market.AvgLatencyMs = avg * 1000
		case metrics.MetricNameSnapshotOutcomes:
			sumCounterBy(mf, metrics.LabelOutcome, resp.Market.SnapshotOutcomes)
		case metrics.MetricNameSnapshotQuotes:
			for _, m := range mf.GetMetric() {
				resp.Market.SnapshotQuotes = m.GetGauge().GetValue()
			}
		case metrics.MetricNameHistoryCacheLookups:
			sumCounterBy(mf, metrics.LabelResult, resp.Market.HistoryCache)
		case metrics.MetricNameCraftEstimates:
			sumCounterBy(mf, metrics.LabelCategory, resp.Business.CraftEstimatesByCategory)
		case metrics.MetricNameRoutePlans:
			for _, m := range mf.GetMetric() {
				resp.Business.RoutePlans += m.GetCounter().GetValue()
			}
		}
	}

	return resp, nil
}

func sumCounterBy(mf *dto.MetricFamily, label string, into map[string]float64) {
	for _, m := range mf.GetMetric() {
		if v := getLabelValue(m, label); v != "" {
			into[v] += m.GetCounter().GetValue()
		}
	}
}

// histogramSummary merges every series of a histogram family into an average and a p95 estimate
func histogramSummary(mf *dto.MetricFamily) (avg, p95 float64) {
	var sum float64
	var count uint64
	for _, m := range mf.GetMetric() {
		hist := m.GetHistogram()
		if hist == nil {
			continue
		}
		sum += hist.GetSampleSum()
		count += hist.GetSampleCount()
		if q := estimateQuantile(hist, 0.95); q > p95 {
			p95 = q
		}
	}
	if count > 0 {
		avg = sum / float64(count)
	}
	return avg, p95
}

func getLabelValue(m *dto.Metric, labelName string) string {
	for _, label := range m.GetLabel() {
		if label.GetName() == labelName {
			return label.GetValue()
		}
	}
	return ""
}

// estimateQuantile approximates the given quantile from a histogram's bucket upper bounds
func estimateQuantile(hist *dto.Histogram, quantile float64) float64 {
	totalCount := hist.GetSampleCount()
	if totalCount == 0 {
		return 0
	}

	targetCount := float64(totalCount) * quantile
	buckets := hist.GetBucket()
	for _, bucket := range buckets {
		if float64(bucket.GetCumulativeCount()) >= targetCount {
			return bucket.GetUpperBound()
		}
	}

	if len(buckets) > 0 {
		return buckets[len(buckets)-1].GetUpperBound()
	}
	return 0
}
