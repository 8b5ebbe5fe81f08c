package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/CraftEconomy_Go/internal/domain"
	"github.com/osse101/CraftEconomy_Go/internal/market"
)

// Refresher triggers an immediate market fetch
type Refresher interface {
	Refresh(ctx context.Context) (market.Outcome, error)
}

// HistorySource fetches daily price history
type HistorySource interface {
	FetchHistory(ctx context.Context, itemID string, cities []domain.City, quality int) ([]domain.PriceHistory, error)
}

// RefreshResponse reports what the feed did with an on-demand fetch
type RefreshResponse struct {
	Outcome market.Outcome `json:"outcome,omitempty"`
	Message string         `json:"message"`
	Status  market.Status  `json:"status"`
}

// HistoryResponse wraps history series for one item
type HistoryResponse struct {
	ItemID  string                `json:"item_id"`
	Quality int                   `json:"quality"`
	Series  []domain.PriceHistory `json:"series"`
}

// HandleMarketStatus reports feed freshness and the last fetch error
// @Summary Get market feed status
// @Tags market
// @Produce json
// @Success 200 {object} market.Status
// @Router /market/status [get]
func HandleMarketStatus(feed MarketFeed) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, feed.Status())
	}
}

// HandleMarketRefresh fetches now instead of waiting for the next poll.
// A failed fetch still answers 200: the feed keeps its snapshot and reports the error in status.
// @Summary Refresh market prices
// @Tags market
// @Produce json
// @Success 200 {object} RefreshResponse
// @Failure 503 {object} ErrorResponse
// @Router /market/refresh [post]
func HandleMarketRefresh(refresher Refresher, feed MarketFeed) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if refresher == nil {
			respondError(w, http.StatusServiceUnavailable, ErrMsgRefreshNotEnabled)
			return
		}

		outcome, err := refresher.Refresh(r.Context())
		if err != nil {
			respondServiceError(w, r, ErrMsgRefreshFailed, err)
			return
		}

		msg := MsgNothingToRefresh
		switch outcome {
		case market.OutcomeLanded:
			msg = MsgRefreshLanded
		case market.OutcomeSuperseded:
			msg = MsgRefreshSuperseded
		case market.OutcomeFailed:
			msg = MsgRefreshFailed
		}

		respondJSON(w, http.StatusOK, RefreshResponse{Outcome: outcome, Message: msg, Status: feed.Status()})
	}
}

// HandleMarketHistory returns daily history for one item.
// Query: cities (optional list), quality (default normal).
// @Summary Get price history
// @Tags market
// @Produce json
// @Param item path string true "Item ID"
// @Param cities query string false "Comma-separated cities"
// @Param quality query int false "Item quality"
// @Success 200 {object} HistoryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /market/history/{item} [get]
func HandleMarketHistory(history HistorySource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		itemID := chi.URLParam(r, "item")
		if itemID == "" {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestSummary)
			return
		}
		cities, ok := parseCities(r, w)
		if !ok {
			return
		}
		quality, ok := parseQuality(r, w, domain.QualityNormal)
		if !ok {
			return
		}

		series, err := history.FetchHistory(r.Context(), itemID, cities, quality)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetHistoryFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, HistoryResponse{ItemID: itemID, Quality: quality, Series: series})
	}
}
