package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CraftEconomy_Go/internal/domain"
	"github.com/osse101/CraftEconomy_Go/internal/market"
)

func TestHandleMarketStatus(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/v1/market/status", nil)
	w := httptest.NewRecorder()

	HandleMarketStatus(testFeed()).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var status market.Status
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	assert.True(t, status.HasSnapshot)
	assert.Equal(t, uint64(3), status.Ticket)
	assert.Equal(t, 4, status.QuoteCount)
}

func TestHandleMarketRefresh(t *testing.T) {
	tests := []struct {
		name        string
		outcome     market.Outcome
		err         error
		wantStatus  int
		wantMessage string
	}{
		{"landed", market.OutcomeLanded, nil, http.StatusOK, MsgRefreshLanded},
		{"superseded", market.OutcomeSuperseded, nil, http.StatusOK, MsgRefreshSuperseded},
		{"fetch failed keeps snapshot", market.OutcomeFailed, nil, http.StatusOK, MsgRefreshFailed},
		{"no outcome", "", nil, http.StatusOK, MsgNothingToRefresh},
		{"feed stopped", "", market.ErrFeedStopped, http.StatusServiceUnavailable, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			refresher := new(MockRefresher)
			refresher.On("Refresh", mock.Anything).Return(tt.outcome, tt.err)

			req := httptest.NewRequest("POST", "/api/v1/market/refresh", nil)
			w := httptest.NewRecorder()

			HandleMarketRefresh(refresher, testFeed()).ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.err != nil {
				assert.Contains(t, w.Body.String(), ErrMsgFeedStoppedError)
				return
			}
			var resp RefreshResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.outcome, resp.Outcome)
			assert.Equal(t, tt.wantMessage, resp.Message)
			assert.Equal(t, uint64(3), resp.Status.Ticket)
			refresher.AssertExpectations(t)
		})
	}

	t.Run("refresh disabled", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/market/refresh", nil)
		w := httptest.NewRecorder()

		HandleMarketRefresh(nil, testFeed()).ServeHTTP(w, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgRefreshNotEnabled)
	})
}

func TestHandleMarketHistory(t *testing.T) {
	series := []domain.PriceHistory{{
		ItemID:  "T4_PLANKS",
		City:    domain.CityMartlock,
		Quality: 1,
		Points:  []domain.PricePoint{{Timestamp: time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC), AvgPrice: 95, ItemCount: 1200}},
	}}

	t.Run("Success", func(t *testing.T) {
		history := new(MockHistorySource)
		history.On("FetchHistory", mock.Anything, "T4_PLANKS", []domain.City{domain.CityMartlock, domain.CityLymhurst}, 1).
			Return(series, nil)

		req := httptest.NewRequest("GET", "/api/v1/market/history/T4_PLANKS?cities=martlock,lymhurst", nil)
		req = withURLParam(req, "item", "T4_PLANKS")
		w := httptest.NewRecorder()

		HandleMarketHistory(history).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp HistoryResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "T4_PLANKS", resp.ItemID)
		assert.Equal(t, 1, resp.Quality)
		require.Len(t, resp.Series, 1)
		assert.Equal(t, 95.0, resp.Series[0].Points[0].AvgPrice)
		history.AssertExpectations(t)
	})

	t.Run("Unknown city", func(t *testing.T) {
		history := new(MockHistorySource)
		req := httptest.NewRequest("GET", "/api/v1/market/history/T4_PLANKS?cities=atlantis", nil)
		req = withURLParam(req, "item", "T4_PLANKS")
		w := httptest.NewRecorder()

		HandleMarketHistory(history).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		history.AssertNotCalled(t, "FetchHistory")
	})

	t.Run("Upstream unavailable", func(t *testing.T) {
		history := new(MockHistorySource)
		history.On("FetchHistory", mock.Anything, "T4_PLANKS", []domain.City{}, 1).
			Return(nil, errors.Join(domain.ErrMarketUnavailable, errors.New("status 500")))

		req := httptest.NewRequest("GET", "/api/v1/market/history/T4_PLANKS", nil)
		req = withURLParam(req, "item", "T4_PLANKS")
		w := httptest.NewRecorder()

		HandleMarketHistory(history).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgMarketUnavailableError)
	})
}
