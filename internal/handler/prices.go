package handler

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/osse101/CraftEconomy_Go/internal/domain"
	"github.com/osse101/CraftEconomy_Go/internal/market"
	"github.com/osse101/CraftEconomy_Go/internal/pricing"
)

// MarketFeed is the read side of the market feed
type MarketFeed interface {
	CurrentBook() (*pricing.Book, error)
	Status() market.Status
}

// PricesResponse lists one resolution per requested item
type PricesResponse struct {
	Side      string               `json:"side"`
	City      domain.CitySelector  `json:"city"`
	Quality   int                  `json:"quality"`
	Prices    []pricing.Resolution `json:"prices"`
	FetchedAt time.Time            `json:"fetched_at"`
	Stale     bool                 `json:"stale"`
}

// HandleGetPrices resolves buy or sell prices from the current snapshot
// Query: item (repeatable or comma-separated), city (name or auto), side (buy|sell),
// quality (0 = any), mode (instant to price sells against buy orders).
// @Summary Resolve prices
// @Tags market
// @Produce json
// @Param item query string true "Item IDs, repeatable or comma-separated"
// @Param city query string false "City name or auto"
// @Param side query string false "buy or sell"
// @Param quality query int false "Item quality, 0 for any"
// @Param mode query string false "instant to sell into buy orders"
// @Success 200 {object} PricesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /prices [get]
func HandleGetPrices(feed MarketFeed, resolver *pricing.Resolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items := GetQueryList(r, QueryParamItem)
		if len(items) == 0 {
			respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingQueryParam, QueryParamItem))
			return
		}
		if len(items) > MaxPriceItems {
			respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgTooManyItems, MaxPriceItems))
			return
		}

		sel, err := domain.ParseCitySelector(GetOptionalQueryParam(r, QueryParamCity, ""))
		if err != nil {
			respondServiceError(w, r, ErrMsgGetPricesFailed, err)
			return
		}
		side, err := domain.ParseSide(GetOptionalQueryParam(r, QueryParamSide, ""))
		if err != nil {
			respondServiceError(w, r, ErrMsgGetPricesFailed, err)
			return
		}
		quality, ok := parseQuality(r, w, resolver.Config().Quality)
		if !ok {
			return
		}

		res := resolver.WithQuality(quality)
		instant := strings.EqualFold(GetOptionalQueryParam(r, QueryParamMode, ""), SellModeInstant)
		if instant || (!sel.IsAuto() && sel.City == domain.CityBlackMarket) {
			res = res.WithSellMode(pricing.InstantSell)
		}

		book, err := feed.CurrentBook()
		if err != nil {
			respondServiceError(w, r, ErrMsgGetPricesFailed, err)
			return
		}

		prices := make([]pricing.Resolution, len(items))
		for i, id := range items {
			prices[i] = res.Resolve(book, id, sel, side)
		}

		status := feed.Status()
		respondJSON(w, http.StatusOK, PricesResponse{
			Side:      side.String(),
			City:      sel,
			Quality:   quality,
			Prices:    prices,
			FetchedAt: status.FetchedAt,
			Stale:     status.Stale,
		})
	}
}
