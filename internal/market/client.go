package market

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/osse101/CraftEconomy_Go/internal/domain"
	"github.com/osse101/CraftEconomy_Go/internal/logger"
	"github.com/osse101/CraftEconomy_Go/internal/metrics"
)

// ClientConfig configures the market data API client
type ClientConfig struct {
	// BaseURL overrides the server's default host when set
	BaseURL   string
	Server    domain.Server
	Cities    []domain.City
	Qualities []int

	ChunkSize         int
	Concurrency       int
	RequestTimeout    time.Duration
	RequestsPerMinute int
	MaxRetries        int
	RetryDelay        time.Duration

	HistoryCacheSize int
	HistoryCacheTTL  time.Duration
}

// DefaultClientConfig queries every city at normal quality on the given server
func DefaultClientConfig(server domain.Server) ClientConfig {
	return ClientConfig{
		Server:            server,
		Cities:            append([]domain.City{}, domain.AllCities...),
		Qualities:         []int{domain.QualityNormal},
		ChunkSize:         DefaultChunkSize,
		Concurrency:       DefaultConcurrency,
		RequestTimeout:    DefaultRequestTimeout,
		RequestsPerMinute: DefaultRequestsPerMinute,
		MaxRetries:        DefaultMaxRetries,
		RetryDelay:        DefaultRetryDelay,
		HistoryCacheSize:  DefaultHistoryCacheSize,
		HistoryCacheTTL:   DefaultHistoryCacheTTL,
	}
}

// Client fetches quotes and history from the market data API
type Client struct {
	baseURL string
	cfg     ClientConfig
	http    *http.Client
	limiter *rate.Limiter
	history *historyCache
}

// NewClient creates a client. Zero config fields fall back to defaults.
func NewClient(cfg ClientConfig) *Client {
	def := DefaultClientConfig(cfg.Server)
	if len(cfg.Cities) == 0 {
		cfg.Cities = def.Cities
	}
	if len(cfg.Qualities) == 0 {
		cfg.Qualities = def.Qualities
	}
	if cfg.ChunkSize <= 0 {
		cfg.ChunkSize = def.ChunkSize
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = def.Concurrency
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = def.RequestTimeout
	}
	if cfg.RequestsPerMinute <= 0 {
		cfg.RequestsPerMinute = def.RequestsPerMinute
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = def.RetryDelay
	}
	if cfg.HistoryCacheSize <= 0 {
		cfg.HistoryCacheSize = def.HistoryCacheSize
	}
	if cfg.HistoryCacheTTL <= 0 {
		cfg.HistoryCacheTTL = def.HistoryCacheTTL
	}

	base := cfg.BaseURL
	if base == "" {
		base = cfg.Server.BaseURL()
	}

	return &Client{
		baseURL: strings.TrimRight(base, "/"),
		cfg:     cfg,
		http:    &http.Client{Timeout: cfg.RequestTimeout},
		// Burst equals the per-minute budget so a cold start can fetch every chunk at once
		limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(cfg.RequestsPerMinute)), cfg.RequestsPerMinute),
		history: newHistoryCache(cfg.HistoryCacheSize, cfg.HistoryCacheTTL),
	}
}

// Server returns the server the client reads from
func (c *Client) Server() domain.Server {
	return c.cfg.Server
}

// apiPrice is one row of the prices endpoint
type apiPrice struct {
	ItemID       string  `json:"item_id"`
	City         string  `json:"city"`
	Quality      int     `json:"quality"`
	SellPriceMin float64 `json:"sell_price_min"`
	SellPriceMax float64 `json:"sell_price_max"`
	BuyPriceMin  float64 `json:"buy_price_min"`
	BuyPriceMax  float64 `json:"buy_price_max"`
}

// apiHistory is one series of the history endpoint
type apiHistory struct {
	Location string `json:"location"`
	ItemID   string `json:"item_id"`
	Quality  int    `json:"quality"`
	Data     []struct {
		Timestamp apiTime `json:"timestamp"`
		AvgPrice  float64 `json:"avg_price"`
		ItemCount int64   `json:"item_count"`
	} `json:"data"`
}

// apiTime parses the API's zone-less timestamps as UTC
type apiTime struct {
	time.Time
}

func (t *apiTime) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05"} {
		if parsed, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("invalid timestamp %q", s)
}

// FetchPrices fetches quotes for every item id in every configured city.
// Ids are requested in chunks concurrently; any failed chunk fails the whole fetch so a
// partial snapshot never replaces a complete one.
func (c *Client) FetchPrices(ctx context.Context, itemIDs []string) ([]domain.PriceQuote, error) {
	ids := dedupe(itemIDs)
	if len(ids) == 0 {
		return nil, nil
	}
	chunks := chunk(ids, c.cfg.ChunkSize)
	results := make([][]domain.PriceQuote, len(chunks))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.cfg.Concurrency)
	for i, ids := range chunks {
		g.Go(func() error {
			quotes, err := c.fetchPriceChunk(gctx, ids)
			if err != nil {
				return err
			}
			results[i] = quotes
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var quotes []domain.PriceQuote
	for _, r := range results {
		quotes = append(quotes, r...)
	}
	return quotes, nil
}

func (c *Client) fetchPriceChunk(ctx context.Context, ids []string) ([]domain.PriceQuote, error) {
	q := url.Values{}
	q.Set(QueryLocations, joinCities(c.cfg.Cities))
	q.Set(QueryQualities, joinInts(c.cfg.Qualities))
	endpoint := c.baseURL + PricesPath + pathEscapeAll(ids) + "?" + q.Encode()

	var rows []apiPrice
	if err := c.getJSON(ctx, EndpointPrices, endpoint, &rows); err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx)
	quotes := make([]domain.PriceQuote, 0, len(rows))
	for _, row := range rows {
		city, err := domain.ParseCity(row.City)
		if err != nil {
			log.Debug(LogMsgUnknownCity, "city", row.City, "item", row.ItemID)
			continue
		}
		quotes = append(quotes, domain.PriceQuote{
			ItemID:       row.ItemID,
			City:         city,
			Quality:      row.Quality,
			SellPriceMin: row.SellPriceMin,
			SellPriceMax: row.SellPriceMax,
			BuyPriceMin:  row.BuyPriceMin,
			BuyPriceMax:  row.BuyPriceMax,
		})
	}
	return quotes, nil
}

// FetchHistory returns daily average prices for an item, served from cache when fresh
func (c *Client) FetchHistory(ctx context.Context, itemID string, cities []domain.City, quality int) ([]domain.PriceHistory, error) {
	if len(cities) == 0 {
		cities = c.cfg.Cities
	}
	if quality <= 0 {
		quality = domain.QualityNormal
	}

	key := historyKey(itemID, cities, quality)
	if cached, ok := c.history.Get(key); ok {
		metrics.HistoryCacheLookups.WithLabelValues(metrics.ResultHit).Inc()
		return cached, nil
	}
	metrics.HistoryCacheLookups.WithLabelValues(metrics.ResultMiss).Inc()

	q := url.Values{}
	q.Set(QueryTimeScale, strconv.Itoa(HistoryTimeScaleDaily))
	q.Set(QueryLocations, joinCities(cities))
	q.Set(QueryQualities, strconv.Itoa(quality))
	endpoint := c.baseURL + HistoryPath + url.PathEscape(itemID) + "?" + q.Encode()

	var rows []apiHistory
	if err := c.getJSON(ctx, EndpointHistory, endpoint, &rows); err != nil {
		return nil, err
	}

	out := make([]domain.PriceHistory, 0, len(rows))
	for _, row := range rows {
		city, err := domain.ParseCity(row.Location)
		if err != nil {
			continue
		}
		h := domain.PriceHistory{ItemID: itemID, City: city, Quality: row.Quality, Points: make([]domain.PricePoint, 0, len(row.Data))}
		if row.ItemID != "" {
			h.ItemID = row.ItemID
		}
		for _, d := range row.Data {
			h.Points = append(h.Points, domain.PricePoint{Timestamp: d.Timestamp.Time, AvgPrice: d.AvgPrice, ItemCount: d.ItemCount})
		}
		out = append(out, h)
	}

	c.history.Set(key, out)
	return out, nil
}

// getJSON performs a rate limited GET with retry on transport errors, 429 and 5xx responses
func (c *Client) getJSON(ctx context.Context, endpoint, rawURL string, dst interface{}) error {
	log := logger.FromContext(ctx)

	var lastErr error
	for attempt := 0; attempt <= c.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			delay := c.cfg.RetryDelay * time.Duration(1<<uint(attempt-1))
			log.Info(LogMsgRetryingRequest, "endpoint", endpoint, "attempt", attempt, "delay", delay)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}

		start := time.Now()
		retry, err := c.doGet(ctx, rawURL, dst)
		metrics.MarketRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
		if err == nil {
			metrics.MarketRequestsTotal.WithLabelValues(endpoint, metrics.OutcomeSuccess).Inc()
			return nil
		}
		metrics.MarketRequestsTotal.WithLabelValues(endpoint, metrics.OutcomeError).Inc()
		log.Warn(LogMsgRequestFailed, "endpoint", endpoint, "attempt", attempt, "error", err)

		lastErr = err
		if !retry || ctx.Err() != nil {
			break
		}
	}
	return fmt.Errorf("%w: %v", domain.ErrMarketUnavailable, lastErr)
}

// doGet reports whether a failure is worth retrying
func (c *Client) doGet(ctx context.Context, rawURL string, dst interface{}) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return false, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return !errors.Is(err, context.Canceled), err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		retry := resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError
		return retry, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return false, fmt.Errorf("failed to decode response: %w", err)
	}
	return false, nil
}

func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

func chunk(ids []string, size int) [][]string {
	var out [][]string
	for size < len(ids) {
		ids, out = ids[size:], append(out, ids[:size])
	}
	return append(out, ids)
}

func pathEscapeAll(ids []string) string {
	escaped := make([]string, len(ids))
	for i, id := range ids {
		escaped[i] = url.PathEscape(id)
	}
	return strings.Join(escaped, ",")
}

func joinCities(cities []domain.City) string {
	names := make([]string, len(cities))
	for i, c := range cities {
		names[i] = string(c)
	}
	return strings.Join(names, ",")
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}
