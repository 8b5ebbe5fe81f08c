package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/CraftEconomy_Go/internal/config"
	"github.com/osse101/CraftEconomy_Go/internal/domain"
	"github.com/osse101/CraftEconomy_Go/internal/event"
	"github.com/osse101/CraftEconomy_Go/internal/market"
	"github.com/osse101/CraftEconomy_Go/internal/pricing"
)

// MarketComponents are the market data pieces shared by the services and the scheduler
type MarketComponents struct {
	Resolver *pricing.Resolver
	Client   *market.Client
	Feed     *market.Feed
	Refresh  *market.RefreshJob
}

// SetupMarket builds the price resolver, the API client, the feed and its refresh job.
// The caller must run Feed.Run and schedule Refresh.
func SetupMarket(cfg *config.Config, bus event.Bus, items market.ItemSource) (*MarketComponents, error) {
	server, err := cfg.Server()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInvalidMarketConfig, err)
	}
	cities, err := cfg.Cities()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInvalidMarketConfig, err)
	}

	resolverCfg := pricing.DefaultConfig()
	resolverCfg.Cities = cities
	resolverCfg.FallbackToBase = cfg.FallbackToBase
	resolver := pricing.NewResolver(resolverCfg)

	client := market.NewClient(market.ClientConfig{
		BaseURL:           cfg.MarketBaseURL,
		Server:            server,
		Cities:            withBlackMarket(cities),
		Qualities:         []int{cfg.MarketQuality},
		ChunkSize:         cfg.ChunkSize,
		Concurrency:       cfg.Concurrency,
		RequestsPerMinute: cfg.RequestsPerMinute,
		MaxRetries:        cfg.MaxRetries,
		HistoryCacheSize:  cfg.HistoryCacheSize,
		HistoryCacheTTL:   cfg.HistoryCacheTTL,
	})

	feed := market.NewFeed(market.FeedConfig{Server: server, StaleAfter: cfg.StaleAfter}, bus)
	refresh := market.NewRefreshJob(feed, client, items, cfg.ExtraItems, cfg.FetchTimeout)

	slog.Info(LogMsgMarketConfigured,
		"server", server,
		"cities", len(cities),
		"quality", cfg.MarketQuality,
		"poll_interval", cfg.PollInterval)

	return &MarketComponents{Resolver: resolver, Client: client, Feed: feed, Refresh: refresh}, nil
}

// withBlackMarket adds the Black Market to the fetched cities; it is priced only on request
func withBlackMarket(cities []domain.City) []domain.City {
	out := append([]domain.City{}, cities...)
	for _, c := range out {
		if c == domain.CityBlackMarket {
			return out
		}
	}
	return append(out, domain.CityBlackMarket)
}
