package market

import (
	"context"
	"sort"
	"time"

	"github.com/osse101/CraftEconomy_Go/internal/domain"
	"github.com/osse101/CraftEconomy_Go/internal/event"
	"github.com/osse101/CraftEconomy_Go/internal/logger"
	"github.com/osse101/CraftEconomy_Go/internal/pricing"
)

// RefreshJobName labels the refresh job in logs and metrics
const RefreshJobName = "market_refresh"

// Fetcher is the part of Client the refresh job needs
type Fetcher interface {
	FetchPrices(ctx context.Context, itemIDs []string) ([]domain.PriceQuote, error)
}

// ItemSource lists the item ids that should be kept priced
type ItemSource interface {
	MarketItemIDs() []string
}

// RefreshJob fetches quotes for every tracked item and submits them to the feed.
// It implements worker.Job.
type RefreshJob struct {
	feed    *Feed
	fetcher Fetcher
	items   ItemSource
	extra   []string
	timeout time.Duration
}

// NewRefreshJob creates a refresh job. extra ids are fetched in addition to the item source's.
func NewRefreshJob(feed *Feed, fetcher Fetcher, items ItemSource, extra []string, timeout time.Duration) *RefreshJob {
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	return &RefreshJob{feed: feed, fetcher: fetcher, items: items, extra: extra, timeout: timeout}
}

// Name implements worker.Named
func (j *RefreshJob) Name() string {
	return RefreshJobName
}

// Process implements worker.Job
func (j *RefreshJob) Process(ctx context.Context) error {
	_, err := j.Refresh(ctx)
	return err
}

// Refresh runs one fetch and reports what the feed did with it.
// A failed fetch is not an error here: it is recorded on the feed and the previous snapshot stays.
func (j *RefreshJob) Refresh(ctx context.Context) (Outcome, error) {
	log := logger.FromContext(ctx)

	ids := j.itemIDs()
	if len(ids) == 0 {
		log.Info(LogMsgNothingToFetch)
		return "", nil
	}

	ticket := j.feed.Begin()
	log.Debug(LogMsgRefreshStarting, "ticket", ticket, "items", len(ids))

	fetchCtx, cancel := context.WithTimeout(ctx, j.timeout)
	quotes, fetchErr := j.fetcher.FetchPrices(fetchCtx, ids)
	cancel()

	return j.feed.Submit(ctx, FetchResult{
		Ticket:    ticket,
		Source:    event.SourceAPI,
		FetchedAt: time.Now(),
		Quotes:    quotes,
		Err:       fetchErr,
	})
}

// itemIDs expands every tracked id into the spellings its quotes may be recorded under,
// plus the un-enchanted base used as a price fallback
func (j *RefreshJob) itemIDs() []string {
	var ids []string
	if j.items != nil {
		ids = append(ids, j.items.MarketItemIDs()...)
	}
	ids = append(ids, j.extra...)
	return QueryIDs(ids)
}

// QueryIDs returns the sorted distinct API ids needed to price the given items
func QueryIDs(itemIDs []string) []string {
	seen := make(map[string]bool)
	var out []string
	add := func(id string) {
		if id != "" && !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	for _, id := range itemIDs {
		ref := pricing.ParseItemID(id)
		for _, c := range ref.Candidates() {
			add(c)
		}
		if ref.Enchant > 0 {
			add(ref.Base)
		}
	}
	sort.Strings(out)
	return out
}
