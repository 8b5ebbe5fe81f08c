package market

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/osse101/CraftEconomy_Go/internal/domain"
	"github.com/osse101/CraftEconomy_Go/internal/event"
	"github.com/osse101/CraftEconomy_Go/internal/logger"
	"github.com/osse101/CraftEconomy_Go/internal/pricing"
)

// ErrFeedStopped is returned when submitting to a feed that is no longer running
var ErrFeedStopped = errors.New("market feed stopped")

// Outcome is what the feed did with a submitted fetch result
type Outcome string

const (
	OutcomeLanded     Outcome = "landed"
	OutcomeSuperseded Outcome = "superseded"
	OutcomeFailed     Outcome = "failed"
)

// FetchResult is the completion of one fetch started with Feed.Begin
type FetchResult struct {
	Ticket    uint64
	Source    string
	FetchedAt time.Time
	Quotes    []domain.PriceQuote
	Err       error
}

type submission struct {
	result FetchResult
	reply  chan Outcome
}

// feedState is the writer's bookkeeping, published for Status readers
type feedState struct {
	landedTicket uint64
	lastError    string
	lastErrorAt  time.Time
	// errorTicket is the ticket of the newest failure not yet followed by a landing
	errorTicket uint64
}

// FeedConfig configures a Feed
type FeedConfig struct {
	Server     domain.Server
	StaleAfter time.Duration
}

// Feed holds the latest successful market snapshot.
// A single goroutine (Run) applies fetch results in ticket order; readers load the current
// snapshot atomically and never observe a partially applied update.
type Feed struct {
	cfg FeedConfig
	bus event.Bus
	now func() time.Time

	current atomic.Pointer[Snapshot]
	state   atomic.Pointer[feedState]
	tickets atomic.Uint64

	submissions chan submission
	done        chan struct{}
	stopOnce    sync.Once
}

// NewFeed creates a feed. bus may be nil.
func NewFeed(cfg FeedConfig, bus event.Bus) *Feed {
	if cfg.StaleAfter <= 0 {
		cfg.StaleAfter = DefaultStaleAfter
	}
	f := &Feed{
		cfg:         cfg,
		bus:         bus,
		now:         time.Now,
		submissions: make(chan submission, feedQueueSize),
		done:        make(chan struct{}),
	}
	f.state.Store(&feedState{})
	return f
}

// Begin reserves the ticket for a new fetch. Later tickets always win over earlier ones.
func (f *Feed) Begin() uint64 {
	return f.tickets.Add(1)
}

// Run applies submissions until ctx is cancelled
func (f *Feed) Run(ctx context.Context) {
	defer f.stop()
	for {
		select {
		case <-ctx.Done():
			logger.FromContext(ctx).Info(LogMsgFeedStopped)
			return
		case sub := <-f.submissions:
			outcome, evt := f.apply(sub.result)
			sub.reply <- outcome
			f.publish(ctx, evt)
		}
	}
}

func (f *Feed) stop() {
	f.stopOnce.Do(func() { close(f.done) })
}

// Submit hands a fetch result to the writer and waits for its outcome
func (f *Feed) Submit(ctx context.Context, result FetchResult) (Outcome, error) {
	sub := submission{result: result, reply: make(chan Outcome, 1)}
	select {
	case f.submissions <- sub:
	case <-f.done:
		return "", ErrFeedStopped
	case <-ctx.Done():
		return "", ctx.Err()
	}

	select {
	case outcome := <-sub.reply:
		return outcome, nil
	case <-f.done:
		return "", ErrFeedStopped
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// SeedTicket marks an archived snapshot. It never advances the landed ticket.
const SeedTicket uint64 = 0

// Seed installs an archived snapshot only while the feed is empty.
// Any fetch that lands afterwards replaces it, including fetches begun before the seed.
func (f *Feed) Seed(ctx context.Context, snap domain.MarketSnapshot) (Outcome, error) {
	return f.Submit(ctx, FetchResult{
		Ticket:    SeedTicket,
		Source:    event.SourceArchive,
		FetchedAt: snap.FetchedAt,
		Quotes:    snap.Quotes,
	})
}

// apply runs only on the Run goroutine
func (f *Feed) apply(res FetchResult) (Outcome, event.Event) {
	prev := f.state.Load()
	next := *prev

	if res.Ticket == SeedTicket {
		if f.current.Load() != nil {
			return OutcomeSuperseded, event.NewFetchSupersededEvent(res.Ticket, prev.landedTicket, res.Err != nil)
		}
	} else if res.Ticket <= prev.landedTicket {
		return OutcomeSuperseded, event.NewFetchSupersededEvent(res.Ticket, prev.landedTicket, res.Err != nil)
	}

	if res.Err != nil {
		if res.Ticket > next.errorTicket {
			next.errorTicket = res.Ticket
			next.lastError = res.Err.Error()
			next.lastErrorAt = f.now()
		}
		f.state.Store(&next)
		return OutcomeFailed, event.NewFetchFailedEvent(res.Ticket, res.Err)
	}

	fetchedAt := res.FetchedAt
	if fetchedAt.IsZero() {
		fetchedAt = f.now()
	}
	source := res.Source
	if source == "" {
		source = event.SourceAPI
	}

	snap := newSnapshot(res.Ticket, f.cfg.Server, source, fetchedAt, res.Quotes)
	f.current.Store(snap)

	next.landedTicket = res.Ticket
	if next.errorTicket < res.Ticket {
		next.errorTicket = 0
		next.lastError = ""
		next.lastErrorAt = time.Time{}
	}
	f.state.Store(&next)

	return OutcomeLanded, event.NewSnapshotLandedEvent(res.Ticket, f.cfg.Server, source, fetchedAt, res.Quotes)
}

func (f *Feed) publish(ctx context.Context, evt event.Event) {
	log := logger.FromContext(ctx)
	switch evt.Type {
	case event.MarketSnapshotLanded:
		if p, ok := evt.Payload.(event.SnapshotLandedPayloadV1); ok {
			log.Info(LogMsgSnapshotLanded, "ticket", p.Ticket, "source", p.Source, "quotes", p.QuoteCount)
		}
	case event.MarketFetchFailed:
		if p, ok := evt.Payload.(event.FetchFailedPayloadV1); ok {
			log.Warn(LogMsgFetchFailed, "ticket", p.Ticket, "error", p.Error)
		}
	case event.MarketFetchSuperseded:
		if p, ok := evt.Payload.(event.FetchSupersededPayloadV1); ok {
			log.Info(LogMsgSnapshotDiscard, "ticket", p.Ticket, "landed_ticket", p.LandedTicket)
		}
	}

	if f.bus == nil {
		return
	}
	if err := f.bus.Publish(ctx, evt); err != nil {
		log.Warn(LogMsgPublishFailed, "event_type", evt.Type, "error", err)
	}
}

// Current returns the latest snapshot, or nil before the first one lands
func (f *Feed) Current() *Snapshot {
	return f.current.Load()
}

// CurrentBook implements crafting.PriceSource
func (f *Feed) CurrentBook() (*pricing.Book, error) {
	snap := f.current.Load()
	if snap == nil {
		return nil, domain.ErrNoSnapshot
	}
	return snap.Book, nil
}

// Ready reports whether any snapshot has landed
func (f *Feed) Ready() bool {
	return f.current.Load() != nil
}

// Status reports the current snapshot and whether it should be treated as stale
func (f *Feed) Status() Status {
	st := f.state.Load()
	status := Status{
		Ticket:        st.landedTicket,
		LastError:     st.lastError,
		LastErrorAt:   st.lastErrorAt,
		PendingTicket: f.tickets.Load(),
		Stale:         true,
	}

	snap := f.current.Load()
	if snap == nil {
		return status
	}
	status.HasSnapshot = true
	status.Source = snap.Source
	status.FetchedAt = snap.FetchedAt
	status.QuoteCount = len(snap.Quotes)
	status.Stale = st.lastError != "" || snap.Age(f.now()) > f.cfg.StaleAfter
	return status
}
