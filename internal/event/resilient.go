package event

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/CraftEconomy_Go/internal/logger"
)

// ResilientConfig configures a ResilientHandler
type ResilientConfig struct {
	MaxRetries int
	RetryDelay time.Duration
}

// DefaultResilientConfig retries five times with exponential backoff starting at two seconds
func DefaultResilientConfig() ResilientConfig {
	return ResilientConfig{MaxRetries: RetryMaxAttempts, RetryDelay: RetryInitialDelay}
}

// ResilientHandler wraps a handler so a failure never blocks the publisher.
// The first attempt runs inline; failures are retried in the background and
// finally written to the dead-letter file.
type ResilientHandler struct {
	name       string
	inner      Handler
	config     ResilientConfig
	deadLetter *DeadLetterWriter

	wg       sync.WaitGroup
	shutdown chan struct{}
	once     sync.Once
}

// NewResilientHandler wraps inner. deadLetter may be nil, in which case exhausted events are only logged.
func NewResilientHandler(name string, inner Handler, config ResilientConfig, deadLetter *DeadLetterWriter) *ResilientHandler {
	return &ResilientHandler{
		name:       name,
		inner:      inner,
		config:     config,
		deadLetter: deadLetter,
		shutdown:   make(chan struct{}),
	}
}

// Handle implements Handler. It returns nil once the event is accepted, even if the first attempt failed.
func (h *ResilientHandler) Handle(ctx context.Context, evt Event) error {
	err := h.inner(ctx, evt)
	if err == nil {
		return nil
	}

	logger.FromContext(ctx).Warn(LogMsgHandlerFailed,
		"handler", h.name,
		"event_type", evt.Type,
		"error", err,
		"retries", h.config.MaxRetries)

	select {
	case <-h.shutdown:
		h.writeDeadLetter(evt, 1, err)
		return nil
	default:
	}

	h.wg.Add(1)
	go h.retryLoop(evt, err)
	return nil
}

func (h *ResilientHandler) retryLoop(evt Event, lastErr error) {
	defer h.wg.Done()
	// The publishing request may be long gone
	ctx := context.Background()
	log := logger.FromContext(ctx)

	attempts := 1
	for i := 1; i <= h.config.MaxRetries; i++ {
		timer := time.NewTimer(CalculateRetryDelay(h.config.RetryDelay, i))
		select {
		case <-h.shutdown:
			timer.Stop()
			log.Warn(LogMsgRetryAbandoned, "handler", h.name, "event_type", evt.Type)
			h.writeDeadLetter(evt, attempts, lastErr)
			return
		case <-timer.C:
		}

		attempts++
		if lastErr = h.inner(ctx, evt); lastErr == nil {
			log.Info(LogMsgRetrySucceeded, "handler", h.name, "event_type", evt.Type, "attempt", i)
			return
		}
		log.Warn(LogMsgRetryFailed, "handler", h.name, "event_type", evt.Type, "attempt", i, "error", lastErr)
	}

	log.Error(LogMsgRetryExhausted, "handler", h.name, "event_type", evt.Type, "attempts", attempts)
	h.writeDeadLetter(evt, attempts, lastErr)
}

func (h *ResilientHandler) writeDeadLetter(evt Event, attempts int, lastErr error) {
	if h.deadLetter == nil {
		return
	}
	if err := h.deadLetter.Write(h.name, evt, attempts, lastErr); err != nil {
		logger.Error(LogMsgDeadLetterWriteFailed, "handler", h.name, "error", err)
		return
	}
	logger.Info(LogMsgDeadLettered, "handler", h.name, "event_type", evt.Type)
}

// Shutdown stops pending retries, dead-lettering their events, and waits for them to finish
func (h *ResilientHandler) Shutdown(ctx context.Context) error {
	h.once.Do(func() { close(h.shutdown) })

	done := make(chan struct{})
	go func() {
		h.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
