package route

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/CraftEconomy_Go/internal/domain"
	"github.com/osse101/CraftEconomy_Go/internal/logger"
	"github.com/osse101/CraftEconomy_Go/internal/metrics"
	"github.com/osse101/CraftEconomy_Go/internal/pricing"
)

// PriceSource provides the current market snapshot
type PriceSource interface {
	CurrentBook() (*pricing.Book, error)
}

// PlanRequest asks for the best use of a carry capacity
type PlanRequest struct {
	Routes   []Route
	Capacity float64
	Budget   float64
}

// Service evaluates routes against the current snapshot
type Service interface {
	Evaluate(ctx context.Context, routes []Route, capacity float64) ([]Evaluation, error)
	Plan(ctx context.Context, req PlanRequest) (*Plan, error)
}

type service struct {
	prices PriceSource
	calc   *Calculator
}

// NewService creates a route service
func NewService(prices PriceSource, calc *Calculator) Service {
	return &service{prices: prices, calc: calc}
}

// book returns nil without error when no snapshot has landed yet
func (s *service) book() (*pricing.Book, error) {
	book, err := s.prices.CurrentBook()
	if err != nil && !errors.Is(err, domain.ErrNoSnapshot) {
		return nil, fmt.Errorf("failed to load market snapshot: %w", err)
	}
	return book, nil
}

func (s *service) Evaluate(ctx context.Context, routes []Route, capacity float64) ([]Evaluation, error) {
	if err := validateRoutes(routes); err != nil {
		return nil, err
	}
	book, err := s.book()
	if err != nil {
		return nil, err
	}
	out := make([]Evaluation, len(routes))
	for i, r := range routes {
		out[i] = s.calc.Evaluate(book, r, capacity)
	}
	return out, nil
}

func (s *service) Plan(ctx context.Context, req PlanRequest) (*Plan, error) {
	if err := validateRoutes(req.Routes); err != nil {
		return nil, err
	}
	if req.Capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity must be positive", domain.ErrInvalidInput)
	}
	book, err := s.book()
	if err != nil {
		return nil, err
	}

	plan := s.calc.Plan(book, req.Routes, req.Capacity, req.Budget)
	metrics.RoutePlansTotal.Inc()
	logger.FromContext(ctx).Debug(LogMsgPlanComputed,
		"routes", len(req.Routes),
		"selected", len(plan.Selections),
		"profit", plan.TotalProfit)
	return &plan, nil
}

func validateRoutes(routes []Route) error {
	if len(routes) == 0 {
		return fmt.Errorf("%w: at least one route is required", domain.ErrInvalidInput)
	}
	for i, r := range routes {
		if r.ItemID == "" {
			return fmt.Errorf("%w: route %d has no item_id", domain.ErrInvalidInput, i)
		}
		if r.Weight < 0 {
			return fmt.Errorf("%w: route %d has negative weight", domain.ErrInvalidInput, i)
		}
	}
	return nil
}
