package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/CraftEconomy_Go/internal/crafting"
	"github.com/osse101/CraftEconomy_Go/internal/domain"
	"github.com/osse101/CraftEconomy_Go/internal/market"
	"github.com/osse101/CraftEconomy_Go/internal/pricing"
	"github.com/osse101/CraftEconomy_Go/internal/route"
)

// MockCraftingService mocks crafting.Service
type MockCraftingService struct {
	mock.Mock
}

func (m *MockCraftingService) Estimate(ctx context.Context, req crafting.EstimateRequest) (*crafting.Estimate, error) {
	args := m.Called(ctx, req)
	est, _ := args.Get(0).(*crafting.Estimate)
	return est, args.Error(1)
}

func (m *MockCraftingService) GetRecipe(ctx context.Context, id string) (domain.Recipe, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Recipe), args.Error(1)
}

func (m *MockCraftingService) ListRecipes(ctx context.Context, category domain.Category) []domain.Recipe {
	args := m.Called(ctx, category)
	recipes, _ := args.Get(0).([]domain.Recipe)
	return recipes
}

// MockRouteService mocks route.Service
type MockRouteService struct {
	mock.Mock
}

func (m *MockRouteService) Evaluate(ctx context.Context, routes []route.Route, capacity float64) ([]route.Evaluation, error) {
	args := m.Called(ctx, routes, capacity)
	evals, _ := args.Get(0).([]route.Evaluation)
	return evals, args.Error(1)
}

func (m *MockRouteService) Plan(ctx context.Context, req route.PlanRequest) (*route.Plan, error) {
	args := m.Called(ctx, req)
	plan, _ := args.Get(0).(*route.Plan)
	return plan, args.Error(1)
}

// MockRefresher mocks Refresher
type MockRefresher struct {
	mock.Mock
}

func (m *MockRefresher) Refresh(ctx context.Context) (market.Outcome, error) {
	args := m.Called(ctx)
	return args.Get(0).(market.Outcome), args.Error(1)
}

// MockHistorySource mocks HistorySource
type MockHistorySource struct {
	mock.Mock
}

func (m *MockHistorySource) FetchHistory(ctx context.Context, itemID string, cities []domain.City, quality int) ([]domain.PriceHistory, error) {
	args := m.Called(ctx, itemID, cities, quality)
	series, _ := args.Get(0).([]domain.PriceHistory)
	return series, args.Error(1)
}

// fakeFeed serves a fixed book and status
type fakeFeed struct {
	book   *pricing.Book
	err    error
	status market.Status
}

func (f *fakeFeed) CurrentBook() (*pricing.Book, error) { return f.book, f.err }
func (f *fakeFeed) Status() market.Status               { return f.status }
func (f *fakeFeed) Ready() bool                         { return f.book != nil }

// fakeCharacters serves characters from a map
type fakeCharacters map[string]domain.Character

func (f fakeCharacters) GetCharacter(_ context.Context, id string) (*domain.Character, error) {
	c, ok := f[id]
	if !ok {
		return nil, domain.ErrCharacterNotFound
	}
	return &c, nil
}

// recipeMap serves recipes from a map
type recipeMap map[string]domain.Recipe

func (r recipeMap) GetRecipe(_ context.Context, id string) (domain.Recipe, error) {
	recipe, ok := r[id]
	if !ok {
		return domain.Recipe{}, domain.ErrRecipeNotFound
	}
	return recipe, nil
}

var testFetchedAt = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func testQuotes() []domain.PriceQuote {
	return []domain.PriceQuote{
		{ItemID: "T4_PLANKS", City: domain.CityMartlock, Quality: 1, SellPriceMin: 100, BuyPriceMax: 80},
		{ItemID: "T4_PLANKS", City: domain.CityLymhurst, Quality: 1, SellPriceMin: 90, BuyPriceMax: 70},
		{ItemID: "T4_PLANKS", City: domain.CityBlackMarket, Quality: 1, SellPriceMin: 0, BuyPriceMax: 150},
		{ItemID: "T4_BAG", City: domain.CityCaerleon, Quality: 2, SellPriceMin: 3000},
	}
}

func testFeed() *fakeFeed {
	return &fakeFeed{
		book:   pricing.NewBook(testQuotes()),
		status: market.Status{HasSnapshot: true, Ticket: 3, FetchedAt: testFetchedAt, QuoteCount: 4},
	}
}

func testRecipes() recipeMap {
	return recipeMap{
		"T4_2H_BOW": {
			ID:          "T4_2H_BOW",
			Name:        "Adept's Bow",
			Tier:        4,
			Category:    domain.CategoryGear,
			Ingredients: []domain.Ingredient{{ItemID: "T4_PLANKS", Quantity: 32}},
			BaseFocus:   480,
			BonusCity:   domain.CityLymhurst,
			MasteryID:   "bow_crafter",
			SpecID:      "bow",
		},
	}
}

// withURLParam attaches a chi route parameter to the request
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func postJSON(target, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}
