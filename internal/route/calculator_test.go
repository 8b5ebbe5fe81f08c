package route

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CraftEconomy_Go/internal/domain"
	"github.com/osse101/CraftEconomy_Go/internal/pricing"
)

func testBook() *pricing.Book {
	return pricing.NewBook([]domain.PriceQuote{
		{ItemID: "T4_BAG", City: domain.CityMartlock, Quality: 1, SellPriceMin: 1000, BuyPriceMax: 900},
		{ItemID: "T4_BAG", City: domain.CityCaerleon, Quality: 1, SellPriceMin: 1500, BuyPriceMax: 1400},
		{ItemID: "T4_BAG", City: domain.CityBlackMarket, Quality: 1, SellPriceMin: 5000, BuyPriceMax: 1800},
		{ItemID: "T6_ORE", City: domain.CityThetford, Quality: 1, SellPriceMin: 200},
		{ItemID: "T6_ORE", City: domain.CityCaerleon, Quality: 1, SellPriceMin: 300},
	})
}

func newCalc() *Calculator {
	return NewCalculator(DefaultConfig(), pricing.NewResolver(pricing.DefaultConfig()))
}

func TestEvaluate(t *testing.T) {
	calc := newCalc()
	book := testBook()

	ev := calc.Evaluate(book, Route{
		ItemID:   "T4_BAG",
		Weight:   1.5,
		BuyCity:  domain.InCity(domain.CityMartlock),
		SellCity: domain.InCity(domain.CityCaerleon),
	}, 100)

	require.True(t, ev.HasPrices)
	assert.Equal(t, 1000.0, ev.BuyPrice)
	assert.Equal(t, 1500.0, ev.SellPrice)
	assert.InDelta(t, 1500*0.96-1000, ev.UnitProfit, 1e-9)
	assert.InDelta(t, 44.0, ev.ReturnOnCost, 1e-9)
	assert.InDelta(t, 440/1.5, ev.ProfitPerWeight, 1e-9)
	assert.Equal(t, 66, ev.MaxUnits)
	assert.Equal(t, domain.CityMartlock, ev.BuyFrom)
	assert.Equal(t, domain.CityCaerleon, ev.SellTo)
}

func TestEvaluate_BlackMarketFillsBuyOrders(t *testing.T) {
	ev := newCalc().Evaluate(testBook(), Route{
		ItemID:   "T4_BAG",
		Weight:   1,
		BuyCity:  domain.Auto(),
		SellCity: domain.InCity(domain.CityBlackMarket),
	}, 10)

	assert.Equal(t, 1000.0, ev.BuyPrice, "auto buy takes the cheapest city")
	assert.Equal(t, 1800.0, ev.SellPrice, "black market uses buy_price_max, not its sell listings")
	assert.InDelta(t, 1800*0.96-1000, ev.UnitProfit, 1e-9)
}

func TestEvaluate_MissingPrices(t *testing.T) {
	ev := newCalc().Evaluate(testBook(), Route{
		ItemID:   "T8_NOTHING",
		Weight:   1,
		BuyCity:  domain.Auto(),
		SellCity: domain.Auto(),
	}, 10)

	assert.False(t, ev.HasPrices)
	assert.Zero(t, ev.UnitProfit)
	assert.Zero(t, ev.MaxUnits)
}

func TestEvaluate_OverridesAndLimit(t *testing.T) {
	ev := newCalc().Evaluate(nil, Route{
		ItemID:    "T4_BAG",
		Weight:    1,
		BuyPrice:  100,
		SellPrice: 200,
		Limit:     5,
	}, 50)

	require.True(t, ev.HasPrices)
	assert.InDelta(t, 92.0, ev.UnitProfit, 1e-9)
	assert.Equal(t, 5, ev.MaxUnits)

	ev = newCalc().Evaluate(nil, Route{ItemID: "T4_BAG", Weight: 1, BuyPrice: 100, SellPrice: 200, Limit: 5}, 0)
	assert.Equal(t, 5, ev.MaxUnits, "without capacity the limit applies alone")
}

func TestMaxUnits(t *testing.T) {
	tests := []struct {
		capacity, weight float64
		want             int
	}{
		{100, 1.5, 66},
		{0.3, 0.1, 3},
		{10, 0, 0},
		{0, 1, 0},
		{-5, 1, 0},
		{math.NaN(), 1, 0},
		{10, math.Inf(1), 0},
		{1e30, 1, MaxUnitCount},
		{1, 1e-300, MaxUnitCount},
		{math.Inf(1), 1, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MaxUnits(tt.capacity, tt.weight), "capacity=%v weight=%v", tt.capacity, tt.weight)
	}
}

func TestPlan_GreedyByProfitPerWeight(t *testing.T) {
	calc := NewCalculator(Config{TaxRate: 0}, pricing.NewResolver(pricing.DefaultConfig()))

	routes := []Route{
		// 50 profit per unit, weight 10: 5 per kg
		{ItemID: "heavy", Weight: 10, BuyPrice: 100, SellPrice: 150},
		// 20 profit per unit, weight 1: 20 per kg
		{ItemID: "light", Weight: 1, BuyPrice: 10, SellPrice: 30, Limit: 5},
		// loses money
		{ItemID: "loser", Weight: 1, BuyPrice: 10, SellPrice: 5},
		// no prices
		{ItemID: "unknown", Weight: 1},
	}

	plan := calc.Plan(nil, routes, 35, 0)

	assert.True(t, plan.UpperBound)
	assert.Equal(t, DepthWarning, plan.Warning)
	require.Len(t, plan.Selections, 2)

	assert.Equal(t, "light", plan.Selections[0].Evaluation.Route.ItemID)
	assert.Equal(t, 5, plan.Selections[0].Units)

	assert.Equal(t, "heavy", plan.Selections[1].Evaluation.Route.ItemID)
	assert.Equal(t, 3, plan.Selections[1].Units, "30 capacity left fits three heavy units")

	assert.InDelta(t, 5*20+3*50, plan.TotalProfit, 1e-9)
	assert.InDelta(t, 35, plan.TotalWeight, 1e-9)
	assert.InDelta(t, 5*10+3*100, plan.TotalCost, 1e-9)
	assert.InDelta(t, 0, plan.RemainingCapacity, 1e-9)
	assert.Len(t, plan.Skipped, 2)
}

func TestPlan_Budget(t *testing.T) {
	calc := NewCalculator(Config{TaxRate: 0}, pricing.NewResolver(pricing.DefaultConfig()))
	routes := []Route{{ItemID: "x", Weight: 1, BuyPrice: 100, SellPrice: 150}}

	plan := calc.Plan(nil, routes, 1000, 250)
	require.Len(t, plan.Selections, 1)
	assert.Equal(t, 2, plan.Selections[0].Units)
	assert.InDelta(t, 50, plan.RemainingBudget, 1e-9)
}

func TestPlan_HugeRatiosSaturate(t *testing.T) {
	calc := NewCalculator(Config{TaxRate: 0}, pricing.NewResolver(pricing.DefaultConfig()))
	routes := []Route{{ItemID: "x", Weight: 1, BuyPrice: 1e-300, SellPrice: 10}}

	t.Run("capacity", func(t *testing.T) {
		plan := calc.Plan(nil, routes, 1e30, 0)
		require.Len(t, plan.Selections, 1)
		assert.Equal(t, MaxUnitCount, plan.Selections[0].Units)
		assert.Empty(t, plan.Skipped)
	})

	t.Run("budget", func(t *testing.T) {
		plan := calc.Plan(nil, routes, 100, 1e12)
		require.Len(t, plan.Selections, 1)
		assert.Equal(t, 100, plan.Selections[0].Units, "capacity binds before the budget ratio")
	})
}

func TestPlan_NothingFits(t *testing.T) {
	plan := newCalc().Plan(nil, []Route{{ItemID: "x", Weight: 50, BuyPrice: 1, SellPrice: 100}}, 10, 0)
	assert.Empty(t, plan.Selections)
	assert.Len(t, plan.Skipped, 1)
	assert.Zero(t, plan.TotalProfit)
}

func TestNewCalculator_ClampsTax(t *testing.T) {
	assert.Equal(t, 1.0, NewCalculator(Config{TaxRate: 3}, nil).Config().TaxRate)
	assert.Equal(t, 0.0, NewCalculator(Config{TaxRate: math.NaN()}, nil).Config().TaxRate)
}
