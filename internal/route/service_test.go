package route

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CraftEconomy_Go/internal/domain"
	"github.com/osse101/CraftEconomy_Go/internal/pricing"
)

type MockPriceSource struct {
	mock.Mock
}

func (m *MockPriceSource) CurrentBook() (*pricing.Book, error) {
	args := m.Called()
	book, _ := args.Get(0).(*pricing.Book)
	return book, args.Error(1)
}

func TestService_Plan(t *testing.T) {
	prices := new(MockPriceSource)
	prices.On("CurrentBook").Return(testBook(), nil)
	svc := NewService(prices, newCalc())

	plan, err := svc.Plan(context.Background(), PlanRequest{
		Routes: []Route{
			{ItemID: "T6_ORE", Weight: 1, BuyCity: domain.InCity(domain.CityThetford), SellCity: domain.InCity(domain.CityCaerleon)},
		},
		Capacity: 10,
	})
	require.NoError(t, err)
	require.Len(t, plan.Selections, 1)
	assert.Equal(t, 10, plan.Selections[0].Units)
	assert.InDelta(t, 10*(300*0.96-200), plan.TotalProfit, 1e-9)
}

func TestService_Validation(t *testing.T) {
	prices := new(MockPriceSource)
	svc := NewService(prices, newCalc())
	ctx := context.Background()

	_, err := svc.Plan(ctx, PlanRequest{Capacity: 10})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.Plan(ctx, PlanRequest{Routes: []Route{{ItemID: "x", Weight: 1}}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "capacity is required")

	_, err = svc.Evaluate(ctx, []Route{{Weight: 1}}, 10)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.Evaluate(ctx, []Route{{ItemID: "x", Weight: -1}}, 10)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	prices.AssertNotCalled(t, "CurrentBook")
}

func TestService_Snapshot(t *testing.T) {
	t.Run("no snapshot yet", func(t *testing.T) {
		prices := new(MockPriceSource)
		prices.On("CurrentBook").Return(nil, domain.ErrNoSnapshot)
		svc := NewService(prices, newCalc())

		evs, err := svc.Evaluate(context.Background(), []Route{{ItemID: "T4_BAG", Weight: 1}}, 10)
		require.NoError(t, err)
		require.Len(t, evs, 1)
		assert.False(t, evs[0].HasPrices)
	})

	t.Run("source failure", func(t *testing.T) {
		prices := new(MockPriceSource)
		prices.On("CurrentBook").Return(nil, errors.New("boom"))
		svc := NewService(prices, newCalc())

		_, err := svc.Evaluate(context.Background(), []Route{{ItemID: "T4_BAG", Weight: 1}}, 10)
		assert.Error(t, err)
	})
}
