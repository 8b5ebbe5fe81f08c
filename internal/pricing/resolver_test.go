package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CraftEconomy_Go/internal/domain"
)

func quote(item string, city domain.City, sellMin, buyMax float64) domain.PriceQuote {
	return domain.PriceQuote{
		ItemID:       item,
		City:         city,
		Quality:      domain.QualityNormal,
		SellPriceMin: sellMin,
		SellPriceMax: sellMin,
		BuyPriceMin:  buyMax,
		BuyPriceMax:  buyMax,
	}
}

func TestResolve_AutoSingleCity(t *testing.T) {
	book := NewBook([]domain.PriceQuote{quote("T6_ORE", domain.CityMartlock, 312, 290)})
	r := NewResolver(DefaultConfig())

	res := r.Resolve(book, "T6_ORE", domain.Auto(), domain.SideBuy)

	assert.Equal(t, 312.0, res.Price)
	assert.Equal(t, domain.CityMartlock, res.City)
	assert.Equal(t, SourceAuto, res.Source)
	assert.True(t, res.Found())
}

func TestResolve_AutoPicksBestSide(t *testing.T) {
	book := NewBook([]domain.PriceQuote{
		quote("T5_HIDE", domain.CityMartlock, 120, 100),
		quote("T5_HIDE", domain.CityLymhurst, 90, 80),
		quote("T5_HIDE", domain.CityThetford, 150, 140),
		quote("T5_HIDE", domain.CityBridgewatch, 0, 0),
	})
	r := NewResolver(DefaultConfig())

	buy := r.Resolve(book, "T5_HIDE", domain.Auto(), domain.SideBuy)
	assert.Equal(t, 90.0, buy.Price, "buy takes the cheapest positive quote")
	assert.Equal(t, domain.CityLymhurst, buy.City)

	sell := r.Resolve(book, "T5_HIDE", domain.Auto(), domain.SideSell)
	assert.Equal(t, 150.0, sell.Price, "sell takes the dearest positive quote")
	assert.Equal(t, domain.CityThetford, sell.City)

	instant := r.WithSellMode(InstantSell).Resolve(book, "T5_HIDE", domain.Auto(), domain.SideSell)
	assert.Equal(t, 140.0, instant.Price, "instant sell reads the buy orders")
}

func TestResolve_ExplicitCity(t *testing.T) {
	book := NewBook([]domain.PriceQuote{
		quote("T4_BAG", domain.CityMartlock, 500, 450),
		quote("T4_BAG", domain.CityLymhurst, 400, 350),
	})
	r := NewResolver(DefaultConfig())

	t.Run("direct hit wins over cheaper city", func(t *testing.T) {
		res := r.Resolve(book, "T4_BAG", domain.InCity(domain.CityMartlock), domain.SideBuy)
		assert.Equal(t, 500.0, res.Price)
		assert.Equal(t, SourceDirect, res.Source)
	})

	t.Run("miss falls back to auto", func(t *testing.T) {
		res := r.Resolve(book, "T4_BAG", domain.InCity(domain.CityThetford), domain.SideBuy)
		assert.Equal(t, 400.0, res.Price)
		assert.Equal(t, domain.CityLymhurst, res.City)
		assert.Equal(t, SourceAuto, res.Source)
	})
}

func TestResolve_EnchantSpellings(t *testing.T) {
	book := NewBook([]domain.PriceQuote{quote("X_LEVEL2@2", domain.CityLymhurst, 777, 700)})
	r := NewResolver(DefaultConfig())

	a := r.Resolve(book, "X@2", domain.Auto(), domain.SideBuy)
	b := r.Resolve(book, "X_LEVEL2", domain.Auto(), domain.SideBuy)

	require.True(t, a.Found())
	assert.Equal(t, a.Price, b.Price)
	assert.Equal(t, a.City, b.City)
	assert.Equal(t, a.MatchedID, b.MatchedID)
	assert.Equal(t, "X_LEVEL2@2", a.MatchedID)
}

func TestResolve_BaseFallback(t *testing.T) {
	book := NewBook([]domain.PriceQuote{quote("T4_PLANKS", domain.CityMartlock, 60, 55)})

	t.Run("enabled", func(t *testing.T) {
		res := NewResolver(DefaultConfig()).Resolve(book, "T4_PLANKS@1", domain.InCity(domain.CityMartlock), domain.SideBuy)
		assert.Equal(t, 60.0, res.Price)
		assert.Equal(t, SourceBase, res.Source)
		assert.Equal(t, "T4_PLANKS@1", res.ItemID)
	})

	t.Run("disabled", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.FallbackToBase = false
		res := NewResolver(cfg).Resolve(book, "T4_PLANKS@1", domain.Auto(), domain.SideBuy)
		assert.False(t, res.Found())
		assert.Equal(t, SourceNone, res.Source)
	})
}

func TestResolve_UnknownIsZero(t *testing.T) {
	r := NewResolver(DefaultConfig())

	assert.Zero(t, r.Price(NewBook(nil), "T8_ORE", domain.Auto(), domain.SideBuy))
	assert.Zero(t, r.Price(nil, "T8_ORE", domain.Auto(), domain.SideSell))
}

func TestResolve_IgnoresUnconfiguredCities(t *testing.T) {
	book := NewBook([]domain.PriceQuote{quote("T4_BAG", domain.CityBlackMarket, 0, 900)})

	assert.Zero(t, NewResolver(DefaultConfig()).WithSellMode(InstantSell).
		Price(book, "T4_BAG", domain.Auto(), domain.SideSell))

	res := NewResolver(DefaultConfig()).WithSellMode(InstantSell).
		Resolve(book, "T4_BAG", domain.InCity(domain.CityBlackMarket), domain.SideSell)
	assert.Equal(t, 900.0, res.Price)
	assert.Equal(t, SourceDirect, res.Source)
}

func TestResolve_Quality(t *testing.T) {
	q1 := quote("T4_BAG", domain.CityMartlock, 500, 450)
	q3 := quote("T4_BAG", domain.CityMartlock, 800, 700)
	q3.Quality = domain.QualityOutstanding
	book := NewBook([]domain.PriceQuote{q1, q3})
	r := NewResolver(DefaultConfig())

	assert.Equal(t, 500.0, r.Price(book, "T4_BAG", domain.Auto(), domain.SideBuy))
	assert.Equal(t, 800.0, r.Price(book, "T4_BAG", domain.Auto(), domain.SideSell))
	assert.Equal(t, 800.0, r.WithQuality(domain.QualityOutstanding).Price(book, "T4_BAG", domain.Auto(), domain.SideBuy))
	assert.Zero(t, r.WithQuality(domain.QualityMasterpiece).Price(book, "T4_BAG", domain.Auto(), domain.SideBuy))
}

func TestResolveAll(t *testing.T) {
	book := NewBook([]domain.PriceQuote{
		quote("T4_PLANKS", domain.CityMartlock, 60, 55),
		quote("T4_CLOTH", domain.CityLymhurst, 80, 70),
	})
	r := NewResolver(DefaultConfig())

	set := r.ResolveAll(book, []string{"T4_PLANKS", "T4_CLOTH", "T4_METALBAR", "T4_PLANKS"}, domain.Auto(), domain.SideBuy)

	assert.False(t, set.HasAllPrices())
	assert.Equal(t, []string{"T4_METALBAR"}, set.Missing)
	assert.Equal(t, 60.0, set.Get("T4_PLANKS"))
	assert.Equal(t, 80.0, set.Get("T4_CLOTH"))
	assert.Zero(t, set.Get("T4_METALBAR"))
	assert.Len(t, set.Prices, 3)
}

func TestBook(t *testing.T) {
	book := NewBook([]domain.PriceQuote{
		quote("T4_BAG", domain.CityMartlock, 500, 450),
		quote("T4_BAG", domain.CityMartlock, 510, 460),
		quote("T4_BAG", domain.CityCaerleon, 520, 470),
	})

	assert.Equal(t, 2, book.Len())
	q, ok := book.Quote("T4_BAG", domain.CityMartlock, domain.QualityNormal)
	require.True(t, ok)
	assert.Equal(t, 510.0, q.SellPriceMin, "later rows replace earlier ones")
	assert.ElementsMatch(t, []domain.City{domain.CityMartlock, domain.CityCaerleon}, book.Cities("T4_BAG"))
	assert.Zero(t, (*Book)(nil).Len())
}
