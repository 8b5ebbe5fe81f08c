package pricing

import (
	"math"

	"github.com/osse101/CraftEconomy_Go/internal/domain"
)

// Book indexes a market snapshot by item, city and quality.
// A Book is built once and never mutated, so it is safe for concurrent readers.
type Book struct {
	quotes map[string]map[domain.City]map[int]domain.PriceQuote
	size   int
}

// NewBook indexes the quotes. Later rows for the same item, city and quality replace earlier ones.
func NewBook(quotes []domain.PriceQuote) *Book {
	b := &Book{quotes: make(map[string]map[domain.City]map[int]domain.PriceQuote)}
	for _, q := range quotes {
		byCity, ok := b.quotes[q.ItemID]
		if !ok {
			byCity = make(map[domain.City]map[int]domain.PriceQuote)
			b.quotes[q.ItemID] = byCity
		}
		byQuality, ok := byCity[q.City]
		if !ok {
			byQuality = make(map[int]domain.PriceQuote)
			byCity[q.City] = byQuality
		}
		if _, exists := byQuality[q.Quality]; !exists {
			b.size++
		}
		byQuality[q.Quality] = q
	}
	return b
}

// Len returns the number of distinct quotes in the book
func (b *Book) Len() int {
	if b == nil {
		return 0
	}
	return b.size
}

// Quote returns the raw quote for an exact item id, city and quality
func (b *Book) Quote(itemID string, city domain.City, quality int) (domain.PriceQuote, bool) {
	if b == nil {
		return domain.PriceQuote{}, false
	}
	q, ok := b.quotes[itemID][city][quality]
	return q, ok
}

// Cities returns the cities that have at least one quote for the item id
func (b *Book) Cities(itemID string) []domain.City {
	if b == nil {
		return nil
	}
	cities := make([]domain.City, 0, len(b.quotes[itemID]))
	for _, c := range domain.AllCities {
		if _, ok := b.quotes[itemID][c]; ok {
			cities = append(cities, c)
		}
	}
	return cities
}

// value returns the best positive price for the side across the requested quality.
// Quality 0 considers every quality.
func (b *Book) value(itemID string, city domain.City, quality int, side domain.Side, mode SellMode) float64 {
	if b == nil {
		return 0
	}
	byQuality := b.quotes[itemID][city]
	if len(byQuality) == 0 {
		return 0
	}
	if quality != domain.QualityAny {
		q, ok := byQuality[quality]
		if !ok {
			return 0
		}
		return quoteValue(q, side, mode)
	}

	best := 0.0
	for _, q := range byQuality {
		v := quoteValue(q, side, mode)
		if v > 0 && (best == 0 || better(side, v, best)) {
			best = v
		}
	}
	return best
}

// quoteValue picks the field a trade on the given side would execute against.
// Buying always takes the lowest sell order; selling either lists a sell order or fills a buy order.
func quoteValue(q domain.PriceQuote, side domain.Side, mode SellMode) float64 {
	var v float64
	switch {
	case side == domain.SideBuy:
		v = q.SellPriceMin
	case mode == InstantSell:
		v = q.BuyPriceMax
	default:
		v = q.SellPriceMin
	}
	if v <= 0 || math.IsNaN(v) {
		return 0
	}
	return v
}

// better reports whether candidate beats current: cheaper for buying, dearer for selling
func better(side domain.Side, candidate, current float64) bool {
	if side == domain.SideBuy {
		return candidate < current
	}
	return candidate > current
}
