package pricing

import (
	"github.com/osse101/CraftEconomy_Go/internal/domain"
)

// SellMode selects which quote field a sale executes against
type SellMode int

const (
	// SellOrder lists the item at the current lowest sell order
	SellOrder SellMode = iota
	// InstantSell fills the highest standing buy order (Black Market semantics)
	InstantSell
)

// Source describes how a price was found
type Source string

const (
	SourceDirect Source = "direct"
	SourceAuto   Source = "auto"
	SourceBase   Source = "base"
	SourceNone   Source = "none"
)

// Config controls price resolution
type Config struct {
	// Cities scanned by automatic selection, in tie-break order
	Cities []domain.City
	// Quality restricts quotes to one quality; 0 accepts any
	Quality  int
	SellMode SellMode
	// FallbackToBase retries with the un-enchanted base id when the enchanted item has no data
	FallbackToBase bool
}

// DefaultConfig scans every regular market city and falls back to the base item
func DefaultConfig() Config {
	return Config{
		Cities:         append([]domain.City{}, domain.MarketCities...),
		Quality:        domain.QualityAny,
		SellMode:       SellOrder,
		FallbackToBase: true,
	}
}

// Resolution is a resolved price with its provenance.
// Price 0 means no data; callers must check Found rather than the value.
type Resolution struct {
	ItemID    string      `json:"item_id"`
	MatchedID string      `json:"matched_id,omitempty"`
	City      domain.City `json:"city,omitempty"`
	Price     float64     `json:"price"`
	Source    Source      `json:"source"`
}

// Found reports whether a positive price was resolved
func (r Resolution) Found() bool {
	return r.Price > 0
}

// Resolver resolves buy and sell prices from a Book. It holds no state besides its config.
type Resolver struct {
	cfg Config
}

// NewResolver creates a resolver; an empty city list falls back to the market cities
func NewResolver(cfg Config) *Resolver {
	if len(cfg.Cities) == 0 {
		cfg.Cities = append([]domain.City{}, domain.MarketCities...)
	}
	return &Resolver{cfg: cfg}
}

// Config returns a copy of the resolver configuration
func (r *Resolver) Config() Config {
	cfg := r.cfg
	cfg.Cities = append([]domain.City{}, r.cfg.Cities...)
	return cfg
}

// WithSellMode returns a resolver that differs only in its sell mode
func (r *Resolver) WithSellMode(mode SellMode) *Resolver {
	cfg := r.Config()
	cfg.SellMode = mode
	return &Resolver{cfg: cfg}
}

// WithQuality returns a resolver restricted to one quality
func (r *Resolver) WithQuality(quality int) *Resolver {
	cfg := r.Config()
	cfg.Quality = quality
	return &Resolver{cfg: cfg}
}

// Price resolves a single price, returning 0 when unknown
func (r *Resolver) Price(book *Book, itemID string, sel domain.CitySelector, side domain.Side) float64 {
	return r.Resolve(book, itemID, sel, side).Price
}

// Resolve looks the item up under all of its candidate ids.
// An explicit city is tried first, then every configured city, then the un-enchanted base item.
func (r *Resolver) Resolve(book *Book, itemID string, sel domain.CitySelector, side domain.Side) Resolution {
	ref := ParseItemID(itemID)

	if res, ok := r.resolveRef(book, ref, sel, side); ok {
		res.ItemID = itemID
		return res
	}

	if r.cfg.FallbackToBase && ref.Enchant > 0 {
		if res, ok := r.resolveRef(book, ref.Unenchanted(), sel, side); ok {
			res.ItemID = itemID
			res.Source = SourceBase
			return res
		}
	}

	return Resolution{ItemID: itemID, Source: SourceNone}
}

func (r *Resolver) resolveRef(book *Book, ref ItemRef, sel domain.CitySelector, side domain.Side) (Resolution, bool) {
	candidates := ref.Candidates()

	if !sel.IsAuto() {
		if res, ok := r.best(book, candidates, []domain.City{sel.City}, side); ok {
			res.Source = SourceDirect
			return res, true
		}
	}

	res, ok := r.best(book, candidates, r.cfg.Cities, side)
	if ok {
		res.Source = SourceAuto
	}
	return res, ok
}

// best scans cities in order, then candidates in canonical order; ties keep the first hit
func (r *Resolver) best(book *Book, candidates []string, cities []domain.City, side domain.Side) (Resolution, bool) {
	var res Resolution
	found := false
	for _, city := range cities {
		for _, id := range candidates {
			v := book.value(id, city, r.cfg.Quality, side, r.cfg.SellMode)
			if v <= 0 {
				continue
			}
			if !found || better(side, v, res.Price) {
				res = Resolution{MatchedID: id, City: city, Price: v}
				found = true
			}
		}
	}
	return res, found
}

// PriceSet is the outcome of resolving several items at once
type PriceSet struct {
	Prices  map[string]Resolution `json:"prices"`
	Missing []string              `json:"missing,omitempty"`
}

// HasAllPrices reports whether every requested item resolved to a positive price
func (p PriceSet) HasAllPrices() bool {
	return len(p.Missing) == 0
}

// Get returns the resolved price of an item, 0 when unknown
func (p PriceSet) Get(itemID string) float64 {
	return p.Prices[itemID].Price
}

// ResolveAll resolves every item id with the same selector and side.
// Duplicate ids are resolved once; Missing keeps first-seen order.
func (r *Resolver) ResolveAll(book *Book, itemIDs []string, sel domain.CitySelector, side domain.Side) PriceSet {
	set := PriceSet{Prices: make(map[string]Resolution, len(itemIDs))}
	for _, id := range itemIDs {
		if _, seen := set.Prices[id]; seen {
			continue
		}
		res := r.Resolve(book, id, sel, side)
		set.Prices[id] = res
		if !res.Found() {
			set.Missing = append(set.Missing, id)
		}
	}
	return set
}
