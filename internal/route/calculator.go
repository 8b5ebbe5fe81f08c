package route

import (
	"math"
	"sort"

	"github.com/osse101/CraftEconomy_Go/internal/domain"
	"github.com/osse101/CraftEconomy_Go/internal/pricing"
	"github.com/osse101/CraftEconomy_Go/internal/utils"
)

// Config holds route pricing constants
type Config struct {
	TaxRate float64
}

// DefaultConfig returns the default route configuration
func DefaultConfig() Config {
	return Config{TaxRate: DefaultTaxRate}
}

// Route is buying an item in one market and selling it in another
type Route struct {
	ItemID   string              `json:"item_id"`
	Weight   float64             `json:"weight"`
	BuyCity  domain.CitySelector `json:"buy_city"`
	SellCity domain.CitySelector `json:"sell_city"`
	// InstantSell fills buy orders instead of listing; always on when selling to the Black Market
	InstantSell bool `json:"instant_sell,omitempty"`
	// Limit caps units when the caller knows the available volume; 0 means no cap
	Limit int `json:"limit,omitempty"`
	// BuyPrice and SellPrice override resolved prices when positive
	BuyPrice  float64 `json:"buy_price,omitempty"`
	SellPrice float64 `json:"sell_price,omitempty"`
}

// Evaluation is the per-unit economics of a route
type Evaluation struct {
	Route           Route       `json:"route"`
	BuyPrice        float64     `json:"buy_price"`
	SellPrice       float64     `json:"sell_price"`
	BuyFrom         domain.City `json:"buy_from,omitempty"`
	SellTo          domain.City `json:"sell_to,omitempty"`
	HasPrices       bool        `json:"has_prices"`
	UnitProfit      float64     `json:"unit_profit"`
	ReturnOnCost    float64     `json:"return_on_cost"`
	ProfitPerWeight float64     `json:"profit_per_weight"`
	// MaxUnits is floor(capacity / weight), further capped by the route limit
	MaxUnits int `json:"max_units"`
}

// Selection is how much of one route a plan carries
type Selection struct {
	Evaluation Evaluation `json:"evaluation"`
	Units      int        `json:"units"`
	Weight     float64    `json:"weight"`
	Cost       float64    `json:"cost"`
	Profit     float64    `json:"profit"`
}

// Plan is a greedy selection of routes under a carry capacity and optional budget
type Plan struct {
	Selections        []Selection  `json:"selections"`
	Skipped           []Evaluation `json:"skipped,omitempty"`
	TotalProfit       float64      `json:"total_profit"`
	TotalCost         float64      `json:"total_cost"`
	TotalWeight       float64      `json:"total_weight"`
	RemainingCapacity float64      `json:"remaining_capacity"`
	RemainingBudget   float64      `json:"remaining_budget,omitempty"`
	// UpperBound is always true: the plan assumes unlimited listed volume
	UpperBound bool   `json:"upper_bound"`
	Warning    string `json:"warning"`
}

// Calculator prices routes against a snapshot
type Calculator struct {
	cfg      Config
	resolver *pricing.Resolver
}

// NewCalculator creates a route calculator
func NewCalculator(cfg Config, resolver *pricing.Resolver) *Calculator {
	cfg.TaxRate = utils.Clamp(utils.SafeFloat(cfg.TaxRate, 0), 0, 1)
	return &Calculator{cfg: cfg, resolver: resolver}
}

// Config returns the calculator configuration
func (c *Calculator) Config() Config {
	return c.cfg
}

// Evaluate prices one route. capacity 0 leaves MaxUnits at the route limit.
func (c *Calculator) Evaluate(book *pricing.Book, r Route, capacity float64) Evaluation {
	ev := Evaluation{Route: r}

	if p := utils.SafeFloat(r.BuyPrice, 0); p > 0 {
		ev.BuyPrice = p
	} else {
		res := c.resolver.Resolve(book, r.ItemID, r.BuyCity, domain.SideBuy)
		ev.BuyPrice, ev.BuyFrom = res.Price, res.City
	}

	if p := utils.SafeFloat(r.SellPrice, 0); p > 0 {
		ev.SellPrice = p
	} else {
		seller := c.resolver
		if r.InstantSell || (!r.SellCity.IsAuto() && r.SellCity.City == domain.CityBlackMarket) {
			seller = c.resolver.WithSellMode(pricing.InstantSell)
		}
		res := seller.Resolve(book, r.ItemID, r.SellCity, domain.SideSell)
		ev.SellPrice, ev.SellTo = res.Price, res.City
	}

	ev.HasPrices = ev.BuyPrice > 0 && ev.SellPrice > 0
	if !ev.HasPrices {
		return ev
	}

	ev.UnitProfit = ev.SellPrice*(1-c.cfg.TaxRate) - ev.BuyPrice
	ev.ReturnOnCost = utils.SafeDiv(ev.UnitProfit, ev.BuyPrice) * 100

	weight := utils.SafeFloat(r.Weight, 0)
	if weight > 0 {
		ev.ProfitPerWeight = ev.UnitProfit / weight
		ev.MaxUnits = MaxUnits(capacity, weight)
	}
	if r.Limit > 0 && (capacity <= 0 || ev.MaxUnits > r.Limit) {
		ev.MaxUnits = r.Limit
	}
	return ev
}

// MaxUnits is floor(capacity / weight), 0 for non-positive inputs
func MaxUnits(capacity, weight float64) int {
	capacity = utils.SafeFloat(capacity, 0)
	weight = utils.SafeFloat(weight, 0)
	if capacity <= 0 || weight <= 0 {
		return 0
	}
	// Tolerate float error so that 3 × 0.1 fits in 0.3
	return unitCount(capacity/weight + 1e-9)
}

// unitCount floors a unit ratio, saturating at MaxUnitCount so huge ratios never wrap
func unitCount(ratio float64) int {
	if math.IsNaN(ratio) || ratio <= 0 {
		return 0
	}
	if ratio >= MaxUnitCount {
		return MaxUnitCount
	}
	return int(math.Floor(ratio))
}

// Plan fills capacity greedily by profit per weight.
// A budget of 0 means unlimited silver. Routes without prices, weight or profit are skipped.
func (c *Calculator) Plan(book *pricing.Book, routes []Route, capacity, budget float64) Plan {
	capacity = utils.NonNegative(utils.SafeFloat(capacity, 0))
	budget = utils.NonNegative(utils.SafeFloat(budget, 0))

	plan := Plan{UpperBound: true, Warning: DepthWarning, RemainingCapacity: capacity}
	if budget > 0 {
		plan.RemainingBudget = budget
	}

	var candidates []Evaluation
	for _, r := range routes {
		ev := c.Evaluate(book, r, capacity)
		if !ev.HasPrices || ev.UnitProfit <= 0 || r.Weight <= 0 || ev.MaxUnits <= 0 {
			plan.Skipped = append(plan.Skipped, ev)
			continue
		}
		candidates = append(candidates, ev)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.ProfitPerWeight != b.ProfitPerWeight {
			return a.ProfitPerWeight > b.ProfitPerWeight
		}
		return a.UnitProfit > b.UnitProfit
	})

	for _, ev := range candidates {
		units := MaxUnits(plan.RemainingCapacity, ev.Route.Weight)
		if ev.Route.Limit > 0 && units > ev.Route.Limit {
			units = ev.Route.Limit
		}
		if budget > 0 {
			if affordable := unitCount(plan.RemainingBudget / ev.BuyPrice); units > affordable {
				units = affordable
			}
		}
		if units <= 0 {
			continue
		}

		sel := Selection{
			Evaluation: ev,
			Units:      units,
			Weight:     float64(units) * ev.Route.Weight,
			Cost:       float64(units) * ev.BuyPrice,
			Profit:     float64(units) * ev.UnitProfit,
		}
		plan.Selections = append(plan.Selections, sel)
		plan.TotalProfit += sel.Profit
		plan.TotalCost += sel.Cost
		plan.TotalWeight += sel.Weight
		plan.RemainingCapacity = utils.NonNegative(plan.RemainingCapacity - sel.Weight)
		if budget > 0 {
			plan.RemainingBudget = utils.NonNegative(plan.RemainingBudget - sel.Cost)
		}
	}

	return plan
}
