package bonus

import (
	"fmt"
	"strings"

	"github.com/osse101/CraftEconomy_Go/internal/domain"
	"github.com/osse101/CraftEconomy_Go/internal/utils"
)

// LocationKind is where the crafting station stands. The kinds are mutually exclusive.
type LocationKind string

const (
	LocationCity    LocationKind = "city"
	LocationHideout LocationKind = "hideout"
	LocationIsland  LocationKind = "island"
)

// ParseLocationKind parses a location kind, defaulting to city when empty
func ParseLocationKind(s string) (LocationKind, error) {
	switch LocationKind(strings.ToLower(strings.TrimSpace(s))) {
	case "", LocationCity:
		return LocationCity, nil
	case LocationHideout:
		return LocationHideout, nil
	case LocationIsland:
		return LocationIsland, nil
	}
	return "", fmt.Errorf("%w: %q", domain.ErrUnknownLocationKind, s)
}

// DailyBonus is the daily production bonus tier
type DailyBonus string

const (
	DailyNone   DailyBonus = "none"
	DailyBronze DailyBonus = "bronze"
	DailySilver DailyBonus = "silver"
	DailyGold   DailyBonus = "gold"
)

// ParseDailyBonus parses a tier name, defaulting to none when empty
func ParseDailyBonus(s string) (DailyBonus, error) {
	switch DailyBonus(strings.ToLower(strings.TrimSpace(s))) {
	case "", DailyNone:
		return DailyNone, nil
	case DailyBronze:
		return DailyBronze, nil
	case DailySilver:
		return DailySilver, nil
	case DailyGold:
		return DailyGold, nil
	}
	return "", fmt.Errorf("%w: daily bonus %q", domain.ErrInvalidInput, s)
}

// Tables holds every bonus constant the calculator uses
type Tables struct {
	RoyalCityBase float64
	IslandPenalty float64
	FocusBonus    float64
	Daily         map[DailyBonus]float64

	// HideoutZoneQuality is indexed by zone quality 1..6
	HideoutZoneQuality []float64
	// HideoutPower is indexed by hideout power level 1..9
	HideoutPower []float64

	RoyalCities []domain.City
	// RoyalEquivalent cities receive the royal base bonus but no city specialty
	RoyalEquivalent []domain.City
}

// DefaultTables returns the observed in-game values
func DefaultTables() Tables {
	return Tables{
		RoyalCityBase: DefaultRoyalCityBase,
		IslandPenalty: DefaultIslandPenalty,
		FocusBonus:    DefaultFocusBonus,
		Daily: map[DailyBonus]float64{
			DailyNone:   0,
			DailyBronze: DailyBronzeBonus,
			DailySilver: DailySilverBonus,
			DailyGold:   DailyGoldBonus,
		},
		HideoutZoneQuality: []float64{0, 0.03, 0.06, 0.09, 0.12, 0.15},
		HideoutPower:       []float64{0, 0.02, 0.04, 0.06, 0.08, 0.10, 0.12, 0.14, 0.16},
		RoyalCities:        append([]domain.City{}, domain.RoyalCities...),
		RoyalEquivalent:    []domain.City{domain.CityCaerleon, domain.CityBrecilien},
	}
}

// Location describes the crafting station
type Location struct {
	Kind         LocationKind `json:"kind"`
	City         domain.City  `json:"city,omitempty"`
	ZoneQuality  int          `json:"zone_quality,omitempty"`
	HideoutPower int          `json:"hideout_power,omitempty"`
}

// Input is everything that contributes to the production bonus
type Input struct {
	Location Location
	// BonusCity is the city granting a specialty bonus for the recipe being crafted
	BonusCity domain.City
	// SpecialtyBonus depends on the activity: crafting and refining differ
	SpecialtyBonus float64
	UseFocus       bool
	// FocusBonus overrides Tables.FocusBonus when positive
	FocusBonus float64
	Daily      DailyBonus
}

// Calculator stacks production bonuses and converts them to a resource return rate
type Calculator struct {
	tables Tables
}

// NewCalculator creates a calculator over the given tables
func NewCalculator(tables Tables) *Calculator {
	return &Calculator{tables: tables}
}

// Tables returns the tables the calculator was built with
func (c *Calculator) Tables() Tables {
	return c.tables
}

// Calculate recomputes the full breakdown from scratch.
// An unknown location kind is an error; every other input degrades to zero bonus.
func (c *Calculator) Calculate(in Input) (domain.ProductionBonusBreakdown, error) {
	var b domain.ProductionBonusBreakdown

	switch in.Location.Kind {
	case LocationCity, "":
		if c.isRoyal(in.Location.City) || c.isRoyalEquivalent(in.Location.City) {
			b.Base = c.tables.RoyalCityBase
		}
		if in.BonusCity != "" && in.Location.City == in.BonusCity {
			b.Specialty = utils.NonNegative(utils.SafeFloat(in.SpecialtyBonus, 0))
		}
	case LocationHideout:
		b.Zone = lookup(c.tables.HideoutZoneQuality, in.Location.ZoneQuality)
		b.Hideout = lookup(c.tables.HideoutPower, in.Location.HideoutPower)
	case LocationIsland:
		b.Island = c.tables.IslandPenalty
	default:
		return b, fmt.Errorf("%w: %q", domain.ErrUnknownLocationKind, in.Location.Kind)
	}

	if in.UseFocus {
		b.Focus = c.tables.FocusBonus
		if fb := utils.SafeFloat(in.FocusBonus, 0); fb > 0 {
			b.Focus = fb
		}
	}
	b.Daily = c.tables.Daily[in.Daily]

	b.Total = b.Base + b.Zone + b.Hideout + b.Specialty + b.Focus + b.Daily + b.Island
	b.RRR = RRR(b.Total)
	return b, nil
}

// RRR converts a total production bonus into a resource return rate.
// Negative totals return nothing and the rate never reaches 1.
func RRR(total float64) float64 {
	return utils.DiminishingReturns(total, 1)
}

func (c *Calculator) isRoyal(city domain.City) bool {
	return containsCity(c.tables.RoyalCities, city)
}

func (c *Calculator) isRoyalEquivalent(city domain.City) bool {
	return containsCity(c.tables.RoyalEquivalent, city)
}

func containsCity(cities []domain.City, city domain.City) bool {
	if city == "" {
		return false
	}
	for _, c := range cities {
		if c == city {
			return true
		}
	}
	return false
}

// lookup reads a 1-based level table, clamping the level into range
func lookup(table []float64, level int) float64 {
	if len(table) == 0 {
		return 0
	}
	return table[utils.ClampInt(level, 1, len(table))-1]
}
