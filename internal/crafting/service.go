package crafting

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/osse101/CraftEconomy_Go/internal/bonus"
	"github.com/osse101/CraftEconomy_Go/internal/domain"
	"github.com/osse101/CraftEconomy_Go/internal/focus"
	"github.com/osse101/CraftEconomy_Go/internal/logger"
	"github.com/osse101/CraftEconomy_Go/internal/metrics"
	"github.com/osse101/CraftEconomy_Go/internal/pricing"
)

// PriceSource provides the latest market snapshot as a price book
type PriceSource interface {
	CurrentBook() (*pricing.Book, error)
}

// CharacterProvider reads character progression owned by another subsystem
type CharacterProvider interface {
	GetCharacter(ctx context.Context, id string) (*domain.Character, error)
}

// EstimateRequest describes one craft estimate
type EstimateRequest struct {
	RecipeID string
	BuyCity  domain.CitySelector
	SellCity domain.CitySelector
	Location bonus.Location
	UseFocus bool
	Daily    bonus.DailyBonus

	// CharacterID selects a character whose levels drive the focus cost
	CharacterID string
	// MasteryLevel and SpecLevel are used when no character is given
	MasteryLevel int
	SpecLevel    int

	Quantity          int
	StationFee        float64
	EnchantMultiplier float64
	JournalBonus      float64
	Overrides         map[string]float64
}

// Estimate is a craft result with everything that produced it
type Estimate struct {
	Recipe            domain.Recipe                   `json:"recipe"`
	Bonus             domain.ProductionBonusBreakdown `json:"bonus"`
	Focus             focus.Result                    `json:"focus"`
	Prices            map[string]pricing.Resolution   `json:"prices"`
	Result            domain.CraftResult              `json:"result"`
	SnapshotAvailable bool                            `json:"snapshot_available"`
}

// Service defines the interface for crafting estimates
type Service interface {
	Estimate(ctx context.Context, req EstimateRequest) (*Estimate, error)
	GetRecipe(ctx context.Context, id string) (domain.Recipe, error)
	ListRecipes(ctx context.Context, category domain.Category) []domain.Recipe
}

type service struct {
	catalog    *Catalog
	activities map[domain.Category]Activity
	prices     PriceSource
	characters CharacterProvider
	resolver   *pricing.Resolver
	bonus      *bonus.Calculator
}

// NewService creates a new crafting service
func NewService(catalog *Catalog, activities map[domain.Category]Activity, prices PriceSource, characters CharacterProvider, resolver *pricing.Resolver, calc *bonus.Calculator) Service {
	return &service{
		catalog:    catalog,
		activities: activities,
		prices:     prices,
		characters: characters,
		resolver:   resolver,
		bonus:      calc,
	}
}

func (s *service) GetRecipe(ctx context.Context, id string) (domain.Recipe, error) {
	return s.catalog.Get(id)
}

func (s *service) ListRecipes(ctx context.Context, category domain.Category) []domain.Recipe {
	return s.catalog.List(category)
}

// Estimate resolves prices from the current snapshot and prices the recipe.
// A missing snapshot is not an error: the result reports missing prices instead.
func (s *service) Estimate(ctx context.Context, req EstimateRequest) (*Estimate, error) {
	log := logger.FromContext(ctx)

	recipe, err := s.catalog.Get(req.RecipeID)
	if err != nil {
		return nil, err
	}
	activity, err := ActivityFor(s.activities, recipe.Category)
	if err != nil {
		return nil, err
	}

	book, err := s.prices.CurrentBook()
	if err != nil && !errors.Is(err, domain.ErrNoSnapshot) {
		return nil, fmt.Errorf("failed to load market snapshot: %w", err)
	}

	breakdown, err := s.bonus.Calculate(bonus.Input{
		Location:       req.Location,
		BonusCity:      recipe.BonusCity,
		SpecialtyBonus: activity.SpecialtyBonus,
		UseFocus:       req.UseFocus,
		FocusBonus:     activity.FocusBonus,
		Daily:          req.Daily,
	})
	if err != nil {
		return nil, err
	}

	params, err := s.focusParameters(ctx, req, recipe, activity)
	if err != nil {
		return nil, err
	}
	focusResult := activity.FocusEngine().Evaluate(recipe.BaseFocus, params)

	resolutions := s.resolvePrices(book, recipe, req.BuyCity, req.SellCity)
	prices := make(map[string]float64, len(resolutions))
	for id, r := range resolutions {
		prices[id] = r.Price
	}

	in := CraftInput{
		Recipe:            recipe,
		Prices:            prices,
		RRR:               breakdown.RRR,
		EnchantMultiplier: req.EnchantMultiplier,
		Quantity:          req.Quantity,
		StationFee:        req.StationFee,
		JournalBonus:      req.JournalBonus,
		Overrides:         req.Overrides,
	}
	if req.UseFocus {
		in.FocusCost = focusResult.FocusCost
	}
	result := Calculate(in)

	metrics.CraftEstimatesTotal.WithLabelValues(string(recipe.Category), strconv.FormatBool(result.HasPrices)).Inc()
	if !result.HasPrices {
		log.Debug(LogMsgMissingPrices, "recipe", recipe.ID, "missing", result.MissingPrices)
	}
	log.Debug(LogMsgEstimateComputed, "recipe", recipe.ID, "profit", result.Profit, "rrr", breakdown.RRR)

	return &Estimate{
		Recipe:            recipe,
		Bonus:             breakdown,
		Focus:             focusResult,
		Prices:            resolutions,
		Result:            result,
		SnapshotAvailable: book != nil,
	}, nil
}

func (s *service) focusParameters(ctx context.Context, req EstimateRequest, recipe domain.Recipe, activity Activity) (domain.FocusParameters, error) {
	if req.CharacterID == "" {
		return activity.FocusParameters(req.MasteryLevel, req.SpecLevel), nil
	}
	if s.characters == nil {
		return domain.FocusParameters{}, fmt.Errorf("%w: %s", domain.ErrCharacterNotFound, req.CharacterID)
	}
	char, err := s.characters.GetCharacter(ctx, req.CharacterID)
	if err != nil {
		return domain.FocusParameters{}, err
	}
	return activity.FocusParameters(char.MasteryLevel(recipe.MasteryID), char.SpecLevel(recipe.SpecID)), nil
}

// resolvePrices buys ingredients and artifacts at buyCity and sells the output at sellCity.
// Selling at the Black Market fills buy orders.
func (s *service) resolvePrices(book *pricing.Book, recipe domain.Recipe, buyCity, sellCity domain.CitySelector) map[string]pricing.Resolution {
	buyIDs := make([]string, 0, len(recipe.Ingredients)+1)
	for _, ing := range recipe.Ingredients {
		buyIDs = append(buyIDs, ing.ItemID)
	}
	if recipe.HasArtifact() {
		buyIDs = append(buyIDs, recipe.ArtifactID)
	}
	set := s.resolver.ResolveAll(book, buyIDs, buyCity, domain.SideBuy)

	seller := s.resolver
	if !sellCity.IsAuto() && sellCity.City == domain.CityBlackMarket {
		seller = s.resolver.WithSellMode(pricing.InstantSell)
	}
	set.Prices[recipe.OutputID()] = seller.Resolve(book, recipe.OutputID(), sellCity, domain.SideSell)
	return set.Prices
}
