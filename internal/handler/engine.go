package handler

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/osse101/CraftEconomy_Go/internal/bonus"
	"github.com/osse101/CraftEconomy_Go/internal/crafting"
	"github.com/osse101/CraftEconomy_Go/internal/domain"
	"github.com/osse101/CraftEconomy_Go/internal/focus"
)

// RecipeLookup finds recipes by id
type RecipeLookup interface {
	GetRecipe(ctx context.Context, id string) (domain.Recipe, error)
}

// CharacterProvider reads character progression
type CharacterProvider interface {
	GetCharacter(ctx context.Context, id string) (*domain.Character, error)
}

// LocationRequest describes the crafting station in a request body
type LocationRequest struct {
	Kind string `json:"kind" validate:"location"`
	City string `json:"city" validate:"city"`
	// Out-of-range levels are clamped by the calculator
	ZoneQuality  int `json:"zone_quality" validate:"gte=0"`
	HideoutPower int `json:"hideout_power" validate:"gte=0"`
}

func (l LocationRequest) toLocation() (bonus.Location, error) {
	kind, err := bonus.ParseLocationKind(l.Kind)
	if err != nil {
		return bonus.Location{}, err
	}
	loc := bonus.Location{Kind: kind, ZoneQuality: l.ZoneQuality, HideoutPower: l.HideoutPower}
	if l.City != "" {
		if loc.City, err = domain.ParseCity(l.City); err != nil {
			return bonus.Location{}, err
		}
	}
	return loc, nil
}

// BonusRequest asks for a production bonus breakdown.
// RecipeID supplies the category and bonus city; explicit fields are used otherwise.
type BonusRequest struct {
	Location  LocationRequest `json:"location"`
	RecipeID  string          `json:"recipe_id"`
	Category  string          `json:"category" validate:"category"`
	BonusCity string          `json:"bonus_city" validate:"city"`
	// SpecialtyBonus overrides the category preset when set
	SpecialtyBonus *float64 `json:"specialty_bonus,omitempty" validate:"omitempty,gte=0,lte=1"`
	UseFocus       bool     `json:"use_focus"`
	Daily          string   `json:"daily" validate:"daily"`
}

// HandleBonus calculates the production bonus and resource return rate
// @Summary Calculate production bonus
// @Description Stack location, specialty, focus and daily bonuses and convert the total to a resource return rate
// @Tags engine
// @Accept json
// @Produce json
// @Param request body BonusRequest true "Bonus inputs"
// @Success 200 {object} domain.ProductionBonusBreakdown
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /bonus [post]
func HandleBonus(calc *bonus.Calculator, activities map[domain.Category]crafting.Activity, recipes RecipeLookup) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req BonusRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Production bonus"); err != nil {
			return
		}

		in, err := buildBonusInput(r.Context(), req, activities, recipes)
		if err != nil {
			respondServiceError(w, r, ErrMsgBonusFailed, err)
			return
		}

		breakdown, err := calc.Calculate(in)
		if err != nil {
			respondServiceError(w, r, ErrMsgBonusFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, breakdown)
	}
}

func buildBonusInput(ctx context.Context, req BonusRequest, activities map[domain.Category]crafting.Activity, recipes RecipeLookup) (bonus.Input, error) {
	loc, err := req.Location.toLocation()
	if err != nil {
		return bonus.Input{}, err
	}
	daily, err := bonus.ParseDailyBonus(req.Daily)
	if err != nil {
		return bonus.Input{}, err
	}

	category := domain.Category(strings.ToLower(req.Category))
	var bonusCity domain.City
	if req.BonusCity != "" {
		if bonusCity, err = domain.ParseCity(req.BonusCity); err != nil {
			return bonus.Input{}, err
		}
	}
	if req.RecipeID != "" {
		recipe, err := recipes.GetRecipe(ctx, req.RecipeID)
		if err != nil {
			return bonus.Input{}, err
		}
		category = recipe.Category
		bonusCity = recipe.BonusCity
	}

	in := bonus.Input{Location: loc, BonusCity: bonusCity, UseFocus: req.UseFocus, Daily: daily}
	if category != "" {
		activity, err := crafting.ActivityFor(activities, category)
		if err != nil {
			return bonus.Input{}, err
		}
		in.SpecialtyBonus = activity.SpecialtyBonus
		in.FocusBonus = activity.FocusBonus
	}
	if req.SpecialtyBonus != nil {
		in.SpecialtyBonus = *req.SpecialtyBonus
	}
	return in, nil
}

// FocusRequest asks for the effective focus cost of one craft.
// With RecipeID the base focus and category come from the recipe; CharacterID requires a recipe.
type FocusRequest struct {
	RecipeID    string  `json:"recipe_id"`
	BaseFocus   float64 `json:"base_focus" validate:"gte=0"`
	Category    string  `json:"category" validate:"category"`
	CharacterID string  `json:"character_id"`
	// Levels are clamped to their valid range
	MasteryLevel     int      `json:"mastery_level"`
	SpecLevel        int      `json:"spec_level"`
	MutualSpecLevels int      `json:"mutual_spec_levels" validate:"gte=0"`
	SpecUniqueFCE    *float64 `json:"spec_unique_fce,omitempty" validate:"omitempty,gte=0"`
	SpecMutualFCE    *float64 `json:"spec_mutual_fce,omitempty" validate:"omitempty,gte=0"`
}

// HandleFocus evaluates the focus cost efficiency curve
// @Summary Calculate focus cost
// @Description Apply focus cost efficiency from mastery and specialization levels
// @Tags engine
// @Accept json
// @Produce json
// @Param request body FocusRequest true "Focus inputs"
// @Success 200 {object} focus.Result
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /focus [post]
func HandleFocus(activities map[domain.Category]crafting.Activity, recipes RecipeLookup, characters CharacterProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req FocusRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Focus cost"); err != nil {
			return
		}

		result, err := evaluateFocus(r.Context(), req, activities, recipes, characters)
		if err != nil {
			respondServiceError(w, r, "Focus cost", err)
			return
		}
		respondJSON(w, http.StatusOK, result)
	}
}

func evaluateFocus(ctx context.Context, req FocusRequest, activities map[domain.Category]crafting.Activity, recipes RecipeLookup, characters CharacterProvider) (focus.Result, error) {
	category := domain.Category(strings.ToLower(req.Category))
	baseFocus := req.BaseFocus
	mastery, spec := req.MasteryLevel, req.SpecLevel

	var recipe *domain.Recipe
	if req.RecipeID != "" {
		found, err := recipes.GetRecipe(ctx, req.RecipeID)
		if err != nil {
			return focus.Result{}, err
		}
		recipe = &found
		category = found.Category
		if baseFocus == 0 {
			baseFocus = found.BaseFocus
		}
	}
	if category == "" {
		category = domain.CategoryGear
	}
	activity, err := crafting.ActivityFor(activities, category)
	if err != nil {
		return focus.Result{}, err
	}

	if req.CharacterID != "" {
		if recipe == nil {
			return focus.Result{}, fmt.Errorf("%w: character_id requires recipe_id", domain.ErrInvalidInput)
		}
		char, err := characters.GetCharacter(ctx, req.CharacterID)
		if err != nil {
			return focus.Result{}, err
		}
		mastery = char.MasteryLevel(recipe.MasteryID)
		spec = char.SpecLevel(recipe.SpecID)
	}

	params := activity.FocusParameters(mastery, spec)
	params.MutualSpecLevels = req.MutualSpecLevels
	if req.SpecUniqueFCE != nil {
		params.SpecUniqueFCE = *req.SpecUniqueFCE
	}
	if req.SpecMutualFCE != nil {
		params.SpecMutualFCE = *req.SpecMutualFCE
	}
	return activity.FocusEngine().Evaluate(baseFocus, params), nil
}
