package handler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/CraftEconomy_Go/internal/bonus"
	"github.com/osse101/CraftEconomy_Go/internal/crafting"
	"github.com/osse101/CraftEconomy_Go/internal/domain"
)

// CraftRequest asks for the economics of crafting one recipe
type CraftRequest struct {
	RecipeID string          `json:"recipe_id" validate:"required"`
	BuyCity  string          `json:"buy_city" validate:"cityselector"`
	SellCity string          `json:"sell_city" validate:"cityselector"`
	Location LocationRequest `json:"location"`
	UseFocus bool            `json:"use_focus"`
	Daily    string          `json:"daily" validate:"daily"`

	CharacterID  string `json:"character_id"`
	MasteryLevel int    `json:"mastery_level"`
	SpecLevel    int    `json:"spec_level"`

	Quantity          int                `json:"quantity" validate:"gte=0,lte=100000"`
	StationFee        float64            `json:"station_fee" validate:"gte=0"`
	EnchantMultiplier float64            `json:"enchant_multiplier" validate:"gte=0"`
	JournalBonus      float64            `json:"journal_bonus" validate:"gte=0"`
	Overrides         map[string]float64 `json:"overrides" validate:"omitempty,dive,gte=0"`
}

// RecipesResponse lists recipes
type RecipesResponse struct {
	Recipes []domain.Recipe `json:"recipes"`
	Count   int             `json:"count"`
}

// HandleCraftEstimate prices a recipe against the current snapshot
// @Summary Estimate craft profit
// @Description Price a recipe's materials, resource returns and sale against the current market snapshot
// @Tags craft
// @Accept json
// @Produce json
// @Param request body CraftRequest true "Craft parameters"
// @Success 200 {object} crafting.Estimate
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /craft [post]
func HandleCraftEstimate(svc crafting.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CraftRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Craft estimate"); err != nil {
			return
		}

		estReq, err := req.toEstimateRequest()
		if err != nil {
			respondServiceError(w, r, ErrMsgEstimateFailed, err)
			return
		}

		estimate, err := svc.Estimate(r.Context(), estReq)
		if err != nil {
			respondServiceError(w, r, ErrMsgEstimateFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, estimate)
	}
}

func (req CraftRequest) toEstimateRequest() (crafting.EstimateRequest, error) {
	buy, err := domain.ParseCitySelector(req.BuyCity)
	if err != nil {
		return crafting.EstimateRequest{}, err
	}
	sell, err := domain.ParseCitySelector(req.SellCity)
	if err != nil {
		return crafting.EstimateRequest{}, err
	}
	loc, err := req.Location.toLocation()
	if err != nil {
		return crafting.EstimateRequest{}, err
	}
	daily, err := bonus.ParseDailyBonus(req.Daily)
	if err != nil {
		return crafting.EstimateRequest{}, err
	}
	return crafting.EstimateRequest{
		RecipeID:          req.RecipeID,
		BuyCity:           buy,
		SellCity:          sell,
		Location:          loc,
		UseFocus:          req.UseFocus,
		Daily:             daily,
		CharacterID:       req.CharacterID,
		MasteryLevel:      req.MasteryLevel,
		SpecLevel:         req.SpecLevel,
		Quantity:          req.Quantity,
		StationFee:        req.StationFee,
		EnchantMultiplier: req.EnchantMultiplier,
		JournalBonus:      req.JournalBonus,
		Overrides:         req.Overrides,
	}, nil
}

// HandleListRecipes lists recipes, optionally filtered by ?category=
// @Summary List recipes
// @Tags craft
// @Produce json
// @Param category query string false "Activity category"
// @Success 200 {object} RecipesResponse
// @Failure 400 {object} ErrorResponse
// @Router /recipes [get]
func HandleListRecipes(svc crafting.Service, activities map[domain.Category]crafting.Activity) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category := domain.Category(strings.ToLower(GetOptionalQueryParam(r, QueryParamCategory, "")))
		if category != "" {
			if _, err := crafting.ActivityFor(activities, category); err != nil {
				respondServiceError(w, r, "List recipes", err)
				return
			}
		}
		recipes := svc.ListRecipes(r.Context(), category)
		respondJSON(w, http.StatusOK, RecipesResponse{Recipes: recipes, Count: len(recipes)})
	}
}

// HandleGetRecipe returns one recipe by id
// @Summary Get recipe
// @Tags craft
// @Produce json
// @Param id path string true "Recipe ID"
// @Success 200 {object} domain.Recipe
// @Failure 404 {object} ErrorResponse
// @Router /recipes/{id} [get]
func HandleGetRecipe(svc crafting.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recipe, err := svc.GetRecipe(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			respondServiceError(w, r, "Get recipe", err)
			return
		}
		respondJSON(w, http.StatusOK, recipe)
	}
}
