package crafting

import (
	"github.com/osse101/CraftEconomy_Go/internal/domain"
	"github.com/osse101/CraftEconomy_Go/internal/utils"
)

// CraftInput is everything needed to price one recipe.
// Prices are keyed by item id; a missing or non-positive price means no data.
type CraftInput struct {
	Recipe domain.Recipe
	Prices map[string]float64
	RRR    float64
	// EnchantMultiplier approximates enchanted material requirements from the base recipe; 0 means 1
	EnchantMultiplier float64
	// Quantity is the number of crafts in the batch; 0 means 1
	Quantity int
	// StationFee is the fee for the whole batch
	StationFee float64
	// FocusCost is the effective focus spent per craft, 0 when crafting without focus
	FocusCost    float64
	JournalBonus float64
	// Overrides replace resolved prices for any item id, including the output
	Overrides map[string]float64
}

// price returns the override if set, else the resolved price. Invalid values count as missing.
func (in CraftInput) price(itemID string) float64 {
	if v, ok := in.Overrides[itemID]; ok {
		if v = utils.SafeFloat(v, 0); v > 0 {
			return v
		}
	}
	return utils.NonNegative(utils.SafeFloat(in.Prices[itemID], 0))
}

// Calculate prices one craft and the whole batch.
// Artifacts are not reduced by the return rate because they are never returned.
func Calculate(in CraftInput) domain.CraftResult {
	r := in.Recipe
	qty := in.Quantity
	if qty < 1 {
		qty = 1
	}
	enchant := utils.SafeFloat(in.EnchantMultiplier, 0)
	if enchant <= 0 {
		enchant = 1
	}
	rrr := utils.Clamp(utils.SafeFloat(in.RRR, 0), 0, 1)

	var missing []string
	gross := 0.0
	for _, ing := range r.Ingredients {
		p := in.price(ing.ItemID)
		if p <= 0 {
			missing = append(missing, ing.ItemID)
			continue
		}
		gross += p * float64(ing.Quantity)
	}

	artifactCost := 0.0
	if r.HasArtifact() {
		p := in.price(r.ArtifactID)
		if p <= 0 {
			missing = append(missing, r.ArtifactID)
		}
		artifactCost = p * float64(r.ArtifactQty)
	}

	sellPrice := in.price(r.OutputID())
	if sellPrice <= 0 {
		missing = append(missing, r.OutputID())
	}

	res := domain.CraftResult{
		MaterialCost: gross * (1 - rrr) * enchant,
		ArtifactCost: artifactCost,
		StationFee:   utils.NonNegative(utils.SafeFloat(in.StationFee, 0)) / float64(qty),
		FocusCost:    utils.NonNegative(utils.SafeFloat(in.FocusCost, 0)),
		Quantity:     qty,
	}
	res.TotalCost = res.MaterialCost + res.ArtifactCost + res.StationFee
	res.Revenue = sellPrice*float64(r.Outputs()) + utils.NonNegative(utils.SafeFloat(in.JournalBonus, 0))
	res.Profit = res.Revenue - res.TotalCost

	if res.FocusCost > 0 {
		res.ProfitPerFocus = utils.SafeDiv(res.Profit, res.FocusCost)
	}
	res.MarginOnRevenue = utils.SafeDiv(res.Profit, res.Revenue) * PercentMultiplier
	res.ReturnOnCost = utils.SafeDiv(res.Profit, res.TotalCost) * PercentMultiplier

	res.HasPrices = len(missing) == 0
	res.MissingPrices = missing

	n := float64(qty)
	res.BatchCost = res.TotalCost * n
	res.BatchRevenue = res.Revenue * n
	res.BatchProfit = res.Profit * n
	res.BatchFocus = res.FocusCost * n

	return res
}
