package focus

import (
	"math"

	"github.com/osse101/CraftEconomy_Go/internal/domain"
	"github.com/osse101/CraftEconomy_Go/internal/utils"
)

// HalvingFCE is the amount of focus cost efficiency that halves a focus cost
const HalvingFCE = 10000.0

// DefaultMasteryFCEPerLevel is the FCE granted per mastery level
const DefaultMasteryFCEPerLevel = 30.0

// Config holds the constants of the FCE curve
type Config struct {
	MasteryFCEPerLevel float64
}

// DefaultConfig returns the observed in-game constants
func DefaultConfig() Config {
	return Config{MasteryFCEPerLevel: DefaultMasteryFCEPerLevel}
}

// Result is an evaluated focus cost
type Result struct {
	TotalFCE  float64 `json:"total_fce"`
	BaseFocus float64 `json:"base_focus"`
	FocusCost float64 `json:"focus_cost"`
	// Reduction is the fraction of base focus saved, in [0, 1)
	Reduction float64 `json:"reduction"`
}

// Engine computes effective focus costs
type Engine struct {
	cfg Config
}

// NewEngine creates an engine with the given constants
func NewEngine(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

// TotalFCE sums mastery, specialization and mutual specialization efficiency.
// Levels are clamped to their valid range and the sum is never negative.
func (e *Engine) TotalFCE(p domain.FocusParameters) float64 {
	mastery := float64(utils.ClampInt(p.MasteryLevel, 0, domain.MaxMasteryLevel))
	spec := float64(utils.ClampInt(p.SpecLevel, 0, domain.MaxSpecLevel))
	mutual := float64(p.MutualSpecLevels)
	if mutual < 0 {
		mutual = 0
	}

	total := mastery*utils.SafeFloat(e.cfg.MasteryFCEPerLevel, 0) +
		spec*utils.SafeFloat(p.SpecUniqueFCE, 0) +
		mutual*utils.SafeFloat(p.SpecMutualFCE, 0)
	return utils.NonNegative(total)
}

// Cost halves the base focus every HalvingFCE points of efficiency.
// Negative efficiency is treated as zero so the cost never exceeds the base.
func Cost(baseFocus, fce float64) float64 {
	baseFocus = utils.NonNegative(utils.SafeFloat(baseFocus, 0))
	fce = utils.NonNegative(utils.SafeFloat(fce, 0))
	return baseFocus * math.Pow(0.5, fce/HalvingFCE)
}

// FocusCost is shorthand for Cost(baseFocus, TotalFCE(p))
func (e *Engine) FocusCost(baseFocus float64, p domain.FocusParameters) float64 {
	return Cost(baseFocus, e.TotalFCE(p))
}

// Evaluate returns the efficiency, effective cost and reduction for one action
func (e *Engine) Evaluate(baseFocus float64, p domain.FocusParameters) Result {
	fce := e.TotalFCE(p)
	cost := Cost(baseFocus, fce)
	base := utils.NonNegative(utils.SafeFloat(baseFocus, 0))
	return Result{
		TotalFCE:  fce,
		BaseFocus: base,
		FocusCost: cost,
		Reduction: utils.SafeDiv(base-cost, base),
	}
}
