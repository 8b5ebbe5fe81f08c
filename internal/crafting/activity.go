package crafting

import (
	"fmt"

	"github.com/osse101/CraftEconomy_Go/internal/bonus"
	"github.com/osse101/CraftEconomy_Go/internal/domain"
	"github.com/osse101/CraftEconomy_Go/internal/focus"
)

// Activity carries the per-category constants that differ between crafting tools
type Activity struct {
	Category       domain.Category `json:"category"`
	SpecialtyBonus float64         `json:"specialty_bonus"`
	FocusBonus     float64         `json:"focus_bonus"`

	MasteryFCEPerLevel float64 `json:"mastery_fce_per_level"`
	SpecUniqueFCE      float64 `json:"spec_unique_fce"`
	SpecMutualFCE      float64 `json:"spec_mutual_fce"`
}

// DefaultActivities returns the presets for every category
func DefaultActivities() map[domain.Category]Activity {
	craft := func(c domain.Category) Activity {
		return Activity{
			Category:           c,
			SpecialtyBonus:     CraftSpecialtyBonus,
			FocusBonus:         bonus.DefaultFocusBonus,
			MasteryFCEPerLevel: focus.DefaultMasteryFCEPerLevel,
			SpecUniqueFCE:      DefaultSpecUniqueFCE,
			SpecMutualFCE:      DefaultSpecMutualFCE,
		}
	}

	refining := craft(domain.CategoryRefining)
	refining.SpecialtyBonus = RefiningSpecialtyBonus

	return map[domain.Category]Activity{
		domain.CategoryGear:     craft(domain.CategoryGear),
		domain.CategoryFood:     craft(domain.CategoryFood),
		domain.CategoryPotion:   craft(domain.CategoryPotion),
		domain.CategoryRefining: refining,
	}
}

// ActivityFor looks up the preset for a category
func ActivityFor(activities map[domain.Category]Activity, c domain.Category) (Activity, error) {
	a, ok := activities[c]
	if !ok {
		return Activity{}, fmt.Errorf("%w: %q", domain.ErrUnknownCategory, c)
	}
	return a, nil
}

// FocusParameters builds the FCE inputs for a character's levels in this activity
func (a Activity) FocusParameters(masteryLevel, specLevel int) domain.FocusParameters {
	return domain.FocusParameters{
		MasteryLevel:  masteryLevel,
		SpecLevel:     specLevel,
		SpecUniqueFCE: a.SpecUniqueFCE,
		SpecMutualFCE: a.SpecMutualFCE,
		// Mutual levels are not tracked per character yet
		MutualSpecLevels: 0,
	}
}

// FocusEngine returns an engine configured with this activity's mastery constant
func (a Activity) FocusEngine() *focus.Engine {
	return focus.NewEngine(focus.Config{MasteryFCEPerLevel: a.MasteryFCEPerLevel})
}
