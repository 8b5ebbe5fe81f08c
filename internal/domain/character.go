package domain

// Mastery and specialization level bounds
const (
	MaxMasteryLevel = 100
	MaxSpecLevel    = 120
)

// Character is owned by the player-progression subsystem; this service only reads it.
type Character struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	Masteries       map[string]int `json:"masteries"`
	Specializations map[string]int `json:"specializations"`
}

// MasteryLevel returns the level of a mastery, clamped to the valid range
func (c *Character) MasteryLevel(id string) int {
	if c == nil {
		return 0
	}
	return clampLevel(c.Masteries[id], MaxMasteryLevel)
}

// SpecLevel returns the level of a specialization, clamped to the valid range
func (c *Character) SpecLevel(id string) int {
	if c == nil {
		return 0
	}
	return clampLevel(c.Specializations[id], MaxSpecLevel)
}

func clampLevel(level, max int) int {
	if level < 0 {
		return 0
	}
	if level > max {
		return max
	}
	return level
}

// FocusParameters are the inputs of the focus cost efficiency curve.
// MutualSpecLevels is always zero at current call sites; see DESIGN.md.
type FocusParameters struct {
	MasteryLevel     int     `json:"mastery_level"`
	SpecLevel        int     `json:"spec_level"`
	SpecUniqueFCE    float64 `json:"spec_unique_fce"`
	SpecMutualFCE    float64 `json:"spec_mutual_fce"`
	MutualSpecLevels int     `json:"mutual_spec_levels"`
}
