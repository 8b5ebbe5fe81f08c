package crafting

// Activity defaults
const (
	CraftSpecialtyBonus    = 0.15
	RefiningSpecialtyBonus = 0.40

	DefaultSpecUniqueFCE = 250.0
	DefaultSpecMutualFCE = 30.0
)

// Recipe configuration
const (
	ConfigFileRecipes   = "recipes.json"
	ConfigSchemaVersion = "1.0"
	PercentMultiplier   = 100.0
)

// Log messages
const (
	LogMsgRecipesLoaded    = "Recipe catalog loaded"
	LogMsgEstimateComputed = "Craft estimate computed"
	LogMsgMissingPrices    = "Craft estimate has missing prices"
)
