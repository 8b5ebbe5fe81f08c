package bonus

// Production bonus defaults, as fractions of base output
const (
	DefaultRoyalCityBase = 0.18
	DefaultIslandPenalty = -0.18
	DefaultFocusBonus    = 0.59

	DailyBronzeBonus = 0.05
	DailySilverBonus = 0.10
	DailyGoldBonus   = 0.20

	MinZoneQuality  = 1
	MaxZoneQuality  = 6
	MinHideoutPower = 1
	MaxHideoutPower = 9
)
