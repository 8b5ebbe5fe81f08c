package domain

// ProductionBonusBreakdown holds the named production bonus components.
// Total is always the sum of the components and RRR is derived from Total.
type ProductionBonusBreakdown struct {
	Base      float64 `json:"base"`
	Zone      float64 `json:"zone"`
	Hideout   float64 `json:"hideout"`
	Specialty float64 `json:"specialty"`
	Focus     float64 `json:"focus"`
	Daily     float64 `json:"daily"`
	Island    float64 `json:"island"`
	Total     float64 `json:"total"`
	RRR       float64 `json:"rrr"`
}

// CraftResult is derived per craft and never persisted.
// HasPrices is false when any required price was missing; profit figures are then unreliable.
type CraftResult struct {
	MaterialCost    float64  `json:"material_cost"`
	ArtifactCost    float64  `json:"artifact_cost"`
	StationFee      float64  `json:"station_fee"`
	TotalCost       float64  `json:"total_cost"`
	Revenue         float64  `json:"revenue"`
	Profit          float64  `json:"profit"`
	FocusCost       float64  `json:"focus_cost"`
	ProfitPerFocus  float64  `json:"profit_per_focus"`
	MarginOnRevenue float64  `json:"margin_on_revenue"`
	ReturnOnCost    float64  `json:"return_on_cost"`
	HasPrices       bool     `json:"has_prices"`
	MissingPrices   []string `json:"missing_prices,omitempty"`

	Quantity     int     `json:"quantity"`
	BatchCost    float64 `json:"batch_cost"`
	BatchRevenue float64 `json:"batch_revenue"`
	BatchProfit  float64 `json:"batch_profit"`
	BatchFocus   float64 `json:"batch_focus"`
}
