package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details for security reasons.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidQueryParam = "Invalid %s query parameter"

	// Market error messages
	ErrMsgGetPricesFailed   = "Failed to resolve prices"
	ErrMsgGetHistoryFailed  = "Failed to fetch price history"
	ErrMsgRefreshFailed     = "Failed to refresh market data"
	ErrMsgRefreshNotEnabled = "Market refresh is not available"
	ErrMsgTooManyItems      = "Too many items requested (max %d)"

	// Engine error messages
	ErrMsgBonusFailed    = "Failed to calculate production bonus"
	ErrMsgEstimateFailed = "Failed to estimate craft"
	ErrMsgRouteFailed    = "Failed to evaluate routes"
	ErrMsgPlanFailed     = "Failed to plan routes"
)

// Success messages for API responses
const (
	MsgRefreshLanded     = "Market snapshot refreshed"
	MsgRefreshSuperseded = "A newer market snapshot landed first"
	MsgRefreshFailed     = "Market fetch failed, previous snapshot kept"
	MsgNothingToRefresh  = "No items to refresh"
)

// Request limits
const (
	// MaxPriceItems bounds the item list of a single price lookup
	MaxPriceItems = 200
	// MaxRoutes bounds the routes of a single evaluate or plan request
	MaxRoutes = 500
)

// Query parameter names
const (
	QueryParamItem     = "item"
	QueryParamCity     = "city"
	QueryParamCities   = "cities"
	QueryParamSide     = "side"
	QueryParamQuality  = "quality"
	QueryParamMode     = "mode"
	QueryParamCategory = "category"

	// SellModeInstant selects buy orders when pricing the sell side
	SellModeInstant = "instant"
)
