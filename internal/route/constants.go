package route

import "math"

// Defaults
const (
	// DefaultTaxRate is the market tax taken from every sale
	DefaultTaxRate = 0.04

	// MaxUnitCount caps units per route so unit counts fit any int
	MaxUnitCount = math.MaxInt32
)

// DepthWarning accompanies every plan: listed volume is not known to the planner
const DepthWarning = "plan ignores market depth; profits are an upper bound, not a guarantee"

// Log messages
const (
	LogMsgPlanComputed = "Route plan computed"
)
