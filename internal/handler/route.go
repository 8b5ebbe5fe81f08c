package handler

import (
	"net/http"

	"github.com/osse101/CraftEconomy_Go/internal/route"
)

// RouteRequest carries candidate trade routes
type RouteRequest struct {
	Routes   []route.Route `json:"routes" validate:"required,min=1,max=500"`
	Capacity float64       `json:"capacity" validate:"gte=0,lte=1000000"`
	// Budget is only used when planning; 0 means unlimited
	Budget float64 `json:"budget" validate:"gte=0,lte=1000000000000"`
}

// RouteEvaluationResponse lists per-route economics in request order
type RouteEvaluationResponse struct {
	Evaluations []route.Evaluation `json:"evaluations"`
}

// HandleRouteEvaluate computes profit per unit and per weight for each route
// @Summary Evaluate trade routes
// @Tags route
// @Accept json
// @Produce json
// @Param request body RouteRequest true "Routes and capacity"
// @Success 200 {object} RouteEvaluationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /route [post]
func HandleRouteEvaluate(svc route.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RouteRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Route evaluate"); err != nil {
			return
		}

		evals, err := svc.Evaluate(r.Context(), req.Routes, req.Capacity)
		if err != nil {
			respondServiceError(w, r, ErrMsgRouteFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, RouteEvaluationResponse{Evaluations: evals})
	}
}

// HandleRoutePlan fills a carry capacity with the most profitable routes
// @Summary Plan a trade run
// @Tags route
// @Accept json
// @Produce json
// @Param request body RouteRequest true "Routes, capacity and budget"
// @Success 200 {object} route.Plan
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /route/plan [post]
func HandleRoutePlan(svc route.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RouteRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Route plan"); err != nil {
			return
		}

		plan, err := svc.Plan(r.Context(), route.PlanRequest{Routes: req.Routes, Capacity: req.Capacity, Budget: req.Budget})
		if err != nil {
			respondServiceError(w, r, ErrMsgPlanFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, plan)
	}
}
