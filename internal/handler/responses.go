package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/osse101/CraftEconomy_Go/internal/domain"
	"github.com/osse101/CraftEconomy_Go/internal/logger"
	"github.com/osse101/CraftEconomy_Go/internal/market"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// bufferPool is a pool of bytes.Buffer to reduce allocations during JSON encoding
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 1024))
	},
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		bufferPool.Put(buf)
	}()

	// Encode before writing headers so an encoding failure can still become a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a service failure and writes the mapped user-facing error
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	statusCode, userMsg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if statusCode >= http.StatusInternalServerError {
		log.Error(opName+" failed", "error", err)
	} else {
		log.Warn(opName+" rejected", "error", err)
	}
	respondError(w, statusCode, userMsg)
}

// User-facing error messages for service errors
const (
	// Generic messages
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"
	ErrMsgAuthFailedError    = "Authentication failed. Please check your API key."
	ErrMsgUnavailableError   = "Server is temporarily unavailable. Please try again later."

	// Input messages
	ErrMsgInvalidInputError    = "Invalid request. Please check your inputs."
	ErrMsgUnknownCityError     = "Unknown city"
	ErrMsgUnknownServerError   = "Unknown server"
	ErrMsgUnknownCategoryError = "Unknown crafting category"
	ErrMsgUnknownLocationError = "Unknown location kind"

	// Lookup messages
	ErrMsgRecipeNotFoundError    = "Recipe not found"
	ErrMsgCharacterNotFoundError = "Character not found"

	// Market messages
	ErrMsgNoSnapshotError        = "No market data yet. Please try again shortly."
	ErrMsgMarketUnavailableError = "Market data service is unavailable. Please try again later."
	ErrMsgFeedStoppedError       = "Market feed is shutting down"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses
// This function converts internal service errors to appropriate HTTP status codes and messages
// that users can understand and act upon.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrRecipeNotFound):
		return http.StatusNotFound, ErrMsgRecipeNotFoundError
	case errors.Is(err, domain.ErrCharacterNotFound):
		return http.StatusNotFound, ErrMsgCharacterNotFoundError
	case errors.Is(err, domain.ErrUnknownCity):
		return http.StatusBadRequest, ErrMsgUnknownCityError
	case errors.Is(err, domain.ErrUnknownServer):
		return http.StatusBadRequest, ErrMsgUnknownServerError
	case errors.Is(err, domain.ErrUnknownCategory):
		return http.StatusBadRequest, ErrMsgUnknownCategoryError
	case errors.Is(err, domain.ErrUnknownLocationKind):
		return http.StatusBadRequest, ErrMsgUnknownLocationError
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrInvalidRecipe):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	case errors.Is(err, domain.ErrNoSnapshot):
		return http.StatusServiceUnavailable, ErrMsgNoSnapshotError
	case errors.Is(err, domain.ErrMarketUnavailable):
		return http.StatusBadGateway, ErrMsgMarketUnavailableError
	case errors.Is(err, market.ErrFeedStopped):
		return http.StatusServiceUnavailable, ErrMsgFeedStoppedError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
