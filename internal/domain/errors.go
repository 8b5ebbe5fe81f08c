package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Recipe errors
	ErrMsgRecipeNotFound = "recipe not found"
	ErrMsgInvalidRecipe  = "invalid recipe"

	// Market errors
	ErrMsgUnknownCity         = "unknown city"
	ErrMsgUnknownServer       = "unknown server"
	ErrMsgNoSnapshot          = "no market snapshot available"
	ErrMsgMarketUnavailable   = "market api unavailable"
	ErrMsgCharacterNotFound   = "character not found"
	ErrMsgInvalidInput        = "invalid input"
	ErrMsgUnknownCategory     = "unknown crafting category"
	ErrMsgUnknownLocationKind = "unknown location kind"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrRecipeNotFound      = errors.New(ErrMsgRecipeNotFound)
	ErrInvalidRecipe       = errors.New(ErrMsgInvalidRecipe)
	ErrUnknownCity         = errors.New(ErrMsgUnknownCity)
	ErrUnknownServer       = errors.New(ErrMsgUnknownServer)
	ErrNoSnapshot          = errors.New(ErrMsgNoSnapshot)
	ErrMarketUnavailable   = errors.New(ErrMsgMarketUnavailable)
	ErrCharacterNotFound   = errors.New(ErrMsgCharacterNotFound)
	ErrInvalidInput        = errors.New(ErrMsgInvalidInput)
	ErrUnknownCategory     = errors.New(ErrMsgUnknownCategory)
	ErrUnknownLocationKind = errors.New(ErrMsgUnknownLocationKind)
)
