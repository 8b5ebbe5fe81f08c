package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/CraftEconomy_Go/internal/bonus"
	"github.com/osse101/CraftEconomy_Go/internal/domain"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

// Global validator instance
var validate *Validator

// InitValidator initializes the global validator
func InitValidator() {
	v := validator.New()

	// Game enums accept the same spellings as their parsers
	_ = v.RegisterValidation("city", validateCity)
	_ = v.RegisterValidation("cityselector", validateCitySelector)
	_ = v.RegisterValidation("server", validateServer)
	_ = v.RegisterValidation("side", validateSide)
	_ = v.RegisterValidation("location", validateLocationKind)
	_ = v.RegisterValidation("daily", validateDailyBonus)
	_ = v.RegisterValidation("category", validateCategory)

	validate = &Validator{validate: v}
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	if validate == nil {
		InitValidator()
	}
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError formats validation errors into a user-friendly map
// This prevents leaking internal struct names and provides cleaner error messages
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "city", "cityselector":
			errs[field] = "Unknown city"
		case "server":
			errs[field] = "Unknown server"
		case "side":
			errs[field] = "Must be buy or sell"
		case "location":
			errs[field] = "Must be city, hideout or island"
		case "daily":
			errs[field] = "Must be none, bronze, silver or gold"
		case "category":
			errs[field] = "Unknown crafting category"
		case "max", "lte":
			errs[field] = fmt.Sprintf("Must be at most %s", e.Param())
		case "min", "gte":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		case "gt":
			errs[field] = fmt.Sprintf("Must be greater than %s", e.Param())
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

// Empty values pass every enum check; use `required` to demand one.

func validateCity(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return true
	}
	_, err := domain.ParseCity(s)
	return err == nil
}

func validateCitySelector(fl validator.FieldLevel) bool {
	_, err := domain.ParseCitySelector(fl.Field().String())
	return err == nil
}

func validateServer(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return true
	}
	_, err := domain.ParseServer(s)
	return err == nil
}

func validateSide(fl validator.FieldLevel) bool {
	_, err := domain.ParseSide(fl.Field().String())
	return err == nil
}

func validateLocationKind(fl validator.FieldLevel) bool {
	_, err := bonus.ParseLocationKind(fl.Field().String())
	return err == nil
}

func validateDailyBonus(fl validator.FieldLevel) bool {
	_, err := bonus.ParseDailyBonus(fl.Field().String())
	return err == nil
}

func validateCategory(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return true
	}
	for _, c := range domain.Categories {
		if strings.EqualFold(s, string(c)) {
			return true
		}
	}
	return false
}
