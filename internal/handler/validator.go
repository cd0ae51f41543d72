package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/dmartell/amorcito-api/internal/domain"
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

	// Register custom validation for phrase categories
	_ = v.RegisterValidation("categoria", validateCategory)

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
		case "gt":
			errs[field] = fmt.Sprintf("Must be greater than %s", e.Param())
		case "min":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		case "categoria":
			errs[field] = "Invalid category"
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

// ValidCategories defines the phrase categories the catalog uses
var ValidCategories = map[string]bool{
	domain.PhraseCategoryRomantic:    true,
	domain.PhraseCategoryGoodJoke:    true,
	domain.PhraseCategoryBadJoke:     true,
	domain.PhraseCategoryCuriousFact: true,
}

// Custom validation function for phrase category
func validateCategory(fl validator.FieldLevel) bool {
	category := fl.Field().String()
	// Allow empty if not required (handled by 'required' tag if needed)
	if category == "" {
		return true
	}
	return ValidCategories[strings.ToLower(category)]
}
