// Package services defines the business logic for recipes and their
// ingredients. This file centralizes the service-level error values so that
// they can be returned consistently by service methods and checked by callers
// with errors.Is / errors.As.
//
// Translation into HTTP status codes is performed at the handler layer.
package services

import (
	"errors"
	"fmt"
)

// Lookup errors.
var (
	// ErrRecipeNotFound indicates that the referenced recipe does not exist.
	ErrRecipeNotFound = errors.New("recipe not found")

	// ErrIngredientNotFound indicates that the referenced ingredient does not exist.
	ErrIngredientNotFound = errors.New("ingredient not found")
)

// Validation errors. They are always wrapped in a *ValidationError carrying
// the offending field.
var (
	ErrTitleRequired      = errors.New("title is required")
	ErrTitleLength        = fmt.Errorf("title must be between %d and %d characters", RecipeTitleMin, RecipeTitleMax)
	ErrDescriptionTooLong = fmt.Errorf("description must be at most %d characters", DescriptionMax)
	ErrTitleTooLong       = fmt.Errorf("title must be at most %d characters", IngredientTitleMax)
	ErrAmountNotPositive  = errors.New("amount must be greater than zero")
	ErrUnitRequired       = errors.New("unit is required")
	ErrUnitInvalid        = errors.New("unit is not a recognized value")
)

// ValidationError reports a malformed or out-of-range request field. It is
// raised before any storage interaction.
type ValidationError struct {
	// Field is the request field path, e.g. "title" or "ingredients[1].unit".
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Err.Error()
	}
	return e.Field + ": " + e.Err.Error()
}

func (e *ValidationError) Unwrap() error { return e.Err }

// invalid builds a *ValidationError.
func invalid(field string, err error) error {
	return &ValidationError{Field: field, Err: err}
}

// IsValidation reports whether err is (or wraps) a *ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
