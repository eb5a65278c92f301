// Package validators holds custom validator/v10 rules shared by request DTOs and domain entities.
package validators

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// NotBlankTag rejects strings that are empty after trimming whitespace
const NotBlankTag = "notblank"

// SortOrderTag accepts "asc" or "desc" in any case
const SortOrderTag = "sortorder"

// NotBlank validates that a string field contains at least one non space character.
func NotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// SortOrder validates an optional sort direction.
func SortOrder(fl validator.FieldLevel) bool {
	switch strings.ToLower(fl.Field().String()) {
	case "", "asc", "desc":
		return true
	default:
		return false
	}
}

// Register installs every custom rule on v.
func Register(v *validator.Validate) error {
	rules := map[string]validator.Func{
		NotBlankTag:  NotBlank,
		SortOrderTag: SortOrder,
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("failed to register %s validation: %w", tag, err)
		}
	}
	return nil
}

// New returns a validator with the custom rules installed.
func New() *validator.Validate {
	v := validator.New()
	// registration only fails on an empty tag or nil func
	_ = Register(v)
	return v
}
