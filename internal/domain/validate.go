// Package domain groups the entities, queries and contracts of the bookshelf service.
// Each aggregate lives in its own subpackage.
package domain

import (
	"errors"
	"fmt"

	"github.com/MGTheTrain/bookshelf/internal/pkg/validators"
	"github.com/go-playground/validator/v10"
)

// ValidateStruct runs the tag based rules on s and flattens field errors into one message.
func ValidateStruct(s interface{}) error {
	validate := validators.New()

	err := validate.Struct(s)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}
