package v1

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/MGTheTrain/bookshelf/internal/pkg/apperr"
	"github.com/MGTheTrain/bookshelf/internal/pkg/validators"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// RegisterValidators installs the custom rules on gin's validator and makes
// validation errors report wire names instead of Go field names.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = validators.Register(v)
		v.RegisterTagNameFunc(wireName)
		v.RegisterCustomTypeFunc(nullableIntValue, NullableInt{})
	})
}

func wireName(field reflect.StructField) string {
	for _, tag := range []string{"json", "form", "uri"} {
		name, _, _ := strings.Cut(field.Tag.Get(tag), ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return field.Name
}

// bindingError turns a gin binding failure into a 422
func bindingError(err error) *apperr.Error {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		messages := make([]string, 0, len(validationErrors))
		for _, fieldErr := range validationErrors {
			messages = append(messages, describe(fieldErr))
		}
		return apperr.Unprocessable("%s", strings.Join(messages, "; ")).Wrap(err)
	}
	return apperr.Unprocessable("invalid request: %v", err).Wrap(err)
}

func describe(fieldErr validator.FieldError) string {
	if fieldErr.Param() != "" {
		return fmt.Sprintf("%s failed on %s=%s", fieldErr.Field(), fieldErr.Tag(), fieldErr.Param())
	}
	return fmt.Sprintf("%s failed on %s", fieldErr.Field(), fieldErr.Tag())
}
