//go:build unit
// +build unit

package v1

import (
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBindingError_ReportsWireNames(t *testing.T) {
	RegisterValidators()
	price := 1.0

	err := binding.Validator.ValidateStruct(&BookRequest{
		BookBaseRequest: BookBaseRequest{Name: "  ", ISBN: "isbn", Type: "novel", Publish: "p", Price: &price},
		Author:          "Frank Herbert",
	})
	require.Error(t, err)

	appErr := bindingError(err)
	assert.Equal(t, http.StatusUnprocessableEntity, appErr.Status)
	assert.Contains(t, appErr.Detail, "name failed on notblank")
	assert.NotContains(t, appErr.Detail, "Name failed")
}

func TestBindingError_MalformedInput(t *testing.T) {
	appErr := bindingError(errors.New("unexpected EOF"))

	assert.Equal(t, http.StatusUnprocessableEntity, appErr.Status)
	assert.Equal(t, "invalid request: unexpected EOF", appErr.Detail)
}

func TestBookListQuery_SortOrder(t *testing.T) {
	RegisterValidators()

	assert.NoError(t, binding.Validator.ValidateStruct(&bookListQuery{SortBy: "name", SortOrder: "DESC"}))
	assert.Error(t, binding.Validator.ValidateStruct(&bookListQuery{SortOrder: "up"}))
	assert.Error(t, binding.Validator.ValidateStruct(&bookListQuery{SortBy: "isbn"}))
}
