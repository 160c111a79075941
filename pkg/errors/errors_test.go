package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("Product", 999)

	assert.Equal(t, "Product with ID 999 not found", err.Message)
	assert.Equal(t, http.StatusNotFound, err.HTTPStatus)
	assert.True(t, IsNotFound(err))
}

func TestIsNotFound_WrappedError(t *testing.T) {
	err := fmt.Errorf("handling request: %w", NewNotFoundError("Order", 5))

	assert.True(t, IsNotFound(err))
	assert.False(t, IsNotFound(errors.New("plain failure")))
	assert.False(t, IsNotFound(NewValidationError("bad input")))
}

func TestNewDatabaseError_WrapsCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewDatabaseError("list orders", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "list orders")
	assert.Contains(t, err.Error(), "connection reset")
}

func TestWithCause(t *testing.T) {
	cause := errors.New("column missing")
	err := NewValidationError("bad draft").WithCause(cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, cause, err.Unwrap())
	assert.Contains(t, err.Error(), "caused by: column missing")
}

func TestHTTPStatusOf(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, HTTPStatusOf(NewNotFoundError("Order", 1)))
	assert.Equal(t, http.StatusBadRequest, HTTPStatusOf(NewValidationError("bad")))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatusOf(errors.New("opaque")))
}
