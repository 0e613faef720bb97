package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithDetailsStillMatchesSentinel(t *testing.T) {
	err := ErrValidationFailed.WithDetails("page must be >= 1")

	assert.True(t, stderrors.Is(err, ErrValidationFailed))
	assert.False(t, stderrors.Is(err, ErrUnauthenticated))
	assert.Equal(t, "Invalid request parameters: page must be >= 1", err.Error())
}

func TestBaseError_WrapMessageKeepsAppError(t *testing.T) {
	wrapped := ErrUpstreamQuery.WrapMessage("rank nearby")

	var appErr AppError
	assert.True(t, stderrors.As(wrapped, &appErr))
	assert.Equal(t, http.StatusBadGateway, appErr.HTTPCode())
	assert.Equal(t, "UPSTREAM_QUERY_FAILED", appErr.ErrorCode())
}
