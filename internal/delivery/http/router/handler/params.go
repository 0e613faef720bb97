package handler

import (
	"strconv"
	"strings"

	domainerrors "offerfeed/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// queryFloat reads the first non-empty query parameter among names.
// A missing parameter returns nil without error.
func queryFloat(c echo.Context, names ...string) (*float64, error) {
	for _, name := range names {
		raw := strings.TrimSpace(c.QueryParam(name))
		if raw == "" {
			continue
		}

		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, domainerrors.ErrValidationFailed.WithDetails(name + " must be a number")
		}

		return &value, nil
	}

	return nil, nil
}

// queryString reads the first non-empty query parameter among names.
func queryString(c echo.Context, names ...string) string {
	for _, name := range names {
		if value := c.QueryParam(name); value != "" {
			return value
		}
	}

	return ""
}

// bindingError turns an echo binder failure into a validation error naming the field.
func bindingError(err error) error {
	var bindErr *echo.BindingError
	if errors.As(err, &bindErr) {
		return domainerrors.ErrValidationFailed.WithDetails(bindErr.Field + " must be an integer")
	}

	return domainerrors.ErrValidationFailed.WithDetails("invalid query parameters")
}

func commerceIDParam(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("id must be a valid commerce id")
	}

	return id, nil
}
