package response

import (
	"net/http"

	domainerrors "offerfeed/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Response unified API response structure
type Response struct {
	Success    bool       `json:"success"`
	Code       int        `json:"code"`    // HTTP status code
	Message    string     `json:"message"` // User-friendly message
	Data       any        `json:"data,omitempty"`
	Pagination any        `json:"pagination,omitempty"`
	Meta       any        `json:"meta,omitempty"`
	Error      *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g., "VALIDATION_FAILED"
	Details string `json:"details,omitempty"` // Detailed error description
}

// Success successful response
func Success(c echo.Context, statusCode int, data any, message string) error {
	if message == "" {
		message = "Success"
	}

	return c.JSON(statusCode, Response{
		Success: true,
		Code:    statusCode,
		Message: message,
		Data:    data,
	})
}

// Paginated returns one page of data with its page-number pagination.
func Paginated(c echo.Context, data any, pagination any) error {
	return c.JSON(http.StatusOK, Response{
		Success:    true,
		Code:       http.StatusOK,
		Message:    "Success",
		Data:       data,
		Pagination: pagination,
	})
}

// WithMeta returns data with offset-style meta.
func WithMeta(c echo.Context, data any, meta any) error {
	return c.JSON(http.StatusOK, Response{
		Success: true,
		Code:    http.StatusOK,
		Message: "Success",
		Data:    data,
		Meta:    meta,
	})
}

// Error error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, Response{
		Success: false,
		Code:    statusCode,
		Message: message,
		Error: &ErrorInfo{
			Code:    errorCode,
			Details: details,
		},
	})
}

// BadRequest 400 error
func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, "")
}

// Unauthorized 401 error
func Unauthorized(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message, "")
}

// InternalServerError 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, "")
}

// HandleAppError writes domain errors as their HTTP form. Details are only sent for 4xx errors.
// Anything else is returned to echo's error handler.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		details := ""
		if appErr.HTTPCode() < http.StatusInternalServerError {
			details = appErr.Details()
		}

		return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), details)
	}

	return errors.WithStack(err)
}
