// Package response renders the unified API envelope.
package response

import (
	"net/http"

	domainerrors "github.com/AjaXium2/greenolivechain/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Response is the unified API envelope. Every endpoint answers with it:
// success=true carries Data, success=false carries Error.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

// Success renders a successful response.
func Success(c echo.Context, statusCode int, data any, message string) error {
	return c.JSON(statusCode, Response{
		Success: true,
		Data:    data,
		Message: message,
	})
}

// Error renders an error response.
func Error(c echo.Context, statusCode int, message string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, Response{
		Success: false,
		Error:   message,
	})
}

// BindingError renders a 400 for malformed request bodies.
func BindingError(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, message)
}

// BadRequest renders a 400 error.
func BadRequest(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, message)
}

// NotFound renders a 404 error.
func NotFound(c echo.Context, message string) error {
	return Error(c, http.StatusNotFound, message)
}

// HandleAppError converts domain errors to envelope responses. Typed errors
// carry their own HTTP status; anything else bubbles up to the central error
// handler as a 500.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		message := appErr.Message()
		if details := appErr.Details(); details != "" && appErr.HTTPCode() < 500 {
			message = message + ": " + details
		}

		return Error(c, appErr.HTTPCode(), message)
	}

	return errors.WithStack(err)
}
