// Package response writes the JSON envelope shared by every endpoint.
package response

import (
	"net/http"

	domainerrors "mediahub/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// Success writes {statusCode, success:true, data, message}.
func Success(c echo.Context, statusCode int, data any, message string) error {
	if message == "" {
		message = "Success"
	}

	return c.JSON(statusCode, domainerrors.Response{
		StatusCode: statusCode,
		Success:    true,
		Data:       data,
		Message:    message,
	})
}

// Error writes {statusCode, success:false, data:null, message}.
func Error(c echo.Context, statusCode int, message string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, domainerrors.Response{
		StatusCode: statusCode,
		Success:    false,
		Data:       nil,
		Message:    message,
	})
}

// AppError writes the envelope for a domain error.
func AppError(c echo.Context, appErr domainerrors.AppError) error {
	return c.JSON(appErr.HTTPCode(), domainerrors.NewErrorResponse(appErr))
}

// BindingError 400 error for request bodies that could not be decoded
func BindingError(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, message)
}

// InternalServerError 500 error
func InternalServerError(c echo.Context) error {
	return Error(c, http.StatusInternalServerError, "Internal Server Error")
}
