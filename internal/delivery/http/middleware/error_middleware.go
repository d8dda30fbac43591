package middleware

import (
	"log/slog"
	"net/http"

	deliverycontext "mediahub/internal/delivery/context"
	"mediahub/internal/delivery/http/response"
	domainerrors "mediahub/internal/domain/errors"
	"mediahub/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware turns handler errors into the JSON envelope.
type ErrorMiddleware struct {
	logger *slog.Logger
}

func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler.
// It is a no-op once the response is committed, so middlewares may call c.Error early.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			logger.Error("Request failed",
				slog.String("code", appErr.ErrorCode()),
				slog.String("path", c.Request().URL.Path),
				slog.String("method", c.Request().Method),
				slog.Any("error", err),
			)
		}
		m.write(c, logger, response.AppError(c, appErr))

		return
	}

	if httpErr, ok := errors.AsType[*echo.HTTPError](err); ok {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok && msg != "" {
			message = msg
		}
		m.write(c, logger, response.Error(c, httpErr.Code, message))

		return
	}

	// Unknown errors never leak their text to the client.
	logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)
	m.write(c, logger, response.InternalServerError(c))
}

func (m *ErrorMiddleware) write(c echo.Context, logger *slog.Logger, err error) {
	if err != nil {
		logger.Warn("Failed to write error response", slog.Any("error", err))
	}
}
