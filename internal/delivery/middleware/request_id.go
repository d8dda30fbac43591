// Package middleware holds echo middlewares shared by every HTTP delivery.
package middleware

import (
	"log/slog"

	deliverycontext "mediahub/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// maxRequestIDLength caps client supplied ids so they cannot bloat every log line.
const maxRequestIDLength = 128

// RequestIDMiddleware assigns each request an id and a logger scoped to it.
type RequestIDMiddleware struct {
	logger *slog.Logger
}

func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{
		logger: logger,
	}
}

// Process reuses the caller's X-Request-Id when it is sane and otherwise generates one.
// The id and the child logger travel in both echo.Context and the request context.
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get(deliverycontext.HeaderXRequestID)
		if requestID == "" || len(requestID) > maxRequestIDLength {
			requestID = uuid.New().String()
		}

		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)
		deliverycontext.SetRequestID(c, requestID)

		req := c.Request()
		c.SetRequest(req.WithContext(deliverycontext.WithLogger(req.Context(), m.logger)))
		deliverycontext.AddLogAttrs(c, slog.String("request_id", requestID))

		return next(c)
	}
}
