// Package context carries request-scoped values (request id, logger and caller identity)
// through echo.Context and the standard request context.
package context

import (
	"context"
	"log/slog"

	"mediahub/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type key int

const (
	requestIDKey key = iota
	loggerKey
	identityIDKey
)

// HeaderXRequestID is the HTTP header name for request ID.
const HeaderXRequestID = "X-Request-Id"

// echo.Context keys.
const (
	echoRequestIDKey = "request_id"
	echoIdentityKey  = "identity"
)

// SetRequestID stores the id on c and in the request context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoRequestIDKey, requestID)
	updateContext(c, func(ctx context.Context) context.Context {
		return context.WithValue(ctx, requestIDKey, requestID)
	})
}

// GetRequestID returns the id set by SetRequestID, or "".
func GetRequestID(c echo.Context) string {
	id, _ := c.Get(echoRequestIDKey).(string)

	return id
}

func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

// SetIdentity records the authenticated caller and tags the request logger with its id.
func SetIdentity(c echo.Context, identity *entity.Identity) {
	c.Set(echoIdentityKey, identity)
	updateContext(c, func(ctx context.Context) context.Context {
		return context.WithValue(ctx, identityIDKey, identity.ID)
	})
	AddLogAttrs(c, slog.String("identity_id", identity.ID.String()))
}

func GetIdentity(c echo.Context) (*entity.Identity, bool) {
	identity, ok := c.Get(echoIdentityKey).(*entity.Identity)

	return identity, ok && identity != nil
}

// IdentityIDFromContext returns the authenticated caller's id, if any.
func IdentityIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(identityIDKey).(uuid.UUID)

	return id, ok
}

// WithLogger returns a new context with the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// GetLogger returns the request-scoped logger, or nil.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, _ := ctx.Value(loggerKey).(*slog.Logger)

	return logger
}

func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

// AddLogAttrs appends attrs to the request-scoped logger. It is a no-op before a logger is installed.
func AddLogAttrs(c echo.Context, attrs ...slog.Attr) {
	logger := GetLogger(c.Request().Context())
	if logger == nil || len(attrs) == 0 {
		return
	}

	args := make([]any, len(attrs))
	for i, attr := range attrs {
		args[i] = attr
	}
	updateContext(c, func(ctx context.Context) context.Context {
		return WithLogger(ctx, logger.With(args...))
	})
}

func updateContext(c echo.Context, fn func(context.Context) context.Context) {
	req := c.Request()
	c.SetRequest(req.WithContext(fn(req.Context())))
}
