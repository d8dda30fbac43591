package middleware

import (
	"strings"

	deliverycontext "mediahub/internal/delivery/context"
	domainerrors "mediahub/internal/domain/errors"
	"mediahub/internal/errors"
	"mediahub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Session cookie names.
const (
	AccessTokenCookie  = "accessToken"
	RefreshTokenCookie = "refreshToken"
)

const bearerPrefix = "Bearer "

// AuthMiddleware resolves the caller from the access token.
type AuthMiddleware struct {
	sessions usecase.SessionUsecase
}

func NewAuthMiddleware(sessions usecase.SessionUsecase) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessions}
}

// Authenticate accepts the access token from the accessToken cookie or an Authorization Bearer header.
// On success the public identity is available through GetIdentity.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := AccessTokenFrom(c)
		if token == "" {
			return domainerrors.ErrUnauthorized
		}

		identity, err := m.sessions.Authenticate(c.Request().Context(), token)
		if err != nil {
			return errors.WithStack(err)
		}

		deliverycontext.SetIdentity(c, identity)

		return next(c)
	}
}

// AccessTokenFrom reads the access token, preferring the cookie.
func AccessTokenFrom(c echo.Context) string {
	if cookie, err := c.Cookie(AccessTokenCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	return BearerToken(c)
}

// RefreshTokenFrom reads the refresh token from the refreshToken cookie,
// the X-Refresh-Token header or an Authorization Bearer header, in that order.
func RefreshTokenFrom(c echo.Context) string {
	if cookie, err := c.Cookie(RefreshTokenCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	if token := strings.TrimSpace(c.Request().Header.Get("X-Refresh-Token")); token != "" {
		return token
	}

	return BearerToken(c)
}

// BearerToken returns the token of an "Authorization: Bearer <token>" header, or "".
func BearerToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if len(header) <= len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return ""
	}

	return strings.TrimSpace(header[len(bearerPrefix):])
}

// GetIdentityID returns the caller's id set by Authenticate.
func GetIdentityID(c echo.Context) (uuid.UUID, bool) {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return uuid.Nil, false
	}

	return identity.ID, true
}
