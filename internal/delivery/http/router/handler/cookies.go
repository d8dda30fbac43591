package handler

import (
	"net/http"
	"strings"
	"time"

	"mediahub/config"
	"mediahub/internal/delivery/http/middleware"

	"github.com/labstack/echo/v4"
)

// sessionCookies writes the HttpOnly token cookies. Secure unless explicitly disabled for local development.
type sessionCookies struct {
	domain     string
	sameSite   http.SameSite
	secure     bool
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func newSessionCookies(cfg *config.Config) sessionCookies {
	return sessionCookies{
		domain:     cfg.HTTP.Cookie.Domain,
		sameSite:   parseSameSite(cfg.HTTP.Cookie.SameSite),
		secure:     !cfg.HTTP.Cookie.Insecure,
		accessTTL:  cfg.Token.AccessTTL,
		refreshTTL: cfg.Token.RefreshTTL,
	}
}

func (s sessionCookies) set(c echo.Context, accessToken, refreshToken string) {
	c.SetCookie(s.cookie(middleware.AccessTokenCookie, accessToken, int(s.accessTTL.Seconds())))
	c.SetCookie(s.cookie(middleware.RefreshTokenCookie, refreshToken, int(s.refreshTTL.Seconds())))
}

func (s sessionCookies) clear(c echo.Context) {
	c.SetCookie(s.cookie(middleware.AccessTokenCookie, "", -1))
	c.SetCookie(s.cookie(middleware.RefreshTokenCookie, "", -1))
}

func (s sessionCookies) cookie(name, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Domain:   s.domain,
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: s.sameSite,
	}
}

func parseSameSite(mode string) http.SameSite {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
