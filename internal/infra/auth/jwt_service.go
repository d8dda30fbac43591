package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"mediahub/config"
	"mediahub/internal/domain/service"
	"mediahub/internal/errors"
)

const (
	fallbackAccessTTL  = 15 * time.Minute
	fallbackRefreshTTL = 7 * 24 * time.Hour
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret  []byte        // Secret key for signing access tokens.
	refreshSecret []byte        // Secret key for signing refresh tokens.
	accessTTL     time.Duration // Time-to-live for access tokens.
	refreshTTL    time.Duration // Time-to-live for refresh tokens.
	now           func() time.Time
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}
	if cfg.SecretKey.Access == cfg.SecretKey.Refresh {
		return nil, errors.New("access and refresh secrets must differ")
	}

	svc := &jwtService{
		accessSecret:  []byte(cfg.SecretKey.Access),
		refreshSecret: []byte(cfg.SecretKey.Refresh),
		accessTTL:     cfg.Token.AccessTTL,
		refreshTTL:    cfg.Token.RefreshTTL,
		now:           time.Now,
	}
	if svc.accessTTL <= 0 {
		svc.accessTTL = fallbackAccessTTL
	}
	if svc.refreshTTL <= 0 {
		svc.refreshTTL = fallbackRefreshTTL
	}

	return svc, nil
}

// IssueAccess signs an access token carrying the identity summary.
func (s *jwtService) IssueAccess(claims service.AccessClaims) (string, error) {
	claims.Kind = service.TokenKindAccess
	claims.RegisteredClaims = s.registered(claims.IdentityID, s.accessTTL)

	return sign(claims, s.accessSecret)
}

// IssueRefresh signs a refresh token carrying only the identity id.
func (s *jwtService) IssueRefresh(identityID uuid.UUID) (string, error) {
	claims := service.RefreshClaims{
		IdentityID:       identityID,
		Kind:             service.TokenKindRefresh,
		RegisteredClaims: s.registered(identityID, s.refreshTTL),
	}

	return sign(claims, s.refreshSecret)
}

func (s *jwtService) VerifyAccess(token string) (*service.AccessClaims, error) {
	claims := &service.AccessClaims{}
	if err := s.parse(token, claims, s.accessSecret); err != nil {
		return nil, err
	}
	if claims.Kind != service.TokenKindAccess || claims.IdentityID == uuid.Nil {
		return nil, &service.TokenError{Reason: service.TokenMalformed}
	}

	return claims, nil
}

func (s *jwtService) VerifyRefresh(token string) (*service.RefreshClaims, error) {
	claims := &service.RefreshClaims{}
	if err := s.parse(token, claims, s.refreshSecret); err != nil {
		return nil, err
	}
	if claims.Kind != service.TokenKindRefresh || claims.IdentityID == uuid.Nil {
		return nil, &service.TokenError{Reason: service.TokenMalformed}
	}

	return claims, nil
}

func (s *jwtService) AccessTTL() time.Duration {
	return s.accessTTL
}

func (s *jwtService) RefreshTTL() time.Duration {
	return s.refreshTTL
}

func (s *jwtService) registered(subject uuid.UUID, ttl time.Duration) jwt.RegisteredClaims {
	now := s.now()

	return jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Subject:   subject.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
}

func (s *jwtService) parse(token string, claims jwt.Claims, secret []byte) error {
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return &service.TokenError{Reason: service.TokenExpired, Err: err}
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return &service.TokenError{Reason: service.TokenSignatureInvalid, Err: err}
	default:
		return &service.TokenError{Reason: service.TokenMalformed, Err: err}
	}
}

func sign(claims jwt.Claims, secret []byte) (string, error) {
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}

	return signed, nil
}
