package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	TokenKindAccess  = "access"
	TokenKindRefresh = "refresh"
)

// AccessClaims carries the identity summary embedded in access tokens.
type AccessClaims struct {
	IdentityID uuid.UUID `json:"_id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	FullName   string    `json:"fullname"`
	Kind       string    `json:"kind"`
	jwt.RegisteredClaims
}

// RefreshClaims carries only the identity id.
type RefreshClaims struct {
	IdentityID uuid.UUID `json:"_id"`
	Kind       string    `json:"kind"`
	jwt.RegisteredClaims
}

// TokenFailure names why a token was rejected.
type TokenFailure string

const (
	TokenExpired          TokenFailure = "expired"
	TokenMalformed        TokenFailure = "malformed"
	TokenSignatureInvalid TokenFailure = "signature_invalid"
)

// TokenError is returned by the verify methods.
type TokenError struct {
	Reason TokenFailure
	Err    error
}

func (e *TokenError) Error() string {
	if e.Err == nil {
		return "token " + string(e.Reason)
	}

	return "token " + string(e.Reason) + ": " + e.Err.Error()
}

func (e *TokenError) Unwrap() error {
	return e.Err
}

// TokenService issues and verifies the signed access and refresh tokens.
// Access and refresh tokens are signed with independent secrets.
type TokenService interface {
	IssueAccess(claims AccessClaims) (string, error)
	IssueRefresh(identityID uuid.UUID) (string, error)

	// VerifyAccess checks signature and expiry against the access secret.
	VerifyAccess(token string) (*AccessClaims, error)

	// VerifyRefresh checks signature and expiry against the refresh secret.
	VerifyRefresh(token string) (*RefreshClaims, error)

	AccessTTL() time.Duration
	RefreshTTL() time.Duration
}
