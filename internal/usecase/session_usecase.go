package usecase

import (
	"context"

	"mediahub/internal/domain/entity"

	"github.com/google/uuid"
)

// LoginInput defines the data required to log in. Either Username or Email must be set.
type LoginInput struct {
	Username string
	Email    string
	Password string
}

// SessionOutput carries a freshly issued token pair.
type SessionOutput struct {
	Identity     *entity.Identity
	AccessToken  string
	RefreshToken string
}

// SessionUsecase manages the single refresh-token session each identity holds.
type SessionUsecase interface {
	Login(ctx context.Context, input *LoginInput) (*SessionOutput, error)
	// Refresh rotates the presented refresh token. A superseded token is rejected.
	Refresh(ctx context.Context, refreshToken string) (*SessionOutput, error)
	Logout(ctx context.Context, identityID uuid.UUID) error
	// Authenticate resolves an access token to the identity it was issued for.
	Authenticate(ctx context.Context, accessToken string) (*entity.Identity, error)
}
