// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"mediahub/internal/domain/entity"
	"mediahub/internal/domain/service"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new identity.
type RegisterInput struct {
	FullName   string
	Email      string
	Username   string
	Password   string
	Avatar     *service.FileUpload
	CoverImage *service.FileUpload // optional
}

// ChangePasswordInput defines the data required to change the actor's password.
type ChangePasswordInput struct {
	IdentityID  uuid.UUID
	OldPassword string
	NewPassword string
}

// UpdateAccountInput updates the display name and email of TargetID on behalf of ActorID.
type UpdateAccountInput struct {
	ActorID  uuid.UUID
	TargetID uuid.UUID
	FullName string
	Email    string
}

// --- Output DTOs ---

// RegisterOutput is returned after successful registration. The new identity is logged in.
type RegisterOutput struct {
	Identity     *entity.Identity
	AccessToken  string
	RefreshToken string
}

// IdentityUsecase covers account creation and self-service profile changes.
type IdentityUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	ChangePassword(ctx context.Context, input *ChangePasswordInput) error
	UpdateAccount(ctx context.Context, input *UpdateAccountInput) (*entity.Identity, error)
	UpdateAvatar(ctx context.Context, identityID uuid.UUID, file *service.FileUpload) (*entity.Identity, error)
	UpdateCoverImage(ctx context.Context, identityID uuid.UUID, file *service.FileUpload) (*entity.Identity, error)
	CurrentIdentity(ctx context.Context, identityID uuid.UUID) (*entity.Identity, error)
}
