// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"mediahub/internal/domain/entity"
	"mediahub/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrIdentityNotFound is returned when no identity matches the lookup.
	ErrIdentityNotFound = errors.New("identity not found")
	// ErrDuplicateIdentity is returned when a username or email unique index rejects a write.
	ErrDuplicateIdentity = errors.New("identity already exists")
	// ErrRefreshTokenMismatch is returned when a conditional refresh token swap matches no row.
	ErrRefreshTokenMismatch = errors.New("stored refresh token does not match")
)

// IdentityRepository persists identities. Username and email are unique at the store level.
type IdentityRepository interface {
	// Create inserts a new identity and fills its generated fields.
	Create(ctx context.Context, identity *entity.Identity) error

	// FindByID loads the full record, credential fields included.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Identity, error)

	// FindPublicByID loads the record without password hash and refresh token.
	FindPublicByID(ctx context.Context, id uuid.UUID) (*entity.Identity, error)

	// FindByHandleOrContact matches either a username or an email. Empty values never match.
	FindByHandleOrContact(ctx context.Context, username, email string) (*entity.Identity, error)

	FindByUsername(ctx context.Context, username string) (*entity.Identity, error)

	// FindSummariesByIDs returns listing views for the given ids, in no particular order.
	FindSummariesByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.IdentitySummary, error)

	UpdateAccount(ctx context.Context, id uuid.UUID, fullName, email string) error
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error
	UpdateAvatar(ctx context.Context, id uuid.UUID, url string) error
	UpdateCoverImage(ctx context.Context, id uuid.UUID, url string) error

	// SetRefreshToken overwrites the stored refresh token unconditionally.
	SetRefreshToken(ctx context.Context, id uuid.UUID, token string) error

	// SwapRefreshToken replaces expected with next in one conditional write.
	// It returns ErrRefreshTokenMismatch when the stored value is not expected.
	SwapRefreshToken(ctx context.Context, id uuid.UUID, expected, next string) error

	// ClearRefreshToken sets the stored refresh token to NULL.
	ClearRefreshToken(ctx context.Context, id uuid.UUID) error
}
