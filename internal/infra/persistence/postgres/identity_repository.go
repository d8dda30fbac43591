// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"mediahub/internal/domain/entity"
	domainerrors "mediahub/internal/domain/errors"
	"mediahub/internal/domain/repository"
	"mediahub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// publicIdentityColumns leaves out password_hash and refresh_token.
var publicIdentityColumns = []string{
	"id", "username", "email", "full_name", "avatar", "cover_image", "created_at", "updated_at",
}

// identityRepository implements the repository.IdentityRepository interface.
type identityRepository struct {
	db *gorm.DB
}

// NewIdentityRepository is the constructor for identityRepository.
func NewIdentityRepository(db *gorm.DB) repository.IdentityRepository {
	return &identityRepository{db: db}
}

// Create persists a new identity. The username and email unique indexes decide duplicates.
func (repo *identityRepository) Create(ctx context.Context, identity *entity.Identity) error {
	identityM := fromIdentityDomain(identity)

	if err := repo.db.WithContext(ctx).Create(identityM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return duplicateIdentityError(err)
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required identity information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create identity")
	}

	identity.ID = identityM.ID
	identity.CreatedAt = identityM.CreatedAt
	identity.UpdatedAt = identityM.UpdatedAt

	return nil
}

// FindByID retrieves the full identity record.
func (repo *identityRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Identity, error) {
	var identityM model.IdentityModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&identityM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrIdentityNotFound
		}

		return nil, errors.Wrap(err, "failed to find identity by ID")
	}

	return toIdentityDomain(&identityM), nil
}

// FindPublicByID never reads the credential columns.
func (repo *identityRepository) FindPublicByID(ctx context.Context, id uuid.UUID) (*entity.Identity, error) {
	var identityM model.IdentityModel

	if err := repo.db.WithContext(ctx).
		Select(publicIdentityColumns).
		Where("id = ?", id).
		First(&identityM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrIdentityNotFound
		}

		return nil, errors.Wrap(err, "failed to find public identity by ID")
	}

	return toIdentityDomain(&identityM), nil
}

// FindByHandleOrContact matches on username or email, ignoring blank values.
func (repo *identityRepository) FindByHandleOrContact(ctx context.Context, username, email string) (*entity.Identity, error) {
	if username == "" && email == "" {
		return nil, repository.ErrIdentityNotFound
	}

	query := repo.db.WithContext(ctx)
	switch {
	case username != "" && email != "":
		query = query.Where("username = ? OR email = ?", username, email)
	case username != "":
		query = query.Where("username = ?", username)
	default:
		query = query.Where("email = ?", email)
	}

	var identityM model.IdentityModel
	if err := query.First(&identityM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrIdentityNotFound
		}

		return nil, errors.Wrap(err, "failed to find identity by username or email")
	}

	return toIdentityDomain(&identityM), nil
}

func (repo *identityRepository) FindByUsername(ctx context.Context, username string) (*entity.Identity, error) {
	var identityM model.IdentityModel

	if err := repo.db.WithContext(ctx).
		Select(publicIdentityColumns).
		Where("username = ?", username).
		First(&identityM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrIdentityNotFound
		}

		return nil, errors.Wrap(err, "failed to find identity by username")
	}

	return toIdentityDomain(&identityM), nil
}

func (repo *identityRepository) FindSummariesByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.IdentitySummary, error) {
	if len(ids) == 0 {
		return []entity.IdentitySummary{}, nil
	}

	var rows []model.IdentitySummaryModel
	if err := repo.db.WithContext(ctx).
		Model(&model.IdentityModel{}).
		Select("id", "username", "full_name", "avatar").
		Where("id IN ?", ids).
		Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find identity summaries")
	}

	summaries := make([]entity.IdentitySummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, entity.IdentitySummary{
			ID:       row.ID,
			Username: row.Username,
			FullName: row.FullName,
			Avatar:   row.Avatar,
		})
	}

	return summaries, nil
}

func (repo *identityRepository) UpdateAccount(ctx context.Context, id uuid.UUID, fullName, email string) error {
	err := repo.updateColumns(ctx, id, map[string]any{"full_name": fullName, "email": email})
	if isUniqueConstraintViolation(err) {
		return duplicateIdentityError(err)
	}

	return err
}

func (repo *identityRepository) UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error {
	return repo.updateColumns(ctx, id, map[string]any{"password_hash": hash})
}

func (repo *identityRepository) UpdateAvatar(ctx context.Context, id uuid.UUID, url string) error {
	return repo.updateColumns(ctx, id, map[string]any{"avatar": url})
}

func (repo *identityRepository) UpdateCoverImage(ctx context.Context, id uuid.UUID, url string) error {
	return repo.updateColumns(ctx, id, map[string]any{"cover_image": url})
}

// SetRefreshToken overwrites the stored token regardless of its current value.
func (repo *identityRepository) SetRefreshToken(ctx context.Context, id uuid.UUID, token string) error {
	return repo.updateColumns(ctx, id, map[string]any{"refresh_token": token})
}

// SwapRefreshToken is a compare-and-swap: the row is only updated while it still holds expected.
func (repo *identityRepository) SwapRefreshToken(ctx context.Context, id uuid.UUID, expected, next string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.IdentityModel{}).
		Where("id = ? AND refresh_token = ?", id, expected).
		Updates(map[string]any{"refresh_token": next})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to rotate refresh token")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRefreshTokenMismatch
	}

	return nil
}

func (repo *identityRepository) ClearRefreshToken(ctx context.Context, id uuid.UUID) error {
	return repo.updateColumns(ctx, id, map[string]any{"refresh_token": gorm.Expr("NULL")})
}

// updateColumns writes the given columns and reports ErrIdentityNotFound when no row matched.
func (repo *identityRepository) updateColumns(ctx context.Context, id uuid.UUID, columns map[string]any) error {
	result := repo.db.WithContext(ctx).
		Model(&model.IdentityModel{}).
		Where("id = ?", id).
		Updates(columns)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return result.Error
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update identity")
	}
	if result.RowsAffected == 0 {
		return repository.ErrIdentityNotFound
	}

	return nil
}

func duplicateIdentityError(err error) error {
	if name := uniqueConstraintName(err); name != "" {
		return errors.Wrapf(repository.ErrDuplicateIdentity, "constraint %s", name)
	}

	return repository.ErrDuplicateIdentity
}

// --- Mapper Functions ---

func toIdentityDomain(data *model.IdentityModel) *entity.Identity {
	if data == nil {
		return nil
	}

	return &entity.Identity{
		ID:           data.ID,
		Username:     data.Username,
		Email:        data.Email,
		FullName:     data.FullName,
		Avatar:       data.Avatar,
		CoverImage:   data.CoverImage,
		PasswordHash: data.PasswordHash,
		RefreshToken: data.RefreshToken,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromIdentityDomain(data *entity.Identity) *model.IdentityModel {
	if data == nil {
		return nil
	}

	return &model.IdentityModel{
		ID:           data.ID,
		Username:     data.Username,
		Email:        data.Email,
		FullName:     data.FullName,
		Avatar:       data.Avatar,
		CoverImage:   data.CoverImage,
		PasswordHash: data.PasswordHash,
		RefreshToken: data.RefreshToken,
	}
}
