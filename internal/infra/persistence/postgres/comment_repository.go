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

// commentRepository implements the repository.CommentRepository interface.
type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository is the constructor for commentRepository.
func NewCommentRepository(db *gorm.DB) repository.CommentRepository {
	return &commentRepository{db: db}
}

func (repo *commentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	commentM := fromCommentDomain(comment)

	if err := repo.db.WithContext(ctx).Create(commentM).Error; err != nil {
		// The video was deleted between the existence check and the insert.
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrVideoNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create comment")
	}

	comment.ID = commentM.ID
	comment.CreatedAt = commentM.CreatedAt
	comment.UpdatedAt = commentM.UpdatedAt

	return nil
}

func (repo *commentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Comment, error) {
	var commentM model.CommentModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&commentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCommentNotFound
		}

		return nil, errors.Wrap(err, "failed to find comment by ID")
	}

	return toCommentDomain(&commentM), nil
}

func (repo *commentRepository) UpdateText(ctx context.Context, id uuid.UUID, text string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CommentModel{}).
		Where("id = ?", id).
		Update("content", text)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update comment")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCommentNotFound
	}

	return nil
}

func (repo *commentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.CommentModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete comment")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCommentNotFound
	}

	return nil
}

// ListByVideo returns newest comments first.
func (repo *commentRepository) ListByVideo(ctx context.Context, videoID uuid.UUID, page entity.Page) ([]*entity.Comment, int64, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.CommentModel{}).
		Where("video_id = ?", videoID).
		Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count comments")
	}

	var commentModels []*model.CommentModel
	if err := query.
		Order("created_at DESC").
		Order("id").
		Offset(page.Offset()).
		Limit(page.Size).
		Find(&commentModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list comments")
	}

	comments := make([]*entity.Comment, 0, len(commentModels))
	for _, commentM := range commentModels {
		comments = append(comments, toCommentDomain(commentM))
	}

	return comments, total, nil
}

func (repo *commentRepository) IDsByVideo(ctx context.Context, videoID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID

	if err := repo.db.WithContext(ctx).
		Model(&model.CommentModel{}).
		Where("video_id = ?", videoID).
		Pluck("id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list comment IDs")
	}

	return ids, nil
}

func (repo *commentRepository) DeleteByVideo(ctx context.Context, videoID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("video_id = ?", videoID).
		Delete(&model.CommentModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete comments of video")
	}

	return nil
}

// --- Mapper Functions ---

func toCommentDomain(data *model.CommentModel) *entity.Comment {
	if data == nil {
		return nil
	}

	return &entity.Comment{
		ID:          data.ID,
		VideoID:     data.VideoID,
		OwnerUserID: data.OwnerID,
		Text:        data.Content,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromCommentDomain(data *entity.Comment) *model.CommentModel {
	if data == nil {
		return nil
	}

	return &model.CommentModel{
		ID:      data.ID,
		VideoID: data.VideoID,
		OwnerID: data.OwnerUserID,
		Content: data.Text,
	}
}
