package repository

import (
	"context"

	"mediahub/internal/domain/entity"
	"mediahub/internal/errors"

	"github.com/google/uuid"
)

// ErrCommentNotFound is returned when a comment is not found.
var ErrCommentNotFound = errors.New("comment not found")

type CommentRepository interface {
	Create(ctx context.Context, comment *entity.Comment) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Comment, error)
	UpdateText(ctx context.Context, id uuid.UUID, text string) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByVideo(ctx context.Context, videoID uuid.UUID, page entity.Page) ([]*entity.Comment, int64, error)

	// IDsByVideo returns the ids of every comment on the video.
	IDsByVideo(ctx context.Context, videoID uuid.UUID) ([]uuid.UUID, error)
	DeleteByVideo(ctx context.Context, videoID uuid.UUID) error
}
