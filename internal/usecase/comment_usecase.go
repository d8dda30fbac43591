package usecase

import (
	"context"

	"mediahub/internal/domain/entity"

	"github.com/google/uuid"
)

type CommentUsecase interface {
	ListByVideo(ctx context.Context, videoID uuid.UUID, page entity.Page) (*entity.PageResult[*entity.Comment], error)
	Add(ctx context.Context, actorID, videoID uuid.UUID, text string) (*entity.Comment, error)
	Update(ctx context.Context, actorID, commentID uuid.UUID, text string) (*entity.Comment, error)
	Delete(ctx context.Context, actorID, commentID uuid.UUID) error
}
