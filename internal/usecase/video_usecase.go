package usecase

import (
	"context"

	"mediahub/internal/domain/entity"
	"mediahub/internal/domain/service"

	"github.com/google/uuid"
)

// PublishVideoInput defines the data required to publish a video.
type PublishVideoInput struct {
	OwnerID     uuid.UUID
	Title       string
	Description string
	VideoFile   *service.FileUpload
	Thumbnail   *service.FileUpload
}

// UpdateVideoInput changes video details. Nil fields are left untouched.
type UpdateVideoInput struct {
	ActorID     uuid.UUID
	VideoID     uuid.UUID
	Title       *string
	Description *string
	Thumbnail   *service.FileUpload
}

type VideoUsecase interface {
	ListPublished(ctx context.Context, filter entity.VideoFilter) (*entity.PageResult[*entity.Video], error)
	Publish(ctx context.Context, input *PublishVideoInput) (*entity.Video, error)
	// Watch returns a video for viewerID, counting the view and recording it in the viewer's history.
	Watch(ctx context.Context, viewerID, videoID uuid.UUID) (*entity.Video, error)
	Update(ctx context.Context, input *UpdateVideoInput) (*entity.Video, error)
	Delete(ctx context.Context, actorID, videoID uuid.UUID) error
	TogglePublish(ctx context.Context, actorID, videoID uuid.UUID) (*entity.Video, error)
}
