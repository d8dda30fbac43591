package repository

import (
	"context"

	"mediahub/internal/domain/entity"
	"mediahub/internal/errors"

	"github.com/google/uuid"
)

// ErrVideoNotFound is returned when a video is not found.
var ErrVideoNotFound = errors.New("video not found")

// VideoRepository defines video persistence and the read projections built on it.
type VideoRepository interface {
	Create(ctx context.Context, video *entity.Video) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Video, error)

	// Update saves title, description, thumbnail and published flag.
	Update(ctx context.Context, video *entity.Video) error
	Delete(ctx context.Context, id uuid.UUID) error
	IncrementViews(ctx context.Context, id uuid.UUID) error

	ListPublished(ctx context.Context, filter entity.VideoFilter) ([]*entity.Video, int64, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, page entity.Page) ([]*entity.Video, int64, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Video, error)

	// StatsByOwner fills video count, total views and total likes for an owner.
	StatsByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.ChannelStats, error)

	// RecordView upserts the viewer's watch history entry for the video.
	RecordView(ctx context.Context, viewerID, videoID uuid.UUID) error

	// WatchHistory returns watched videos, most recent first.
	WatchHistory(ctx context.Context, viewerID uuid.UUID) ([]*entity.Video, error)

	// DeleteViews removes every watch history entry for the video.
	DeleteViews(ctx context.Context, videoID uuid.UUID) error
}
