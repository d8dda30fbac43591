package usecase

import (
	"context"

	"mediahub/internal/domain/entity"

	"github.com/google/uuid"
)

// ChannelUsecase serves read projections over already-stored channel data.
type ChannelUsecase interface {
	Profile(ctx context.Context, viewerID uuid.UUID, username string) (*entity.ChannelProfile, error)
	Subscribers(ctx context.Context, channelID uuid.UUID) ([]entity.IdentitySummary, error)
	SubscribedChannels(ctx context.Context, subscriberID uuid.UUID) ([]entity.IdentitySummary, error)
	LikedVideos(ctx context.Context, identityID uuid.UUID) ([]*entity.Video, error)
	WatchHistory(ctx context.Context, identityID uuid.UUID) ([]*entity.Video, error)
	Stats(ctx context.Context, ownerID uuid.UUID) (*entity.ChannelStats, error)
	Videos(ctx context.Context, ownerID uuid.UUID, page entity.Page) (*entity.PageResult[*entity.Video], error)
}

// HealthUsecase reports whether the service can reach its store.
type HealthUsecase interface {
	Check(ctx context.Context) error
}
