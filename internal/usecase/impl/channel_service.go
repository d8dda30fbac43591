package impl

import (
	"context"
	"log/slog"

	"mediahub/internal/domain/entity"
	domainerrors "mediahub/internal/domain/errors"
	"mediahub/internal/domain/repository"
	"mediahub/internal/errors"
	"mediahub/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// channelService answers read-only channel queries. It never mutates.
type channelService struct {
	identityRepo repository.IdentityRepository
	videoRepo    repository.VideoRepository
	relationRepo repository.RelationRepository
	logger       *slog.Logger
}

// ChannelServiceParams holds dependencies for ChannelService, injected by Fx.
type ChannelServiceParams struct {
	fx.In

	IdentityRepo repository.IdentityRepository
	VideoRepo    repository.VideoRepository
	RelationRepo repository.RelationRepository
	Logger       *slog.Logger
}

func NewChannelService(params ChannelServiceParams) usecase.ChannelUsecase {
	return &channelService{
		identityRepo: params.IdentityRepo,
		videoRepo:    params.VideoRepo,
		relationRepo: params.RelationRepo,
		logger:       params.Logger,
	}
}

func (srv *channelService) Profile(ctx context.Context, viewerID uuid.UUID, username string) (*entity.ChannelProfile, error) {
	username = entity.NormalizeUsername(username)
	if username == "" {
		return nil, domainerrors.ErrValidationFailed.WithMessage("Username is missing")
	}

	channel, err := srv.identityRepo.FindByUsername(ctx, username)
	if errors.Is(err, repository.ErrIdentityNotFound) {
		return nil, domainerrors.ErrChannelNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find channel")
	}

	subscribers, err := srv.relationRepo.CountByTarget(ctx, channel.ID, entity.RelationSubscription)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count subscribers")
	}
	subscribedTo, err := srv.relationRepo.CountByActor(ctx, channel.ID, entity.RelationSubscription)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count subscriptions")
	}
	isSubscribed, err := srv.relationRepo.Exists(ctx, viewerID, channel.ID, entity.RelationSubscription)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check subscription")
	}

	return &entity.ChannelProfile{
		ID:                        channel.ID,
		Username:                  channel.Username,
		Email:                     channel.Email,
		FullName:                  channel.FullName,
		Avatar:                    channel.Avatar,
		CoverImage:                channel.CoverImage,
		SubscribersCount:          subscribers,
		ChannelsSubscribedToCount: subscribedTo,
		IsSubscribed:              isSubscribed,
	}, nil
}

func (srv *channelService) Subscribers(ctx context.Context, channelID uuid.UUID) ([]entity.IdentitySummary, error) {
	if _, err := findIdentity(srv.identityRepo)(ctx, channelID); err != nil {
		if errors.Is(err, domainerrors.ErrIdentityNotFound) {
			return nil, domainerrors.ErrChannelNotFound
		}

		return nil, err
	}

	relations, err := srv.relationRepo.ListByTarget(ctx, channelID, entity.RelationSubscription)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list subscribers")
	}

	ids := make([]uuid.UUID, 0, len(relations))
	for _, relation := range relations {
		ids = append(ids, relation.ActorID)
	}

	return srv.summaries(ctx, ids)
}

func (srv *channelService) SubscribedChannels(ctx context.Context, subscriberID uuid.UUID) ([]entity.IdentitySummary, error) {
	relations, err := srv.relationRepo.ListByActor(ctx, subscriberID, entity.RelationSubscription)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list subscriptions")
	}

	ids := make([]uuid.UUID, 0, len(relations))
	for _, relation := range relations {
		ids = append(ids, relation.TargetID)
	}

	return srv.summaries(ctx, ids)
}

// summaries loads identity summaries and returns them in the order of ids.
func (srv *channelService) summaries(ctx context.Context, ids []uuid.UUID) ([]entity.IdentitySummary, error) {
	if len(ids) == 0 {
		return []entity.IdentitySummary{}, nil
	}

	found, err := srv.identityRepo.FindSummariesByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load identity summaries")
	}

	byID := make(map[uuid.UUID]entity.IdentitySummary, len(found))
	for _, summary := range found {
		byID[summary.ID] = summary
	}

	ordered := make([]entity.IdentitySummary, 0, len(ids))
	for _, id := range ids {
		if summary, ok := byID[id]; ok {
			ordered = append(ordered, summary)
		}
	}

	return ordered, nil
}

// LikedVideos lists liked videos, newest like first, skipping videos the identity can no longer see.
func (srv *channelService) LikedVideos(ctx context.Context, identityID uuid.UUID) ([]*entity.Video, error) {
	relations, err := srv.relationRepo.ListByActor(ctx, identityID, entity.RelationVideoLike)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list liked videos")
	}
	if len(relations) == 0 {
		return []*entity.Video{}, nil
	}

	ids := make([]uuid.UUID, 0, len(relations))
	for _, relation := range relations {
		ids = append(ids, relation.TargetID)
	}

	videos, err := srv.videoRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load liked videos")
	}

	byID := make(map[uuid.UUID]*entity.Video, len(videos))
	for _, video := range videos {
		byID[video.ID] = video
	}

	liked := make([]*entity.Video, 0, len(ids))
	for _, id := range ids {
		if video, ok := byID[id]; ok && video.VisibleTo(identityID) {
			liked = append(liked, video)
		}
	}

	return liked, nil
}

func (srv *channelService) WatchHistory(ctx context.Context, identityID uuid.UUID) ([]*entity.Video, error) {
	videos, err := srv.videoRepo.WatchHistory(ctx, identityID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load watch history")
	}

	return videos, nil
}

func (srv *channelService) Stats(ctx context.Context, ownerID uuid.UUID) (*entity.ChannelStats, error) {
	stats, err := srv.videoRepo.StatsByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load channel stats")
	}

	subscribers, err := srv.relationRepo.CountByTarget(ctx, ownerID, entity.RelationSubscription)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count subscribers")
	}
	stats.TotalSubscribers = subscribers

	srv.logger.Debug("Channel stats computed", slog.String("ownerID", ownerID.String()), slog.Int64("videos", stats.TotalVideos))

	return stats, nil
}

func (srv *channelService) Videos(ctx context.Context, ownerID uuid.UUID, page entity.Page) (*entity.PageResult[*entity.Video], error) {
	page = entity.NewPage(page.Number, page.Size)

	videos, total, err := srv.videoRepo.ListByOwner(ctx, ownerID, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list channel videos")
	}

	return entity.NewPageResult(videos, total, page), nil
}

// healthService reports store reachability.
type healthService struct {
	checker repository.HealthChecker
}

func NewHealthService(checker repository.HealthChecker) usecase.HealthUsecase {
	return &healthService{checker: checker}
}

func (srv *healthService) Check(ctx context.Context) error {
	return errors.Wrap(srv.checker.Check(ctx), "store health check failed")
}
