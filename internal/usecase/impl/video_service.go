package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "mediahub/internal/delivery/context"
	"mediahub/internal/domain/entity"
	domainerrors "mediahub/internal/domain/errors"
	"mediahub/internal/domain/repository"
	"mediahub/internal/domain/service"
	"mediahub/internal/errors"
	"mediahub/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	videoPrefix     = "videos"
	thumbnailPrefix = "thumbnails"
)

// videoService implements the VideoUsecase interface.
type videoService struct {
	txManager repository.TransactionManager
	videoRepo repository.VideoRepository
	storage   service.ObjectStorage
	logger    *slog.Logger
}

// VideoServiceParams holds dependencies for VideoService, injected by Fx.
type VideoServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	VideoRepo repository.VideoRepository
	Storage   service.ObjectStorage
	Logger    *slog.Logger
}

// NewVideoService is the constructor for videoService.
func NewVideoService(params VideoServiceParams) usecase.VideoUsecase {
	return &videoService{
		txManager: params.TxManager,
		videoRepo: params.VideoRepo,
		storage:   params.Storage,
		logger:    params.Logger,
	}
}

func (srv *videoService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *videoService) ListPublished(ctx context.Context, filter entity.VideoFilter) (*entity.PageResult[*entity.Video], error) {
	filter.Page = entity.NewPage(filter.Page.Number, filter.Page.Size)

	videos, total, err := srv.videoRepo.ListPublished(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list videos")
	}

	return entity.NewPageResult(videos, total, filter.Page), nil
}

// Publish stores both files and creates a published video.
func (srv *videoService) Publish(ctx context.Context, input *usecase.PublishVideoInput) (*entity.Video, error) {
	title := strings.TrimSpace(input.Title)
	description := strings.TrimSpace(input.Description)
	if title == "" || description == "" {
		return nil, domainerrors.ErrValidationFailed
	}
	if input.VideoFile == nil || input.Thumbnail == nil {
		return nil, domainerrors.ErrVideoFilesRequired
	}

	videoURL, err := srv.storage.Upload(ctx, videoPrefix, input.VideoFile)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrUploadFailed, err.Error())
	}

	thumbnailURL, err := srv.storage.Upload(ctx, thumbnailPrefix, input.Thumbnail)
	if err != nil {
		deleteObjects(ctx, srv.storage, srv.log(ctx), videoURL)

		return nil, errors.Wrap(domainerrors.ErrUploadFailed, err.Error())
	}

	video := &entity.Video{
		OwnerUserID: input.OwnerID,
		VideoFile:   videoURL,
		Thumbnail:   thumbnailURL,
		Title:       title,
		Description: description,
		IsPublished: true,
	}

	if err := srv.videoRepo.Create(ctx, video); err != nil {
		deleteObjects(ctx, srv.storage, srv.log(ctx), videoURL, thumbnailURL)

		return nil, errors.Wrap(err, "failed to create video")
	}

	srv.log(ctx).Info("Video published", slog.String("videoID", video.ID.String()), slog.String("ownerID", input.OwnerID.String()))

	return video, nil
}

// Watch counts a view and records it in the viewer's history. Unpublished videos are visible to their owner only.
func (srv *videoService) Watch(ctx context.Context, viewerID, videoID uuid.UUID) (*entity.Video, error) {
	video, err := findVideo(srv.videoRepo)(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if !video.VisibleTo(viewerID) {
		return nil, domainerrors.ErrVideoNotVisible
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		videoRepo := repoFactory.VideoRepo()
		if err := videoRepo.IncrementViews(ctx, video.ID); err != nil {
			return errors.Wrap(err, "failed to increment views")
		}

		return errors.Wrap(videoRepo.RecordView(ctx, viewerID, video.ID), "failed to record view")
	})
	if err != nil {
		return nil, err
	}

	video.Views++

	return video, nil
}

func (srv *videoService) Update(ctx context.Context, input *usecase.UpdateVideoInput) (*entity.Video, error) {
	video, err := usecase.RequireOwnership(ctx, findVideo(srv.videoRepo), input.VideoID, input.ActorID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, domainerrors.ErrValidationFailed.WithMessage("Title cannot be empty")
		}
		video.Title = title
	}
	if input.Description != nil {
		video.Description = strings.TrimSpace(*input.Description)
	}

	var previousThumbnail string
	if input.Thumbnail != nil {
		url, err := srv.storage.Upload(ctx, thumbnailPrefix, input.Thumbnail)
		if err != nil {
			return nil, errors.Wrap(domainerrors.ErrUploadFailed, err.Error())
		}
		previousThumbnail = video.Thumbnail
		video.Thumbnail = url
	}

	if err := srv.videoRepo.Update(ctx, video); err != nil {
		if input.Thumbnail != nil {
			deleteObjects(ctx, srv.storage, srv.log(ctx), video.Thumbnail)
		}

		return nil, errors.Wrap(err, "failed to update video")
	}

	deleteObjects(ctx, srv.storage, srv.log(ctx), previousThumbnail)

	return video, nil
}

// Delete removes the video together with its likes, comments, comment likes, playlist entries and views.
func (srv *videoService) Delete(ctx context.Context, actorID, videoID uuid.UUID) error {
	video, err := usecase.RequireOwnership(ctx, findVideo(srv.videoRepo), videoID, actorID)
	if err != nil {
		return err
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		relationRepo := repoFactory.RelationRepo()
		commentRepo := repoFactory.CommentRepo()

		if err := relationRepo.DeleteByTargets(ctx, []uuid.UUID{video.ID}, entity.RelationVideoLike); err != nil {
			return errors.Wrap(err, "failed to delete video likes")
		}

		commentIDs, err := commentRepo.IDsByVideo(ctx, video.ID)
		if err != nil {
			return errors.Wrap(err, "failed to list video comments")
		}
		if err := relationRepo.DeleteByTargets(ctx, commentIDs, entity.RelationCommentLike); err != nil {
			return errors.Wrap(err, "failed to delete comment likes")
		}
		if err := commentRepo.DeleteByVideo(ctx, video.ID); err != nil {
			return errors.Wrap(err, "failed to delete comments")
		}
		if err := repoFactory.PlaylistRepo().RemoveVideoEverywhere(ctx, video.ID); err != nil {
			return errors.Wrap(err, "failed to remove video from playlists")
		}

		videoRepo := repoFactory.VideoRepo()
		if err := videoRepo.DeleteViews(ctx, video.ID); err != nil {
			return errors.Wrap(err, "failed to delete watch history")
		}

		return errors.Wrap(videoRepo.Delete(ctx, video.ID), "failed to delete video")
	})
	if err != nil {
		return err
	}

	deleteObjects(ctx, srv.storage, srv.log(ctx), video.VideoFile, video.Thumbnail)
	srv.log(ctx).Info("Video deleted", slog.String("videoID", video.ID.String()))

	return nil
}

func (srv *videoService) TogglePublish(ctx context.Context, actorID, videoID uuid.UUID) (*entity.Video, error) {
	video, err := usecase.RequireOwnership(ctx, findVideo(srv.videoRepo), videoID, actorID)
	if err != nil {
		return nil, err
	}

	video.IsPublished = !video.IsPublished
	if err := srv.videoRepo.Update(ctx, video); err != nil {
		return nil, errors.Wrap(err, "failed to toggle publish status")
	}

	return video, nil
}
