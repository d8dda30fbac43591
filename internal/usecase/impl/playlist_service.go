package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "mediahub/internal/delivery/context"
	"mediahub/internal/domain/entity"
	domainerrors "mediahub/internal/domain/errors"
	"mediahub/internal/domain/repository"
	"mediahub/internal/errors"
	"mediahub/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type playlistService struct {
	playlistRepo repository.PlaylistRepository
	videoRepo    repository.VideoRepository
	logger       *slog.Logger
}

// PlaylistServiceParams holds dependencies for PlaylistService, injected by Fx.
type PlaylistServiceParams struct {
	fx.In

	PlaylistRepo repository.PlaylistRepository
	VideoRepo    repository.VideoRepository
	Logger       *slog.Logger
}

func NewPlaylistService(params PlaylistServiceParams) usecase.PlaylistUsecase {
	return &playlistService{
		playlistRepo: params.PlaylistRepo,
		videoRepo:    params.VideoRepo,
		logger:       params.Logger,
	}
}

func (srv *playlistService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *playlistService) Create(ctx context.Context, ownerID uuid.UUID, input *usecase.PlaylistInput) (*entity.Playlist, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WithMessage("Playlist name is required")
	}

	playlist := &entity.Playlist{
		OwnerUserID: ownerID,
		Name:        name,
		Description: strings.TrimSpace(input.Description),
		VideoIDs:    []uuid.UUID{},
	}
	if err := srv.playlistRepo.Create(ctx, playlist); err != nil {
		return nil, errors.Wrap(err, "failed to create playlist")
	}

	return playlist, nil
}

func (srv *playlistService) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Playlist, error) {
	playlists, err := srv.playlistRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list playlists")
	}

	return playlists, nil
}

func (srv *playlistService) Get(ctx context.Context, playlistID uuid.UUID) (*entity.Playlist, error) {
	return findPlaylist(srv.playlistRepo)(ctx, playlistID)
}

func (srv *playlistService) Update(ctx context.Context, actorID, playlistID uuid.UUID, input *usecase.PlaylistInput) (*entity.Playlist, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WithMessage("Playlist name is required")
	}

	playlist, err := usecase.RequireOwnership(ctx, findPlaylist(srv.playlistRepo), playlistID, actorID)
	if err != nil {
		return nil, err
	}

	playlist.Name = name
	playlist.Description = strings.TrimSpace(input.Description)
	if err := srv.playlistRepo.Update(ctx, playlist); err != nil {
		return nil, errors.Wrap(err, "failed to update playlist")
	}

	return playlist, nil
}

func (srv *playlistService) Delete(ctx context.Context, actorID, playlistID uuid.UUID) error {
	if _, err := usecase.RequireOwnership(ctx, findPlaylist(srv.playlistRepo), playlistID, actorID); err != nil {
		return err
	}

	if err := srv.playlistRepo.Delete(ctx, playlistID); err != nil {
		return errors.Wrap(err, "failed to delete playlist")
	}

	srv.log(ctx).Debug("Playlist deleted", slog.String("playlistID", playlistID.String()))

	return nil
}

// AddVideo appends a video. Playlists never hold the same video twice.
func (srv *playlistService) AddVideo(ctx context.Context, actorID, playlistID, videoID uuid.UUID) (*entity.Playlist, error) {
	playlist, err := usecase.RequireOwnership(ctx, findPlaylist(srv.playlistRepo), playlistID, actorID)
	if err != nil {
		return nil, err
	}
	if _, err := findVideo(srv.videoRepo)(ctx, videoID); err != nil {
		return nil, err
	}
	if playlist.Contains(videoID) {
		return nil, domainerrors.ErrVideoAlreadyInPlaylist
	}

	err = srv.playlistRepo.AddVideo(ctx, playlistID, videoID)
	if errors.Is(err, repository.ErrDuplicatePlaylistVideo) {
		return nil, domainerrors.ErrVideoAlreadyInPlaylist
	}
	if errors.Is(err, repository.ErrVideoNotFound) {
		return nil, domainerrors.ErrVideoNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to add video to playlist")
	}

	playlist.VideoIDs = append(playlist.VideoIDs, videoID)

	return playlist, nil
}

func (srv *playlistService) RemoveVideo(ctx context.Context, actorID, playlistID, videoID uuid.UUID) (*entity.Playlist, error) {
	playlist, err := usecase.RequireOwnership(ctx, findPlaylist(srv.playlistRepo), playlistID, actorID)
	if err != nil {
		return nil, err
	}

	if err := srv.playlistRepo.RemoveVideo(ctx, playlistID, videoID); err != nil {
		return nil, errors.Wrap(err, "failed to remove video from playlist")
	}

	remaining := make([]uuid.UUID, 0, len(playlist.VideoIDs))
	for _, id := range playlist.VideoIDs {
		if id != videoID {
			remaining = append(remaining, id)
		}
	}
	playlist.VideoIDs = remaining

	return playlist, nil
}
