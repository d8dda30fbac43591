package usecase

import (
	"context"

	"mediahub/internal/domain/entity"

	"github.com/google/uuid"
)

// PlaylistInput carries playlist details for create and update.
type PlaylistInput struct {
	Name        string
	Description string
}

type PlaylistUsecase interface {
	Create(ctx context.Context, ownerID uuid.UUID, input *PlaylistInput) (*entity.Playlist, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Playlist, error)
	Get(ctx context.Context, playlistID uuid.UUID) (*entity.Playlist, error)
	Update(ctx context.Context, actorID, playlistID uuid.UUID, input *PlaylistInput) (*entity.Playlist, error)
	Delete(ctx context.Context, actorID, playlistID uuid.UUID) error
	AddVideo(ctx context.Context, actorID, playlistID, videoID uuid.UUID) (*entity.Playlist, error)
	RemoveVideo(ctx context.Context, actorID, playlistID, videoID uuid.UUID) (*entity.Playlist, error)
}
