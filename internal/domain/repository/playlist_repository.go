package repository

import (
	"context"

	"mediahub/internal/domain/entity"
	"mediahub/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrPlaylistNotFound is returned when a playlist is not found.
	ErrPlaylistNotFound = errors.New("playlist not found")
	// ErrDuplicatePlaylistVideo is returned when the (playlist, video) unique index rejects an insert.
	ErrDuplicatePlaylistVideo = errors.New("video already in playlist")
)

type PlaylistRepository interface {
	Create(ctx context.Context, playlist *entity.Playlist) error

	// FindByID loads the playlist with its video ids in insertion order.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Playlist, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Playlist, error)

	// Update saves name and description.
	Update(ctx context.Context, playlist *entity.Playlist) error
	Delete(ctx context.Context, id uuid.UUID) error

	AddVideo(ctx context.Context, playlistID, videoID uuid.UUID) error
	RemoveVideo(ctx context.Context, playlistID, videoID uuid.UUID) error

	// RemoveVideoEverywhere drops the video from every playlist.
	RemoveVideoEverywhere(ctx context.Context, videoID uuid.UUID) error
}
