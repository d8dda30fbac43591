// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"mediahub/internal/domain/entity"
	domainerrors "mediahub/internal/domain/errors"
	"mediahub/internal/domain/repository"
	"mediahub/internal/domain/service"
	"mediahub/internal/errors"
	"mediahub/internal/usecase"

	"github.com/google/uuid"
)

// Finders translate repository sentinels into the user-facing NotFound errors the guard expects.

func findIdentity(repo repository.IdentityRepository) usecase.Finder[*entity.Identity] {
	return func(ctx context.Context, id uuid.UUID) (*entity.Identity, error) {
		identity, err := repo.FindPublicByID(ctx, id)
		if errors.Is(err, repository.ErrIdentityNotFound) {
			return nil, domainerrors.ErrIdentityNotFound
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to find identity")
		}

		return identity, nil
	}
}

func findVideo(repo repository.VideoRepository) usecase.Finder[*entity.Video] {
	return func(ctx context.Context, id uuid.UUID) (*entity.Video, error) {
		video, err := repo.FindByID(ctx, id)
		if errors.Is(err, repository.ErrVideoNotFound) {
			return nil, domainerrors.ErrVideoNotFound
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to find video")
		}

		return video, nil
	}
}

func findComment(repo repository.CommentRepository) usecase.Finder[*entity.Comment] {
	return func(ctx context.Context, id uuid.UUID) (*entity.Comment, error) {
		comment, err := repo.FindByID(ctx, id)
		if errors.Is(err, repository.ErrCommentNotFound) {
			return nil, domainerrors.ErrCommentNotFound
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to find comment")
		}

		return comment, nil
	}
}

func findPlaylist(repo repository.PlaylistRepository) usecase.Finder[*entity.Playlist] {
	return func(ctx context.Context, id uuid.UUID) (*entity.Playlist, error) {
		playlist, err := repo.FindByID(ctx, id)
		if errors.Is(err, repository.ErrPlaylistNotFound) {
			return nil, domainerrors.ErrPlaylistNotFound
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to find playlist")
		}

		return playlist, nil
	}
}

// deleteObjects removes uploaded blobs, logging failures instead of returning them.
func deleteObjects(ctx context.Context, storage service.ObjectStorage, log *slog.Logger, urls ...string) {
	for _, url := range urls {
		if url == "" {
			continue
		}
		if err := storage.Delete(ctx, url); err != nil {
			log.Warn("Failed to delete stored object", slog.String("url", url), slog.Any("error", err))
		}
	}
}
