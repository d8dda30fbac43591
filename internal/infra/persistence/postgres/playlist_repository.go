package postgres

import (
	"context"

	"mediahub/internal/domain/entity"
	domainerrors "mediahub/internal/domain/errors"
	"mediahub/internal/domain/repository"
	"mediahub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// appendPlaylistVideoSQL places the video after the current last position in one statement.
const appendPlaylistVideoSQL = `
INSERT INTO playlist_videos (playlist_id, video_id, position, added_at)
SELECT ?, ?, COALESCE(MAX(position), 0) + 1, NOW()
FROM playlist_videos
WHERE playlist_id = ?`

// playlistRepository implements the repository.PlaylistRepository interface.
type playlistRepository struct {
	db *gorm.DB
}

// NewPlaylistRepository is the constructor for playlistRepository.
func NewPlaylistRepository(db *gorm.DB) repository.PlaylistRepository {
	return &playlistRepository{db: db}
}

func (repo *playlistRepository) Create(ctx context.Context, playlist *entity.Playlist) error {
	playlistM := fromPlaylistDomain(playlist)

	if err := repo.db.WithContext(ctx).Omit("Videos").Create(playlistM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create playlist")
	}

	playlist.ID = playlistM.ID
	playlist.CreatedAt = playlistM.CreatedAt
	playlist.UpdatedAt = playlistM.UpdatedAt
	if playlist.VideoIDs == nil {
		playlist.VideoIDs = []uuid.UUID{}
	}

	return nil
}

// FindByID preloads the entries in position order.
func (repo *playlistRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Playlist, error) {
	var playlistM model.PlaylistModel

	if err := repo.db.WithContext(ctx).
		Preload("Videos", func(db *gorm.DB) *gorm.DB {
			return db.Order("position")
		}).
		Where("id = ?", id).
		First(&playlistM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPlaylistNotFound
		}

		return nil, errors.Wrap(err, "failed to find playlist by ID")
	}

	return toPlaylistDomain(&playlistM), nil
}

func (repo *playlistRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Playlist, error) {
	var playlistModels []*model.PlaylistModel

	if err := repo.db.WithContext(ctx).
		Preload("Videos", func(db *gorm.DB) *gorm.DB {
			return db.Order("position")
		}).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&playlistModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list playlists by owner")
	}

	playlists := make([]*entity.Playlist, 0, len(playlistModels))
	for _, playlistM := range playlistModels {
		playlists = append(playlists, toPlaylistDomain(playlistM))
	}

	return playlists, nil
}

func (repo *playlistRepository) Update(ctx context.Context, playlist *entity.Playlist) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PlaylistModel{}).
		Where("id = ?", playlist.ID).
		Updates(map[string]any{
			"name":        playlist.Name,
			"description": playlist.Description,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update playlist")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPlaylistNotFound
	}

	return nil
}

// Delete removes the playlist; its entries go with it through ON DELETE CASCADE.
func (repo *playlistRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PlaylistModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete playlist")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPlaylistNotFound
	}

	return nil
}

// AddVideo relies on the (playlist_id, video_id) primary key to reject duplicates.
func (repo *playlistRepository) AddVideo(ctx context.Context, playlistID, videoID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Exec(appendPlaylistVideoSQL, playlistID, videoID, playlistID).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicatePlaylistVideo
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrVideoNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add video to playlist")
	}

	return nil
}

// RemoveVideo is a no-op when the video is not in the playlist.
func (repo *playlistRepository) RemoveVideo(ctx context.Context, playlistID, videoID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("playlist_id = ? AND video_id = ?", playlistID, videoID).
		Delete(&model.PlaylistVideoModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to remove video from playlist")
	}

	return nil
}

func (repo *playlistRepository) RemoveVideoEverywhere(ctx context.Context, videoID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("video_id = ?", videoID).
		Delete(&model.PlaylistVideoModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to remove video from playlists")
	}

	return nil
}

// --- Mapper Functions ---

func toPlaylistDomain(data *model.PlaylistModel) *entity.Playlist {
	if data == nil {
		return nil
	}

	videoIDs := make([]uuid.UUID, 0, len(data.Videos))
	for _, entry := range data.Videos {
		videoIDs = append(videoIDs, entry.VideoID)
	}

	return &entity.Playlist{
		ID:          data.ID,
		OwnerUserID: data.OwnerID,
		Name:        data.Name,
		Description: data.Description,
		VideoIDs:    videoIDs,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromPlaylistDomain(data *entity.Playlist) *model.PlaylistModel {
	if data == nil {
		return nil
	}

	return &model.PlaylistModel{
		ID:          data.ID,
		OwnerID:     data.OwnerUserID,
		Name:        data.Name,
		Description: data.Description,
	}
}
