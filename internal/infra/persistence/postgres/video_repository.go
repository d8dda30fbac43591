package postgres

import (
	"context"
	"strings"
	"time"

	"mediahub/internal/domain/entity"
	domainerrors "mediahub/internal/domain/errors"
	"mediahub/internal/domain/repository"
	"mediahub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var videoSortColumns = map[entity.VideoSortField]string{
	entity.VideoSortCreatedAt: "created_at",
	entity.VideoSortViews:     "views",
	entity.VideoSortTitle:     "title",
}

// videoRepository implements the repository.VideoRepository interface.
type videoRepository struct {
	db *gorm.DB
}

// NewVideoRepository is the constructor for videoRepository.
func NewVideoRepository(db *gorm.DB) repository.VideoRepository {
	return &videoRepository{db: db}
}

func (repo *videoRepository) Create(ctx context.Context, video *entity.Video) error {
	videoM := fromVideoDomain(video)

	if err := repo.db.WithContext(ctx).Create(videoM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrIdentityNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create video")
	}

	video.ID = videoM.ID
	video.CreatedAt = videoM.CreatedAt
	video.UpdatedAt = videoM.UpdatedAt

	return nil
}

func (repo *videoRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Video, error) {
	var videoM model.VideoModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&videoM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVideoNotFound
		}

		return nil, errors.Wrap(err, "failed to find video by ID")
	}

	return toVideoDomain(&videoM), nil
}

// Update saves the mutable columns. Owner, file URL and counters are left alone.
func (repo *videoRepository) Update(ctx context.Context, video *entity.Video) error {
	result := repo.db.WithContext(ctx).
		Model(&model.VideoModel{}).
		Where("id = ?", video.ID).
		Updates(map[string]any{
			"title":        video.Title,
			"description":  video.Description,
			"thumbnail":    video.Thumbnail,
			"is_published": video.IsPublished,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update video")
	}
	if result.RowsAffected == 0 {
		return repository.ErrVideoNotFound
	}

	return nil
}

func (repo *videoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.VideoModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete video")
	}
	if result.RowsAffected == 0 {
		return repository.ErrVideoNotFound
	}

	return nil
}

// IncrementViews bumps the counter in SQL so concurrent views are never lost.
func (repo *videoRepository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.VideoModel{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1"))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to increment video views")
	}
	if result.RowsAffected == 0 {
		return repository.ErrVideoNotFound
	}

	return nil
}

func (repo *videoRepository) ListPublished(ctx context.Context, filter entity.VideoFilter) ([]*entity.Video, int64, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.VideoModel{}).
		Where("is_published = ?", true)

	if q := strings.TrimSpace(filter.Query); q != "" {
		pattern := "%" + escapeLike(q) + "%"
		query = query.Where("(title ILIKE ? OR description ILIKE ?)", pattern, pattern)
	}
	if filter.OwnerID != nil {
		query = query.Where("owner_id = ?", *filter.OwnerID)
	}

	column, ok := videoSortColumns[filter.SortBy]
	if !ok {
		column = videoSortColumns[entity.VideoSortCreatedAt]
	}

	return repo.page(query, clause.OrderByColumn{
		Column: clause.Column{Name: column},
		Desc:   !filter.Ascending,
	}, filter.Page)
}

func (repo *videoRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, page entity.Page) ([]*entity.Video, int64, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.VideoModel{}).
		Where("owner_id = ?", ownerID)

	return repo.page(query, clause.OrderByColumn{Column: clause.Column{Name: "created_at"}, Desc: true}, page)
}

func (repo *videoRepository) page(query *gorm.DB, order clause.OrderByColumn, page entity.Page) ([]*entity.Video, int64, error) {
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count videos")
	}

	var videoModels []*model.VideoModel
	if err := query.
		Order(order).
		Order("id").
		Offset(page.Offset()).
		Limit(page.Size).
		Find(&videoModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list videos")
	}

	return toVideoDomains(videoModels), total, nil
}

func (repo *videoRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Video, error) {
	if len(ids) == 0 {
		return []*entity.Video{}, nil
	}

	var videoModels []*model.VideoModel
	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&videoModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find videos by IDs")
	}

	return toVideoDomains(videoModels), nil
}

// StatsByOwner leaves TotalSubscribers at zero; subscriber counts live in the relation store.
func (repo *videoRepository) StatsByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.ChannelStats, error) {
	var totals struct {
		TotalVideos int64
		TotalViews  int64
	}
	if err := repo.db.WithContext(ctx).
		Model(&model.VideoModel{}).
		Select("COUNT(*) AS total_videos, COALESCE(SUM(views), 0) AS total_views").
		Where("owner_id = ?", ownerID).
		Scan(&totals).Error; err != nil {
		return nil, errors.Wrap(err, "failed to aggregate video stats")
	}

	var totalLikes int64
	if err := repo.db.WithContext(ctx).
		Model(&model.RelationModel{}).
		Joins("JOIN videos ON videos.id = relations.target_id").
		Where("videos.owner_id = ? AND relations.kind = ?", ownerID, entity.RelationVideoLike.String()).
		Count(&totalLikes).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count video likes")
	}

	return &entity.ChannelStats{
		TotalVideos: totals.TotalVideos,
		TotalViews:  totals.TotalViews,
		TotalLikes:  totalLikes,
	}, nil
}

// RecordView upserts so a repeated view only moves the entry to the top.
func (repo *videoRepository) RecordView(ctx context.Context, viewerID, videoID uuid.UUID) error {
	entry := &model.WatchHistoryModel{
		IdentityID: viewerID,
		VideoID:    videoID,
		WatchedAt:  time.Now().UTC(),
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "identity_id"}, {Name: "video_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"watched_at"}),
		}).
		Create(entry).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to record watch history")
	}

	return nil
}

func (repo *videoRepository) WatchHistory(ctx context.Context, viewerID uuid.UUID) ([]*entity.Video, error) {
	var videoModels []*model.VideoModel

	if err := repo.db.WithContext(ctx).
		Model(&model.VideoModel{}).
		Joins("JOIN watch_history ON watch_history.video_id = videos.id").
		Where("watch_history.identity_id = ?", viewerID).
		Order("watch_history.watched_at DESC").
		Find(&videoModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load watch history")
	}

	return toVideoDomains(videoModels), nil
}

func (repo *videoRepository) DeleteViews(ctx context.Context, videoID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("video_id = ?", videoID).
		Delete(&model.WatchHistoryModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete watch history")
	}

	return nil
}

// escapeLike escapes LIKE wildcards in user input.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// --- Mapper Functions ---

func toVideoDomain(data *model.VideoModel) *entity.Video {
	if data == nil {
		return nil
	}

	return &entity.Video{
		ID:          data.ID,
		OwnerUserID: data.OwnerID,
		VideoFile:   data.VideoFile,
		Thumbnail:   data.Thumbnail,
		Title:       data.Title,
		Description: data.Description,
		Duration:    data.Duration,
		Views:       data.Views,
		IsPublished: data.IsPublished,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func toVideoDomains(data []*model.VideoModel) []*entity.Video {
	videos := make([]*entity.Video, 0, len(data))
	for _, videoM := range data {
		videos = append(videos, toVideoDomain(videoM))
	}

	return videos
}

func fromVideoDomain(data *entity.Video) *model.VideoModel {
	if data == nil {
		return nil
	}

	return &model.VideoModel{
		ID:          data.ID,
		OwnerID:     data.OwnerUserID,
		VideoFile:   data.VideoFile,
		Thumbnail:   data.Thumbnail,
		Title:       data.Title,
		Description: data.Description,
		Duration:    data.Duration,
		Views:       data.Views,
		IsPublished: data.IsPublished,
	}
}
