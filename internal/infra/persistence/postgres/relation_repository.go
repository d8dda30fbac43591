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

// relationRepository implements the repository.RelationRepository interface.
type relationRepository struct {
	db *gorm.DB
}

// NewRelationRepository is the constructor for relationRepository.
func NewRelationRepository(db *gorm.DB) repository.RelationRepository {
	return &relationRepository{db: db}
}

// Create inserts the relation. idx_relations_actor_target_kind turns a concurrent second insert into ErrDuplicateRelation.
func (repo *relationRepository) Create(ctx context.Context, relation *entity.Relation) error {
	relationM := fromRelationDomain(relation)

	if err := repo.db.WithContext(ctx).Create(relationM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateRelation
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create relation")
	}

	relation.ID = relationM.ID
	relation.CreatedAt = relationM.CreatedAt

	return nil
}

// Delete is conditional on the full key; the affected row count says whether the relation existed.
func (repo *relationRepository) Delete(ctx context.Context, actorID, targetID uuid.UUID, kind entity.RelationKind) (bool, error) {
	result := repo.db.WithContext(ctx).
		Where("actor_id = ? AND target_id = ? AND kind = ?", actorID, targetID, kind.String()).
		Delete(&model.RelationModel{})
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete relation")
	}

	return result.RowsAffected > 0, nil
}

func (repo *relationRepository) Exists(ctx context.Context, actorID, targetID uuid.UUID, kind entity.RelationKind) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.RelationModel{}).
		Where("actor_id = ? AND target_id = ? AND kind = ?", actorID, targetID, kind.String()).
		Limit(1).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check relation")
	}

	return count > 0, nil
}

func (repo *relationRepository) CountByTarget(ctx context.Context, targetID uuid.UUID, kind entity.RelationKind) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.RelationModel{}).
		Where("target_id = ? AND kind = ?", targetID, kind.String()).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count relations by target")
	}

	return count, nil
}

func (repo *relationRepository) CountByActor(ctx context.Context, actorID uuid.UUID, kind entity.RelationKind) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.RelationModel{}).
		Where("actor_id = ? AND kind = ?", actorID, kind.String()).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count relations by actor")
	}

	return count, nil
}

func (repo *relationRepository) ListByTarget(ctx context.Context, targetID uuid.UUID, kind entity.RelationKind) ([]*entity.Relation, error) {
	var relationModels []*model.RelationModel

	if err := repo.db.WithContext(ctx).
		Where("target_id = ? AND kind = ?", targetID, kind.String()).
		Order("created_at DESC").
		Find(&relationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list relations by target")
	}

	return toRelationDomains(relationModels), nil
}

func (repo *relationRepository) ListByActor(ctx context.Context, actorID uuid.UUID, kind entity.RelationKind) ([]*entity.Relation, error) {
	var relationModels []*model.RelationModel

	if err := repo.db.WithContext(ctx).
		Where("actor_id = ? AND kind = ?", actorID, kind.String()).
		Order("created_at DESC").
		Find(&relationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list relations by actor")
	}

	return toRelationDomains(relationModels), nil
}

func (repo *relationRepository) DeleteByTargets(ctx context.Context, targetIDs []uuid.UUID, kind entity.RelationKind) error {
	if len(targetIDs) == 0 {
		return nil
	}

	if err := repo.db.WithContext(ctx).
		Where("target_id IN ? AND kind = ?", targetIDs, kind.String()).
		Delete(&model.RelationModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete relations by targets")
	}

	return nil
}

// --- Mapper Functions ---

func toRelationDomain(data *model.RelationModel) *entity.Relation {
	if data == nil {
		return nil
	}

	return &entity.Relation{
		ID:        data.ID,
		ActorID:   data.ActorID,
		TargetID:  data.TargetID,
		Kind:      entity.RelationKind(data.Kind),
		CreatedAt: data.CreatedAt,
	}
}

func toRelationDomains(data []*model.RelationModel) []*entity.Relation {
	relations := make([]*entity.Relation, 0, len(data))
	for _, relationM := range data {
		relations = append(relations, toRelationDomain(relationM))
	}

	return relations
}

func fromRelationDomain(data *entity.Relation) *model.RelationModel {
	if data == nil {
		return nil
	}

	return &model.RelationModel{
		ID:       data.ID,
		ActorID:  data.ActorID,
		TargetID: data.TargetID,
		Kind:     data.Kind.String(),
	}
}
