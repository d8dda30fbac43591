package repository

import (
	"context"

	"mediahub/internal/domain/entity"
	"mediahub/internal/errors"

	"github.com/google/uuid"
)

// ErrDuplicateRelation is returned when the (actor, target, kind) unique index rejects an insert.
var ErrDuplicateRelation = errors.New("relation already exists")

// RelationRepository stores toggle relations. The store enforces at most one row per (actor, target, kind).
type RelationRepository interface {
	// Create inserts the relation or returns ErrDuplicateRelation.
	Create(ctx context.Context, relation *entity.Relation) error

	// Delete removes the relation and reports whether a row was deleted.
	Delete(ctx context.Context, actorID, targetID uuid.UUID, kind entity.RelationKind) (bool, error)

	Exists(ctx context.Context, actorID, targetID uuid.UUID, kind entity.RelationKind) (bool, error)
	CountByTarget(ctx context.Context, targetID uuid.UUID, kind entity.RelationKind) (int64, error)
	CountByActor(ctx context.Context, actorID uuid.UUID, kind entity.RelationKind) (int64, error)
	ListByTarget(ctx context.Context, targetID uuid.UUID, kind entity.RelationKind) ([]*entity.Relation, error)
	ListByActor(ctx context.Context, actorID uuid.UUID, kind entity.RelationKind) ([]*entity.Relation, error)

	// DeleteByTargets removes every relation of kind pointing at any of targetIDs.
	DeleteByTargets(ctx context.Context, targetIDs []uuid.UUID, kind entity.RelationKind) error
}
