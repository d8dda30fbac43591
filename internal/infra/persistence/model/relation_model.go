package model

import (
	"time"

	"github.com/google/uuid"
)

// RelationModel mirrors the 'relations' table. Subscriptions and likes share it, discriminated by Kind.
type RelationModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ActorID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_relations_actor_target_kind,priority:1"`
	TargetID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_relations_actor_target_kind,priority:2;index:idx_relations_target_kind,priority:1"`
	Kind      string    `gorm:"type:varchar(32);not null;uniqueIndex:idx_relations_actor_target_kind,priority:3;index:idx_relations_target_kind,priority:2"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RelationModel) TableName() string {
	return "relations"
}
