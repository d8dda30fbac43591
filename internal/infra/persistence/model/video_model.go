package model

import (
	"time"

	"github.com/google/uuid"
)

// VideoModel mirrors the 'videos' table.
type VideoModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OwnerID     uuid.UUID `gorm:"type:uuid;not null;index"`
	VideoFile   string    `gorm:"type:text;not null"`
	Thumbnail   string    `gorm:"type:text;not null"`
	Title       string    `gorm:"type:varchar(200);not null"`
	Description string    `gorm:"type:text;not null;default:''"`
	Duration    float64   `gorm:"not null;default:0"`
	Views       int64     `gorm:"not null;default:0"`
	IsPublished bool      `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (VideoModel) TableName() string {
	return "videos"
}

// WatchHistoryModel mirrors the 'watch_history' table. One row per (viewer, video).
type WatchHistoryModel struct {
	IdentityID uuid.UUID `gorm:"type:uuid;primaryKey"`
	VideoID    uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	WatchedAt  time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (WatchHistoryModel) TableName() string {
	return "watch_history"
}
