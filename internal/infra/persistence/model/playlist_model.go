package model

import (
	"time"

	"github.com/google/uuid"
)

// PlaylistModel mirrors the 'playlists' table.
type PlaylistModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OwnerID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(200);not null"`
	Description string    `gorm:"type:text;not null;default:''"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Videos []PlaylistVideoModel `gorm:"foreignKey:PlaylistID"`
}

// TableName explicitly sets the table name for GORM.
func (PlaylistModel) TableName() string {
	return "playlists"
}

// PlaylistVideoModel mirrors 'playlist_videos'. The composite key keeps each video once per playlist.
type PlaylistVideoModel struct {
	PlaylistID uuid.UUID `gorm:"type:uuid;primaryKey"`
	VideoID    uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	Position   int64     `gorm:"not null"`
	AddedAt    time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (PlaylistVideoModel) TableName() string {
	return "playlist_videos"
}
