package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Playlist is an ordered, duplicate-free collection of videos curated by its owner.
type Playlist struct {
	ID          uuid.UUID   `json:"id"`
	OwnerUserID uuid.UUID   `json:"owner"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	VideoIDs    []uuid.UUID `json:"videos"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

func (p *Playlist) OwnerID() uuid.UUID {
	return p.OwnerUserID
}

// Contains reports whether the playlist already holds videoID.
func (p *Playlist) Contains(videoID uuid.UUID) bool {
	return slices.Contains(p.VideoIDs, videoID)
}
