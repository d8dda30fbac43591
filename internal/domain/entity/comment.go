package entity

import (
	"time"

	"github.com/google/uuid"
)

// Comment is a text note left on a video.
type Comment struct {
	ID          uuid.UUID `json:"id"`
	VideoID     uuid.UUID `json:"video"`
	OwnerUserID uuid.UUID `json:"owner"`
	Text        string    `json:"text"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (c *Comment) OwnerID() uuid.UUID {
	return c.OwnerUserID
}
