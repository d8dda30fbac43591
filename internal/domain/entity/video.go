package entity

import (
	"time"

	"github.com/google/uuid"
)

// Video is an uploaded media item owned by an identity.
type Video struct {
	ID          uuid.UUID `json:"id"`
	OwnerUserID uuid.UUID `json:"owner"`
	VideoFile   string    `json:"videoFile"`
	Thumbnail   string    `json:"thumbnail"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Duration    float64   `json:"duration"`
	Views       int64     `json:"views"`
	IsPublished bool      `json:"isPublished"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (v *Video) OwnerID() uuid.UUID {
	return v.OwnerUserID
}

// VisibleTo reports whether viewerID may see the video. Unpublished videos are visible to their owner only.
func (v *Video) VisibleTo(viewerID uuid.UUID) bool {
	return v.IsPublished || v.OwnerUserID == viewerID
}

// VideoSortField enumerates sortable video columns.
type VideoSortField string

const (
	VideoSortCreatedAt VideoSortField = "createdAt"
	VideoSortViews     VideoSortField = "views"
	VideoSortTitle     VideoSortField = "title"
)

// VideoFilter narrows a published video listing.
type VideoFilter struct {
	Query     string
	OwnerID   *uuid.UUID
	SortBy    VideoSortField
	Ascending bool
	Page      Page
}
