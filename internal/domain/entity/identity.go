// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Identity is a registered account. It owns a channel, videos, comments and playlists.
type Identity struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"` // Unique handle, always lowercase.
	Email        string    `json:"email"`    // Unique contact address, normalized.
	FullName     string    `json:"fullname"`
	Avatar       string    `json:"avatar"`
	CoverImage   string    `json:"coverImage"`
	PasswordHash string    `json:"-"`
	RefreshToken *string   `json:"-"` // Current refresh token. Nil when logged out.
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// OwnerID makes an identity guardable like any other owned resource: only the identity itself may mutate it.
func (i *Identity) OwnerID() uuid.UUID {
	return i.ID
}

// HasRefreshToken reports whether token is the identity's current refresh token.
func (i *Identity) HasRefreshToken(token string) bool {
	return i.RefreshToken != nil && token != "" && *i.RefreshToken == token
}

// Public returns a copy without credential material.
func (i *Identity) Public() *Identity {
	copied := *i
	copied.PasswordHash = ""
	copied.RefreshToken = nil

	return &copied
}

// NormalizeUsername trims and lowercases a handle.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// NormalizeEmail trims and lowercases a contact address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ChannelProfile is the public projection of an identity seen from a viewer.
type ChannelProfile struct {
	ID                        uuid.UUID `json:"id"`
	Username                  string    `json:"username"`
	Email                     string    `json:"email"`
	FullName                  string    `json:"fullname"`
	Avatar                    string    `json:"avatar"`
	CoverImage                string    `json:"coverImage"`
	SubscribersCount          int64     `json:"subscribersCount"`
	ChannelsSubscribedToCount int64     `json:"channelsSubscribedToCount"`
	IsSubscribed              bool      `json:"isSubscribed"`
}

// ChannelStats aggregates a channel owner's dashboard numbers.
type ChannelStats struct {
	TotalVideos      int64 `json:"totalVideos"`
	TotalViews       int64 `json:"totalViews"`
	TotalSubscribers int64 `json:"totalSubscribers"`
	TotalLikes       int64 `json:"totalLikes"`
}

// IdentitySummary is the minimal public view used in listings.
type IdentitySummary struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	FullName string    `json:"fullname"`
	Avatar   string    `json:"avatar"`
}

// Summary returns the listing view of the identity.
func (i *Identity) Summary() IdentitySummary {
	return IdentitySummary{ID: i.ID, Username: i.Username, FullName: i.FullName, Avatar: i.Avatar}
}
