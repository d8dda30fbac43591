package entity

import (
	"time"

	"github.com/google/uuid"
)

// RelationKind names a toggleable relationship between an identity and a target.
type RelationKind string

const (
	// RelationSubscription targets another identity's channel.
	RelationSubscription RelationKind = "subscription"
	// RelationVideoLike targets a video.
	RelationVideoLike RelationKind = "video_like"
	// RelationCommentLike targets a comment.
	RelationCommentLike RelationKind = "comment_like"
)

func (k RelationKind) String() string {
	return string(k)
}

// IsValid checks if the RelationKind is a known value.
func (k RelationKind) IsValid() bool {
	switch k {
	case RelationSubscription, RelationVideoLike, RelationCommentLike:
		return true
	default:
		return false
	}
}

// AllowsSelfReference reports whether actor and target may be the same id.
func (k RelationKind) AllowsSelfReference() bool {
	return k != RelationSubscription
}

// Relation is a toggle relation. Its existence is the state: present means subscribed or liked.
// At most one Relation exists per (ActorID, TargetID, Kind).
type Relation struct {
	ID        uuid.UUID    `json:"id"`
	ActorID   uuid.UUID    `json:"actor"`
	TargetID  uuid.UUID    `json:"target"`
	Kind      RelationKind `json:"kind"`
	CreatedAt time.Time    `json:"createdAt"`
}

// ToggleResult is the outcome of a toggle.
type ToggleResult string

const (
	ToggleCreated ToggleResult = "created"
	ToggleRemoved ToggleResult = "removed"
)
