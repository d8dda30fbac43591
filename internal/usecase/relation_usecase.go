package usecase

import (
	"context"

	"mediahub/internal/domain/entity"

	"github.com/google/uuid"
)

// ToggleInput names the relation to flip.
type ToggleInput struct {
	ActorID  uuid.UUID
	TargetID uuid.UUID
	Kind     entity.RelationKind
}

// ToggleOutput reports whether the toggle left the relation in place.
type ToggleOutput struct {
	Result  entity.ToggleResult `json:"-"`
	Created bool                `json:"created"`
}

// RelationUsecase flips subscriptions and likes exactly once per request, even under concurrent duplicates.
type RelationUsecase interface {
	Toggle(ctx context.Context, input *ToggleInput) (*ToggleOutput, error)
	// GenerateChannelQR renders a PNG that subscribes the scanner to channelID.
	GenerateChannelQR(ctx context.Context, channelID uuid.UUID) ([]byte, error)
	// SubscribeByQR makes sure actorID is subscribed to the channel encoded in qrData.
	// An existing subscription is left alone and reported as not created.
	SubscribeByQR(ctx context.Context, actorID uuid.UUID, qrData string) (*ToggleOutput, error)
}
