package service

import (
	"context"
	"time"
)

// RelationEvent is emitted after a toggle settles.
type RelationEvent struct {
	RequestID  string    `json:"request_id,omitempty"`
	ActorID    string    `json:"actor_id"`
	TargetID   string    `json:"target_id"`
	Kind       string    `json:"kind"`
	Result     string    `json:"result"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	PublishRelationEvent(ctx context.Context, event *RelationEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
